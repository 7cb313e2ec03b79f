package initialdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	config.SetDB(db)
	if err := models.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	t.Cleanup(func() {
		config.SetDB(nil)
		_ = sqlDB.Close()
	})
}

func TestTable7Gwp(t *testing.T) {
	cases := []struct {
		raw      string
		factor   float64
		expected float64
		ok       bool
	}{
		{"320", 1, 320, true},
		{"10", 2, 5, true},
		{"-5", 1, -5, true},
		{"-", 1, 0, false},
		{"", 1, 0, false},
		{"n/a", 1, 0, false},
	}
	for _, tc := range cases {
		value, ok := table7Gwp(tc.raw, tc.factor)
		if ok != tc.ok || value != tc.expected {
			t.Fatalf("table7Gwp(%q, %v) = %v, %v, expected %v, %v", tc.raw, tc.factor, value, ok, tc.expected, tc.ok)
		}
	}
}

func TestTable7Unit(t *testing.T) {
	cases := []struct {
		raw      string
		expected models.Unit
	}{
		{"STK", models.UnitPcs},
		{"M2", models.UnitM2},
		{"m3", models.UnitM3},
		{"KG", models.UnitKg},
		{"weird", models.UnitUnknown},
	}
	for _, tc := range cases {
		if got := table7Unit(tc.raw); got != tc.expected {
			t.Fatalf("table7Unit(%q) = %s, expected %s", tc.raw, got, tc.expected)
		}
	}
}

func TestTable7Subtype(t *testing.T) {
	cases := []struct {
		raw      string
		expected models.SubType
	}{
		{"Generisk data", models.SubTypeGeneric},
		{"Branche data", models.SubTypeIndustry},
		{"something else", models.SubTypeGeneric},
	}
	for _, tc := range cases {
		if got := table7Subtype(tc.raw); got != tc.expected {
			t.Fatalf("table7Subtype(%q) = %s, expected %s", tc.raw, got, tc.expected)
		}
	}
}

const table7Fixture = `Sorterings ID,Navn DK,Data type,Deklareret enhed (FU),Deklareret faktor (FU),Masse faktor,Url (link),"Global Opvarmning, modul A1-A3","Global Opvarmning, modul C3","Global Opvarmning, modul C4","Global Opvarmning, modul D"
#S1,Beton,,,,,,,,,
1.001,Beton C20/25,Generisk data,M3,1,2400,https://example.test/beton,320.5,12.1,-,-5
1.002,Tegl,Branche data,STK,2,3.5,https://example.test/tegl,10,-,-,-
`

func TestLoadTable7SeedsAndSkipsExisting(t *testing.T) {
	setupDB(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "table7.csv")
	if err := os.WriteFile(path, []byte(table7Fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := LoadTable7(ctx, path)
	if err != nil {
		t.Fatalf("LoadTable7: %v", err)
	}
	if loaded != 2 {
		t.Fatalf("loaded = %d, expected 2 (section rows skipped)", loaded)
	}

	var beton models.EPD
	if err := config.GetDB().First(&beton, "comment = ?", "1.001").Error; err != nil {
		t.Fatalf("fetch beton: %v", err)
	}
	if beton.Name != "Beton C20/25" || beton.DeclaredUnit != models.UnitM3 {
		t.Fatalf("beton = %+v", beton)
	}
	if beton.Gwp["a1a3"] != 320.5 || beton.Gwp["c3"] != 12.1 || beton.Gwp["d"] != -5 {
		t.Fatalf("beton gwp = %v", beton.Gwp)
	}
	if _, ok := beton.Gwp["c4"]; ok {
		t.Fatalf("unmeasured phase was stored: %v", beton.Gwp)
	}
	if len(beton.Conversions) != 1 || beton.Conversions[0].TargetUnit != "KG" || beton.Conversions[0].Factor != 2400 {
		t.Fatalf("beton conversions = %v", beton.Conversions)
	}

	// values are normalized by the declared factor
	var tegl models.EPD
	if err := config.GetDB().First(&tegl, "comment = ?", "1.002").Error; err != nil {
		t.Fatalf("fetch tegl: %v", err)
	}
	if tegl.Gwp["a1a3"] != 5 {
		t.Fatalf("tegl gwp a1a3 = %v, expected 10/2", tegl.Gwp["a1a3"])
	}
	if tegl.DeclaredUnit != models.UnitPcs || tegl.Subtype != models.SubTypeIndustry {
		t.Fatalf("tegl = %+v", tegl)
	}

	// re-running is a no-op
	loaded, err = LoadTable7(ctx, path)
	if err != nil {
		t.Fatalf("LoadTable7 (again): %v", err)
	}
	if loaded != 0 {
		t.Fatalf("second run loaded = %d, expected 0", loaded)
	}

	var count int64
	if err := config.GetDB().Model(&models.EPD{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("epd count = %d, expected 2", count)
	}
}
