package middlewares

import (
	"context"
	"errors"
	"testing"

	"github.com/lcadata/assembly_backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errTest = errors.New("db unavailable")

func loaderContext(t *testing.T) context.Context {
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
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&models.EPD{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, id := range []string{"epd-a", "epd-b"} {
		epd := &models.EPD{ID: id, Name: "EPD " + id, Version: "1.0", DeclaredUnit: models.UnitKg}
		if err := db.Create(epd).Error; err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}

	return context.WithValue(context.Background(), loadersKey, NewLoaders(db))
}

func TestGetEpdsBatchesInRequestOrder(t *testing.T) {
	ctx := loaderContext(t)

	epds, errs := GetEpds(ctx, []string{"epd-b", "epd-a", "epd-missing"})
	for i, err := range errs {
		if err != nil {
			t.Fatalf("GetEpds error %d: %v", i, err)
		}
	}
	if len(epds) != 3 {
		t.Fatalf("epds = %d, expected 3", len(epds))
	}
	if epds[0].ID != "epd-b" || epds[1].ID != "epd-a" {
		t.Fatalf("epds out of request order: %s, %s", epds[0].ID, epds[1].ID)
	}
	if epds[2].ID != "epd-missing" || epds[2].Name != "Unknown" {
		t.Fatalf("missing id resolved to %+v, expected the default placeholder", epds[2])
	}
}

func TestGenerateLoaderResultsKeepsRequestOrder(t *testing.T) {
	results := []models.EPD{
		{ID: "epd-b", Name: "B"},
		{ID: "epd-a", Name: "A"},
	}

	loaderResults := generateLoaderResults(results, []string{"epd-a", "epd-b"})
	if len(loaderResults) != 2 {
		t.Fatalf("results = %d, expected 2", len(loaderResults))
	}
	if loaderResults[0].Data.ID != "epd-a" || loaderResults[1].Data.ID != "epd-b" {
		t.Fatalf("results out of request order: %s, %s", loaderResults[0].Data.ID, loaderResults[1].Data.ID)
	}
}

func TestGenerateLoaderResultsFillsMissingWithDefault(t *testing.T) {
	results := []models.EPD{{ID: "epd-a", Name: "A"}}

	loaderResults := generateLoaderResults(results, []string{"epd-a", "epd-missing"})
	missing := loaderResults[1].Data
	if missing.ID != "epd-missing" || missing.Name != "Unknown" {
		t.Fatalf("missing id resolved to %+v, expected the default placeholder", missing)
	}
}

func TestGenerateLoaderArrayResultsGroupsByReference(t *testing.T) {
	results := []models.AssemblyEPDLink{
		{ID: "layer-1", AssemblyId: "asm-1"},
		{ID: "layer-2", AssemblyId: "asm-2"},
		{ID: "layer-3", AssemblyId: "asm-1"},
	}

	loaderResults := generateLoaderArrayResults(results, []string{"asm-1", "asm-2", "asm-3"})
	if len(loaderResults) != 3 {
		t.Fatalf("results = %d, expected 3", len(loaderResults))
	}
	if len(loaderResults[0].Data) != 2 {
		t.Fatalf("asm-1 has %d layers, expected 2", len(loaderResults[0].Data))
	}
	if loaderResults[0].Data[0].ID != "layer-1" || loaderResults[0].Data[1].ID != "layer-3" {
		t.Fatalf("asm-1 layers = %s, %s", loaderResults[0].Data[0].ID, loaderResults[0].Data[1].ID)
	}
	if len(loaderResults[1].Data) != 1 {
		t.Fatalf("asm-2 has %d layers, expected 1", len(loaderResults[1].Data))
	}
	// an assembly without layers resolves to an empty set, not an error
	if len(loaderResults[2].Data) != 0 {
		t.Fatalf("asm-3 has %d layers, expected 0", len(loaderResults[2].Data))
	}
}

func TestHandleErrorRepeatsError(t *testing.T) {
	errs := handleError[*models.EPD](3, errTest)
	if len(errs) != 3 {
		t.Fatalf("results = %d, expected 3", len(errs))
	}
	for i, result := range errs {
		if result.Error != errTest {
			t.Fatalf("result %d error = %v", i, result.Error)
		}
	}
}
