package initialdata

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"github.com/lcadata/assembly_backend/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LoadTable7 seeds the catalogue with the Danish BR18 appendix 2 table 7
// generic dataset. Rows are keyed by their sorting id, stored in the comment
// field, so re-running the loader skips rows already present.
func LoadTable7(ctx context.Context, path string) (int, error) {

	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return 0, err
	}
	if len(records) < 2 {
		return 0, nil
	}

	header := map[string]int{}
	for i, column := range records[0] {
		header[strings.TrimSpace(column)] = i
	}
	field := func(row []string, name string) string {
		index, ok := header[name]
		if !ok || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	logger := config.GetLogger()
	db := config.GetDB()
	loaded := 0
	for _, row := range records[1:] {
		sortingId := field(row, "Sorterings ID")
		if strings.HasPrefix(sortingId, "#S") {
			continue
		}

		var existing models.EPD
		err := db.WithContext(ctx).Where("comment = ?", sortingId).First(&existing).Error
		if err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return loaded, err
		}

		declaredFactor, err := strconv.ParseFloat(field(row, "Deklareret faktor (FU)"), 64)
		if err != nil {
			config.LogError(logger, "initialdata", "LoadTable7", "skipping row with bad declared factor", sortingId, err)
			continue
		}

		gwp := models.Phases{}
		for column, phase := range table7GwpColumns {
			if value, ok := table7Gwp(field(row, column), declaredFactor); ok {
				gwp[phase] = value
			}
		}

		conversions := []models.Conversion{}
		if massFactor, err := strconv.ParseFloat(field(row, "Masse faktor"), 64); err == nil {
			conversions = append(conversions, models.Conversion{
				TargetUnit: "KG",
				Factor:     massFactor * declaredFactor,
			})
		}

		epd := models.EPD{
			Name:           field(row, "Navn DK"),
			Version:        "version 2 - 201222",
			DeclaredUnit:   table7Unit(field(row, "Deklareret enhed (FU)")),
			ExpirationDate: time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC),
			PublishedDate:  time.Date(2020, time.December, 22, 0, 0, 0, 0, time.UTC),
			Source:         field(row, "Url (link)"),
			Subtype:        table7Subtype(field(row, "Data type")),
			Comment:        utils.Ptr(sortingId),
			Region:         "DK",
			Conversions:    datatypes.NewJSONSlice(conversions),
			Gwp:            gwp,
			Odp:            models.Phases{},
			Ap:             models.Phases{},
			Ep:             models.Phases{},
			Pocp:           models.Phases{},
			Penre:          models.Phases{},
			Pere:           models.Phases{},
		}
		if err := db.WithContext(ctx).Create(&epd).Error; err != nil {
			return loaded, err
		}
		loaded++
	}

	return loaded, nil
}

var table7GwpColumns = map[string]string{
	"Global Opvarmning, modul A1-A3": "a1a3",
	"Global Opvarmning, modul C3":    "c3",
	"Global Opvarmning, modul C4":    "c4",
	"Global Opvarmning, modul D":     "d",
}

// table7Gwp parses one impact cell; "-" means the phase was not measured.
// Values are normalized by the declared factor.
func table7Gwp(raw string, declaredFactor float64) (float64, bool) {
	if raw == "" || raw == "-" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value / declaredFactor, true
}

func table7Unit(raw string) models.Unit {
	if raw == "STK" {
		return models.UnitPcs
	}
	return models.UnitFromILCD(strings.ToLower(raw))
}

func table7Subtype(raw string) models.SubType {
	switch raw {
	case "Generisk data":
		return models.SubTypeGeneric
	case "Branche data":
		return models.SubTypeIndustry
	}
	return models.SubTypeGeneric
}
