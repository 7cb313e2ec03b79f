package models_test

import (
	"testing"

	"github.com/lcadata/assembly_backend/config"
	"github.com/lcadata/assembly_backend/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB points the model layer at a fresh in-memory database. The pool is
// pinned to one connection so every query hits the same sqlite instance.
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

func seedEpd(t *testing.T, name string, originId string, version string, gwp models.Phases) *models.EPD {
	t.Helper()

	epd := &models.EPD{
		Name:         name,
		Version:      version,
		DeclaredUnit: models.UnitKg,
		Gwp:          gwp,
		Odp:          models.Phases{},
		Ap:           models.Phases{},
		Ep:           models.Phases{},
		Pocp:         models.Phases{},
		Penre:        models.Phases{},
		Pere:         models.Phases{},
	}
	if originId != "" {
		epd.OriginId = &originId
	}
	if err := config.GetDB().Create(epd).Error; err != nil {
		t.Fatalf("seed epd %s: %v", name, err)
	}
	return epd
}
