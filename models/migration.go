package models

import (
	"github.com/lcadata/assembly_backend/config"
)

// Migrate creates/updates the schema. Order matters for foreign keys.
func Migrate() error {
	db := config.GetDB()
	return db.AutoMigrate(
		&EPD{},
		&ProjectEPD{},
		&Assembly{},
		&ProjectAssembly{},
		&AssemblyEPDLink{},
		&ProjectAssemblyEPDLink{},
	)
}
