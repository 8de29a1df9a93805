package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250110_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.CowBreed{}, &models.Cow{},
					&models.CowInventory{}, &models.CowInventoryUpdateHistory{})
			},
		},
		{
			ID: "20250112_create_health_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.WeightRecord{}, &models.QuarantineRecord{},
					&models.CullingRecord{}, &models.Pathogen{}, &models.DiseaseCategory{},
					&models.Symptom{}, &models.Disease{}, &models.Treatment{})
			},
		},
		{
			ID: "20250118_create_reproduction_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Heat{}, &models.Inseminator{},
					&models.Insemination{}, &models.Pregnancy{})
			},
		},
		{
			ID: "20250121_create_production_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Lactation{}, &models.Milk{})
			},
		},
	})

	return m.Migrate()
}

// MigrateForTest applies the full schema directly, bypassing the migration
// log. Used by the sqlite-backed tests.
func MigrateForTest(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{}, &models.CowBreed{}, &models.Cow{},
		&models.CowInventory{}, &models.CowInventoryUpdateHistory{},
		&models.WeightRecord{}, &models.QuarantineRecord{}, &models.CullingRecord{},
		&models.Pathogen{}, &models.DiseaseCategory{}, &models.Symptom{},
		&models.Disease{}, &models.Treatment{},
		&models.Heat{}, &models.Inseminator{}, &models.Insemination{}, &models.Pregnancy{},
		&models.Lactation{}, &models.Milk{},
	)
}
