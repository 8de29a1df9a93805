package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nyumbani-farms/herdbook/choices"
)

// openTestDB gives each test its own in-memory database with the full
// schema applied.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&User{}, &CowBreed{}, &Cow{},
		&CowInventory{}, &CowInventoryUpdateHistory{},
		&WeightRecord{}, &QuarantineRecord{}, &CullingRecord{},
		&Pathogen{}, &DiseaseCategory{}, &Symptom{}, &Disease{}, &Treatment{},
		&Heat{}, &Inseminator{}, &Insemination{}, &Pregnancy{},
		&Lactation{}, &Milk{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestBreed(t *testing.T, db *gorm.DB, name string) *CowBreed {
	t.Helper()
	breed := &CowBreed{Name: name}
	if err := db.Create(breed).Error; err != nil {
		t.Fatalf("create breed %s: %v", name, err)
	}
	return breed
}

// createTestCow registers a cow of the given age with a state consistent
// with its sex and age.
func createTestCow(t *testing.T, db *gorm.DB, breed *CowBreed, name, gender string, ageInDays int) *Cow {
	t.Helper()
	cow := &Cow{
		Name:        name,
		BreedID:     breed.ID,
		Gender:      gender,
		DateOfBirth: time.Now().AddDate(0, 0, -ageInDays),
	}
	switch {
	case ageInDays < 365:
		cow.Category = choices.CowCategoryCalf
		cow.CurrentProductionStatus = choices.ProductionStatusCalf
		cow.CurrentPregnancyStatus = choices.CowPregnancyUnavailable
	case gender == choices.SexMale:
		cow.Category = choices.CowCategoryBull
		cow.CurrentProductionStatus = choices.ProductionStatusBull
		cow.CurrentPregnancyStatus = choices.CowPregnancyUnavailable
	default:
		cow.Category = choices.CowCategoryHeifer
		cow.CurrentProductionStatus = choices.ProductionStatusOpen
		cow.CurrentPregnancyStatus = choices.CowPregnancyOpen
	}
	if err := db.Create(cow).Error; err != nil {
		t.Fatalf("create cow %s: %v", name, err)
	}
	return cow
}

func loadCow(t *testing.T, db *gorm.DB, id uuid.UUID) *Cow {
	t.Helper()
	var cow Cow
	if err := db.First(&cow, "id = ?", id).Error; err != nil {
		t.Fatalf("load cow: %v", err)
	}
	return &cow
}
