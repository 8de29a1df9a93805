package models

import (
	"testing"
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

func TestNewPregnancyMarksCowPregnant(t *testing.T) {
	db := openTestDB(t)
	breed := createTestBreed(t, db, choices.BreedFriesian)
	cow := createTestCow(t, db, breed, "Candy", choices.SexFemale, 1200)

	pregnancy := &Pregnancy{
		CowID:     cow.ID,
		StartDate: time.Now().AddDate(0, 0, -10),
	}
	if err := db.Create(pregnancy).Error; err != nil {
		t.Fatalf("create pregnancy: %v", err)
	}

	stored := loadCow(t, db, cow.ID)
	if stored.CurrentPregnancyStatus != choices.CowPregnancyPregnant {
		t.Errorf("pregnancy status = %q, expected %q",
			stored.CurrentPregnancyStatus, choices.CowPregnancyPregnant)
	}
	if stored.CurrentProductionStatus != choices.ProductionStatusPregnantNotLactating {
		t.Errorf("production status = %q, expected %q",
			stored.CurrentProductionStatus, choices.ProductionStatusPregnantNotLactating)
	}
}

func TestPregnancyRejectsPregnantCow(t *testing.T) {
	db := openTestDB(t)
	breed := createTestBreed(t, db, choices.BreedJersey)
	cow := createTestCow(t, db, breed, "Rosie", choices.SexFemale, 1200)

	first := &Pregnancy{CowID: cow.ID, StartDate: time.Now().AddDate(0, 0, -10)}
	if err := db.Create(first).Error; err != nil {
		t.Fatalf("first pregnancy: %v", err)
	}
	second := &Pregnancy{CowID: cow.ID, StartDate: time.Now().AddDate(0, 0, -5)}
	if got := ruleCode(db.Create(second).Error); got != "cow_already_pregnant" {
		t.Errorf("second pregnancy code = %q, expected cow_already_pregnant", got)
	}
}

func TestPregnancyRejectsYoungCow(t *testing.T) {
	db := openTestDB(t)
	breed := createTestBreed(t, db, choices.BreedSahiwal)
	cow := createTestCow(t, db, breed, "Junior", choices.SexFemale, 200)

	pregnancy := &Pregnancy{CowID: cow.ID, StartDate: time.Now().AddDate(0, 0, -5)}
	if got := ruleCode(db.Create(pregnancy).Error); got != "age_below_threshold" {
		t.Errorf("young cow code = %q, expected age_below_threshold", got)
	}
}

func TestCalvingOpensLactation(t *testing.T) {
	db := openTestDB(t)
	breed := createTestBreed(t, db, choices.BreedGuernsey)
	cow := createTestCow(t, db, breed, "Candy", choices.SexFemale, 1500)

	start := time.Now().AddDate(0, 0, -284)
	pregnancy := &Pregnancy{
		CowID:     cow.ID,
		StartDate: start,
	}
	if err := db.Create(pregnancy).Error; err != nil {
		t.Fatalf("create pregnancy: %v", err)
	}

	calved := start.AddDate(0, 0, 283)
	outcome := choices.PregnancyOutcomeLive
	pregnancy.PregnancyStatus = choices.PregnancyStatusConfirmed
	pregnancy.DateOfCalving = &calved
	pregnancy.PregnancyOutcome = &outcome
	if err := db.Save(pregnancy).Error; err != nil {
		t.Fatalf("record calving: %v", err)
	}

	stored := loadCow(t, db, cow.ID)
	if stored.CurrentPregnancyStatus != choices.CowPregnancyCalved {
		t.Errorf("pregnancy status = %q, expected %q",
			stored.CurrentPregnancyStatus, choices.CowPregnancyCalved)
	}
	if stored.Category != choices.CowCategoryMilkingCow {
		t.Errorf("category = %q, expected %q", stored.Category, choices.CowCategoryMilkingCow)
	}

	var lactation Lactation
	if err := db.First(&lactation, "cow_id = ?", cow.ID).Error; err != nil {
		t.Fatalf("no lactation opened by calving: %v", err)
	}
	if lactation.PregnancyID == nil || *lactation.PregnancyID != pregnancy.ID {
		t.Errorf("lactation not linked to the pregnancy that produced it")
	}
	if !lactation.StartDate.Equal(calved) {
		t.Errorf("lactation start = %v, expected calving date %v", lactation.StartDate, calved)
	}
}

func TestFailedPregnancyReopensCow(t *testing.T) {
	db := openTestDB(t)
	breed := createTestBreed(t, db, choices.BreedAyrshire)
	cow := createTestCow(t, db, breed, "Misty", choices.SexFemale, 1200)

	start := time.Now().AddDate(0, 0, -60)
	pregnancy := &Pregnancy{CowID: cow.ID, StartDate: start}
	if err := db.Create(pregnancy).Error; err != nil {
		t.Fatalf("create pregnancy: %v", err)
	}

	failed := start.AddDate(0, 0, 40)
	outcome := choices.PregnancyOutcomeMiscarriage
	pregnancy.PregnancyStatus = choices.PregnancyStatusFailed
	pregnancy.PregnancyFailed = &failed
	pregnancy.PregnancyOutcome = &outcome
	if err := db.Save(pregnancy).Error; err != nil {
		t.Fatalf("record failure: %v", err)
	}

	stored := loadCow(t, db, cow.ID)
	if stored.CurrentPregnancyStatus != choices.CowPregnancyOpen {
		t.Errorf("pregnancy status = %q, expected %q",
			stored.CurrentPregnancyStatus, choices.CowPregnancyOpen)
	}
	if stored.CurrentProductionStatus != choices.ProductionStatusOpen {
		t.Errorf("production status = %q, expected %q",
			stored.CurrentProductionStatus, choices.ProductionStatusOpen)
	}
}
