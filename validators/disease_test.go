package validators

import (
	"testing"
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

func TestValidatePathogenName(t *testing.T) {
	for _, name := range choices.PathogenChoices {
		if err := ValidatePathogenName(name); err != nil {
			t.Errorf("known pathogen %q rejected: %v", name, err)
		}
	}
	if got := code(ValidatePathogenName("Prion")); got != "invalid_pathogen" {
		t.Errorf("unknown pathogen code = %q, expected invalid_pathogen", got)
	}
}

func TestValidateDiseaseCategoryName(t *testing.T) {
	for _, name := range choices.DiseaseCategoryChoices {
		if err := ValidateDiseaseCategoryName(name); err != nil {
			t.Errorf("known category %q rejected: %v", name, err)
		}
	}
	if got := code(ValidateDiseaseCategoryName("Cosmetic")); got != "invalid_disease_category" {
		t.Errorf("unknown category code = %q, expected invalid_disease_category", got)
	}
}

func TestValidateDiseaseFields(t *testing.T) {
	tests := []struct {
		name        string
		disease     string
		hasPathogen bool
		expected    string
	}{
		{"named with pathogen", "Mastitis", true, ""},
		{"missing name", "", true, "missing_disease_name"},
		{"missing pathogen", "Mastitis", false, "missing_pathogen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateDiseaseFields(tt.disease, tt.hasPathogen)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateDiseaseRecovery(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	reported := today.AddDate(0, 0, -30)
	recovered := reported.AddDate(0, 0, 20)
	beforeReport := reported.AddDate(0, 0, -5)

	tests := []struct {
		name          string
		isRecovered   bool
		recoveredDate *time.Time
		dateReported  time.Time
		expected      string
	}{
		{"ongoing disease", false, nil, reported, ""},
		{"recovered with date", true, &recovered, reported, ""},
		{"recovered without date", true, nil, reported, "missing_recovered_date"},
		{"date without recovery flag", false, &recovered, reported, "unexpected_recovered_date"},
		{"recovered before reported", true, &beforeReport, reported, "invalid_recovered_date"},
		{"reported in the future", false, nil, today.AddDate(0, 0, 3), "invalid_date_reported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidateDiseaseRecovery(tt.isRecovered, tt.recoveredDate, tt.dateReported, today))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateDiseaseTreatments(t *testing.T) {
	if err := ValidateDiseaseTreatments(false, 0); err != nil {
		t.Errorf("ongoing disease without treatments rejected: %v", err)
	}
	if err := ValidateDiseaseTreatments(true, 2); err != nil {
		t.Errorf("recovered disease with treatments rejected: %v", err)
	}
	if got := code(ValidateDiseaseTreatments(true, 0)); got != "missing_treatment" {
		t.Errorf("recovered without treatments code = %q, expected missing_treatment", got)
	}
}

func TestValidateSymptomDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := ValidateSymptomDate(today.AddDate(0, 0, -2), today); err != nil {
		t.Errorf("past observation rejected: %v", err)
	}
	if got := code(ValidateSymptomDate(today.AddDate(0, 0, 1), today)); got != "invalid_date_observed" {
		t.Errorf("future observation code = %q, expected invalid_date_observed", got)
	}
}

func TestValidateTreatmentDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := ValidateTreatmentDate(today, today); err != nil {
		t.Errorf("same-day treatment rejected: %v", err)
	}
	if got := code(ValidateTreatmentDate(today.AddDate(0, 0, 1), today)); got != "invalid_date_of_treatment" {
		t.Errorf("future treatment code = %q, expected invalid_date_of_treatment", got)
	}
}
