package validators

import (
	"testing"
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// code extracts the rule identifier from a validation result, or "" when the
// value passed.
func code(err error) string {
	if err == nil {
		return ""
	}
	if verr, ok := err.(*ValidationError); ok {
		return verr.Code
	}
	return err.Error()
}

func TestValidateBreedName(t *testing.T) {
	tests := []struct {
		name     string
		breed    string
		existing int64
		expected string
	}{
		{"known breed", choices.BreedFriesian, 0, ""},
		{"another known breed", choices.BreedJersey, 0, ""},
		{"unknown breed", "Wagyu", 0, "invalid_cow_breed"},
		{"empty breed", "", 0, "invalid_cow_breed"},
		{"duplicate breed", choices.BreedFriesian, 1, "duplicate_cow_breed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateBreedName(tt.breed, tt.existing)); got != tt.expected {
				t.Errorf("ValidateBreedName(%q, %d) code = %q, expected %q",
					tt.breed, tt.existing, got, tt.expected)
			}
		})
	}
}

func TestValidateCowBirthDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		born     time.Time
		expected string
	}{
		{"born yesterday", today.AddDate(0, 0, -1), ""},
		{"born today", today, ""},
		{"born tomorrow", today.AddDate(0, 0, 1), "invalid_date_of_birth"},
		{"thirty years old", today.AddDate(-30, 0, 0), ""},
		{"forty one years old", today.AddDate(-41, 0, 0), "invalid_cow_age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateCowBirthDate(tt.born, today)); got != tt.expected {
				t.Errorf("ValidateCowBirthDate(%v) code = %q, expected %q", tt.born, got, tt.expected)
			}
		})
	}
}

func TestValidateGenderUpdate(t *testing.T) {
	if err := ValidateGenderUpdate(choices.SexFemale, choices.SexFemale); err != nil {
		t.Errorf("unchanged gender rejected: %v", err)
	}
	err := ValidateGenderUpdate(choices.SexFemale, choices.SexMale)
	if code(err) != "gender_update_not_allowed" {
		t.Errorf("changed gender code = %q, expected gender_update_not_allowed", code(err))
	}
}

func TestValidateSireDamRelationship(t *testing.T) {
	male, female := choices.SexMale, choices.SexFemale
	tests := []struct {
		name     string
		sire     *string
		dam      *string
		expected string
	}{
		{"no parents", nil, nil, ""},
		{"valid parents", &male, &female, ""},
		{"female sire", &female, nil, "invalid_sire"},
		{"male dam", nil, &male, "invalid_dam"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateSireDamRelationship(tt.sire, tt.dam)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateCowAvailability(t *testing.T) {
	died := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name         string
		availability string
		dateOfDeath  *time.Time
		expected     string
	}{
		{"alive without death date", choices.CowAvailabilityAlive, nil, ""},
		{"dead with death date", choices.CowAvailabilityDead, &died, ""},
		{"dead without death date", choices.CowAvailabilityDead, nil, "missing_date_of_death"},
		{"alive with death date", choices.CowAvailabilityAlive, &died, "unexpected_date_of_death"},
		{"sold with death date", choices.CowAvailabilitySold, &died, "unexpected_date_of_death"},
		{"unknown status", "Lost", nil, "invalid_availability_status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateCowAvailability(tt.availability, tt.dateOfDeath)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateCowPregnancyStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		gender   string
		ageDays  int
		expected string
	}{
		{"open adult female", choices.CowPregnancyOpen, choices.SexFemale, 800, ""},
		{"unavailable bull", choices.CowPregnancyUnavailable, choices.SexMale, 800, ""},
		{"open bull", choices.CowPregnancyOpen, choices.SexMale, 800, "invalid_pregnancy_status"},
		{"pregnant young heifer", choices.CowPregnancyPregnant, choices.SexFemale, 200, "invalid_pregnancy_status"},
		{"unavailable young heifer", choices.CowPregnancyUnavailable, choices.SexFemale, 200, ""},
		{"unknown status", "Maybe", choices.SexFemale, 800, "invalid_pregnancy_status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateCowPregnancyStatus(tt.status, tt.gender, tt.ageDays)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateCowCategory(t *testing.T) {
	tests := []struct {
		name     string
		category string
		gender   string
		ageDays  int
		isBought bool
		expected string
	}{
		{"female calf", choices.CowCategoryCalf, choices.SexFemale, 100, false, ""},
		{"male heifer", choices.CowCategoryHeifer, choices.SexMale, 800, false, "invalid_category_for_gender"},
		{"female bull", choices.CowCategoryBull, choices.SexFemale, 800, false, "invalid_category_for_gender"},
		{"young milking cow", choices.CowCategoryMilkingCow, choices.SexFemale, 200, false, "invalid_category_for_age"},
		{"old calf", choices.CowCategoryCalf, choices.SexFemale, 900, false, "invalid_category_for_age"},
		{"bought young milking cow", choices.CowCategoryMilkingCow, choices.SexFemale, 200, true, ""},
		{"adult bull", choices.CowCategoryBull, choices.SexMale, 900, false, ""},
		{"unknown category", "Steer", choices.SexMale, 900, false, "invalid_category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidateCowCategory(tt.category, tt.gender, tt.ageDays, tt.isBought))
			if got != tt.expected {
				t.Errorf("ValidateCowCategory(%q, %q, %d, %v) code = %q, expected %q",
					tt.category, tt.gender, tt.ageDays, tt.isBought, got, tt.expected)
			}
		})
	}
}
