package validators

import (
	"testing"
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

func TestValidateHeatCow(t *testing.T) {
	tests := []struct {
		name             string
		gender           string
		availability     string
		pregnancyStatus  string
		productionStatus string
		ageDays          int
		expected         string
	}{
		{"open adult female", choices.SexFemale, choices.CowAvailabilityAlive,
			choices.CowPregnancyOpen, choices.ProductionStatusOpen, 800, ""},
		{"bull", choices.SexMale, choices.CowAvailabilityAlive,
			choices.CowPregnancyUnavailable, choices.ProductionStatusBull, 800, "invalid_gender"},
		{"dead cow", choices.SexFemale, choices.CowAvailabilityDead,
			choices.CowPregnancyOpen, choices.ProductionStatusOpen, 800, "dead_cow"},
		{"too young", choices.SexFemale, choices.CowAvailabilityAlive,
			choices.CowPregnancyUnavailable, choices.ProductionStatusWeaner, 300, "invalid_age_for_heat"},
		{"already pregnant", choices.SexFemale, choices.CowAvailabilityAlive,
			choices.CowPregnancyPregnant, choices.ProductionStatusPregnantNotLactating, 800, "cow_already_pregnant"},
		{"dry cow", choices.SexFemale, choices.CowAvailabilityAlive,
			choices.CowPregnancyOpen, choices.ProductionStatusDry, 800, "invalid_production_status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidateHeatCow(tt.gender, tt.availability, tt.pregnancyStatus, tt.productionStatus, tt.ageDays))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateHeatSpacing(t *testing.T) {
	if err := ValidateHeatSpacing(0); err != nil {
		t.Errorf("spaced heat rejected: %v", err)
	}
	if got := code(ValidateHeatSpacing(1)); got != "in_heat_within_21_days" {
		t.Errorf("close heat code = %q, expected in_heat_within_21_days", got)
	}
}

func TestValidateHeatAfterCalving(t *testing.T) {
	calved := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	if err := ValidateHeatAfterCalving(choices.CowPregnancyOpen, nil, calved.AddDate(0, 0, 10)); err != nil {
		t.Errorf("open cow rejected: %v", err)
	}
	got := code(ValidateHeatAfterCalving(choices.CowPregnancyCalved, &calved, calved.AddDate(0, 0, 30)))
	if got != "in_heat_after_calving" {
		t.Errorf("30 days after calving code = %q, expected in_heat_after_calving", got)
	}
	if err := ValidateHeatAfterCalving(choices.CowPregnancyCalved, &calved, calved.AddDate(0, 0, 61)); err != nil {
		t.Errorf("61 days after calving rejected: %v", err)
	}
}

func TestValidateInseminationCow(t *testing.T) {
	tests := []struct {
		name            string
		gender          string
		availability    string
		pregnancyStatus string
		ageDays         int
		expected        string
	}{
		{"open adult female", choices.SexFemale, choices.CowAvailabilityAlive, choices.CowPregnancyOpen, 800, ""},
		{"bull", choices.SexMale, choices.CowAvailabilityAlive, choices.CowPregnancyUnavailable, 800, "invalid_gender"},
		{"sold cow", choices.SexFemale, choices.CowAvailabilitySold, choices.CowPregnancyOpen, 800, "invalid_availability_status"},
		{"too young", choices.SexFemale, choices.CowAvailabilityAlive, choices.CowPregnancyUnavailable, 200, "age_below_threshold"},
		{"already pregnant", choices.SexFemale, choices.CowAvailabilityAlive, choices.CowPregnancyPregnant, 800, "cow_already_pregnant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidateInseminationCow(tt.gender, tt.availability, tt.pregnancyStatus, tt.ageDays))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateInseminationDeletion(t *testing.T) {
	if err := ValidateInseminationDeletion(false); err != nil {
		t.Errorf("unlinked record rejected: %v", err)
	}
	if got := code(ValidateInseminationDeletion(true)); got != "insemination_linked_to_pregnancy" {
		t.Errorf("linked record code = %q, expected insemination_linked_to_pregnancy", got)
	}
}

func TestValidatePregnancyStatus(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	failed := today.AddDate(0, 0, -10)
	tests := []struct {
		name       string
		status     string
		startDate  time.Time
		failedDate *time.Time
		expected   string
	}{
		{"unconfirmed early", choices.PregnancyStatusUnconfirmed, today.AddDate(0, 0, -10), nil, ""},
		{"confirmed early", choices.PregnancyStatusConfirmed, today.AddDate(0, 0, -10), nil, "too_early_to_confirm_status"},
		{"confirmed after window", choices.PregnancyStatusConfirmed, today.AddDate(0, 0, -45), nil, ""},
		{"failed without date", choices.PregnancyStatusFailed, today.AddDate(0, 0, -45), nil, "missing_date_of_failure"},
		{"failed with date", choices.PregnancyStatusFailed, today.AddDate(0, 0, -45), &failed, ""},
		{"unknown status", "Probable", today.AddDate(0, 0, -45), nil, "invalid_pregnancy_status_choice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidatePregnancyStatus(tt.status, tt.startDate, tt.failedDate, today))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidatePregnancyDates(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -300)
	normal := start.AddDate(0, 0, 283)
	tooShort := start.AddDate(0, 0, 200)
	beforeStart := start.AddDate(0, 0, -5)

	tests := []struct {
		name     string
		start    time.Time
		calving  *time.Time
		expected string
	}{
		{"ongoing", start, nil, ""},
		{"future start", today.AddDate(0, 0, 1), nil, "invalid_start_date"},
		{"normal gestation", start, &normal, ""},
		{"short gestation", start, &tooShort, "invalid_calving_start_date_difference"},
		{"calving before start", start, &beforeStart, "invalid_date_of_calving"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidatePregnancyDates(tt.start, tt.calving, today))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidatePregnancyScanDate(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -90)
	inWindow := start.AddDate(0, 0, 35)
	tooEarly := start.AddDate(0, 0, 10)
	tooLate := start.AddDate(0, 0, 75)

	tests := []struct {
		name     string
		scan     *time.Time
		expected string
	}{
		{"no scan", nil, ""},
		{"scan in window", &inWindow, ""},
		{"scan too early", &tooEarly, "invalid_scan_date_difference"},
		{"scan too late", &tooLate, "invalid_scan_date_difference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidatePregnancyScanDate(tt.scan, start, today))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidatePregnancyOutcome(t *testing.T) {
	live := choices.PregnancyOutcomeLive
	stillborn := choices.PregnancyOutcomeStillborn
	miscarriage := choices.PregnancyOutcomeMiscarriage
	calved := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		outcome  *string
		status   string
		calving  *time.Time
		expected string
	}{
		{"no outcome yet", nil, choices.PregnancyStatusConfirmed, nil, ""},
		{"live confirmed with calving", &live, choices.PregnancyStatusConfirmed, &calved, ""},
		{"live unconfirmed", &live, choices.PregnancyStatusUnconfirmed, &calved, "invalid_outcome_status"},
		{"live without calving date", &live, choices.PregnancyStatusConfirmed, nil, "missing_date_of_calving"},
		{"stillborn confirmed", &stillborn, choices.PregnancyStatusConfirmed, &calved, ""},
		{"miscarriage failed", &miscarriage, choices.PregnancyStatusFailed, nil, ""},
		{"miscarriage confirmed", &miscarriage, choices.PregnancyStatusConfirmed, nil, "invalid_outcome_status"},
		{"calving without outcome", nil, choices.PregnancyStatusConfirmed, &calved, "missing_outcome"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidatePregnancyOutcome(tt.outcome, tt.status, tt.calving))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}
