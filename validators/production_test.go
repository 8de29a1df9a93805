package validators

import (
	"testing"
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

func TestValidateLactationAge(t *testing.T) {
	born := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	earliest := born.AddDate(0, 0, 635)

	if err := ValidateLactationAge(earliest, born); err != nil {
		t.Errorf("earliest plausible start rejected: %v", err)
	}
	if err := ValidateLactationAge(earliest.AddDate(0, 0, 100), born); err != nil {
		t.Errorf("later start rejected: %v", err)
	}
	if got := code(ValidateLactationAge(earliest.AddDate(0, 0, -1), born)); got != "invalid_start_date" {
		t.Errorf("early start code = %q, expected invalid_start_date", got)
	}
}

func TestValidateLactationFields(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -30)
	future := today.AddDate(0, 0, 5)

	tests := []struct {
		name         string
		start        time.Time
		end          *time.Time
		hasPregnancy bool
		number       int
		isBought     bool
		ageDays      int
		expected     string
	}{
		{"first lactation", start, nil, true, 1, false, 700, ""},
		{"future start", future, nil, true, 1, false, 700, "start_date_in_future"},
		{"future end", start, &future, true, 1, false, 700, "end_date_in_future"},
		{"bought cow with pregnancy link", start, nil, true, 1, true, 700, "pregnancy_should_be_null"},
		{"bought cow without link", start, nil, false, 1, true, 700, ""},
		{"second lactation too young", start, nil, true, 2, false, 700, "invalid_lactation_number"},
		{"second lactation old enough", start, nil, true, 2, false, 1000, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := code(ValidateLactationFields(tt.start, tt.end, tt.hasPregnancy,
				tt.number, tt.isBought, tt.ageDays, today))
			if got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateMilkAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"typical milking", 12.5, ""},
		{"maximum", 35, ""},
		{"zero", 0, "invalid_amount"},
		{"negative", -1, "invalid_amount"},
		{"above maximum", 35.1, "exceeds_maximum_amount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateMilkAmount(tt.amount)); got != tt.expected {
				t.Errorf("ValidateMilkAmount(%v) code = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestValidateMilkingCow(t *testing.T) {
	tests := []struct {
		name         string
		gender       string
		availability string
		expected     string
	}{
		{"live female", choices.SexFemale, choices.CowAvailabilityAlive, ""},
		{"dead cow", choices.SexFemale, choices.CowAvailabilityDead, "invalid_availability_status"},
		{"sold cow", choices.SexFemale, choices.CowAvailabilitySold, "invalid_availability_status"},
		{"bull", choices.SexMale, choices.CowAvailabilityAlive, "male_cow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateMilkingCow(tt.gender, tt.availability)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestValidateMilkingLactation(t *testing.T) {
	tests := []struct {
		name         string
		hasLactation bool
		stage        string
		expected     string
	}{
		{"early lactation", true, choices.LactationStageEarly, ""},
		{"mid lactation", true, choices.LactationStageMid, ""},
		{"late lactation", true, choices.LactationStageLate, ""},
		{"dried off", true, choices.LactationStageDry, "dried_off_cow"},
		{"ended", true, choices.LactationStageEnded, "previous_lactation_ended"},
		{"no lactation", false, "", "no_active_lactation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code(ValidateMilkingLactation(tt.hasLactation, tt.stage)); got != tt.expected {
				t.Errorf("code = %q, expected %q", got, tt.expected)
			}
		})
	}
}
