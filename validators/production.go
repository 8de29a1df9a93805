package validators

import (
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for lactations and milk records.

// ValidateLactationAge requires the lactation to start once the cow could
// plausibly have calved: 635 days of age (12 months to service plus a full
// gestation).
func ValidateLactationAge(startDate, dateOfBirth time.Time) error {
	earliest := dateOfBirth.AddDate(0, 0, 635)
	if startDate.Before(earliest) {
		return errf("start_date", "invalid_start_date",
			"invalid start date: lactation must have started on or around %s, not %s",
			earliest.Format("2006-01-02"), startDate.Format("2006-01-02"))
	}
	return nil
}

// ValidateLactationFields checks the start and end dates, the pregnancy link
// and the lactation number against the cow's history.
func ValidateLactationFields(startDate time.Time, actualEndDate *time.Time, hasPregnancy bool,
	lactationNumber int, cowIsBought bool, ageInDays int, today time.Time) error {
	if startDate.After(today) {
		return errf("start_date", "start_date_in_future", "start date cannot be in the future")
	}
	if actualEndDate != nil && actualEndDate.After(today) {
		return errf("actual_end_date", "end_date_in_future", "end date cannot be in the future")
	}
	if cowIsBought && hasPregnancy {
		return errf("pregnancy", "pregnancy_should_be_null",
			"a bought cow never calved on this farm; its lactation record cannot reference a pregnancy")
	}
	if (ageInDays-635)/305 < 1 && lactationNumber != 1 {
		return errf("lactation_number", "invalid_lactation_number", "invalid lactation number")
	}
	return nil
}

// ValidateMilkAmount bounds a single milking in kilograms.
func ValidateMilkAmount(amountInKgs float64) error {
	if amountInKgs <= 0 {
		return errf("amount_in_kgs", "invalid_amount", "invalid amount")
	}
	if amountInKgs > 35 {
		return errf("amount_in_kgs", "exceeds_maximum_amount",
			"amount %.2f kgs exceeds the maximum expected amount of 35 kgs", amountInKgs)
	}
	return nil
}

// ValidateMilkingCow checks that the cow can produce milk at all: alive and
// female.
func ValidateMilkingCow(gender, availability string) error {
	if availability == choices.CowAvailabilityDead {
		return errf("cow", "invalid_availability_status", "cannot add a milk record for a dead cow")
	}
	if availability == choices.CowAvailabilitySold {
		return errf("cow", "invalid_availability_status", "cannot add a milk record for a sold cow")
	}
	if gender != choices.SexFemale {
		return errf("cow", "male_cow", "this cow is a bull and cannot produce milk")
	}
	return nil
}

// ValidateMilkingLactation checks the cow's latest lactation stage.
// hasLactation is false when the cow has no lactation records at all.
func ValidateMilkingLactation(hasLactation bool, stage string) error {
	if !hasLactation {
		return errf("lactation", "no_active_lactation",
			"cannot add a milk entry: the cow has no active lactation")
	}
	switch stage {
	case choices.LactationStageDry:
		return errf("lactation", "dried_off_cow", "cannot add a milk entry: the cow has been dried off")
	case choices.LactationStageEnded:
		return errf("lactation", "previous_lactation_ended",
			"cannot add a milk entry: the previous lactation ended")
	}
	return nil
}
