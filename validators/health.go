package validators

import (
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for weight, quarantine and culling records.

// ValidateWeight bounds a cow's weight measurement in kilograms.
func ValidateWeight(weightInKgs float64) error {
	if weightInKgs < 10 {
		return errf("weight_in_kgs", "invalid_weight", "a cow cannot weigh less than 10 kgs")
	}
	if weightInKgs > 1500 {
		return errf("weight_in_kgs", "invalid_weight", "a cow's weight cannot exceed 1500 kgs")
	}
	return nil
}

// ValidateWeighingAvailability requires the cow to be on the farm and alive.
func ValidateWeighingAvailability(availability string) error {
	if availability != choices.CowAvailabilityAlive {
		return errf("cow", "invalid_availability_status",
			"weight records are only allowed for cows present in the farm; this cow is marked as %s", availability)
	}
	return nil
}

// ValidateWeighingFrequency admits a single weight record per cow per date.
// recordsOnDate is the number of records already stored for that cow on the
// candidate date.
func ValidateWeighingFrequency(recordsOnDate int64) error {
	if recordsOnDate > 0 {
		return errf("date_taken", "duplicate_weight_record",
			"this cow already has a weight record on this date")
	}
	return nil
}

// ValidateQuarantineReason checks the reason against the cow's attributes:
// a bought-cow quarantine requires a bought cow, a calving quarantine a
// female one.
func ValidateQuarantineReason(reason, cowGender string, cowIsBought bool) error {
	if !choices.Contains(choices.QuarantineReasonChoices, reason) {
		return errf("reason", "invalid_quarantine_reason", "invalid quarantine reason: '%s'", reason)
	}
	if reason == choices.QuarantineReasonBoughtCow && !cowIsBought {
		return errf("reason", "not_a_bought_cow",
			"only bought cows can be quarantined with the reason '%s'", reason)
	}
	if reason == choices.QuarantineReasonCalving && cowGender != choices.SexFemale {
		return errf("reason", "invalid_quarantine_reason",
			"only female cows can be quarantined for calving")
	}
	return nil
}

// ValidateQuarantineDates requires the end date, when present, to fall on or
// after the start date.
func ValidateQuarantineDates(startDate time.Time, endDate *time.Time) error {
	if endDate != nil && endDate.Before(startDate) {
		return errf("end_date", "invalid_end_date", "end date must be after the start date")
	}
	return nil
}

// ValidateCullingReason checks the culling reason choice.
func ValidateCullingReason(reason string) error {
	if !choices.Contains(choices.CullingReasonChoices, reason) {
		return errf("reason", "invalid_culling_reason", "invalid culling reason: '%s'", reason)
	}
	return nil
}

// ValidateSingleCulling admits one culling record per cow. existing is the
// number of culling records already stored for the cow.
func ValidateSingleCulling(existing int64) error {
	if existing > 0 {
		return errf("cow", "duplicate_culling_record", "this cow already has a culling record")
	}
	return nil
}
