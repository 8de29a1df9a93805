package validators

import (
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for heat observations, inseminations and pregnancies, mirroring the
// breeding calendar the farm runs on: a 30 day confirmation window, a 21-60
// day scan window, a 270-295 day gestation and a 60 day rest after calving.

// ValidateHeatCow checks the cow-side preconditions for recording a heat
// observation.
func ValidateHeatCow(gender, availability, pregnancyStatus, productionStatus string, ageInDays int) error {
	if gender == choices.SexMale {
		return errf("cow", "invalid_gender", "heat can only be observed in female cows")
	}
	if availability == choices.CowAvailabilityDead {
		return errf("cow", "dead_cow", "a dead cow cannot be in heat")
	}
	if ageInDays < 365 {
		return errf("cow", "invalid_age_for_heat", "a cow must be at least 12 months old to be in heat")
	}
	if pregnancyStatus == choices.CowPregnancyPregnant {
		return errf("cow", "cow_already_pregnant", "this cow is already pregnant")
	}
	if productionStatus != choices.ProductionStatusOpen {
		return errf("cow", "invalid_production_status",
			"the cow must be open and ready to be served; this cow is marked as %s", productionStatus)
	}
	return nil
}

// ValidateHeatSpacing rejects a heat observation recorded within 21 days of
// a previous one. recentHeats is the number of observations for the cow in
// the 21 days before the candidate observation time.
func ValidateHeatSpacing(recentHeats int64) error {
	if recentHeats > 0 {
		return errf("observation_time", "in_heat_within_21_days",
			"a cow cannot be in heat within 21 days of the previous heat observation")
	}
	return nil
}

// ValidateHeatAfterCalving rejects a heat observation within 60 days of the
// latest calving. lastCalving may be nil when the cow never calved.
func ValidateHeatAfterCalving(pregnancyStatus string, lastCalving *time.Time, observationTime time.Time) error {
	if pregnancyStatus != choices.CowPregnancyCalved || lastCalving == nil {
		return nil
	}
	if observationTime.Sub(*lastCalving) < 60*24*time.Hour {
		return errf("observation_time", "in_heat_after_calving",
			"a cow cannot be in heat within 60 days after calving")
	}
	return nil
}

// ValidateInseminationCow checks the cow-side preconditions for an
// insemination record.
func ValidateInseminationCow(gender, availability, pregnancyStatus string, ageInDays int) error {
	if gender == choices.SexMale {
		return errf("cow", "invalid_gender", "only female cows can be inseminated")
	}
	if availability != choices.CowAvailabilityAlive {
		return errf("cow", "invalid_availability_status",
			"cannot inseminate a cow marked as %s", availability)
	}
	if ageInDays < 365 {
		return errf("cow", "age_below_threshold",
			"a cow must be at least 12 months old to be served")
	}
	if pregnancyStatus == choices.CowPregnancyPregnant {
		return errf("cow", "cow_already_pregnant", "this cow is already pregnant")
	}
	return nil
}

// ValidateInseminationDeletion forbids removal of an insemination linked to
// a pregnancy.
func ValidateInseminationDeletion(hasPregnancy bool) error {
	if hasPregnancy {
		return errf("pregnancy", "insemination_linked_to_pregnancy",
			"deletion not allowed: insemination record is associated with a pregnancy")
	}
	return nil
}

// ValidatePregnancyAge checks the cow's age and the pregnancy start date
// against the one-year service threshold.
func ValidatePregnancyAge(ageInDays int, startDate, dateOfBirth time.Time) error {
	if ageInDays < 365 {
		return errf("cow", "age_below_threshold",
			"a cow must be at least 12 months old to be served; this cow is %.2f months old", float64(ageInDays)/30.417)
	}
	if startDate.IsZero() {
		return errf("start_date", "missing_start_date", "provide the pregnancy start date")
	}
	daysAtStart := int(startDate.Sub(dateOfBirth).Hours() / 24)
	if daysAtStart < 0 {
		return errf("start_date", "invalid_start_date", "start date predates the cow's birth")
	}
	if daysAtStart < 365 {
		return errf("start_date", "pregnancy_age_threshold_not_met",
			"a cow cannot be pregnant at %.2f months of age", float64(daysAtStart)/30.417)
	}
	return nil
}

// ValidatePregnancyCowStatus checks the cow's current pregnancy status.
func ValidatePregnancyCowStatus(pregnancyStatus string) error {
	switch pregnancyStatus {
	case choices.CowPregnancyPregnant:
		return errf("cow", "cow_already_pregnant", "this cow is already pregnant")
	case choices.CowPregnancyCalved:
		return errf("cow", "cow_calved_recently", "this cow just gave birth recently")
	case choices.CowPregnancyUnavailable:
		return errf("cow", "cow_not_ready", "this cow is not ready")
	}
	return nil
}

// ValidatePregnancyCowAvailability rejects pregnancy records for dead or
// sold cows.
func ValidatePregnancyCowAvailability(availability string) error {
	if availability == choices.CowAvailabilityDead {
		return errf("cow", "dead_cow", "cannot add a pregnancy record for a dead cow")
	}
	if availability == choices.CowAvailabilitySold {
		return errf("cow", "sold_cow", "cannot add a pregnancy record for a sold cow")
	}
	return nil
}

// ValidatePregnancyStatus checks the status choice and its relationship to
// the failure date and the elapsed duration.
func ValidatePregnancyStatus(status string, startDate time.Time, failedDate *time.Time, today time.Time) error {
	if !choices.Contains(choices.PregnancyStatusChoices, status) {
		return errf("pregnancy_status", "invalid_pregnancy_status_choice",
			"invalid pregnancy status: '%s'", status)
	}
	if status == choices.PregnancyStatusFailed && failedDate == nil {
		return errf("pregnancy_failed_date", "missing_date_of_failure",
			"pregnancy is marked as failed; provide the date of failure")
	}
	elapsed := int(today.Sub(startDate).Hours() / 24)
	if elapsed < 30 && status != choices.PregnancyStatusUnconfirmed {
		return errf("pregnancy_status", "too_early_to_confirm_status",
			"confirm the pregnancy status on %s", startDate.AddDate(0, 0, 30).Format("2006-01-02"))
	}
	return nil
}

// ValidatePregnancyDates checks the start and calving dates, including the
// 270-295 day gestation window.
func ValidatePregnancyDates(startDate time.Time, dateOfCalving *time.Time, today time.Time) error {
	if startDate.After(today) {
		return errf("start_date", "invalid_start_date", "start date cannot be in the future")
	}
	if dateOfCalving == nil {
		return nil
	}
	if dateOfCalving.Before(startDate) {
		return errf("date_of_calving", "invalid_date_of_calving",
			"date of calving must be after the start date")
	}
	if dateOfCalving.After(today) {
		return errf("date_of_calving", "invalid_date_of_calving",
			"calving date cannot be in the future")
	}
	days := int(dateOfCalving.Sub(startDate).Hours() / 24)
	if days < 270 || days > 295 {
		return errf("date_of_calving", "invalid_calving_start_date_difference",
			"difference between calving date and start date should be between 270 and 295 days; currently %d day(s)", days)
	}
	return nil
}

// ValidatePregnancyScanDate checks the scan date against the 21-60 day
// window after the start date.
func ValidatePregnancyScanDate(scanDate *time.Time, startDate, today time.Time) error {
	if scanDate == nil {
		return nil
	}
	if scanDate.Before(startDate) {
		return errf("pregnancy_scan_date", "scan_date_before_start_date",
			"pregnancy scan date must be after the start date")
	}
	if scanDate.After(today) {
		return errf("pregnancy_scan_date", "scan_date_in_future",
			"pregnancy scan date cannot be in the future")
	}
	days := int(scanDate.Sub(startDate).Hours() / 24)
	if days < 21 || days > 60 {
		return errf("pregnancy_scan_date", "invalid_scan_date_difference",
			"scan date should be between 21 and 60 days from the start date; currently %d day(s) elapsed", days)
	}
	return nil
}

// ValidatePregnancyFailedDate checks the failure date against the status and
// the 21-295 day window after the start date.
func ValidatePregnancyFailedDate(failedDate *time.Time, startDate time.Time, status string, today time.Time) error {
	if failedDate == nil {
		return nil
	}
	if failedDate.After(today) {
		return errf("pregnancy_failed_date", "failed_date_in_future",
			"pregnancy failed date cannot be in the future")
	}
	if failedDate.Before(startDate) {
		return errf("pregnancy_failed_date", "failed_date_before_start_date",
			"pregnancy failed date cannot be before the start date")
	}
	if status != choices.PregnancyStatusFailed {
		return errf("pregnancy_status", "invalid_failed_date_status",
			"pregnancy status must be '%s' if a pregnancy failed date is provided", choices.PregnancyStatusFailed)
	}
	days := int(failedDate.Sub(startDate).Hours() / 24)
	if days < 21 || days > 295 {
		return errf("pregnancy_failed_date", "invalid_failed_date_difference",
			"pregnancy failed date must be between 21 and 295 days from the start date")
	}
	return nil
}

// ValidatePregnancyOutcome cross-checks the outcome with the status and the
// calving date.
func ValidatePregnancyOutcome(outcome *string, status string, dateOfCalving *time.Time) error {
	if outcome != nil {
		if !choices.Contains(choices.PregnancyOutcomeChoices, *outcome) {
			return errf("pregnancy_outcome", "invalid_outcome_choice",
				"invalid pregnancy outcome: '%s'", *outcome)
		}
		if (*outcome == choices.PregnancyOutcomeLive || *outcome == choices.PregnancyOutcomeStillborn) &&
			status != choices.PregnancyStatusConfirmed {
			return errf("pregnancy_outcome", "invalid_outcome_status",
				"pregnancy status must be '%s' if the pregnancy outcome is '%s'", choices.PregnancyStatusConfirmed, *outcome)
		}
		if *outcome == choices.PregnancyOutcomeLive && dateOfCalving == nil {
			return errf("date_of_calving", "missing_date_of_calving",
				"date of calving must be provided if the pregnancy outcome is '%s'", *outcome)
		}
		if *outcome == choices.PregnancyOutcomeMiscarriage && status != choices.PregnancyStatusFailed {
			return errf("pregnancy_outcome", "invalid_outcome_status",
				"pregnancy status must be '%s' if the pregnancy outcome is 'Miscarriage'; currently it is %s", choices.PregnancyStatusFailed, status)
		}
	}
	if dateOfCalving != nil {
		if outcome == nil ||
			(*outcome != choices.PregnancyOutcomeLive && *outcome != choices.PregnancyOutcomeStillborn) {
			return errf("pregnancy_outcome", "missing_outcome", "provide the pregnancy outcome")
		}
	}
	return nil
}
