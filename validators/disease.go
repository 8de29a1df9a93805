package validators

import (
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for diseases, pathogens and symptoms.

// ValidatePathogenName checks the pathogen type choice.
func ValidatePathogenName(name string) error {
	if !choices.Contains(choices.PathogenChoices, name) {
		return errf("name", "invalid_pathogen", "invalid pathogen: '%s'", name)
	}
	return nil
}

// ValidateDiseaseCategoryName checks the disease category choice.
func ValidateDiseaseCategoryName(name string) error {
	if !choices.Contains(choices.DiseaseCategoryChoices, name) {
		return errf("name", "invalid_disease_category", "invalid disease category: '%s'", name)
	}
	return nil
}

// ValidateDiseaseFields requires a name and an associated pathogen.
func ValidateDiseaseFields(name string, hasPathogen bool) error {
	if name == "" {
		return errf("name", "missing_disease_name", "a disease must have a name")
	}
	if !hasPathogen {
		return errf("pathogen", "missing_pathogen", "a disease must name its pathogen")
	}
	return nil
}

// ValidateDiseaseRecovery cross-checks the recovery flag with the recovery
// and reporting dates: recovered implies a recovery date and vice versa, and
// recovery cannot predate the report.
func ValidateDiseaseRecovery(isRecovered bool, recoveredDate *time.Time, dateReported, today time.Time) error {
	if isRecovered && recoveredDate == nil {
		return errf("recovered_date", "missing_recovered_date",
			"a disease marked as recovered requires a recovered date")
	}
	if recoveredDate != nil && !isRecovered {
		return errf("is_recovered", "unexpected_recovered_date",
			"a disease with a recovered date must be marked as recovered")
	}
	if recoveredDate != nil && recoveredDate.Before(dateReported) {
		return errf("recovered_date", "invalid_recovered_date",
			"recovered date cannot be before the date the disease was reported")
	}
	if dateReported.After(today) {
		return errf("date_reported", "invalid_date_reported",
			"the date a disease was reported cannot be in the future")
	}
	return nil
}

// ValidateDiseaseTreatments requires at least one treatment before a disease
// can be closed as recovered. treatments is the number of linked treatments.
func ValidateDiseaseTreatments(isRecovered bool, treatments int64) error {
	if isRecovered && treatments == 0 {
		return errf("treatments", "missing_treatment",
			"a recovered disease requires at least one treatment")
	}
	return nil
}

// ValidateSymptomDate rejects observation dates in the future.
func ValidateSymptomDate(dateObserved, today time.Time) error {
	if dateObserved.After(today) {
		return errf("date_observed", "invalid_date_observed",
			"symptom observation date cannot be in the future")
	}
	return nil
}

// ValidateTreatmentDate rejects treatment dates in the future.
func ValidateTreatmentDate(dateOfTreatment, today time.Time) error {
	if dateOfTreatment.After(today) {
		return errf("date_of_treatment", "invalid_date_of_treatment",
			"treatment date cannot be in the future")
	}
	return nil
}
