package validators

import (
	"time"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for cows and cow breeds. Every function is a pure predicate over its
// arguments; callers supply any related-record counts or stored values so the
// rules never touch the database themselves.

// ValidateBreedName checks that a breed name is one of the recognised breeds
// and not already registered. existing is the number of breeds already stored
// under that name.
func ValidateBreedName(name string, existing int64) error {
	if !choices.Contains(choices.CowBreedChoices, name) {
		return errf("name", "invalid_cow_breed", "invalid cow breed: '%s'", name)
	}
	if existing > 0 {
		return errf("name", "duplicate_cow_breed", "a breed with the name '%s' already exists", name)
	}
	return nil
}

// ValidateCowName rejects empty names and duplicates. existing is the number
// of cows already stored under the candidate name.
func ValidateCowName(name string, existing int64) error {
	if name == "" {
		return errf("name", "missing_name", "a cow must have a name")
	}
	if existing > 0 {
		return errf("name", "duplicate_cow_name", "a cow named '%s' already exists", name)
	}
	return nil
}

// ValidateCowBirthDate checks the date of birth against the reference date
// (normally today) and the maximum plausible age of 40 years.
func ValidateCowBirthDate(dateOfBirth, today time.Time) error {
	if dateOfBirth.After(today) {
		return errf("date_of_birth", "invalid_date_of_birth", "date of birth cannot be in the future")
	}
	if today.Sub(dateOfBirth) > time.Duration(40*365*24)*time.Hour {
		return errf("date_of_birth", "invalid_cow_age", "a cow cannot be older than 40 years")
	}
	return nil
}

// ValidateCowGender checks the sex value on creation.
func ValidateCowGender(gender string) error {
	if !choices.Contains(choices.SexChoices, gender) {
		return errf("gender", "invalid_gender", "invalid gender: '%s'", gender)
	}
	return nil
}

// ValidateGenderUpdate enforces that gender never changes after creation.
// storedGender is the value currently persisted for the cow.
func ValidateGenderUpdate(storedGender, newGender string) error {
	if storedGender != newGender {
		return errf("gender", "gender_update_not_allowed",
			"gender cannot be changed after registration; this cow is recorded as %s", storedGender)
	}
	return nil
}

// ValidateSireDamRelationship checks parent references. Either parent may be
// absent; when present the sire must be male and the dam female.
func ValidateSireDamRelationship(sireGender, damGender *string) error {
	if sireGender != nil && *sireGender != choices.SexMale {
		return errf("sire", "invalid_sire", "the sire of a cow must be male")
	}
	if damGender != nil && *damGender != choices.SexFemale {
		return errf("dam", "invalid_dam", "the dam of a cow must be female")
	}
	return nil
}

// ValidateCowAvailability cross-checks the availability status with the date
// of death: a dead cow needs one, every other status forbids it.
func ValidateCowAvailability(availability string, dateOfDeath *time.Time) error {
	if !choices.Contains(choices.CowAvailabilityChoices, availability) {
		return errf("availability_status", "invalid_availability_status",
			"invalid availability status: '%s'", availability)
	}
	if availability == choices.CowAvailabilityDead && dateOfDeath == nil {
		return errf("date_of_death", "missing_date_of_death",
			"a cow marked as dead requires a date of death")
	}
	if availability != choices.CowAvailabilityDead && dateOfDeath != nil {
		return errf("date_of_death", "unexpected_date_of_death",
			"date of death is only allowed for dead cows; this cow is marked as %s", availability)
	}
	return nil
}

// ValidateCowPregnancyStatus verifies the pregnancy status a cow carries.
// Bulls and heifers below one year must be marked unavailable.
func ValidateCowPregnancyStatus(pregnancyStatus, gender string, ageInDays int) error {
	if !choices.Contains(choices.CowPregnancyChoices, pregnancyStatus) {
		return errf("current_pregnancy_status", "invalid_pregnancy_status",
			"invalid pregnancy status: '%s'", pregnancyStatus)
	}
	if gender == choices.SexMale && pregnancyStatus != choices.CowPregnancyUnavailable {
		return errf("current_pregnancy_status", "invalid_pregnancy_status",
			"a male cow cannot have the pregnancy status %s", pregnancyStatus)
	}
	if gender == choices.SexFemale && ageInDays < 365 && pregnancyStatus != choices.CowPregnancyUnavailable {
		return errf("current_pregnancy_status", "invalid_pregnancy_status",
			"a cow below 12 months cannot have the pregnancy status %s", pregnancyStatus)
	}
	return nil
}

// ValidateCowCategory checks the category against sex and age. Bought cows
// may keep the category they arrived with.
func ValidateCowCategory(category, gender string, ageInDays int, isBought bool) error {
	if !choices.Contains(choices.CowCategoryChoices, category) {
		return errf("category", "invalid_category", "invalid cow category: '%s'", category)
	}
	if gender == choices.SexMale &&
		(category == choices.CowCategoryHeifer || category == choices.CowCategoryMilkingCow) {
		return errf("category", "invalid_category_for_gender",
			"a male cow cannot be categorised as %s", category)
	}
	if gender == choices.SexFemale && category == choices.CowCategoryBull {
		return errf("category", "invalid_category_for_gender",
			"a female cow cannot be categorised as a bull")
	}
	if isBought {
		return nil
	}
	young := category == choices.CowCategoryCalf || category == choices.CowCategoryWeaner
	if ageInDays < 365 && !young {
		return errf("category", "invalid_category_for_age",
			"a cow of %d days cannot be categorised as %s", ageInDays, category)
	}
	if ageInDays >= 730 && young {
		return errf("category", "invalid_category_for_age",
			"a cow of %d days can no longer be categorised as %s", ageInDays, category)
	}
	return nil
}

// ValidateCowProductionStatus checks the production status against sex and
// age at creation and on update.
func ValidateCowProductionStatus(productionStatus, gender string, ageInDays int) error {
	if !choices.Contains(choices.CowProductionStatusChoices, productionStatus) {
		return errf("current_production_status", "invalid_production_status",
			"invalid production status: '%s'", productionStatus)
	}
	allowed := choices.FemaleProductionStatuses
	if gender == choices.SexMale {
		allowed = choices.MaleProductionStatuses
	}
	if !choices.Contains(allowed, productionStatus) {
		return errf("current_production_status", "invalid_production_status_for_gender",
			"a %s cow cannot have the production status %s", gender, productionStatus)
	}
	mature := productionStatus != choices.ProductionStatusCalf &&
		productionStatus != choices.ProductionStatusWeaner
	if ageInDays < 365 && mature &&
		productionStatus != choices.ProductionStatusCulled &&
		productionStatus != choices.ProductionStatusQuarantined {
		return errf("current_production_status", "invalid_production_status_for_age",
			"a cow of %d days cannot have the production status %s", ageInDays, productionStatus)
	}
	return nil
}
