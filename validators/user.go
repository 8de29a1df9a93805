package validators

import (
	"strings"

	"github.com/nyumbani-farms/herdbook/choices"
)

// Rules for farm staff accounts.

func ValidateUserRole(role string) error {
	if !choices.Contains(choices.FarmRoleChoices, role) {
		return errf("role", "invalid_role", "invalid farm role: '%s'", role)
	}
	return nil
}

func ValidateUserSex(sex string) error {
	if !choices.Contains(choices.SexChoices, sex) {
		return errf("sex", "invalid_sex", "invalid sex: '%s'", sex)
	}
	return nil
}

// ValidateUserPhone applies the same loose shape check the mobile clients
// rely on: digits with an optional leading plus, 9 to 15 characters.
func ValidateUserPhone(phone string) error {
	trimmed := strings.TrimPrefix(phone, "+")
	if len(trimmed) < 9 || len(trimmed) > 15 {
		return errf("phone", "invalid_phone", "invalid phone number: '%s'", phone)
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return errf("phone", "invalid_phone", "invalid phone number: '%s'", phone)
		}
	}
	return nil
}
