// Package validation wraps go-playground/validator with the marketplace's
// field rules: 10-digit phones, 12-digit Aadhaar numbers and the password
// policy enforced at signup.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	nonDigitPattern  = regexp.MustCompile(`\D`)
	emailPattern     = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("aadhaar12", func(fl validator.FieldLevel) bool {
		return ValidAadhaar(fl.Field().String())
	})
	_ = v.RegisterValidation("password_policy", func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
	return v
}

// Struct validates a DTO against its validate tags.
func Struct(s any) error {
	return validate.Struct(s)
}

// ValidPhone checks the phone is exactly 10 digits once separators are stripped.
func ValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	return len(nonDigitPattern.ReplaceAllString(phone, "")) == 10
}

// ValidAadhaar checks the Aadhaar number is exactly 12 digits.
func ValidAadhaar(aadhaar string) bool {
	if aadhaar == "" {
		return false
	}
	return len(nonDigitPattern.ReplaceAllString(aadhaar, "")) == 12
}

// ValidEmail does a basic user@domain.tld format check.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if len(email) < 5 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}

// ValidPassword enforces the password policy: at least 8 characters with one
// uppercase letter, one lowercase letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return uppercasePattern.MatchString(password) &&
		lowercasePattern.MatchString(password) &&
		digitPattern.MatchString(password)
}

// PasswordRequirements describes the policy for error messages.
func PasswordRequirements() string {
	return "At least 8 characters, one uppercase letter, one lowercase letter and one digit"
}
