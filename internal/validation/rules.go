// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"

	apperrors "github.com/fraservotes/console/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// TrimmedMaxLength validates that a string has at most max runes once surrounding
// whitespace is removed. Device names are stored trimmed, so the raw length is irrelevant.
func TrimmedMaxLength(max int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
		},
		validation.NewError(
			"validation_trimmed_max_length",
			fmt.Sprintf("must be no more than %d characters", max),
		),
	)
}

// MinPasswordLength validates that a password has at least min runes.
func MinPasswordLength(min int) validation.Rule {
	return validation.NewStringRuleWithError(
		func(s string) bool {
			return utf8.RuneCountInString(s) >= min
		},
		validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", min),
		),
	)
}
