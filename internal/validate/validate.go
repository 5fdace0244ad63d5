// Package validate implements the input validation pipeline for the auth
// endpoints. Each check returns a tagged Violation carrying a machine
// readable reason code plus a human message, and checks run in a fixed
// order: field presence first, then per-field format. The first failing
// check wins.
package validate

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Reason codes returned in the `error` field of 400 responses.
const (
	CodeMissingFields      = "MISSING_FIELDS"
	CodeInvalidName        = "INVALID_NAME"
	CodeInvalidEmail       = "INVALID_EMAIL"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
)

// Violation is the tagged result of a failed check.
type Violation struct {
	Code    string
	Message string
}

var (
	v         = validator.New()
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s]{2,50}$`)
)

// Registration validates the register payload. Order: presence of all three
// fields, name format, email syntax, password policy. Returns nil when the
// input is acceptable.
func Registration(name, email, password string) *Violation {
	if name == "" || email == "" || password == "" {
		return &Violation{
			Code:    CodeMissingFields,
			Message: "All fields (name, email, password) are required",
		}
	}
	if !ValidName(name) {
		return &Violation{
			Code:    CodeInvalidName,
			Message: "Name must be 2-50 characters and contain only letters and spaces",
		}
	}
	if !ValidEmail(email) {
		return &Violation{
			Code:    CodeInvalidEmail,
			Message: "Please provide a valid email address",
		}
	}
	if !StrongPassword(password) {
		return &Violation{
			Code:    CodeWeakPassword,
			Message: "Password must be at least 8 characters with uppercase, lowercase, and number",
		}
	}
	return nil
}

// Credentials validates the login payload: presence, then email syntax.
func Credentials(email, password string) *Violation {
	if email == "" || password == "" {
		return &Violation{
			Code:    CodeMissingCredentials,
			Message: "Email and password are required",
		}
	}
	if !ValidEmail(email) {
		return &Violation{
			Code:    CodeInvalidEmail,
			Message: "Please provide a valid email address",
		}
	}
	return nil
}

// ValidName accepts 2-50 characters of letters and spaces. Leading and
// trailing whitespace is ignored.
func ValidName(name string) bool {
	return nameRegex.MatchString(strings.TrimSpace(name))
}

// ValidEmail checks standard address syntax.
func ValidEmail(email string) bool {
	return v.Var(email, "email") == nil
}

// StrongPassword enforces the password policy: minimum 8 characters with at
// least one uppercase letter, one lowercase letter and one digit.
func StrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
