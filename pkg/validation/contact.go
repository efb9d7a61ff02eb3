package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"go-contact-backend/internal/domain"
)

// Field bounds for contact form submissions (lengths in characters, after trim)
const (
	NameMinLen    = 2
	NameMaxLen    = 50
	MessageMinLen = 10
	MessageMaxLen = 1000
)

// ValidateContact checks an arbitrary decoded JSON record against the contact
// form rules and either returns the validated submission or the full ordered
// list of rule violations. Every rule is evaluated; validation never stops at
// the first failure. A field that is missing, not a string, or empty after
// trimming reports the required-rule message only, so a single field never
// stacks a type error on top of a required error.
func ValidateContact(v *validator.Validate, input map[string]any) (*domain.ContactSubmission, []string) {
	var errs []string

	name := stringField(input, "name")
	switch {
	case name == "":
		errs = append(errs, "Name is required")
	case utf8.RuneCountInString(name) < NameMinLen:
		errs = append(errs, fmt.Sprintf("Name must be at least %d characters", NameMinLen))
	case utf8.RuneCountInString(name) > NameMaxLen:
		errs = append(errs, fmt.Sprintf("Name must be at most %d characters", NameMaxLen))
	}

	email := stringField(input, "email")
	switch {
	case email == "":
		errs = append(errs, "Email is required")
	case v.Var(email, "email") != nil:
		errs = append(errs, "Email must be a valid email address")
	}

	message := stringField(input, "message")
	switch {
	case message == "":
		errs = append(errs, "Message is required")
	case utf8.RuneCountInString(message) < MessageMinLen:
		errs = append(errs, fmt.Sprintf("Message must be at least %d characters", MessageMinLen))
	case utf8.RuneCountInString(message) > MessageMaxLen:
		errs = append(errs, fmt.Sprintf("Message must be at most %d characters", MessageMaxLen))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.ContactSubmission{
		Name:    name,
		Email:   email,
		Message: message,
	}, nil
}

// stringField extracts a trimmed string value; non-string values collapse to
// "" so they fall under the required rule.
func stringField(input map[string]any, key string) string {
	raw, ok := input[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
