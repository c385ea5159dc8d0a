package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aprilandbutter/storefront/internal/entity"
)

const (
	MsgNameRequired    = "Name is required"
	MsgEmailRequired   = "Email is required"
	MsgEmailInvalid    = "Please enter a valid email"
	MsgMessageRequired = "Message is required"
)

// emailPattern is deliberately loose and unanchored: something, an @, something, a dot, something.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult maps field name to error message. Empty means valid.
type ValidationResult map[string]string

func (r ValidationResult) OK() bool {
	return len(r) == 0
}

// Errors returns the entries sorted by field name.
func (r ValidationResult) Errors() []ValidationError {
	out := make([]ValidationError, 0, len(r))
	for field, msg := range r {
		out = append(out, ValidationError{Field: field, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// Err converts a failed result into a DomainError, nil when valid.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}

	parts := make([]string, 0, len(r))
	for _, e := range r.Errors() {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

func (r ValidationResult) clone() ValidationResult {
	out := make(ValidationResult, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func ValidateContactSubmission(s entity.ContactSubmission) ValidationResult {
	errs := ValidationResult{}

	if strings.TrimSpace(s.Name) == "" {
		errs[entity.FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(s.Email) == "" {
		errs[entity.FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(s.Email) {
		errs[entity.FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(s.Message) == "" {
		errs[entity.FieldMessage] = MsgMessageRequired
	}

	return errs
}
