package validation

import (
	"html"
	"strings"
	"time"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = playground.New()

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"msg"`
}

// Rule transforms a field value and/or reports a failure message.
// An empty message means the rule passed.
type Rule func(value string) (string, string)

// Validator runs rule chains over form fields and collects failures.
// All fields are evaluated; within one chain only the first failure is
// recorded, so every offending field yields exactly one error.
type Validator struct {
	errs []FieldError
}

func New() *Validator {
	return &Validator{}
}

// Field runs the rule chain over value and returns the sanitized result.
// Sanitizing rules after a failed check still run, matching the
// trim -> check -> escape chains the forms expect.
func (v *Validator) Field(name, value string, rules ...Rule) string {
	failed := false
	for _, rule := range rules {
		next, msg := rule(value)
		value = next
		if msg != "" && !failed {
			v.errs = append(v.errs, FieldError{Field: name, Message: msg})
			failed = true
		}
	}
	return value
}

// List trims and escapes every element, dropping empties. When required,
// an empty result records a failure for the field.
func (v *Validator) List(name string, values []string, required bool, msg string) []string {
	out := make([]string, 0, len(values))
	for _, val := range values {
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		out = append(out, html.EscapeString(val))
	}
	if required && len(out) == 0 {
		v.errs = append(v.errs, FieldError{Field: name, Message: msg})
	}
	return out
}

func (v *Validator) Errors() []FieldError {
	return v.errs
}

func (v *Validator) Ok() bool {
	return len(v.errs) == 0
}

// Trim removes surrounding whitespace.
func Trim(value string) (string, string) {
	return strings.TrimSpace(value), ""
}

// Escape HTML-escapes the value.
func Escape(value string) (string, string) {
	return html.EscapeString(value), ""
}

// Required fails on an empty value.
func Required(msg string) Rule {
	return func(value string) (string, string) {
		if value == "" {
			return value, msg
		}
		return value, ""
	}
}

// MaxLen fails when the value exceeds n characters.
func MaxLen(n int, msg string) Rule {
	return func(value string) (string, string) {
		if len([]rune(value)) > n {
			return value, msg
		}
		return value, ""
	}
}

// Email fails unless the value is a syntactically valid email address.
func Email(msg string) Rule {
	return func(value string) (string, string) {
		if err := validate.Var(value, "required,email"); err != nil {
			return value, msg
		}
		return value, ""
	}
}

// Phone fails unless the value looks like a phone number: E.164 or plain
// digits.
func Phone(msg string) Rule {
	return func(value string) (string, string) {
		if err := validate.Var(value, "required,e164|numeric"); err != nil {
			return value, msg
		}
		return value, ""
	}
}

// Decimal fails when a non-empty value does not parse as a decimal number.
// Emptiness is left to Required so the two failures stay distinct.
func Decimal(msg string) Rule {
	return func(value string) (string, string) {
		if value == "" {
			return value, ""
		}
		if _, err := decimal.NewFromString(value); err != nil {
			return value, msg
		}
		return value, ""
	}
}

// Date fails when a non-empty value does not parse as a calendar date
// (HTML date input format).
func Date(msg string) Rule {
	return func(value string) (string, string) {
		if value == "" {
			return value, ""
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return value, msg
		}
		return value, ""
	}
}

// OneOf fails unless the value equals one of the allowed values.
func OneOf(allowed []string, msg string) Rule {
	return func(value string) (string, string) {
		for _, a := range allowed {
			if value == a {
				return value, ""
			}
		}
		return value, msg
	}
}
