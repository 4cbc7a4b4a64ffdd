package shared

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldViolation describes one failed constraint on one field
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError collects every field violation found in a single pass
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == CodeValidation
}

// Add appends a violation
func (e *ValidationError) Add(field, rule, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule, Message: message})
}

// Merge appends the violations carried by other, prefixing each field with
// prefix and a dot. Errors other than a ValidationError are ignored.
func (e *ValidationError) Merge(prefix string, other error) {
	var v *ValidationError
	if !errors.As(other, &v) {
		return
	}
	for _, fv := range v.Violations {
		if prefix != "" {
			fv.Field = prefix + "." + fv.Field
		}
		e.Violations = append(e.Violations, fv)
	}
}

// OrNil returns nil when nothing was collected
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

// ErrValidation is the sentinel matched by every ValidationError
var ErrValidation = NewDomainError(CodeValidation, "Validation failed")

// Constraint binds a field name to validator rules, e.g. "required,max=100".
type Constraint struct {
	Field string
	Rules string
}

// ConstraintTable is a declarative list of field constraints evaluated in order.
// Values are looked up by field name; a missing value is validated as its zero value.
type ConstraintTable []Constraint

// Validate evaluates every constraint and returns all violations, or nil.
func (t ConstraintTable) Validate(values map[string]any) error {
	verr := &ValidationError{}
	for _, c := range t {
		value, ok := values[c.Field]
		if !ok {
			value = ""
		}
		if err := fieldValidator.Var(value, c.Rules); err != nil {
			errs, ok := err.(validator.ValidationErrors)
			if !ok {
				verr.Add(c.Field, "invalid", "Invalid value")
				continue
			}
			for _, fe := range errs {
				verr.Add(c.Field, fe.Tag(), RuleMessage(fe))
			}
		}
	}
	return verr.OrNil()
}

var fieldValidator = newFieldValidator()

func newFieldValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterRules(v)
	return v
}

var (
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
	phonePattern  = regexp.MustCompile(`^\+?[0-9][0-9()\-\s]*$`)
	cepPattern    = regexp.MustCompile(`^[0-9]{5}-?[0-9]{3}$`)
	ufPattern     = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

// RegisterRules installs the custom tags used by the constraint tables on v.
// The HTTP binding validator calls this too so both layers speak the same tags.
func RegisterRules(v *validator.Validate) {
	_ = v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("cep", func(fl validator.FieldLevel) bool {
		return cepPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		return ufPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return !t.After(time.Now())
	})
}

// RuleMessage returns a human-readable message for a failed rule
func RuleMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "digits":
		return "Must contain only digits"
	case "phone":
		return "Invalid phone number"
	case "cep":
		return "Invalid postal code, expected 00000-000"
	case "uf":
		return "Must be a two-letter state code"
	case "notfuture":
		return "Must not be in the future"
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	default:
		return fmt.Sprintf("Failed rule %q", e.Tag())
	}
}
