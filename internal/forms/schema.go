// Package forms drives the four entity editors (tenant, property,
// maintenance, lease) from declarative field schemas, so one engine
// validates them all and derived fields cannot drift from their inputs.
package forms

import (
	"strconv"
	"time"

	"backoffice-service/internal/validate"
)

// DateLayout is the wire format for form date fields.
const DateLayout = "2006-01-02"

// Field kinds understood by the engine.
const (
	KindText   = "text"
	KindNumber = "number"
	KindDate   = "date"
	KindSelect = "select"
)

// Entity kinds, the tag of the form variant.
const (
	EntityTenant      = "tenant"
	EntityProperty    = "property"
	EntityMaintenance = "maintenance"
	EntityLease       = "lease"
)

// Field describes one editable form field.
type Field struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`

	// Check runs after the kind/required checks pass and the value is
	// non-empty.
	Check func(string) *validate.FieldError `json:"-"`
}

// Schema is the full field set for one entity editor.
type Schema struct {
	Entity string  `json:"entity"`
	Fields []Field `json:"fields"`
}

// Values is the raw form state, every field as entered.
type Values map[string]string

// Validate checks every field against the schema. Derived fields are not
// part of any schema and therefore can never be submitted directly.
func (s Schema) Validate(values Values) []validate.FieldError {
	var errs []validate.FieldError
	for _, f := range s.Fields {
		value := values[f.Name]
		if value == "" {
			if f.Required {
				errs = append(errs, validate.FieldError{Field: f.Name, Message: f.Label + " is required"})
			}
			continue
		}

		switch f.Kind {
		case KindNumber:
			if n, err := strconv.ParseFloat(value, 64); err != nil || n < 0 {
				errs = append(errs, validate.FieldError{Field: f.Name, Message: f.Label + " must be a non-negative number"})
				continue
			}
		case KindDate:
			if _, err := time.Parse(DateLayout, value); err != nil {
				errs = append(errs, validate.FieldError{Field: f.Name, Message: f.Label + " must be a date in YYYY-MM-DD format"})
				continue
			}
		case KindSelect:
			if !contains(f.Options, value) {
				errs = append(errs, validate.FieldError{Field: f.Name, Message: f.Label + " has an unsupported value"})
				continue
			}
		}

		if f.Check != nil {
			if err := f.Check(value); err != nil {
				errs = append(errs, *err)
			}
		}
	}
	return errs
}

// Float parses a numeric field, returning nil when unset.
func (v Values) Float(name string) *float64 {
	raw, ok := v[name]
	if !ok || raw == "" {
		return nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &n
}

// Int parses an integer field, returning 0 when unset.
func (v Values) Int(name string) int {
	n, err := strconv.Atoi(v[name])
	if err != nil {
		return 0
	}
	return n
}

// Date parses a date field, returning nil when unset.
func (v Values) Date(name string) *time.Time {
	raw, ok := v[name]
	if !ok || raw == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

func formatAmount(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
