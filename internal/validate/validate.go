// Package validate holds the field-level checks that run before any data is
// sent to the upstream API. A failed check blocks submission entirely.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"backoffice-service/internal/model"
)

// FieldError is a validation failure attached to a single form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Phone requires exactly 10 digits.
func Phone(value string) *FieldError {
	if !digitsOfLen(value, 10) {
		return &FieldError{Field: "phone", Message: "phone number must be exactly 10 digits"}
	}
	return nil
}

// IDNumber requires exactly 16 digits.
func IDNumber(value string) *FieldError {
	if !digitsOfLen(value, 16) {
		return &FieldError{Field: "idNumber", Message: "ID number must be exactly 16 digits"}
	}
	return nil
}

// Email accepts an empty value; otherwise the address must parse.
func Email(value string) *FieldError {
	if value == "" {
		return nil
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return &FieldError{Field: "email", Message: "email address is not valid"}
	}
	return nil
}

// UniquePhone rejects a phone already used by another tenant. excludeID
// skips the tenant being edited.
func UniquePhone(tenants []model.Tenant, phone, excludeID string) *FieldError {
	for _, t := range tenants {
		if t.ID != excludeID && t.Phone == phone {
			return &FieldError{Field: "phone", Message: "another tenant already uses this phone number"}
		}
	}
	return nil
}

// UniqueEmail rejects an email already used by another tenant. Empty emails
// never collide.
func UniqueEmail(tenants []model.Tenant, email, excludeID string) *FieldError {
	if email == "" {
		return nil
	}
	for _, t := range tenants {
		if t.ID != excludeID && t.Email != "" && strings.EqualFold(t.Email, email) {
			return &FieldError{Field: "email", Message: "another tenant already uses this email address"}
		}
	}
	return nil
}

func digitsOfLen(value string, n int) bool {
	if len(value) != n {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
