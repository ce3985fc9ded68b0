package model

import "time"

// Property type values accepted by the upstream API.
const (
	PropertyTypeHouse     = "house"
	PropertyTypeApartment = "apartment"
)

// Property status values.
const (
	PropertyStatusActive   = "active"
	PropertyStatusInactive = "inactive"
)

// Property represents a rental property as returned by the upstream API.
// IsAvailable is filled by the availability endpoint only and is never
// persisted from this side.
type Property struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	MonthlyRent *float64  `json:"monthlyRent,omitempty"`
	OwnerID     string    `json:"ownerId"`
	IsAvailable *bool     `json:"isAvailable,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RentOrZero returns the monthly rent, treating a missing value as 0.
func (p Property) RentOrZero() float64 {
	if p.MonthlyRent == nil {
		return 0
	}
	return *p.MonthlyRent
}

// Availability is the payload of GET /properties/{id}/availability.
type Availability struct {
	PropertyID    string  `json:"propertyId"`
	IsAvailable   bool    `json:"isAvailable"`
	CurrentTenant *Tenant `json:"currentTenant,omitempty"`
}
