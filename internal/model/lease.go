package model

import "time"

// Lease status values.
const (
	LeaseStatusActive     = "active"
	LeaseStatusExpired    = "expired"
	LeaseStatusTerminated = "terminated"
)

// Lease represents a lease agreement between a tenant and a property.
type Lease struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"propertyId"`
	TenantID    string    `json:"tenantId"`
	Property    *Property `json:"property,omitempty"`
	Tenant      *Tenant   `json:"tenant,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MonthlyRent float64   `json:"monthlyRent"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
