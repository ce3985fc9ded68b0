package model

import "time"

// Tenant status values.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusEvicted  = "evicted"
)

// Payment method values.
const (
	PaymentMethodCash        = "cash"
	PaymentMethodBank        = "bank"
	PaymentMethodMobileMoney = "mobile_money"
)

// Tenant represents a tenant record owned by the upstream API.
// StayEndDate is derived from StayStartDate and MonthsPaid and is never
// edited independently.
type Tenant struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	IDNumber      string     `json:"idNumber"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	PropertyID    string     `json:"propertyId"`
	Property      *Property  `json:"property,omitempty"`
	Status        string     `json:"status"`
	Payment       *float64   `json:"payment,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	MonthsPaid    int        `json:"monthsPaid"`
	TotalAmount   float64    `json:"totalAmount"`
	StayStartDate *time.Time `json:"stayStartDate,omitempty"`
	StayEndDate   *time.Time `json:"stayEndDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
