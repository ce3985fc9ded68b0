package model

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

// User is the authenticated operator returned by the upstream login endpoint.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
