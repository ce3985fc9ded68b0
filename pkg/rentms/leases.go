package rentms

import (
	"context"
	"net/http"
	"time"

	"backoffice-service/internal/model"
)

// LeaseInput is the writable field set for lease create/update.
type LeaseInput struct {
	PropertyID  string    `json:"propertyId"`
	TenantID    string    `json:"tenantId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MonthlyRent float64   `json:"monthlyRent"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
}

// ListLeases fetches one page of leases.
func (c *Client) ListLeases(ctx context.Context, params model.ListParams) ([]model.Lease, model.PaginationInfo, error) {
	var leases []model.Lease
	pagination, err := c.list(ctx, "/leases", params, &leases, func() int { return len(leases) })
	if err != nil {
		return nil, model.PaginationInfo{}, err
	}
	return leases, pagination, nil
}

// GetLease fetches a single lease by ID.
func (c *Client) GetLease(ctx context.Context, id string) (*model.Lease, error) {
	var lease model.Lease
	_, err := c.do(ctx, http.MethodGet, "/leases/"+id, nil, nil, &lease)
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

// CreateLease creates a new lease.
func (c *Client) CreateLease(ctx context.Context, input LeaseInput) (*model.Lease, error) {
	var lease model.Lease
	_, err := c.do(ctx, http.MethodPost, "/leases", nil, input, &lease)
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

// UpdateLease updates an existing lease.
func (c *Client) UpdateLease(ctx context.Context, id string, input LeaseInput) (*model.Lease, error) {
	var lease model.Lease
	_, err := c.do(ctx, http.MethodPut, "/leases/"+id, nil, input, &lease)
	if err != nil {
		return nil, err
	}
	return &lease, nil
}

// DeleteLease deletes a lease.
func (c *Client) DeleteLease(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/leases/"+id, nil, nil, nil)
	return err
}
