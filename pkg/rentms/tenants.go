package rentms

import (
	"context"
	"net/http"
	"time"

	"backoffice-service/internal/model"
)

// TenantInput is the writable field set for tenant create/update.
// StayEndDate is included because the upstream persists the derived value;
// callers must compute it from StayStartDate and MonthsPaid.
type TenantInput struct {
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	IDNumber      string     `json:"idNumber"`
	Email         string     `json:"email,omitempty"`
	Address       string     `json:"address,omitempty"`
	PropertyID    string     `json:"propertyId"`
	Status        string     `json:"status"`
	Payment       *float64   `json:"payment,omitempty"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	MonthsPaid    int        `json:"monthsPaid"`
	StayStartDate *time.Time `json:"stayStartDate,omitempty"`
	StayEndDate   *time.Time `json:"stayEndDate,omitempty"`
}

// ListTenants fetches one page of tenants.
func (c *Client) ListTenants(ctx context.Context, params model.ListParams) ([]model.Tenant, model.PaginationInfo, error) {
	var tenants []model.Tenant
	pagination, err := c.list(ctx, "/tenants", params, &tenants, func() int { return len(tenants) })
	if err != nil {
		return nil, model.PaginationInfo{}, err
	}
	return tenants, pagination, nil
}

// GetTenant fetches a single tenant by ID.
func (c *Client) GetTenant(ctx context.Context, id string) (*model.Tenant, error) {
	var tenant model.Tenant
	_, err := c.do(ctx, http.MethodGet, "/tenants/"+id, nil, nil, &tenant)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// CreateTenant creates a new tenant.
func (c *Client) CreateTenant(ctx context.Context, input TenantInput) (*model.Tenant, error) {
	var tenant model.Tenant
	_, err := c.do(ctx, http.MethodPost, "/tenants", nil, input, &tenant)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// UpdateTenant updates an existing tenant.
func (c *Client) UpdateTenant(ctx context.Context, id string, input TenantInput) (*model.Tenant, error) {
	var tenant model.Tenant
	_, err := c.do(ctx, http.MethodPut, "/tenants/"+id, nil, input, &tenant)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

// DeleteTenant deletes a tenant.
func (c *Client) DeleteTenant(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/tenants/"+id, nil, nil, nil)
	return err
}
