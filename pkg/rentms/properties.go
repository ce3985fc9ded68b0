package rentms

import (
	"context"
	"net/http"

	"backoffice-service/internal/model"
)

// PropertyInput is the writable field set for property create/update.
type PropertyInput struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	MonthlyRent *float64 `json:"monthlyRent,omitempty"`
}

// ListProperties fetches one page of properties.
func (c *Client) ListProperties(ctx context.Context, params model.ListParams) ([]model.Property, model.PaginationInfo, error) {
	var properties []model.Property
	pagination, err := c.list(ctx, "/properties", params, &properties, func() int { return len(properties) })
	if err != nil {
		return nil, model.PaginationInfo{}, err
	}
	return properties, pagination, nil
}

// AvailableProperties fetches the properties without a current occupant,
// used to populate the tenant and lease editors.
func (c *Client) AvailableProperties(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	_, err := c.do(ctx, http.MethodGet, "/properties/available", nil, nil, &properties)
	if err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty fetches a single property by ID.
func (c *Client) GetProperty(ctx context.Context, id string) (*model.Property, error) {
	var property model.Property
	_, err := c.do(ctx, http.MethodGet, "/properties/"+id, nil, nil, &property)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// CheckAvailability asks whether the property currently has an occupant.
func (c *Client) CheckAvailability(ctx context.Context, id string) (*model.Availability, error) {
	var availability model.Availability
	_, err := c.do(ctx, http.MethodGet, "/properties/"+id+"/availability", nil, nil, &availability)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// CreateProperty creates a new property.
func (c *Client) CreateProperty(ctx context.Context, input PropertyInput) (*model.Property, error) {
	var property model.Property
	_, err := c.do(ctx, http.MethodPost, "/properties", nil, input, &property)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty updates an existing property.
func (c *Client) UpdateProperty(ctx context.Context, id string, input PropertyInput) (*model.Property, error) {
	var property model.Property
	_, err := c.do(ctx, http.MethodPut, "/properties/"+id, nil, input, &property)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// DeleteProperty deletes a property.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/properties/"+id, nil, nil, nil)
	return err
}
