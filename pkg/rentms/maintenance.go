package rentms

import (
	"context"
	"net/http"
	"time"

	"backoffice-service/internal/model"
)

// MaintenanceInput is the writable field set for maintenance create/update.
type MaintenanceInput struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	PropertyID    string     `json:"propertyId"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	Cost          *float64   `json:"cost,omitempty"`
	ScheduledDate *time.Time `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// ListMaintenance fetches one page of maintenance requests.
func (c *Client) ListMaintenance(ctx context.Context, params model.ListParams) ([]model.Maintenance, model.PaginationInfo, error) {
	var items []model.Maintenance
	pagination, err := c.list(ctx, "/maintenance", params, &items, func() int { return len(items) })
	if err != nil {
		return nil, model.PaginationInfo{}, err
	}
	return items, pagination, nil
}

// GetMaintenance fetches a single maintenance request by ID.
func (c *Client) GetMaintenance(ctx context.Context, id string) (*model.Maintenance, error) {
	var item model.Maintenance
	_, err := c.do(ctx, http.MethodGet, "/maintenance/"+id, nil, nil, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateMaintenance creates a new maintenance request.
func (c *Client) CreateMaintenance(ctx context.Context, input MaintenanceInput) (*model.Maintenance, error) {
	var item model.Maintenance
	_, err := c.do(ctx, http.MethodPost, "/maintenance", nil, input, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateMaintenance updates an existing maintenance request.
func (c *Client) UpdateMaintenance(ctx context.Context, id string, input MaintenanceInput) (*model.Maintenance, error) {
	var item model.Maintenance
	_, err := c.do(ctx, http.MethodPut, "/maintenance/"+id, nil, input, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteMaintenance deletes a maintenance request.
func (c *Client) DeleteMaintenance(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/maintenance/"+id, nil, nil, nil)
	return err
}
