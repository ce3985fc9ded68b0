package model

import (
	"net/url"
	"strconv"
)

// Values renders the list params as query parameters, omitting unset fields.
func (p ListParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}
	if p.SortOrder != "" {
		values.Set("sortOrder", p.SortOrder)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.Status != "" {
		values.Set("status", p.Status)
	}
	if p.Type != "" {
		values.Set("type", p.Type)
	}
	if p.Priority != "" {
		values.Set("priority", p.Priority)
	}
	if p.PropertyID != "" {
		values.Set("propertyId", p.PropertyID)
	}
	if p.TenantID != "" {
		values.Set("tenantId", p.TenantID)
	}
	return values
}
