package model

// Sort orders accepted by upstream list endpoints.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// PaginationInfo mirrors the pagination block of the upstream response
// envelope. It is always taken from the server when present.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// FallbackPagination derives pagination info locally for responses that omit
// the pagination block: totalPages = ceil(count / limit).
func FallbackPagination(page, limit, count int) PaginationInfo {
	if limit <= 0 {
		limit = 1
	}
	totalPages := (count + limit - 1) / limit
	return PaginationInfo{
		Page:       page,
		Limit:      limit,
		Total:      count,
		TotalPages: totalPages,
	}
}

// ListParams describes one paginated list request. Zero-valued fields are
// omitted from the outgoing query string.
type ListParams struct {
	Page       int    `json:"page,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	SortBy     string `json:"sortBy,omitempty"`
	SortOrder  string `json:"sortOrder,omitempty"`
	Search     string `json:"search,omitempty"`
	Status     string `json:"status,omitempty"`
	Type       string `json:"type,omitempty"`
	Priority   string `json:"priority,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
	TenantID   string `json:"tenantId,omitempty"`
}
