// Package query implements the list-view query machinery shared by every
// paginated screen: the query state (page, sort, search, categorical
// filters), the debounced refetch trigger, and the fetch reconciliation with
// a last-request-wins guarantee.
package query

import "backoffice-service/internal/model"

// Default sort applied on a fresh view and after clearing filters.
const (
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = model.SortDesc
)

// State is the single source of truth for one list view's request. Any
// filter, search or sort change invalidates the current page, so those
// setters reset the page to 1; only SetPage leaves the rest untouched.
type State struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
	Search     string `json:"search"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	Priority   string `json:"priority"`
	PropertyID string `json:"propertyId"`
}

// NewState returns the default view state for the given page size.
func NewState(limit int) State {
	return State{
		Page:      1,
		Limit:     limit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}
}

func (s *State) SetSearch(value string) {
	s.Search = value
	s.Page = 1
}

func (s *State) SetStatus(value string) {
	s.Status = value
	s.Page = 1
}

func (s *State) SetType(value string) {
	s.Type = value
	s.Page = 1
}

func (s *State) SetPriority(value string) {
	s.Priority = value
	s.Page = 1
}

func (s *State) SetPropertyID(value string) {
	s.PropertyID = value
	s.Page = 1
}

func (s *State) SetSort(sortBy, sortOrder string) {
	s.SortBy = sortBy
	s.SortOrder = sortOrder
	s.Page = 1
}

// SetPage changes only the page.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// ClearFilters drops search and every categorical filter, restores the
// default sort and returns to page 1. The page size is kept.
func (s *State) ClearFilters() {
	s.Search = ""
	s.Status = ""
	s.Type = ""
	s.Priority = ""
	s.PropertyID = ""
	s.SortBy = DefaultSortBy
	s.SortOrder = DefaultSortOrder
	s.Page = 1
}

// Params renders the state as the canonical upstream request descriptor.
func (s State) Params() model.ListParams {
	return model.ListParams{
		Page:       s.Page,
		Limit:      s.Limit,
		SortBy:     s.SortBy,
		SortOrder:  s.SortOrder,
		Search:     s.Search,
		Status:     s.Status,
		Type:       s.Type,
		Priority:   s.Priority,
		PropertyID: s.PropertyID,
	}
}
