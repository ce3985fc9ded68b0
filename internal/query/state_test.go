package query

import (
	"testing"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFilterSettersResetPage(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*State)
	}{
		{"search", func(s *State) { s.SetSearch("alice") }},
		{"status", func(s *State) { s.SetStatus("active") }},
		{"type", func(s *State) { s.SetType("house") }},
		{"priority", func(s *State) { s.SetPriority("urgent") }},
		{"propertyId", func(s *State) { s.SetPropertyID("p1") }},
		{"sort", func(s *State) { s.SetSort("name", model.SortAsc) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(10)
			s.SetPage(4)
			tt.apply(&s)
			assert.Equal(t, 1, s.Page)
		})
	}
}

func TestSetPageLeavesFiltersAlone(t *testing.T) {
	s := NewState(10)
	s.SetSearch("alice")
	s.SetStatus("active")
	s.SetSort("name", model.SortAsc)
	s.SetPage(3)

	assert.Equal(t, 3, s.Page)
	assert.Equal(t, "alice", s.Search)
	assert.Equal(t, "active", s.Status)
	assert.Equal(t, "name", s.SortBy)
	assert.Equal(t, model.SortAsc, s.SortOrder)
}

func TestSetPageClampsToOne(t *testing.T) {
	s := NewState(10)
	s.SetPage(0)
	assert.Equal(t, 1, s.Page)
	s.SetPage(-2)
	assert.Equal(t, 1, s.Page)
}

func TestClearFilters(t *testing.T) {
	s := NewState(25)
	s.SetSearch("alice")
	s.SetStatus("active")
	s.SetPriority("high")
	s.SetPropertyID("p1")
	s.SetSort("name", model.SortAsc)
	s.SetPage(5)

	s.ClearFilters()

	assert.Equal(t, State{
		Page:      1,
		Limit:     25,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
	}, s)
}

func TestParamsOmitEmptyFields(t *testing.T) {
	s := NewState(10)
	s.SetSearch("alice")

	values := s.Params().Values()
	assert.Equal(t, "alice", values.Get("search"))
	assert.Equal(t, "1", values.Get("page"))
	assert.Equal(t, "10", values.Get("limit"))
	assert.NotContains(t, values, "status")
	assert.NotContains(t, values, "priority")
	assert.NotContains(t, values, "propertyId")
	assert.NotContains(t, values, "tenantId")
}
