package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		count      int
		totalPages int
	}{
		{"exact multiple", 1, 10, 20, 2},
		{"remainder rounds up", 1, 10, 21, 3},
		{"fewer than one page", 1, 10, 3, 1},
		{"empty result", 1, 10, 0, 0},
		{"urgent slice of eight", 1, 5, 8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FallbackPagination(tt.page, tt.limit, tt.count)
			assert.Equal(t, tt.totalPages, p.TotalPages)
			assert.Equal(t, tt.count, p.Total)
			assert.Equal(t, tt.limit, p.Limit)
		})
	}
}

func TestFallbackPaginationZeroLimit(t *testing.T) {
	p := FallbackPagination(1, 0, 7)
	assert.Equal(t, 7, p.TotalPages)
	assert.Equal(t, 1, p.Limit)
}

func TestRentOrZero(t *testing.T) {
	rent := 250000.0
	assert.Equal(t, 250000.0, Property{MonthlyRent: &rent}.RentOrZero())
	assert.Equal(t, 0.0, Property{}.RentOrZero())
}
