package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantExport(t *testing.T) {
	payment := 250000.0
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	tenants := []model.Tenant{{
		ID:            "t1",
		Name:          "Alice",
		Phone:         "0788123456",
		PropertyID:    "p1",
		Status:        model.TenantStatusActive,
		Payment:       &payment,
		MonthsPaid:    3,
		TotalAmount:   750000,
		StayStartDate: &start,
		StayEndDate:   &end,
	}}

	var buf bytes.Buffer
	rows := TenantRows(tenants, func(id string) string { return "Sunset Villa" })
	require.NoError(t, Write(&buf, TenantHeaders, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Stay Start")
	assert.Equal(t, "t1,Alice,0788123456,,Sunset Villa,active,250000,3,750000,2024-01-15,2024-04-15", lines[1])
}

func TestPropertyExportBlankOptionalFields(t *testing.T) {
	properties := []model.Property{{
		ID:        "p1",
		Name:      "Sunset Villa",
		Address:   "12 Hill Rd",
		Type:      model.PropertyTypeHouse,
		Status:    model.PropertyStatusActive,
		CreatedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, PropertyHeaders, PropertyRows(properties)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "p1,Sunset Villa,12 Hill Rd,house,active,,2024-03-01", lines[1])
}
