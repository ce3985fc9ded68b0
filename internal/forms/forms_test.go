package forms

import (
	"testing"
	"time"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayEndDate(t *testing.T) {
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := StayEndDate(start, 3)
	assert.Equal(t, time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC), end)

	// Zero months paid means the stay ends the day it starts.
	assert.Equal(t, start, StayEndDate(start, 0))
}

func TestBuildTenantInputDerivesStayEnd(t *testing.T) {
	values := Values{
		"name":          "Alice",
		"phone":         "0788123456",
		"idNumber":      "1199780012345678",
		"propertyId":    "p1",
		"status":        model.TenantStatusActive,
		"monthsPaid":    "3",
		"stayStartDate": "2024-01-15",
	}

	input := BuildTenantInput(values)
	require.NotNil(t, input.StayEndDate)
	assert.Equal(t, "2024-04-15", input.StayEndDate.Format(DateLayout))
	assert.Equal(t, 3, input.MonthsPaid)
}

func TestBuildTenantInputWithoutStartDate(t *testing.T) {
	input := BuildTenantInput(Values{"name": "Bob", "monthsPaid": "2"})
	assert.Nil(t, input.StayStartDate)
	assert.Nil(t, input.StayEndDate)
}

func TestAutofillPayment(t *testing.T) {
	rent := 250000.0
	properties := []model.Property{
		{ID: "p1", MonthlyRent: &rent},
		{ID: "p2"},
	}

	values := Values{"propertyId": "p1"}
	AutofillPayment(values, properties)
	assert.Equal(t, "250000", values["payment"])

	// An operator-entered payment is never overwritten.
	values = Values{"propertyId": "p1", "payment": "100000"}
	AutofillPayment(values, properties)
	assert.Equal(t, "100000", values["payment"])

	// A property without rent fills nothing.
	values = Values{"propertyId": "p2"}
	AutofillPayment(values, properties)
	assert.Empty(t, values["payment"])
}

func TestTenantSchemaValidate(t *testing.T) {
	schema := TenantSchema()

	errs := schema.Validate(Values{
		"name":       "Alice",
		"phone":      "123",
		"idNumber":   "1199780012345678",
		"propertyId": "p1",
		"status":     "active",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)

	errs = schema.Validate(Values{
		"name":       "Alice",
		"phone":      "0788123456",
		"idNumber":   "1199780012345678",
		"propertyId": "p1",
		"status":     "paused",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)

	errs = schema.Validate(Values{
		"name":       "Alice",
		"phone":      "0788123456",
		"idNumber":   "1199780012345678",
		"propertyId": "p1",
		"status":     "active",
		"monthsPaid": "3",
	})
	assert.Empty(t, errs)
}

func TestSchemaValidateRequiredAndFormats(t *testing.T) {
	schema := MaintenanceSchema()

	errs := schema.Validate(Values{})
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["propertyId"])
	assert.True(t, fields["status"])

	errs = schema.Validate(Values{
		"title":         "Broken heater",
		"description":   "No hot water",
		"propertyId":    "p1",
		"status":        model.MaintenanceStatusPending,
		"priority":      model.PriorityHigh,
		"cost":          "-5",
		"scheduledDate": "15-01-2024",
	})
	fields = make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["cost"])
	assert.True(t, fields["scheduledDate"])
}
