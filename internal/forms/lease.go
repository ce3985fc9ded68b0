package forms

import (
	"backoffice-service/internal/model"
	"backoffice-service/pkg/rentms"
)

// LeaseSchema returns the lease editor fields.
func LeaseSchema() Schema {
	return Schema{
		Entity: EntityLease,
		Fields: []Field{
			{Name: "propertyId", Label: "Property", Kind: KindText, Required: true},
			{Name: "tenantId", Label: "Tenant", Kind: KindText, Required: true},
			{Name: "startDate", Label: "Start date", Kind: KindDate, Required: true},
			{Name: "endDate", Label: "End date", Kind: KindDate, Required: true},
			{Name: "monthlyRent", Label: "Monthly rent", Kind: KindNumber, Required: true},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true,
				Options: []string{model.LeaseStatusActive, model.LeaseStatusExpired, model.LeaseStatusTerminated}},
			{Name: "notes", Label: "Notes", Kind: KindText},
		},
	}
}

// BuildLeaseInput converts validated form values into the upstream payload.
func BuildLeaseInput(values Values) rentms.LeaseInput {
	input := rentms.LeaseInput{
		PropertyID: values["propertyId"],
		TenantID:   values["tenantId"],
		Status:     values["status"],
		Notes:      values["notes"],
	}
	if rent := values.Float("monthlyRent"); rent != nil {
		input.MonthlyRent = *rent
	}
	if start := values.Date("startDate"); start != nil {
		input.StartDate = *start
	}
	if end := values.Date("endDate"); end != nil {
		input.EndDate = *end
	}
	return input
}
