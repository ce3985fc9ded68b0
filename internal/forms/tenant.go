package forms

import (
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/internal/validate"
	"backoffice-service/pkg/rentms"
)

// TenantSchema returns the tenant editor fields.
func TenantSchema() Schema {
	return Schema{
		Entity: EntityTenant,
		Fields: []Field{
			{Name: "name", Label: "Full name", Kind: KindText, Required: true},
			{Name: "phone", Label: "Phone number", Kind: KindText, Required: true, Check: validate.Phone},
			{Name: "idNumber", Label: "ID number", Kind: KindText, Required: true, Check: validate.IDNumber},
			{Name: "email", Label: "Email address", Kind: KindText, Check: validate.Email},
			{Name: "address", Label: "Address", Kind: KindText},
			{Name: "propertyId", Label: "Property", Kind: KindText, Required: true},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true,
				Options: []string{model.TenantStatusActive, model.TenantStatusInactive, model.TenantStatusEvicted}},
			{Name: "payment", Label: "Monthly payment", Kind: KindNumber},
			{Name: "paymentDate", Label: "Payment date", Kind: KindDate},
			{Name: "paymentMethod", Label: "Payment method", Kind: KindSelect,
				Options: []string{model.PaymentMethodCash, model.PaymentMethodBank, model.PaymentMethodMobileMoney}},
			{Name: "monthsPaid", Label: "Months paid", Kind: KindNumber},
			{Name: "stayStartDate", Label: "Stay start date", Kind: KindDate},
		},
	}
}

// StayEndDate derives the end of the paid stay: start date plus the number
// of paid months. It is recomputed from its inputs on every change and is
// never edited on its own.
func StayEndDate(start time.Time, monthsPaid int) time.Time {
	return start.AddDate(0, monthsPaid, 0)
}

// AutofillPayment fills the payment field from the selected property's
// monthly rent when the operator has not entered one.
func AutofillPayment(values Values, properties []model.Property) {
	if values["payment"] != "" || values["propertyId"] == "" {
		return
	}
	for _, p := range properties {
		if p.ID == values["propertyId"] && p.MonthlyRent != nil {
			values["payment"] = formatAmount(*p.MonthlyRent)
			return
		}
	}
}

// BuildTenantInput converts validated form values into the upstream payload,
// attaching the derived stay end date.
func BuildTenantInput(values Values) rentms.TenantInput {
	input := rentms.TenantInput{
		Name:          values["name"],
		Phone:         values["phone"],
		IDNumber:      values["idNumber"],
		Email:         values["email"],
		Address:       values["address"],
		PropertyID:    values["propertyId"],
		Status:        values["status"],
		Payment:       values.Float("payment"),
		PaymentDate:   values.Date("paymentDate"),
		PaymentMethod: values["paymentMethod"],
		MonthsPaid:    values.Int("monthsPaid"),
		StayStartDate: values.Date("stayStartDate"),
	}
	if input.StayStartDate != nil {
		end := StayEndDate(*input.StayStartDate, input.MonthsPaid)
		input.StayEndDate = &end
	}
	return input
}
