package forms

import (
	"backoffice-service/internal/model"
	"backoffice-service/pkg/rentms"
)

// PropertySchema returns the property editor fields.
func PropertySchema() Schema {
	return Schema{
		Entity: EntityProperty,
		Fields: []Field{
			{Name: "name", Label: "Property name", Kind: KindText, Required: true},
			{Name: "address", Label: "Address", Kind: KindText, Required: true},
			{Name: "type", Label: "Type", Kind: KindSelect, Required: true,
				Options: []string{model.PropertyTypeHouse, model.PropertyTypeApartment}},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true,
				Options: []string{model.PropertyStatusActive, model.PropertyStatusInactive}},
			{Name: "monthlyRent", Label: "Monthly rent", Kind: KindNumber},
		},
	}
}

// BuildPropertyInput converts validated form values into the upstream payload.
func BuildPropertyInput(values Values) rentms.PropertyInput {
	return rentms.PropertyInput{
		Name:        values["name"],
		Address:     values["address"],
		Type:        values["type"],
		Status:      values["status"],
		MonthlyRent: values.Float("monthlyRent"),
	}
}
