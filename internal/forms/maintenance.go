package forms

import (
	"backoffice-service/internal/model"
	"backoffice-service/pkg/rentms"
)

// MaintenanceSchema returns the maintenance editor fields.
func MaintenanceSchema() Schema {
	return Schema{
		Entity: EntityMaintenance,
		Fields: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "description", Label: "Description", Kind: KindText, Required: true},
			{Name: "propertyId", Label: "Property", Kind: KindText, Required: true},
			{Name: "status", Label: "Status", Kind: KindSelect, Required: true,
				Options: []string{model.MaintenanceStatusPending, model.MaintenanceStatusInProgress, model.MaintenanceStatusCompleted, model.MaintenanceStatusCancelled}},
			{Name: "priority", Label: "Priority", Kind: KindSelect, Required: true,
				Options: []string{model.PriorityLow, model.PriorityMedium, model.PriorityHigh, model.PriorityUrgent}},
			{Name: "cost", Label: "Cost", Kind: KindNumber},
			{Name: "scheduledDate", Label: "Scheduled date", Kind: KindDate},
			{Name: "completedDate", Label: "Completed date", Kind: KindDate},
			{Name: "notes", Label: "Notes", Kind: KindText},
		},
	}
}

// BuildMaintenanceInput converts validated form values into the upstream payload.
func BuildMaintenanceInput(values Values) rentms.MaintenanceInput {
	return rentms.MaintenanceInput{
		Title:         values["title"],
		Description:   values["description"],
		PropertyID:    values["propertyId"],
		Status:        values["status"],
		Priority:      values["priority"],
		Cost:          values.Float("cost"),
		ScheduledDate: values.Date("scheduledDate"),
		CompletedDate: values.Date("completedDate"),
		Notes:         values["notes"],
	}
}
