// Package export renders the current list view as CSV for download.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"backoffice-service/internal/model"
)

const dateLayout = "2006-01-02"

// Write renders one CSV document with a header row.
func Write(w io.Writer, headers []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// PropertyHeaders is the column set for a property export.
var PropertyHeaders = []string{"ID", "Name", "Address", "Type", "Status", "Monthly Rent", "Created"}

// PropertyRows flattens properties for export.
func PropertyRows(properties []model.Property) [][]string {
	rows := make([][]string, 0, len(properties))
	for _, p := range properties {
		rows = append(rows, []string{
			p.ID, p.Name, p.Address, p.Type, p.Status,
			amount(p.MonthlyRent),
			p.CreatedAt.Format(dateLayout),
		})
	}
	return rows
}

// TenantHeaders is the column set for a tenant export.
var TenantHeaders = []string{"ID", "Name", "Phone", "Email", "Property", "Status", "Payment", "Months Paid", "Total Amount", "Stay Start", "Stay End"}

// TenantRows flattens tenants for export. propertyName resolves a property
// ID to its display name.
func TenantRows(tenants []model.Tenant, propertyName func(string) string) [][]string {
	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, []string{
			t.ID, t.Name, t.Phone, t.Email,
			propertyName(t.PropertyID),
			t.Status,
			amount(t.Payment),
			strconv.Itoa(t.MonthsPaid),
			strconv.FormatFloat(t.TotalAmount, 'f', -1, 64),
			date(t.StayStartDate),
			date(t.StayEndDate),
		})
	}
	return rows
}

// MaintenanceHeaders is the column set for a maintenance export.
var MaintenanceHeaders = []string{"ID", "Title", "Property", "Status", "Priority", "Cost", "Scheduled", "Completed"}

// MaintenanceRows flattens maintenance requests for export.
func MaintenanceRows(items []model.Maintenance, propertyName func(string) string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, m := range items {
		rows = append(rows, []string{
			m.ID, m.Title,
			propertyName(m.PropertyID),
			m.Status, m.Priority,
			amount(m.Cost),
			date(m.ScheduledDate),
			date(m.CompletedDate),
		})
	}
	return rows
}

// LeaseHeaders is the column set for a lease export.
var LeaseHeaders = []string{"ID", "Property", "Tenant", "Start", "End", "Monthly Rent", "Status"}

// LeaseRows flattens leases for export.
func LeaseRows(leases []model.Lease, propertyName func(string) string) [][]string {
	rows := make([][]string, 0, len(leases))
	for _, l := range leases {
		rows = append(rows, []string{
			l.ID,
			propertyName(l.PropertyID),
			l.TenantID,
			l.StartDate.Format(dateLayout),
			l.EndDate.Format(dateLayout),
			strconv.FormatFloat(l.MonthlyRent, 'f', -1, 64),
			l.Status,
		})
	}
	return rows
}

func amount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
