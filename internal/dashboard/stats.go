// Package dashboard computes the summary figures shown on the back-office
// landing view. There is no upstream aggregation endpoint for most of the
// figures, so the aggregator fans out a batch of bounded list requests and
// folds the results locally.
package dashboard

import (
	"context"
	"time"

	"backoffice-service/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// urgentViewSize caps the urgent-maintenance slice kept for display.
const urgentViewSize = 5

// API is the subset of the upstream client the aggregator needs.
type API interface {
	ListProperties(ctx context.Context, params model.ListParams) ([]model.Property, model.PaginationInfo, error)
	ListTenants(ctx context.Context, params model.ListParams) ([]model.Tenant, model.PaginationInfo, error)
	ListMaintenance(ctx context.Context, params model.ListParams) ([]model.Maintenance, model.PaginationInfo, error)
}

// Stats is the derived statistics record for the dashboard.
type Stats struct {
	TotalProperties     int     `json:"totalProperties"`
	TotalTenants        int     `json:"totalTenants"`
	ActiveTenants       int     `json:"activeTenants"`
	PendingMaintenance  int     `json:"pendingMaintenance"`
	TotalMonthlyRevenue float64 `json:"totalMonthlyRevenue"`
	OccupancyRate       float64 `json:"occupancyRate"`
	OutstandingRent     float64 `json:"outstandingRent"`
	AnnualRevenue       float64 `json:"annualRevenue"`

	RecentTenants     []model.Tenant      `json:"recentTenants"`
	UrgentMaintenance []model.Maintenance `json:"urgentMaintenance"`

	// UrgentPagination is synthesized locally: only a slice of the urgent
	// items is retained, so the total reflects the pre-slice match count.
	UrgentPagination model.PaginationInfo `json:"urgentPagination"`
}

// Aggregator fans out the dashboard fetches and folds the results.
type Aggregator struct {
	api          API
	pageLimit    int
	revenueLimit int
	logger       *zap.Logger
}

// NewAggregator creates an aggregator. pageLimit bounds the per-entity
// display fetches; revenueLimit bounds the tenant set used for revenue math.
func NewAggregator(api API, pageLimit, revenueLimit int, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		api:          api,
		pageLimit:    pageLimit,
		revenueLimit: revenueLimit,
		logger:       logger,
	}
}

// Load runs the fetch batch concurrently and folds it into Stats. The batch
// fails as a whole: if any request errors, no Stats are produced and the
// caller keeps whatever it was displaying before.
func (a *Aggregator) Load(ctx context.Context, now time.Time) (Stats, error) {
	var (
		properties           []model.Property
		propertiesPagination model.PaginationInfo
		recentTenants        []model.Tenant
		tenantsPagination    model.PaginationInfo
		maintenance          []model.Maintenance
		activeTenantCount    int
		pendingCount         int
		allTenants           []model.Tenant
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		properties, propertiesPagination, err = a.api.ListProperties(ctx, model.ListParams{Limit: a.pageLimit})
		return err
	})
	g.Go(func() error {
		var err error
		recentTenants, tenantsPagination, err = a.api.ListTenants(ctx, model.ListParams{
			Limit:     a.pageLimit,
			SortBy:    "createdAt",
			SortOrder: model.SortDesc,
		})
		return err
	})
	g.Go(func() error {
		var err error
		maintenance, _, err = a.api.ListMaintenance(ctx, model.ListParams{
			Limit:     a.pageLimit,
			SortBy:    "priority",
			SortOrder: model.SortDesc,
		})
		return err
	})
	g.Go(func() error {
		_, pagination, err := a.api.ListTenants(ctx, model.ListParams{Status: model.TenantStatusActive, Limit: 1})
		if err != nil {
			return err
		}
		activeTenantCount = pagination.Total
		return nil
	})
	g.Go(func() error {
		_, pagination, err := a.api.ListMaintenance(ctx, model.ListParams{Status: model.MaintenanceStatusPending, Limit: 1})
		if err != nil {
			return err
		}
		pendingCount = pagination.Total
		return nil
	})
	g.Go(func() error {
		var err error
		allTenants, _, err = a.api.ListTenants(ctx, model.ListParams{Limit: a.revenueLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		a.logger.Warn("Dashboard aggregation batch failed", zap.Error(err))
		return Stats{}, err
	}

	stats := Stats{
		TotalProperties:    countOr(propertiesPagination.Total, len(properties)),
		TotalTenants:       countOr(tenantsPagination.Total, len(recentTenants)),
		ActiveTenants:      activeTenantCount,
		PendingMaintenance: pendingCount,
		RecentTenants:      recentTenants,
	}

	for _, p := range properties {
		stats.TotalMonthlyRevenue += p.RentOrZero()
	}

	if stats.TotalProperties > 0 {
		stats.OccupancyRate = float64(activeTenantCount) / float64(stats.TotalProperties) * 100
	}

	stats.OutstandingRent = outstandingRent(allTenants, properties, now)
	stats.AnnualRevenue = annualRevenue(allTenants)
	stats.UrgentMaintenance, stats.UrgentPagination = urgentSlice(maintenance)

	return stats, nil
}

// outstandingRent sums, over active tenants with a resolvable property and a
// known stay start, the shortfall between the rent expected since the stay
// began and the amount actually collected. Tenants missing either input
// contribute 0.
func outstandingRent(tenants []model.Tenant, properties []model.Property, now time.Time) float64 {
	byID := make(map[string]model.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	var total float64
	for _, t := range tenants {
		if t.Status != model.TenantStatusActive || t.StayStartDate == nil {
			continue
		}

		var rent float64
		if t.Property != nil {
			rent = t.Property.RentOrZero()
		} else if p, ok := byID[t.PropertyID]; ok {
			rent = p.RentOrZero()
		} else {
			continue
		}

		expected := float64(monthsBetween(*t.StayStartDate, now)) * rent
		if outstanding := expected - t.TotalAmount; outstanding > 0 {
			total += outstanding
		}
	}
	return total
}

// annualRevenue projects a year of revenue from the average collected per
// tenant. The extrapolation is a provisional business rule carried over
// unchanged from the product owners.
func annualRevenue(tenants []model.Tenant) float64 {
	var collected float64
	for _, t := range tenants {
		collected += t.TotalAmount
	}
	count := len(tenants)
	if count < 1 {
		count = 1
	}
	return collected / float64(count) * 12
}

// urgentSlice keeps the first urgentViewSize items of priority urgent or
// high, with pagination synthesized from the pre-slice match count.
func urgentSlice(items []model.Maintenance) ([]model.Maintenance, model.PaginationInfo) {
	urgent := make([]model.Maintenance, 0, len(items))
	for _, m := range items {
		if m.Priority == model.PriorityUrgent || m.Priority == model.PriorityHigh {
			urgent = append(urgent, m)
		}
	}

	pagination := model.FallbackPagination(1, urgentViewSize, len(urgent))
	if len(urgent) > urgentViewSize {
		urgent = urgent[:urgentViewSize]
	}
	return urgent, pagination
}

// monthsBetween counts whole calendar months from from to to, so a stay that
// started three full months ago yields 3.
func monthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func countOr(total, fallback int) int {
	if total > 0 {
		return total
	}
	return fallback
}
