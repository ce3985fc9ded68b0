package screen

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice-service/internal/dashboard"
	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI serves canned data and can fail a single operation by name.
type fakeAPI struct {
	properties  []model.Property
	available   []model.Property
	tenants     []model.Tenant
	maintenance []model.Maintenance
	leases      []model.Lease
	failOn      string
}

func (f *fakeAPI) fail(op string) bool { return f.failOn == op }

func (f *fakeAPI) ListProperties(ctx context.Context, params model.ListParams) ([]model.Property, model.PaginationInfo, error) {
	if f.fail("properties") {
		return nil, model.PaginationInfo{}, errors.New("properties unavailable")
	}
	return f.properties, model.FallbackPagination(1, params.Limit, len(f.properties)), nil
}

func (f *fakeAPI) AvailableProperties(ctx context.Context) ([]model.Property, error) {
	if f.fail("available") {
		return nil, errors.New("availability unavailable")
	}
	return f.available, nil
}

func (f *fakeAPI) ListTenants(ctx context.Context, params model.ListParams) ([]model.Tenant, model.PaginationInfo, error) {
	if f.fail("tenants") {
		return nil, model.PaginationInfo{}, errors.New("tenants unavailable")
	}
	return f.tenants, model.FallbackPagination(1, params.Limit, len(f.tenants)), nil
}

func (f *fakeAPI) ListMaintenance(ctx context.Context, params model.ListParams) ([]model.Maintenance, model.PaginationInfo, error) {
	if f.fail("maintenance") {
		return nil, model.PaginationInfo{}, errors.New("maintenance unavailable")
	}
	return f.maintenance, model.FallbackPagination(1, params.Limit, len(f.maintenance)), nil
}

func (f *fakeAPI) ListLeases(ctx context.Context, params model.ListParams) ([]model.Lease, model.PaginationInfo, error) {
	if f.fail("leases") {
		return nil, model.PaginationInfo{}, errors.New("leases unavailable")
	}
	return f.leases, model.FallbackPagination(1, params.Limit, len(f.leases)), nil
}

func TestTenantScreenLoadsBatch(t *testing.T) {
	api := &fakeAPI{
		properties: []model.Property{{ID: "p1", Name: "Sunset Villa"}, {ID: "p2", Name: "Hilltop Flat"}},
		available:  []model.Property{{ID: "p2", Name: "Hilltop Flat"}},
		tenants:    []model.Tenant{{ID: "t1", Name: "Alice", PropertyID: "p1"}},
	}

	s := NewTenants(api, 10, 100, time.Hour, zap.NewNop(), Hooks{})
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	view := s.View()
	assert.Len(t, view.Records, 1)
	assert.Len(t, view.Properties, 2)
	assert.Len(t, view.Available, 1)
	assert.Equal(t, "Sunset Villa", s.PropertyName("p1"))
	assert.Equal(t, "missing", s.PropertyName("missing"))

	require.NotEmpty(t, view.Notices)
	assert.Equal(t, NoticeSuccess, view.Notices[0].Level)
}

func TestTenantScreenBatchFailureKeepsAuxData(t *testing.T) {
	api := &fakeAPI{
		properties: []model.Property{{ID: "p1", Name: "Sunset Villa"}},
		tenants:    []model.Tenant{{ID: "t1"}},
	}

	s := NewTenants(api, 10, 100, time.Hour, zap.NewNop(), Hooks{})
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	// A failing auxiliary fetch fails the whole batch; the previously
	// committed property set stays on screen.
	api.properties = nil
	api.failOn = "available"
	require.Error(t, s.Load(context.Background()))

	view := s.View()
	assert.Len(t, view.Properties, 1)
	assert.Equal(t, "Sunset Villa", s.PropertyName("p1"))
}

func TestScreenRefreshHookOutcomes(t *testing.T) {
	api := &fakeAPI{}
	var outcomes []string
	hooks := Hooks{OnRefresh: func(screen, outcome string) {
		outcomes = append(outcomes, screen+":"+outcome)
	}}

	s := NewProperties(api, 10, time.Hour, zap.NewNop(), hooks)
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	api.failOn = "properties"
	require.Error(t, s.Load(context.Background()))

	assert.Equal(t, []string{"properties:success", "properties:error"}, outcomes)
}

func TestLeaseScreenLoadsEditorSets(t *testing.T) {
	api := &fakeAPI{
		properties: []model.Property{{ID: "p1", Name: "Sunset Villa"}},
		available:  []model.Property{{ID: "p1", Name: "Sunset Villa"}},
		tenants:    []model.Tenant{{ID: "t1", Name: "Alice"}},
		leases:     []model.Lease{{ID: "l1", PropertyID: "p1", TenantID: "t1"}},
	}

	s := NewLeases(api, 10, 100, time.Hour, zap.NewNop(), Hooks{})
	defer s.Close()
	require.NoError(t, s.Load(context.Background()))

	view := s.View()
	assert.Len(t, view.Records, 1)
	assert.Len(t, view.Available, 1)
	assert.Len(t, view.Tenants, 1)
}

func TestDashboardKeepsLastGoodStats(t *testing.T) {
	api := &fakeAPI{
		properties: []model.Property{{ID: "p1"}, {ID: "p2"}},
	}
	aggregator := dashboard.NewAggregator(api, 100, 1000, zap.NewNop())

	s := NewDashboard(aggregator, zap.NewNop(), Hooks{})
	assert.False(t, s.Loaded())
	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.Loaded())
	assert.Equal(t, 2, s.View().Stats.TotalProperties)

	api.failOn = "tenants"
	require.Error(t, s.Refresh(context.Background()))

	// The failed refresh did not clobber the stats on screen.
	view := s.View()
	assert.Equal(t, 2, view.Stats.TotalProperties)
	assert.Equal(t, NoticeError, view.Notices[len(view.Notices)-1].Level)
}
