package screen

import (
	"context"
	"sync"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/internal/query"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tenants is the tenant list screen: the debounced query controller plus the
// property sets the list and editor need (every property for name display,
// available properties for the property picker).
type Tenants struct {
	api        API
	controller *query.Controller[model.Tenant]
	auxLimit   int
	logger     *zap.Logger
	hooks      Hooks
	notices    notices

	mu         sync.RWMutex
	properties []model.Property
	available  []model.Property
}

// TenantView is the JSON snapshot rendered for the tenant screen.
type TenantView struct {
	Records    []model.Tenant       `json:"records"`
	Pagination model.PaginationInfo `json:"pagination"`
	State      query.State          `json:"query"`
	Properties []model.Property     `json:"properties"`
	Available  []model.Property     `json:"availableProperties"`
	Notices    []Notice             `json:"notices"`
}

// NewTenants creates the tenant screen. auxLimit bounds the property fetch
// used for name resolution.
func NewTenants(api API, limit, auxLimit int, window time.Duration, logger *zap.Logger, hooks Hooks) *Tenants {
	s := &Tenants{
		api:      api,
		auxLimit: auxLimit,
		logger:   logger,
		hooks:    hooks,
	}
	s.controller = query.NewController(api.ListTenants, query.NewState(limit), window, logger)
	s.controller.OnUpdate = func(records []model.Tenant, _ model.PaginationInfo, firstLoad bool) {
		if firstLoad {
			s.notices.add(NoticeSuccess, "Tenants loaded")
		}
	}
	s.controller.OnError = func(err error) {
		s.notices.add(NoticeError, "Failed to load tenants: "+err.Error())
	}
	s.controller.OnStale = func() { hooks.stale(NameTenants) }
	return s
}

// Controller exposes the query controller for filter, sort, search and page
// mutations.
func (s *Tenants) Controller() *query.Controller[model.Tenant] {
	return s.controller
}

// Load fetches the tenant page and both property sets as one batch. The
// auxiliary results are committed only when the whole batch succeeds.
func (s *Tenants) Load(ctx context.Context) error {
	var (
		properties []model.Property
		available  []model.Property
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.controller.Load(ctx) })
	g.Go(func() error {
		var err error
		properties, _, err = s.api.ListProperties(ctx, model.ListParams{Limit: s.auxLimit})
		return err
	})
	g.Go(func() error {
		var err error
		available, err = s.api.AvailableProperties(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Tenant screen load failed", zap.Error(err))
		s.hooks.refresh(NameTenants, err)
		return err
	}

	s.mu.Lock()
	s.properties = properties
	s.available = available
	s.mu.Unlock()

	s.hooks.refresh(NameTenants, nil)
	return nil
}

// View snapshots the screen for rendering.
func (s *Tenants) View() TenantView {
	records, pagination := s.controller.Records()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return TenantView{
		Records:    records,
		Pagination: pagination,
		State:      s.controller.State(),
		Properties: s.properties,
		Available:  s.available,
		Notices:    s.notices.snapshot(),
	}
}

// Properties returns the last fetched full property set.
func (s *Tenants) Properties() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.properties
}

// PropertyName resolves a property ID to its display name, falling back to
// the raw ID when the property is not in the fetched set.
func (s *Tenants) PropertyName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if name, ok := propertyNames(s.properties)[id]; ok {
		return name
	}
	return id
}

// Close stops the controller's pending debounce timer.
func (s *Tenants) Close() {
	s.controller.Close()
}
