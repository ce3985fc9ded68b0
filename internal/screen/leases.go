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

// Leases is the lease list screen: the query controller, the property set
// for name display, the available properties for the editor's picker, and
// the tenant set for the editor's tenant picker.
type Leases struct {
	api        API
	controller *query.Controller[model.Lease]
	auxLimit   int
	logger     *zap.Logger
	hooks      Hooks
	notices    notices

	mu         sync.RWMutex
	properties []model.Property
	available  []model.Property
	tenants    []model.Tenant
}

// LeaseView is the JSON snapshot rendered for the lease screen.
type LeaseView struct {
	Records    []model.Lease        `json:"records"`
	Pagination model.PaginationInfo `json:"pagination"`
	State      query.State          `json:"query"`
	Properties []model.Property     `json:"properties"`
	Available  []model.Property     `json:"availableProperties"`
	Tenants    []model.Tenant       `json:"tenants"`
	Notices    []Notice             `json:"notices"`
}

// NewLeases creates the lease screen.
func NewLeases(api API, limit, auxLimit int, window time.Duration, logger *zap.Logger, hooks Hooks) *Leases {
	s := &Leases{
		api:      api,
		auxLimit: auxLimit,
		logger:   logger,
		hooks:    hooks,
	}
	s.controller = query.NewController(api.ListLeases, query.NewState(limit), window, logger)
	s.controller.OnUpdate = func(records []model.Lease, _ model.PaginationInfo, firstLoad bool) {
		if firstLoad {
			s.notices.add(NoticeSuccess, "Leases loaded")
		}
	}
	s.controller.OnError = func(err error) {
		s.notices.add(NoticeError, "Failed to load leases: "+err.Error())
	}
	s.controller.OnStale = func() { hooks.stale(NameLeases) }
	return s
}

// Controller exposes the query controller for filter, sort, search and page
// mutations.
func (s *Leases) Controller() *query.Controller[model.Lease] {
	return s.controller
}

// Load fetches the lease page and every editor data set as one batch. The
// auxiliary results are committed only when the whole batch succeeds.
func (s *Leases) Load(ctx context.Context) error {
	var (
		properties []model.Property
		available  []model.Property
		tenants    []model.Tenant
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
	g.Go(func() error {
		var err error
		tenants, _, err = s.api.ListTenants(ctx, model.ListParams{Limit: s.auxLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Lease screen load failed", zap.Error(err))
		s.hooks.refresh(NameLeases, err)
		return err
	}

	s.mu.Lock()
	s.properties = properties
	s.available = available
	s.tenants = tenants
	s.mu.Unlock()

	s.hooks.refresh(NameLeases, nil)
	return nil
}

// View snapshots the screen for rendering.
func (s *Leases) View() LeaseView {
	records, pagination := s.controller.Records()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return LeaseView{
		Records:    records,
		Pagination: pagination,
		State:      s.controller.State(),
		Properties: s.properties,
		Available:  s.available,
		Tenants:    s.tenants,
		Notices:    s.notices.snapshot(),
	}
}

// PropertyName resolves a property ID to its display name, falling back to
// the raw ID.
func (s *Leases) PropertyName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if name, ok := propertyNames(s.properties)[id]; ok {
		return name
	}
	return id
}

// Close stops the controller's pending debounce timer.
func (s *Leases) Close() {
	s.controller.Close()
}
