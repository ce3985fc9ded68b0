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

// Maintenance is the maintenance list screen: the query controller plus the
// property set used for name display and the editor's property picker.
type Maintenance struct {
	api        API
	controller *query.Controller[model.Maintenance]
	auxLimit   int
	logger     *zap.Logger
	hooks      Hooks
	notices    notices

	mu         sync.RWMutex
	properties []model.Property
}

// MaintenanceView is the JSON snapshot rendered for the maintenance screen.
type MaintenanceView struct {
	Records    []model.Maintenance  `json:"records"`
	Pagination model.PaginationInfo `json:"pagination"`
	State      query.State          `json:"query"`
	Properties []model.Property     `json:"properties"`
	Notices    []Notice             `json:"notices"`
}

// NewMaintenance creates the maintenance screen.
func NewMaintenance(api API, limit, auxLimit int, window time.Duration, logger *zap.Logger, hooks Hooks) *Maintenance {
	s := &Maintenance{
		api:      api,
		auxLimit: auxLimit,
		logger:   logger,
		hooks:    hooks,
	}
	s.controller = query.NewController(api.ListMaintenance, query.NewState(limit), window, logger)
	s.controller.OnUpdate = func(records []model.Maintenance, _ model.PaginationInfo, firstLoad bool) {
		if firstLoad {
			s.notices.add(NoticeSuccess, "Maintenance requests loaded")
		}
	}
	s.controller.OnError = func(err error) {
		s.notices.add(NoticeError, "Failed to load maintenance requests: "+err.Error())
	}
	s.controller.OnStale = func() { hooks.stale(NameMaintenance) }
	return s
}

// Controller exposes the query controller for filter, sort, search and page
// mutations.
func (s *Maintenance) Controller() *query.Controller[model.Maintenance] {
	return s.controller
}

// Load fetches the maintenance page and the property set as one batch.
func (s *Maintenance) Load(ctx context.Context) error {
	var properties []model.Property

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.controller.Load(ctx) })
	g.Go(func() error {
		var err error
		properties, _, err = s.api.ListProperties(ctx, model.ListParams{Limit: s.auxLimit})
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("Maintenance screen load failed", zap.Error(err))
		s.hooks.refresh(NameMaintenance, err)
		return err
	}

	s.mu.Lock()
	s.properties = properties
	s.mu.Unlock()

	s.hooks.refresh(NameMaintenance, nil)
	return nil
}

// View snapshots the screen for rendering.
func (s *Maintenance) View() MaintenanceView {
	records, pagination := s.controller.Records()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return MaintenanceView{
		Records:    records,
		Pagination: pagination,
		State:      s.controller.State(),
		Properties: s.properties,
		Notices:    s.notices.snapshot(),
	}
}

// PropertyName resolves a property ID to its display name, falling back to
// the raw ID.
func (s *Maintenance) PropertyName(id string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if name, ok := propertyNames(s.properties)[id]; ok {
		return name
	}
	return id
}

// Close stops the controller's pending debounce timer.
func (s *Maintenance) Close() {
	s.controller.Close()
}
