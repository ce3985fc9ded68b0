package screen

import (
	"context"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/internal/query"

	"go.uber.org/zap"
)

// Properties is the property list screen. It needs no auxiliary data, so a
// load is just the controller fetch.
type Properties struct {
	controller *query.Controller[model.Property]
	logger     *zap.Logger
	hooks      Hooks
	notices    notices
}

// PropertyView is the JSON snapshot rendered for the property screen.
type PropertyView struct {
	Records    []model.Property     `json:"records"`
	Pagination model.PaginationInfo `json:"pagination"`
	State      query.State          `json:"query"`
	Notices    []Notice             `json:"notices"`
}

// NewProperties creates the property screen.
func NewProperties(api API, limit int, window time.Duration, logger *zap.Logger, hooks Hooks) *Properties {
	s := &Properties{logger: logger, hooks: hooks}
	s.controller = query.NewController(api.ListProperties, query.NewState(limit), window, logger)
	s.controller.OnUpdate = func(records []model.Property, _ model.PaginationInfo, firstLoad bool) {
		if firstLoad {
			s.notices.add(NoticeSuccess, "Properties loaded")
		}
	}
	s.controller.OnError = func(err error) {
		s.notices.add(NoticeError, "Failed to load properties: "+err.Error())
	}
	s.controller.OnStale = func() { hooks.stale(NameProperties) }
	return s
}

// Controller exposes the query controller for filter, sort, search and page
// mutations.
func (s *Properties) Controller() *query.Controller[model.Property] {
	return s.controller
}

// Load fetches the property page synchronously.
func (s *Properties) Load(ctx context.Context) error {
	if err := s.controller.Load(ctx); err != nil {
		s.logger.Warn("Property screen load failed", zap.Error(err))
		s.hooks.refresh(NameProperties, err)
		return err
	}
	s.hooks.refresh(NameProperties, nil)
	return nil
}

// View snapshots the screen for rendering.
func (s *Properties) View() PropertyView {
	records, pagination := s.controller.Records()
	return PropertyView{
		Records:    records,
		Pagination: pagination,
		State:      s.controller.State(),
		Notices:    s.notices.snapshot(),
	}
}

// Close stops the controller's pending debounce timer.
func (s *Properties) Close() {
	s.controller.Close()
}
