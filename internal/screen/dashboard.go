package screen

import (
	"context"
	"sync"
	"time"

	"backoffice-service/internal/dashboard"

	"go.uber.org/zap"
)

// Dashboard holds the last successfully aggregated statistics. A failed
// refresh leaves the previous stats on screen untouched.
type Dashboard struct {
	aggregator *dashboard.Aggregator
	logger     *zap.Logger
	hooks      Hooks
	notices    notices

	mu        sync.RWMutex
	stats     dashboard.Stats
	loaded    bool
	updatedAt time.Time
}

// DashboardView is the JSON snapshot rendered for the dashboard.
type DashboardView struct {
	Stats     dashboard.Stats `json:"stats"`
	Loaded    bool            `json:"loaded"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Notices   []Notice        `json:"notices"`
}

// NewDashboard creates the dashboard screen.
func NewDashboard(aggregator *dashboard.Aggregator, logger *zap.Logger, hooks Hooks) *Dashboard {
	return &Dashboard{
		aggregator: aggregator,
		logger:     logger,
		hooks:      hooks,
	}
}

// Refresh runs the aggregation batch and applies the result atomically.
func (s *Dashboard) Refresh(ctx context.Context) error {
	stats, err := s.aggregator.Load(ctx, time.Now())
	if err != nil {
		s.logger.Warn("Dashboard refresh failed, keeping previous stats", zap.Error(err))
		s.notices.add(NoticeError, "Failed to load dashboard: "+err.Error())
		s.hooks.refresh(NameDashboard, err)
		return err
	}

	s.mu.Lock()
	first := !s.loaded
	s.stats = stats
	s.loaded = true
	s.updatedAt = time.Now()
	s.mu.Unlock()

	if first {
		s.notices.add(NoticeSuccess, "Dashboard loaded")
	}
	s.hooks.refresh(NameDashboard, nil)
	return nil
}

// Loaded reports whether at least one refresh has succeeded.
func (s *Dashboard) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// View snapshots the dashboard for rendering.
func (s *Dashboard) View() DashboardView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return DashboardView{
		Stats:     s.stats,
		Loaded:    s.loaded,
		UpdatedAt: s.updatedAt,
		Notices:   s.notices.snapshot(),
	}
}
