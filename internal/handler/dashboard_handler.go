package handler

import (
	"net/http"

	"backoffice-service/internal/screen"
	"backoffice-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DashboardHandler serves the aggregated dashboard view.
type DashboardHandler struct {
	screen *screen.Dashboard
}

// NewDashboardHandler creates the dashboard handler.
func NewDashboardHandler(s *screen.Dashboard) *DashboardHandler {
	return &DashboardHandler{screen: s}
}

// View renders the dashboard, running the aggregation on first access.
// Later views serve the held stats; Refresh re-runs the batch.
func (h *DashboardHandler) View(c echo.Context) error {
	if !h.screen.Loaded() {
		if err := h.screen.Refresh(c.Request().Context()); err != nil {
			logger.FromContext(c).Warn("Initial dashboard load failed", zap.Error(err))
		}
	}
	return c.JSON(http.StatusOK, h.screen.View())
}

// Refresh re-runs the aggregation batch. A failed batch keeps the previous
// stats and reports the failure.
func (h *DashboardHandler) Refresh(c echo.Context) error {
	if err := h.screen.Refresh(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Dashboard refresh failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to refresh dashboard"})
	}
	return c.JSON(http.StatusOK, h.screen.View())
}
