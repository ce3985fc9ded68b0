package handler

import (
	"net/http"

	"backoffice-service/internal/export"
	"backoffice-service/internal/forms"
	"backoffice-service/internal/screen"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MaintenanceHandler serves the maintenance screen.
type MaintenanceHandler struct {
	client  *rentms.Client
	screen  *screen.Maintenance
	metrics Metrics
}

// NewMaintenanceHandler creates the maintenance handler.
func NewMaintenanceHandler(client *rentms.Client, s *screen.Maintenance, metrics Metrics) *MaintenanceHandler {
	return &MaintenanceHandler{client: client, screen: s, metrics: metrics}
}

// View renders the maintenance screen, loading it on first access.
func (h *MaintenanceHandler) View(c echo.Context) error {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Maintenance view refresh failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, h.screen.View())
}

// UpdateQuery applies filter, search, sort or page changes.
func (h *MaintenanceHandler) UpdateQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	applyQuery(h.screen.Controller(), req)
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// ClearQuery resets the view to its default filters and sort.
func (h *MaintenanceHandler) ClearQuery(c echo.Context) error {
	h.screen.Controller().ClearFilters()
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// Schema returns the maintenance editor field schema.
func (h *MaintenanceHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, forms.MaintenanceSchema())
}

// Export streams the current maintenance page as CSV.
func (h *MaintenanceHandler) Export(c echo.Context) error {
	view := h.screen.View()
	h.metrics.export(screen.NameMaintenance)

	csvResponse(c, "maintenance.csv")
	return export.Write(c.Response(), export.MaintenanceHeaders,
		export.MaintenanceRows(view.Records, h.screen.PropertyName))
}

// Get fetches a single maintenance request from the upstream API.
func (h *MaintenanceHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	item, err := h.client.GetMaintenance(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to retrieve maintenance request")
	}
	return c.JSON(http.StatusOK, item)
}

// Create validates the submitted form and creates the request upstream.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid maintenance form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.MaintenanceSchema().Validate(values); len(errs) > 0 {
		log.Warn("Maintenance form rejected", zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	item, err := h.client.CreateMaintenance(c.Request().Context(), forms.BuildMaintenanceInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to create maintenance request")
	}

	log.Info("Maintenance request created", zap.String("maintenance_id", item.ID))
	h.refresh(c)
	return c.JSON(http.StatusCreated, item)
}

// Update validates the submitted form and updates the request upstream.
func (h *MaintenanceHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid maintenance form", zap.String("maintenance_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.MaintenanceSchema().Validate(values); len(errs) > 0 {
		log.Warn("Maintenance form rejected",
			zap.String("maintenance_id", id),
			zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	item, err := h.client.UpdateMaintenance(c.Request().Context(), id, forms.BuildMaintenanceInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to update maintenance request")
	}

	log.Info("Maintenance request updated", zap.String("maintenance_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, item)
}

// Delete removes a maintenance request upstream.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.client.DeleteMaintenance(c.Request().Context(), id); err != nil {
		return upstreamError(c, log, err, "Failed to delete maintenance request")
	}

	log.Info("Maintenance request deleted", zap.String("maintenance_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Maintenance request deleted successfully"})
}

func (h *MaintenanceHandler) refresh(c echo.Context) {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Maintenance list refresh after mutation failed", zap.Error(err))
	}
}
