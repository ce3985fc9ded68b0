package handler

import (
	"net/http"

	"backoffice-service/internal/export"
	"backoffice-service/internal/forms"
	"backoffice-service/internal/model"
	"backoffice-service/internal/screen"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LeaseHandler serves the lease screen. Creating an active lease first
// checks the property's availability; an occupied property is rejected with
// a conflict before anything is sent upstream.
type LeaseHandler struct {
	client  *rentms.Client
	screen  *screen.Leases
	metrics Metrics
}

// NewLeaseHandler creates the lease handler.
func NewLeaseHandler(client *rentms.Client, s *screen.Leases, metrics Metrics) *LeaseHandler {
	return &LeaseHandler{client: client, screen: s, metrics: metrics}
}

// View renders the lease screen, loading it on first access.
func (h *LeaseHandler) View(c echo.Context) error {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Lease view refresh failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, h.screen.View())
}

// UpdateQuery applies filter, search, sort or page changes.
func (h *LeaseHandler) UpdateQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	applyQuery(h.screen.Controller(), req)
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// ClearQuery resets the view to its default filters and sort.
func (h *LeaseHandler) ClearQuery(c echo.Context) error {
	h.screen.Controller().ClearFilters()
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// Schema returns the lease editor field schema.
func (h *LeaseHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, forms.LeaseSchema())
}

// Export streams the current lease page as CSV.
func (h *LeaseHandler) Export(c echo.Context) error {
	view := h.screen.View()
	h.metrics.export(screen.NameLeases)

	csvResponse(c, "leases.csv")
	return export.Write(c.Response(), export.LeaseHeaders,
		export.LeaseRows(view.Records, h.screen.PropertyName))
}

// Get fetches a single lease from the upstream API.
func (h *LeaseHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	lease, err := h.client.GetLease(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to retrieve lease")
	}
	return c.JSON(http.StatusOK, lease)
}

// Create validates the submitted form, verifies the property is free when
// the lease is active, then creates the lease upstream.
func (h *LeaseHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid lease form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.LeaseSchema().Validate(values); len(errs) > 0 {
		log.Warn("Lease form rejected", zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	if values["status"] == model.LeaseStatusActive {
		availability, err := h.client.CheckAvailability(c.Request().Context(), values["propertyId"])
		if err != nil {
			return upstreamError(c, log, err, "Failed to check property availability")
		}
		if !availability.IsAvailable {
			log.Warn("Lease creation rejected, property occupied",
				zap.String("property_id", values["propertyId"]))
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Property already has an active tenant",
			})
		}
	}

	lease, err := h.client.CreateLease(c.Request().Context(), forms.BuildLeaseInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to create lease")
	}

	log.Info("Lease created",
		zap.String("lease_id", lease.ID),
		zap.String("property_id", lease.PropertyID))
	h.refresh(c)
	return c.JSON(http.StatusCreated, lease)
}

// Update validates the submitted form and updates the lease upstream.
func (h *LeaseHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid lease form", zap.String("lease_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.LeaseSchema().Validate(values); len(errs) > 0 {
		log.Warn("Lease form rejected",
			zap.String("lease_id", id),
			zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	lease, err := h.client.UpdateLease(c.Request().Context(), id, forms.BuildLeaseInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to update lease")
	}

	log.Info("Lease updated", zap.String("lease_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, lease)
}

// Delete removes a lease upstream.
func (h *LeaseHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.client.DeleteLease(c.Request().Context(), id); err != nil {
		return upstreamError(c, log, err, "Failed to delete lease")
	}

	log.Info("Lease deleted", zap.String("lease_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Lease deleted successfully"})
}

func (h *LeaseHandler) refresh(c echo.Context) {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Lease list refresh after mutation failed", zap.Error(err))
	}
}
