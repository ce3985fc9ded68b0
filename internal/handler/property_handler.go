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

// PropertyHandler serves the property screen.
type PropertyHandler struct {
	client  *rentms.Client
	screen  *screen.Properties
	metrics Metrics
}

// NewPropertyHandler creates the property handler.
func NewPropertyHandler(client *rentms.Client, s *screen.Properties, metrics Metrics) *PropertyHandler {
	return &PropertyHandler{client: client, screen: s, metrics: metrics}
}

// View renders the property screen, loading it on first access.
func (h *PropertyHandler) View(c echo.Context) error {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Property view refresh failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, h.screen.View())
}

// UpdateQuery applies filter, search, sort or page changes.
func (h *PropertyHandler) UpdateQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	applyQuery(h.screen.Controller(), req)
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// ClearQuery resets the view to its default filters and sort.
func (h *PropertyHandler) ClearQuery(c echo.Context) error {
	h.screen.Controller().ClearFilters()
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// Schema returns the property editor field schema.
func (h *PropertyHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, forms.PropertySchema())
}

// Export streams the current property page as CSV.
func (h *PropertyHandler) Export(c echo.Context) error {
	view := h.screen.View()
	h.metrics.export(screen.NameProperties)

	csvResponse(c, "properties.csv")
	return export.Write(c.Response(), export.PropertyHeaders, export.PropertyRows(view.Records))
}

// Get fetches a single property from the upstream API.
func (h *PropertyHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	property, err := h.client.GetProperty(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to retrieve property")
	}
	return c.JSON(http.StatusOK, property)
}

// Availability checks whether the property currently has an occupant.
func (h *PropertyHandler) Availability(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	availability, err := h.client.CheckAvailability(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to check property availability")
	}
	return c.JSON(http.StatusOK, availability)
}

// Create validates the submitted form and creates the property upstream.
func (h *PropertyHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid property form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.PropertySchema().Validate(values); len(errs) > 0 {
		log.Warn("Property form rejected", zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	property, err := h.client.CreateProperty(c.Request().Context(), forms.BuildPropertyInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to create property")
	}

	log.Info("Property created", zap.String("property_id", property.ID))
	h.refresh(c)
	return c.JSON(http.StatusCreated, property)
}

// Update validates the submitted form and updates the property upstream.
func (h *PropertyHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid property form", zap.String("property_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if errs := forms.PropertySchema().Validate(values); len(errs) > 0 {
		log.Warn("Property form rejected",
			zap.String("property_id", id),
			zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	property, err := h.client.UpdateProperty(c.Request().Context(), id, forms.BuildPropertyInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to update property")
	}

	log.Info("Property updated", zap.String("property_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, property)
}

// Delete removes a property upstream.
func (h *PropertyHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.client.DeleteProperty(c.Request().Context(), id); err != nil {
		return upstreamError(c, log, err, "Failed to delete property")
	}

	log.Info("Property deleted", zap.String("property_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Property deleted successfully"})
}

func (h *PropertyHandler) refresh(c echo.Context) {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Property list refresh after mutation failed", zap.Error(err))
	}
}
