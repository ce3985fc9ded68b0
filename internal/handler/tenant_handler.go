package handler

import (
	"net/http"

	"backoffice-service/internal/export"
	"backoffice-service/internal/forms"
	"backoffice-service/internal/model"
	"backoffice-service/internal/screen"
	"backoffice-service/internal/validate"
	"backoffice-service/pkg/logger"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TenantHandler serves the tenant screen: view, query mutations, CRUD with
// local validation and duplicate checks, and CSV export.
type TenantHandler struct {
	client  *rentms.Client
	screen  *screen.Tenants
	metrics Metrics
}

// NewTenantHandler creates the tenant handler.
func NewTenantHandler(client *rentms.Client, s *screen.Tenants, metrics Metrics) *TenantHandler {
	return &TenantHandler{client: client, screen: s, metrics: metrics}
}

// View renders the tenant screen, loading it on first access.
func (h *TenantHandler) View(c echo.Context) error {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		// The view still renders with last-good data and an error notice.
		logger.FromContext(c).Warn("Tenant view refresh failed", zap.Error(err))
	}
	return c.JSON(http.StatusOK, h.screen.View())
}

// UpdateQuery applies filter, search, sort or page changes.
func (h *TenantHandler) UpdateQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	applyQuery(h.screen.Controller(), req)
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// ClearQuery resets the view to its default filters and sort.
func (h *TenantHandler) ClearQuery(c echo.Context) error {
	h.screen.Controller().ClearFilters()
	return c.JSON(http.StatusAccepted, echo.Map{"query": h.screen.Controller().State()})
}

// Schema returns the tenant editor field schema.
func (h *TenantHandler) Schema(c echo.Context) error {
	return c.JSON(http.StatusOK, forms.TenantSchema())
}

// Export streams the current tenant page as CSV.
func (h *TenantHandler) Export(c echo.Context) error {
	view := h.screen.View()
	h.metrics.export(screen.NameTenants)

	csvResponse(c, "tenants.csv")
	return export.Write(c.Response(), export.TenantHeaders,
		export.TenantRows(view.Records, h.screen.PropertyName))
}

// Get fetches a single tenant from the upstream API.
func (h *TenantHandler) Get(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	tenant, err := h.client.GetTenant(c.Request().Context(), id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to retrieve tenant")
	}
	return c.JSON(http.StatusOK, tenant)
}

// Create validates the submitted form and creates the tenant upstream.
// Validation failures block the submission entirely; nothing is sent.
func (h *TenantHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid tenant form", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	errs, err := h.validateTenant(c, values, "")
	if err != nil {
		return upstreamError(c, log, err, "Failed to verify tenant uniqueness")
	}
	if len(errs) > 0 {
		log.Warn("Tenant form rejected", zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	tenant, err := h.client.CreateTenant(c.Request().Context(), forms.BuildTenantInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to create tenant")
	}

	log.Info("Tenant created", zap.String("tenant_id", tenant.ID))
	h.refresh(c)
	return c.JSON(http.StatusCreated, tenant)
}

// Update validates the submitted form and updates the tenant upstream.
func (h *TenantHandler) Update(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	values := forms.Values{}
	if err := c.Bind(&values); err != nil {
		log.Error("Invalid tenant form", zap.String("tenant_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	errs, err := h.validateTenant(c, values, id)
	if err != nil {
		return upstreamError(c, log, err, "Failed to verify tenant uniqueness")
	}
	if len(errs) > 0 {
		log.Warn("Tenant form rejected",
			zap.String("tenant_id", id),
			zap.Int("field_errors", len(errs)))
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	tenant, err := h.client.UpdateTenant(c.Request().Context(), id, forms.BuildTenantInput(values))
	if err != nil {
		return upstreamError(c, log, err, "Failed to update tenant")
	}

	log.Info("Tenant updated", zap.String("tenant_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, tenant)
}

// Delete removes a tenant upstream.
func (h *TenantHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	if err := h.client.DeleteTenant(c.Request().Context(), id); err != nil {
		return upstreamError(c, log, err, "Failed to delete tenant")
	}

	log.Info("Tenant deleted", zap.String("tenant_id", id))
	h.refresh(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Tenant deleted successfully"})
}

// validateTenant runs the schema checks plus the duplicate phone/email scan
// against the current tenant set. excludeID skips the tenant being edited.
func (h *TenantHandler) validateTenant(c echo.Context, values forms.Values, excludeID string) ([]validate.FieldError, error) {
	forms.AutofillPayment(values, h.screen.Properties())

	errs := forms.TenantSchema().Validate(values)
	if len(errs) > 0 {
		return errs, nil
	}

	tenants, _, err := h.client.ListTenants(c.Request().Context(), model.ListParams{Limit: uniquenessLimit})
	if err != nil {
		return nil, err
	}
	if dup := validate.UniquePhone(tenants, values["phone"], excludeID); dup != nil {
		errs = append(errs, *dup)
	}
	if dup := validate.UniqueEmail(tenants, values["email"], excludeID); dup != nil {
		errs = append(errs, *dup)
	}
	return errs, nil
}

// refresh reloads the list after a mutation; a failure only leaves a notice.
func (h *TenantHandler) refresh(c echo.Context) {
	if err := h.screen.Load(c.Request().Context()); err != nil {
		logger.FromContext(c).Warn("Tenant list refresh after mutation failed", zap.Error(err))
	}
}
