// Package handler exposes the back-office screens as a JSON surface: one
// view/query/CRUD/export group per entity screen, plus auth, dashboard and
// health endpoints. All data operations are delegated to the upstream
// rental-management API; the handlers only add local validation and view
// state.
package handler

import (
	"errors"
	"net/http"

	"backoffice-service/internal/query"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// uniquenessLimit bounds the tenant set fetched for duplicate checks.
const uniquenessLimit = 1000

// Metrics carries optional counters so the package stays free of metric
// registrations. Nil funcs are skipped.
type Metrics struct {
	LoginAttempt func()
	LoginSuccess func()
	Export       func(screen string)
}

func (m Metrics) loginAttempt() {
	if m.LoginAttempt != nil {
		m.LoginAttempt()
	}
}

func (m Metrics) loginSuccess() {
	if m.LoginSuccess != nil {
		m.LoginSuccess()
	}
}

func (m Metrics) export(screen string) {
	if m.Export != nil {
		m.Export(screen)
	}
}

// QueryRequest is the body of a list-query mutation. Only the fields present
// in the request are applied, so a search keystroke does not clobber the
// active filters.
type QueryRequest struct {
	Search     *string `json:"search"`
	Status     *string `json:"status"`
	Type       *string `json:"type"`
	Priority   *string `json:"priority"`
	PropertyID *string `json:"propertyId"`
	SortBy     *string `json:"sortBy"`
	SortOrder  *string `json:"sortOrder"`
	Page       *int    `json:"page"`
}

// applyQuery feeds the present fields into the controller. Filter and sort
// changes are debounced by the controller; a page change fetches immediately
// and is applied last so it is not reset by the other setters.
func applyQuery[T any](controller *query.Controller[T], req QueryRequest) {
	if req.Search != nil {
		controller.SetSearch(*req.Search)
	}
	if req.Status != nil {
		controller.SetStatus(*req.Status)
	}
	if req.Type != nil {
		controller.SetType(*req.Type)
	}
	if req.Priority != nil {
		controller.SetPriority(*req.Priority)
	}
	if req.PropertyID != nil {
		controller.SetPropertyID(*req.PropertyID)
	}
	if req.SortBy != nil || req.SortOrder != nil {
		state := controller.State()
		sortBy, sortOrder := state.SortBy, state.SortOrder
		if req.SortBy != nil {
			sortBy = *req.SortBy
		}
		if req.SortOrder != nil {
			sortOrder = *req.SortOrder
		}
		controller.SetSort(sortBy, sortOrder)
	}
	if req.Page != nil {
		controller.SetPage(*req.Page)
	}
}

// upstreamError renders an upstream failure. Client-caused statuses pass
// through; everything else becomes a 502 so the operator can tell a bad
// input from a broken upstream.
func upstreamError(c echo.Context, log *zap.Logger, err error, message string) error {
	log.Error(message, zap.Error(err))

	status := http.StatusBadGateway
	var apiErr *rentms.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		status = apiErr.StatusCode
		if apiErr.Message != "" {
			message = apiErr.Message
		}
	}
	return c.JSON(status, echo.Map{"error": message})
}

func csvResponse(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
}
