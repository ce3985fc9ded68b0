package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"backoffice-service/internal/model"
	"backoffice-service/internal/screen"
	"backoffice-service/pkg/rentms"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

// upstream is a fake rental-management API that serves canned data and
// counts the requests it receives per method and path.
type upstream struct {
	mu        sync.Mutex
	hits      map[string]int
	tenants   []model.Tenant
	available bool
}

func newUpstream() *upstream {
	return &upstream{hits: map[string]int{}, available: true}
}

func (u *upstream) count(r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hits[r.Method+" "+r.URL.Path]++
}

func (u *upstream) hitCount(key string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[key]
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()

	respond := func(w http.ResponseWriter, data interface{}) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	mux.HandleFunc("/tenants", func(w http.ResponseWriter, r *http.Request) {
		u.count(r)
		switch r.Method {
		case http.MethodGet:
			respond(w, u.tenants)
		case http.MethodPost:
			respond(w, model.Tenant{ID: "t-new"})
		}
	})
	mux.HandleFunc("/properties", func(w http.ResponseWriter, r *http.Request) {
		u.count(r)
		respond(w, []model.Property{{ID: "p1", Name: "Sunset Villa"}})
	})
	mux.HandleFunc("/properties/available", func(w http.ResponseWriter, r *http.Request) {
		u.count(r)
		respond(w, []model.Property{{ID: "p1", Name: "Sunset Villa"}})
	})
	mux.HandleFunc("/properties/p1/availability", func(w http.ResponseWriter, r *http.Request) {
		u.count(r)
		respond(w, model.Availability{PropertyID: "p1", IsAvailable: u.available})
	})
	mux.HandleFunc("/leases", func(w http.ResponseWriter, r *http.Request) {
		u.count(r)
		switch r.Method {
		case http.MethodGet:
			respond(w, []model.Lease{})
		case http.MethodPost:
			respond(w, model.Lease{ID: "l-new", PropertyID: "p1"})
		}
	})

	return mux
}

func newTestClient(t *testing.T, u *upstream) *rentms.Client {
	t.Helper()
	server := httptest.NewServer(u.handler())
	t.Cleanup(server.Close)
	return rentms.NewClient(server.URL, 5*time.Second, staticTokens("test-token"), zap.NewNop())
}

func postJSON(t *testing.T, e *echo.Echo, handlerFunc echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handlerFunc(e.NewContext(req, rec)))
	return rec
}

func TestTenantCreateBlockedByFieldValidation(t *testing.T) {
	u := newUpstream()
	client := newTestClient(t, u)
	s := screen.NewTenants(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewTenantHandler(client, s, Metrics{})

	rec := postJSON(t, echo.New(), h.Create, `{
		"name": "Alice",
		"phone": "123",
		"idNumber": "1234567890123456",
		"propertyId": "p1",
		"status": "active"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone")

	// Nothing was sent upstream.
	assert.Zero(t, u.hitCount("POST /tenants"))
}

func TestTenantCreateBlockedByDuplicatePhone(t *testing.T) {
	u := newUpstream()
	u.tenants = []model.Tenant{{ID: "t1", Phone: "0788123456"}}
	client := newTestClient(t, u)
	s := screen.NewTenants(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewTenantHandler(client, s, Metrics{})

	rec := postJSON(t, echo.New(), h.Create, `{
		"name": "Bob",
		"phone": "0788123456",
		"idNumber": "1234567890123456",
		"propertyId": "p1",
		"status": "active"
	}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "another tenant already uses this phone number")
	assert.Zero(t, u.hitCount("POST /tenants"))
}

func TestTenantCreateSucceeds(t *testing.T) {
	u := newUpstream()
	client := newTestClient(t, u)
	s := screen.NewTenants(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewTenantHandler(client, s, Metrics{})

	rec := postJSON(t, echo.New(), h.Create, `{
		"name": "Alice",
		"phone": "0788123456",
		"idNumber": "1234567890123456",
		"propertyId": "p1",
		"status": "active",
		"stayStartDate": "2024-01-15",
		"monthsPaid": "3"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, u.hitCount("POST /tenants"))
}

func TestLeaseCreateRejectedWhenPropertyOccupied(t *testing.T) {
	u := newUpstream()
	u.available = false
	client := newTestClient(t, u)
	s := screen.NewLeases(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewLeaseHandler(client, s, Metrics{})

	rec := postJSON(t, echo.New(), h.Create, `{
		"propertyId": "p1",
		"tenantId": "t1",
		"startDate": "2024-01-01",
		"endDate": "2025-01-01",
		"monthlyRent": "100000",
		"status": "active"
	}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, u.hitCount("GET /properties/p1/availability"))
	assert.Zero(t, u.hitCount("POST /leases"))
}

func TestLeaseCreateSucceedsWhenPropertyFree(t *testing.T) {
	u := newUpstream()
	client := newTestClient(t, u)
	s := screen.NewLeases(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewLeaseHandler(client, s, Metrics{})

	rec := postJSON(t, echo.New(), h.Create, `{
		"propertyId": "p1",
		"tenantId": "t1",
		"startDate": "2024-01-01",
		"endDate": "2025-01-01",
		"monthlyRent": "100000",
		"status": "active"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, u.hitCount("POST /leases"))
}

func TestUpdateQueryAppliesOnlyPresentFields(t *testing.T) {
	u := newUpstream()
	client := newTestClient(t, u)
	s := screen.NewTenants(client, 10, 100, time.Hour, zap.NewNop(), screen.Hooks{})
	defer s.Close()
	h := NewTenantHandler(client, s, Metrics{})

	s.Controller().SetStatus("active")

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"search":"ali"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.UpdateQuery(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	state := s.Controller().State()
	assert.Equal(t, "ali", state.Search)
	assert.Equal(t, "active", state.Status)
	assert.Equal(t, 1, state.Page)
}
