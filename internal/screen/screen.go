// Package screen holds the server-side view state for the back-office
// screens. Each list screen owns a query controller plus the auxiliary data
// its editor needs (property names, available properties); the dashboard
// screen holds the last successfully aggregated statistics.
package screen

import (
	"context"
	"sync"
	"time"

	"backoffice-service/internal/model"
)

// Screen names used in notices and observability hooks.
const (
	NameTenants     = "tenants"
	NameProperties  = "properties"
	NameMaintenance = "maintenance"
	NameLeases      = "leases"
	NameDashboard   = "dashboard"
)

// Notice levels.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// maxNotices bounds the retained notice history per screen.
const maxNotices = 10

// Notice is a transient message surfaced to the operator: a load
// confirmation or a request failure. Failures never clear the data already
// on screen.
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Hooks carries optional observability callbacks so the package stays free
// of metric registrations.
type Hooks struct {
	// OnRefresh is called after every screen load with the outcome
	// ("success" or "error").
	OnRefresh func(screen, outcome string)

	// OnStale is called when a screen discards a superseded list response.
	OnStale func(screen string)
}

func (h Hooks) refresh(screen string, err error) {
	if h.OnRefresh == nil {
		return
	}
	if err != nil {
		h.OnRefresh(screen, NoticeError)
		return
	}
	h.OnRefresh(screen, NoticeSuccess)
}

func (h Hooks) stale(screen string) {
	if h.OnStale != nil {
		h.OnStale(screen)
	}
}

// API is the subset of the upstream client the screens need for their list
// and auxiliary fetches.
type API interface {
	ListProperties(ctx context.Context, params model.ListParams) ([]model.Property, model.PaginationInfo, error)
	AvailableProperties(ctx context.Context) ([]model.Property, error)
	ListTenants(ctx context.Context, params model.ListParams) ([]model.Tenant, model.PaginationInfo, error)
	ListMaintenance(ctx context.Context, params model.ListParams) ([]model.Maintenance, model.PaginationInfo, error)
	ListLeases(ctx context.Context, params model.ListParams) ([]model.Lease, model.PaginationInfo, error)
}

// notices is the shared notice buffer embedded by every screen.
type notices struct {
	mu      sync.Mutex
	entries []Notice
}

func (n *notices) add(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.entries = append(n.entries, Notice{Level: level, Message: message, Time: time.Now()})
	if len(n.entries) > maxNotices {
		n.entries = n.entries[len(n.entries)-maxNotices:]
	}
}

func (n *notices) snapshot() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.entries))
	copy(out, n.entries)
	return out
}

// propertyNames builds an ID-to-name index for display resolution.
func propertyNames(properties []model.Property) map[string]string {
	names := make(map[string]string, len(properties))
	for _, p := range properties {
		names[p.ID] = p.Name
	}
	return names
}
