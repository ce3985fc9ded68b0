package query

import (
	"context"
	"sync"
	"time"

	"backoffice-service/internal/model"

	"go.uber.org/zap"
)

// FetchFunc loads one page of records for the given request descriptor.
type FetchFunc[T any] func(ctx context.Context, params model.ListParams) ([]T, model.PaginationInfo, error)

// Controller ties a State to a FetchFunc. Filter, search and sort changes
// are coalesced behind a quiet window before a fetch at page 1 is issued;
// page changes fetch immediately. Responses are applied last-request-wins by
// issuance order: every fetch gets a sequence number and a response is
// dropped when a newer request has been issued since.
//
// On a failed fetch the previously displayed records and pagination are left
// untouched.
type Controller[T any] struct {
	mu         sync.Mutex
	state      State
	fetch      FetchFunc[T]
	window     time.Duration
	timer      *time.Timer
	seq        uint64
	records    []T
	pagination model.PaginationInfo
	loaded     bool
	closed     bool
	logger     *zap.Logger

	// OnUpdate is called after a fetch result is applied. firstLoad is true
	// only for the first successful load of this view.
	OnUpdate func(records []T, pagination model.PaginationInfo, firstLoad bool)

	// OnError is called for every failed fetch with the underlying error.
	OnError func(err error)

	// OnStale is called when a superseded response is discarded.
	OnStale func()
}

// NewController creates a controller with the given quiet window. The window
// is injectable so tests can shrink it.
func NewController[T any](fetch FetchFunc[T], initial State, window time.Duration, logger *zap.Logger) *Controller[T] {
	return &Controller[T]{
		state:  initial,
		fetch:  fetch,
		window: window,
		logger: logger,
	}
}

// State returns a copy of the current query state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Records returns the last successfully fetched page and its pagination.
func (c *Controller[T]) Records() ([]T, model.PaginationInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.records, c.pagination
}

// SetSearch updates the search term and arms the debounce timer.
func (c *Controller[T]) SetSearch(value string) {
	c.mutate(func(s *State) { s.SetSearch(value) })
}

// SetStatus updates the status filter and arms the debounce timer.
func (c *Controller[T]) SetStatus(value string) {
	c.mutate(func(s *State) { s.SetStatus(value) })
}

// SetType updates the type filter and arms the debounce timer.
func (c *Controller[T]) SetType(value string) {
	c.mutate(func(s *State) { s.SetType(value) })
}

// SetPriority updates the priority filter and arms the debounce timer.
func (c *Controller[T]) SetPriority(value string) {
	c.mutate(func(s *State) { s.SetPriority(value) })
}

// SetPropertyID updates the property filter and arms the debounce timer.
func (c *Controller[T]) SetPropertyID(value string) {
	c.mutate(func(s *State) { s.SetPropertyID(value) })
}

// SetSort updates the sort tuple and arms the debounce timer.
func (c *Controller[T]) SetSort(sortBy, sortOrder string) {
	c.mutate(func(s *State) { s.SetSort(sortBy, sortOrder) })
}

// ClearFilters resets the view to its defaults and arms the debounce timer.
func (c *Controller[T]) ClearFilters() {
	c.mutate(func(s *State) { s.ClearFilters() })
}

// SetPage jumps to a page and fetches immediately, bypassing the debounce.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	c.state.SetPage(page)
	c.stopTimerLocked()
	seq, params := c.issueLocked()
	c.mu.Unlock()

	go c.run(context.Background(), seq, params)
}

// Load fetches the current state synchronously. It participates in the same
// sequence ordering as debounced fetches, so a concurrent newer request
// still wins.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.stopTimerLocked()
	seq, params := c.issueLocked()
	c.mu.Unlock()

	return c.run(ctx, seq, params)
}

// Close stops any pending debounce timer. Responses in flight are still
// discarded or applied per the sequence rule.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimerLocked()
}

// mutate applies a state transition and (re)arms the quiet-window timer,
// cancelling any timer already pending.
func (c *Controller[T]) mutate(apply func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	apply(&c.state)
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.window, c.fire)
}

func (c *Controller[T]) fire() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	seq, params := c.issueLocked()
	c.mu.Unlock()

	c.run(context.Background(), seq, params)
}

func (c *Controller[T]) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// issueLocked assigns the next sequence number to a fetch of the current
// state.
func (c *Controller[T]) issueLocked() (uint64, model.ListParams) {
	c.seq++
	return c.seq, c.state.Params()
}

func (c *Controller[T]) run(ctx context.Context, seq uint64, params model.ListParams) error {
	records, pagination, err := c.fetch(ctx, params)

	c.mu.Lock()
	if seq != c.seq {
		// A newer request was issued while this one was in flight.
		onStale := c.OnStale
		c.mu.Unlock()
		c.logger.Debug("Discarding superseded list response",
			zap.Uint64("seq", seq))
		if onStale != nil {
			onStale()
		}
		return nil
	}

	if err != nil {
		onError := c.OnError
		c.mu.Unlock()
		c.logger.Warn("List fetch failed, keeping previous records",
			zap.Int("page", params.Page),
			zap.Error(err))
		if onError != nil {
			onError(err)
		}
		return err
	}

	c.records = records
	c.pagination = pagination
	firstLoad := !c.loaded
	c.loaded = true
	onUpdate := c.OnUpdate
	c.mu.Unlock()

	if onUpdate != nil {
		onUpdate(records, pagination, firstLoad)
	}
	return nil
}
