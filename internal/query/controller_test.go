package query

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"backoffice-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingFetch records every request descriptor it receives.
type countingFetch struct {
	mu     sync.Mutex
	params []model.ListParams
	err    error
}

func (f *countingFetch) fetch(ctx context.Context, params model.ListParams) ([]string, model.PaginationInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, model.PaginationInfo{}, f.err
	}
	f.params = append(f.params, params)
	return []string{"record-" + params.Search}, model.FallbackPagination(params.Page, params.Limit, 1), nil
}

func (f *countingFetch) calls() []model.ListParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ListParams(nil), f.params...)
}

func TestDebounceCoalescesRapidChanges(t *testing.T) {
	fetch := &countingFetch{}
	c := NewController(fetch.fetch, NewState(10), 30*time.Millisecond, zap.NewNop())
	defer c.Close()

	c.SetSearch("a")
	c.SetSearch("al")
	c.SetSearch("ali")

	assert.Eventually(t, func() bool {
		return len(fetch.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	// No further fetches after the window has passed again.
	time.Sleep(60 * time.Millisecond)
	calls := fetch.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ali", calls[0].Search)
	assert.Equal(t, 1, calls[0].Page)
}

func TestPageChangeBypassesDebounce(t *testing.T) {
	fetch := &countingFetch{}
	// A window long enough that a debounced fetch could not fire in time.
	c := NewController(fetch.fetch, NewState(10), time.Hour, zap.NewNop())
	defer c.Close()

	c.SetPage(2)

	assert.Eventually(t, func() bool {
		calls := fetch.calls()
		return len(calls) == 1 && calls[0].Page == 2
	}, time.Second, 5*time.Millisecond)
}

func TestLastRequestWinsByIssuanceOrder(t *testing.T) {
	type call struct {
		params  model.ListParams
		release chan struct{}
	}
	calls := make(chan *call, 4)

	fetch := func(ctx context.Context, params model.ListParams) ([]string, model.PaginationInfo, error) {
		cl := &call{params: params, release: make(chan struct{})}
		calls <- cl
		<-cl.release
		return []string{fmt.Sprintf("page-%d", params.Page)}, model.PaginationInfo{Page: params.Page}, nil
	}

	c := NewController(fetch, NewState(10), time.Hour, zap.NewNop())
	defer c.Close()

	stale := make(chan struct{}, 1)
	c.OnStale = func() { stale <- struct{}{} }

	c.SetPage(2)
	first := <-calls
	c.SetPage(3)
	second := <-calls

	// The later-issued request resolves first and wins.
	close(second.release)
	assert.Eventually(t, func() bool {
		records, _ := c.Records()
		return len(records) == 1 && records[0] == "page-3"
	}, time.Second, 5*time.Millisecond)

	// The earlier request resolves afterwards and must be discarded.
	close(first.release)
	select {
	case <-stale:
	case <-time.After(time.Second):
		t.Fatal("superseded response was not discarded")
	}

	records, pagination := c.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "page-3", records[0])
	assert.Equal(t, 3, pagination.Page)
}

func TestFailedFetchKeepsPreviousRecords(t *testing.T) {
	fetch := &countingFetch{}
	c := NewController(fetch.fetch, NewState(10), 10*time.Millisecond, zap.NewNop())
	defer c.Close()

	var errSeen error
	c.OnError = func(err error) { errSeen = err }

	require.NoError(t, c.Load(context.Background()))
	records, _ := c.Records()
	require.Len(t, records, 1)

	fetch.mu.Lock()
	fetch.err = errors.New("upstream down")
	fetch.mu.Unlock()

	err := c.Load(context.Background())
	require.Error(t, err)
	assert.EqualError(t, errSeen, "upstream down")

	// Last-good data is still displayed.
	records, _ = c.Records()
	assert.Len(t, records, 1)
}

func TestFirstLoadFlag(t *testing.T) {
	fetch := &countingFetch{}
	c := NewController(fetch.fetch, NewState(10), 10*time.Millisecond, zap.NewNop())
	defer c.Close()

	var flags []bool
	c.OnUpdate = func(_ []string, _ model.PaginationInfo, firstLoad bool) {
		flags = append(flags, firstLoad)
	}

	require.NoError(t, c.Load(context.Background()))
	require.NoError(t, c.Load(context.Background()))

	assert.Equal(t, []bool{true, false}, flags)
}
