package admintable

import (
	"context"
	"sync"
	"time"

	"github.com/pawpath/pawpath/internal/application/business/dto"
)

// virtualClock schedules AfterFunc callbacks on a manually advanced clock.
type virtualClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*virtualTimer
}

type virtualTimer struct {
	clock   *virtualClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *virtualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (c *virtualClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &virtualTimer{clock: c, at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and runs due callbacks in order.
func (c *virtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*virtualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.fn()
	}
}

type listCall struct {
	req dto.ListBusinessesRequest
}

// fakeBackend implements Fetcher and StatusMutator. listFunc and updateFunc
// override the defaults when set.
type fakeBackend struct {
	mu         sync.Mutex
	calls      []listCall
	listFunc   func(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error)
	updateFunc func(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error)
}

func (f *fakeBackend) ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, listCall{req: req})
	fn := f.listFunc
	f.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	return &dto.ListBusinessesResponse{Businesses: []*dto.BusinessSummary{}, Total: 0}, nil
}

func (f *fakeBackend) UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error) {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, id, status)
	}
	return &dto.BusinessSummary{ID: id, Status: status}, nil
}

func (f *fakeBackend) listCalls() []listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]listCall(nil), f.calls...)
}

func rows(ids ...uint) []*dto.BusinessSummary {
	out := make([]*dto.BusinessSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, &dto.BusinessSummary{ID: id, Name: "biz", Status: "active"})
	}
	return out
}
