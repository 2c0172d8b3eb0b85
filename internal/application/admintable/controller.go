package admintable

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/goroutine"
	"github.com/pawpath/pawpath/internal/shared/logger"
	"github.com/pawpath/pawpath/internal/shared/query"
)

const (
	FilterStatus        = "status"
	FilterPlan          = "plan"
	FilterBillingStatus = "billingStatus"
)

// Filters mirrors the table's filter inputs. An empty string means the
// filter is off.
type Filters struct {
	Status        string
	Plan          string
	BillingStatus string
	Search        string
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (f Filters) request(w query.Window) dto.ListBusinessesRequest {
	return dto.ListBusinessesRequest{
		Status:        optional(f.Status),
		Plan:          optional(f.Plan),
		BillingStatus: optional(f.BillingStatus),
		Search:        optional(f.Search),
		Limit:         w.Limit,
		Offset:        w.Offset,
	}
}

// State is a snapshot of what the table shows.
type State struct {
	Items     []*dto.BusinessSummary
	Total     int64
	Filters   Filters
	Window    query.Window
	LastError error
	Loading   bool
}

// Controller drives the admin businesses table: it owns the filter and
// paging state, issues list requests and applies optimistic status changes.
// Only the response to the most recent request is ever applied.
type Controller struct {
	mu        sync.Mutex
	state     State
	seq       uint64
	cancel    context.CancelFunc
	closed    bool
	fetcher   Fetcher
	mutator   StatusMutator
	debouncer *Debouncer
	group     *goroutine.Group
	logger    logger.Interface
}

type ControllerOption func(*Controller)

// WithDebouncer replaces the default 300ms search debouncer.
func WithDebouncer(d *Debouncer) ControllerOption {
	return func(c *Controller) { c.debouncer = d }
}

func NewController(fetcher Fetcher, mutator StatusMutator, logger logger.Interface, opts ...ControllerOption) *Controller {
	c := &Controller{
		state:   State{Window: query.DefaultWindow()},
		fetcher: fetcher,
		mutator: mutator,
		group:   goroutine.NewGroup(logger),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.debouncer == nil {
		c.debouncer = NewDebouncer(DefaultDebounceDelay, nil)
	}
	return c
}

// State returns a copy of the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Items = append([]*dto.BusinessSummary(nil), c.state.Items...)
	return s
}

// SetSearch records the search text and fetches once typing pauses.
func (c *Controller) SetSearch(text string) {
	c.debouncer.Trigger(func() {
		c.mu.Lock()
		c.state.Filters.Search = text
		c.state.Window.Offset = 0
		c.mu.Unlock()
		c.fetch()
	})
}

// SetFilter changes one filter and fetches the first page immediately.
func (c *Controller) SetFilter(name, value string) error {
	c.mu.Lock()
	switch name {
	case FilterStatus:
		c.state.Filters.Status = value
	case FilterPlan:
		c.state.Filters.Plan = value
	case FilterBillingStatus:
		c.state.Filters.BillingStatus = value
	default:
		c.mu.Unlock()
		return errors.NewValidationError(fmt.Sprintf("unknown filter %q", name))
	}
	c.state.Window.Offset = 0
	c.mu.Unlock()

	c.fetch()
	return nil
}

// SetPage moves to another window and fetches it immediately.
func (c *Controller) SetPage(limit, offset int) error {
	w, err := query.NewWindow(limit, offset)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Window = w
	c.mu.Unlock()

	c.fetch()
	return nil
}

func (c *Controller) Refresh() {
	c.fetch()
}

// Wait blocks until every fetch started so far has finished.
func (c *Controller) Wait() {
	c.group.Wait()
}

// Close cancels the in-flight fetch and any pending search.
func (c *Controller) Close() {
	c.debouncer.Stop()

	c.mu.Lock()
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.group.Wait()
}

// fetch starts a new list request and supersedes the previous one.
func (c *Controller) fetch() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.cancel != nil {
		c.cancel()
	}
	c.seq++
	seq := c.seq
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	req := c.state.Filters.request(c.state.Window)
	c.state.Loading = true
	c.mu.Unlock()

	c.group.Go("admintable.fetch", func() {
		defer cancel()
		resp, err := c.fetcher.ListBusinesses(ctx, req)
		c.apply(seq, resp, err)
	})
}

func (c *Controller) apply(seq uint64, resp *dto.ListBusinessesResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		return
	}
	c.state.Loading = false
	c.cancel = nil

	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			return
		}
		c.logger.Warnw("failed to fetch businesses", "seq", seq, "error", err)
		c.state.LastError = err
		return
	}

	c.state.Items = resp.Businesses
	c.state.Total = resp.Total
	c.state.LastError = nil
}

// ChangeStatus shows the new status at once, sends the change and rolls the
// row back if the request fails. On success the table is refetched.
func (c *Controller) ChangeStatus(ctx context.Context, id uint, status string) error {
	if _, err := vo.NewStatus(status); err != nil {
		return err
	}

	var pending *PendingMutation
	c.mu.Lock()
	if prior := findByID(c.state.Items, id); prior != nil {
		pending = newPendingMutation(prior, status)
		c.state.Items, _ = replace(c.state.Items, pending.Prior, pending.Applied)
	}
	c.mu.Unlock()

	updated, err := c.mutator.UpdateBusinessStatus(ctx, id, status)
	if err != nil {
		if pending != nil {
			c.mu.Lock()
			c.state.Items, _ = replace(c.state.Items, pending.Applied, pending.Prior)
			c.mu.Unlock()
		}
		c.logger.Warnw("status change failed, rolled back", "business_id", id, "status", status, "error", err)
		return err
	}

	if pending != nil && updated != nil {
		c.mu.Lock()
		c.state.Items, _ = replace(c.state.Items, pending.Applied, updated)
		c.mu.Unlock()
	}

	c.fetch()
	return nil
}
