package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"truestate/internal/dto"
	"truestate/internal/models"
)

// DefaultSearchDebounce is the quiet period before typed search text is committed
const DefaultSearchDebounce = 300 * time.Millisecond

// Status is the retrieval state of the controller
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Fetcher retrieves one page; *Client satisfies it
type Fetcher interface {
	ListTransactions(ctx context.Context, params models.ListParams) (*dto.ListTransactionsResponse, error)
}

// State is a snapshot of the dashboard view state
type State struct {
	Search  string
	Filters models.FilterSelection
	Sort    models.SortSpec
	Page    int
	Limit   int
	Result  *dto.ListTransactionsResponse
	Status  Status
	Err     error
	// Sequence is the number of the latest issued request
	Sequence uint64
}

// ControllerOptions tunes a Controller
type ControllerOptions struct {
	Debounce time.Duration
	Limit    int
	Logger   *slog.Logger
}

// Controller drives search, filter, sort and paging state against a Fetcher.
// Only the response of the most recently issued request is applied.
type Controller struct {
	fetcher  Fetcher
	debounce time.Duration
	logger   *slog.Logger

	mu          sync.Mutex
	state       State
	searchTimer *time.Timer
	searchGen   uint64
	subscribers []chan State
	closed      bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates an idle controller; call Load for the first page
func NewController(fetcher Fetcher, opts ControllerOptions) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultSearchDebounce
	}
	if opts.Limit < 1 || opts.Limit > models.MaxPageLimit {
		opts.Limit = models.DefaultPageLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		fetcher:  fetcher,
		debounce: opts.Debounce,
		logger:   opts.Logger,
		state: State{
			Sort:   models.DefaultSortSpec,
			Page:   1,
			Limit:  opts.Limit,
			Status: StatusIdle,
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// State returns the current snapshot
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe returns a channel receiving the latest snapshot after every
// change. Slow readers only see the newest state. The channel closes on Close.
func (c *Controller) Subscribe() <-chan State {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan State, 1)
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Load requests the current page without changing any state
func (c *Controller) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issueLocked()
}

// SetSearch schedules text to be committed after the debounce window.
// A newer call within the window replaces the pending one; requests
// already in flight are left alone.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if c.searchTimer != nil {
		c.searchTimer.Stop()
	}
	c.searchGen++
	gen := c.searchGen
	c.searchTimer = time.AfterFunc(c.debounce, func() {
		c.commitSearch(gen, text)
	})
}

func (c *Controller) commitSearch(gen uint64, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// a Stop that lost the race with the timer firing
	if c.closed || gen != c.searchGen {
		return
	}
	c.searchTimer = nil
	if text == c.state.Search {
		return
	}
	c.state.Search = text
	c.resetLocked()
}

// SetFilter replaces the selected values of one multi-select filter
func (c *Controller) SetFilter(field models.FilterField, values ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Filters = c.state.Filters.With(field, append([]string(nil), values...)...)
	c.resetLocked()
}

// SetDateRange replaces both date bounds; nil clears a bound
func (c *Controller) SetDateRange(start, end *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Filters.StartDate = start
	c.state.Filters.EndDate = end
	c.resetLocked()
}

// ClearFilters drops every filter and date bound. Search text is kept.
func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Filters = models.FilterSelection{}
	c.resetLocked()
}

// SetSort changes the ordering
func (c *Controller) SetSort(spec models.SortSpec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Sort = spec
	c.resetLocked()
}

// SetPage requests another page of the same result set
func (c *Controller) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.state.Page = page
	c.issueLocked()
}

// Close stops the pending search timer, waits for in-flight requests and
// closes subscriber channels.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.searchTimer != nil {
		c.searchTimer.Stop()
		c.searchTimer = nil
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()

	c.mu.Lock()
	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
	c.mu.Unlock()
}

func (c *Controller) resetLocked() {
	c.state.Page = 1
	c.issueLocked()
}

func (c *Controller) issueLocked() {
	if c.closed {
		return
	}

	c.state.Sequence++
	seq := c.state.Sequence
	c.state.Status = StatusLoading
	c.state.Err = nil
	params := c.paramsLocked()
	c.publishLocked()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		result, err := c.fetcher.ListTransactions(c.ctx, params)
		c.complete(seq, result, err)
	}()
}

func (c *Controller) paramsLocked() models.ListParams {
	filters := c.state.Filters
	filters.Search = c.state.Search
	return models.ListParams{
		Filters: filters,
		Sort:    c.state.Sort,
		Page:    models.PageWindow{Page: c.state.Page, Limit: c.state.Limit},
	}
}

func (c *Controller) complete(seq uint64, result *dto.ListTransactionsResponse, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if seq != c.state.Sequence {
		c.logger.Debug("discarding stale response", "sequence", seq, "latest", c.state.Sequence)
		return
	}

	if err != nil {
		c.logger.Warn("transactions request failed", "sequence", seq, "error", err)
		c.state.Status = StatusError
		c.state.Err = err
	} else {
		c.state.Status = StatusIdle
		c.state.Result = result
	}
	c.publishLocked()
}

func (c *Controller) publishLocked() {
	snapshot := c.state
	for _, ch := range c.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
