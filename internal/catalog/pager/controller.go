// Package pager implements the client-side pagination controller driving the
// catalog list: it owns the loaded items, the page cursor, the has-more flag,
// and the loading/error state, and simulates pagination locally by slicing
// the feed's full dataset.
package pager

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/storewalk/storewalk/internal/catalog"
)

// DefaultPageSize is the number of items appended per load step.
const DefaultPageSize = 10

// FetchFailedMessage is the single user-facing error message for any feed
// failure. The UI does not distinguish network, server, or decode errors.
const FetchFailedMessage = "Couldn't load products. Refresh to try again."

// Snapshot is a consistent copy of the controller state for renderers.
type Snapshot struct {
	// Items are the products loaded so far, in feed order.
	Items []catalog.Product

	// Cursor is the next page number (1-based).
	Cursor int

	// HasMore reports whether the feed may still have unloaded items.
	HasMore bool

	// Loading is true exactly while a fetch is outstanding.
	Loading bool

	// ErrMsg is the user-facing error from the last fetch attempt, empty
	// when the last attempt succeeded or none was made.
	ErrMsg string
}

// Controller paginates a product feed client-side.
//
// At most one fetch is logically in flight: LoadNext is a no-op while a load
// is outstanding or the feed is exhausted. Refresh supersedes any in-flight
// load by bumping a request generation; a completion carrying a stale
// generation is discarded instead of overwriting the freshly reset state.
//
// The zero value is not usable; construct with New. Safe for concurrent use —
// UI frameworks run fetches on background goroutines.
type Controller struct {
	feed     catalog.Feed
	pageSize int
	logger   zerolog.Logger

	mu         sync.Mutex
	items      []catalog.Product
	cursor     int
	hasMore    bool
	loading    bool
	errMsg     string
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize overrides DefaultPageSize. Values below 1 are ignored.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size >= 1 {
			c.pageSize = size
		}
	}
}

// WithLogger attaches a logger for load diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New creates a controller over the given feed in the initial state:
// no items, cursor 1, has-more true.
func New(feed catalog.Feed, opts ...Option) *Controller {
	c := &Controller{
		feed:     feed,
		pageSize: DefaultPageSize,
		logger:   zerolog.Nop(),
		cursor:   1,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PageSize returns the configured page size.
func (c *Controller) PageSize() int {
	return c.pageSize
}

// Snapshot returns a consistent copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// LoadNext fetches and appends the next page.
//
// It is a no-op while a load is outstanding or after the feed is exhausted,
// so rapid scroll-triggered calls never duplicate items. On failure the item
// list and cursor are left untouched and ErrMsg carries the user-facing
// message. Loading resets on every exit path.
func (c *Controller) LoadNext(ctx context.Context) Snapshot {
	c.mu.Lock()
	if c.loading || !c.hasMore {
		defer c.mu.Unlock()
		return c.snapshotLocked()
	}
	c.loading = true
	c.errMsg = ""
	gen := c.generation
	page := c.cursor
	c.mu.Unlock()

	products, err := c.feed.Products(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A refresh superseded this fetch; drop the stale result. The
		// refresh already reset the loading flag for this generation.
		c.logger.Debug().Uint64("generation", gen).Msg("discarding stale page load")
		return c.snapshotLocked()
	}

	c.loading = false
	if err != nil {
		c.errMsg = FetchFailedMessage
		c.logger.Warn().Err(err).Int("page", page).Msg("page load failed")
		return c.snapshotLocked()
	}

	slice := pageSlice(products, page, c.pageSize)
	c.items = append(c.items, slice...)
	c.cursor = page + 1
	if len(slice) < c.pageSize {
		c.hasMore = false
	}

	c.logger.Debug().
		Int("page", page).
		Int("appended", len(slice)).
		Int("total", len(c.items)).
		Bool("has_more", c.hasMore).
		Msg("page loaded")

	return c.snapshotLocked()
}

// Refresh resets the list to its initial state and loads the first page,
// replacing rather than appending.
//
// Unlike LoadNext it is not suppressed by an outstanding load: it bumps the
// request generation so the in-flight completion is discarded, drops any
// memoized feed snapshot, and fetches fresh data. A failed refresh leaves the
// list empty (the reset happens before the fetch begins) with ErrMsg set.
func (c *Controller) Refresh(ctx context.Context) Snapshot {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.items = nil
	c.cursor = 1
	c.hasMore = true
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	if inv, ok := c.feed.(catalog.Invalidator); ok {
		inv.Invalidate()
	}

	products, err := c.feed.Products(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return c.snapshotLocked()
	}

	c.loading = false
	if err != nil {
		c.errMsg = FetchFailedMessage
		c.logger.Warn().Err(err).Msg("refresh failed")
		return c.snapshotLocked()
	}

	slice := pageSlice(products, 1, c.pageSize)
	c.items = make([]catalog.Product, len(slice))
	copy(c.items, slice)
	c.cursor = 2
	c.hasMore = len(slice) >= c.pageSize

	c.logger.Debug().Int("loaded", len(slice)).Bool("has_more", c.hasMore).Msg("refreshed")

	return c.snapshotLocked()
}

// snapshotLocked copies the state. Callers must hold mu.
func (c *Controller) snapshotLocked() Snapshot {
	items := make([]catalog.Product, len(c.items))
	copy(items, c.items)
	return Snapshot{
		Items:   items,
		Cursor:  c.cursor,
		HasMore: c.hasMore,
		Loading: c.loading,
		ErrMsg:  c.errMsg,
	}
}

// pageSlice returns the half-open window [(page-1)*size, page*size) of all,
// clamped to the dataset bounds.
func pageSlice(all []catalog.Product, page, size int) []catalog.Product {
	start := (page - 1) * size
	if start >= len(all) {
		return nil
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
