package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/pokedex/pkg/cache"
	"github.com/kerbaras/pokedex/pkg/catalog"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/sources"
)

type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Status is a snapshot of the load lifecycle.
type Status struct {
	State    LoadState
	Progress LoadProgress
	Err      error
}

// FavoriteStore is the persisted favorites set.
type FavoriteStore interface {
	catalog.Favorites
	IDs() []int
}

// ControllerConfig holds the sizes the controller works with.
type ControllerConfig struct {
	Max       int
	PerPage   int
	BatchSize int
	Debounce  time.Duration
}

// CatalogController owns the browsing session. Every user event goes
// through Dispatch; renderers only read view-models.
type CatalogController struct {
	source sources.Source
	cache  *cache.RecordCache
	loader *BatchLoader
	favs   FavoriteStore
	max    int
	logger *log.Logger

	mu     sync.RWMutex
	state  *catalog.State
	status Status

	search       *catalog.Debouncer
	progressChan chan LoadProgress
}

func NewCatalogController(cfg ControllerConfig, source sources.Source, favs FavoriteStore, logger *log.Logger) *CatalogController {
	c := cache.New(source, logger)
	return &CatalogController{
		source:       source,
		cache:        c,
		loader:       NewBatchLoader(source, c, cfg.BatchSize, logger),
		favs:         favs,
		max:          cfg.Max,
		logger:       logger,
		state:        catalog.NewState(cfg.PerPage),
		search:       catalog.NewDebouncer(cfg.Debounce),
		progressChan: make(chan LoadProgress, 100),
	}
}

// GetProgressChannel returns the channel receiving per-batch load progress.
func (c *CatalogController) GetProgressChannel() <-chan LoadProgress {
	return c.progressChan
}

// Load runs the initial load. Records become visible batch by batch. On an
// index failure the controller enters Failed and Load may be called again;
// documents fetched by an earlier attempt are served from the cache.
func (c *CatalogController) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.status.State == Loading {
		c.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	c.status = Status{State: Loading}
	c.mu.Unlock()

	_, err := c.loader.LoadAll(ctx, c.max, func(p LoadProgress) {
		c.mu.Lock()
		c.state.Records.Add(p.Records...)
		catalog.Recompute(c.state, c.favs)
		c.status.Progress = p
		RecordsLoaded.Set(float64(c.state.Records.Len()))
		c.mu.Unlock()
		c.sendProgress(p)
	})

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status.State = Failed
		c.status.Err = err
		return err
	}
	c.status.State = Ready
	return nil
}

// Status returns the current load status.
func (c *CatalogController) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Dispatch applies one user action to the session.
func (c *CatalogController) Dispatch(a catalog.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := catalog.Reduce(c.state, a, c.favs); err != nil {
		c.logger.Warn("action failed", "action", a.Kind, "err", err)
		return err
	}
	c.logger.Debug("action applied", "action", a.Kind, "shown", len(c.state.Shown), "page", c.state.Pager.Page())
	return nil
}

// Search schedules a name filter change after the quiet period. Each call
// replaces the pending one; done is called with the outcome once it runs.
func (c *CatalogController) Search(query string, done func(error)) {
	c.search.Trigger(func() {
		err := c.Dispatch(catalog.Action{Kind: catalog.SetName, Text: query})
		if done != nil {
			done(err)
		}
	})
}

// CancelSearch drops a pending Search.
func (c *CatalogController) CancelSearch() {
	c.search.Cancel()
}

// View returns the view-model of the current page.
func (c *CatalogController) View() catalog.PageView {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return catalog.View(c.state, c.favs)
}

// Shown returns a copy of the whole shown view across pages.
func (c *CatalogController) Shown() []*data.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.state.Shown)
}

// Detail returns the detail view of a loaded record.
func (c *CatalogController) Detail(id int) (catalog.DetailView, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return catalog.Detail(c.state, id, c.favs)
}

// Lookup returns the detail view of id, fetching it through the request
// cache when it is not part of the loaded set.
func (c *CatalogController) Lookup(ctx context.Context, id int) (catalog.DetailView, error) {
	if d, err := c.Detail(id); err == nil {
		return d, nil
	}
	doc := c.cache.Get(ctx, c.source.HandleFor(id))
	if doc == nil {
		return catalog.DetailView{}, fmt.Errorf("%w: %d", catalog.ErrUnknownRecord, id)
	}
	return catalog.DetailOf(doc.ToRecord(), c.favs), nil
}

// Favorites returns the favorite identifiers in ascending order.
func (c *CatalogController) Favorites() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.favs.IDs()
}

// Image downloads the image behind a record's ImageURL.
func (c *CatalogController) Image(ctx context.Context, rawURL string) ([]byte, string, error) {
	if rawURL == "" {
		return nil, "", fmt.Errorf("record has no image")
	}
	return c.source.FetchImage(ctx, rawURL)
}

// sendProgress sends a progress update (non-blocking)
func (c *CatalogController) sendProgress(p LoadProgress) {
	select {
	case c.progressChan <- p:
	default:
		// Channel full, skip this update
	}
}

// Close cancels any pending search.
func (c *CatalogController) Close() {
	c.search.Cancel()
}
