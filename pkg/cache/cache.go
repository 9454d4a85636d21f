// Package cache provides the per-session request cache for detail documents.
package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/pokedex/pkg/sources"
	"github.com/kerbaras/pokedex/pkg/utils"
	"golang.org/x/sync/singleflight"
)

// DocumentGetter fetches a raw detail document by handle.
type DocumentGetter interface {
	GetDocument(ctx context.Context, handle string) (*sources.Document, error)
}

// RecordCache maps handles to fetched documents. Entries are written once
// and never evicted; failures are not cached, so a later Get retries.
type RecordCache struct {
	getter DocumentGetter
	logger *log.Logger

	mu      sync.RWMutex
	entries map[string]*sources.Document
	group   singleflight.Group
}

func New(getter DocumentGetter, logger *log.Logger) *RecordCache {
	return &RecordCache{
		getter:  getter,
		logger:  logger,
		entries: make(map[string]*sources.Document),
	}
}

// Get returns the document behind handle, or nil if it could not be fetched.
// Concurrent calls for the same handle share one request.
func (c *RecordCache) Get(ctx context.Context, handle string) *sources.Document {
	if doc, ok := c.lookup(handle); ok {
		CacheHits.Inc()
		c.logger.Debug("cache hit", "handle", handle)
		return doc
	}

	v, _, _ := c.group.Do(handle, func() (any, error) {
		// another caller may have filled it while we waited
		if doc, ok := c.lookup(handle); ok {
			return doc, nil
		}
		CacheMisses.Inc()
		c.logger.Debug("cache miss", "handle", handle)

		doc, err := c.getter.GetDocument(ctx, handle)
		if err != nil {
			c.recordFailure(handle, err)
			return (*sources.Document)(nil), nil
		}

		c.mu.Lock()
		c.entries[handle] = doc
		size := len(c.entries)
		c.mu.Unlock()
		CacheEntries.Set(float64(size))
		return doc, nil
	})
	return v.(*sources.Document)
}

// Len returns the number of cached documents.
func (c *RecordCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *RecordCache) lookup(handle string) (*sources.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.entries[handle]
	return doc, ok
}

func (c *RecordCache) recordFailure(handle string, err error) {
	reason := "transport"
	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		reason = "status"
	}
	FetchFailures.WithLabelValues(reason).Inc()
	c.logger.Warn("fetch failed", "handle", handle, "reason", reason, "err", err)
}
