package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/kerbaras/pokedex/pkg/cache"
	"github.com/kerbaras/pokedex/pkg/data"
	"github.com/kerbaras/pokedex/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// ErrIndexFetch is returned when the index listing cannot be fetched. It is
// the only failure that aborts a load.
var ErrIndexFetch = errors.New("failed to fetch index")

// LoadProgress is reported once per completed batch.
type LoadProgress struct {
	Batch   int // 1-based number of the completed batch
	Batches int
	Loaded  int // records normalized so far
	Total   int // handles listed by the index
	Records []*data.Record
}

// Done reports whether every batch has settled.
func (p LoadProgress) Done() bool {
	return p.Batches > 0 && p.Batch == p.Batches
}

// Percent returns the fraction of handles processed, in [0, 1].
func (p LoadProgress) Percent() float64 {
	if p.Batches == 0 {
		return 0
	}
	return float64(p.Batch) / float64(p.Batches)
}

// BatchLoader fetches records in sequential batches. All fetches of a batch
// run concurrently and the batch settles before the next one starts, so at
// most batchSize requests are ever in flight.
type BatchLoader struct {
	source    sources.Source
	cache     *cache.RecordCache
	batchSize int
	logger    *log.Logger
}

func NewBatchLoader(source sources.Source, c *cache.RecordCache, batchSize int, logger *log.Logger) *BatchLoader {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &BatchLoader{source: source, cache: c, batchSize: batchSize, logger: logger}
}

// LoadAll lists up to limit handles and loads them batch by batch, calling
// progress after each batch. Failed fetches are dropped; the result keeps
// the index order of the records that loaded.
func (l *BatchLoader) LoadAll(ctx context.Context, limit int, progress func(LoadProgress)) ([]*data.Record, error) {
	handles, err := l.source.ListHandles(ctx, limit)
	if err != nil {
		l.logger.Error("index fetch failed", "err", err)
		return nil, fmt.Errorf("%w: %w", ErrIndexFetch, err)
	}

	batches := (len(handles) + l.batchSize - 1) / l.batchSize
	l.logger.Info("loading records", "handles", len(handles), "batches", batches, "batch_size", l.batchSize)

	records := make([]*data.Record, 0, len(handles))
	batch := 0
	for chunk := range slices.Chunk(handles, l.batchSize) {
		batch++
		loaded, err := l.loadBatch(ctx, chunk)
		if err != nil {
			return records, err
		}
		records = append(records, loaded...)

		l.logger.Info("batch loaded", "batch", batch, "of", batches, "records", len(loaded), "total", len(records))
		if progress != nil {
			progress(LoadProgress{
				Batch:   batch,
				Batches: batches,
				Loaded:  len(records),
				Total:   len(handles),
				Records: loaded,
			})
		}
	}

	l.logger.Info("load finished", "records", len(records), "dropped", len(handles)-len(records))
	return records, nil
}

// loadBatch fetches every handle of batch concurrently and waits for all of
// them. The returned records keep batch order with failures removed.
func (l *BatchLoader) loadBatch(ctx context.Context, batch []sources.Handle) ([]*data.Record, error) {
	start := time.Now()
	docs := make([]*sources.Document, len(batch))

	var g errgroup.Group
	for i, h := range batch {
		g.Go(func() error {
			docs[i] = l.cache.Get(ctx, h.URL)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	LoadBatches.Inc()
	BatchDuration.Observe(time.Since(start).Seconds())

	records := make([]*data.Record, 0, len(docs))
	for i, doc := range docs {
		if doc == nil {
			DroppedRecords.Inc()
			l.logger.Debug("dropping record", "handle", batch[i].URL)
			continue
		}
		records = append(records, doc.ToRecord())
	}
	return records, nil
}
