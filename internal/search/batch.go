package search

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BraidFI-AI/sanctions-engine/internal/trace"
	"github.com/BraidFI-AI/sanctions-engine/pkg/models"
)

// ErrBatchSizeOutOfRange is returned when the item count falls outside
// the configured [batch_min_items, batch_max_items] bounds.
type ErrBatchSizeOutOfRange struct {
	Count, Min, Max int
}

func (e ErrBatchSizeOutOfRange) Error() string {
	return fmt.Sprintf("batch size %d outside allowed range [%d, %d]", e.Count, e.Min, e.Max)
}

// SearchBatch fans the items out over a bounded worker pool (sized from
// search.max_workers), each item given its own per-item deadline
// (search.item_timeout_seconds). A single slow or failing item never
// blocks or fails the rest of the batch — its result is recorded as an
// isolated error — and results preserve input order regardless of
// completion order.
func (e *Engine) SearchBatch(ctx context.Context, items []models.SearchRequest) ([]models.BatchItemResult, error) {
	cfg := e.cfg.Current()
	if len(items) < cfg.Search.BatchMinItems || len(items) > cfg.Search.BatchMaxItems {
		return nil, ErrBatchSizeOutOfRange{Count: len(items), Min: cfg.Search.BatchMinItems, Max: cfg.Search.BatchMaxItems}
	}

	results := make([]models.BatchItemResult, len(items))
	itemTimeout := time.Duration(cfg.Search.ItemTimeoutSeconds) * time.Second

	workers := cfg.Search.MaxWorkers
	if workers > len(items) {
		workers = len(items)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = e.runBatchItem(ctx, idx, items[idx], itemTimeout)
			}
		}()
	}
	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func (e *Engine) runBatchItem(parent context.Context, idx int, item models.SearchRequest, timeout time.Duration) models.BatchItemResult {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	done := make(chan Result, 1)
	go func() {
		var tc trace.Context = trace.Disabled()
		if item.Trace {
			tc = trace.NewEnabled()
		}
		done <- e.Search(item.Query, item.Limit, item.MinScore, item.ConfigOverride, tc)
	}()

	select {
	case <-ctx.Done():
		return models.BatchItemResult{Index: idx, Error: fmt.Sprintf("timed out after %s", timeout)}
	case res := <-done:
		return models.BatchItemResult{
			Index: idx,
			Response: &models.SearchResponse{
				RequestID: item.RequestID,
				Hits:      res.Hits,
				Total:     len(res.Hits),
			},
		}
	}
}
