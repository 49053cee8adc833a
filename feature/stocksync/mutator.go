package stocksync

import (
	"context"
	"fmt"

	"stock-sync/core/catalog"

	"go.uber.org/zap"
)

// BatchError reports which batch of a sequential push failed. Batches
// before Index were already applied and are not rolled back.
type BatchError struct {
	Index int
	Total int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d of %d failed: %v", e.Index, e.Total, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// Mutator pushes quantity changes to the remote catalog in fixed-size
// sequential batches.
type Mutator struct {
	catalog Catalog
	limit   int
	logger  *zap.Logger
}

// NewMutator creates a mutator honoring the given per-call change limit.
func NewMutator(cat Catalog, limit int, logger *zap.Logger) *Mutator {
	if limit <= 0 {
		limit = 250
	}
	return &Mutator{catalog: cat, limit: limit, logger: logger}
}

// chunk splits the changes into slices of at most limit entries, keeping
// the original order.
func chunk(changes []catalog.Change, limit int) [][]catalog.Change {
	var chunks [][]catalog.Change
	for len(changes) > 0 {
		n := limit
		if len(changes) < n {
			n = len(changes)
		}
		chunks = append(chunks, changes[:n])
		changes = changes[n:]
	}
	return chunks
}

// Apply submits the changes batch by batch, stopping at the first failure.
// The returned group concatenates the applied changes of every successful
// batch, with the summary metadata of the last one. On failure the partial
// group covers the batches applied before the error.
func (m *Mutator) Apply(ctx context.Context, changes []catalog.Change) (*catalog.AdjustmentGroup, error) {
	if len(changes) == 0 {
		return &catalog.AdjustmentGroup{}, nil
	}

	chunks := chunk(changes, m.limit)
	merged := &catalog.AdjustmentGroup{}

	for i, batch := range chunks {
		group, err := m.catalog.AdjustQuantities(ctx, batch)
		if err != nil {
			m.logger.Error("Quantity batch failed",
				zap.Int("batch", i+1),
				zap.Int("total", len(chunks)),
				zap.Error(err))
			return merged, &BatchError{Index: i + 1, Total: len(chunks), Err: err}
		}

		merged.Changes = append(merged.Changes, group.Changes...)
		merged.CreatedAt = group.CreatedAt
		merged.Reason = group.Reason
		merged.ReferenceDocumentURI = group.ReferenceDocumentURI

		m.logger.Debug("Quantity batch applied",
			zap.Int("batch", i+1),
			zap.Int("total", len(chunks)),
			zap.Int("changes", len(batch)))
	}

	return merged, nil
}
