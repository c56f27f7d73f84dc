package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"truestate/internal/models"
	"truestate/internal/query"
)

var ErrStoreClosed = errors.New("transaction store is closed")

// MemoryTransactionRepository keeps the dataset in process behind a lock.
// It is the only owner of the records; callers get copies.
type MemoryTransactionRepository struct {
	mu      sync.RWMutex
	records []models.Transaction
	ids     map[string]struct{}
	closed  bool
}

// NewMemoryTransactionRepository creates an in-memory store seeded with records
func NewMemoryTransactionRepository(records ...models.Transaction) *MemoryTransactionRepository {
	r := &MemoryTransactionRepository{
		ids: make(map[string]struct{}, len(records)),
	}
	r.insert(records)
	return r
}

func (r *MemoryTransactionRepository) insert(records []models.Transaction) int64 {
	var inserted int64
	for _, t := range records {
		if _, exists := r.ids[t.TransactionID]; exists {
			continue
		}
		r.ids[t.TransactionID] = struct{}{}
		r.records = append(r.records, t)
		inserted++
	}
	return inserted
}

// List filters, sorts and slices under one read lock
func (r *MemoryTransactionRepository) List(ctx context.Context, predicate query.Predicate, ordering query.Ordering, window models.PageWindow) ([]models.Transaction, int64, error) {
	if err := checkWindow(window); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, 0, ErrStoreClosed
	}

	matching := predicate.Filter(r.records)
	ordering.Sort(matching)

	return query.SliceWindow(matching, window.Offset(), window.Limit), int64(len(matching)), nil
}

// DistinctValues returns the sorted, non-empty distinct values of a filter field
func (r *MemoryTransactionRepository) DistinctValues(ctx context.Context, field models.FilterField) ([]string, error) {
	if err := checkField(field); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, ErrStoreClosed
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for i := range r.records {
		v := field.ValueOf(&r.records[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// CreateBatch appends records whose transaction id is not yet stored
func (r *MemoryTransactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrStoreClosed
	}
	return r.insert(transactions), nil
}

// DeleteAll drops every record
func (r *MemoryTransactionRepository) DeleteAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrStoreClosed
	}
	n := int64(len(r.records))
	r.records = nil
	r.ids = make(map[string]struct{})
	return n, nil
}

// Count returns the number of stored records
func (r *MemoryTransactionRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return 0, ErrStoreClosed
	}
	return int64(len(r.records)), nil
}

// Ping fails once the store has been closed
func (r *MemoryTransactionRepository) Ping(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrStoreClosed
	}
	return nil
}

// Close releases the dataset; every later call fails with ErrStoreClosed
func (r *MemoryTransactionRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.records = nil
	r.ids = nil
	return nil
}
