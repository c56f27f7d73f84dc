package repositories

import (
	"context"
	"errors"
	"fmt"

	"truestate/internal/models"
	"truestate/internal/query"
)

var (
	// ErrInvalidQuery is returned when a request exceeds what the store accepts.
	ErrInvalidQuery = errors.New("invalid query")
)

// TransactionRepositoryInterface defines the contract every transaction store implements
type TransactionRepositoryInterface interface {
	// List returns one ordered window of the records matching predicate and
	// the total number of matching records, read together.
	List(ctx context.Context, predicate query.Predicate, ordering query.Ordering, window models.PageWindow) ([]models.Transaction, int64, error)
	// DistinctValues returns the non-empty distinct values of a filter field.
	DistinctValues(ctx context.Context, field models.FilterField) ([]string, error)
	CreateBatch(ctx context.Context, transactions []models.Transaction) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

func checkWindow(window models.PageWindow) error {
	if window.Page < 1 {
		return fmt.Errorf("%w: page %d", ErrInvalidQuery, window.Page)
	}
	if window.Limit < 1 || window.Limit > models.MaxPageLimit {
		return fmt.Errorf("%w: limit %d", ErrInvalidQuery, window.Limit)
	}
	return nil
}

func checkField(field models.FilterField) error {
	if !field.IsValid() {
		return fmt.Errorf("%w: unknown filter field %q", ErrInvalidQuery, field)
	}
	return nil
}
