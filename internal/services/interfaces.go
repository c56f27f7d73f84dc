package services

import (
	"context"
	"errors"
	"io"
	"time"

	"truestate/internal/models"
)

var (
	// ErrStoreUnavailable is returned when the store could not serve a read.
	ErrStoreUnavailable = errors.New("transaction store unavailable")
	// ErrInvalidQuery is returned when the store rejected the request shape.
	ErrInvalidQuery = errors.New("invalid transaction query")
)

// TransactionServiceInterface retrieves filtered, ordered pages of transactions
type TransactionServiceInterface interface {
	// ListTransactions returns one page and its pagination metadata.
	ListTransactions(ctx context.Context, params models.ListParams) (*models.TransactionPage, error)
	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

// FilterOptionsServiceInterface enumerates the selectable values of every filter field
type FilterOptionsServiceInterface interface {
	GetFilterOptions(ctx context.Context) (*models.FilterOptions, error)
	DistinctValues(ctx context.Context, field models.FilterField) ([]string, error)
	// Refresh rebuilds the cached view from the store.
	Refresh(ctx context.Context) error
}

// TransactionImporterInterface loads a CSV dataset into the store
type TransactionImporterInterface interface {
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}

// TransactionGeneratorInterface produces synthetic sales transactions
type TransactionGeneratorInterface interface {
	Generate(count int) []models.Transaction
}

// CircuitBreakerInterface guards store calls against a failing backend
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
}

// MetricsRecorderInterface records service metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// QueryLoggerInterface writes structured events for retrieval and loading
type QueryLoggerInterface interface {
	LogListingStarted(ctx context.Context, params models.ListParams)
	LogListingCompleted(ctx context.Context, returned int, totalItems int64, duration time.Duration)
	LogListingFailed(ctx context.Context, err error, duration time.Duration)
	LogFilterOptionsLoaded(ctx context.Context, source string, duration time.Duration)
	LogFilterOptionsFailed(ctx context.Context, err error)
	LogImportBatch(ctx context.Context, batch int, inserted int64)
	LogImportCompleted(ctx context.Context, report *ImportReport)
	LogRowRejected(ctx context.Context, line int, reason string)
}
