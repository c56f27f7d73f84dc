package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"truestate/internal/models"
	"truestate/internal/query"
	"truestate/internal/repositories"
)

const storeServiceName = "transaction_store"

type transactionService struct {
	repo    repositories.TransactionRepositoryInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface
}

// NewTransactionService creates the retrieval service over repo
func NewTransactionService(
	repo repositories.TransactionRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) TransactionServiceInterface {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewQueryLogger(slog.Default())
	}
	return &transactionService{
		repo:    repo,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// ListTransactions builds the predicate and ordering for params and reads one
// page together with the total matching count. Store failures are not retried.
func (s *transactionService) ListTransactions(ctx context.Context, params models.ListParams) (*models.TransactionPage, error) {
	start := time.Now()
	s.logger.LogListingStarted(ctx, params)

	if s.breaker != nil && s.breaker.IsOpen() {
		err := fmt.Errorf("%w: %w", ErrStoreUnavailable, ErrCircuitBreakerOpen)
		s.recordOutcome(ctx, "short_circuit", err, start)
		return nil, err
	}

	predicate := query.Build(params.Filters)
	ordering := query.ResolveOrdering(params.Sort)

	records, total, err := s.repo.List(ctx, predicate, ordering, params.Page)
	if err != nil {
		return nil, s.classify(ctx, err, start)
	}

	if s.breaker != nil {
		s.breaker.RecordSuccess()
		s.publishBreakerState()
	}

	if records == nil {
		records = []models.Transaction{}
	}
	window := query.ResolveWindow(params.Page, total)

	s.recordOutcome(ctx, "success", nil, start)
	s.logger.LogListingCompleted(ctx, len(records), total, time.Since(start))

	return &models.TransactionPage{
		Transactions: records,
		Pagination:   window.Pagination(),
	}, nil
}

// classify maps a repository error onto the service error taxonomy
func (s *transactionService) classify(ctx context.Context, err error, start time.Time) error {
	switch {
	case errors.Is(err, repositories.ErrInvalidQuery):
		wrapped := fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		s.recordOutcome(ctx, "rejected", wrapped, start)
		return wrapped

	case errors.Is(err, context.Canceled):
		s.recordOutcome(ctx, "cancelled", err, start)
		return err

	case errors.Is(err, context.DeadlineExceeded):
		s.recordOutcome(ctx, "timeout", err, start)
		return err

	default:
		if s.breaker != nil {
			s.breaker.RecordFailure()
			s.publishBreakerState()
		}
		wrapped := fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		s.recordOutcome(ctx, "failed", wrapped, start)
		return wrapped
	}
}

func (s *transactionService) recordOutcome(ctx context.Context, status string, err error, start time.Time) {
	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricListRequest, map[string]string{"status": status})
	s.metrics.RecordProcessingTime(MetricListDuration, duration)
	if err != nil {
		s.logger.LogListingFailed(ctx, err, duration)
	}
}

func (s *transactionService) publishBreakerState() {
	s.metrics.RecordGauge(MetricCircuitBreakerState, float64(s.breaker.GetState()), map[string]string{
		"service": storeServiceName,
	})
}

// Ping checks the store; it bypasses the circuit breaker
func (s *transactionService) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
