package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"truestate/internal/models"
	"truestate/internal/repositories"

	"github.com/go-co-op/gocron"
	"golang.org/x/sync/errgroup"
)

const (
	sourceCache = "cache"
	sourceStore = "store"
)

// FilterOptionsService enumerates filter values from the store and can hold a
// pre-aggregated view that a scheduler refreshes.
type FilterOptionsService struct {
	repo    repositories.TransactionRepositoryInterface
	metrics MetricsRecorderInterface
	logger  QueryLoggerInterface

	mu     sync.RWMutex
	cached *models.FilterOptions
}

// NewFilterOptionsService creates a new filter options service
func NewFilterOptionsService(
	repo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger QueryLoggerInterface,
) *FilterOptionsService {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = NewQueryLogger(slog.Default())
	}
	return &FilterOptionsService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

// GetFilterOptions serves the cached view when one exists, else reads the store
func (s *FilterOptionsService) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	start := time.Now()

	if cached := s.snapshot(); cached != nil {
		s.metrics.IncrementCounter(MetricFilterOptionsRequest, map[string]string{"source": sourceCache, "status": "success"})
		s.logger.LogFilterOptionsLoaded(ctx, sourceCache, time.Since(start))
		return cached, nil
	}

	options, err := s.load(ctx)
	if err != nil {
		s.metrics.IncrementCounter(MetricFilterOptionsRequest, map[string]string{"source": sourceStore, "status": "failed"})
		s.logger.LogFilterOptionsFailed(ctx, err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricFilterOptionsRequest, map[string]string{"source": sourceStore, "status": "success"})
	s.logger.LogFilterOptionsLoaded(ctx, sourceStore, time.Since(start))
	return options, nil
}

// DistinctValues returns the sorted, non-empty values of one filter field
func (s *FilterOptionsService) DistinctValues(ctx context.Context, field models.FilterField) ([]string, error) {
	values, err := s.repo.DistinctValues(ctx, field)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidQuery) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Refresh rebuilds the cached view; a failed refresh keeps the previous view
func (s *FilterOptionsService) Refresh(ctx context.Context) error {
	start := time.Now()

	options, err := s.load(ctx)
	if err != nil {
		s.logger.LogFilterOptionsFailed(ctx, err)
		return err
	}

	s.mu.Lock()
	s.cached = options
	s.mu.Unlock()

	s.metrics.RecordProcessingTime(MetricFilterOptionsRefresh, time.Since(start))
	return nil
}

// Invalidate drops the cached view so reads go to the store again
func (s *FilterOptionsService) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *FilterOptionsService) snapshot() *models.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cached == nil {
		return nil
	}
	return &models.FilterOptions{
		Regions:        slices.Clone(s.cached.Regions),
		Genders:        slices.Clone(s.cached.Genders),
		AgeRanges:      slices.Clone(s.cached.AgeRanges),
		Categories:     slices.Clone(s.cached.Categories),
		Tags:           slices.Clone(s.cached.Tags),
		PaymentMethods: slices.Clone(s.cached.PaymentMethods),
	}
}

// load runs the six distinct-value queries concurrently
func (s *FilterOptionsService) load(ctx context.Context) (*models.FilterOptions, error) {
	results := make([][]string, len(models.FilterFields))

	g, gctx := errgroup.WithContext(ctx)
	for i, field := range models.FilterFields {
		g.Go(func() error {
			values, err := s.DistinctValues(gctx, field)
			if err != nil {
				return err
			}
			results[i] = values
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	options := &models.FilterOptions{}
	for i, field := range models.FilterFields {
		options.Set(field, results[i])
	}
	return options, nil
}

// StartFilterOptionsRefresh schedules Refresh every interval, starting now.
// The returned scheduler must be stopped by the caller.
func StartFilterOptionsRefresh(svc FilterOptionsServiceInterface, interval, timeout time.Duration, logger *slog.Logger) (*gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", interval)
	}

	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	_, err := scheduler.Every(interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := svc.Refresh(ctx); err != nil {
			logger.Warn("filter options refresh failed", "error", err)
			return
		}
		logger.Debug("filter options refreshed")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule filter options refresh: %w", err)
	}

	scheduler.StartAsync()
	return scheduler, nil
}
