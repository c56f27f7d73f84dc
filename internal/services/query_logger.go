package services

import (
	"context"
	"log/slog"
	"time"

	"truestate/internal/models"
	"truestate/internal/observability"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"
)

// QueryLogger provides structured logging for retrieval and loading operations
type QueryLogger struct {
	logger *slog.Logger
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(logger *slog.Logger) *QueryLogger {
	return &QueryLogger{
		logger: logger,
	}
}

// LogListingStarted logs the shape of a listing request; search text is masked
func (ql *QueryLogger) LogListingStarted(ctx context.Context, params models.ListParams) {
	search := ""
	if params.Filters.Search != "" {
		search = RedactedValue
	}

	selected := make(map[string]int)
	for _, field := range models.FilterFields {
		if n := len(params.Filters.Selected(field)); n > 0 {
			selected[string(field)] = n
		}
	}

	ql.logger.DebugContext(ctx, "transaction listing started",
		slog.String("event_type", "transaction_listing_started"),
		slog.String("search", search),
		slog.Any("filters", selected),
		slog.Bool("date_range", params.Filters.StartDate != nil || params.Filters.EndDate != nil),
		slog.String("sort_by", string(params.Sort.Field)),
		slog.String("sort_order", string(params.Sort.Order)),
		slog.Int("page", params.Page.Page),
		slog.Int("limit", params.Page.Limit),
		slog.String("request_id", observability.GetRequestID(ctx)),
	)
}

// LogListingCompleted logs a served page
func (ql *QueryLogger) LogListingCompleted(ctx context.Context, returned int, totalItems int64, duration time.Duration) {
	ql.logger.InfoContext(ctx, "transaction listing completed",
		slog.String("event_type", "transaction_listing_completed"),
		slog.Int("returned", returned),
		slog.Int64("total_items", totalItems),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", observability.GetRequestID(ctx)),
	)
}

// LogListingFailed logs a listing the store could not serve
func (ql *QueryLogger) LogListingFailed(ctx context.Context, err error, duration time.Duration) {
	ql.logger.WarnContext(ctx, "transaction listing failed",
		slog.String("event_type", "transaction_listing_failed"),
		slog.String("error", err.Error()),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", observability.GetRequestID(ctx)),
	)
}

// LogFilterOptionsLoaded logs an enumeration served from source ("cache" or "store")
func (ql *QueryLogger) LogFilterOptionsLoaded(ctx context.Context, source string, duration time.Duration) {
	ql.logger.DebugContext(ctx, "filter options loaded",
		slog.String("event_type", "filter_options_loaded"),
		slog.String("source", source),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", observability.GetRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogFilterOptionsFailed(ctx context.Context, err error) {
	ql.logger.WarnContext(ctx, "filter options failed",
		slog.String("event_type", "filter_options_failed"),
		slog.String("error", err.Error()),
		slog.String("request_id", observability.GetRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogImportBatch(ctx context.Context, batch int, inserted int64) {
	ql.logger.InfoContext(ctx, "import batch stored",
		slog.String("event_type", "import_batch_stored"),
		slog.Int("batch", batch),
		slog.Int64("inserted", inserted),
	)
}

func (ql *QueryLogger) LogImportCompleted(ctx context.Context, report *ImportReport) {
	ql.logger.InfoContext(ctx, "import completed",
		slog.String("event_type", "import_completed"),
		slog.Int("rows_read", report.RowsRead),
		slog.Int64("inserted", report.Inserted),
		slog.Int64("skipped", report.Skipped),
		slog.Int("rejected", report.Rejected),
		slog.Int("batches", report.Batches),
		slog.Int64("duration_ms", report.Duration.Milliseconds()),
	)
}

// LogRowRejected logs a CSV row that could not become a transaction
func (ql *QueryLogger) LogRowRejected(ctx context.Context, line int, reason string) {
	ql.logger.WarnContext(ctx, "import row rejected",
		slog.String("event_type", "import_row_rejected"),
		slog.Int("line", line),
		slog.String("reason", reason),
	)
}
