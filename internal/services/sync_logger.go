package services

import (
	"context"
	"log/slog"
	"time"

	"budget-coach/internal/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SyncLogger struct {
	logger *slog.Logger
}

func NewSyncLogger(logger *slog.Logger) SyncLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncLogger{
		logger: logger,
	}
}

func (sl *SyncLogger) LogSyncStarted(ctx context.Context, linkCount int) {
	sl.logger.InfoContext(ctx, "bank sync started",
		slog.String("event_type", "bank_sync_started"),
		slog.Int("link_count", linkCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogLinkSynced(ctx context.Context, linkID uuid.UUID, result dto.SyncResult, pages int, truncated bool) {
	sl.logger.InfoContext(ctx, "bank link synced",
		slog.String("event_type", "bank_link_synced"),
		slog.String("link_id", linkID.String()),
		slog.Int("accepted", result.Accepted),
		slog.Int("skipped", result.Skipped),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("pages", pages),
		slog.Bool("truncated", truncated),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogLinkFailed(ctx context.Context, linkID uuid.UUID, err error) {
	sl.logger.WarnContext(ctx, "bank link sync failed",
		slog.String("event_type", "bank_link_failed"),
		slog.String("link_id", linkID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogSyncCompleted(ctx context.Context, total dto.SyncResult, failures int, duration time.Duration) {
	sl.logger.InfoContext(ctx, "bank sync completed",
		slog.String("event_type", "bank_sync_completed"),
		slog.Int("accepted", total.Accepted),
		slog.Int("skipped", total.Skipped),
		slog.Int("duplicates", total.Duplicates),
		slog.Int("failed_links", failures),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogBatchImported(ctx context.Context, source string, result dto.SyncResult) {
	sl.logger.InfoContext(ctx, "transaction batch imported",
		slog.String("event_type", "transaction_batch_imported"),
		slog.String("source", source),
		slog.Int("accepted", result.Accepted),
		slog.Int("skipped", result.Skipped),
		slog.Int("duplicates", result.Duplicates),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (sl *SyncLogger) LogBillPromoted(ctx context.Context, billID uuid.UUID, signature string, amount decimal.Decimal) {
	sl.logger.InfoContext(ctx, "recurring charge promoted to bill",
		slog.String("event_type", "bill_promoted"),
		slog.String("bill_id", billID.String()),
		slog.String("signature", signature),
		slog.String("amount", amount.StringFixed(2)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

type contextKey string

const (
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

// WithCorrelationID returns a context carrying id for sync log events.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// CorrelationID returns the id set by WithCorrelationID, falling back to a
// request id, or empty.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}

	return ""
}
