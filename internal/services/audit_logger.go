package services

import (
	"context"
	"log/slog"
	"time"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

type correlationIDKey struct{}

// WithCorrelationID stores the request trace id for audit events
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransferReceived(ctx context.Context, idempotencyKey string, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "transfer received",
		slog.String("event_type", "transfer_received"),
		slog.String("idempotency_key", idempotencyKey),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferCompleted(ctx context.Context, record *models.TransferRecord, durationMs int64) {
	al.logger.LogAttrs(ctx, slog.LevelInfo, "transfer completed",
		append(transferAttrs(record),
			slog.String("event_type", "transfer_completed"),
			slog.Int64("duration_ms", durationMs),
			slog.Time("timestamp", time.Now()),
			slog.String("correlation_id", getCorrelationID(ctx)),
		)...,
	)
}

func (al *AuditLogger) LogTransferFailed(ctx context.Context, record *models.TransferRecord, durationMs int64) {
	reason := ""
	if record.FailureReason != nil {
		reason = *record.FailureReason
	}

	al.logger.LogAttrs(ctx, slog.LevelWarn, "transfer failed",
		append(transferAttrs(record),
			slog.String("event_type", "transfer_failed"),
			slog.String("error", reason),
			slog.Int64("duration_ms", durationMs),
			slog.Time("timestamp", time.Now()),
			slog.String("correlation_id", getCorrelationID(ctx)),
		)...,
	)
}

func (al *AuditLogger) LogTransferRejected(ctx context.Context, userID uuid.UUID, reason string, durationMs int64) {
	al.logger.WarnContext(ctx, "transfer rejected",
		slog.String("event_type", "transfer_rejected"),
		slog.String("user_id", userID.String()),
		slog.String("error", reason),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransferReplayed(ctx context.Context, record *models.TransferRecord) {
	al.logger.LogAttrs(ctx, slog.LevelInfo, "transfer replayed",
		append(transferAttrs(record),
			slog.String("event_type", "transfer_idempotency_check"),
			slog.Time("timestamp", time.Now()),
			slog.String("correlation_id", getCorrelationID(ctx)),
		)...,
	)
}

func (al *AuditLogger) LogCardStatusChange(ctx context.Context, cardID, userID uuid.UUID, active bool) {
	al.logger.InfoContext(ctx, "card status change",
		slog.String("event_type", "card_status_change"),
		slog.String("card_id", cardID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("is_active", active),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func transferAttrs(record *models.TransferRecord) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("transfer_id", record.ID.String()),
		slog.String("status", record.Status),
		slog.String("amount", record.Amount.StringFixed(2)),
	}

	if record.FromAccountID != nil {
		attrs = append(attrs, slog.String("from_account_id", record.FromAccountID.String()))
	}
	if record.ToAccountID != nil {
		attrs = append(attrs, slog.String("to_account_id", record.ToAccountID.String()))
	}

	return attrs
}

// CorrelationID returns the id set by WithCorrelationID, or "" when there is none
func CorrelationID(ctx context.Context) string {
	return getCorrelationID(ctx)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return correlationID
	}

	return ""
}
