package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/payload"
	"nfc-transfer-service/internal/repositories"

	"github.com/google/uuid"
)

// TransferProcessor is the server side of the transfer RPC. A request moves
// through received, decrypting, validating and applying, and ends completed,
// failed or rejected. Only completed and failed outcomes are stored.
type TransferProcessor struct {
	key          payload.Key
	accountRepo  repositories.AccountRepositoryInterface
	cardRepo     repositories.CardRepositoryInterface
	transferRepo repositories.TransferRepositoryInterface
	auditRepo    repositories.AuditLogRepositoryInterface
	auditLogger  AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewTransferProcessor(
	key payload.Key,
	accountRepo repositories.AccountRepositoryInterface,
	cardRepo repositories.CardRepositoryInterface,
	transferRepo repositories.TransferRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferProcessorInterface {
	return &TransferProcessor{
		key:          key,
		accountRepo:  accountRepo,
		cardRepo:     cardRepo,
		transferRepo: transferRepo,
		auditRepo:    auditRepo,
		auditLogger:  auditLogger,
		metrics:      metrics,
		logger:       logger,
	}
}

func (p *TransferProcessor) ProcessTransfer(ctx context.Context, userID uuid.UUID, encrypted dto.EncryptedPayload) (*models.TransferRecord, error) {
	start := time.Now()
	key := payload.IdempotencyKey(encrypted)
	p.auditLogger.LogTransferReceived(ctx, key, userID)

	existing, err := p.transferRepo.FindByIdempotencyKey(ctx, key)
	if err == nil {
		return p.resolveExisting(ctx, userID, existing)
	}
	if !errors.Is(err, repositories.ErrTransferNotFound) {
		return nil, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	intent, err := payload.Open(encrypted, p.key)
	if err != nil {
		if errors.Is(err, models.ErrIntentMalformed) {
			return nil, p.reject(ctx, userID, ErrMalformedIntent, start)
		}
		p.metrics.IncrementCounter(MetricTransferDecryptFailures, nil)
		return nil, p.reject(ctx, userID, ErrDecryptionFailed, start)
	}

	// amounts the ledger can not store leave no record
	if !intent.AmountInRange() {
		return nil, p.reject(ctx, userID, ErrAmountOutOfRange, start)
	}

	record := models.NewTransferRecord(key, intent)

	if err := p.validate(ctx, userID, intent, record); err != nil {
		switch {
		case IsBusinessRuleFailure(err):
			return p.fail(ctx, userID, record, err, start)
		case IsAuthorizationFailure(err), errors.Is(err, ErrMalformedIntent), errors.Is(err, ErrAmountOutOfRange):
			return nil, p.reject(ctx, userID, err, start)
		default:
			return nil, err
		}
	}

	if err := p.transferRepo.ExecuteTransfer(ctx, record); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInsufficientFunds):
			return p.fail(ctx, userID, record, ErrInsufficientFunds, start)
		case errors.Is(err, repositories.ErrCurrencyMismatch):
			return p.fail(ctx, userID, record, ErrCurrencyMismatch, start)
		case errors.Is(err, repositories.ErrAccountNotFound):
			return p.fail(ctx, userID, record, ErrAccountNotFound, start)
		case errors.Is(err, repositories.ErrTransferIdempotencyKeyExists):
			return p.loadWinner(ctx, userID, key)
		default:
			return nil, fmt.Errorf("failed to execute transfer: %w", err)
		}
	}

	duration := time.Since(start)
	p.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": models.TransferStatusCompleted})
	p.metrics.RecordProcessingTime(MetricTransferDurationSuccess, duration)
	p.metrics.RecordGauge(MetricTransferAmount, record.Amount.InexactFloat64(), nil)
	p.auditLogger.LogTransferCompleted(ctx, record, duration.Milliseconds())
	p.writeAudit(ctx, userID, models.AuditActionTransferCompleted, record, "")

	return record, nil
}

// GetTransfer returns a record if the caller owns either leg. Records of
// other users are reported as not found.
func (p *TransferProcessor) GetTransfer(ctx context.Context, userID, transferID uuid.UUID) (*models.TransferRecord, error) {
	record, err := p.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransferNotFound) {
			return nil, ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	visible, err := p.visibleTo(ctx, userID, record)
	if err != nil {
		return nil, err
	}
	if !visible {
		return nil, ErrTransferNotFound
	}

	return record, nil
}

// validate checks the sender first so that nothing is recorded for a
// payload the caller has no right to spend from.
func (p *TransferProcessor) validate(ctx context.Context, userID uuid.UUID, intent models.TransferIntent, record *models.TransferRecord) error {
	sender, err := p.lookupAccount(ctx, intent.FromAccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			record.FromAccountID = nil
		}
		return err
	}

	if !sender.OwnedBy(userID) {
		return ErrNotAccountOwner
	}

	if err := p.authorizeCard(ctx, userID, intent.CardID); err != nil {
		return err
	}

	if err := intent.Validate(); err != nil {
		return mapIntentError(err)
	}

	recipient, err := p.lookupAccount(ctx, intent.ToAccountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			record.ToAccountID = nil
		}
		return err
	}

	if sender.Currency != recipient.Currency {
		return ErrCurrencyMismatch
	}

	// checked again under the row lock
	if sender.Balance.LessThan(intent.Amount) {
		return ErrInsufficientFunds
	}

	return nil
}

func (p *TransferProcessor) lookupAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account, err := p.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func (p *TransferProcessor) authorizeCard(ctx context.Context, userID, cardID uuid.UUID) error {
	card, err := p.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to get card: %w", err)
	}

	if !card.OwnedBy(userID) {
		return ErrCardNotOwned
	}

	if !card.IsEligible() {
		return ErrCardInactive
	}

	return nil
}

func mapIntentError(err error) error {
	switch {
	case errors.Is(err, models.ErrIntentSameAccount):
		return ErrSameAccountTransfer
	case errors.Is(err, models.ErrIntentNonPositive), errors.Is(err, models.ErrIntentAmountPrecision):
		return ErrInvalidAmount
	case errors.Is(err, models.ErrIntentAmountOutOfRange):
		return ErrAmountOutOfRange
	case errors.Is(err, models.ErrIntentInvalidType):
		return ErrInvalidTransferType
	case errors.Is(err, models.ErrIntentMissingCard):
		return ErrCardNotFound
	case errors.Is(err, models.ErrIntentMissingAccount):
		return ErrAccountNotFound
	default:
		return ErrMalformedIntent
	}
}

// resolveExisting answers a resubmitted payload from its stored record
func (p *TransferProcessor) resolveExisting(ctx context.Context, userID uuid.UUID, existing *models.TransferRecord) (*models.TransferRecord, error) {
	if existing.IsPending() {
		return nil, ErrTransferPending
	}

	visible, err := p.visibleTo(ctx, userID, existing)
	if err != nil {
		return nil, err
	}

	if existing.IsFailed() {
		if !visible {
			return nil, ErrTransferFailed
		}
		return existing, ErrTransferFailed
	}

	if !visible {
		return nil, ErrNotAccountOwner
	}

	p.metrics.IncrementCounter(MetricTransferReplays, nil)
	p.auditLogger.LogTransferReplayed(ctx, existing)
	p.writeAudit(ctx, userID, models.AuditActionTransferReplayed, existing, "")

	return existing, nil
}

// loadWinner handles a concurrent duplicate that lost the race on the
// idempotency key
func (p *TransferProcessor) loadWinner(ctx context.Context, userID uuid.UUID, key string) (*models.TransferRecord, error) {
	winner, err := p.transferRepo.FindByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load concurrent transfer: %w", err)
	}
	return p.resolveExisting(ctx, userID, winner)
}

func (p *TransferProcessor) fail(ctx context.Context, userID uuid.UUID, record *models.TransferRecord, reason error, start time.Time) (*models.TransferRecord, error) {
	failure := reason.Error()
	// the record keeps a storable type; the rejected value goes to the reason
	if !models.IsValidTransferType(record.Type) {
		failure = fmt.Sprintf("%s: %.20q", failure, record.Type)
		record.Type = models.TransferTypeTransfer
	}

	if err := record.Fail(failure); err != nil {
		return nil, err
	}

	if err := p.transferRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrTransferIdempotencyKeyExists) {
			return p.loadWinner(ctx, userID, record.IdempotencyKey)
		}
		return nil, fmt.Errorf("failed to record failed transfer: %w", err)
	}

	duration := time.Since(start)
	p.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": models.TransferStatusFailed})
	p.metrics.RecordProcessingTime(MetricTransferDurationFailed, duration)
	p.auditLogger.LogTransferFailed(ctx, record, duration.Milliseconds())
	p.writeAudit(ctx, userID, models.AuditActionTransferFailed, record, reason.Error())

	return record, reason
}

func (p *TransferProcessor) reject(ctx context.Context, userID uuid.UUID, reason error, start time.Time) error {
	duration := time.Since(start)
	p.metrics.IncrementCounter(MetricTransfersTotal, map[string]string{"status": "rejected"})
	p.metrics.RecordProcessingTime(MetricTransferDurationFailed, duration)
	p.auditLogger.LogTransferRejected(ctx, userID, reason.Error(), duration.Milliseconds())
	p.writeAudit(ctx, userID, models.AuditActionTransferRejected, nil, reason.Error())
	return reason
}

func (p *TransferProcessor) visibleTo(ctx context.Context, userID uuid.UUID, record *models.TransferRecord) (bool, error) {
	for _, id := range []*uuid.UUID{record.FromAccountID, record.ToAccountID} {
		if id == nil {
			continue
		}
		account, err := p.accountRepo.GetByID(ctx, *id)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				continue
			}
			return false, fmt.Errorf("failed to get account: %w", err)
		}
		if account.OwnedBy(userID) {
			return true, nil
		}
	}
	return false, nil
}

// writeAudit stores an audit row. Failures are logged and do not change the
// transfer outcome.
func (p *TransferProcessor) writeAudit(ctx context.Context, userID uuid.UUID, action string, record *models.TransferRecord, reason string) {
	log := &models.AuditLog{
		UserID:   &userID,
		Action:   action,
		Resource: models.AuditResourceTransfer,
		TraceID:  getCorrelationID(ctx),
	}

	if record != nil {
		log.ResourceID = record.ID.String()
		log.SetMetadata("amount", record.Amount.StringFixed(2))
		log.SetMetadata("status", record.Status)
		if record.FromAccountID != nil {
			log.SetMetadata("from_account_id", record.FromAccountID.String())
		}
		if record.ToAccountID != nil {
			log.SetMetadata("to_account_id", record.ToAccountID.String())
		}
	}
	if reason != "" {
		log.SetMetadata("reason", reason)
	}

	if err := p.auditRepo.Create(ctx, log); err != nil {
		p.logger.Error("failed to create audit log", "error", err, "action", action)
	}
}
