package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/repositories"

	"github.com/google/uuid"
)

type cardService struct {
	cardRepo    repositories.CardRepositoryInterface
	auditRepo   repositories.AuditLogRepositoryInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewCardService(
	cardRepo repositories.CardRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CardServiceInterface {
	return &cardService{
		cardRepo:    cardRepo,
		auditRepo:   auditRepo,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// ListCards returns all cards of the user. Eligibility is decided by the caller.
func (s *cardService) ListCards(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	cards, err := s.cardRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// SetCardActive persists the new status and returns the stored card, which
// is the acknowledgment the client waits for before updating its own state.
func (s *cardService) SetCardActive(ctx context.Context, userID, cardID uuid.UUID, active bool) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if !card.OwnedBy(userID) {
		return nil, ErrCardNotOwned
	}

	updated, err := s.cardRepo.SetActive(ctx, cardID, active)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.metrics.IncrementCounter(MetricCardStatusChanges, map[string]string{"active": strconv.FormatBool(active)})
	s.auditLogger.LogCardStatusChange(ctx, cardID, userID, active)

	action := models.AuditActionCardDeactivated
	if active {
		action = models.AuditActionCardActivated
	}
	if err := s.auditRepo.Create(ctx, &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   models.AuditResourceCard,
		ResourceID: cardID.String(),
		TraceID:    getCorrelationID(ctx),
	}); err != nil {
		s.logger.Error("failed to create audit log", "error", err, "action", action)
	}

	return updated, nil
}
