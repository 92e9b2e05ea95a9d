package transferclient

import (
	"context"
	"fmt"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=api.go -destination=mock_api_test.go -package=transferclient

// API is the server surface the transfer flow consumes
type API interface {
	// FindAccountsByNumber matches exactly and returns an empty list when nothing matches
	FindAccountsByNumber(ctx context.Context, session Session, accountNumber string) ([]dto.AccountSummary, error)
	// AccountsByOwner lists the accounts owned by the session user
	AccountsByOwner(ctx context.Context, session Session) ([]models.Account, error)
	GetProfile(ctx context.Context, session Session, profileID uuid.UUID) (*dto.ProfileResponse, error)
	ListCards(ctx context.Context, session Session) ([]models.Card, error)
	SetCardActive(ctx context.Context, session Session, cardID uuid.UUID, active bool) (*models.Card, error)
	ProcessTransfer(ctx context.Context, session Session, payload dto.EncryptedPayload) (*dto.ProcessTransferResponse, error)
}

// APIError is a structured error answered by the server
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []string
	TraceID string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}
