package services

import (
	"context"
	"errors"
	"fmt"

	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/repositories"

	"github.com/google/uuid"
)

type accountQueryService struct {
	accountRepo repositories.AccountRepositoryInterface
	profileRepo repositories.ProfileRepositoryInterface
}

func NewAccountQueryService(
	accountRepo repositories.AccountRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
) AccountQueryServiceInterface {
	return &accountQueryService{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
	}
}

// FindAccountsByNumber matches exactly. No match is an empty list, not an error.
func (s *accountQueryService) FindAccountsByNumber(ctx context.Context, accountNumber string) ([]models.Account, error) {
	accounts, err := s.accountRepo.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to find accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountQueryService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountQueryService) GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
