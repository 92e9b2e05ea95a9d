package repositories

import (
	"context"
	"errors"
	"fmt"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardNotFound  = errors.New("card not found")
	ErrCardUIDExists = errors.New("card uid already registered")
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new NFC card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{db: db}
}

// Create registers a card. Inactive cards are written in two steps because
// GORM omits a false bool when the column has a default.
func (r *cardRepository) Create(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("card cannot be nil")
	}

	active := card.IsActive
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(card).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrCardUIDExists
			}
			return fmt.Errorf("failed to create card: %w", err)
		}

		if !active {
			if err := tx.Model(card).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}
			card.IsActive = false
		}
		return nil
	})
}

func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	card := &models.Card{ID: id}
	if err := r.db.WithContext(ctx).First(card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// ListByOwner returns every card of the user, active or not
func (r *cardRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Card, error) {
	cards := []models.Card{}
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at ASC").Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// SetActive persists the card status and returns the stored card
func (r *cardRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.Card, error) {
	result := r.db.WithContext(ctx).Model(&models.Card{ID: id}).Update("is_active", active)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update card status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrCardNotFound
	}
	return r.GetByID(ctx, id)
}
