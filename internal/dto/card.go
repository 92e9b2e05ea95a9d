package dto

import (
	"nfc-transfer-service/internal/models"
)

// UpdateCardStatusRequest toggles a card. IsActive is a pointer so that an
// explicit false passes the required check.
type UpdateCardStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type CardListResponse struct {
	Cards []models.Card `json:"cards"`
}
