package dto

import (
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// ProfileResponse is the counterparty view shown before a transfer
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	FullName  string    `json:"full_name"`
}

func NewProfileResponse(profile *models.Profile) ProfileResponse {
	response := ProfileResponse{
		ID:       profile.ID,
		FullName: profile.FullName(),
	}
	if profile.FirstName != nil {
		response.FirstName = *profile.FirstName
	}
	if profile.LastName != nil {
		response.LastName = *profile.LastName
	}
	return response
}
