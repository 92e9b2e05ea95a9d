package dto

import (
	"time"

	"nfc-transfer-service/internal/models"
)

// EncryptedPayload is the only thing that travels to the transfer RPC.
// Both fields are standard base64.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext" validate:"required,base64"`
	IV         string `json:"iv" validate:"required,base64"`
}

// ProcessTransferResponse acknowledges a processed transfer
type ProcessTransferResponse struct {
	TransferID  string     `json:"transfer_id"`
	Status      string     `json:"status"`
	Amount      string     `json:"amount"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewProcessTransferResponse builds the acknowledgment for a stored record
func NewProcessTransferResponse(record *models.TransferRecord) ProcessTransferResponse {
	return ProcessTransferResponse{
		TransferID:  record.ID.String(),
		Status:      record.Status,
		Amount:      record.Amount.StringFixed(2),
		CompletedAt: record.CompletedAt,
	}
}
