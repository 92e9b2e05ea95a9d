package dto

import (
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// AccountLookupQuery is the query string for the exact-match account lookup
type AccountLookupQuery struct {
	AccountNumber string `query:"account_number" validate:"required,account_number"`
}

// AccountSummary is the view of an account found by number. Balances are
// only shown to the owner.
type AccountSummary struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	AccountNumber string    `json:"account_number"`
	Currency      string    `json:"currency"`
}

// AccountLookupResponse wraps accounts returned by a lookup. An empty list
// means nothing matched.
type AccountLookupResponse struct {
	Accounts []AccountSummary `json:"accounts"`
}

// AccountListResponse lists the caller's own accounts, balances included
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
}

func NewAccountLookupResponse(accounts []models.Account) AccountLookupResponse {
	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, AccountSummary{
			ID:            account.ID,
			UserID:        account.UserID,
			AccountNumber: account.AccountNumber,
			Currency:      account.Currency,
		})
	}
	return AccountLookupResponse{Accounts: summaries}
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
