package transferclient

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
)

// Counterparty is a resolved transfer recipient
type Counterparty struct {
	Account dto.AccountSummary
	Profile dto.ProfileResponse
}

// Resolver looks up the recipient of a transfer. It only reads, so a failed
// call can be repeated freely.
type Resolver struct {
	api API
}

func NewResolver(api API) *Resolver {
	return &Resolver{api: api}
}

func (r *Resolver) Resolve(ctx context.Context, session Session, accountNumber string) (*Counterparty, error) {
	const op = "resolve counterparty"

	if accountNumber == "" || strings.TrimSpace(accountNumber) == "" {
		return nil, newError(KindValidation, op, ErrEmptyAccountNumber)
	}
	if !models.ValidateAccountNumber(accountNumber) {
		return nil, newError(KindValidation, op, ErrInvalidAccountNumber)
	}

	accounts, err := r.api.FindAccountsByNumber(ctx, session, accountNumber)
	if err != nil {
		return nil, fromAPI(op, err)
	}
	if len(accounts) == 0 {
		return nil, newError(KindLookup, op, ErrAccountNotFound)
	}

	account := accounts[0]
	if account.UserID == session.UserID {
		return nil, newError(KindAuthorization, op, ErrSelfTransfer)
	}

	profile, err := r.api.GetProfile(ctx, session, account.UserID)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, newError(KindLookup, op, ErrProfileNotFound)
		}
		return nil, fromAPI(op, err)
	}

	return &Counterparty{Account: account, Profile: *profile}, nil
}
