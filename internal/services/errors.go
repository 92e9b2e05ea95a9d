package services

import "errors"

var (
	ErrTransferPending     = errors.New("transfer is still processing with this idempotency key")
	ErrTransferFailed      = errors.New("previous transfer failed with this idempotency key")
	ErrTransferNotFound    = errors.New("transfer not found")
	ErrDecryptionFailed    = errors.New("transfer payload could not be decrypted")
	ErrMalformedIntent     = errors.New("transfer payload is malformed")
	ErrSameAccountTransfer = errors.New("cannot transfer to same account")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrAmountOutOfRange    = errors.New("amount exceeds the maximum transfer amount")
	ErrInvalidTransferType = errors.New("invalid transfer type")
	ErrAccountNotFound     = errors.New("account not found")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrCurrencyMismatch    = errors.New("accounts use different currencies")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNotAccountOwner     = errors.New("not authorized to transfer from this account")
	ErrCardNotFound        = errors.New("card not found")
	ErrCardInactive        = errors.New("card is not active")
	ErrCardNotOwned        = errors.New("card does not belong to user")
)

// businessRuleFailures are refused requests that are still recorded as a
// failed transfer under their idempotency key.
var businessRuleFailures = []error{
	ErrSameAccountTransfer,
	ErrInvalidAmount,
	ErrInvalidTransferType,
	ErrAccountNotFound,
	ErrCurrencyMismatch,
	ErrInsufficientFunds,
}

// authorizationFailures leave no record behind, so a payload replayed by
// someone else can not claim the idempotency key.
var authorizationFailures = []error{
	ErrNotAccountOwner,
	ErrCardNotFound,
	ErrCardInactive,
	ErrCardNotOwned,
}

func IsBusinessRuleFailure(err error) bool {
	return isAny(err, businessRuleFailures)
}

func IsAuthorizationFailure(err error) bool {
	return isAny(err, authorizationFailures)
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
