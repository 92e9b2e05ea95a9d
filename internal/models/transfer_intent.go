package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Canonical payload field names
const (
	IntentFieldAmount          = "amount"
	IntentFieldCardID          = "card_id"
	IntentFieldFromAccountID   = "from_account_id"
	IntentFieldStatus          = "status"
	IntentFieldToAccountID     = "to_account_id"
	IntentFieldTransactionType = "transaction_type"
)

// IntentStatusCompleted is what clients send in the status field. The
// processor ignores it and decides the status itself.
const IntentStatusCompleted = "completed"

const amountScale = 2

// MaxTransferAmount is the largest amount a DECIMAL(15,2) column can hold
var MaxTransferAmount = decimal.RequireFromString("9999999999999.99")

var (
	ErrIntentSameAccount      = errors.New("sender and recipient accounts must differ")
	ErrIntentNonPositive      = errors.New("amount must be greater than zero")
	ErrIntentAmountPrecision  = errors.New("amount must have at most two decimal places")
	ErrIntentAmountOutOfRange = errors.New("amount exceeds the maximum transfer amount")
	ErrIntentInvalidType      = errors.New("transaction type must be transfer")
	ErrIntentMissingCard      = errors.New("card id is required")
	ErrIntentMissingAccount   = errors.New("sender and recipient account ids are required")
	ErrIntentMalformed        = errors.New("malformed transfer intent")
)

// TransferIntent is a single transfer request before it is encrypted on the
// client or after it has been decrypted on the server. It is never stored.
type TransferIntent struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Type          string
	CardID        uuid.UUID
}

// Validate checks the structural business rules every intent must satisfy
func (i TransferIntent) Validate() error {
	if i.FromAccountID == uuid.Nil || i.ToAccountID == uuid.Nil {
		return ErrIntentMissingAccount
	}
	if i.FromAccountID == i.ToAccountID {
		return ErrIntentSameAccount
	}
	if !i.Amount.IsPositive() {
		return ErrIntentNonPositive
	}
	if !i.AmountInRange() {
		return ErrIntentAmountOutOfRange
	}
	if !i.Amount.Equal(i.Amount.Round(amountScale)) {
		return ErrIntentAmountPrecision
	}
	if i.Type != TransferTypeTransfer {
		return ErrIntentInvalidType
	}
	if i.CardID == uuid.Nil {
		return ErrIntentMissingCard
	}
	return nil
}

// AmountInRange reports whether the amount, of either sign, fits the
// transfer amount column
func (i TransferIntent) AmountInRange() bool {
	return i.Amount.Abs().LessThanOrEqual(MaxTransferAmount)
}

// Fields returns the canonical field map that gets serialized and encrypted.
// The amount is always rendered with two decimals.
func (i TransferIntent) Fields() map[string]string {
	return map[string]string{
		IntentFieldAmount:          i.Amount.StringFixed(amountScale),
		IntentFieldCardID:          i.CardID.String(),
		IntentFieldFromAccountID:   i.FromAccountID.String(),
		IntentFieldStatus:          IntentStatusCompleted,
		IntentFieldToAccountID:     i.ToAccountID.String(),
		IntentFieldTransactionType: i.Type,
	}
}

// ParseTransferIntent rebuilds an intent from decrypted fields. Only the
// shape is checked here; business rules are left to Validate. The status
// field is ignored.
func ParseTransferIntent(fields map[string]string) (TransferIntent, error) {
	var intent TransferIntent

	from, err := uuid.Parse(fields[IntentFieldFromAccountID])
	if err != nil {
		return intent, fmt.Errorf("%w: %s", ErrIntentMalformed, IntentFieldFromAccountID)
	}
	to, err := uuid.Parse(fields[IntentFieldToAccountID])
	if err != nil {
		return intent, fmt.Errorf("%w: %s", ErrIntentMalformed, IntentFieldToAccountID)
	}
	card, err := uuid.Parse(fields[IntentFieldCardID])
	if err != nil {
		return intent, fmt.Errorf("%w: %s", ErrIntentMalformed, IntentFieldCardID)
	}
	amount, err := decimal.NewFromString(fields[IntentFieldAmount])
	if err != nil {
		return intent, fmt.Errorf("%w: %s", ErrIntentMalformed, IntentFieldAmount)
	}

	intent.FromAccountID = from
	intent.ToAccountID = to
	intent.CardID = card
	intent.Amount = amount
	intent.Type = fields[IntentFieldTransactionType]
	return intent, nil
}
