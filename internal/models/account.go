package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CurrencyEUR is the only currency accounts are held in
const CurrencyEUR = "EUR"

const maxAccountNumberLength = 34

var (
	ErrInvalidBalance       = errors.New("balance cannot be negative")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrUnsupportedCurrency  = errors.New("unsupported currency")
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrAccountOwnerRequired = errors.New("account owner is required")
)

// Account is a money-holding account owned by a single user
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountNumber string          `gorm:"type:varchar(34);uniqueIndex;not null" json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Currency == "" {
		a.Currency = CurrencyEUR
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return ErrAccountOwnerRequired
	}

	if !ValidateAccountNumber(a.AccountNumber) {
		return ErrInvalidAccountNumber
	}

	if a.Currency != CurrencyEUR {
		return ErrUnsupportedCurrency
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrInvalidBalance
	}

	return nil
}

// OwnedBy reports whether userID owns the account
func (a *Account) OwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

// Debit removes amount from the balance. The balance never goes negative.
func (a *Account) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

func (a *Account) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

func (a *Account) TableName() string {
	return "accounts"
}

// ValidateAccountNumber accepts 1-34 uppercase letters and digits
func ValidateAccountNumber(accountNumber string) bool {
	if accountNumber == "" || len(accountNumber) > maxAccountNumberLength {
		return false
	}

	for _, r := range accountNumber {
		if !(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'Z') {
			return false
		}
	}

	return true
}
