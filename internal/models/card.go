package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCardUIDRequired   = errors.New("card uid is required")
	ErrCardOwnerRequired = errors.New("card owner is required")
)

// Card is an NFC card bound to a user. Its UID doubles as the code the
// user enters to authorize a transfer.
type Card struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	UID       string    `gorm:"column:uid;type:varchar(64);uniqueIndex;not null" json:"uid"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CardName  *string   `gorm:"type:varchar(100)" json:"card_name,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Card) Validate() error {
	if c.UserID == uuid.Nil {
		return ErrCardOwnerRequired
	}
	if c.UID == "" {
		return ErrCardUIDRequired
	}
	return nil
}

// IsEligible reports whether the card may authorize transfers
func (c *Card) IsEligible() bool {
	return c.IsActive
}

// OwnedBy reports whether userID owns the card
func (c *Card) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// DisplayName returns the user-chosen name, or a label built from the card id.
// The UID is never part of it.
func (c *Card) DisplayName() string {
	if c.CardName != nil && *c.CardName != "" {
		return *c.CardName
	}
	return "Card " + c.ID.String()[:8]
}

func (c *Card) TableName() string {
	return "nfc_cards"
}
