package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the read-only identity record shown for a counterparty
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FirstName *string   `gorm:"type:varchar(100)" json:"first_name,omitempty"`
	LastName  *string   `gorm:"type:varchar(100)" json:"last_name,omitempty"`
	Email     *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return nil
}

// FullName joins whichever name parts are present
func (p *Profile) FullName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != nil && *p.FirstName != "" {
		parts = append(parts, *p.FirstName)
	}
	if p.LastName != nil && *p.LastName != "" {
		parts = append(parts, *p.LastName)
	}
	return strings.Join(parts, " ")
}

func (p *Profile) TableName() string {
	return "profiles"
}
