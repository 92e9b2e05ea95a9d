package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionTransferCompleted = "transfer_completed"
	AuditActionTransferFailed    = "transfer_failed"
	AuditActionTransferReplayed  = "transfer_replayed"
	AuditActionTransferRejected  = "transfer_rejected"
	AuditActionCardActivated     = "card_activated"
	AuditActionCardDeactivated   = "card_deactivated"
)

const (
	AuditResourceTransfer = "transfer"
	AuditResourceCard     = "card"
)

// AuditLog is an append-only trail of security-relevant actions. Metadata
// never carries card codes, keys or decrypted payloads.
type AuditLog struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID    `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string        `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string        `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string        `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	TraceID    string        `gorm:"type:varchar(64)" json:"trace_id,omitempty"`
	Metadata   AuditMetadata `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time     `gorm:"not null;index" json:"created_at"`
}

// SetMetadata records a string attribute on the entry
func (al *AuditLog) SetMetadata(key, value string) {
	if al.Metadata == nil {
		al.Metadata = make(AuditMetadata)
	}
	al.Metadata[key] = value
}

// Meta returns the attribute stored under key
func (al *AuditLog) Meta(key string) (string, bool) {
	value, ok := al.Metadata[key]
	return value, ok
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// AuditMetadata is stored as a JSON object in a text column, which works on
// both Postgres and SQLite.
type AuditMetadata map[string]string

func (m AuditMetadata) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(map[string]string(m))
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

func (m *AuditMetadata) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into AuditMetadata", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, (*map[string]string)(m))
}
