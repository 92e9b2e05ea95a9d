package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog_Metadata(t *testing.T) {
	log := &AuditLog{Action: AuditActionTransferFailed}

	_, ok := log.Meta("reason")
	assert.False(t, ok)

	log.SetMetadata("reason", "insufficient funds")
	log.SetMetadata("amount", "50.00")
	log.SetMetadata("amount", "60.00")

	reason, ok := log.Meta("reason")
	assert.True(t, ok)
	assert.Equal(t, "insufficient funds", reason)
	assert.Equal(t, AuditMetadata{"reason": "insufficient funds", "amount": "60.00"}, log.Metadata)
}

func TestAuditLog_BeforeCreate(t *testing.T) {
	log := &AuditLog{}

	require.NoError(t, log.BeforeCreate(nil))

	assert.NotEqual(t, uuid.Nil, log.ID)
	assert.False(t, log.CreatedAt.IsZero())

	id := log.ID
	require.NoError(t, log.BeforeCreate(nil))
	assert.Equal(t, id, log.ID)
}

func TestAuditMetadata_ValueAndScan(t *testing.T) {
	t.Run("empty is NULL", func(t *testing.T) {
		value, err := AuditMetadata{}.Value()
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("round trip through text column", func(t *testing.T) {
		value, err := AuditMetadata{"status": "failed"}.Value()
		require.NoError(t, err)
		assert.Equal(t, `{"status":"failed"}`, value)

		var scanned AuditMetadata
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, AuditMetadata{"status": "failed"}, scanned)
	})

	t.Run("scan bytes", func(t *testing.T) {
		var scanned AuditMetadata
		require.NoError(t, scanned.Scan([]byte(`{"a":"b"}`)))
		assert.Equal(t, "b", scanned["a"])
	})

	t.Run("scan nil and empty", func(t *testing.T) {
		scanned := AuditMetadata{"stale": "x"}
		require.NoError(t, scanned.Scan(nil))
		assert.Nil(t, scanned)

		scanned = AuditMetadata{"stale": "x"}
		require.NoError(t, scanned.Scan(""))
		assert.Nil(t, scanned)
	})

	t.Run("scan rejects other types", func(t *testing.T) {
		var scanned AuditMetadata
		assert.Error(t, scanned.Scan(42))
	})

	t.Run("non-string values do not decode", func(t *testing.T) {
		var scanned AuditMetadata
		assert.Error(t, scanned.Scan(`{"attempts":3}`))
	})
}
