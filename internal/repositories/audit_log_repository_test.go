package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nfc-transfer-service/internal/database"
	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AuditLogRepositoryInterface
	ctx  context.Context
}

func (s *AuditLogRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAuditLogRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *AuditLogRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AuditLogRepositorySuite) TestCreate() {
	userID := uuid.New()
	transferID := uuid.New().String()

	log := &models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionTransferCompleted,
		Resource:   models.AuditResourceTransfer,
		ResourceID: transferID,
		TraceID:    uuid.New().String(),
	}
	log.SetMetadata("amount", "50.00")

	s.Require().NoError(s.repo.Create(s.ctx, log))
	s.NotEqual(uuid.Nil, log.ID)
	s.NotZero(log.CreatedAt)

	logs, err := s.repo.GetByResource(s.ctx, models.AuditResourceTransfer, transferID)
	s.Require().NoError(err)
	s.Require().Len(logs, 1)
	s.Equal(models.AuditActionTransferCompleted, logs[0].Action)
	amount, ok := logs[0].Meta("amount")
	s.True(ok)
	s.Equal("50.00", amount)
}

func (s *AuditLogRepositorySuite) TestCreate_WithoutUserID() {
	log := &models.AuditLog{
		Action:   models.AuditActionTransferRejected,
		Resource: models.AuditResourceTransfer,
	}

	s.NoError(s.repo.Create(s.ctx, log))
}

func (s *AuditLogRepositorySuite) TestCreate_Nil() {
	s.Error(s.repo.Create(s.ctx, nil))
}

func (s *AuditLogRepositorySuite) TestDeleteOlderThan() {
	old := &models.AuditLog{
		Action:    models.AuditActionCardActivated,
		Resource:  models.AuditResourceCard,
		CreatedAt: time.Now().Add(-400 * 24 * time.Hour),
	}
	recent := &models.AuditLog{
		Action:   models.AuditActionCardDeactivated,
		Resource: models.AuditResourceCard,
	}
	s.Require().NoError(s.repo.Create(s.ctx, old))
	s.Require().NoError(s.repo.Create(s.ctx, recent))

	deleted, err := s.repo.DeleteOlderThan(s.ctx, 365*24*time.Hour)

	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	var remaining int64
	s.Require().NoError(s.db.Model(&models.AuditLog{}).Count(&remaining).Error)
	s.Equal(int64(1), remaining)
}

func TestIsDuplicateKeyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"wrapped postgres unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other error", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique constraint", fmt.Errorf("UNIQUE constraint failed: transactions.idempotency_key"), true},
		{"unrelated", fmt.Errorf("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKeyError(tt.err))
		})
	}
}
