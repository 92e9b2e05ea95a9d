package database

import (
	"fmt"
	"testing"

	"nfc-transfer-service/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory SQLite database. The pool is capped
// at one connection: every :memory: connection is a separate database, and a
// single connection also serializes concurrent transactions.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestProfile(t *testing.T, db *DB) *models.Profile {
	t.Helper()

	firstName := gofakeit.FirstName()
	lastName := gofakeit.LastName()
	email := gofakeit.Email()

	profile := &models.Profile{
		FirstName: &firstName,
		LastName:  &lastName,
		Email:     &email,
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	return profile
}

func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, accountNumber string, balance decimal.Decimal) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:        userID,
		AccountNumber: accountNumber,
		Balance:       balance,
		Currency:      models.CurrencyEUR,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// CreateTestCard creates a card. GORM skips zero values that have a column
// default, so an inactive card is flipped with an explicit update.
func CreateTestCard(t *testing.T, db *DB, userID uuid.UUID, uid string, active bool) *models.Card {
	t.Helper()

	card := &models.Card{
		UserID:   userID,
		UID:      uid,
		IsActive: true,
	}

	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}

	if !active {
		if err := db.Model(card).Update("is_active", false).Error; err != nil {
			t.Fatalf("failed to deactivate test card: %v", err)
		}
		card.IsActive = false
	}

	return card
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"audit_logs",
		"nfc_cards",
		"accounts",
		"profiles",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
