package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"nfc-transfer-service/internal/database"
	"nfc-transfer-service/internal/dto"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/payload"
	"nfc-transfer-service/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type processorFixture struct {
	db        *database.DB
	processor TransferProcessorInterface
	accounts  repositories.AccountRepositoryInterface
	audits    repositories.AuditLogRepositoryInterface
	registry  *prometheus.Registry
	key       payload.Key
	alice     *models.Account
	bob       *models.Account
	card      *models.Card
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()

	f := &processorFixture{
		db:       db,
		accounts: repositories.NewAccountRepository(db.DB),
		audits:   repositories.NewAuditLogRepository(db.DB),
		registry: registry,
		key:      payload.MustDeriveKey("integration-passphrase"),
	}

	f.processor = NewTransferProcessor(
		f.key,
		f.accounts,
		repositories.NewCardRepository(db.DB),
		repositories.NewTransferRepository(db.DB),
		f.audits,
		NewAuditLogger(logger),
		NewPrometheusMetrics(registry),
		logger,
	)

	aliceID := uuid.New()
	f.alice = database.CreateTestAccount(t, db, aliceID, "FR001", decimal.NewFromInt(100))
	f.bob = database.CreateTestAccount(t, db, uuid.New(), "FR002", decimal.Zero)
	f.card = database.CreateTestCard(t, db, aliceID, "04A224B1C2", true)

	return f
}

func (f *processorFixture) seal(t *testing.T, amount string) dto.EncryptedPayload {
	t.Helper()
	return f.sealWith(t, func(*models.TransferIntent) {}, amount)
}

func (f *processorFixture) sealWith(t *testing.T, mutate func(*models.TransferIntent), amount string) dto.EncryptedPayload {
	t.Helper()

	intent := models.TransferIntent{
		FromAccountID: f.alice.ID,
		ToAccountID:   f.bob.ID,
		Amount:        decimal.RequireFromString(amount),
		Type:          models.TransferTypeTransfer,
		CardID:        f.card.ID,
	}
	mutate(&intent)

	sealed, err := payload.NewEncryptor().Seal(intent, f.key)
	require.NoError(t, err)
	return sealed
}

func (f *processorFixture) countAll(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&models.TransferRecord{}).Count(&count).Error)
	return count
}

func (f *processorFixture) balances(t *testing.T) (string, string) {
	t.Helper()

	alice, err := f.accounts.GetByID(context.Background(), f.alice.ID)
	require.NoError(t, err)
	bob, err := f.accounts.GetByID(context.Background(), f.bob.ID)
	require.NoError(t, err)
	return alice.Balance.StringFixed(2), bob.Balance.StringFixed(2)
}

func (f *processorFixture) countRecords(t *testing.T, status string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, f.db.Model(&models.TransferRecord{}).Where("status = ?", status).Count(&count).Error)
	return count
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			for _, pair := range metric.GetLabel() {
				if want, ok := labels[pair.GetName()]; ok && want != pair.GetValue() {
					continue metrics
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestTransferProcessor_CompletesTransfer(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := WithCorrelationID(context.Background(), "req-1")

	record, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, f.seal(t, "50.00"))
	require.NoError(t, err)

	assert.Equal(t, models.TransferStatusCompleted, record.Status)
	assert.Equal(t, "50.00", record.Amount.StringFixed(2))

	alice, bob := f.balances(t)
	assert.Equal(t, "50.00", alice)
	assert.Equal(t, "50.00", bob)

	logs, err := f.audits.GetByResource(ctx, models.AuditResourceTransfer, record.ID.String())
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditActionTransferCompleted, logs[0].Action)
	assert.Equal(t, "req-1", logs[0].TraceID)

	assert.Equal(t, float64(1), counterValue(t, f.registry, MetricTransfersTotal, map[string]string{"status": "completed"}))
}

func TestTransferProcessor_ResubmittedPayloadAppliesOnce(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.seal(t, "50.00")

	first, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.NoError(t, err)

	second, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(1), f.countRecords(t, models.TransferStatusCompleted))

	alice, bob := f.balances(t)
	assert.Equal(t, "50.00", alice)
	assert.Equal(t, "50.00", bob)

	assert.Equal(t, float64(1), counterValue(t, f.registry, MetricTransferReplays, nil))
}

func TestTransferProcessor_FreshEncryptionIsANewTransfer(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	first, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, f.seal(t, "30.00"))
	require.NoError(t, err)

	second, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, f.seal(t, "30.00"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	alice, bob := f.balances(t)
	assert.Equal(t, "40.00", alice)
	assert.Equal(t, "60.00", bob)
}

func TestTransferProcessor_ConcurrentResubmissionsShareOneRecord(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.seal(t, "50.00")

	const workers = 5
	ids := make(chan uuid.UUID, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			record, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
			if err != nil {
				errs <- err
				return
			}
			ids <- record.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	seen := make(map[uuid.UUID]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 1)
	assert.Equal(t, int64(1), f.countRecords(t, models.TransferStatusCompleted))

	alice, bob := f.balances(t)
	assert.Equal(t, "50.00", alice)
	assert.Equal(t, "50.00", bob)
}

func TestTransferProcessor_ConcurrentTransfersNeverOverdraw(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		completed    int
		insufficient int
	)

	for i := 0; i < workers; i++ {
		sealed := f.seal(t, "20.00")
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				completed++
			case errors.Is(err, ErrInsufficientFunds):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, completed)
	assert.Equal(t, 3, insufficient)
	assert.Equal(t, int64(3), f.countRecords(t, models.TransferStatusFailed))

	alice, bob := f.balances(t)
	assert.Equal(t, "0.00", alice)
	assert.Equal(t, "100.00", bob)
}

func TestTransferProcessor_FailedTransferIsRecordedAndReplayed(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.seal(t, "150.00")

	record, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.NotNil(t, record)
	assert.Equal(t, models.TransferStatusFailed, record.Status)

	replayed, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	assert.ErrorIs(t, err, ErrTransferFailed)
	require.NotNil(t, replayed)
	assert.Equal(t, record.ID, replayed.ID)

	alice, bob := f.balances(t)
	assert.Equal(t, "100.00", alice)
	assert.Equal(t, "0.00", bob)
}

func TestTransferProcessor_ForeignPayloadLeavesNoRecord(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.seal(t, "10.00")

	_, err := f.processor.ProcessTransfer(ctx, f.bob.UserID, sealed)
	require.ErrorIs(t, err, ErrNotAccountOwner)

	var count int64
	require.NoError(t, f.db.Model(&models.TransferRecord{}).Count(&count).Error)
	assert.Zero(t, count)

	// the rightful owner can still use the payload
	record, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCompleted, record.Status)
}

func TestTransferProcessor_InactiveCardIsRejected(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()

	inactive := database.CreateTestCard(t, f.db, f.alice.UserID, "04FFEE0011", false)
	sealed, err := payload.NewEncryptor().Seal(models.TransferIntent{
		FromAccountID: f.alice.ID,
		ToAccountID:   f.bob.ID,
		Amount:        decimal.NewFromInt(10),
		Type:          models.TransferTypeTransfer,
		CardID:        inactive.ID,
	}, f.key)
	require.NoError(t, err)

	_, err = f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	assert.ErrorIs(t, err, ErrCardInactive)

	alice, _ := f.balances(t)
	assert.Equal(t, "100.00", alice)
	assert.Equal(t, float64(1), counterValue(t, f.registry, MetricTransfersTotal, map[string]string{"status": "rejected"}))
}

// respellIV flips an unused trailing bit of the base64 IV. The bytes the
// lenient decoder yields are unchanged.
func respellIV(p dto.EncryptedPayload) dto.EncryptedPayload {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	i := len(strings.TrimRight(p.IV, "=")) - 1
	c := alphabet[strings.IndexByte(alphabet, p.IV[i])^1]
	return dto.EncryptedPayload{Ciphertext: p.Ciphertext, IV: p.IV[:i] + string(c) + p.IV[i+1:]}
}

func TestTransferProcessor_RespelledPayloadAppliesOnce(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.seal(t, "50.00")
	respelled := respellIV(sealed)
	require.NotEqual(t, sealed.IV, respelled.IV)

	first, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.NoError(t, err)

	second, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, respelled)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.Equal(t, int64(1), f.countAll(t))
	alice, bob := f.balances(t)
	assert.Equal(t, "50.00", alice)
	assert.Equal(t, "50.00", bob)
}

func TestTransferProcessor_RespelledPayloadNeverDecrypts(t *testing.T) {
	f := newProcessorFixture(t)

	_, err := f.processor.ProcessTransfer(context.Background(), f.alice.UserID, respellIV(f.seal(t, "50.00")))

	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Zero(t, f.countAll(t))
}

func TestTransferProcessor_UnknownTypeIsRecordedAsFailed(t *testing.T) {
	f := newProcessorFixture(t)
	ctx := context.Background()
	sealed := f.sealWith(t, func(i *models.TransferIntent) { i.Type = "foo" }, "10.00")

	record, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	require.ErrorIs(t, err, ErrInvalidTransferType)
	require.NotNil(t, record)

	assert.Equal(t, models.TransferStatusFailed, record.Status)
	assert.Equal(t, models.TransferTypeTransfer, record.Type)
	require.NotNil(t, record.FailureReason)
	assert.Contains(t, *record.FailureReason, `"foo"`)
	assert.Equal(t, int64(1), f.countRecords(t, models.TransferStatusFailed))

	replayed, err := f.processor.ProcessTransfer(ctx, f.alice.UserID, sealed)
	assert.ErrorIs(t, err, ErrTransferFailed)
	require.NotNil(t, replayed)
	assert.Equal(t, record.ID, replayed.ID)

	alice, bob := f.balances(t)
	assert.Equal(t, "100.00", alice)
	assert.Equal(t, "0.00", bob)
}

func TestTransferProcessor_UnknownTypeWithOtherFailureIsRecorded(t *testing.T) {
	f := newProcessorFixture(t)

	sealed := f.sealWith(t, func(i *models.TransferIntent) { i.Type = strings.Repeat("x", 40) }, "-5.00")

	record, err := f.processor.ProcessTransfer(context.Background(), f.alice.UserID, sealed)
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.NotNil(t, record)
	assert.Equal(t, models.TransferTypeTransfer, record.Type)
	assert.NotContains(t, *record.FailureReason, strings.Repeat("x", 21))
}

func TestTransferProcessor_AmountOutOfRangeLeavesNoRecord(t *testing.T) {
	for _, amount := range []string{"1e20", "-1e20", "10000000000000"} {
		t.Run(amount, func(t *testing.T) {
			f := newProcessorFixture(t)

			record, err := f.processor.ProcessTransfer(context.Background(), f.alice.UserID, f.seal(t, amount))

			assert.Nil(t, record)
			assert.ErrorIs(t, err, ErrAmountOutOfRange)
			assert.Zero(t, f.countAll(t))
			assert.Equal(t, float64(1), counterValue(t, f.registry, MetricTransfersTotal, map[string]string{"status": "rejected"}))
		})
	}
}
