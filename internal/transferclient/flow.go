package transferclient

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"nfc-transfer-service/internal/config"
	"nfc-transfer-service/internal/models"
	"nfc-transfer-service/internal/payload"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest is what the user entered on the transfer screen
type TransferRequest struct {
	Code   string
	Amount string
}

// Flow drives one user's transfer screen: card selection, recipient search,
// authorization, encryption and submission. It is safe for concurrent use.
type Flow struct {
	api       API
	binder    *CardBinder
	resolver  *Resolver
	submitter *Submitter
	encryptor *payload.Encryptor
	key       payload.Key
	logger    *slog.Logger

	mu           sync.RWMutex
	counterparty *Counterparty
}

type FlowOption func(*Flow)

// WithEncryptor replaces the default encryptor, e.g. to control the IV source
func WithEncryptor(encryptor *payload.Encryptor) FlowOption {
	return func(f *Flow) {
		f.encryptor = encryptor
	}
}

// NewFlow derives the payload key once; it is reused for every transfer
func NewFlow(api API, cfg *config.ClientConfig, logger *slog.Logger, opts ...FlowOption) (*Flow, error) {
	key, err := payload.DeriveKey(cfg.Passphrase)
	if err != nil {
		return nil, newError(KindCrypto, "derive key", err)
	}

	f := &Flow{
		api:       api,
		binder:    NewCardBinder(nil),
		resolver:  NewResolver(api),
		submitter: NewSubmitter(api),
		encryptor: payload.NewEncryptor(),
		key:       key,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// LoadCards refreshes the card list from the server and returns the eligible cards
func (f *Flow) LoadCards(ctx context.Context, session Session) ([]models.Card, error) {
	const op = "load cards"
	if !session.valid() {
		return nil, newError(KindUnauthorized, op, ErrNoSession)
	}

	cards, err := f.api.ListCards(ctx, session)
	if err != nil {
		return nil, fromAPI(op, err)
	}

	f.binder.SetCards(cards)
	return f.binder.EligibleCards(), nil
}

func (f *Flow) EligibleCards() []models.Card {
	return f.binder.EligibleCards()
}

func (f *Flow) SelectCard(cardID uuid.UUID) (models.Card, error) {
	return f.binder.SelectCard(cardID)
}

func (f *Flow) VerifyCode(code string) bool {
	return f.binder.VerifyCode(code)
}

// SearchCounterparty resolves the recipient and remembers it for Prepare.
// Any failure forgets the previous recipient.
func (f *Flow) SearchCounterparty(ctx context.Context, session Session, accountNumber string) (*Counterparty, error) {
	f.setCounterparty(nil)

	if !session.valid() {
		return nil, newError(KindUnauthorized, "resolve counterparty", ErrNoSession)
	}

	counterparty, err := f.resolver.Resolve(ctx, session, accountNumber)
	if err != nil {
		return nil, err
	}

	f.setCounterparty(counterparty)
	return counterparty, nil
}

// Counterparty returns the recipient found by the last successful search
func (f *Flow) Counterparty() (*Counterparty, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.counterparty == nil {
		return nil, false
	}
	c := *f.counterparty
	return &c, true
}

// CanInitiate is true when the submit action should be enabled
func (f *Flow) CanInitiate(code, amount string) bool {
	if _, ok := f.Counterparty(); !ok {
		return false
	}
	if !f.binder.VerifyCode(code) {
		return false
	}
	_, err := parseAmount(amount)
	return err == nil
}

// Prepare checks input, authorization and recipient, then encrypts the
// transfer. Nothing is encrypted or sent unless every check passes.
func (f *Flow) Prepare(ctx context.Context, session Session, req TransferRequest) (*PreparedTransfer, error) {
	const op = "prepare transfer"

	if !session.valid() {
		return nil, newError(KindUnauthorized, op, ErrNoSession)
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, newError(KindValidation, op, err)
	}

	card, ok := f.binder.Selected()
	if !ok {
		return nil, newError(KindAuthorization, op, ErrNoCardSelected)
	}
	if !f.binder.VerifyCode(req.Code) {
		return nil, newError(KindAuthorization, op, ErrCodeMismatch)
	}

	counterparty, ok := f.Counterparty()
	if !ok {
		return nil, newError(KindValidation, op, ErrNoCounterparty)
	}

	sender, err := f.senderAccount(ctx, session)
	if err != nil {
		return nil, err
	}
	if sender.ID == counterparty.Account.ID {
		return nil, newError(KindAuthorization, op, ErrSelfTransfer)
	}

	intent := models.TransferIntent{
		FromAccountID: sender.ID,
		ToAccountID:   counterparty.Account.ID,
		Amount:        amount,
		Type:          models.TransferTypeTransfer,
		CardID:        card.ID,
	}
	if err := intent.Validate(); err != nil {
		return nil, newError(KindValidation, op, err)
	}

	sealed, err := f.encryptor.Seal(intent, f.key)
	if err != nil {
		return nil, newError(KindCrypto, op, err)
	}

	f.logger.DebugContext(ctx, "transfer prepared",
		"user_id", session.UserID.String(),
		"amount", amount.StringFixed(2),
	)

	return &PreparedTransfer{
		Payload:      sealed,
		Amount:       amount,
		Counterparty: *counterparty,
	}, nil
}

// Submit sends a prepared transfer. After a network failure call Submit
// again with the same PreparedTransfer; never prepare a new one for the
// same attempt.
func (f *Flow) Submit(ctx context.Context, session Session, prepared *PreparedTransfer) (*SubmitAck, error) {
	if !session.valid() {
		return nil, newError(KindUnauthorized, "submit transfer", ErrNoSession)
	}

	ack, err := f.submitter.Submit(ctx, session, prepared)
	if err != nil {
		f.logger.WarnContext(ctx, "transfer submission failed",
			"user_id", session.UserID.String(),
			"kind", KindOf(err).String(),
			"error", err.Error(),
		)
		return nil, err
	}

	f.logger.InfoContext(ctx, "transfer submitted",
		"user_id", session.UserID.String(),
		"transfer_id", ack.TransferID.String(),
		"status", ack.Status,
	)
	return ack, nil
}

// ToggleCard flips a card's active flag on the server. The local list only
// changes once the server has acknowledged the update.
func (f *Flow) ToggleCard(ctx context.Context, session Session, cardID uuid.UUID) (models.Card, error) {
	const op = "toggle card"

	if !session.valid() {
		return models.Card{}, newError(KindUnauthorized, op, ErrNoSession)
	}

	var current *models.Card
	for _, card := range f.binder.Cards() {
		if card.ID == cardID {
			c := card
			current = &c
			break
		}
	}
	if current == nil {
		return models.Card{}, newError(KindLookup, op, ErrCardNotFound)
	}

	updated, err := f.api.SetCardActive(ctx, session, cardID, !current.IsActive)
	if err != nil {
		return models.Card{}, fromAPI(op, err)
	}

	f.binder.ReplaceCard(*updated)
	return *updated, nil
}

func (f *Flow) senderAccount(ctx context.Context, session Session) (models.Account, error) {
	const op = "load sender account"

	accounts, err := f.api.AccountsByOwner(ctx, session)
	if err != nil {
		return models.Account{}, fromAPI(op, err)
	}
	if len(accounts) == 0 {
		return models.Account{}, newError(KindLookup, op, ErrSenderAccountNotFound)
	}
	return accounts[0], nil
}

func (f *Flow) setCounterparty(c *Counterparty) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counterparty = c
}

// parseAmount accepts a positive decimal with at most two fraction digits
// that fits models.MaxTransferAmount
func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) || amount.GreaterThan(models.MaxTransferAmount) {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}
