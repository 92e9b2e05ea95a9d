package transferclient

import (
	"crypto/subtle"
	"sync"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
)

// CardBinder holds the user's cards and the one selected to authorize a
// transfer. The entered code is compared against the selected card's UID and
// never stored.
type CardBinder struct {
	mu       sync.RWMutex
	cards    []models.Card
	selected *models.Card
}

func NewCardBinder(cards []models.Card) *CardBinder {
	b := &CardBinder{}
	b.SetCards(cards)
	return b
}

// SetCards replaces the card list. A selection survives only if the card is
// still present and active.
func (b *CardBinder) SetCards(cards []models.Card) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cards = append([]models.Card(nil), cards...)
	if b.selected != nil {
		b.reselect(b.selected.ID)
	}
}

// Cards returns every card, active or not
func (b *CardBinder) Cards() []models.Card {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.Card(nil), b.cards...)
}

// EligibleCards returns the cards that may authorize a transfer
func (b *CardBinder) EligibleCards() []models.Card {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eligible := make([]models.Card, 0, len(b.cards))
	for _, card := range b.cards {
		if card.IsEligible() {
			eligible = append(eligible, card)
		}
	}
	return eligible
}

func (b *CardBinder) SelectCard(cardID uuid.UUID) (models.Card, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.reselect(cardID) {
		return models.Card{}, newError(KindAuthorization, "select card", ErrCardNotFound)
	}
	return *b.selected, nil
}

func (b *CardBinder) Selected() (models.Card, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.selected == nil {
		return models.Card{}, false
	}
	return *b.selected, true
}

// VerifyCode is true iff a card is selected and code equals its UID byte for
// byte. No trimming or case folding.
func (b *CardBinder) VerifyCode(code string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.selected == nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(b.selected.UID), []byte(code)) == 1
}

// ReplaceCard applies a server-acknowledged card update
func (b *CardBinder) ReplaceCard(card models.Card) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.cards {
		if b.cards[i].ID == card.ID {
			b.cards[i] = card
		}
	}
	if b.selected != nil && b.selected.ID == card.ID {
		b.reselect(card.ID)
	}
}

// reselect must be called with mu held
func (b *CardBinder) reselect(cardID uuid.UUID) bool {
	for i := range b.cards {
		if b.cards[i].ID == cardID && b.cards[i].IsEligible() {
			card := b.cards[i]
			b.selected = &card
			return true
		}
	}
	b.selected = nil
	return false
}
