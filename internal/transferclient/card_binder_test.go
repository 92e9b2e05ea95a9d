package transferclient

import (
	"testing"

	"nfc-transfer-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() (active, inactive models.Card) {
	active = models.Card{ID: uuid.New(), UserID: uuid.New(), UID: "1234567890", IsActive: true}
	inactive = models.Card{ID: uuid.New(), UserID: active.UserID, UID: "04B7E3D119", IsActive: false}
	return active, inactive
}

func TestCardBinder_EligibleCards(t *testing.T) {
	active, inactive := testCards()
	binder := NewCardBinder([]models.Card{active, inactive})

	eligible := binder.EligibleCards()
	require.Len(t, eligible, 1)
	assert.Equal(t, active.ID, eligible[0].ID)
	assert.Len(t, binder.Cards(), 2)
}

func TestCardBinder_SelectCard(t *testing.T) {
	active, inactive := testCards()
	binder := NewCardBinder([]models.Card{active, inactive})

	card, err := binder.SelectCard(active.ID)
	require.NoError(t, err)
	assert.Equal(t, active.ID, card.ID)

	_, err = binder.SelectCard(inactive.ID)
	assert.ErrorIs(t, err, ErrCardNotFound)
	assert.True(t, IsKind(err, KindAuthorization))

	_, err = binder.SelectCard(uuid.New())
	assert.ErrorIs(t, err, ErrCardNotFound)
}

func TestCardBinder_VerifyCodeIsExact(t *testing.T) {
	active, _ := testCards()
	active.UID = "04a2B1"
	binder := NewCardBinder([]models.Card{active})

	assert.False(t, binder.VerifyCode("04a2B1"), "no card selected yet")

	_, err := binder.SelectCard(active.ID)
	require.NoError(t, err)

	tests := map[string]bool{
		"04a2B1":   true,
		"04A2B1":   false,
		"04a2b1":   false,
		" 04a2B1":  false,
		"04a2B1 ":  false,
		"04a2B1\n": false,
		"04a2B":    false,
		"04a2B10":  false,
		"":         false,
	}
	for code, want := range tests {
		assert.Equal(t, want, binder.VerifyCode(code), "code %q", code)
	}
}

func TestCardBinder_ReplaceCardDeselectsDeactivated(t *testing.T) {
	active, _ := testCards()
	binder := NewCardBinder([]models.Card{active})
	_, err := binder.SelectCard(active.ID)
	require.NoError(t, err)

	deactivated := active
	deactivated.IsActive = false
	binder.ReplaceCard(deactivated)

	_, ok := binder.Selected()
	assert.False(t, ok)
	assert.Empty(t, binder.EligibleCards())
	assert.False(t, binder.VerifyCode(active.UID))
}

func TestCardBinder_SetCardsKeepsValidSelection(t *testing.T) {
	active, inactive := testCards()
	binder := NewCardBinder([]models.Card{active})
	_, err := binder.SelectCard(active.ID)
	require.NoError(t, err)

	binder.SetCards([]models.Card{inactive, active})

	selected, ok := binder.Selected()
	require.True(t, ok)
	assert.Equal(t, active.ID, selected.ID)
}
