package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCard_Validate(t *testing.T) {
	assert.NoError(t, (&Card{UserID: uuid.New(), UID: "04A224B1C2"}).Validate())
	assert.ErrorIs(t, (&Card{UID: "04A224B1C2"}).Validate(), ErrCardOwnerRequired)
	assert.ErrorIs(t, (&Card{UserID: uuid.New()}).Validate(), ErrCardUIDRequired)
}

func TestCard_IsEligible(t *testing.T) {
	assert.True(t, (&Card{IsActive: true}).IsEligible())
	assert.False(t, (&Card{IsActive: false}).IsEligible())
}

func TestCard_DisplayName(t *testing.T) {
	name := "Travel card"
	named := &Card{ID: uuid.New(), UID: "04A224B1C2", CardName: &name}
	assert.Equal(t, "Travel card", named.DisplayName())

	unnamed := &Card{ID: uuid.MustParse("6f1c1c7e-1234-4d5e-8f00-aabbccddeeff"), UID: "04A224B1C2"}
	assert.Equal(t, "Card 6f1c1c7e", unnamed.DisplayName())
	assert.NotContains(t, unnamed.DisplayName(), "B1C2")
}

func TestProfile_FullName(t *testing.T) {
	first, last := "Marie", "Curie"

	assert.Equal(t, "Marie Curie", (&Profile{FirstName: &first, LastName: &last}).FullName())
	assert.Equal(t, "Marie", (&Profile{FirstName: &first}).FullName())
	assert.Equal(t, "", (&Profile{}).FullName())
}
