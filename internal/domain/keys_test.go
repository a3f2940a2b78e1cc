package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Calça", "calca"},
		{"CALÇA", "calca"},
		{"  calca ", "calca"},
		{"Cristais do Céu", "cristais do ceu"},
		{"Paella de Camarão", "paella de camarao"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.in))
		})
	}
}

func TestParsePotionTier(t *testing.T) {
	for _, tier := range PotionTiers {
		got, err := ParsePotionTier(NormalizeKey(string(tier)))
		require.NoError(t, err)
		assert.Equal(t, tier, got)
	}

	got, err := ParsePotionTier("Gold")
	require.NoError(t, err)
	assert.Equal(t, TierGold, got)

	_, err = ParsePotionTier("Platina")
	assert.ErrorIs(t, err, ErrUnknownTier)
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), `"Platina"`)
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		in   string
		want Slot
	}{
		{"Emblema", SlotEmblem},
		{"capacete", SlotHelmet},
		{"CALCA", SlotPants},
		{"peito", SlotChest},
		{"weapon", SlotWeapon},
		{"Colar", SlotNecklace},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSlot(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSlot("Botas")
	assert.ErrorIs(t, err, ErrUnknownSlot)
	assert.False(t, errors.Is(err, ErrUnknownTier))
}

func TestParseCrystalType(t *testing.T) {
	for _, ct := range CrystalTypes {
		byName, err := ParseCrystalType(string(ct))
		require.NoError(t, err)
		assert.Equal(t, ct, byName)

		byKey, err := ParseCrystalType(ct.ShortKey())
		require.NoError(t, err)
		assert.Equal(t, ct, byKey)
	}

	assert.Empty(t, CrystalType("Cristais Lunares").ShortKey())
	_, err := ParseCrystalType("lunar")
	assert.ErrorIs(t, err, ErrUnknownCrystalType)
}

func TestParseTab(t *testing.T) {
	got, err := ParseTab("Cristais")
	require.NoError(t, err)
	assert.Equal(t, TabCrystals, got)

	_, err = ParseTab("loja")
	assert.ErrorIs(t, err, ErrUnknownTab)
}

func TestUnknownKeyErrors_WrapParent(t *testing.T) {
	for _, sentinel := range []error{ErrUnknownTier, ErrUnknownRecipe, ErrUnknownSlot, ErrUnknownCrystalType, ErrUnknownTab} {
		wrapped := fmt.Errorf("%w: %q", sentinel, "x")
		assert.ErrorIs(t, wrapped, ErrUnknownKey, sentinel.Error())
		assert.ErrorIs(t, wrapped, sentinel)
	}
	assert.False(t, errors.Is(ErrInvalidRange, ErrUnknownKey))
}
