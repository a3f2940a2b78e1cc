package domain

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey folds case and strips diacritics so "calca", "CALÇA" and "Calça" compare equal.
// Transformers and casers are stateful, so a fresh chain is built per call.
func NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// parseKey matches s against the known names (and optional aliases) of a closed set
func parseKey[T ~string](s string, known []T, aliases map[string]T, sentinel error) (T, error) {
	want := NormalizeKey(s)
	for _, k := range known {
		if NormalizeKey(string(k)) == want {
			return k, nil
		}
	}
	if v, ok := aliases[want]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", sentinel, s)
}

// PotionTier is a named grade of experience potion
type PotionTier string

const (
	TierDiamond PotionTier = "Diamante"
	TierGold    PotionTier = "Ouro"
	TierSilver  PotionTier = "Prata"
	TierBronze  PotionTier = "Bronze"
)

// PotionTiers lists every tier in display order
var PotionTiers = []PotionTier{TierDiamond, TierGold, TierSilver, TierBronze}

var tierAliases = map[string]PotionTier{
	"diamond": TierDiamond,
	"gold":    TierGold,
	"silver":  TierSilver,
}

// ParsePotionTier resolves a tier name, returning ErrUnknownTier when it is not recognized
func ParsePotionTier(s string) (PotionTier, error) {
	return parseKey(s, PotionTiers, tierAliases, ErrUnknownTier)
}

// Slot is an equipment category with its own crystal cost per upgrade attempt
type Slot string

const (
	SlotEmblem   Slot = "Emblema"
	SlotHelmet   Slot = "Capacete"
	SlotPants    Slot = "Calça"
	SlotChest    Slot = "Peito"
	SlotWeapon   Slot = "Arma"
	SlotNecklace Slot = "Colar"
)

// Slots lists every equipment slot in display order
var Slots = []Slot{SlotEmblem, SlotHelmet, SlotPants, SlotChest, SlotWeapon, SlotNecklace}

var slotAliases = map[string]Slot{
	"emblem":   SlotEmblem,
	"helmet":   SlotHelmet,
	"pants":    SlotPants,
	"chest":    SlotChest,
	"weapon":   SlotWeapon,
	"necklace": SlotNecklace,
}

// ParseSlot resolves a slot name, returning ErrUnknownSlot when it is not recognized
func ParseSlot(s string) (Slot, error) {
	return parseKey(s, Slots, slotAliases, ErrUnknownSlot)
}

// CrystalType is the crystal consumed when upgrading within a level bracket
type CrystalType string

const (
	CrystalSky     CrystalType = "Cristais do Céu"
	CrystalSage    CrystalType = "Cristais do Sábio"
	CrystalCrimson CrystalType = "Cristais Carmesim"
	CrystalRadiant CrystalType = "Cristais Radiante"
)

// CrystalTypes lists every crystal type from the lowest bracket to the highest
var CrystalTypes = []CrystalType{CrystalSky, CrystalSage, CrystalCrimson, CrystalRadiant}

var crystalAliases = map[string]CrystalType{
	"ceu":      CrystalSky,
	"sky":      CrystalSky,
	"sabio":    CrystalSage,
	"sage":     CrystalSage,
	"carmesim": CrystalCrimson,
	"crimson":  CrystalCrimson,
	"radiante": CrystalRadiant,
	"radiant":  CrystalRadiant,
}

// ShortKey returns the compact identifier used by shells for form fields and flags
func (c CrystalType) ShortKey() string {
	switch c {
	case CrystalSky:
		return "ceu"
	case CrystalSage:
		return "sabio"
	case CrystalCrimson:
		return "carmesim"
	case CrystalRadiant:
		return "radiante"
	}
	return ""
}

// ParseCrystalType resolves a crystal type by display name or short key
func ParseCrystalType(s string) (CrystalType, error) {
	return parseKey(s, CrystalTypes, crystalAliases, ErrUnknownCrystalType)
}

// Tab is one of the calculator screens of a presentation shell
type Tab string

const (
	TabMenu       Tab = "menu"
	TabExperience Tab = "exp"
	TabRecipes    Tab = "receitas"
	TabCrystals   Tab = "cristais"
)

// Tabs lists every screen
var Tabs = []Tab{TabMenu, TabExperience, TabRecipes, TabCrystals}

// ParseTab resolves a tab name, returning ErrUnknownTab when it is not recognized
func ParseTab(s string) (Tab, error) {
	return parseKey(s, Tabs, nil, ErrUnknownTab)
}
