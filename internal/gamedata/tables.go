package gamedata

import (
	"fmt"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// TierRow is one potion tier as stored in the data file
type TierRow struct {
	Name                domain.PotionTier `json:"name" yaml:"name"`
	domain.PotionValues `yaml:",inline"`
}

// SuccessRow is the success entry of one gear level as stored in the data file
type SuccessRow struct {
	Level               int `json:"level" yaml:"level"`
	domain.SuccessEntry `yaml:",inline"`
}

// Tables holds every static lookup table used by the calculators.
// A Tables value is read-only after Parse returns and is safe for concurrent readers.
type Tables struct {
	Version            string                        `json:"version" yaml:"version"`
	TotalXP            []int64                       `json:"total_xp" yaml:"total_xp"`
	PotionTiers        []TierRow                     `json:"potion_tiers" yaml:"potion_tiers"`
	Recipes            []domain.Recipe               `json:"recipes" yaml:"recipes"`
	CrystalsPerAttempt map[domain.Slot]int64         `json:"crystals_per_attempt" yaml:"crystals_per_attempt"`
	Success            []SuccessRow                  `json:"success" yaml:"success"`
	TransferCosts      map[int]map[domain.Slot]int64 `json:"transfer_costs" yaml:"transfer_costs"`

	tiers   map[domain.PotionTier]domain.PotionValues
	success [domain.MaxGearLevel + 1]domain.SuccessEntry
}

// index builds the lookup structures used by the accessors
func (t *Tables) index() {
	t.tiers = make(map[domain.PotionTier]domain.PotionValues, len(t.PotionTiers))
	for _, row := range t.PotionTiers {
		t.tiers[row.Name] = row.PotionValues
	}
	for _, row := range t.Success {
		if row.Level >= 1 && row.Level <= domain.MaxGearLevel {
			t.success[row.Level] = row.SuccessEntry
		}
	}
}

// TotalXPAt returns the cumulative XP needed to reach level
func (t *Tables) TotalXPAt(level int) (int64, bool) {
	if level < 0 || level >= len(t.TotalXP) {
		return 0, false
	}
	return t.TotalXP[level], true
}

// Tier returns the potion values of a tier
func (t *Tables) Tier(tier domain.PotionTier) (domain.PotionValues, bool) {
	v, ok := t.tiers[tier]
	return v, ok
}

// Tiers lists the tier names in file order
func (t *Tables) Tiers() []domain.PotionTier {
	out := make([]domain.PotionTier, 0, len(t.PotionTiers))
	for _, row := range t.PotionTiers {
		out = append(out, row.Name)
	}
	return out
}

// Recipe looks up a recipe by name, ignoring case and accents
func (t *Tables) Recipe(name string) (domain.Recipe, error) {
	want := domain.NormalizeKey(name)
	for _, r := range t.Recipes {
		if domain.NormalizeKey(r.Name) == want {
			return r, nil
		}
	}
	return domain.Recipe{}, fmt.Errorf("%w: %q", domain.ErrUnknownRecipe, name)
}

// RecipeNames lists the recipe names in file order
func (t *Tables) RecipeNames() []string {
	out := make([]string, 0, len(t.Recipes))
	for _, r := range t.Recipes {
		out = append(out, r.Name)
	}
	return out
}

// CrystalsFor returns the crystals one upgrade attempt consumes for slot, or 0 for an unknown slot
func (t *Tables) CrystalsFor(slot domain.Slot) int64 {
	return t.CrystalsPerAttempt[slot]
}

// SuccessAt returns the success entry of a gear level in 1..16
func (t *Tables) SuccessAt(level int) (domain.SuccessEntry, bool) {
	if level < 1 || level > domain.MaxGearLevel {
		return domain.SuccessEntry{}, false
	}
	return t.success[level], true
}

// TransferCostAt returns the gem cost for slot in the bracket ending at bracket, or 0 when absent
func (t *Tables) TransferCostAt(bracket int, slot domain.Slot) int64 {
	return t.TransferCosts[bracket][slot]
}
