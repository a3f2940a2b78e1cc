package experience

import (
	"fmt"
	"math"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/gamedata"
)

// Engine answers XP questions against a fixed XP table and potion tier set.
// It holds no mutable state and may be shared between goroutines.
type Engine struct {
	tables *gamedata.Tables
}

// NewEngine creates an experience engine over the given tables
func NewEngine(tables *gamedata.Tables) *Engine {
	return &Engine{tables: tables}
}

// XPNeeded returns the XP required to go from start to end.
// It fails with ErrInvalidRange unless 1 <= start < end <= 140.
func (e *Engine) XPNeeded(start, end int) (int64, error) {
	if start < domain.MinCharacterLevel || start >= end || end > domain.MaxCharacterLevel {
		return 0, fmt.Errorf("%w: start=%d end=%d", domain.ErrInvalidRange, start, end)
	}
	from, ok := e.tables.TotalXPAt(start)
	if !ok {
		return 0, fmt.Errorf("%w: start=%d", domain.ErrInvalidRange, start)
	}
	to, ok := e.tables.TotalXPAt(end)
	if !ok {
		return 0, fmt.Errorf("%w: end=%d", domain.ErrInvalidRange, end)
	}
	return to - from, nil
}

// XPToNextLevel returns the XP between level and level+1
func (e *Engine) XPToNextLevel(level int) (int64, error) {
	return e.XPNeeded(level, level+1)
}

// PotionsForXP greedily splits xp into large, medium and small potions of tier.
// xp is truncated to an integer first; whatever is left below one small potion is dropped.
func (e *Engine) PotionsForXP(xp float64, tier domain.PotionTier) (domain.PotionCounts, error) {
	values, ok := e.tables.Tier(tier)
	if !ok {
		return domain.PotionCounts{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	return splitPotions(truncateXP(xp), values), nil
}

// Plan combines XPNeeded and PotionsForXP for one level range
func (e *Engine) Plan(start, end int, tier domain.PotionTier) (domain.ExperienceResult, error) {
	values, ok := e.tables.Tier(tier)
	if !ok {
		return domain.ExperienceResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	xp, err := e.XPNeeded(start, end)
	if err != nil {
		return domain.ExperienceResult{}, err
	}
	return domain.ExperienceResult{
		Tier:       tier,
		StartLevel: start,
		EndLevel:   end,
		XPNeeded:   xp,
		Potions:    splitPotions(xp, values),
	}, nil
}

// Remainder returns the XP a greedy split of xp leaves uncovered
func Remainder(xp int64, values domain.PotionValues, counts domain.PotionCounts) int64 {
	return xp - counts.Large*values.Large - counts.Medium*values.Medium - counts.Small*values.Small
}

func splitPotions(xp int64, values domain.PotionValues) domain.PotionCounts {
	if xp <= 0 {
		return domain.PotionCounts{}
	}
	large := xp / values.Large
	r1 := xp % values.Large
	medium := r1 / values.Medium
	r2 := r1 % values.Medium
	return domain.PotionCounts{
		Large:  large,
		Medium: medium,
		Small:  r2 / values.Small,
	}
}

func truncateXP(xp float64) int64 {
	if math.IsNaN(xp) || xp <= 0 {
		return 0
	}
	if xp >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Trunc(xp))
}
