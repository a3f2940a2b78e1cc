package upgrade

import (
	"math"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/gamedata"
)

// Prices maps each crystal type to the market price of one crystal. Missing types cost 0.
type Prices map[domain.CrystalType]int64

// Engine computes crystal costs of gear upgrades from the static success and cost tables.
// It holds no mutable state and may be shared between goroutines.
type Engine struct {
	tables *gamedata.Tables
}

// NewEngine creates an upgrade engine over the given tables
func NewEngine(tables *gamedata.Tables) *Engine {
	return &Engine{tables: tables}
}

// ExpectedAttempts returns the mean number of attempts until success when each attempt
// succeeds with probability p and attempt number guarantee always succeeds:
//
//	E = sum(k * q^(k-1) * p, k = 1..g-1) + g * q^(g-1), q = 1-p
func ExpectedAttempts(p float64, guarantee int) float64 {
	if guarantee < 1 {
		guarantee = 1
	}
	p = math.Max(0, math.Min(1, p))
	q := 1 - p

	var e float64
	qPow := 1.0 // q^(k-1)
	for k := 1; k < guarantee; k++ {
		e += float64(k) * qPow * p
		qPow *= q
	}
	return e + float64(guarantee)*qPow
}

// CrystalsPerAttempt returns the crystals one attempt on slot consumes, 0 for an unknown slot
func (e *Engine) CrystalsPerAttempt(slot domain.Slot) int64 {
	return e.tables.CrystalsFor(slot)
}

// ExpectedCrystalsForLevel is the mean crystal cost of reaching level on slot.
// Levels below 1 cost nothing and levels above 16 are priced as 16.
func (e *Engine) ExpectedCrystalsForLevel(slot domain.Slot, level int) float64 {
	entry, ok := e.entry(level)
	if !ok {
		return 0
	}
	return ExpectedAttempts(entry.Probability, entry.Guarantee) * float64(e.CrystalsPerAttempt(slot))
}

// MaxCrystalsForLevel is the crystal cost of reaching level when every attempt before the guarantee fails
func (e *Engine) MaxCrystalsForLevel(slot domain.Slot, level int) float64 {
	entry, ok := e.entry(level)
	if !ok {
		return 0
	}
	return float64(e.CrystalsPerAttempt(slot) * int64(entry.Guarantee))
}

func (e *Engine) entry(level int) (domain.SuccessEntry, bool) {
	if level < 1 {
		return domain.SuccessEntry{}, false
	}
	if level > domain.MaxGearLevel {
		level = domain.MaxGearLevel
	}
	return e.tables.SuccessAt(level)
}

// CrystalTypeForLevel returns the crystal consumed when upgrading to level
func CrystalTypeForLevel(level int) domain.CrystalType {
	switch {
	case level >= 1 && level <= 4:
		return domain.CrystalSky
	case level >= 5 && level <= 8:
		return domain.CrystalSage
	case level >= 9 && level <= 12:
		return domain.CrystalCrimson
	default:
		return domain.CrystalRadiant
	}
}

// TransferCost returns the gem cost of moving a boost of the given level on slot.
// The level is mapped to the smallest bracket boundary not below it.
func (e *Engine) TransferCost(slot domain.Slot, level int) int64 {
	if level <= 0 {
		return 0
	}
	bracket := domain.TransferBrackets[len(domain.TransferBrackets)-1]
	for _, b := range domain.TransferBrackets {
		if level <= b {
			bracket = b
			break
		}
	}
	return e.tables.TransferCostAt(bracket, slot)
}

// PlanUpgradePath prices every level from currentLevel+1 to 16 on slot.
// currentLevel is clamped to [0,16]; a slot already at 16 yields an empty plan.
// Crystal totals are floored once over the summed unrounded values.
func (e *Engine) PlanUpgradePath(slot domain.Slot, currentLevel int, prices Prices) domain.UpgradePlan {
	current := domain.ClampGearLevel(currentLevel)
	plan := domain.UpgradePlan{
		Slot:         slot,
		CurrentLevel: current,
		TransferCost: e.TransferCost(slot, current),
		Steps:        make([]domain.UpgradeStep, 0, domain.MaxGearLevel-current),
	}

	type acc struct {
		expected, max     float64
		costLow, costHigh int64
	}
	byType := make(map[domain.CrystalType]*acc, len(domain.CrystalTypes))
	var sumExpected, sumMax float64

	for level := current + 1; level <= domain.MaxGearLevel; level++ {
		expected := e.ExpectedCrystalsForLevel(slot, level)
		maxCrystals := e.MaxCrystalsForLevel(slot, level)
		ct := CrystalTypeForLevel(level)
		price := prices[ct]

		step := domain.UpgradeStep{
			Level:            level,
			CrystalType:      ct,
			ExpectedCrystals: expected,
			CrystalsLow:      int64(math.Floor(expected)),
			CrystalsHigh:     int64(math.Floor(maxCrystals)),
			UnitPrice:        price,
		}
		step.CostLow = step.CrystalsLow * price
		step.CostHigh = step.CrystalsHigh * price
		plan.Steps = append(plan.Steps, step)

		sumExpected += expected
		sumMax += maxCrystals
		plan.TotalCostLow += step.CostLow
		plan.TotalCostHigh += step.CostHigh

		a, ok := byType[ct]
		if !ok {
			a = &acc{}
			byType[ct] = a
		}
		a.expected += expected
		a.max += maxCrystals
		a.costLow += step.CostLow
		a.costHigh += step.CostHigh
	}

	plan.TotalCrystalsLow = int64(math.Floor(sumExpected))
	plan.TotalCrystalsHigh = int64(math.Floor(sumMax))

	plan.ByCrystalType = make([]domain.CrystalTypeTotals, 0, len(byType))
	for _, ct := range domain.CrystalTypes {
		a, ok := byType[ct]
		if !ok {
			continue
		}
		plan.ByCrystalType = append(plan.ByCrystalType, domain.CrystalTypeTotals{
			CrystalType:  ct,
			CrystalsLow:  int64(math.Floor(a.expected)),
			CrystalsHigh: int64(math.Floor(a.max)),
			CostLow:      a.costLow,
			CostHigh:     a.costHigh,
		})
	}

	return plan
}

// LevelExpectation describes the cost of reaching a single level on slot.
// Levels above 16 are described as 16; levels below 1 return only the slot and level.
func (e *Engine) LevelExpectation(slot domain.Slot, level int) domain.LevelExpectation {
	out := domain.LevelExpectation{
		Slot:               slot,
		Level:              level,
		CrystalsPerAttempt: e.CrystalsPerAttempt(slot),
	}
	entry, ok := e.entry(level)
	if !ok {
		return out
	}
	if out.Level > domain.MaxGearLevel {
		out.Level = domain.MaxGearLevel
	}
	out.CrystalType = CrystalTypeForLevel(out.Level)
	out.Probability = entry.Probability
	out.Guarantee = entry.Guarantee
	out.ExpectedAttempts = ExpectedAttempts(entry.Probability, entry.Guarantee)
	out.ExpectedCrystals = out.ExpectedAttempts * float64(out.CrystalsPerAttempt)
	out.MaxCrystals = float64(out.CrystalsPerAttempt * int64(entry.Guarantee))
	return out
}
