// Package calculator is the facade the HTTP, CLI and Discord shells call.
// It resolves loose user input into closed enums, runs the engines, records metrics
// and remembers inputs in the preference store when asked to.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GLATools_Go/internal/crafting"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/experience"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/logger"
	"github.com/osse101/GLATools_Go/internal/metrics"
	"github.com/osse101/GLATools_Go/internal/preferences"
	"github.com/osse101/GLATools_Go/internal/upgrade"
)

// ExperienceInput selects a level range and potion tier. An empty tier uses the default tier.
type ExperienceInput struct {
	StartLevel int
	EndLevel   int
	Tier       string
	Remember   bool
}

// RecipeInput selects a recipe batch. An empty recipe uses the first recipe in the tables.
type RecipeInput struct {
	Recipe        string
	BatchQuantity int64
	SalePrice     int64
	Remember      bool
}

// CrystalsInput selects a slot, its current level and the crystal prices
type CrystalsInput struct {
	Slot         string
	CurrentLevel int
	Prices       preferences.CrystalPrices
	Remember     bool
}

// SimulationInput describes a Monte Carlo run. When Level is set the success entry of that
// gear level is used; otherwise Probability and Guarantee are used as given.
type SimulationInput struct {
	Level       int
	Probability float64
	Guarantee   int
	Trials      int
	Seed        *uint64
}

// Service defines the calculator operations available to shells
type Service interface {
	Experience(ctx context.Context, in ExperienceInput) (domain.ExperienceResult, error)
	Potions(ctx context.Context, xp float64, tier string) (domain.PotionCounts, error)
	Recipe(ctx context.Context, in RecipeInput) (domain.RecipeResult, error)
	Recipes(ctx context.Context) []domain.Recipe
	Crystals(ctx context.Context, in CrystalsInput) (domain.UpgradePlan, error)
	ExpectedCrystals(ctx context.Context, slot string, level int) (domain.LevelExpectation, error)
	TransferCost(ctx context.Context, slot string, level int) (int64, error)
	Simulate(ctx context.Context, in SimulationInput) (domain.SimulationStats, error)
	Tables(ctx context.Context) *gamedata.Tables
	Preferences(ctx context.Context) (preferences.Preferences, error)
	SavePreferences(ctx context.Context, p preferences.Preferences) (preferences.Preferences, error)
	SetActiveTab(ctx context.Context, tab string) error
}

type service struct {
	tables  *gamedata.Tables
	xp      *experience.Engine
	upgrade *upgrade.Engine
	store   preferences.Store

	// mu serializes preference writes so concurrent load-update-save cycles don't lose fields
	mu sync.Mutex
}

// NewService creates a calculator service. store may be nil for shells that remember nothing.
func NewService(tables *gamedata.Tables, store preferences.Store) Service {
	return &service{
		tables:  tables,
		xp:      experience.NewEngine(tables),
		upgrade: upgrade.NewEngine(tables),
		store:   store,
	}
}

func (s *service) Experience(ctx context.Context, in ExperienceInput) (res domain.ExperienceResult, err error) {
	defer observe(metrics.CalculatorExperience, time.Now(), &err)

	tier, err := s.parseTier(in.Tier)
	if err != nil {
		return domain.ExperienceResult{}, err
	}
	res, err = s.xp.Plan(in.StartLevel, in.EndLevel, tier)
	if err != nil {
		return domain.ExperienceResult{}, err
	}

	if values, ok := s.tables.Tier(tier); ok {
		if rest := experience.Remainder(res.XPNeeded, values, res.Potions); rest > 0 {
			logger.FromContext(ctx).Debug("XP left uncovered by potions", "xp", res.XPNeeded, "remainder", rest, "tier", tier)
		}
	}
	logger.FromContext(ctx).Debug("Experience calculated",
		"start", in.StartLevel, "end", in.EndLevel, "tier", tier, "xp", res.XPNeeded)

	if in.Remember {
		s.remember(ctx, func(p *preferences.Preferences) {
			p.LastTab = domain.TabExperience
			p.Tier = tier
			p.StartLevel = in.StartLevel
			p.EndLevel = in.EndLevel
		})
	}
	return res, nil
}

func (s *service) Potions(ctx context.Context, xp float64, tier string) (counts domain.PotionCounts, err error) {
	defer observe(metrics.CalculatorPotions, time.Now(), &err)

	t, err := s.parseTier(tier)
	if err != nil {
		return domain.PotionCounts{}, err
	}
	return s.xp.PotionsForXP(xp, t)
}

func (s *service) Recipe(ctx context.Context, in RecipeInput) (res domain.RecipeResult, err error) {
	defer observe(metrics.CalculatorRecipe, time.Now(), &err)

	recipe, err := s.findRecipe(in.Recipe)
	if err != nil {
		return domain.RecipeResult{}, err
	}
	batch := nonNegative(in.BatchQuantity)
	price := nonNegative(in.SalePrice)
	res = crafting.Compute(recipe, batch, price)

	logger.FromContext(ctx).Debug("Recipe calculated",
		"recipe", recipe.Name, "batch", batch, "price", price, "profit", res.Profit)

	if in.Remember {
		s.remember(ctx, func(p *preferences.Preferences) {
			p.LastTab = domain.TabRecipes
			p.Recipe = recipe.Name
			p.BatchQuantity = batch
			p.SalePrice = price
		})
	}
	return res, nil
}

func (s *service) Recipes(_ context.Context) []domain.Recipe {
	out := make([]domain.Recipe, len(s.tables.Recipes))
	copy(out, s.tables.Recipes)
	return out
}

func (s *service) Crystals(ctx context.Context, in CrystalsInput) (plan domain.UpgradePlan, err error) {
	defer observe(metrics.CalculatorCrystals, time.Now(), &err)

	slot, err := s.parseSlot(in.Slot)
	if err != nil {
		return domain.UpgradePlan{}, err
	}
	prices := sanitizePrices(in.Prices)
	plan = s.upgrade.PlanUpgradePath(slot, in.CurrentLevel, prices.ByType())

	logger.FromContext(ctx).Debug("Crystal plan calculated",
		"slot", slot, "current_level", plan.CurrentLevel, "steps", len(plan.Steps),
		"crystals_low", plan.TotalCrystalsLow, "crystals_high", plan.TotalCrystalsHigh)

	if in.Remember {
		s.remember(ctx, func(p *preferences.Preferences) {
			p.LastTab = domain.TabCrystals
			p.Slot = slot
			p.GearLevel = plan.CurrentLevel
			p.CrystalPrices = prices
		})
	}
	return plan, nil
}

func (s *service) ExpectedCrystals(_ context.Context, slot string, level int) (le domain.LevelExpectation, err error) {
	defer observe(metrics.CalculatorExpected, time.Now(), &err)

	sl, err := s.parseSlot(slot)
	if err != nil {
		return domain.LevelExpectation{}, err
	}
	return s.upgrade.LevelExpectation(sl, level), nil
}

func (s *service) TransferCost(_ context.Context, slot string, level int) (cost int64, err error) {
	defer observe(metrics.CalculatorTransfer, time.Now(), &err)

	sl, err := s.parseSlot(slot)
	if err != nil {
		return 0, err
	}
	return s.upgrade.TransferCost(sl, level), nil
}

func (s *service) Simulate(ctx context.Context, in SimulationInput) (stats domain.SimulationStats, err error) {
	defer observe(metrics.CalculatorSimulation, time.Now(), &err)

	p, g := in.Probability, in.Guarantee
	if in.Level != 0 {
		entry, ok := s.tables.SuccessAt(in.Level)
		if !ok {
			return domain.SimulationStats{}, fmt.Errorf("%w: gear level must be in 1..%d, got %d",
				domain.ErrInvalidInput, domain.MaxGearLevel, in.Level)
		}
		p, g = entry.Probability, entry.Guarantee
	}

	rng := upgrade.NewRNG()
	if in.Seed != nil {
		rng = upgrade.NewSeededRNG(*in.Seed)
	}

	stats, err = upgrade.Simulate(ctx, p, g, in.Trials, rng)
	if err != nil {
		return domain.SimulationStats{}, err
	}
	metrics.SimulationTrials.Add(float64(stats.Trials))
	logger.FromContext(ctx).Debug("Simulation finished",
		"probability", p, "guarantee", g, "trials", stats.Trials, "mean", stats.Mean, "expected", stats.Expected)
	return stats, nil
}

func (s *service) Tables(_ context.Context) *gamedata.Tables {
	return s.tables
}

func (s *service) Preferences(ctx context.Context) (preferences.Preferences, error) {
	defaults := s.defaults()
	if s.store == nil {
		return defaults, nil
	}
	p, err := preferences.Load(ctx, s.store, defaults)
	if err != nil {
		return defaults, err
	}
	if _, err := s.tables.Recipe(p.Recipe); err != nil {
		p.Recipe = defaults.Recipe
	}
	return p, nil
}

func (s *service) SavePreferences(ctx context.Context, p preferences.Preferences) (preferences.Preferences, error) {
	if s.store == nil {
		return preferences.Preferences{}, domain.ErrStoreUnavailable
	}
	normalized, err := s.normalize(p)
	if err != nil {
		return preferences.Preferences{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, normalized); err != nil {
		return preferences.Preferences{}, err
	}
	logger.FromContext(ctx).Info("Preferences saved", "tab", normalized.LastTab)
	return normalized, nil
}

func (s *service) SetActiveTab(ctx context.Context, tab string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	t, err := domain.ParseTab(tab)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.PreferenceWrites.Inc()
	if err := preferences.SaveTab(ctx, s.store, t); err != nil {
		metrics.PreferenceWriteErrors.Inc()
		return err
	}
	logger.FromContext(ctx).Info("Active tab saved", "tab", t)
	return nil
}

// remember applies update to the stored preferences. Failures are logged, never returned:
// a calculation must not fail because its inputs could not be remembered.
func (s *service) remember(ctx context.Context, update func(*preferences.Preferences)) {
	if s.store == nil {
		return
	}
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.Preferences(ctx)
	if err != nil {
		log.Warn("Failed to load preferences", "error", err)
		metrics.PreferenceWriteErrors.Inc()
		return
	}
	update(&p)
	if err := s.save(ctx, p); err != nil {
		log.Warn("Failed to remember inputs", "error", err)
		return
	}
	log.Info("Preferences saved", "tab", p.LastTab)
}

func (s *service) save(ctx context.Context, p preferences.Preferences) error {
	metrics.PreferenceWrites.Inc()
	if err := preferences.Save(ctx, s.store, p); err != nil {
		metrics.PreferenceWriteErrors.Inc()
		return err
	}
	return nil
}

func (s *service) defaults() preferences.Preferences {
	var first string
	if len(s.tables.Recipes) > 0 {
		first = s.tables.Recipes[0].Name
	}
	return preferences.Defaults(first)
}

// normalize resolves every name in p to its canonical form and coerces numbers into range
func (s *service) normalize(p preferences.Preferences) (preferences.Preferences, error) {
	out := p
	var err error
	if p.LastTab == "" {
		out.LastTab = domain.DefaultTab
	} else if out.LastTab, err = domain.ParseTab(string(p.LastTab)); err != nil {
		return preferences.Preferences{}, err
	}
	if out.Tier, err = s.parseTier(string(p.Tier)); err != nil {
		return preferences.Preferences{}, err
	}
	if out.Slot, err = s.parseSlot(string(p.Slot)); err != nil {
		return preferences.Preferences{}, err
	}
	recipe, err := s.findRecipe(p.Recipe)
	if err != nil {
		return preferences.Preferences{}, err
	}
	out.Recipe = recipe.Name
	out.GearLevel = domain.ClampGearLevel(p.GearLevel)
	out.BatchQuantity = nonNegative(p.BatchQuantity)
	out.SalePrice = nonNegative(p.SalePrice)
	out.CrystalPrices = sanitizePrices(p.CrystalPrices)
	return out, nil
}

func (s *service) parseTier(tier string) (domain.PotionTier, error) {
	if tier == "" {
		return domain.DefaultTier, nil
	}
	return domain.ParsePotionTier(tier)
}

func (s *service) parseSlot(slot string) (domain.Slot, error) {
	if slot == "" {
		return domain.DefaultSlot, nil
	}
	return domain.ParseSlot(slot)
}

func (s *service) findRecipe(name string) (domain.Recipe, error) {
	if name == "" && len(s.tables.Recipes) > 0 {
		return s.tables.Recipes[0], nil
	}
	return s.tables.Recipe(name)
}

func sanitizePrices(c preferences.CrystalPrices) preferences.CrystalPrices {
	return preferences.CrystalPrices{
		Sky:     nonNegative(c.Sky),
		Sage:    nonNegative(c.Sage),
		Crimson: nonNegative(c.Crimson),
		Radiant: nonNegative(c.Radiant),
	}
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// observe records the outcome of one calculation
func observe(calculator string, start time.Time, err *error) {
	metrics.CalculationDuration.WithLabelValues(calculator).Observe(time.Since(start).Seconds())
	if *err != nil {
		metrics.CalculationErrors.WithLabelValues(calculator, errorReason(*err)).Inc()
		return
	}
	metrics.CalculationsTotal.WithLabelValues(calculator).Inc()
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, domain.ErrUnknownKey):
		return "unknown_key"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	default:
		return "other"
	}
}
