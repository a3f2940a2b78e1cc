package calculator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

func newTestService(t *testing.T, store preferences.Store) Service {
	t.Helper()
	tables, err := gamedata.Default()
	require.NoError(t, err)
	return NewService(tables, store)
}

func newMemoryStore(t *testing.T) *preferences.MemoryStore {
	t.Helper()
	store, err := preferences.NewMemoryStore(preferences.DefaultMemoryCapacity)
	require.NoError(t, err)
	return store
}

func TestExperience(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	t.Run("default tier", func(t *testing.T) {
		res, err := svc.Experience(ctx, ExperienceInput{StartLevel: 1, EndLevel: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.TierDiamond, res.Tier)
		assert.Equal(t, int64(98), res.XPNeeded)
	})

	t.Run("tier name is accent and case insensitive", func(t *testing.T) {
		res, err := svc.Experience(ctx, ExperienceInput{StartLevel: 10, EndLevel: 20, Tier: "OURO"})
		require.NoError(t, err)
		assert.Equal(t, domain.TierGold, res.Tier)
		assert.Equal(t, int64(98660-9230), res.XPNeeded)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := svc.Experience(ctx, ExperienceInput{StartLevel: 20, EndLevel: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("unknown tier", func(t *testing.T) {
		_, err := svc.Experience(ctx, ExperienceInput{StartLevel: 1, EndLevel: 2, Tier: "Platina"})
		assert.ErrorIs(t, err, domain.ErrUnknownTier)
		assert.ErrorIs(t, err, domain.ErrUnknownKey)
	})
}

func TestPotions(t *testing.T) {
	svc := newTestService(t, nil)

	counts, err := svc.Potions(context.Background(), 123456, "Ouro")
	require.NoError(t, err)
	assert.Equal(t, domain.PotionCounts{Large: 1, Medium: 2, Small: 3}, counts)
}

func TestRecipe(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	t.Run("empty name uses first recipe", func(t *testing.T) {
		res, err := svc.Recipe(ctx, RecipeInput{BatchQuantity: 100, SalePrice: 3200})
		require.NoError(t, err)
		assert.Equal(t, "Paella de Camarão", res.Recipe)
		assert.Equal(t, int64(325000), res.TotalCost)
		assert.Equal(t, int64(-14600), res.Profit)
	})

	t.Run("negative inputs are coerced to zero", func(t *testing.T) {
		res, err := svc.Recipe(ctx, RecipeInput{Recipe: "frango teriyaki", BatchQuantity: -5, SalePrice: -1})
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.BatchQuantity)
		assert.Equal(t, int64(0), res.SalePrice)
		assert.Equal(t, int64(0), res.Profit)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		_, err := svc.Recipe(ctx, RecipeInput{Recipe: "Sopa"})
		assert.ErrorIs(t, err, domain.ErrUnknownRecipe)
	})
}

func TestRecipes_ReturnsCopy(t *testing.T) {
	svc := newTestService(t, nil)

	recipes := svc.Recipes(context.Background())
	require.Len(t, recipes, 2)
	recipes[0].Name = "changed"
	assert.Equal(t, "Paella de Camarão", svc.Recipes(context.Background())[0].Name)
}

func TestCrystals(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	plan, err := svc.Crystals(ctx, CrystalsInput{CurrentLevel: -3})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotEmblem, plan.Slot)
	assert.Equal(t, 0, plan.CurrentLevel)
	assert.Equal(t, int64(248), plan.TotalCrystalsLow)
	assert.Equal(t, int64(394), plan.TotalCrystalsHigh)
	assert.Equal(t, int64(0), plan.TotalCostLow)

	_, err = svc.Crystals(ctx, CrystalsInput{Slot: "Botas"})
	assert.ErrorIs(t, err, domain.ErrUnknownSlot)
}

func TestExpectedCrystalsAndTransferCost(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	le, err := svc.ExpectedCrystals(ctx, "peito", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.SlotChest, le.Slot)
	assert.Equal(t, int64(4), le.CrystalsPerAttempt)
	assert.Equal(t, 3, le.Guarantee)

	cost, err := svc.TransferCost(ctx, "Peito", 8)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cost)

	_, err = svc.TransferCost(ctx, "Botas", 8)
	assert.ErrorIs(t, err, domain.ErrUnknownKey)
}

func TestSimulate(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	seed := uint64(42)

	t.Run("explicit parameters", func(t *testing.T) {
		stats, err := svc.Simulate(ctx, SimulationInput{Probability: 1, Guarantee: 5, Trials: 100, Seed: &seed})
		require.NoError(t, err)
		assert.Equal(t, 100, stats.Trials)
		assert.InDelta(t, 1.0, stats.Mean, 1e-9)
	})

	t.Run("gear level overrides parameters", func(t *testing.T) {
		stats, err := svc.Simulate(ctx, SimulationInput{Level: 16, Probability: 1, Guarantee: 1, Trials: 20000, Seed: &seed})
		require.NoError(t, err)
		assert.InDelta(t, stats.Expected, stats.Mean, 0.5)
		assert.LessOrEqual(t, stats.P99, 34.0)
	})

	t.Run("same seed same result", func(t *testing.T) {
		in := SimulationInput{Level: 8, Trials: 1000, Seed: &seed}
		a, err := svc.Simulate(ctx, in)
		require.NoError(t, err)
		b, err := svc.Simulate(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := svc.Simulate(ctx, SimulationInput{Level: 17, Trials: 10})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("invalid trials", func(t *testing.T) {
		_, err := svc.Simulate(ctx, SimulationInput{Probability: 0.5, Guarantee: 2, Trials: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("guarantee above cap", func(t *testing.T) {
		_, err := svc.Simulate(ctx, SimulationInput{Probability: 1e-12, Guarantee: 1 << 30, Trials: 1_000_000})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("cancelled request", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := svc.Simulate(cctx, SimulationInput{Level: 16, Trials: 1000, Seed: &seed})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRemember(t *testing.T) {
	store := newMemoryStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.Experience(ctx, ExperienceInput{StartLevel: 5, EndLevel: 50, Tier: "prata", Remember: true})
	require.NoError(t, err)
	_, err = svc.Recipe(ctx, RecipeInput{Recipe: "frango teriyaki", BatchQuantity: 10, SalePrice: 500, Remember: true})
	require.NoError(t, err)
	_, err = svc.Crystals(ctx, CrystalsInput{
		Slot:         "calca",
		CurrentLevel: 99,
		Prices:       preferences.CrystalPrices{Sky: 10, Sage: -4, Radiant: 7},
		Remember:     true,
	})
	require.NoError(t, err)

	p, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TabCrystals, p.LastTab)
	assert.Equal(t, domain.TierSilver, p.Tier)
	assert.Equal(t, 5, p.StartLevel)
	assert.Equal(t, 50, p.EndLevel)
	assert.Equal(t, "Frango Teriyaki", p.Recipe)
	assert.Equal(t, int64(10), p.BatchQuantity)
	assert.Equal(t, int64(500), p.SalePrice)
	assert.Equal(t, domain.SlotPants, p.Slot)
	assert.Equal(t, domain.MaxGearLevel, p.GearLevel)
	assert.Equal(t, preferences.CrystalPrices{Sky: 10, Radiant: 7}, p.CrystalPrices)
}

func TestRemember_ConcurrentCalculationsKeepEveryField(t *testing.T) {
	store := newMemoryStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Experience(ctx, ExperienceInput{StartLevel: 5, EndLevel: 50, Tier: "prata", Remember: true})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.Recipe(ctx, RecipeInput{Recipe: "frango teriyaki", BatchQuantity: 10, SalePrice: 500, Remember: true})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := svc.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TierSilver, p.Tier)
	assert.Equal(t, 5, p.StartLevel)
	assert.Equal(t, 50, p.EndLevel)
	assert.Equal(t, "Frango Teriyaki", p.Recipe)
	assert.Equal(t, int64(10), p.BatchQuantity)
	assert.Equal(t, int64(500), p.SalePrice)
}

func TestRemember_StoreFailureDoesNotFailCalculation(t *testing.T) {
	store := new(MockStore)
	store.On("Get", mock.Anything, mock.Anything).Return("", false, nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))
	svc := newTestService(t, store)

	res, err := svc.Experience(context.Background(), ExperienceInput{StartLevel: 1, EndLevel: 2, Remember: true})
	require.NoError(t, err)
	assert.Equal(t, int64(98), res.XPNeeded)
	store.AssertCalled(t, "Set", mock.Anything, preferences.KeyLastTab, string(domain.TabExperience))
}

func TestPreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("stateless service returns defaults", func(t *testing.T) {
		svc := newTestService(t, nil)
		p, err := svc.Preferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, preferences.Defaults("Paella de Camarão"), p)
	})

	t.Run("stale recipe falls back to first recipe", func(t *testing.T) {
		store := newMemoryStore(t)
		require.NoError(t, store.Set(ctx, preferences.KeyRecipe, "Sopa"))
		svc := newTestService(t, store)

		p, err := svc.Preferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Paella de Camarão", p.Recipe)
	})

	t.Run("store failure returns defaults and error", func(t *testing.T) {
		store := new(MockStore)
		store.On("Get", mock.Anything, mock.Anything).Return("", false, domain.ErrStoreUnavailable)
		svc := newTestService(t, store)

		p, err := svc.Preferences(ctx)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.Equal(t, preferences.Defaults("Paella de Camarão"), p)
	})
}

func TestSavePreferences(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes names and numbers", func(t *testing.T) {
		store := newMemoryStore(t)
		svc := newTestService(t, store)

		saved, err := svc.SavePreferences(ctx, preferences.Preferences{
			LastTab:       "RECEITAS",
			Tier:          "bronze",
			StartLevel:    3,
			EndLevel:      4,
			Recipe:        "paella de camarao",
			BatchQuantity: -1,
			SalePrice:     900,
			Slot:          "colar",
			GearLevel:     -2,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TabRecipes, saved.LastTab)
		assert.Equal(t, domain.TierBronze, saved.Tier)
		assert.Equal(t, "Paella de Camarão", saved.Recipe)
		assert.Equal(t, int64(0), saved.BatchQuantity)
		assert.Equal(t, domain.SlotNecklace, saved.Slot)
		assert.Equal(t, 0, saved.GearLevel)

		loaded, err := svc.Preferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("unknown slot is rejected", func(t *testing.T) {
		svc := newTestService(t, newMemoryStore(t))
		_, err := svc.SavePreferences(ctx, preferences.Preferences{Slot: "Botas"})
		assert.ErrorIs(t, err, domain.ErrUnknownSlot)
	})

	t.Run("stateless service", func(t *testing.T) {
		svc := newTestService(t, nil)
		_, err := svc.SavePreferences(ctx, preferences.Preferences{})
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestSetActiveTab(t *testing.T) {
	ctx := context.Background()

	store := new(MockStore)
	store.On("Set", ctx, preferences.KeyLastTab, string(domain.TabExperience)).Return(nil).Once()
	svc := newTestService(t, store)

	require.NoError(t, svc.SetActiveTab(ctx, "exp"))
	assert.ErrorIs(t, svc.SetActiveTab(ctx, "loja"), domain.ErrUnknownTab)
	store.AssertExpectations(t)

	assert.ErrorIs(t, newTestService(t, nil).SetActiveTab(ctx, "exp"), domain.ErrStoreUnavailable)
}

func TestErrorReason(t *testing.T) {
	assert.Equal(t, "invalid_range", errorReason(domain.ErrInvalidRange))
	assert.Equal(t, "unknown_key", errorReason(domain.ErrUnknownSlot))
	assert.Equal(t, "invalid_input", errorReason(domain.ErrInvalidInput))
	assert.Equal(t, "other", errorReason(errors.New("boom")))
}
