package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/GLATools_Go/internal/calculator"
	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/gamedata"
	"github.com/osse101/GLATools_Go/internal/preferences"
)

// MockService implements calculator.Service for testing
type MockService struct {
	mock.Mock
}

func (m *MockService) Experience(ctx context.Context, in calculator.ExperienceInput) (domain.ExperienceResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.ExperienceResult), args.Error(1)
}

func (m *MockService) Potions(ctx context.Context, xp float64, tier string) (domain.PotionCounts, error) {
	args := m.Called(ctx, xp, tier)
	return args.Get(0).(domain.PotionCounts), args.Error(1)
}

func (m *MockService) Recipe(ctx context.Context, in calculator.RecipeInput) (domain.RecipeResult, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.RecipeResult), args.Error(1)
}

func (m *MockService) Recipes(ctx context.Context) []domain.Recipe {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockService) Crystals(ctx context.Context, in calculator.CrystalsInput) (domain.UpgradePlan, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.UpgradePlan), args.Error(1)
}

func (m *MockService) ExpectedCrystals(ctx context.Context, slot string, level int) (domain.LevelExpectation, error) {
	args := m.Called(ctx, slot, level)
	return args.Get(0).(domain.LevelExpectation), args.Error(1)
}

func (m *MockService) TransferCost(ctx context.Context, slot string, level int) (int64, error) {
	args := m.Called(ctx, slot, level)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) Simulate(ctx context.Context, in calculator.SimulationInput) (domain.SimulationStats, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.SimulationStats), args.Error(1)
}

func (m *MockService) Tables(ctx context.Context) *gamedata.Tables {
	args := m.Called(ctx)
	return args.Get(0).(*gamedata.Tables)
}

func (m *MockService) Preferences(ctx context.Context) (preferences.Preferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(preferences.Preferences), args.Error(1)
}

func (m *MockService) SavePreferences(ctx context.Context, p preferences.Preferences) (preferences.Preferences, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(preferences.Preferences), args.Error(1)
}

func (m *MockService) SetActiveTab(ctx context.Context, tab string) error {
	args := m.Called(ctx, tab)
	return args.Error(0)
}
