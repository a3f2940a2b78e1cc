package preferences

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// CrystalPrices are the remembered market prices per crystal type.
// The JSON field names match the values already stored under KeyCrystalPrices.
type CrystalPrices struct {
	Sky     int64 `json:"valCeu"`
	Sage    int64 `json:"valSabio"`
	Crimson int64 `json:"valCarmesim"`
	Radiant int64 `json:"valRad"`
}

// ByType returns the prices keyed by crystal type
func (c CrystalPrices) ByType() map[domain.CrystalType]int64 {
	return map[domain.CrystalType]int64{
		domain.CrystalSky:     c.Sky,
		domain.CrystalSage:    c.Sage,
		domain.CrystalCrimson: c.Crimson,
		domain.CrystalRadiant: c.Radiant,
	}
}

// CrystalPricesFromMap builds CrystalPrices from a per-type map, missing types are 0
func CrystalPricesFromMap(m map[domain.CrystalType]int64) CrystalPrices {
	return CrystalPrices{
		Sky:     m[domain.CrystalSky],
		Sage:    m[domain.CrystalSage],
		Crimson: m[domain.CrystalCrimson],
		Radiant: m[domain.CrystalRadiant],
	}
}

// Preferences is the last-used input of every calculator plus the active tab
type Preferences struct {
	LastTab       domain.Tab        `json:"last_tab"`
	Tier          domain.PotionTier `json:"tier"`
	StartLevel    int               `json:"start_level"`
	EndLevel      int               `json:"end_level"`
	Recipe        string            `json:"recipe"`
	BatchQuantity int64             `json:"batch_quantity"`
	SalePrice     int64             `json:"sale_price"`
	Slot          domain.Slot       `json:"slot"`
	GearLevel     int               `json:"gear_level"`
	CrystalPrices CrystalPrices     `json:"crystal_prices"`
}

// Defaults returns the values shown before anything was remembered
func Defaults(recipe string) Preferences {
	return Preferences{
		LastTab:       domain.DefaultTab,
		Tier:          domain.DefaultTier,
		StartLevel:    domain.DefaultStartLevel,
		EndLevel:      domain.DefaultEndLevel,
		Recipe:        recipe,
		BatchQuantity: domain.DefaultBatchQuantity,
		SalePrice:     domain.DefaultSalePrice,
		Slot:          domain.DefaultSlot,
		GearLevel:     domain.DefaultGearLevel,
	}
}

// Load reads every key from store on top of defaults.
// Missing or malformed values keep their default; only store failures are returned.
func Load(ctx context.Context, store Store, defaults Preferences) (Preferences, error) {
	p := defaults
	raw := make(map[string]string, len(Keys))
	for _, key := range Keys {
		v, ok, err := store.Get(ctx, key)
		if err != nil {
			return defaults, err
		}
		if ok {
			raw[key] = v
		}
	}

	if v, ok := raw[KeyLastTab]; ok {
		if tab, err := domain.ParseTab(v); err == nil {
			p.LastTab = tab
		}
	}
	if v, ok := raw[KeyTier]; ok {
		if tier, err := domain.ParsePotionTier(v); err == nil {
			p.Tier = tier
		}
	}
	if v, ok := raw[KeyRecipe]; ok && v != "" {
		p.Recipe = v
	}
	if v, ok := raw[KeySlot]; ok {
		if slot, err := domain.ParseSlot(v); err == nil {
			p.Slot = slot
		}
	}
	p.StartLevel = atoiOr(raw, KeyStartLevel, p.StartLevel)
	p.EndLevel = atoiOr(raw, KeyEndLevel, p.EndLevel)
	p.GearLevel = domain.ClampGearLevel(atoiOr(raw, KeyGearLevel, p.GearLevel))
	p.BatchQuantity = nonNegative(int64(atoiOr(raw, KeyBatchQuantity, int(p.BatchQuantity))))
	p.SalePrice = nonNegative(int64(atoiOr(raw, KeySalePrice, int(p.SalePrice))))

	if v, ok := raw[KeyCrystalPrices]; ok {
		var prices CrystalPrices
		if err := json.Unmarshal([]byte(v), &prices); err == nil {
			prices.Sky = nonNegative(prices.Sky)
			prices.Sage = nonNegative(prices.Sage)
			prices.Crimson = nonNegative(prices.Crimson)
			prices.Radiant = nonNegative(prices.Radiant)
			p.CrystalPrices = prices
		}
	}

	return p, nil
}

// Save writes every preference key
func Save(ctx context.Context, store Store, p Preferences) error {
	prices, err := json.Marshal(p.CrystalPrices)
	if err != nil {
		return err
	}
	values := map[string]string{
		KeyLastTab:       string(p.LastTab),
		KeyTier:          string(p.Tier),
		KeyStartLevel:    strconv.Itoa(p.StartLevel),
		KeyEndLevel:      strconv.Itoa(p.EndLevel),
		KeyRecipe:        p.Recipe,
		KeyBatchQuantity: strconv.FormatInt(p.BatchQuantity, 10),
		KeySalePrice:     strconv.FormatInt(p.SalePrice, 10),
		KeySlot:          string(p.Slot),
		KeyGearLevel:     strconv.Itoa(p.GearLevel),
		KeyCrystalPrices: string(prices),
	}
	for _, key := range Keys {
		if err := store.Set(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// SaveTab remembers only the active tab
func SaveTab(ctx context.Context, store Store, tab domain.Tab) error {
	return store.Set(ctx, KeyLastTab, string(tab))
}

func atoiOr(raw map[string]string, key string, fallback int) int {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
