package gamedata

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/GLATools_Go/internal/domain"
	"github.com/osse101/GLATools_Go/internal/validation"
)

//go:embed gamedata.yaml
var embedded []byte

//go:embed gamedata.schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (validation.SchemaValidator, error) {
	return validation.NewSchemaValidator("gamedata.schema.json", schemaJSON)
})

var loadDefault = sync.OnceValues(func() (*Tables, error) {
	return Parse(embedded)
})

// Default returns the tables shipped with the binary, parsed once per process
func Default() (*Tables, error) {
	return loadDefault()
}

// Load returns the embedded tables when path is empty, otherwise the tables stored at path
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads and validates a YAML data file
func LoadFile(path string) (*Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data %s: %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML game data, checks its shape against the schema, validates it
// and builds the lookup indexes
func Parse(b []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGameData, err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.ValidateYAML(b); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGameData, err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}
	t.index()
	return &t, nil
}

// Validate checks the semantic constraints of every table and reports all violations at once
func Validate(t *Tables) error {
	var errs []string

	// total_xp
	if len(t.TotalXP) != domain.XPTableSize {
		errs = append(errs, fmt.Sprintf("total_xp must have %d entries, got %d", domain.XPTableSize, len(t.TotalXP)))
	}
	if len(t.TotalXP) > 0 && t.TotalXP[0] != 0 {
		errs = append(errs, "total_xp[0] must be 0")
	}
	for i := 1; i < len(t.TotalXP); i++ {
		if t.TotalXP[i] < t.TotalXP[i-1] {
			errs = append(errs, fmt.Sprintf("total_xp[%d] must be >= total_xp[%d]", i, i-1))
		}
	}

	// potion_tiers
	if len(t.PotionTiers) == 0 {
		errs = append(errs, "potion_tiers must not be empty")
	}
	seenTier := make(map[domain.PotionTier]bool, len(t.PotionTiers))
	for _, row := range t.PotionTiers {
		if _, err := domain.ParsePotionTier(string(row.Name)); err != nil {
			errs = append(errs, fmt.Sprintf("potion_tiers: unknown tier %q", row.Name))
		}
		if seenTier[row.Name] {
			errs = append(errs, fmt.Sprintf("potion_tiers: duplicate tier %q", row.Name))
		}
		seenTier[row.Name] = true
		if !(row.Large > row.Medium && row.Medium > row.Small && row.Small > 0) {
			errs = append(errs, fmt.Sprintf("potion_tiers.%s must satisfy large > medium > small > 0", row.Name))
		}
	}

	// recipes
	if len(t.Recipes) == 0 {
		errs = append(errs, "recipes must not be empty")
	}
	seenRecipe := make(map[string]bool, len(t.Recipes))
	for _, r := range t.Recipes {
		key := domain.NormalizeKey(r.Name)
		if key == "" {
			errs = append(errs, "recipes: name is required")
		}
		if seenRecipe[key] {
			errs = append(errs, fmt.Sprintf("recipes: duplicate recipe %q", r.Name))
		}
		seenRecipe[key] = true
		if len(r.Ingredients) == 0 {
			errs = append(errs, fmt.Sprintf("recipes.%s must have ingredients", r.Name))
		}
		for i, ing := range r.Ingredients {
			if ing.QuantityPerUnit <= 0 {
				errs = append(errs, fmt.Sprintf("recipes.%s.ingredients[%d].quantity must be > 0", r.Name, i))
			}
			if ing.UnitPrice < 0 {
				errs = append(errs, fmt.Sprintf("recipes.%s.ingredients[%d].unit_price must be >= 0", r.Name, i))
			}
		}
	}

	// crystals_per_attempt
	for _, slot := range domain.Slots {
		c, ok := t.CrystalsPerAttempt[slot]
		if !ok {
			errs = append(errs, fmt.Sprintf("crystals_per_attempt.%s is required", slot))
			continue
		}
		if c <= 0 {
			errs = append(errs, fmt.Sprintf("crystals_per_attempt.%s must be > 0", slot))
		}
	}

	// success
	seenLevel := make(map[int]bool, len(t.Success))
	for _, row := range t.Success {
		if row.Level < 1 || row.Level > domain.MaxGearLevel {
			errs = append(errs, fmt.Sprintf("success: level %d out of range 1..%d", row.Level, domain.MaxGearLevel))
			continue
		}
		if seenLevel[row.Level] {
			errs = append(errs, fmt.Sprintf("success: duplicate level %d", row.Level))
		}
		seenLevel[row.Level] = true
		if !(row.Probability > 0 && row.Probability <= 1) {
			errs = append(errs, fmt.Sprintf("success[%d].probability must be in (0,1]", row.Level))
		}
		if row.Guarantee < 1 {
			errs = append(errs, fmt.Sprintf("success[%d].guarantee must be >= 1", row.Level))
		}
	}
	for level := 1; level <= domain.MaxGearLevel; level++ {
		if !seenLevel[level] {
			errs = append(errs, fmt.Sprintf("success: level %d is missing", level))
		}
	}

	// transfer_costs
	if len(t.TransferCosts) != len(domain.TransferBrackets) {
		errs = append(errs, fmt.Sprintf("transfer_costs must have brackets %v", domain.TransferBrackets))
	}
	for _, b := range domain.TransferBrackets {
		row, ok := t.TransferCosts[b]
		if !ok {
			errs = append(errs, fmt.Sprintf("transfer_costs.%d is required", b))
			continue
		}
		for slot, c := range row {
			if c < 0 {
				errs = append(errs, fmt.Sprintf("transfer_costs.%d.%s must be >= 0", b, slot))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n - %s", domain.ErrInvalidGameData, strings.Join(errs, "\n - "))
	}
	return nil
}
