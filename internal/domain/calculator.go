package domain

// PotionValues are the XP restored by one large, medium and small potion of a tier
type PotionValues struct {
	Large  int64 `json:"large" yaml:"large"`
	Medium int64 `json:"medium" yaml:"medium"`
	Small  int64 `json:"small" yaml:"small"`
}

// PotionCounts is a greedy decomposition of an XP amount into potions
type PotionCounts struct {
	Large  int64 `json:"large"`
	Medium int64 `json:"medium"`
	Small  int64 `json:"small"`
}

// ExperienceResult is the XP needed between two levels and the potions that cover it
type ExperienceResult struct {
	Tier       PotionTier   `json:"tier"`
	StartLevel int          `json:"start_level"`
	EndLevel   int          `json:"end_level"`
	XPNeeded   int64        `json:"xp_needed"`
	Potions    PotionCounts `json:"potions"`
}

// SuccessEntry is the chance of one upgrade attempt and the attempt number at which success is forced
type SuccessEntry struct {
	Probability float64 `json:"probability" yaml:"probability"`
	Guarantee   int     `json:"guarantee" yaml:"guarantee"`
}

// UpgradeStep is the expected and worst-case cost of reaching one gear level
type UpgradeStep struct {
	Level            int         `json:"level"`
	CrystalType      CrystalType `json:"crystal_type"`
	ExpectedCrystals float64     `json:"expected_crystals"`
	CrystalsLow      int64       `json:"crystals_low"`
	CrystalsHigh     int64       `json:"crystals_high"`
	UnitPrice        int64       `json:"unit_price"`
	CostLow          int64       `json:"cost_low"`
	CostHigh         int64       `json:"cost_high"`
}

// CrystalTypeTotals aggregates the steps of a plan that consume the same crystal type
type CrystalTypeTotals struct {
	CrystalType  CrystalType `json:"crystal_type"`
	CrystalsLow  int64       `json:"crystals_low"`
	CrystalsHigh int64       `json:"crystals_high"`
	CostLow      int64       `json:"cost_low"`
	CostHigh     int64       `json:"cost_high"`
}

// UpgradePlan is the full cost of raising a slot from its current level to the maximum gear level
type UpgradePlan struct {
	Slot              Slot                `json:"slot"`
	CurrentLevel      int                 `json:"current_level"`
	TransferCost      int64               `json:"transfer_cost"`
	Steps             []UpgradeStep       `json:"steps"`
	ByCrystalType     []CrystalTypeTotals `json:"by_crystal_type"`
	TotalCrystalsLow  int64               `json:"total_crystals_low"`
	TotalCrystalsHigh int64               `json:"total_crystals_high"`
	TotalCostLow      int64               `json:"total_cost_low"`
	TotalCostHigh     int64               `json:"total_cost_high"`
}

// SimulationStats summarizes a Monte Carlo run of the pity mechanic
type SimulationStats struct {
	Trials   int     `json:"trials"`
	Expected float64 `json:"expected"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	P50      float64 `json:"p50"`
	P90      float64 `json:"p90"`
	P99      float64 `json:"p99"`
}

// LevelExpectation is the expected and worst-case crystal cost of a single gear level on one slot
type LevelExpectation struct {
	Slot               Slot        `json:"slot"`
	Level              int         `json:"level"`
	CrystalType        CrystalType `json:"crystal_type"`
	CrystalsPerAttempt int64       `json:"crystals_per_attempt"`
	Probability        float64     `json:"probability"`
	Guarantee          int         `json:"guarantee"`
	ExpectedAttempts   float64     `json:"expected_attempts"`
	ExpectedCrystals   float64     `json:"expected_crystals"`
	MaxCrystals        float64     `json:"max_crystals"`
}
