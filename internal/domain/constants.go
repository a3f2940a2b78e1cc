package domain

// Character level bounds for the experience calculator
const (
	MinCharacterLevel = 1
	MaxCharacterLevel = 140
	XPTableSize       = MaxCharacterLevel + 1
)

// Gear level bounds for the crystal calculator
const (
	MinGearLevel = 0
	MaxGearLevel = 16
)

// TransferBrackets are the level-bracket boundaries of the boost transfer table, ascending
var TransferBrackets = []int{4, 8, 12, 16}

// MarketFeeRate is the marketplace fee charged on recipe sales
const MarketFeeRate = 0.03

// Default values restored when nothing was remembered yet
const (
	DefaultTier          = TierDiamond
	DefaultStartLevel    = 1
	DefaultEndLevel      = 2
	DefaultBatchQuantity = 100
	DefaultSalePrice     = 3200
	DefaultSlot          = SlotEmblem
	DefaultGearLevel     = 0
	DefaultTab           = TabMenu
)

// ClampGearLevel limits a gear level to [MinGearLevel, MaxGearLevel]
func ClampGearLevel(level int) int {
	if level < MinGearLevel {
		return MinGearLevel
	}
	if level > MaxGearLevel {
		return MaxGearLevel
	}
	return level
}
