package preferences

import "context"

// Store is a flat key-value store for remembered calculator inputs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Ping reports whether the backing storage is reachable
	Ping(ctx context.Context) error
}

// Storage keys
const (
	KeyLastTab       = "gla_last_tab"
	KeyTier          = "gla_tier"
	KeyStartLevel    = "gla_exp_n1"
	KeyEndLevel      = "gla_exp_n2"
	KeyRecipe        = "gla_receita"
	KeyBatchQuantity = "gla_receita_qtd"
	KeySalePrice     = "gla_receita_valor"
	KeySlot          = "gla_cr_slot"
	KeyGearLevel     = "gla_cr_level"
	KeyCrystalPrices = "gla_cr_vals"
)

// Keys lists every key Save writes, in write order
var Keys = []string{
	KeyLastTab,
	KeyTier,
	KeyStartLevel,
	KeyEndLevel,
	KeyRecipe,
	KeyBatchQuantity,
	KeySalePrice,
	KeySlot,
	KeyGearLevel,
	KeyCrystalPrices,
}
