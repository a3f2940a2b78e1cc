// Package format renders calculator results as plain-text reports with locale-aware digit grouping.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/osse101/GLATools_Go/internal/domain"
)

// DefaultLocale groups digits the way the game's community writes them: 1.234.567
const DefaultLocale = "pt-BR"

const ruleWidth = 32

// InvalidRangeMessage is shown instead of an experience report when the level range is rejected
const InvalidRangeMessage = "❌ Nível inválido: 1 ≤ Inicial < Final ≤ 140"

// Formatter renders reports for one locale. The zero value is not usable; call New.
type Formatter struct {
	tag language.Tag
}

// New creates a formatter for a BCP 47 locale, falling back to DefaultLocale when it does not parse
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if locale == "" || err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{tag: tag}
}

// Locale returns the locale the formatter groups digits for
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// printer is built per call; message.Printer is not safe for concurrent use
func (f *Formatter) printer() *message.Printer {
	return message.NewPrinter(f.tag)
}

// Int formats n with grouped digits
func (f *Formatter) Int(n int64) string {
	return f.printer().Sprintf("%d", n)
}

// Float formats x with the given number of decimals and grouped digits
func (f *Formatter) Float(x float64, decimals int) string {
	return f.printer().Sprint(number.Decimal(x, number.MinFractionDigits(decimals), number.MaxFractionDigits(decimals)))
}

// quantity prints a recipe quantity without trailing zeros
func quantity(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func rule() string {
	return strings.Repeat("─", ruleWidth)
}

// Experience renders the potions needed for a level range
func (f *Formatter) Experience(res domain.ExperienceResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "⭐ %s • Nível %d → %d\n", res.Tier, res.StartLevel, res.EndLevel)
	fmt.Fprintf(&b, "XP Total: %s\n\n", f.Int(res.XPNeeded))
	fmt.Fprintf(&b, "Grande  × %s\n", f.Int(res.Potions.Large))
	fmt.Fprintf(&b, "Média   × %s\n", f.Int(res.Potions.Medium))
	fmt.Fprintf(&b, "Pequena × %s", f.Int(res.Potions.Small))
	return b.String()
}

// Recipe renders the cost breakdown and profit of a batch
func (f *Formatter) Recipe(res domain.RecipeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 %s\n%s\n\n", res.Recipe, rule())
	for _, line := range res.Ingredients {
		fmt.Fprintf(&b, "• %s: %s unidades | Custo: %s berry (preço unitário: %s)\n",
			line.Name, quantity(line.TotalQuantity), f.Int(line.Cost), quantity(line.UnitPrice))
	}
	fmt.Fprintf(&b, "\n%s\n", rule())
	fmt.Fprintf(&b, "Custo: %s\n", f.Int(res.TotalCost))
	fmt.Fprintf(&b, "Venda: %s\n", f.Int(res.TotalRevenue))
	fmt.Fprintf(&b, "Taxa (3%%): %s\n", f.Int(res.Fee))
	fmt.Fprintf(&b, "💰 Lucro: %s", f.Int(res.Profit))
	return b.String()
}

// Crystals renders an upgrade plan, one line per level followed by totals
func (f *Formatter) Crystals(plan domain.UpgradePlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔧 %s | Nível atual +%d\n", plan.Slot, plan.CurrentLevel)
	fmt.Fprintf(&b, "Custo para transferir o boost: %s gemas\n\n", f.Int(plan.TransferCost))

	if len(plan.Steps) == 0 {
		b.WriteString("Nenhum nível acima do atual.\n")
	}
	for _, s := range plan.Steps {
		fmt.Fprintf(&b, "Média para o nível +%d: %s a %s cristais (tipo: %s) → %s a %s berry\n",
			s.Level, f.Int(s.CrystalsLow), f.Int(s.CrystalsHigh), s.CrystalType, f.Int(s.CostLow), f.Int(s.CostHigh))
	}

	fmt.Fprintf(&b, "\nTotal (média somada): %s a %s cristais → %s a %s berry\n",
		f.Int(plan.TotalCrystalsLow), f.Int(plan.TotalCrystalsHigh), f.Int(plan.TotalCostLow), f.Int(plan.TotalCostHigh))

	if len(plan.ByCrystalType) > 0 {
		b.WriteString("\nPor tipo de cristal:\n")
		for _, t := range plan.ByCrystalType {
			fmt.Fprintf(&b, "• %s: %s a %s cristais → %s a %s berry\n",
				t.CrystalType, f.Int(t.CrystalsLow), f.Int(t.CrystalsHigh), f.Int(t.CostLow), f.Int(t.CostHigh))
		}
	}

	b.WriteString("\nNota: médias calculadas usando chance por nível e pity garantido.")
	return b.String()
}

// Simulation renders Monte Carlo statistics next to the closed-form expectation
func (f *Formatter) Simulation(p float64, guarantee int, s domain.SimulationStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎲 Simulação: chance %s%%, pity na tentativa %d, %s ensaios\n",
		f.Float(p*100, 2), guarantee, f.Int(int64(s.Trials)))
	fmt.Fprintf(&b, "Esperado: %s tentativas\n", f.Float(s.Expected, 3))
	fmt.Fprintf(&b, "Média: %s (desvio padrão %s)\n", f.Float(s.Mean, 3), f.Float(s.StdDev, 3))
	fmt.Fprintf(&b, "P50: %s | P90: %s | P99: %s", f.Float(s.P50, 1), f.Float(s.P90, 1), f.Float(s.P99, 1))
	return b.String()
}
