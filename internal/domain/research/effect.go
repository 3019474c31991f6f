package research

import "github.com/factoquest/factoquest-go/internal/domain/catalog"

// EffectType classifies a research effect.
// cost_reduction and unlock_recipe exist in the data model but are not yet
// consumed by the production scheduler; they are reserved for future use.
type EffectType string

const (
	EffectSpeed         EffectType = "speed"
	EffectEfficiency    EffectType = "efficiency"
	EffectBonusOutput   EffectType = "bonus_output"
	EffectCostReduction EffectType = "cost_reduction"
	EffectUnlockRecipe  EffectType = "unlock_recipe"
)

// TargetAll applies an effect to every machine type
const TargetAll = "all"

// Effect is one modifier granted by a completed research
type Effect struct {
	Type        EffectType
	Target      string // a catalog.MachineType or TargetAll
	Value       float64
	Description string
}

// AppliesTo reports whether the effect targets the given machine type
func (e Effect) AppliesTo(t catalog.MachineType) bool {
	return e.Target == TargetAll || e.Target == string(t)
}

// Bonus is the additive bonus vector the production scheduler consumes,
// aggregated over all completed researches for one machine type. Values are
// percentages.
type Bonus struct {
	Speed       float64
	Efficiency  float64
	BonusOutput float64
}

// Accumulate folds one effect into the bonus vector
func (b *Bonus) Accumulate(e Effect) {
	switch e.Type {
	case EffectSpeed:
		b.Speed += e.Value
	case EffectEfficiency:
		b.Efficiency += e.Value
	case EffectBonusOutput:
		b.BonusOutput += e.Value
	}
}
