package research

import "time"

// LabType identifies a purchasable laboratory type
type LabType string

const (
	LabTypeBasic      LabType = "basic"
	LabTypeAdvanced   LabType = "advanced"
	LabTypeInstitute  LabType = "institute"
	LabTypeMining     LabType = "mining"
	LabTypeMetallurgy LabType = "metallurgy"
	LabTypeMechanical LabType = "mechanical"
)

// SpecializationGeneral marks a laboratory that can run any research category
const SpecializationGeneral = "general"

// Laboratory is a purchased research facility. Laboratories are immutable
// after purchase and never destroyed.
type Laboratory struct {
	ID                      string
	Name                    string
	Type                    LabType
	Cost                    int
	ResearchSpeed           float64 // duration divisor for hosted researches
	MaxSimultaneousResearch int
	Specialization          string // a research category, or general
	PurchaseTime            time.Time
}

// CanHost reports whether this laboratory may run a research of the given
// category. Unspecialized and general laboratories host anything.
func (l Laboratory) CanHost(category string) bool {
	if l.Specialization == "" || l.Specialization == SpecializationGeneral {
		return true
	}
	return l.Specialization == category
}

// LabTypeInfo describes a purchasable laboratory type
type LabTypeInfo struct {
	Name            string
	Cost            int
	ResearchSpeed   float64
	MaxSimultaneous int
	Specialization  string
	Icon            string
	Description     string
}

var labTypeInfos = map[LabType]LabTypeInfo{
	LabTypeBasic: {
		Name: "Basic Laboratory", Cost: 5000, ResearchSpeed: 1.0, MaxSimultaneous: 1,
		Specialization: SpecializationGeneral, Icon: "🧪", Description: "Fundamental research",
	},
	LabTypeAdvanced: {
		Name: "Advanced Laboratory", Cost: 15000, ResearchSpeed: 1.5, MaxSimultaneous: 2,
		Specialization: SpecializationGeneral, Icon: "⚗️", Description: "Complex research, +50% speed",
	},
	LabTypeInstitute: {
		Name: "Research Institute", Cost: 50000, ResearchSpeed: 2.0, MaxSimultaneous: 3,
		Specialization: SpecializationGeneral, Icon: "🔬", Description: "Cutting-edge research, +100% speed",
	},
	LabTypeMining: {
		Name: "Mining Laboratory", Cost: 8000, ResearchSpeed: 1.3, MaxSimultaneous: 1,
		Specialization: "mine", Icon: "⛏️", Description: "Specialized in mining technology",
	},
	LabTypeMetallurgy: {
		Name: "Metallurgy Laboratory", Cost: 12000, ResearchSpeed: 1.3, MaxSimultaneous: 1,
		Specialization: "furnace", Icon: "🔥", Description: "Specialized in smelting technology",
	},
	LabTypeMechanical: {
		Name: "Mechanical Laboratory", Cost: 18000, ResearchSpeed: 1.3, MaxSimultaneous: 1,
		Specialization: "assembler", Icon: "⚙️", Description: "Specialized in assembly technology",
	},
}

// LabTypeInfoFor returns the purchase information for a laboratory type
func LabTypeInfoFor(t LabType) (LabTypeInfo, bool) {
	info, ok := labTypeInfos[t]
	return info, ok
}

// AllLabTypes lists every laboratory type in a stable order
func AllLabTypes() []LabType {
	return []LabType{LabTypeBasic, LabTypeAdvanced, LabTypeInstitute, LabTypeMining, LabTypeMetallurgy, LabTypeMechanical}
}
