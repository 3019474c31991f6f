package machine

import "github.com/factoquest/factoquest-go/internal/domain/catalog"

// TypeInfo describes a purchasable machine type
type TypeInfo struct {
	Name string
	Cost int
	Icon string
}

var typeInfos = map[catalog.MachineType]TypeInfo{
	catalog.MachineTypeMine:      {Name: "Mine", Cost: 500, Icon: "🏔️"},
	catalog.MachineTypeFurnace:   {Name: "Furnace", Cost: 800, Icon: "🔥"},
	catalog.MachineTypeAssembler: {Name: "Assembler", Cost: 1200, Icon: "⚙️"},
}

// TypeInfoFor returns the purchase information for a machine type
func TypeInfoFor(t catalog.MachineType) (TypeInfo, bool) {
	info, ok := typeInfos[t]
	return info, ok
}

// CostFor returns the flat purchase cost for a machine type
func CostFor(t catalog.MachineType) (int, bool) {
	info, ok := typeInfos[t]
	return info.Cost, ok
}
