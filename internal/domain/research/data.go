package research

import "github.com/factoquest/factoquest-go/internal/domain/catalog"

// DefaultDefinitions returns the reference research tree: seven nodes across
// the mine, furnace, assembler and general categories.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			ID:          "mining_speed_1",
			Name:        "Rapid Extraction I",
			Description: "Improves mine extraction speed by 25%",
			Category:    "mine",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 50},
				{ResourceID: "gear", Quantity: 10},
			},
			Duration: 300,
			Effects: []Effect{
				{Type: EffectSpeed, Target: "mine", Value: 25, Description: "+25% extraction speed"},
			},
			Icon:     "⛏️",
			Unlocked: true,
		},
		{
			ID:          "mining_efficiency_1",
			Name:        "Double Extraction",
			Description: "10% chance to extract a bonus ore",
			Category:    "mine",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 100},
				{ResourceID: "copper_plate", Quantity: 50},
				{ResourceID: "gear", Quantity: 25},
			},
			Duration:      600,
			Prerequisites: []string{"mining_speed_1"},
			Effects: []Effect{
				{Type: EffectBonusOutput, Target: "mine", Value: 10, Description: "+10% bonus ore chance"},
			},
			Icon: "💎",
		},
		{
			ID:          "smelting_speed_1",
			Name:        "Accelerated Smelting I",
			Description: "Improves furnace smelting speed by 30%",
			Category:    "furnace",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 75},
				{ResourceID: "coal", Quantity: 100},
			},
			Duration: 420,
			Effects: []Effect{
				{Type: EffectSpeed, Target: "furnace", Value: 30, Description: "+30% smelting speed"},
			},
			Icon:     "🔥",
			Unlocked: true,
		},
		{
			ID:          "fuel_efficiency_1",
			Name:        "Fuel Economy",
			Description: "Reduces coal consumption by 25%",
			Category:    "furnace",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 80},
				{ResourceID: "copper_plate", Quantity: 40},
				{ResourceID: "iron_wire", Quantity: 20},
			},
			Duration:      480,
			Prerequisites: []string{"smelting_speed_1"},
			Effects: []Effect{
				{Type: EffectCostReduction, Target: "furnace", Value: 25, Description: "-25% coal consumption"},
			},
			Icon: "⚡",
		},
		{
			ID:          "assembly_speed_1",
			Name:        "Rapid Assembly I",
			Description: "Improves assembly speed by 35%",
			Category:    "assembler",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 60},
				{ResourceID: "iron_wire", Quantity: 30},
				{ResourceID: "gear", Quantity: 15},
			},
			Duration: 540,
			Effects: []Effect{
				{Type: EffectSpeed, Target: "assembler", Value: 35, Description: "+35% assembly speed"},
			},
			Icon:     "⚙️",
			Unlocked: true,
		},
		{
			ID:          "precision_assembly",
			Name:        "Precision Assembly",
			Description: "15% chance to produce a bonus item",
			Category:    "assembler",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 120},
				{ResourceID: "copper_plate", Quantity: 80},
				{ResourceID: "gear", Quantity: 40},
			},
			Duration:      720,
			Prerequisites: []string{"assembly_speed_1"},
			Effects: []Effect{
				{Type: EffectBonusOutput, Target: "assembler", Value: 15, Description: "+15% bonus item chance"},
			},
			Icon: "🎯",
		},
		{
			ID:          "automation_1",
			Name:        "Automation I",
			Description: "Improves the efficiency of all machines by 20%",
			Category:    "general",
			Requirements: []catalog.Stack{
				{ResourceID: "iron_plate", Quantity: 200},
				{ResourceID: "copper_plate", Quantity: 100},
				{ResourceID: "iron_wire", Quantity: 50},
				{ResourceID: "gear", Quantity: 30},
			},
			Duration:      900,
			Prerequisites: []string{"mining_speed_1", "smelting_speed_1", "assembly_speed_1"},
			Effects: []Effect{
				{Type: EffectEfficiency, Target: TargetAll, Value: 20, Description: "+20% overall efficiency"},
			},
			Icon: "🤖",
		},
	}
}
