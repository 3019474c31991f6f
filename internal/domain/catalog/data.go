package catalog

// Default returns the reference catalog: seven resources and seven recipes
// spanning the three machine types.
func Default() *Catalog {
	c, err := NewCatalog(defaultResources(), defaultRecipes())
	if err != nil {
		// The reference data is static; a failure here is a programming error.
		panic(err)
	}
	return c
}

func defaultResources() []Resource {
	return []Resource{
		{ID: "iron_ore", Name: "Iron Ore", Icon: "🪨"},
		{ID: "copper_ore", Name: "Copper Ore", Icon: "🟤"},
		{ID: "coal", Name: "Coal", Icon: "⚫"},
		{ID: "iron_plate", Name: "Iron Plate", Icon: "🔹"},
		{ID: "copper_plate", Name: "Copper Plate", Icon: "🟠"},
		{ID: "iron_wire", Name: "Iron Wire", Icon: "🔗"},
		{ID: "gear", Name: "Gear", Icon: "⚙️"},
	}
}

func defaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:          "mine_iron",
			Name:        "Iron Mining",
			Inputs:      nil,
			Outputs:     []Stack{{ResourceID: "iron_ore", Quantity: 1}},
			Duration:    1,
			MachineType: MachineTypeMine,
		},
		{
			ID:          "mine_copper",
			Name:        "Copper Mining",
			Inputs:      nil,
			Outputs:     []Stack{{ResourceID: "copper_ore", Quantity: 1}},
			Duration:    1.5,
			MachineType: MachineTypeMine,
		},
		{
			ID:          "mine_coal",
			Name:        "Coal Mining",
			Inputs:      nil,
			Outputs:     []Stack{{ResourceID: "coal", Quantity: 1}},
			Duration:    0.8,
			MachineType: MachineTypeMine,
		},
		{
			ID:   "smelt_iron",
			Name: "Iron Smelting",
			Inputs: []Stack{
				{ResourceID: "iron_ore", Quantity: 3},
				{ResourceID: "coal", Quantity: 1},
			},
			Outputs:     []Stack{{ResourceID: "iron_plate", Quantity: 1}},
			Duration:    3,
			MachineType: MachineTypeFurnace,
		},
		{
			ID:   "smelt_copper",
			Name: "Copper Smelting",
			Inputs: []Stack{
				{ResourceID: "copper_ore", Quantity: 2},
				{ResourceID: "coal", Quantity: 1},
			},
			Outputs:     []Stack{{ResourceID: "copper_plate", Quantity: 1}},
			Duration:    2.5,
			MachineType: MachineTypeFurnace,
		},
		{
			ID:          "craft_wire",
			Name:        "Wire Drawing",
			Inputs:      []Stack{{ResourceID: "iron_plate", Quantity: 2}},
			Outputs:     []Stack{{ResourceID: "iron_wire", Quantity: 1}},
			Duration:    5,
			MachineType: MachineTypeAssembler,
		},
		{
			ID:   "craft_gear",
			Name: "Gear Assembly",
			Inputs: []Stack{
				{ResourceID: "iron_plate", Quantity: 2},
				{ResourceID: "iron_wire", Quantity: 1},
			},
			Outputs:     []Stack{{ResourceID: "gear", Quantity: 1}},
			Duration:    8,
			MachineType: MachineTypeAssembler,
		},
	}
}
