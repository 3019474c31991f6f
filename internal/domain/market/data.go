package market

// DefaultBasePrices returns the reference base price per tradable resource
func DefaultBasePrices() map[string]int {
	return map[string]int{
		"iron_ore":     2,
		"copper_ore":   3,
		"coal":         1,
		"iron_plate":   8,
		"copper_plate": 10,
		"iron_wire":    15,
		"gear":         25,
	}
}
