package items

func init() {
	// Potions, Food, etc
	Register(ItemDefinition{
		ID:          "fo_healingpotion",
		Name:        "Small Health Potion",
		Type:        ItemTypeConsumable,
		Description: "Restores a small amount of health.",
		Value:       5,
		Heal:        30,
	})
	Register(ItemDefinition{
		ID:          "fo_bread",
		Name:        "Bread",
		Type:        ItemTypeConsumable,
		Description: "A bit stale.",
		Value:       1,
		Heal:        10,
	})
}
