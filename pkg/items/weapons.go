package items

import (
	"grimoire/pkg/shared/components"
)

func mods(n int) []components.Modifier {
	return make([]components.Modifier, n)
}

func init() {
	// Staffs
	Register(ItemDefinition{
		ID:          "we_walkingstick",
		Name:        "Walking Stick",
		Type:        ItemTypeWeapon,
		Description: "A plain stick. It has no room for spells.",
		Value:       1,
	})
	Register(ItemDefinition{
		ID:          "we_oldstaff",
		Name:        "Old Staff",
		Type:        ItemTypeWeapon,
		Description: "A worn staff with two spell slots.",
		Value:       20,
		WeaponSlots: []components.WeaponSlot{
			{School: components.SchoolElemental, Modifiers: mods(1)},
			{School: components.SchoolDivine, Modifiers: mods(1)},
		},
	})
	Register(ItemDefinition{
		ID:          "we_ancientstaff",
		Name:        "Ancient Staff",
		Type:        ItemTypeWeapon,
		Description: "Humming with old magic. One slot takes any spell.",
		Value:       150,
		WeaponSlots: []components.WeaponSlot{
			{School: components.SchoolElemental, Modifiers: mods(2)},
			{School: components.SchoolDivine, Modifiers: mods(1)},
			{School: components.SchoolNecromancy, Modifiers: mods(1)},
			{School: components.SchoolMeta, Modifiers: mods(3)},
		},
	})

	// Armor
	Register(ItemDefinition{
		ID:          "eq_wizardhat",
		Name:        "Wizard Hat",
		Type:        ItemTypeHead,
		Description: "Pointy.",
		Value:       15,
	})
	Register(ItemDefinition{
		ID:          "eq_amulet",
		Name:        "Copper Amulet",
		Type:        ItemTypeNeck,
		Description: "Cold to the touch.",
		Value:       25,
	})
	Register(ItemDefinition{
		ID:          "eq_robe",
		Name:        "Apprentice Robe",
		Type:        ItemTypeBody,
		Description: "Smells of old books.",
		Value:       12,
	})
	Register(ItemDefinition{
		ID:          "eq_cloak",
		Name:        "Travel Cloak",
		Type:        ItemTypeBack,
		Description: "Keeps the rain out, mostly.",
		Value:       10,
	})
	Register(ItemDefinition{
		ID:          "eq_ring",
		Name:        "Silver Ring",
		Type:        ItemTypeRing,
		Description: "A simple silver band.",
		Value:       30,
	})
}
