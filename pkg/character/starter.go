package character

import (
	"grimoire/pkg/shared/components"
)

// StarterData is the character a missing profile starts with.
func StarterData() Data {
	return Data{
		SpellsLearned: map[components.School][]components.SpellID{
			components.SchoolElemental: {"fireball"},
			components.SchoolDivine:    {"heal"},
		},
		ModifiersLearned: map[components.ModifierType]int{
			components.ModifierDamage: 2,
			components.ModifierSpeed:  1,
		},
		Items: map[string]int{
			"fo_healingpotion": 3,
			"do_letter":        1,
			"eq_wizardhat":     1,
			"we_ancientstaff":  1,
		},
		Equipped: map[components.EquipmentSlot]string{
			components.SlotWeapon: "we_oldstaff",
		},
		Gold:      12,
		Health:    80,
		MaxHealth: 100,
	}
}
