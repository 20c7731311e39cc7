package character

import (
	"grimoire/pkg/shared/components"
)

// Model is the character data the GUI reads from and mutates.
// Reads return copies. Mutations are synchronous and observers are
// notified before they return.
type Model interface {
	LearnedSpells(school components.School) []components.SpellID
	LearnedModifiers() map[components.ModifierType]int
	Weapon() *components.Weapon
	Items() map[string]int
	ItemCount(itemID string) int
	Equipped(slot components.EquipmentSlot) string
	Gold() int

	AddSpell(id components.SpellID, slot int) error
	RemoveSpell(slot int) error
	AddModifier(mod components.Modifier, slot, index int) error
	RemoveModifier(slot, index int) error

	AddItem(itemID string, quantity int) error
	RemoveItem(itemID string, quantity int) error
	EquipItem(itemID string, slot components.EquipmentSlot) error
	UnequipItem(slot components.EquipmentSlot) error

	Subscribe(o Observer)
}

type ChangeKind int

const (
	ChangeSpells ChangeKind = iota
	ChangeModifiers
	ChangeWeapon
	ChangeItems
	ChangeEquipment
	ChangeGold
	ChangeHealth
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpells:
		return "spells"
	case ChangeModifiers:
		return "modifiers"
	case ChangeWeapon:
		return "weapon"
	case ChangeItems:
		return "items"
	case ChangeEquipment:
		return "equipment"
	case ChangeGold:
		return "gold"
	default:
		return "health"
	}
}

// Change describes one applied mutation. ID is the item or spell id
// when the mutation concerns a single one.
type Change struct {
	Kind ChangeKind
	ID   string
}

type Observer interface {
	NotifyChange(c Change)
}
