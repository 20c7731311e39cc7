package items

import (
	"sort"

	"grimoire/pkg/shared/components"
)

type ItemType int

const (
	ItemTypeMisc ItemType = iota
	ItemTypeWeapon
	ItemTypeHead
	ItemTypeNeck
	ItemTypeBody
	ItemTypeBack
	ItemTypeRing
	ItemTypeConsumable
	ItemTypeDocument
	ItemTypeSpellscroll
	ItemTypeQuest
	ItemTypeKey
	ItemTypeGold
)

// Category is an inventory tab.
type Category int

const (
	CategoryEquipment Category = iota
	CategoryConsumable
	CategoryDocument
	CategoryQuest
	CategoryKey
	CategoryMisc
)

// Categories lists the inventory tabs in display order.
var Categories = []Category{
	CategoryEquipment, CategoryConsumable, CategoryDocument,
	CategoryQuest, CategoryKey, CategoryMisc,
}

func (c Category) String() string {
	switch c {
	case CategoryEquipment:
		return "Equipment"
	case CategoryConsumable:
		return "Consumable"
	case CategoryDocument:
		return "Document"
	case CategoryQuest:
		return "Quest"
	case CategoryKey:
		return "Key"
	default:
		return "Misc"
	}
}

func (t ItemType) Category() Category {
	switch t {
	case ItemTypeWeapon, ItemTypeHead, ItemTypeNeck, ItemTypeBody, ItemTypeBack, ItemTypeRing:
		return CategoryEquipment
	case ItemTypeConsumable:
		return CategoryConsumable
	case ItemTypeDocument, ItemTypeSpellscroll:
		return CategoryDocument
	case ItemTypeQuest:
		return CategoryQuest
	case ItemTypeKey:
		return CategoryKey
	default:
		return CategoryMisc
	}
}

// IsEquipment reports whether items of this type go into an equipment slot.
func (t ItemType) IsEquipment() bool {
	return t.Category() == CategoryEquipment
}

// FitsSlot reports whether items of this type can be equipped into slot.
func (t ItemType) FitsSlot(slot components.EquipmentSlot) bool {
	switch t {
	case ItemTypeWeapon:
		return slot == components.SlotWeapon
	case ItemTypeHead:
		return slot == components.SlotHead
	case ItemTypeNeck:
		return slot == components.SlotNeck
	case ItemTypeBody:
		return slot == components.SlotBody
	case ItemTypeBack:
		return slot == components.SlotBack
	case ItemTypeRing:
		return slot == components.SlotRing1 || slot == components.SlotRing2
	}
	return false
}

// ItemDefinition represents the static data for an item.
type ItemDefinition struct {
	ID          string // Unique string ID e.g. "sword_rusty"
	Name        string
	Type        ItemType
	Description string
	Value       int // gold

	// Weapon Data
	WeaponSlots []components.WeaponSlot

	// Consumable Data
	Heal float64

	// Document Data
	Pages []string
	Spell components.SpellID // spellscrolls teach this spell when read
}

var Registry = make(map[string]ItemDefinition)

func Register(item ItemDefinition) {
	if _, exists := Registry[item.ID]; exists {
		panic("Duplicate item ID: " + item.ID)
	}
	Registry[item.ID] = item
}

func Get(id string) (ItemDefinition, bool) {
	item, ok := Registry[id]
	return item, ok
}

// NewWeapon builds an empty weapon instance from its definition.
func NewWeapon(id string) (*components.Weapon, bool) {
	def, ok := Registry[id]
	if !ok || def.Type != ItemTypeWeapon {
		return nil, false
	}
	w := &components.Weapon{ItemID: id, Slots: make([]components.WeaponSlot, len(def.WeaponSlots))}
	for i, s := range def.WeaponSlots {
		w.Slots[i] = components.WeaponSlot{
			School:    s.School,
			Modifiers: make([]components.Modifier, len(s.Modifiers)),
		}
	}
	return w, true
}

// SortedIDs returns the ids of defs ordered by name, then id.
func SortedIDs(ids []string) []string {
	sorted := append([]string(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := Registry[sorted[i]], Registry[sorted[j]]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
