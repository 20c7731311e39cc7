package components

// Modifier is one learned gem. Level is 1-based, zero means an empty slot.
type Modifier struct {
	Type  ModifierType
	Level int
}

func (m Modifier) IsEmpty() bool {
	return m.Type == ModifierNone || m.Level <= 0
}

// WeaponSlot holds one spell and its fixed number of modifier slots.
type WeaponSlot struct {
	School    School // slot family, SchoolMeta accepts any spell
	Spell     SpellID
	Modifiers []Modifier // capacity is len(Modifiers), empty entries are zero values
}

// Weapon is the equipped weapon with its spell slot layout.
type Weapon struct {
	ItemID string
	Slots  []WeaponSlot
}

// Clone returns a deep copy so callers can never mutate the model through it.
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	c := &Weapon{ItemID: w.ItemID, Slots: make([]WeaponSlot, len(w.Slots))}
	for i, s := range w.Slots {
		c.Slots[i] = WeaponSlot{
			School:    s.School,
			Spell:     s.Spell,
			Modifiers: append([]Modifier(nil), s.Modifiers...),
		}
	}
	return c
}

// SlotOf returns the index of the slot holding spell id, or -1.
func (w *Weapon) SlotOf(id SpellID) int {
	if w == nil || id == NoSpell {
		return -1
	}
	for i, s := range w.Slots {
		if s.Spell == id {
			return i
		}
	}
	return -1
}

// Equipment slots of the character
type EquipmentSlot int

const (
	SlotNone EquipmentSlot = iota
	SlotWeapon
	SlotHead
	SlotNeck
	SlotBody
	SlotBack
	SlotRing1
	SlotRing2
)

// EquipmentSlots lists the slots in display order.
var EquipmentSlots = []EquipmentSlot{SlotWeapon, SlotHead, SlotNeck, SlotBody, SlotBack, SlotRing1, SlotRing2}

func (s EquipmentSlot) String() string {
	switch s {
	case SlotWeapon:
		return "Weapon"
	case SlotHead:
		return "Head"
	case SlotNeck:
		return "Neck"
	case SlotBody:
		return "Body"
	case SlotBack:
		return "Back"
	case SlotRing1:
		return "Ring1"
	case SlotRing2:
		return "Ring2"
	default:
		return "None"
	}
}
