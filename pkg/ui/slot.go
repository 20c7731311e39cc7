package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"grimoire/pkg/input"
	"grimoire/pkg/shared/components"
)

type SlotKind int

const (
	SlotSpell SlotKind = iota
	SlotModifier
	SlotItem
)

func (k SlotKind) String() string {
	switch k {
	case SlotSpell:
		return "spell"
	case SlotModifier:
		return "modifier"
	default:
		return "item"
	}
}

type SlotState int

const (
	StateActive SlotState = iota
	StateSelected
	StateHighlighted
	StateInactive
	StateLocked
)

func (s SlotState) String() string {
	switch s {
	case StateSelected:
		return "selected"
	case StateHighlighted:
		return "highlighted"
	case StateInactive:
		return "inactive"
	case StateLocked:
		return "locked"
	default:
		return "active"
	}
}

// Slot is one interactive cell holding a spell, a modifier or an item.
// Only the fields matching Kind are meaningful.
type Slot struct {
	Region
	Kind SlotKind

	Spell  components.SpellID
	School components.School // accepted school for weapon slots, own school otherwise

	Modifier components.Modifier

	ItemID    string
	Count     int
	EquipSlot components.EquipmentSlot // set for equipment slots in the inventory

	Nr          int // spell slot index on the weapon, modifier index for modifier slots, -1 outside a weapon
	SpellSlotNr int // owning spell slot of a weapon modifier slot
	Draggable   bool
	Placeholder string // sprite shown when empty

	selected    bool
	highlighted bool
	inactive    bool
	locked      bool
}

func NewSpellSlot(id components.SpellID, school components.School, size float64) Slot {
	if school == components.SchoolNone {
		school = components.SchoolOf(id)
	}
	return Slot{
		Region:    Region{Box: R(0, 0, size, size)},
		Kind:      SlotSpell,
		Spell:     id,
		School:    school,
		Nr:        -1,
		Draggable: id != components.NoSpell,
	}
}

func NewModifierSlot(mod components.Modifier, size float64) Slot {
	return Slot{
		Region:    Region{Box: R(0, 0, size, size)},
		Kind:      SlotModifier,
		Modifier:  mod,
		Nr:        -1,
		Draggable: !mod.IsEmpty(),
	}
}

func NewItemSlot(itemID string, count int, size float64) Slot {
	return Slot{
		Region:    Region{Box: R(0, 0, size, size)},
		Kind:      SlotItem,
		ItemID:    itemID,
		Count:     count,
		Nr:        -1,
		Draggable: itemID != "",
	}
}

func (s *Slot) IsEmpty() bool {
	switch s.Kind {
	case SlotSpell:
		return s.Spell == components.NoSpell
	case SlotModifier:
		return s.Modifier.IsEmpty()
	default:
		return s.ItemID == ""
	}
}

// ContentID identifies what the slot holds, empty for empty slots.
func (s *Slot) ContentID() string {
	if s.IsEmpty() {
		return ""
	}
	switch s.Kind {
	case SlotSpell:
		return string(s.Spell)
	case SlotModifier:
		return s.Modifier.Type.String() + ":" + strconv.Itoa(s.Modifier.Level)
	default:
		return s.ItemID
	}
}

// Accepts reports whether this spell slot can take a spell of school.
func (s *Slot) Accepts(school components.School) bool {
	return s.Kind == SlotSpell && s.School.Accepts(school)
}

// SpellSchool is the school of the held spell.
func (s *Slot) SpellSchool() components.School {
	return components.SchoolOf(s.Spell)
}

// State returns the authoritative visual state.
func (s *Slot) State() SlotState {
	switch {
	case s.locked:
		return StateLocked
	case s.inactive:
		return StateInactive
	case s.highlighted:
		return StateHighlighted
	case s.selected:
		return StateSelected
	default:
		return StateActive
	}
}

func (s *Slot) Select()          { s.selected = true }
func (s *Slot) Deselect()        { s.selected = false }
func (s *Slot) IsSelected() bool { return s.selected }
func (s *Slot) Activate()        { s.inactive = false }
func (s *Slot) Deactivate()      { s.inactive = true }
func (s *Slot) Highlight()       { s.highlighted = true }
func (s *Slot) Unhighlight()     { s.highlighted = false }
func (s *Slot) IsHighlighted() bool {
	return s.highlighted && !s.inactive && !s.locked
}
func (s *Slot) SetLocked(locked bool) { s.locked = locked }
func (s *Slot) IsLocked() bool        { return s.locked }

// IsActive reports whether the slot takes part in interaction.
func (s *Slot) IsActive() bool {
	return !s.inactive && !s.locked
}

// Update polls this frame's input. Inactive slots see no edges.
func (s *Slot) Update(in input.Controller, dt float64) {
	if !s.IsActive() {
		s.Region.Clear()
		return
	}
	s.Region.Update(in, dt)
}

// SpriteKey names the icon of the slot content.
func (s *Slot) SpriteKey() string {
	if s.IsEmpty() {
		return s.Placeholder
	}
	switch s.Kind {
	case SlotSpell:
		return "spell_" + string(s.Spell)
	case SlotModifier:
		return "modifier_" + s.Modifier.Type.String()
	default:
		return "item_" + s.ItemID
	}
}

func (s *Slot) Draw(c Canvas) {
	state := s.State()

	// Draw Background
	bg := ColorSlot
	if s.Kind == SlotSpell && s.IsEmpty() && s.School != components.SchoolNone {
		bg = SchoolColor(s.School)
		bg.A = 90
	}
	c.FillRect(s.Box, bg)

	// Draw Icon
	alpha := 1.0
	if state == StateInactive || state == StateLocked {
		alpha = 0.4
	}
	if key := s.SpriteKey(); key != "" && !c.DrawSprite(key, s.Box.Inset(3), alpha) && !s.IsEmpty() {
		c.FillRect(s.Box.Inset(6), fallbackColor(s))
	}

	if s.Kind == SlotModifier && !s.IsEmpty() {
		c.DrawText(strconv.Itoa(s.Modifier.Level), s.Box.X+3, s.Box.Y+1, ColorText)
	}
	if s.Kind == SlotItem && s.Count > 1 {
		label := fmt.Sprintf("%d", s.Count)
		c.DrawText(label, s.Box.Right()-TextWidth(label)-3, s.Box.Bottom()-LineHeight, ColorText)
	}

	// Draw Border
	switch state {
	case StateSelected:
		c.StrokeRect(s.Box, 2, ColorSelected)
	case StateHighlighted:
		c.StrokeRect(s.Box, 2, ColorHighlighted)
	case StateInactive:
		c.FillRect(s.Box, ColorInactive)
		c.StrokeRect(s.Box, 1, ColorSlotBorder)
	case StateLocked:
		c.FillRect(s.Box, ColorLocked)
		c.StrokeRect(s.Box, 1, ColorSlotBorder)
	default:
		c.StrokeRect(s.Box, 1, ColorSlotBorder)
	}
}

func fallbackColor(s *Slot) color.RGBA {
	switch s.Kind {
	case SlotSpell:
		if spell, ok := components.GetSpell(s.Spell); ok {
			return spell.Color
		}
	case SlotModifier:
		return ModifierColor(s.Modifier.Type)
	}
	return color.RGBA{180, 140, 90, 255}
}

func SchoolColor(s components.School) color.RGBA {
	switch s {
	case components.SchoolTwilight:
		return color.RGBA{120, 80, 200, 255}
	case components.SchoolDivine:
		return color.RGBA{240, 220, 120, 255}
	case components.SchoolElemental:
		return color.RGBA{230, 90, 40, 255}
	case components.SchoolNecromancy:
		return color.RGBA{70, 160, 80, 255}
	case components.SchoolMeta:
		return color.RGBA{200, 200, 200, 255}
	}
	return color.RGBA{60, 60, 60, 255}
}

func ModifierColor(t components.ModifierType) color.RGBA {
	switch t {
	case components.ModifierDamage:
		return color.RGBA{220, 40, 40, 255}
	case components.ModifierSpeed:
		return color.RGBA{240, 240, 90, 255}
	case components.ModifierCount:
		return color.RGBA{90, 200, 240, 255}
	case components.ModifierReflect:
		return color.RGBA{200, 200, 255, 255}
	case components.ModifierRange:
		return color.RGBA{90, 220, 120, 255}
	case components.ModifierDuration:
		return color.RGBA{170, 90, 220, 255}
	case components.ModifierStrength:
		return color.RGBA{240, 150, 40, 255}
	}
	return color.RGBA{80, 80, 80, 255}
}
