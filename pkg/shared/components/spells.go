package components

import (
	"image/color"
	"strings"
)

// School is the family a spell belongs to. Weapon slots of school Meta
// accept spells of every school. SchoolNone marks the modifier tab and
// empty slots.
type School int

const (
	SchoolNone School = iota
	SchoolTwilight
	SchoolDivine
	SchoolElemental
	SchoolNecromancy
	SchoolMeta
)

// LearnableSchools lists the schools shown as spellbook tabs, in tab order.
var LearnableSchools = []School{SchoolTwilight, SchoolDivine, SchoolElemental, SchoolNecromancy}

func (s School) String() string {
	switch s {
	case SchoolTwilight:
		return "Twilight"
	case SchoolDivine:
		return "Divine"
	case SchoolElemental:
		return "Elemental"
	case SchoolNecromancy:
		return "Necromancy"
	case SchoolMeta:
		return "Meta"
	default:
		return "None"
	}
}

// Accepts reports whether a weapon slot of school s can hold a spell of school spell.
func (s School) Accepts(spell School) bool {
	if spell == SchoolNone {
		return false
	}
	return s == SchoolMeta || s == spell
}

type ModifierType int

const (
	ModifierNone ModifierType = iota
	ModifierDamage
	ModifierSpeed
	ModifierCount
	ModifierReflect
	ModifierRange
	ModifierDuration
	ModifierStrength
)

// ModifierTypes is the display order of the modifier tab.
var ModifierTypes = []ModifierType{
	ModifierDamage, ModifierSpeed, ModifierCount, ModifierReflect,
	ModifierRange, ModifierDuration, ModifierStrength,
}

// ParseModifierType maps a display name such as "damage" back to its type.
func ParseModifierType(name string) (ModifierType, bool) {
	for _, t := range ModifierTypes {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return ModifierNone, false
}

func (t ModifierType) String() string {
	switch t {
	case ModifierDamage:
		return "Damage"
	case ModifierSpeed:
		return "Speed"
	case ModifierCount:
		return "Count"
	case ModifierReflect:
		return "Reflect"
	case ModifierRange:
		return "Range"
	case ModifierDuration:
		return "Duration"
	case ModifierStrength:
		return "Strength"
	default:
		return "None"
	}
}

type SpellID string

const NoSpell SpellID = ""

type Spell struct {
	ID               SpellID
	Name             string // Display Name
	Description      string // Tooltip text
	School           School
	Color            color.RGBA
	Cooldown         float64 // Seconds
	AllowedModifiers []ModifierType
}

var SpellRegistry = map[SpellID]Spell{
	"fireball": {
		ID:               "fireball",
		Name:             "Fireball",
		Description:      "Launches a fiery ball dealing damage.",
		School:           SchoolElemental,
		Color:            color.RGBA{255, 100, 50, 255}, // Orange/Red
		Cooldown:         2.0,
		AllowedModifiers: []ModifierType{ModifierDamage, ModifierSpeed, ModifierCount, ModifierReflect, ModifierStrength},
	},
	"icyambush": {
		ID:               "icyambush",
		Name:             "Icy Ambush",
		Description:      "Freezes the first enemy hit and teleports you behind it.",
		School:           SchoolElemental,
		Color:            color.RGBA{120, 200, 255, 255},
		Cooldown:         6.0,
		AllowedModifiers: []ModifierType{ModifierDamage, ModifierRange, ModifierDuration},
	},
	"heal": {
		ID:               "heal",
		Name:             "Heal",
		Description:      "Restores a small amount of health.",
		School:           SchoolDivine,
		Color:            color.RGBA{100, 255, 100, 255}, // Green
		Cooldown:         5.0,
		AllowedModifiers: []ModifierType{ModifierStrength},
	},
	"holyfire": {
		ID:               "holyfire",
		Name:             "Holy Fire",
		Description:      "Burns every enemy standing close to you.",
		School:           SchoolDivine,
		Color:            color.RGBA{255, 230, 120, 255},
		Cooldown:         8.0,
		AllowedModifiers: []ModifierType{ModifierDamage, ModifierRange, ModifierDuration},
	},
	"shield": {
		ID:               "shield",
		Name:             "Mana Shield",
		Description:      "Absorbs damage using mana.",
		School:           SchoolTwilight,
		Color:            color.RGBA{200, 200, 255, 255}, // Light Blue
		Cooldown:         15.0,
		AllowedModifiers: []ModifierType{ModifierDuration, ModifierStrength},
	},
	"void": {
		ID:               "void",
		Name:             "Void Walk",
		Description:      "Become invisible for a short time.",
		School:           SchoolTwilight,
		Color:            color.RGBA{100, 0, 100, 255}, // Purple
		Cooldown:         20.0,
		AllowedModifiers: []ModifierType{ModifierDuration},
	},
	"raisethedead": {
		ID:               "raisethedead",
		Name:             "Raise the Dead",
		Description:      "Turns a fallen enemy into an ally.",
		School:           SchoolNecromancy,
		Color:            color.RGBA{90, 160, 90, 255},
		Cooldown:         12.0,
		AllowedModifiers: []ModifierType{ModifierCount, ModifierDuration, ModifierStrength},
	},
	"leechingglyph": {
		ID:               "leechingglyph",
		Name:             "Leeching Glyph",
		Description:      "Drains the health of enemies stepping on the glyph.",
		School:           SchoolNecromancy,
		Color:            color.RGBA{160, 40, 60, 255},
		Cooldown:         10.0,
		AllowedModifiers: []ModifierType{ModifierDamage, ModifierCount, ModifierDuration},
	},
}

// GetSpell returns the registry entry for id. Unknown ids yield an empty
// spell of SchoolNone that allows no modifiers.
func GetSpell(id SpellID) (Spell, bool) {
	spell, ok := SpellRegistry[id]
	return spell, ok
}

// SchoolOf returns the school of a registered spell, or SchoolNone.
func SchoolOf(id SpellID) School {
	return SpellRegistry[id].School
}

// AllowsModifier reports whether the spell id accepts modifiers of type t.
// An empty spell accepts nothing.
func AllowsModifier(id SpellID, t ModifierType) bool {
	if id == NoSpell || t == ModifierNone {
		return false
	}
	for _, allowed := range SpellRegistry[id].AllowedModifiers {
		if allowed == t {
			return true
		}
	}
	return false
}
