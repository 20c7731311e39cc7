package gui

import (
	"fmt"

	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/ui"
)

const descriptionWidth = 196.0

// SpellDescription shows the selected spell next to the weapon window,
// including the modifiers equipped with it.
type SpellDescription struct {
	env     Env
	box     ui.Rect
	visible bool
	spell   components.SpellID
	lines   []string
}

func NewSpellDescription(env Env, x, y float64) *SpellDescription {
	return &SpellDescription{env: env, box: ui.R(x, y, descriptionWidth, 260)}
}

// Reload rebuilds the text for spell id. Equipped spells also list the
// modifiers they carry.
func (d *SpellDescription) Reload(id components.SpellID, modifiers []components.Modifier, equipped bool) {
	d.spell = id
	d.lines = d.lines[:0]
	spell, ok := components.GetSpell(id)
	if !ok {
		return
	}
	width := d.box.W - 16
	d.lines = append(d.lines, ui.CropText(d.env.text(string(id), spell.Name), width))
	d.lines = append(d.lines, d.env.text(spell.School.String(), spell.School.String()))
	d.lines = append(d.lines, fmt.Sprintf("%s: %.1fs", d.env.text("Cooldown", "Cooldown"), spell.Cooldown))
	d.lines = append(d.lines, "")
	d.lines = append(d.lines, ui.WrapText(d.env.text(string(id)+"Desc", spell.Description), width)...)

	if !equipped {
		return
	}
	var equippedMods []string
	for _, m := range modifiers {
		if !m.IsEmpty() {
			equippedMods = append(equippedMods, fmt.Sprintf("  %s %d", d.env.text(m.Type.String(), m.Type.String()), m.Level))
		}
	}
	if len(equippedMods) > 0 {
		d.lines = append(d.lines, "", d.env.text("Modifiers", "Modifiers")+":")
		d.lines = append(d.lines, equippedMods...)
	}
}

func (d *SpellDescription) Spell() components.SpellID { return d.spell }

func (d *SpellDescription) Show()           { d.visible = true }
func (d *SpellDescription) Hide()           { d.visible = false }
func (d *SpellDescription) IsVisible() bool { return d.visible }
func (d *SpellDescription) Lines() []string { return d.lines }

func (d *SpellDescription) Draw(c ui.Canvas) {
	if !d.visible || len(d.lines) == 0 {
		return
	}
	drawTextBox(c, d.box, d.lines)
}

// ItemDescription shows the selected item next to the inventory.
type ItemDescription struct {
	env     Env
	box     ui.Rect
	visible bool
	itemID  string
	lines   []string
}

func NewItemDescription(env Env, x, y float64) *ItemDescription {
	return &ItemDescription{env: env, box: ui.R(x, y, 260, 220)}
}

func (d *ItemDescription) Reload(itemID string, count int, equipped bool) {
	d.itemID = itemID
	d.lines = d.lines[:0]
	def, ok := items.Get(itemID)
	if !ok {
		return
	}
	width := d.box.W - 16
	d.lines = append(d.lines, ui.CropText(d.env.text(itemID, def.Name), width))
	category := def.Type.Category().String()
	d.lines = append(d.lines, d.env.text(category, category))
	if equipped {
		d.lines = append(d.lines, d.env.text("Equipped", "Equipped"))
	} else if count > 1 {
		d.lines = append(d.lines, fmt.Sprintf("x%d", count))
	}
	d.lines = append(d.lines, "")
	d.lines = append(d.lines, ui.WrapText(d.env.text(itemID+"Desc", def.Description), width)...)
	if def.Type == items.ItemTypeWeapon {
		d.lines = append(d.lines, "", fmt.Sprintf("%s: %d", d.env.text("SpellSlots", "Spell slots"), len(def.WeaponSlots)))
	}
	if def.Heal > 0 {
		d.lines = append(d.lines, fmt.Sprintf("%s: %.0f", d.env.text("Heals", "Heals"), def.Heal))
	}
	if def.Value > 0 {
		d.lines = append(d.lines, fmt.Sprintf("%s: %d", d.env.text("Value", "Value"), def.Value))
	}
}

func (d *ItemDescription) ItemID() string { return d.itemID }

func (d *ItemDescription) Show()           { d.visible = true }
func (d *ItemDescription) Hide()           { d.visible = false }
func (d *ItemDescription) IsVisible() bool { return d.visible }

func (d *ItemDescription) Draw(c ui.Canvas) {
	if !d.visible || len(d.lines) == 0 {
		return
	}
	drawTextBox(c, d.box, d.lines)
}

func drawTextBox(c ui.Canvas, box ui.Rect, lines []string) {
	box.H = float64(len(lines))*ui.LineHeight + 16
	c.FillRect(box, ui.ColorWindow)
	c.StrokeRect(box, 1, ui.ColorBorder)
	for i, line := range lines {
		clr := ui.ColorTextDim
		if i == 0 {
			clr = ui.ColorSelected
		}
		c.DrawText(line, box.X+8, box.Y+8+float64(i)*ui.LineHeight, clr)
	}
}
