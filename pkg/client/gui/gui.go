// Package gui holds the equipment and spell panels: Inventory, Spellbook
// with its WeaponWindow, and the description and reader windows around
// them. Panels never import a rendering or input backend; everything
// arrives through Env and ui.Canvas.
package gui

import (
	"grimoire/pkg/input"
	"grimoire/pkg/items"
	"grimoire/pkg/ui"
)

// Env bundles the collaborators every panel needs. It is built once by
// the application and shared by all panels.
type Env struct {
	Input input.Controller
	Text  ui.TextProvider
	Sound ui.SoundPlayer
}

// Sounds
const (
	SoundSpell = "gui_spell"
	SoundGem   = "gui_gem"
	SoundItem  = "gui_item"
	SoundPage  = "gui_page"
)

func (e Env) play(key string) {
	if e.Sound != nil {
		e.Sound.Play(key)
	}
}

// text looks up key and falls back when the provider does not know it.
func (e Env) text(key, fallback string) string {
	if e.Text == nil {
		return fallback
	}
	if s := e.Text.Text(key); s != "" && s != key {
		return s
	}
	return fallback
}

// selectedSlot returns the selected slot of a group, if any.
func selectedSlot(g *ui.ButtonGroup) *ui.Slot {
	if g == nil {
		return nil
	}
	s, _ := g.SelectedButton().(*ui.Slot)
	return s
}

func itemName(id string) string {
	if def, ok := items.Get(id); ok {
		return def.Name
	}
	return id
}
