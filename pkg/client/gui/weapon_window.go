package gui

import (
	"log"

	"grimoire/pkg/character"
	"grimoire/pkg/input"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

const (
	weaponWindowWidth = 340.0
	spellOffset       = 115.0 // top of the first spell row
)

// WeaponWindow shows the spell slots of the equipped weapon. Its slots
// are rebuilt from the model on every reload and never patched in place.
type WeaponWindow struct {
	ui.SelectableWindow

	env        Env
	core       character.Model
	spellbook  *Spellbook
	modifiable bool
	visible    bool

	window      *ui.Window
	desc        *SpellDescription
	weaponSlot  ui.Slot
	weaponName  string
	noSlotsText string

	arena ui.SlotArena
	rows  [][]ui.Handle // rows[i][0] is spell slot i, the rest are its modifier slots
	group *ui.ButtonGroup
	drag  ui.DragTracker

	requireReload  bool
	lastSelected   *ui.Slot
	descFromWeapon bool
}

func NewWeaponWindow(env Env, core character.Model, spellbook *Spellbook, modifiable bool) *WeaponWindow {
	left := config.GUILeft + spellbookWidth + config.GUIMargin
	w := &WeaponWindow{
		env:        env,
		core:       core,
		spellbook:  spellbook,
		modifiable: modifiable,
		window:     ui.NewWindow(ui.R(left, config.GUITop, weaponWindowWidth, config.GUIWindowHeight), ""),
		desc:       NewSpellDescription(env, left+weaponWindowWidth+config.GUIMargin, config.GUITop),
		group:      ui.NewButtonGroup(),
	}
	w.window.AddCloseButton()
	w.SetWindowListener(w)
	w.Reload()
	return w
}

func (w *WeaponWindow) WindowSelectedChanged(selected bool) {
	w.group.SetGamepadEnabled(selected)
}

// NotifyChange schedules a reload for the next frame it is allowed in.
func (w *WeaponWindow) NotifyChange() {
	w.requireReload = true
}

func (w *WeaponWindow) canReload() bool {
	return !w.drag.InProgress() && !w.spellbook.drag.InProgress()
}

// Reload rebuilds every slot from the weapon currently in the model.
// The selected spell slot is restored by index.
func (w *WeaponWindow) Reload() {
	w.requireReload = false
	w.drag.Reset()

	previous := -1
	if sel := selectedSlot(w.group); sel != nil {
		previous = sel.Nr
		if sel.Kind == ui.SlotModifier {
			previous = sel.SpellSlotNr
		}
	}

	box := w.window.Box
	weapon := w.core.Weapon()
	w.weaponSlot = ui.NewItemSlot("", 0, config.ItemSlotSize)
	w.weaponSlot.Placeholder = "placeholder_" + components.SlotWeapon.String()
	w.weaponSlot.SetPosition(box.X+config.GUITextOffset, box.Y+config.GUITextOffset+8)
	nameWidth := box.W - 2*config.GUITextOffset - 2*config.GUIMargin - config.ItemSlotSize
	if weapon == nil {
		w.weaponName = ui.CropText(w.env.text("NoWeapon", "No weapon equipped"), nameWidth)
	} else {
		w.weaponSlot.ItemID = weapon.ItemID
		w.weaponName = ui.CropText(w.env.text(weapon.ItemID, itemName(weapon.ItemID)), nameWidth)
	}
	w.weaponSlot.Draggable = false

	w.arena.Reset()
	w.rows = nil
	w.lastSelected = nil
	w.noSlotsText = ""
	if w.descFromWeapon {
		w.desc.Hide()
	}

	if weapon != nil && len(weapon.Slots) == 0 {
		w.noSlotsText = ui.CropText(w.env.text("EquipWeapon", "Equip a weapon with spell slots."), box.W-config.GUITextOffset)
	}

	if weapon != nil {
		y := box.Y + spellOffset
		for i, ws := range weapon.Slots {
			x := box.X + config.GUITextOffset/2 + 2
			spell := ui.NewSpellSlot(ws.Spell, ws.School, config.SpellSlotSize)
			spell.Nr = i
			spell.Draggable = w.modifiable && !spell.IsEmpty()
			spell.SetPosition(x, y)
			row := []ui.Handle{w.arena.Add(spell)}
			x += config.SpellSlotSize + config.GUIMargin

			for j, mod := range ws.Modifiers {
				slot := ui.NewModifierSlot(mod, config.ModifierSlotSize)
				slot.Nr = j
				slot.SpellSlotNr = i
				slot.Draggable = w.modifiable && !slot.IsEmpty()
				slot.SetPosition(x, y+(config.SpellSlotSize-config.ModifierSlotSize)/2)
				row = append(row, w.arena.Add(slot))
				x += config.ModifierSlotSize + config.GUIMargin
			}
			w.rows = append(w.rows, row)
			y += config.SpellSlotSize + config.GUIMargin
		}
	}

	w.reloadButtonGroup()
	if previous >= 0 && previous < len(w.rows) {
		if s := w.arena.Get(w.rows[previous][0]); !s.IsEmpty() {
			w.group.SelectButton(previous, 0)
		}
	}
	w.syncDescription()
}

func (w *WeaponWindow) reloadButtonGroup() {
	w.group = ui.NewButtonGroup()
	w.group.SetSelectableWindow(&w.SelectableWindow)
	w.group.SetGamepadEnabled(w.IsWindowSelected())
	for i, row := range w.rows {
		for _, h := range row {
			w.group.AddButton(w.arena.Get(h), i)
		}
	}
}

func (w *WeaponWindow) spellSlot(i int) *ui.Slot {
	return w.arena.Get(w.rows[i][0])
}

func (w *WeaponWindow) Update(dt float64) {
	if !w.visible {
		return
	}
	in := w.env.Input

	if w.requireReload && w.canReload() {
		w.Reload()
	}

	if w.window.Update(in, dt) {
		w.spellbook.Hide()
		return
	}

	w.arena.Update(in, dt)
	w.group.Update(in)

	gamepadSelection := w.spellbook.IsGamepadSelection()
	busy := w.drag.InProgress() || w.spellbook.drag.InProgress()
	for i := range w.rows {
		spell := w.spellSlot(i)
		if spell.IsMousedOver() && !spell.IsEmpty() && !busy {
			w.group.SelectButton(i, 0)
			if w.modifiable && (spell.IsDoubleClicked() || spell.IsRightClicked()) {
				w.drag.Reset()
				w.removeSpell(spell.Nr)
				return
			}
			if spell.IsClicked() && spell.Draggable {
				mx, my := in.MousePosition()
				w.drag.Arm(w.rows[i][0], mx, my)
			}
		}

		for j, h := range w.rows[i][1:] {
			mod := w.arena.Get(h)
			if mod.IsEmpty() || gamepadSelection {
				continue
			}
			if mod.IsClicked() {
				w.group.SelectButton(i, j+1)
				if w.modifiable && mod.IsDoubleClicked() {
					w.drag.Reset()
					w.removeModifier(mod.SpellSlotNr, mod.Nr)
					return
				}
				if mod.Draggable {
					mx, my := in.MousePosition()
					w.drag.Arm(h, mx, my)
				}
			} else if w.modifiable && mod.IsRightClicked() {
				w.removeModifier(mod.SpellSlotNr, mod.Nr)
				return
			}
		}
	}

	w.syncDescription()

	if w.modifiable {
		w.updateButtonActions()
		w.handleDragAndDrop()
	}
}

// syncDescription follows the group selection with the description window.
func (w *WeaponWindow) syncDescription() {
	sel := selectedSlot(w.group)
	if sel == w.lastSelected {
		return
	}
	w.lastSelected = sel
	if sel == nil || sel.Kind != ui.SlotSpell || sel.IsEmpty() {
		return
	}
	w.spellbook.clearSelection()
	w.desc.Reload(sel.Spell, w.modifiersOf(sel.Nr), true)
	w.desc.Show()
	w.descFromWeapon = true
}

func (w *WeaponWindow) modifiersOf(nr int) []components.Modifier {
	if nr < 0 || nr >= len(w.rows) {
		return nil
	}
	var mods []components.Modifier
	for _, h := range w.rows[nr][1:] {
		mods = append(mods, w.arena.Get(h).Modifier)
	}
	return mods
}

// ShowDescription displays a spell that is not on the weapon.
func (w *WeaponWindow) ShowDescription(id components.SpellID) {
	w.ClearSelection()
	w.desc.Reload(id, nil, false)
	w.desc.Show()
	w.descFromWeapon = false
}

func (w *WeaponWindow) hideBookDescription() {
	if !w.descFromWeapon {
		w.desc.Hide()
	}
}

func (w *WeaponWindow) ClearSelection() {
	w.group.ClearSelection()
	w.lastSelected = nil
}

func (w *WeaponWindow) updateButtonActions() {
	in := w.env.Input
	if !in.IsGamepadConnected() || !w.IsWindowSelected() || in.IsActionLocked() {
		return
	}

	if w.spellbook.IsGamepadSelection() {
		switch {
		case in.IsKeyJustPressed(input.KeyEscape):
			in.LockAction()
			w.spellbook.StopGamepadSelection()
			w.SetLeftWindowSelected()
		case in.IsKeyJustPressed(input.KeyInteract):
			in.LockAction()
			w.spellbook.PlaceGamepadSelection()
			w.spellbook.StopGamepadSelection()
			w.SetLeftWindowSelected()
		}
		return
	}

	sel := selectedSlot(w.group)
	if sel == nil || sel.IsEmpty() || !in.IsKeyJustPressed(input.KeyInteract) {
		return
	}
	in.LockAction()
	switch sel.Kind {
	case ui.SlotSpell:
		w.removeSpell(sel.Nr)
	case ui.SlotModifier:
		w.removeModifier(sel.SpellSlotNr, sel.Nr)
	}
}

func (w *WeaponWindow) handleDragAndDrop() {
	if w.spellbook.IsGamepadSelection() || !w.drag.InProgress() {
		return
	}
	if w.drag.IsDragging() && w.env.Input.IsKeyJustPressed(input.KeyEscape) {
		w.env.Input.LockAction()
		w.cancelDrag()
		return
	}

	switch w.drag.Update(w.env.Input, &w.arena) {
	case ui.DragStarted:
		clone := w.drag.Clone()
		switch clone.Slot.Kind {
		case ui.SlotSpell:
			w.HighlightSpellSlots(clone.Slot.SpellSchool())
		case ui.SlotModifier:
			w.HighlightModifierSlots(clone.Slot.Modifier.Type)
		}
	case ui.DragReleased:
		w.stopDragging()
	}
}

// stopDragging resolves a drag that started on the weapon. Dropping it
// away from its own slot removes it there, and a highlighted slot under
// the clone receives it.
func (w *WeaponWindow) stopDragging() {
	clone := w.drag.Clone()
	origin := w.arena.Get(clone.Origin)
	if origin != nil && !clone.Box().Intersects(origin.Box) {
		switch clone.Slot.Kind {
		case ui.SlotSpell:
			w.removeSpell(clone.Slot.Nr)
			w.DropSpell(clone, false)
		case ui.SlotModifier:
			w.removeModifier(clone.Slot.SpellSlotNr, clone.Slot.Nr)
			w.DropModifier(clone, false)
		}
	}
	w.ClearHighlights()
	w.drag.Finish(&w.arena)
}

// cancelDrag reverts an in flight drag without touching the model.
func (w *WeaponWindow) cancelDrag() {
	w.ClearHighlights()
	w.drag.Finish(&w.arena)
}

func (w *WeaponWindow) removeSpell(nr int) {
	if err := w.core.RemoveSpell(nr); err != nil {
		log.Printf("Remove spell from slot %d: %v", nr, err)
		return
	}
	w.env.play(SoundSpell)
	w.requireReload = true
}

func (w *WeaponWindow) removeModifier(slot, nr int) {
	if err := w.core.RemoveModifier(slot, nr); err != nil {
		log.Printf("Remove modifier %d from slot %d: %v", nr, slot, err)
		return
	}
	w.env.play(SoundGem)
	w.requireReload = true
}

// HighlightSpellSlots marks every spell slot accepting school as a drop candidate.
func (w *WeaponWindow) HighlightSpellSlots(school components.School) {
	for i := range w.rows {
		if s := w.spellSlot(i); s.Accepts(school) {
			s.Highlight()
		}
	}
}

// HighlightModifierSlots marks the modifier slots of every spell that
// allows t. Slots without a spell are never candidates.
func (w *WeaponWindow) HighlightModifierSlots(t components.ModifierType) {
	for i := range w.rows {
		if !components.AllowsModifier(w.spellSlot(i).Spell, t) {
			continue
		}
		for _, h := range w.rows[i][1:] {
			w.arena.Get(h).Highlight()
		}
	}
}

func (w *WeaponWindow) ClearHighlights() {
	w.arena.UnhighlightAll()
}

// ActivateForSpell leaves only the spell slots accepting school active
// while a gamepad sequence picks its target.
func (w *WeaponWindow) ActivateForSpell(school components.School) {
	for i := range w.rows {
		spell := w.spellSlot(i)
		if spell.Accepts(school) {
			spell.Activate()
		} else {
			spell.Deactivate()
		}
		for _, h := range w.rows[i][1:] {
			w.arena.Get(h).Deactivate()
		}
	}
	w.resetSelection()
}

// ActivateForModifier leaves only modifier slots of spells allowing t active.
func (w *WeaponWindow) ActivateForModifier(t components.ModifierType) {
	for i := range w.rows {
		w.spellSlot(i).Deactivate()
		allowed := components.AllowsModifier(w.spellSlot(i).Spell, t)
		for _, h := range w.rows[i][1:] {
			if allowed {
				w.arena.Get(h).Activate()
			} else {
				w.arena.Get(h).Deactivate()
			}
		}
	}
	w.resetSelection()
}

func (w *WeaponWindow) ActivateAll() {
	for i := 0; i < w.arena.Len(); i++ {
		w.arena.At(i).Activate()
	}
	w.resetSelection()
}

func (w *WeaponWindow) resetSelection() {
	w.group.ClearSelection()
	w.group.SelectFirst()
	w.lastSelected = selectedSlot(w.group)
}

func (w *WeaponWindow) SetWindowLock(locked bool) {
	w.group.SetWindowLock(locked)
}

// DropSpell commits a spell clone onto the highlighted slot it overlaps,
// or onto the selected slot for a gamepad placement.
func (w *WeaponWindow) DropSpell(clone *ui.SlotClone, onSelected bool) bool {
	if clone == nil || clone.Slot.Kind != ui.SlotSpell {
		return false
	}
	target := selectedSlot(w.group)
	if onSelected && (target == nil || target.Kind != ui.SlotSpell) {
		return false
	}
	for i := range w.rows {
		slot := w.spellSlot(i)
		if !slot.IsHighlighted() {
			continue
		}
		if (onSelected && slot == target) || (!onSelected && clone.Box().Intersects(slot.Box)) {
			if err := w.core.AddSpell(clone.Slot.Spell, slot.Nr); err != nil {
				log.Printf("Equip spell %s into slot %d: %v", clone.Slot.Spell, slot.Nr, err)
				return false
			}
			w.env.play(SoundSpell)
			w.requireReload = true
			return true
		}
	}
	return false
}

// DropModifier commits a modifier clone onto a highlighted modifier slot.
func (w *WeaponWindow) DropModifier(clone *ui.SlotClone, onSelected bool) bool {
	if clone == nil || clone.Slot.Kind != ui.SlotModifier {
		return false
	}
	target := selectedSlot(w.group)
	if onSelected && (target == nil || target.Kind != ui.SlotModifier) {
		return false
	}
	for i := range w.rows {
		for _, h := range w.rows[i][1:] {
			slot := w.arena.Get(h)
			if !slot.IsHighlighted() {
				continue
			}
			if (onSelected && slot == target) || (!onSelected && clone.Box().Intersects(slot.Box)) {
				if err := w.core.AddModifier(clone.Slot.Modifier, slot.SpellSlotNr, slot.Nr); err != nil {
					log.Printf("Add modifier %s to slot %d/%d: %v", clone.Slot.Modifier.Type, slot.SpellSlotNr, slot.Nr, err)
					return false
				}
				w.env.play(SoundGem)
				w.requireReload = true
				return true
			}
		}
	}
	return false
}

// EquipSpell puts id into the first empty compatible slot, or overwrites
// the first compatible slot when none is empty. A spell already on the
// weapon is left where it is.
func (w *WeaponWindow) EquipSpell(id components.SpellID) bool {
	weapon := w.core.Weapon()
	if weapon == nil || weapon.SlotOf(id) >= 0 {
		return false
	}
	school := components.SchoolOf(id)
	target := -1
	for i, s := range weapon.Slots {
		if s.School.Accepts(school) && s.Spell == components.NoSpell {
			target = i
			break
		}
	}
	if target < 0 {
		for i, s := range weapon.Slots {
			if s.School.Accepts(school) {
				target = i
				break
			}
		}
	}
	if target < 0 {
		return false
	}
	if err := w.core.AddSpell(id, target); err != nil {
		log.Printf("Equip spell %s: %v", id, err)
		return false
	}
	w.env.play(SoundSpell)
	w.requireReload = true
	return true
}

func (w *WeaponWindow) Show() {
	w.visible = true
}

func (w *WeaponWindow) Hide() {
	w.visible = false
	w.cancelDrag()
	w.SetWindowSelected(false)
	w.desc.Hide()
}

func (w *WeaponWindow) IsVisible() bool { return w.visible }

func (w *WeaponWindow) Description() *SpellDescription { return w.desc }

// SlotContents lists the spell and modifiers shown per weapon slot.
func (w *WeaponWindow) SlotContents() []components.WeaponSlot {
	out := make([]components.WeaponSlot, len(w.rows))
	for i := range w.rows {
		spell := w.spellSlot(i)
		out[i] = components.WeaponSlot{School: spell.School, Spell: spell.Spell, Modifiers: w.modifiersOf(i)}
	}
	return out
}

func (w *WeaponWindow) Draw(c ui.Canvas) {
	if !w.visible {
		return
	}
	w.window.Draw(c)
	w.weaponSlot.Draw(c)
	box := w.window.Box
	c.DrawText(w.weaponName, box.X+config.GUITextOffset+2*config.GUIMargin+config.ItemSlotSize, w.weaponSlot.Box.Center().Y-ui.LineHeight/2, ui.ColorText)
	if w.noSlotsText != "" {
		c.DrawText(w.noSlotsText, box.X+config.GUITextOffset/2+2, box.Y+spellOffset, ui.ColorText)
	}
	w.arena.Draw(c)
	w.desc.Draw(c)
}

func (w *WeaponWindow) DrawAfterForeground(c ui.Canvas) {
	if !w.visible {
		return
	}
	if clone := w.drag.Clone(); clone != nil {
		clone.Draw(c)
	}
}
