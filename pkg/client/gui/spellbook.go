package gui

import (
	"grimoire/pkg/character"
	"grimoire/pkg/input"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

const (
	spellbookWidth = 420.0
	tabButtonSize  = 35.0
)

type spellEntry struct {
	slot ui.Handle
	name string
	desc string
}

type modifierRow struct {
	label ui.Label
	slots []ui.Handle
}

// Spellbook lists learned spells per school plus a tab of learned
// modifier levels. Entries are dragged onto the owned WeaponWindow. Only
// the current tab has slots; switching tabs rebuilds them.
type Spellbook struct {
	ui.SelectableWindow

	env        Env
	core       character.Model
	weapon     *WeaponWindow
	modifiable bool
	visible    bool

	window    *ui.Window
	tabBar    *ui.TabBar
	tabs      []components.School // SchoolNone is the modifier tab
	current   int
	tabTitle  ui.Label
	emptyText string

	arena     ui.SlotArena
	spells    []spellEntry
	modifiers []modifierRow
	group     *ui.ButtonGroup
	drag      ui.DragTracker

	gamepadSelection bool
	requireReload    bool
	lastSelected     *ui.Slot
	hovered          *ui.Slot
}

// NewSpellbook builds the spellbook and its weapon window. A spellbook
// that is not modifiable only shows the weapon.
func NewSpellbook(env Env, core character.Model, modifiable bool) *Spellbook {
	s := &Spellbook{
		env:        env,
		core:       core,
		modifiable: modifiable,
		window:     ui.NewWindow(ui.R(config.GUILeft, config.GUITop, spellbookWidth, config.GUIWindowHeight), ""),
		group:      ui.NewButtonGroup(),
	}
	s.SetWindowListener(s)
	s.weapon = NewWeaponWindow(env, core, s, modifiable)
	s.SetRightWindow(&s.weapon.SelectableWindow)
	s.weapon.SetLeftWindow(&s.SelectableWindow)
	s.Reload()
	return s
}

func (s *Spellbook) Weapon() *WeaponWindow { return s.weapon }

func (s *Spellbook) WindowSelectedChanged(selected bool) {
	s.group.SetGamepadEnabled(selected)
	if s.tabBar != nil {
		s.tabBar.SetGamepadEnabled(selected)
	}
}

func (s *Spellbook) IsGamepadSelection() bool { return s.gamepadSelection }

// NotifyChange marks the spellbook and the weapon for a rebuild.
func (s *Spellbook) NotifyChange() {
	s.requireReload = true
	s.weapon.NotifyChange()
}

// Reload rebuilds the tab list and the slots of the current tab, then
// reloads the weapon window. The current tab is kept when it still exists.
func (s *Spellbook) Reload() {
	s.requireReload = false
	s.cancelDrag()

	var previous components.School = -1
	if s.current < len(s.tabs) {
		previous = s.tabs[s.current]
	}

	s.tabs = s.tabs[:0]
	if len(s.core.LearnedModifiers()) > 0 {
		s.tabs = append(s.tabs, components.SchoolNone)
	}
	for _, school := range components.LearnableSchools {
		if len(s.core.LearnedSpells(school)) > 0 {
			s.tabs = append(s.tabs, school)
		}
	}

	s.tabBar = nil
	s.current = 0
	if len(s.tabs) == 0 {
		s.arena.Reset()
		s.spells = nil
		s.modifiers = nil
		s.group = ui.NewButtonGroup()
		s.group.SetSelectableWindow(&s.SelectableWindow)
		s.emptyText = s.env.text("NoSpells", "You have not learned any spells yet.")
		s.tabTitle = ui.Label{}
		s.weapon.Reload()
		return
	}
	s.emptyText = ""

	icons := make([]string, len(s.tabs))
	for i, school := range s.tabs {
		icons[i] = "tab_" + school.String()
		if school == previous {
			s.current = i
		}
	}
	width := float64(len(s.tabs)) * tabButtonSize
	box := s.window.Box
	s.tabBar = ui.NewTexturedTabBar(ui.R(box.X+(box.W-width)/2, box.Y+50, width, tabButtonSize), icons)
	s.tabBar.SetActiveIndex(s.current)
	s.tabBar.SetGamepadEnabled(s.IsWindowSelected())

	s.selectTab(s.current)
	s.weapon.Reload()
}

// selectTab rebuilds the slots of tab i and the button group over them.
func (s *Spellbook) selectTab(i int) {
	s.current = i
	s.arena.Reset()
	s.spells = nil
	s.modifiers = nil
	s.lastSelected = nil
	s.hovered = nil

	box := s.window.Box
	school := s.tabs[i]
	if school == components.SchoolNone {
		s.calculateModifierSlots()
	} else {
		s.calculateSpellSlots(school)
	}

	title := s.env.text(school.String(), school.String())
	if school == components.SchoolNone {
		title = s.env.text("Modifiers", "Modifiers")
	}
	s.tabTitle = ui.Label{Text: title, Color: ui.ColorText}
	s.tabTitle.Centered(box, box.Y+config.GUITextOffset/2)

	s.reloadButtonGroup()
}

func (s *Spellbook) calculateModifierSlots() {
	box := s.window.Box
	y := box.Y + spellOffset
	labelX := box.X + 2*config.GUITextOffset
	slotX := box.Right() - 3*config.ModifierSlotSize - 2*config.GUIMargin - 2*config.GUITextOffset
	learned := s.core.LearnedModifiers()
	for _, t := range components.ModifierTypes {
		maxLevel := learned[t]
		if maxLevel <= 0 {
			continue
		}
		row := modifierRow{label: ui.Label{
			X:     labelX,
			Y:     y + config.ModifierSlotSize/2 - ui.LineHeight/2,
			Text:  s.env.text(t.String(), t.String()),
			Color: ui.ModifierColor(t),
		}}
		for level := 1; level <= maxLevel; level++ {
			slot := ui.NewModifierSlot(components.Modifier{Type: t, Level: level}, config.ModifierSlotSize)
			slot.Draggable = s.modifiable
			slot.SetPosition(slotX+float64(level-1)*(config.ModifierSlotSize+config.GUIMargin), y)
			row.slots = append(row.slots, s.arena.Add(slot))
		}
		s.modifiers = append(s.modifiers, row)
		y += config.ModifierSlotSize + 6
	}
}

func (s *Spellbook) calculateSpellSlots(school components.School) {
	box := s.window.Box
	y := box.Y + spellOffset
	x := box.X + config.GUITextOffset/2 + 2
	textX := x + config.SpellSlotSize + config.GUIMargin
	textWidth := box.Right() - textX - config.GUIMargin
	for _, id := range s.core.LearnedSpells(school) {
		spell, _ := components.GetSpell(id)
		slot := ui.NewSpellSlot(id, components.SchoolNone, config.SpellSlotSize)
		slot.Draggable = s.modifiable
		slot.SetPosition(x, y)
		s.spells = append(s.spells, spellEntry{
			slot: s.arena.Add(slot),
			name: ui.CropText(s.env.text(string(id), spell.Name), textWidth),
			desc: ui.CropText(s.env.text(string(id)+"Desc", spell.Description), textWidth),
		})
		y += config.SpellSlotSize + config.GUIMargin
	}
}

func (s *Spellbook) reloadButtonGroup() {
	s.group = ui.NewButtonGroup()
	s.group.SetSelectableWindow(&s.SelectableWindow)
	s.group.SetGamepadEnabled(s.IsWindowSelected())
	for i, e := range s.spells {
		s.group.AddButton(s.arena.Get(e.slot), i)
	}
	for i, row := range s.modifiers {
		for _, h := range row.slots {
			s.group.AddButton(s.arena.Get(h), i)
		}
	}
}

// CurrentTab is the school of the shown tab, SchoolNone for modifiers.
func (s *Spellbook) CurrentTab() (components.School, bool) {
	if len(s.tabs) == 0 {
		return components.SchoolNone, false
	}
	return s.tabs[s.current], true
}

func (s *Spellbook) Tabs() []components.School { return s.tabs }

// SelectTab switches to the tab showing school.
func (s *Spellbook) SelectTab(school components.School) bool {
	for i, t := range s.tabs {
		if t == school {
			s.cancelDrag()
			s.tabBar.SetActiveIndex(i)
			s.switchTab(i)
			return true
		}
	}
	return false
}

// switchTab shows another tab. A description opened from the old tab
// goes away with its slots.
func (s *Spellbook) switchTab(i int) {
	s.selectTab(i)
	s.weapon.hideBookDescription()
}

func (s *Spellbook) EmptyText() string { return s.emptyText }

// Slots returns the slots of the current tab in display order.
func (s *Spellbook) Slots() []*ui.Slot {
	out := make([]*ui.Slot, 0, s.arena.Len())
	for i := 0; i < s.arena.Len(); i++ {
		out = append(out, s.arena.At(i))
	}
	return out
}

func (s *Spellbook) Update(dt float64) {
	if !s.visible {
		return
	}
	in := s.env.Input

	if s.gamepadSelection {
		if !in.IsGamepadConnected() {
			s.StopGamepadSelection()
		}
		s.weapon.Update(dt)
		return
	}

	if s.requireReload && !s.drag.InProgress() {
		s.Reload()
	}

	if s.tabBar != nil && !s.drag.InProgress() {
		s.tabBar.Update(in, dt)
		if s.tabBar.Changed() {
			s.switchTab(s.tabBar.ActiveIndex())
		}
	}

	s.arena.Update(in, dt)
	s.group.Update(in)
	s.selectHovered()

	for i := 0; i < s.arena.Len(); i++ {
		slot := s.arena.At(i)
		if !slot.IsClicked() {
			continue
		}
		s.group.SelectButtonRef(slot)
		if s.modifiable && slot.Kind == ui.SlotSpell && slot.IsDoubleClicked() {
			s.weapon.EquipSpell(slot.Spell)
			continue
		}
		if slot.Draggable {
			mx, my := in.MousePosition()
			s.drag.Arm(s.arena.HandleAt(i), mx, my)
		}
	}

	if len(s.tabs) == 0 && s.IsWindowSelected() && in.IsGamepadConnected() && !in.IsActionLocked() {
		if in.IsKeyJustPressed(input.KeyRight) && s.SetRightWindowSelected() {
			in.LockAction()
		}
	}

	s.weapon.Update(dt)
	s.syncSelection()

	if s.modifiable {
		s.updateButtonActions()
		s.handleDragAndDrop()
	}
}

// selectHovered selects a slot when the pointer enters it and no drag is
// armed. A slot the pointer rests on does not fight gamepad navigation.
func (s *Spellbook) selectHovered() {
	var hovered *ui.Slot
	for i := 0; i < s.arena.Len(); i++ {
		if slot := s.arena.At(i); slot.IsMousedOver() {
			hovered = slot
			break
		}
	}
	if hovered == s.hovered {
		return
	}
	s.hovered = hovered
	if hovered != nil && !s.drag.InProgress() {
		s.group.SelectButtonRef(hovered)
	}
}

// syncSelection keeps one selection across both windows: a spellbook
// selection clears the weapon one and shows its spell description.
func (s *Spellbook) syncSelection() {
	sel := selectedSlot(s.group)
	if sel == s.lastSelected {
		return
	}
	s.lastSelected = sel
	if sel == nil {
		return
	}
	if sel.Kind == ui.SlotSpell {
		s.weapon.ShowDescription(sel.Spell)
	} else {
		s.weapon.ClearSelection()
	}
}

func (s *Spellbook) clearSelection() {
	s.group.ClearSelection()
	s.lastSelected = nil
}

func (s *Spellbook) updateButtonActions() {
	in := s.env.Input
	if !in.IsGamepadConnected() || !s.IsWindowSelected() || in.IsActionLocked() {
		return
	}
	if in.IsKeyJustPressed(input.KeyInteract) {
		in.LockAction()
		s.StartGamepadSelection()
	}
}

// StartGamepadSelection picks up the selected slot and hands focus to the
// weapon window, which then only offers compatible targets.
func (s *Spellbook) StartGamepadSelection() bool {
	sel := selectedSlot(s.group)
	if sel == nil || sel.IsEmpty() || s.drag.InProgress() {
		return false
	}
	if !s.drag.PickUp(&s.arena, s.arena.HandleOf(sel)) {
		return false
	}
	s.gamepadSelection = true
	switch sel.Kind {
	case ui.SlotSpell:
		s.weapon.HighlightSpellSlots(sel.SpellSchool())
		s.weapon.ActivateForSpell(sel.SpellSchool())
	case ui.SlotModifier:
		s.weapon.HighlightModifierSlots(sel.Modifier.Type)
		s.weapon.ActivateForModifier(sel.Modifier.Type)
	}
	s.SetRightWindowSelected()
	s.weapon.SetWindowLock(true)
	return true
}

// PlaceGamepadSelection commits the held clone onto the weapon slot
// selected in the weapon window.
func (s *Spellbook) PlaceGamepadSelection() bool {
	clone := s.drag.Clone()
	if !s.gamepadSelection || clone == nil {
		return false
	}
	if clone.Slot.Kind == ui.SlotSpell {
		return s.weapon.DropSpell(clone, true)
	}
	return s.weapon.DropModifier(clone, true)
}

// StopGamepadSelection ends the sequence and restores every slot.
func (s *Spellbook) StopGamepadSelection() {
	if !s.gamepadSelection {
		return
	}
	s.gamepadSelection = false
	s.weapon.ClearHighlights()
	s.weapon.ActivateAll()
	s.weapon.SetWindowLock(false)
	s.drag.Finish(&s.arena)
}

func (s *Spellbook) handleDragAndDrop() {
	in := s.env.Input
	if !s.drag.InProgress() || s.drag.IsGamepad() {
		return
	}
	if s.drag.IsDragging() && in.IsKeyJustPressed(input.KeyEscape) {
		in.LockAction()
		s.cancelDrag()
		return
	}

	switch s.drag.Update(in, &s.arena) {
	case ui.DragStarted:
		clone := s.drag.Clone()
		if clone.Slot.Kind == ui.SlotSpell {
			s.weapon.HighlightSpellSlots(clone.Slot.SpellSchool())
		} else {
			s.weapon.HighlightModifierSlots(clone.Slot.Modifier.Type)
		}
	case ui.DragReleased:
		clone := s.drag.Clone()
		if clone.Slot.Kind == ui.SlotSpell {
			s.weapon.DropSpell(clone, false)
		} else {
			s.weapon.DropModifier(clone, false)
		}
		s.weapon.ClearHighlights()
		s.drag.Finish(&s.arena)
	}
}

// cancelDrag reverts a drag or gamepad sequence and leaves the model alone.
func (s *Spellbook) cancelDrag() {
	if s.gamepadSelection {
		s.StopGamepadSelection()
		return
	}
	s.weapon.ClearHighlights()
	s.drag.Finish(&s.arena)
}

func (s *Spellbook) Show() {
	s.visible = true
	s.weapon.Show()
}

// Hide cancels any drag and drops gamepad focus from both windows.
func (s *Spellbook) Hide() {
	s.visible = false
	s.cancelDrag()
	s.SetWindowSelected(false)
	s.weapon.Hide()
}

func (s *Spellbook) IsVisible() bool { return s.visible }

func (s *Spellbook) Draw(c ui.Canvas) {
	if !s.visible {
		return
	}
	s.window.Draw(c)
	box := s.window.Box

	if s.emptyText != "" {
		for i, line := range ui.WrapText(s.emptyText, box.W-2*config.GUITextOffset) {
			c.DrawText(line, box.X+config.GUITextOffset, box.Y+spellOffset+float64(i)*ui.LineHeight, ui.ColorTextDim)
		}
	} else {
		s.tabTitle.Draw(c)
		s.tabBar.Draw(c)
		for _, e := range s.spells {
			slot := s.arena.Get(e.slot)
			x := slot.Box.Right() + config.GUIMargin
			c.DrawText(e.name, x, slot.Box.Y, ui.ColorText)
			c.DrawText(e.desc, x, slot.Box.Y+ui.LineHeight+4, ui.ColorTextDim)
		}
		for _, row := range s.modifiers {
			row.label.Draw(c)
		}
		s.arena.Draw(c)
	}

	s.weapon.Draw(c)
}

func (s *Spellbook) DrawAfterForeground(c ui.Canvas) {
	if !s.visible {
		return
	}
	s.weapon.DrawAfterForeground(c)
	if clone := s.drag.Clone(); clone != nil {
		clone.Draw(c)
	}
}
