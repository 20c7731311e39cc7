package gui

import (
	"fmt"
	"log"

	"grimoire/pkg/character"
	"grimoire/pkg/input"
	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

const (
	inventoryWidth   = 420.0
	inventoryColumns = 5
	scrollBarWidth   = 10.0
)

type itemCell struct {
	slot    ui.Handle
	content ui.Rect // position inside the scrolled grid
}

// Inventory shows the bag one category per tab above a strip of
// equipped items. What using or dropping an item does depends on the
// host's Context.
type Inventory struct {
	ui.SelectableWindow

	env     Env
	core    character.Model
	host    ItemHost
	visible bool

	window *ui.Window
	desc   *ItemDescription
	tabBar *ui.TabBar
	scroll *ui.ScrollHelper

	tabTitle  ui.Label
	emptyText string
	goldText  string

	arena     ui.SlotArena
	equipment []ui.Handle
	cells     []itemCell
	group     *ui.ButtonGroup
	drag      ui.DragTracker

	requireReload bool
	selectedID    string
	selectedEquip bool
	lastSelected  *ui.Slot
}

func NewInventory(env Env, core character.Model, host ItemHost) *Inventory {
	box := ui.R(config.GUILeft, config.GUITop, inventoryWidth, config.GUIWindowHeight)
	inv := &Inventory{
		env:    env,
		core:   core,
		host:   host,
		window: ui.NewWindow(box, env.text("Inventory", "Inventory")),
		desc:   NewItemDescription(env, box.Right()+config.GUIMargin, box.Y),
		group:  ui.NewButtonGroup(),
	}
	inv.window.AddCloseButton()

	icons := make([]string, len(items.Categories))
	for i, c := range items.Categories {
		icons[i] = "tab_" + c.String()
	}
	tabsWidth := box.W - 2*config.GUITextOffset
	inv.tabBar = ui.NewTexturedTabBar(ui.R(box.X+config.GUITextOffset, box.Y+90, tabsWidth, 30), icons)

	view := ui.R(box.X+config.GUITextOffset, box.Y+150, tabsWidth-scrollBarWidth-config.GUIMargin, 282)
	bar := ui.NewScrollBar(ui.R(view.Right()+config.GUIMargin, view.Y, scrollBarWidth, view.H), view.H)
	inv.scroll = ui.NewScrollHelper(view, bar)

	inv.SetWindowListener(inv)
	inv.Reload()
	return inv
}

func (inv *Inventory) WindowSelectedChanged(selected bool) {
	inv.group.SetGamepadEnabled(selected)
	inv.tabBar.SetGamepadEnabled(selected)
}

// NotifyChange marks the inventory dirty. The rebuild waits for any
// drag in flight.
func (inv *Inventory) NotifyChange(itemID string) {
	inv.requireReload = true
}

func (inv *Inventory) currentCategory() items.Category {
	return items.Categories[inv.tabBar.ActiveIndex()]
}

// Reload rebuilds the equipment strip and the slots of the current tab.
// Tab, scroll offset and the selected item survive.
func (inv *Inventory) Reload() {
	inv.requireReload = false
	inv.drag.Reset()
	inv.lastSelected = nil

	box := inv.window.Box
	inv.arena.Reset()
	inv.equipment = inv.equipment[:0]
	for _, s := range equipmentSlots(inv.core, box.X+config.GUITextOffset, box.Y+ui.TitleBarHeight+config.GUIMargin) {
		inv.equipment = append(inv.equipment, inv.arena.Add(s))
	}

	category := inv.currentCategory()
	bag := inv.core.Items()
	ids := make([]string, 0, len(bag))
	for id, n := range bag {
		if def, ok := items.Get(id); ok && n > 0 && def.Type.Category() == category {
			ids = append(ids, id)
		}
	}
	ids = items.SortedIDs(ids)

	inv.cells = inv.cells[:0]
	step := config.ItemSlotSize + config.GUIMargin
	for i, id := range ids {
		def, _ := items.Get(id)
		slot := ui.NewItemSlot(id, bag[id], config.ItemSlotSize)
		slot.Draggable = def.Type.IsEquipment()
		content := ui.R(float64(i%inventoryColumns)*step, float64(i/inventoryColumns)*step, config.ItemSlotSize, config.ItemSlotSize)
		inv.cells = append(inv.cells, itemCell{slot: inv.arena.Add(slot), content: content})
	}
	rows := (len(ids) + inventoryColumns - 1) / inventoryColumns
	inv.scroll.Bar.ContentHeight = max(0, float64(rows)*step-config.GUIMargin)
	inv.scroll.Bar.SetOffset(inv.scroll.Bar.Offset())
	inv.layoutCells()

	title := inv.env.text(category.String(), category.String())
	inv.tabTitle = ui.Label{Text: title, Color: ui.ColorText}
	inv.tabTitle.Centered(box, box.Y+128)
	inv.emptyText = ""
	if len(ids) == 0 {
		inv.emptyText = inv.env.text("NoItems", "No items.")
	}
	inv.goldText = fmt.Sprintf("%s: %d", inv.env.text("Gold", "Gold"), inv.core.Gold())

	inv.reloadButtonGroup()
	inv.restoreSelection()
}

func (inv *Inventory) reloadButtonGroup() {
	inv.group = ui.NewButtonGroup()
	inv.group.SetSelectableWindow(&inv.SelectableWindow)
	inv.group.SetGamepadEnabled(inv.IsWindowSelected())
	for _, h := range inv.equipment {
		inv.group.AddButton(inv.arena.Get(h), 0)
	}
	for i, c := range inv.cells {
		inv.group.AddButton(inv.arena.Get(c.slot), 1+i/inventoryColumns)
	}
}

func (inv *Inventory) restoreSelection() {
	if inv.selectedID == "" {
		inv.desc.Hide()
		return
	}
	for i := 0; i < inv.arena.Len(); i++ {
		s := inv.arena.At(i)
		if s.ItemID == inv.selectedID && (s.EquipSlot != components.SlotNone) == inv.selectedEquip {
			inv.group.SelectButtonRef(s)
			inv.syncDescription()
			return
		}
	}
	inv.selectedID = ""
	inv.desc.Hide()
}

// layoutCells moves the grid slots to their scrolled screen position.
func (inv *Inventory) layoutCells() {
	for _, c := range inv.cells {
		s := inv.arena.Get(c.slot)
		box := inv.scroll.Layout(c.content)
		s.SetPosition(box.X, box.Y)
	}
}

// scrollTo brings a grid slot selected by the gamepad into view.
func (inv *Inventory) scrollTo(sel *ui.Slot) {
	for _, c := range inv.cells {
		if inv.arena.Get(c.slot) == sel {
			inv.scroll.EnsureVisible(c.content)
			inv.layoutCells()
			return
		}
	}
}

func (inv *Inventory) Update(dt float64) {
	if !inv.visible {
		return
	}
	in := inv.env.Input

	if inv.requireReload && !inv.drag.InProgress() {
		inv.Reload()
	}

	if inv.window.Update(in, dt) {
		inv.Hide()
		return
	}

	if !inv.drag.InProgress() {
		inv.tabBar.Update(in, dt)
		if inv.tabBar.Changed() {
			inv.selectedID = ""
			inv.scroll.Bar.SetOffset(0)
			inv.Reload()
		}
		inv.scroll.Bar.Update(in, inv.scroll.View)
	}
	inv.layoutCells()

	for _, h := range inv.equipment {
		inv.arena.Get(h).Update(in, dt)
	}
	for _, c := range inv.cells {
		s := inv.arena.Get(c.slot)
		if inv.scroll.IsVisible(s.Box) {
			s.Update(in, dt)
		} else {
			s.Clear()
		}
	}

	before := selectedSlot(inv.group)
	inv.group.Update(in)
	if sel := selectedSlot(inv.group); sel != nil && sel != before {
		inv.scrollTo(sel)
	}

	if inv.handleMouse() {
		return
	}
	inv.syncDescription()
	inv.updateButtonActions()
	inv.handleDragAndDrop()
}

// handleMouse applies clicks on slots. It returns true when an action
// changed the model.
func (inv *Inventory) handleMouse() bool {
	in := inv.env.Input
	if inv.drag.IsDragging() {
		return false
	}
	for i := 0; i < inv.arena.Len(); i++ {
		s := inv.arena.At(i)
		if s.IsEmpty() {
			continue
		}
		switch {
		case s.IsDoubleClicked():
			inv.drag.Reset()
			inv.group.SelectButtonRef(s)
			inv.activate(s)
			return true
		case s.IsRightClicked():
			inv.drag.Reset()
			inv.group.SelectButtonRef(s)
			inv.dropSlot(s)
			return true
		case s.IsClicked():
			inv.group.SelectButtonRef(s)
			if s.Draggable {
				mx, my := in.MousePosition()
				inv.drag.Arm(inv.arena.HandleAt(i), mx, my)
			}
		}
	}
	return false
}

func (inv *Inventory) syncDescription() {
	sel := selectedSlot(inv.group)
	if sel == inv.lastSelected {
		return
	}
	inv.lastSelected = sel
	if sel == nil || sel.IsEmpty() {
		inv.selectedID = ""
		inv.desc.Hide()
		return
	}
	inv.selectedID = sel.ItemID
	inv.selectedEquip = sel.EquipSlot != components.SlotNone
	inv.desc.Reload(sel.ItemID, sel.Count, inv.selectedEquip)
	inv.desc.Show()
}

func (inv *Inventory) updateButtonActions() {
	in := inv.env.Input
	if !in.IsGamepadConnected() || !inv.IsWindowSelected() || in.IsActionLocked() {
		return
	}
	sel := selectedSlot(inv.group)
	if sel == nil || sel.IsEmpty() {
		return
	}
	switch {
	case in.IsKeyJustPressed(input.KeyInteract):
		in.LockAction()
		inv.activate(sel)
	case in.IsKeyJustPressed(input.KeyDrop):
		in.LockAction()
		inv.dropSlot(sel)
	}
}

// activate uses the item in s, or takes it off when s is an equipment slot.
func (inv *Inventory) activate(s *ui.Slot) {
	if s.EquipSlot != components.SlotNone {
		inv.unequip(s.EquipSlot)
		return
	}
	def, ok := items.Get(s.ItemID)
	if !ok {
		return
	}
	behaviorFor(inv.host.Context()).use(inv, def)
}

func (inv *Inventory) dropSlot(s *ui.Slot) {
	if s.EquipSlot != components.SlotNone {
		return
	}
	def, ok := items.Get(s.ItemID)
	if !ok {
		return
	}
	behaviorFor(inv.host.Context()).drop(inv, def)
}

func (inv *Inventory) equip(def items.ItemDefinition) {
	target := equipTarget(inv.core, def)
	if target == components.SlotNone {
		return
	}
	inv.equipInto(def.ID, target)
}

func (inv *Inventory) equipInto(itemID string, target components.EquipmentSlot) {
	if err := inv.core.EquipItem(itemID, target); err != nil {
		log.Printf("Equip %s into %s: %v", itemID, target, err)
		return
	}
	inv.env.play(SoundItem)
	inv.requireReload = true
}

func (inv *Inventory) unequip(pos components.EquipmentSlot) {
	if err := inv.core.UnequipItem(pos); err != nil {
		log.Printf("Unequip %s: %v", pos, err)
		return
	}
	inv.env.play(SoundItem)
	inv.requireReload = true
}

func (inv *Inventory) handleDragAndDrop() {
	in := inv.env.Input
	if !inv.drag.InProgress() {
		return
	}
	if inv.drag.IsDragging() && in.IsKeyJustPressed(input.KeyEscape) {
		in.LockAction()
		inv.cancelDrag()
		return
	}

	switch inv.drag.Update(in, &inv.arena) {
	case ui.DragStarted:
		clone := inv.drag.Clone()
		if clone.Slot.EquipSlot != components.SlotNone {
			return
		}
		def, _ := items.Get(clone.Slot.ItemID)
		for _, h := range inv.equipment {
			if s := inv.arena.Get(h); def.Type.FitsSlot(s.EquipSlot) {
				s.Highlight()
			}
		}
	case ui.DragReleased:
		inv.stopDragging()
	}
}

// stopDragging equips a bag item dropped on a highlighted equipment slot
// and unequips an equipped item dragged off its slot.
func (inv *Inventory) stopDragging() {
	clone := inv.drag.Clone()
	if clone.Slot.EquipSlot != components.SlotNone {
		origin := inv.arena.Get(clone.Origin)
		if origin != nil && !clone.Box().Intersects(origin.Box) {
			inv.unequip(clone.Slot.EquipSlot)
		}
	} else {
		for _, h := range inv.equipment {
			s := inv.arena.Get(h)
			if s.IsHighlighted() && clone.Box().Intersects(s.Box) {
				inv.equipInto(clone.Slot.ItemID, s.EquipSlot)
				break
			}
		}
	}
	inv.cancelDrag()
}

func (inv *Inventory) cancelDrag() {
	inv.arena.UnhighlightAll()
	inv.drag.Finish(&inv.arena)
}

// SelectTab switches to category c.
func (inv *Inventory) SelectTab(c items.Category) {
	for i, cat := range items.Categories {
		if cat == c && i != inv.tabBar.ActiveIndex() {
			inv.cancelDrag()
			inv.tabBar.SetActiveIndex(i)
			inv.selectedID = ""
			inv.scroll.Bar.SetOffset(0)
			inv.Reload()
		}
	}
}

func (inv *Inventory) CurrentTab() items.Category { return inv.currentCategory() }
func (inv *Inventory) EmptyText() string          { return inv.emptyText }
func (inv *Inventory) GoldText() string           { return inv.goldText }
func (inv *Inventory) Scroll() *ui.ScrollHelper   { return inv.scroll }
func (inv *Inventory) Description() *ItemDescription {
	return inv.desc
}

// ItemSlots returns the slots of the current tab in display order.
func (inv *Inventory) ItemSlots() []*ui.Slot {
	out := make([]*ui.Slot, len(inv.cells))
	for i, c := range inv.cells {
		out[i] = inv.arena.Get(c.slot)
	}
	return out
}

// EquipmentSlots returns the equipment strip in display order.
func (inv *Inventory) EquipmentSlots() []*ui.Slot {
	out := make([]*ui.Slot, len(inv.equipment))
	for i, h := range inv.equipment {
		out[i] = inv.arena.Get(h)
	}
	return out
}

func (inv *Inventory) SelectedItem() string { return inv.selectedID }

func (inv *Inventory) Show() {
	inv.visible = true
}

func (inv *Inventory) Hide() {
	inv.visible = false
	inv.cancelDrag()
	inv.SetWindowSelected(false)
	inv.desc.Hide()
}

func (inv *Inventory) IsVisible() bool { return inv.visible }

func (inv *Inventory) Draw(c ui.Canvas) {
	if !inv.visible {
		return
	}
	inv.window.Draw(c)
	for _, h := range inv.equipment {
		inv.arena.Get(h).Draw(c)
	}
	inv.tabBar.Draw(c)
	inv.tabTitle.Draw(c)

	inv.scroll.BeginClip(c)
	for _, cell := range inv.cells {
		s := inv.arena.Get(cell.slot)
		if s.Box.Intersects(inv.scroll.View) {
			s.Draw(c)
		}
	}
	inv.scroll.EndClip(c)
	inv.scroll.Bar.Draw(c)

	box := inv.window.Box
	if inv.emptyText != "" {
		c.DrawText(inv.emptyText, inv.scroll.View.X, inv.scroll.View.Y, ui.ColorTextDim)
	}
	c.DrawText(inv.goldText, box.X+config.GUITextOffset, box.Bottom()-config.GUITextOffset-ui.LineHeight/2, ui.ColorText)
	inv.desc.Draw(c)
}

func (inv *Inventory) DrawAfterForeground(c ui.Canvas) {
	if !inv.visible {
		return
	}
	if clone := inv.drag.Clone(); clone != nil {
		clone.Draw(c)
	}
}
