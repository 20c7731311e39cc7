package gui

import (
	"grimoire/pkg/character"
	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

// equipmentSlots builds the strip of equipped items, one slot per
// equipment position.
func equipmentSlots(core character.Model, x, y float64) []ui.Slot {
	slots := make([]ui.Slot, 0, len(components.EquipmentSlots))
	for i, pos := range components.EquipmentSlots {
		id := core.Equipped(pos)
		count := 0
		if id != "" {
			count = 1
		}
		slot := ui.NewItemSlot(id, count, config.ItemSlotSize)
		slot.EquipSlot = pos
		slot.Placeholder = "placeholder_" + pos.String()
		slot.SetPosition(x+float64(i)*(config.ItemSlotSize+config.GUIMargin/2), y)
		slots = append(slots, slot)
	}
	return slots
}

// equipTarget picks the equipment position for def. Rings go into the
// first free ring slot and replace the first ring when both are taken.
func equipTarget(core character.Model, def items.ItemDefinition) components.EquipmentSlot {
	first := components.SlotNone
	for _, pos := range components.EquipmentSlots {
		if !def.Type.FitsSlot(pos) {
			continue
		}
		if core.Equipped(pos) == "" {
			return pos
		}
		if first == components.SlotNone {
			first = pos
		}
	}
	return first
}
