package gui

import (
	"log"

	"grimoire/pkg/items"
)

// Context is where the inventory is opened. It decides what using or
// dropping an item does.
type Context int

const (
	ContextLevel Context = iota
	ContextMap
)

func (c Context) String() string {
	if c == ContextMap {
		return "map"
	}
	return "level"
}

// ParseContext maps "level" and "map" onto a Context.
func ParseContext(s string) (Context, bool) {
	switch s {
	case "level":
		return ContextLevel, true
	case "map":
		return ContextMap, true
	}
	return ContextLevel, false
}

// ItemHost is the world the inventory lives in. It performs the item
// actions that reach outside the character model.
//
//go:generate mockgen -destination=mock/mock_item_host.go -package=guimock grimoire/pkg/client/gui ItemHost
type ItemHost interface {
	Context() Context
	ConsumeItem(itemID string) error
	DropItem(itemID string) error
	ReadDocument(itemID string)
	LearnSpellscroll(itemID string) error
	ShowHint(key string)
}

// itemBehavior resolves use and drop gestures for one context.
type itemBehavior interface {
	use(inv *Inventory, def items.ItemDefinition)
	drop(inv *Inventory, def items.ItemDefinition)
}

func behaviorFor(c Context) itemBehavior {
	if c == ContextMap {
		return mapBehavior{}
	}
	return levelBehavior{}
}

type levelBehavior struct{}

func (levelBehavior) use(inv *Inventory, def items.ItemDefinition) {
	var err error
	switch def.Type {
	case items.ItemTypeConsumable:
		err = inv.host.ConsumeItem(def.ID)
		if err == nil {
			inv.env.play(SoundItem)
		}
	case items.ItemTypeDocument:
		inv.host.ReadDocument(def.ID)
	case items.ItemTypeSpellscroll:
		err = inv.host.LearnSpellscroll(def.ID)
	default:
		if def.Type.IsEquipment() {
			inv.equip(def)
		}
	}
	if err != nil {
		log.Printf("Use item %s: %v", def.ID, err)
	}
}

func (levelBehavior) drop(inv *Inventory, def items.ItemDefinition) {
	if err := inv.host.DropItem(def.ID); err != nil {
		log.Printf("Drop item %s: %v", def.ID, err)
		return
	}
	inv.env.play(SoundItem)
}

type mapBehavior struct{}

func (mapBehavior) use(inv *Inventory, def items.ItemDefinition) {
	switch {
	case def.Type.IsEquipment():
		inv.equip(def)
	case def.Type == items.ItemTypeDocument:
		inv.host.ReadDocument(def.ID)
	}
}

func (mapBehavior) drop(inv *Inventory, _ items.ItemDefinition) {
	inv.host.ShowHint("CannotDropHere")
}
