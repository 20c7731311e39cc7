package character

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
)

var (
	ErrNoWeapon      = errors.New("no weapon equipped")
	ErrInvalidSlot   = errors.New("invalid slot")
	ErrNotLearned    = errors.New("not learned")
	ErrIncompatible  = errors.New("incompatible slot")
	ErrNotEquippable = errors.New("item cannot be equipped")
)

// Data is the persistent state of a character.
type Data struct {
	SpellsLearned    map[components.School][]components.SpellID `json:"spells_learned"`
	ModifiersLearned map[components.ModifierType]int             `json:"modifiers_learned"`
	Items            map[string]int                              `json:"items"`
	Equipped         map[components.EquipmentSlot]string         `json:"equipped"`
	Weapon           *components.Weapon                          `json:"weapon,omitempty"`
	Gold             int                                         `json:"gold"`
	Health           float64                                     `json:"health"`
	MaxHealth        float64                                     `json:"max_health"`
}

// Core owns the character data. It is not safe for concurrent use, all
// mutations happen on the game loop.
type Core struct {
	data      Data
	bag       *items.Bag
	observers []Observer
}

func NewCore(data Data) *Core {
	c := &Core{
		data: Data{
			SpellsLearned:    make(map[components.School][]components.SpellID),
			ModifiersLearned: make(map[components.ModifierType]int),
			Equipped:         make(map[components.EquipmentSlot]string),
			Weapon:           data.Weapon.Clone(),
			Gold:             data.Gold,
			Health:           data.Health,
			MaxHealth:        data.MaxHealth,
		},
		bag: items.NewBag(),
	}
	for school, ids := range data.SpellsLearned {
		c.data.SpellsLearned[school] = append([]components.SpellID(nil), ids...)
	}
	for t, level := range data.ModifiersLearned {
		c.data.ModifiersLearned[t] = level
	}
	for slot, id := range data.Equipped {
		c.data.Equipped[slot] = id
	}
	for id, n := range data.Items {
		if err := c.bag.AddItem(id, n); err != nil {
			log.Printf("Skipping item %s: %v", id, err)
		}
	}
	if c.data.Weapon == nil {
		if id := c.data.Equipped[components.SlotWeapon]; id != "" {
			c.data.Weapon, _ = items.NewWeapon(id)
		}
	}
	return c
}

// Snapshot returns a deep copy of the data for persistence.
func (c *Core) Snapshot() Data {
	out := NewCore(c.data).data
	out.Items = c.bag.Snapshot()
	return out
}

func (c *Core) Subscribe(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Core) notify(kind ChangeKind, id string) {
	for _, o := range c.observers {
		o.NotifyChange(Change{Kind: kind, ID: id})
	}
}

// Reads

func (c *Core) LearnedSpells(school components.School) []components.SpellID {
	return append([]components.SpellID(nil), c.data.SpellsLearned[school]...)
}

func (c *Core) LearnedModifiers() map[components.ModifierType]int {
	out := make(map[components.ModifierType]int, len(c.data.ModifiersLearned))
	for t, level := range c.data.ModifiersLearned {
		out[t] = level
	}
	return out
}

func (c *Core) Weapon() *components.Weapon {
	return c.data.Weapon.Clone()
}

func (c *Core) Items() map[string]int {
	return c.bag.Snapshot()
}

func (c *Core) ItemCount(itemID string) int {
	return c.bag.Count(itemID)
}

func (c *Core) Equipped(slot components.EquipmentSlot) string {
	return c.data.Equipped[slot]
}

func (c *Core) Gold() int {
	return c.data.Gold
}

func (c *Core) Health() (current, max float64) {
	return c.data.Health, c.data.MaxHealth
}

func (c *Core) isLearned(id components.SpellID) bool {
	school := components.SchoolOf(id)
	return slices.Contains(c.data.SpellsLearned[school], id)
}

// Learning

func (c *Core) LearnSpell(id components.SpellID) error {
	spell, ok := components.GetSpell(id)
	if !ok {
		return fmt.Errorf("%w: unknown spell %s", ErrNotLearned, id)
	}
	if c.isLearned(id) {
		return nil
	}
	c.data.SpellsLearned[spell.School] = append(c.data.SpellsLearned[spell.School], id)
	c.notify(ChangeSpells, string(id))
	return nil
}

// LearnModifier raises the learned level of t to at least level.
func (c *Core) LearnModifier(t components.ModifierType, level int) error {
	if t == components.ModifierNone || level <= 0 {
		return fmt.Errorf("%w: modifier %s level %d", ErrInvalidSlot, t, level)
	}
	if c.data.ModifiersLearned[t] >= level {
		return nil
	}
	c.data.ModifiersLearned[t] = level
	c.notify(ChangeModifiers, t.String())
	return nil
}

// Weapon slots

func (c *Core) weaponSlot(slot int) (*components.WeaponSlot, error) {
	if c.data.Weapon == nil {
		return nil, ErrNoWeapon
	}
	if slot < 0 || slot >= len(c.data.Weapon.Slots) {
		return nil, fmt.Errorf("%w: spell slot %d", ErrInvalidSlot, slot)
	}
	return &c.data.Weapon.Slots[slot], nil
}

// AddSpell puts spell id into weapon slot. A spell already equipped in
// another slot moves, taking nothing with it. Modifiers the new spell
// does not allow are dropped from the slot.
func (c *Core) AddSpell(id components.SpellID, slot int) error {
	target, err := c.weaponSlot(slot)
	if err != nil {
		return err
	}
	if !c.isLearned(id) {
		return fmt.Errorf("%w: spell %s", ErrNotLearned, id)
	}
	if !target.School.Accepts(components.SchoolOf(id)) {
		return fmt.Errorf("%w: %s spell in %s slot", ErrIncompatible, components.SchoolOf(id), target.School)
	}

	if prev := c.data.Weapon.SlotOf(id); prev >= 0 && prev != slot {
		clearSlot(&c.data.Weapon.Slots[prev])
	}
	target.Spell = id
	for i, mod := range target.Modifiers {
		if !components.AllowsModifier(id, mod.Type) {
			target.Modifiers[i] = components.Modifier{}
		}
	}
	c.notify(ChangeWeapon, string(id))
	return nil
}

func (c *Core) RemoveSpell(slot int) error {
	target, err := c.weaponSlot(slot)
	if err != nil {
		return err
	}
	id := target.Spell
	clearSlot(target)
	c.notify(ChangeWeapon, string(id))
	return nil
}

func clearSlot(s *components.WeaponSlot) {
	s.Spell = components.NoSpell
	for i := range s.Modifiers {
		s.Modifiers[i] = components.Modifier{}
	}
}

// AddModifier puts mod into modifier slot index of spell slot. A spell
// carries at most one modifier of each type, so a modifier of the same
// type elsewhere on that spell is replaced.
func (c *Core) AddModifier(mod components.Modifier, slot, index int) error {
	target, err := c.weaponSlot(slot)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(target.Modifiers) {
		return fmt.Errorf("%w: modifier slot %d of spell slot %d", ErrInvalidSlot, index, slot)
	}
	if mod.IsEmpty() || c.data.ModifiersLearned[mod.Type] < mod.Level {
		return fmt.Errorf("%w: modifier %s level %d", ErrNotLearned, mod.Type, mod.Level)
	}
	if !components.AllowsModifier(target.Spell, mod.Type) {
		return fmt.Errorf("%w: %s on spell %q", ErrIncompatible, mod.Type, target.Spell)
	}

	for i, existing := range target.Modifiers {
		if existing.Type == mod.Type {
			target.Modifiers[i] = components.Modifier{}
		}
	}
	target.Modifiers[index] = mod
	c.notify(ChangeWeapon, string(target.Spell))
	return nil
}

func (c *Core) RemoveModifier(slot, index int) error {
	target, err := c.weaponSlot(slot)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(target.Modifiers) {
		return fmt.Errorf("%w: modifier slot %d of spell slot %d", ErrInvalidSlot, index, slot)
	}
	target.Modifiers[index] = components.Modifier{}
	c.notify(ChangeWeapon, string(target.Spell))
	return nil
}

// Items

// AddItem stores items in the bag. Gold goes straight to the purse.
func (c *Core) AddItem(itemID string, quantity int) error {
	if def, ok := items.Get(itemID); ok && def.Type == items.ItemTypeGold {
		if quantity <= 0 {
			return items.ErrInvalidAmount
		}
		c.data.Gold += quantity
		c.notify(ChangeGold, itemID)
		return nil
	}
	if err := c.bag.AddItem(itemID, quantity); err != nil {
		return err
	}
	c.notify(ChangeItems, itemID)
	return nil
}

func (c *Core) RemoveItem(itemID string, quantity int) error {
	if err := c.bag.RemoveItem(itemID, quantity); err != nil {
		return err
	}
	c.notify(ChangeItems, itemID)
	return nil
}

// EquipItem moves one itemID from the bag into slot. The previous
// occupant goes back into the bag. Equipping a weapon resets its spell
// layout.
func (c *Core) EquipItem(itemID string, slot components.EquipmentSlot) error {
	def, ok := items.Get(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", items.ErrUnknownItem, itemID)
	}
	if !def.Type.FitsSlot(slot) {
		return fmt.Errorf("%w: %s into %s", ErrNotEquippable, itemID, slot)
	}
	if err := c.bag.RemoveItem(itemID, 1); err != nil {
		return err
	}
	if prev := c.data.Equipped[slot]; prev != "" {
		_ = c.bag.AddItem(prev, 1)
	}
	c.data.Equipped[slot] = itemID
	if slot == components.SlotWeapon {
		c.data.Weapon, _ = items.NewWeapon(itemID)
		c.notify(ChangeWeapon, itemID)
	}
	c.notify(ChangeEquipment, itemID)
	c.notify(ChangeItems, itemID)
	return nil
}

func (c *Core) UnequipItem(slot components.EquipmentSlot) error {
	prev := c.data.Equipped[slot]
	if prev == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSlot, slot)
	}
	if err := c.bag.AddItem(prev, 1); err != nil {
		return err
	}
	delete(c.data.Equipped, slot)
	if slot == components.SlotWeapon {
		c.data.Weapon = nil
		c.notify(ChangeWeapon, prev)
	}
	c.notify(ChangeEquipment, prev)
	c.notify(ChangeItems, prev)
	return nil
}

// Heal restores health up to the maximum.
func (c *Core) Heal(amount float64) {
	c.data.Health = min(c.data.MaxHealth, c.data.Health+amount)
	c.notify(ChangeHealth, "")
}
