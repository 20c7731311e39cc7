package items

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownItem   = errors.New("item not defined")
	ErrNotEnough     = errors.New("not enough items")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Bag holds stacked item counts by item id. Stacks are unbounded.
type Bag struct {
	counts map[string]int
}

func NewBag() *Bag {
	return &Bag{counts: make(map[string]int)}
}

// AddItem adds quantity of itemID to the bag.
func (b *Bag) AddItem(itemID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	if _, ok := Registry[itemID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}
	b.counts[itemID] += quantity
	return nil
}

// RemoveItem removes quantity of itemID, dropping the stack when it reaches zero.
func (b *Bag) RemoveItem(itemID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidAmount
	}
	have := b.counts[itemID]
	if have < quantity {
		return fmt.Errorf("%w: %s has %d, need %d", ErrNotEnough, itemID, have, quantity)
	}
	if have == quantity {
		delete(b.counts, itemID)
		return nil
	}
	b.counts[itemID] = have - quantity
	return nil
}

func (b *Bag) Count(itemID string) int {
	return b.counts[itemID]
}

// Snapshot returns a copy of all stacks.
func (b *Bag) Snapshot() map[string]int {
	out := make(map[string]int, len(b.counts))
	for id, n := range b.counts {
		out[id] = n
	}
	return out
}

// ByCategory returns the ids stored in category c, ordered for display.
func (b *Bag) ByCategory(c Category) []string {
	var ids []string
	for id := range b.counts {
		if def, ok := Registry[id]; ok && def.Type.Category() == c {
			ids = append(ids, id)
		}
	}
	return SortedIDs(ids)
}
