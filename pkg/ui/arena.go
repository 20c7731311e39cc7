package ui

import (
	"grimoire/pkg/input"
)

// Handle addresses a slot in a SlotArena. It goes stale when the arena
// is reset.
type Handle struct {
	Index      int
	Generation uint32
}

// NoHandle never resolves.
var NoHandle = Handle{Index: -1}

func (h Handle) Valid() bool { return h.Index >= 0 }

// SlotArena owns every slot of one panel. A reload resets it and rebuilds
// all slots, which invalidates the handles of the previous generation.
// Pointers returned by At and Get stay valid until the next Add or Reset.
type SlotArena struct {
	slots      []Slot
	generation uint32
}

func (a *SlotArena) Reset() {
	a.slots = a.slots[:0]
	a.generation++
}

func (a *SlotArena) Add(s Slot) Handle {
	a.slots = append(a.slots, s)
	return Handle{Index: len(a.slots) - 1, Generation: a.generation}
}

// Get resolves h, returning nil for stale or out of range handles.
func (a *SlotArena) Get(h Handle) *Slot {
	if h.Generation != a.generation || h.Index < 0 || h.Index >= len(a.slots) {
		return nil
	}
	return &a.slots[h.Index]
}

func (a *SlotArena) Len() int { return len(a.slots) }

func (a *SlotArena) At(i int) *Slot { return &a.slots[i] }

func (a *SlotArena) HandleAt(i int) Handle {
	return Handle{Index: i, Generation: a.generation}
}

func (a *SlotArena) Generation() uint32 { return a.generation }

// HandleOf finds the handle of a slot pointer obtained from this arena.
func (a *SlotArena) HandleOf(s *Slot) Handle {
	for i := range a.slots {
		if &a.slots[i] == s {
			return a.HandleAt(i)
		}
	}
	return NoHandle
}

// Update polls input for every slot.
func (a *SlotArena) Update(in input.Controller, dt float64) {
	for i := range a.slots {
		a.slots[i].Update(in, dt)
	}
}

func (a *SlotArena) Draw(c Canvas) {
	for i := range a.slots {
		a.slots[i].Draw(c)
	}
}

// UnhighlightAll clears candidate highlighting.
func (a *SlotArena) UnhighlightAll() {
	for i := range a.slots {
		a.slots[i].Unhighlight()
	}
}

// SlotClone is the detached copy of a slot that follows the pointer
// during a drag. It keeps the content by value and refers to its origin
// only through a handle.
type SlotClone struct {
	Origin Handle
	Slot   Slot
}

func NewSlotClone(origin Handle, s *Slot) *SlotClone {
	c := &SlotClone{Origin: origin, Slot: *s}
	c.Slot.Region = Region{Box: s.Box}
	c.Slot.selected = false
	c.Slot.highlighted = false
	c.Slot.inactive = false
	c.Slot.locked = false
	return c
}

func (c *SlotClone) Box() Rect { return c.Slot.Box }

// CenterOn moves the clone so the point is at its center.
func (c *SlotClone) CenterOn(x, y float64) {
	c.Slot.Box.X = x - c.Slot.Box.W/2
	c.Slot.Box.Y = y - c.Slot.Box.H/2
}

func (c *SlotClone) Draw(canvas Canvas) {
	c.Slot.Draw(canvas)
	canvas.StrokeRect(c.Slot.Box, 2, ColorSelected)
}
