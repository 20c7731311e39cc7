package ui

import (
	"grimoire/pkg/input"
	"grimoire/pkg/shared/config"
)

type DragEvent int

const (
	DragNone DragEvent = iota
	// DragStarted is the frame the pointer crossed the drag distance and
	// the clone was created.
	DragStarted
	DragMoved
	// DragReleased is the frame the button went up with a clone in flight.
	// The owner resolves the drop and then calls Finish.
	DragReleased
	// DragAborted means the origin slot vanished before the clone spawned.
	DragAborted
)

// DragTracker turns press, move and release into a clone that follows the
// pointer. A gamepad pick up creates the clone immediately and is resolved
// by the owner on confirm or cancel.
type DragTracker struct {
	armed    bool
	dragging bool
	gamepad  bool
	start    Vec
	origin   Handle
	clone    *SlotClone
}

// Arm records a press on a draggable slot. Nothing is created until the
// pointer moves past the drag distance.
func (d *DragTracker) Arm(origin Handle, x, y float64) {
	if d.dragging {
		return
	}
	d.armed = true
	d.origin = origin
	d.start = Vec{x, y}
}

// PickUp starts a gamepad sequence on the origin slot.
func (d *DragTracker) PickUp(arena *SlotArena, origin Handle) bool {
	s := arena.Get(origin)
	if s == nil || s.IsEmpty() {
		return false
	}
	d.armed = false
	d.dragging = true
	d.gamepad = true
	d.origin = origin
	d.clone = NewSlotClone(origin, s)
	d.clone.Slot.Box = d.clone.Slot.Box.Offset(-s.Box.W/4, -s.Box.H/4)
	s.Deactivate()
	return true
}

// Update advances a mouse drag. Gamepad sequences are not driven here.
func (d *DragTracker) Update(in input.Controller, arena *SlotArena) DragEvent {
	if d.gamepad || (!d.armed && !d.dragging) {
		return DragNone
	}

	if !in.IsMousePressedLeft() {
		if d.dragging {
			return DragReleased
		}
		d.armed = false
		return DragNone
	}

	mx, my := in.MousePosition()
	if !d.dragging {
		if (Vec{mx, my}).Sub(d.start).Len() <= config.DragDistance {
			return DragNone
		}
		s := arena.Get(d.origin)
		if s == nil || s.IsEmpty() {
			d.Reset()
			return DragAborted
		}
		d.armed = false
		d.dragging = true
		d.clone = NewSlotClone(d.origin, s)
		d.clone.CenterOn(mx, my)
		s.Deactivate()
		return DragStarted
	}

	d.clone.CenterOn(mx, my)
	return DragMoved
}

// Finish ends the interaction and reactivates the origin slot when it
// still exists.
func (d *DragTracker) Finish(arena *SlotArena) {
	if d.clone != nil {
		if s := arena.Get(d.clone.Origin); s != nil {
			s.Activate()
		}
	}
	d.Reset()
}

// Reset drops the state without touching any slot.
func (d *DragTracker) Reset() {
	d.armed = false
	d.dragging = false
	d.gamepad = false
	d.clone = nil
	d.origin = NoHandle
}

func (d *DragTracker) IsArmed() bool     { return d.armed }
func (d *DragTracker) IsDragging() bool  { return d.dragging }
func (d *DragTracker) IsGamepad() bool   { return d.gamepad }
func (d *DragTracker) Clone() *SlotClone { return d.clone }
func (d *DragTracker) Origin() Handle    { return d.origin }
func (d *DragTracker) InProgress() bool  { return d.armed || d.dragging }
