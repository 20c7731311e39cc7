package ui

import (
	"grimoire/pkg/input"
	"grimoire/pkg/shared/config"
)

// ScrollBar is a vertical bar with a draggable knob. Its value is the
// scroll offset in content pixels.
type ScrollBar struct {
	Box           Rect
	ContentHeight float64
	ViewHeight    float64

	offset     float64
	dragging   bool
	dragOffset float64
}

func NewScrollBar(box Rect, viewHeight float64) *ScrollBar {
	return &ScrollBar{Box: box, ViewHeight: viewHeight}
}

func (b *ScrollBar) MaxOffset() float64 {
	return max(0, b.ContentHeight-b.ViewHeight)
}

func (b *ScrollBar) Offset() float64 { return b.offset }

func (b *ScrollBar) SetOffset(offset float64) {
	b.offset = min(max(offset, 0), b.MaxOffset())
}

func (b *ScrollBar) knob() Rect {
	if b.ContentHeight <= b.ViewHeight || b.ContentHeight == 0 {
		return b.Box
	}
	height := max(b.Box.H*(b.ViewHeight/b.ContentHeight), 20)
	space := b.Box.H - height
	return R(b.Box.X, b.Box.Y+space*(b.offset/b.MaxOffset()), b.Box.W, height)
}

// Update scrolls on wheel input anywhere inside area and lets the knob
// be dragged.
func (b *ScrollBar) Update(in input.Controller, area Rect) {
	b.SetOffset(b.offset)
	if b.MaxOffset() == 0 {
		b.dragging = false
		return
	}

	mx, my := in.MousePosition()
	if wy := in.WheelY(); wy != 0 && area.Contains(mx, my) {
		b.SetOffset(b.offset - wy*config.ScrollStep)
	}

	knob := b.knob()
	if in.IsMouseJustPressedLeft() && knob.Contains(mx, my) {
		b.dragging = true
		b.dragOffset = my - knob.Y
	}
	if b.dragging {
		if !in.IsMousePressedLeft() {
			b.dragging = false
			return
		}
		space := b.Box.H - knob.H
		if space > 0 {
			b.SetOffset((my - b.dragOffset - b.Box.Y) / space * b.MaxOffset())
		}
	}
}

func (b *ScrollBar) Draw(c Canvas) {
	if b.MaxOffset() == 0 {
		return
	}
	c.FillRect(b.Box, ColorSlot)
	c.FillRect(b.knob(), ColorScrollKnob)
}

// ScrollHelper maps content coordinates into a clipped viewport.
type ScrollHelper struct {
	View Rect
	Bar  *ScrollBar
}

func NewScrollHelper(view Rect, bar *ScrollBar) *ScrollHelper {
	bar.ViewHeight = view.H
	return &ScrollHelper{View: view, Bar: bar}
}

// Layout converts a box in content space into screen space.
func (h *ScrollHelper) Layout(content Rect) Rect {
	return content.Offset(h.View.X, h.View.Y-h.Bar.Offset())
}

// IsVisible reports whether a screen space box is fully inside the view.
func (h *ScrollHelper) IsVisible(r Rect) bool {
	return r.Y >= h.View.Y && r.Bottom() <= h.View.Bottom()
}

// EnsureVisible scrolls just enough for the content box to be shown.
func (h *ScrollHelper) EnsureVisible(content Rect) {
	switch {
	case content.Y < h.Bar.Offset():
		h.Bar.SetOffset(content.Y)
	case content.Bottom() > h.Bar.Offset()+h.View.H:
		h.Bar.SetOffset(content.Bottom() - h.View.H)
	}
}

func (h *ScrollHelper) BeginClip(c Canvas) { c.PushClip(h.View) }
func (h *ScrollHelper) EndClip(c Canvas)   { c.PopClip() }
