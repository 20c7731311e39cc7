package ui

import (
	"grimoire/pkg/input"
	"grimoire/pkg/shared/config"
)

// Region is the interactive part of a widget: a box with per-frame
// hover and click edge detection. Embed it and call Update once per frame.
type Region struct {
	Box Rect

	hovered       bool
	clicked       bool
	doubleClicked bool
	rightClicked  bool

	awaitingSecond bool
	sinceClick     float64 // seconds since the last click
}

// Update recomputes the edges from this frame's input. A click is the
// frame the left button goes down over the box. A second click within
// the double click window is also reported as a double click.
func (r *Region) Update(in input.Controller, dt float64) {
	r.clicked = false
	r.doubleClicked = false
	r.rightClicked = false
	if r.awaitingSecond {
		r.sinceClick += dt
		if r.sinceClick > config.DoubleClickTime {
			r.awaitingSecond = false
		}
	}

	mx, my := in.MousePosition()
	r.hovered = r.Box.Contains(mx, my)
	if !r.hovered {
		return
	}

	if in.IsMouseJustPressedLeft() {
		r.clicked = true
		if r.awaitingSecond {
			r.doubleClicked = true
			r.awaitingSecond = false
		} else {
			r.awaitingSecond = true
			r.sinceClick = 0
		}
	}
	if in.IsMouseJustPressedRight() {
		r.rightClicked = true
	}
}

// Clear drops all edges and hover, used for regions that are not interactive this frame.
func (r *Region) Clear() {
	r.hovered = false
	r.clicked = false
	r.doubleClicked = false
	r.rightClicked = false
}

func (r *Region) IsMousedOver() bool    { return r.hovered }
func (r *Region) IsClicked() bool       { return r.clicked }
func (r *Region) IsDoubleClicked() bool { return r.doubleClicked }
func (r *Region) IsRightClicked() bool  { return r.rightClicked }

func (r *Region) SetPosition(x, y float64) {
	r.Box.X = x
	r.Box.Y = y
}

func (r *Region) Position() Vec { return Vec{r.Box.X, r.Box.Y} }
