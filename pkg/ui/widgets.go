package ui

import (
	"image/color"

	"grimoire/pkg/input"
)

const TitleBarHeight = 20.0

// Window is the chrome around a panel: body, title bar and an optional
// close button in the top right corner.
type Window struct {
	Box      Rect
	Title    string
	HasClose bool

	close Region
}

func NewWindow(box Rect, title string) *Window {
	return &Window{Box: box, Title: title}
}

func (w *Window) AddCloseButton() {
	w.HasClose = true
	w.close.Box = R(w.Box.Right()-TitleBarHeight, w.Box.Y, TitleBarHeight, TitleBarHeight)
}

func (w *Window) SetPosition(x, y float64) {
	w.Box.X, w.Box.Y = x, y
	w.close.Box = R(w.Box.Right()-TitleBarHeight, w.Box.Y, TitleBarHeight, TitleBarHeight)
}

// Update returns true on the frame the close button is clicked.
func (w *Window) Update(in input.Controller, dt float64) bool {
	if !w.HasClose {
		return false
	}
	w.close.Update(in, dt)
	return w.close.IsClicked()
}

func (w *Window) Contains(x, y float64) bool {
	return w.Box.Contains(x, y)
}

func (w *Window) Draw(c Canvas) {
	// Draw Window Body
	c.FillRect(w.Box, ColorWindow)

	// Draw Title Bar
	if w.Title != "" || w.HasClose {
		c.FillRect(R(w.Box.X, w.Box.Y, w.Box.W, TitleBarHeight), ColorTitleBar)
		c.DrawText(CropText(w.Title, w.Box.W-TitleBarHeight-10), w.Box.X+5, w.Box.Y+2, ColorText)
	}
	if w.HasClose {
		clr := ColorTextDim
		if w.close.IsMousedOver() {
			clr = ColorSelected
		}
		c.DrawText("x", w.close.Box.X+7, w.close.Box.Y+2, clr)
	}

	// Draw Border
	c.StrokeRect(w.Box, 1, ColorBorder)
}

// Label is a line of static text.
type Label struct {
	X, Y  float64
	Text  string
	Color color.Color
}

func (l *Label) Draw(c Canvas) {
	if l.Text == "" {
		return
	}
	clr := l.Color
	if clr == nil {
		clr = ColorText
	}
	c.DrawText(l.Text, l.X, l.Y, clr)
}

// Centered places the label so its text is centered horizontally in r.
func (l *Label) Centered(r Rect, y float64) {
	l.X = r.Center().X - TextWidth(l.Text)/2
	l.Y = y
}
