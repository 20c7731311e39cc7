package gui

import (
	"fmt"

	"grimoire/pkg/input"
	"grimoire/pkg/items"
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

const (
	bookWidth  = config.ScreenWidth / 3.0
	bookHeight = config.ScreenHeight - 2*config.GUITop
	bookMargin = 30.0
)

// BookWindow reads a document one page at a time.
type BookWindow struct {
	env     Env
	window  *ui.Window
	prev    ui.Region
	next    ui.Region
	visible bool

	itemID string
	pages  []string
	page   int
	lines  []string
}

func NewBookWindow(env Env) *BookWindow {
	box := ui.R((config.ScreenWidth-bookWidth)/2, (config.ScreenHeight-bookHeight)/2, bookWidth, bookHeight)
	b := &BookWindow{env: env, window: ui.NewWindow(box, "")}
	b.window.AddCloseButton()
	b.prev.Box = ui.R(box.Center().X-20-24, box.Bottom()-50, 24, 24)
	b.next.Box = ui.R(box.Center().X+20, box.Bottom()-50, 24, 24)
	return b
}

// Open shows the first page of a document. Items without pages are ignored.
func (b *BookWindow) Open(itemID string) bool {
	def, ok := items.Get(itemID)
	if !ok || len(def.Pages) == 0 {
		return false
	}
	b.itemID = itemID
	b.pages = def.Pages
	b.window.Title = b.env.text(itemID, def.Name)
	b.visible = true
	b.page = -1
	b.SetPage(0)
	return true
}

// SetPage turns to page i. Out of range pages are ignored.
func (b *BookWindow) SetPage(i int) {
	if i < 0 || i >= len(b.pages) || i == b.page {
		return
	}
	b.page = i
	b.env.play(SoundPage)
	key := fmt.Sprintf("%s_page%d", b.itemID, i)
	b.lines = ui.WrapText(b.env.text(key, b.pages[i]), b.window.Box.W-2*bookMargin)
}

func (b *BookWindow) Page() int      { return b.page }
func (b *BookWindow) PageCount() int { return len(b.pages) }

func (b *BookWindow) Update(dt float64) {
	if !b.visible {
		return
	}
	in := b.env.Input
	b.prev.Update(in, dt)
	b.next.Update(in, dt)

	if b.window.Update(in, dt) {
		b.Hide()
		return
	}
	if in.IsActionLocked() {
		return
	}
	switch {
	case in.IsKeyJustPressed(input.KeyEscape):
		in.LockAction()
		b.Hide()
	case in.IsKeyJustPressed(input.KeyLeft) || b.prev.IsClicked():
		in.LockAction()
		b.SetPage(b.page - 1)
	case in.IsKeyJustPressed(input.KeyRight) || b.next.IsClicked():
		in.LockAction()
		b.SetPage(b.page + 1)
	}
}

func (b *BookWindow) Hide()           { b.visible = false }
func (b *BookWindow) IsVisible() bool { return b.visible }

func (b *BookWindow) Draw(c ui.Canvas) {
	if !b.visible {
		return
	}
	b.window.Draw(c)
	box := b.window.Box
	for i, line := range b.lines {
		c.DrawText(line, box.X+bookMargin, box.Y+ui.TitleBarHeight+bookMargin+float64(i)*ui.LineHeight, ui.ColorText)
	}

	drawArrow(c, b.prev, "<", b.page > 0)
	drawArrow(c, b.next, ">", b.page+1 < len(b.pages))
	counter := fmt.Sprintf("%d/%d", b.page+1, len(b.pages))
	c.DrawText(counter, box.Center().X-ui.TextWidth(counter)/2, box.Bottom()-46, ui.ColorTextDim)
}

func (b *BookWindow) DrawAfterForeground(c ui.Canvas) {}

func drawArrow(c ui.Canvas, r ui.Region, label string, enabled bool) {
	clr := ui.ColorInactive
	if enabled {
		clr = ui.ColorText
		if r.IsMousedOver() {
			clr = ui.ColorSelected
		}
	}
	c.StrokeRect(r.Box, 1, clr)
	c.DrawText(label, r.Box.X+9, r.Box.Y+4, clr)
}
