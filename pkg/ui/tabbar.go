package ui

import (
	"grimoire/pkg/input"
)

type TabButton struct {
	Region
	Label  string
	Icon   string // sprite key, TexturedTabBar only
	active bool
}

func (t *TabButton) IsActive() bool { return t.active }

// TabBar is a row of mutually exclusive tabs. Exactly one tab is active.
// With gamepad input enabled NextSpell and PreviousSpell step through the
// tabs, clamped at both ends.
type TabBar struct {
	Box  Rect
	Tabs []TabButton

	active         int
	changed        bool
	gamepadEnabled bool
	leftHint       string
	rightHint      string
}

func NewTabBar(box Rect, labels []string) *TabBar {
	t := &TabBar{Box: box, Tabs: make([]TabButton, len(labels))}
	if len(labels) == 0 {
		return t
	}
	width := box.W / float64(len(labels))
	for i, label := range labels {
		t.Tabs[i] = TabButton{
			Region: Region{Box: R(box.X+float64(i)*width, box.Y, width, box.H)},
			Label:  label,
		}
	}
	t.Tabs[0].active = true
	return t
}

// NewTexturedTabBar builds a tab bar that shows one icon per tab.
func NewTexturedTabBar(box Rect, icons []string) *TabBar {
	t := NewTabBar(box, make([]string, len(icons)))
	for i, icon := range icons {
		t.Tabs[i].Icon = icon
	}
	return t
}

func (t *TabBar) ActiveIndex() int { return t.active }

// Changed reports whether the active tab changed during the last Update.
func (t *TabBar) Changed() bool { return t.changed }

func (t *TabBar) SetActiveIndex(i int) {
	if len(t.Tabs) == 0 {
		return
	}
	i = clamp(i, 0, len(t.Tabs)-1)
	t.Tabs[t.active].active = false
	t.active = i
	t.Tabs[i].active = true
}

func (t *TabBar) SetGamepadEnabled(enabled bool) {
	t.gamepadEnabled = enabled
}

func (t *TabBar) Update(in input.Controller, dt float64) {
	t.changed = false
	next := -1
	for i := range t.Tabs {
		tab := &t.Tabs[i]
		tab.Update(in, dt)
		if tab.IsClicked() && !tab.active {
			next = i
		}
	}

	t.leftHint, t.rightHint = "", ""
	if t.gamepadEnabled && in.IsGamepadConnected() {
		t.leftHint = "< " + in.GamepadButtonName(input.KeyPreviousSpell)
		t.rightHint = in.GamepadButtonName(input.KeyNextSpell) + " >"
	}

	if next == -1 && t.gamepadEnabled && !in.IsActionLocked() {
		switch {
		case in.IsKeyJustPressed(input.KeyNextSpell):
			next = clamp(t.active+1, 0, len(t.Tabs)-1)
		case in.IsKeyJustPressed(input.KeyPreviousSpell):
			next = clamp(t.active-1, 0, len(t.Tabs)-1)
		}
	}

	if next >= 0 && next != t.active {
		t.SetActiveIndex(next)
		t.changed = true
	}
}

func (t *TabBar) Draw(c Canvas) {
	for i := range t.Tabs {
		tab := &t.Tabs[i]
		bg := ColorTab
		if tab.active {
			bg = ColorTabActive
		}
		c.FillRect(tab.Box, bg)
		if tab.Icon != "" {
			size := min(tab.Box.W, tab.Box.H) - 8
			icon := R(tab.Box.Center().X-size/2, tab.Box.Center().Y-size/2, size, size)
			if !c.DrawSprite(tab.Icon, icon, 1) {
				c.DrawText(tab.Icon, tab.Box.X+4, tab.Box.Y+4, ColorText)
			}
		} else {
			label := CropText(tab.Label, tab.Box.W-4)
			c.DrawText(label, tab.Box.Center().X-TextWidth(label)/2, tab.Box.Center().Y-LineHeight/2, ColorText)
		}
		if tab.active {
			c.StrokeRect(tab.Box, 2, ColorSelected)
		} else {
			c.StrokeRect(tab.Box, 1, ColorBorder)
		}
	}

	if t.leftHint != "" {
		c.DrawText(t.leftHint, t.Box.X+5, t.Box.Y-LineHeight-3, ColorHint)
		c.DrawText(t.rightHint, t.Box.Right()-TextWidth(t.rightHint)-5, t.Box.Y-LineHeight-3, ColorHint)
	}
}
