package gui

import (
	"grimoire/pkg/shared/config"
	"grimoire/pkg/ui"
)

const hintDuration = 2.5 // seconds

// Hints shows short messages at the bottom of the screen, newest last.
type Hints struct {
	env     Env
	entries []hint
}

type hint struct {
	text string
	left float64
}

func NewHints(env Env) *Hints {
	return &Hints{env: env}
}

// Show queues the text for key. A hint already on screen is restarted.
func (h *Hints) Show(key string) {
	text := h.env.text(key, key)
	for i := range h.entries {
		if h.entries[i].text == text {
			h.entries[i].left = hintDuration
			return
		}
	}
	h.entries = append(h.entries, hint{text: text, left: hintDuration})
	if len(h.entries) > 3 {
		h.entries = h.entries[1:]
	}
}

func (h *Hints) Texts() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.text
	}
	return out
}

func (h *Hints) Update(dt float64) {
	kept := h.entries[:0]
	for _, e := range h.entries {
		e.left -= dt
		if e.left > 0 {
			kept = append(kept, e)
		}
	}
	h.entries = kept
}

func (h *Hints) IsVisible() bool { return len(h.entries) > 0 }

func (h *Hints) Draw(c ui.Canvas) {}

func (h *Hints) DrawAfterForeground(c ui.Canvas) {
	y := config.ScreenHeight - config.GUIMargin - float64(len(h.entries))*ui.LineHeight
	for _, e := range h.entries {
		x := (config.ScreenWidth - ui.TextWidth(e.text)) / 2
		c.FillRect(ui.R(x-4, y, ui.TextWidth(e.text)+8, ui.LineHeight), ui.ColorWindow)
		c.DrawText(e.text, x, y, ui.ColorHint)
		y += ui.LineHeight
	}
}
