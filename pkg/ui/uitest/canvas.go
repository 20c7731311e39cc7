// Package uitest provides test doubles for the ui package.
package uitest

import (
	"image/color"

	"grimoire/pkg/ui"
)

// Canvas records what was drawn. It knows no sprites, so every
// DrawSprite call reports a miss.
type Canvas struct {
	Texts      []string
	TextColors []color.Color
	Rects      int
	Sprites    []string
	clips      int
}

func (c *Canvas) FillRect(r ui.Rect, clr color.Color)                  { c.Rects++ }
func (c *Canvas) StrokeRect(r ui.Rect, width float64, clr color.Color) { c.Rects++ }

func (c *Canvas) DrawText(s string, x, y float64, clr color.Color) {
	c.Texts = append(c.Texts, s)
	c.TextColors = append(c.TextColors, clr)
}

func (c *Canvas) DrawSprite(key string, dst ui.Rect, alpha float64) bool {
	c.Sprites = append(c.Sprites, key)
	return false
}

func (c *Canvas) PushClip(r ui.Rect) { c.clips++ }

func (c *Canvas) PopClip() {
	if c.clips == 0 {
		panic("PopClip without PushClip")
	}
	c.clips--
}

// Balanced reports whether every PushClip was popped.
func (c *Canvas) Balanced() bool { return c.clips == 0 }

// TextColor returns the color of the first drawn text equal to s.
func (c *Canvas) TextColor(s string) (color.Color, bool) {
	for i, t := range c.Texts {
		if t == s {
			return c.TextColors[i], true
		}
	}
	return nil, false
}

func (c *Canvas) HasText(s string) bool {
	for _, t := range c.Texts {
		if t == s {
			return true
		}
	}
	return false
}

// Text returns the key itself, so tests can look for keys on the canvas.
type Text struct{}

func (Text) Text(key string) string { return key }

// Sound records played sound keys.
type Sound struct {
	Played []string
}

func (s *Sound) Play(key string) { s.Played = append(s.Played, key) }
