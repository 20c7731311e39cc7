package ui

import (
	"image/color"
	"unicode/utf8"
)

// Canvas is the drawing surface panels render onto.
type Canvas interface {
	FillRect(r Rect, clr color.Color)
	StrokeRect(r Rect, width float64, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
	// DrawSprite draws the sprite registered under key scaled into dst.
	// It returns false when no such sprite exists so callers can fall
	// back to primitives.
	DrawSprite(key string, dst Rect, alpha float64) bool
	PushClip(r Rect)
	PopClip()
}

// TextProvider resolves localized display strings.
type TextProvider interface {
	Text(key string) string
}

// SoundPlayer plays short feedback sounds by key.
type SoundPlayer interface {
	Play(key string)
}

// Glyph metrics of the debug font
const (
	GlyphWidth = 6.0
	LineHeight = 16.0
)

func TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * GlyphWidth
}

// CropText shortens s with a trailing ellipsis so it fits into width.
func CropText(s string, width float64) string {
	if TextWidth(s) <= width {
		return s
	}
	n := int(width/GlyphWidth) - 3
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// WrapText breaks s into lines no wider than width, splitting on spaces.
func WrapText(s string, width float64) []string {
	perLine := int(width / GlyphWidth)
	if perLine <= 0 {
		return nil
	}
	var lines []string
	var line []rune
	word := []rune{}
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}
	addWord := func() {
		if len(word) == 0 {
			return
		}
		if len(line) > 0 && len(line)+1+len(word) > perLine {
			flush()
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, word...)
		word = word[:0]
	}
	for _, r := range s {
		switch r {
		case ' ':
			addWord()
		case '\n':
			addWord()
			flush()
		default:
			word = append(word, r)
		}
	}
	addWord()
	flush()
	return lines
}

// Colors
var (
	ColorWindow      = color.RGBA{50, 50, 50, 240}
	ColorTitleBar    = color.RGBA{80, 80, 80, 255}
	ColorBorder      = color.RGBA{200, 200, 200, 255}
	ColorText        = color.RGBA{255, 255, 255, 255}
	ColorTextDim     = color.RGBA{170, 170, 170, 255}
	ColorHint        = color.RGBA{190, 110, 250, 255}
	ColorSlot        = color.RGBA{40, 40, 40, 255}
	ColorSlotBorder  = color.RGBA{100, 100, 100, 255}
	ColorSelected    = color.RGBA{255, 215, 0, 255}
	ColorHighlighted = color.RGBA{100, 200, 100, 255}
	ColorInactive    = color.RGBA{20, 20, 20, 200}
	ColorLocked      = color.RGBA{120, 30, 30, 220}
	ColorTab         = color.RGBA{60, 60, 180, 255}
	ColorTabActive   = color.RGBA{100, 100, 200, 255}
	ColorScrollKnob  = color.RGBA{150, 150, 150, 255}
)

// Panel is a top level window managed by a Manager.
type Panel interface {
	Update(dt float64)
	Draw(c Canvas)
	DrawAfterForeground(c Canvas)
	IsVisible() bool
}

// Manager holds the panel stack in draw order.
type Manager struct {
	Panels []Panel
}

func NewManager() *Manager {
	return &Manager{
		Panels: make([]Panel, 0),
	}
}

func (m *Manager) AddPanel(p Panel) {
	m.Panels = append(m.Panels, p)
}

func (m *Manager) Update(dt float64) {
	for _, p := range m.Panels {
		if p.IsVisible() {
			p.Update(dt)
		}
	}
}

// Draw renders visible panels, then their foreground layer so tooltips
// and drag clones end up above every panel body.
func (m *Manager) Draw(c Canvas) {
	for _, p := range m.Panels {
		if p.IsVisible() {
			p.Draw(c)
		}
	}
	for _, p := range m.Panels {
		if p.IsVisible() {
			p.DrawAfterForeground(c)
		}
	}
}

// AnyVisible reports whether at least one panel is open.
func (m *Manager) AnyVisible() bool {
	for _, p := range m.Panels {
		if p.IsVisible() {
			return true
		}
	}
	return false
}
