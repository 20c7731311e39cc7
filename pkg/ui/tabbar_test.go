package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grimoire/pkg/input"
)

func TestTabBarClick(t *testing.T) {
	bar := NewTabBar(R(0, 0, 300, 30), []string{"a", "b", "c"})
	in := input.NewState()

	mouseFrame(in, 150, 10, true)
	bar.Update(in, 0.016)
	assert.True(t, bar.Changed())
	assert.Equal(t, 1, bar.ActiveIndex())
	assert.True(t, bar.Tabs[1].IsActive())
	assert.False(t, bar.Tabs[0].IsActive())

	mouseFrame(in, 150, 10, false)
	bar.Update(in, 0.016)
	assert.False(t, bar.Changed())
}

func TestTabBarGamepadCyclingIsClamped(t *testing.T) {
	bar := NewTabBar(R(0, 0, 200, 30), []string{"a", "b"})
	in := input.NewState()

	gamepadFrame(in, input.KeyNextSpell)
	bar.Update(in, 0.016)
	assert.Equal(t, 0, bar.ActiveIndex(), "gamepad disabled")

	bar.SetGamepadEnabled(true)
	gamepadFrame(in, input.KeyNextSpell)
	bar.Update(in, 0.016)
	assert.Equal(t, 1, bar.ActiveIndex())

	gamepadFrame(in, input.KeyNextSpell)
	bar.Update(in, 0.016)
	assert.Equal(t, 1, bar.ActiveIndex())
	assert.False(t, bar.Changed())

	gamepadFrame(in, input.KeyPreviousSpell)
	bar.Update(in, 0.016)
	gamepadFrame(in, input.KeyPreviousSpell)
	bar.Update(in, 0.016)
	assert.Equal(t, 0, bar.ActiveIndex())
}

func TestScrollBar(t *testing.T) {
	bar := NewScrollBar(R(290, 0, 10, 100), 100)
	helper := NewScrollHelper(R(0, 0, 280, 100), bar)
	bar.ContentHeight = 300
	in := input.NewState()

	in.BeginFrame()
	in.SetMousePos(50, 50)
	in.SetWheelY(-100)
	bar.Update(in, R(0, 0, 300, 100))
	assert.Equal(t, 200.0, bar.Offset(), "clamped to content height minus view")

	helper.EnsureVisible(R(0, 20, 40, 40))
	assert.Equal(t, 20.0, bar.Offset())
	assert.Equal(t, R(0, 0, 40, 40), helper.Layout(R(0, 20, 40, 40)))
	assert.True(t, helper.IsVisible(helper.Layout(R(0, 20, 40, 40))))
	assert.False(t, helper.IsVisible(helper.Layout(R(0, 0, 40, 40))))

	bar.ContentHeight = 50
	bar.Update(in, R(0, 0, 300, 100))
	assert.Equal(t, 0.0, bar.Offset())
}

func TestWrapAndCrop(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, WrapText("one two three", 7*GlyphWidth))
	assert.Equal(t, "abc...", CropText("abcdefghij", 6*GlyphWidth))
	assert.Equal(t, "short", CropText("short", 100))
}
