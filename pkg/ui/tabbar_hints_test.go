package ui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"grimoire/pkg/input"
	"grimoire/pkg/ui"
	"grimoire/pkg/ui/uitest"
)

func padFrame(in *input.State, connected bool) {
	in.BeginFrame()
	in.SetGamepadConnected(connected)
}

func TestTabBarHints(t *testing.T) {
	bar := ui.NewTexturedTabBar(ui.R(0, 40, 200, 30), []string{"tab_a", "tab_b"})
	in := input.NewState()
	in.SetGamepadButtonName(input.KeyPreviousSpell, "LB")
	in.SetGamepadButtonName(input.KeyNextSpell, "RB")
	bar.SetGamepadEnabled(true)

	padFrame(in, true)
	bar.Update(in, 0.016)
	c := &uitest.Canvas{}
	bar.Draw(c)
	assert.True(t, c.HasText("< LB"))
	assert.True(t, c.HasText("RB >"))
	assert.Contains(t, c.Sprites, "tab_a")
	assert.True(t, c.Balanced())

	padFrame(in, false)
	bar.Update(in, 0.016)
	c = &uitest.Canvas{}
	bar.Draw(c)
	assert.False(t, c.HasText("< LB"))
}

func TestTabBarSpriteFallback(t *testing.T) {
	bar := ui.NewTexturedTabBar(ui.R(0, 0, 70, 35), []string{"tab_Fire", "tab_Ice"})
	c := &uitest.Canvas{}
	bar.Draw(c)
	assert.Equal(t, []string{"tab_Fire", "tab_Ice"}, c.Sprites)
	assert.True(t, c.HasText("tab_Fire"), "missing sprites fall back to the icon key")
}
