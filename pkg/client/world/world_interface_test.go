package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"grimoire/pkg/character"
	"grimoire/pkg/client/gui"
	"grimoire/pkg/input"
	"grimoire/pkg/shared/components"
	protocol "grimoire/pkg/shared/network"
	"grimoire/pkg/ui/uitest"
)

const frameTime = 1.0 / 60

type fakeConsole struct {
	commands chan protocol.Command
	replies  []protocol.Reply
}

func newFakeConsole(cmds ...protocol.Command) *fakeConsole {
	c := &fakeConsole{commands: make(chan protocol.Command, len(cmds))}
	for _, cmd := range cmds {
		c.commands <- cmd
	}
	return c
}

func (c *fakeConsole) Commands() <-chan protocol.Command { return c.commands }
func (c *fakeConsole) Reply(r protocol.Reply)            { c.replies = append(c.replies, r) }

type InterfaceTestSuite struct {
	suite.Suite
	in    *input.State
	core  *character.Core
	world *Interface
}

func (s *InterfaceTestSuite) SetupTest() {
	s.in = input.NewState()
	s.core = character.NewCore(character.StarterData())
	s.world = NewInterface(gui.Env{Input: s.in, Sound: &uitest.Sound{}}, s.core, gui.ContextLevel)
}

func (s *InterfaceTestSuite) press(k input.Key) {
	s.in.BeginFrame()
	for key := input.KeyNone + 1; key < input.KeyCount; key++ {
		s.in.SetKey(key, false)
	}
	s.in.SetKey(k, true)
	s.world.Update(frameTime)
}

func (s *InterfaceTestSuite) TestToggleWindows() {
	s.press(input.KeyInventory)
	s.True(s.world.Inventory().IsVisible())
	s.True(s.world.Inventory().IsWindowSelected())

	s.press(input.KeySpellbook)
	s.False(s.world.Inventory().IsVisible(), "windows are exclusive")
	s.True(s.world.Spellbook().IsVisible())
	s.True(s.world.Spellbook().IsWindowSelected())

	s.press(input.KeySpellbook)
	s.False(s.world.Spellbook().IsVisible())
}

func (s *InterfaceTestSuite) TestReopenedSpellbookOwnsFocus() {
	weapon := s.world.Spellbook().Weapon()
	s.press(input.KeySpellbook)
	s.Require().True(s.world.Spellbook().SetRightWindowSelected())
	s.True(weapon.IsWindowSelected())
	s.False(s.world.Spellbook().IsWindowSelected())

	s.press(input.KeySpellbook)
	s.False(weapon.IsWindowSelected(), "hiding drops focus")

	s.press(input.KeySpellbook)
	s.True(s.world.Spellbook().IsWindowSelected())
	s.False(weapon.IsWindowSelected(), "only one sibling window is focused")

	s.press(input.KeyInventory)
	s.True(s.world.Inventory().IsWindowSelected())
	s.False(s.world.Spellbook().IsWindowSelected())
	s.False(weapon.IsWindowSelected())
}

func (s *InterfaceTestSuite) TestEscapeClosesWindows() {
	s.press(input.KeyInventory)
	s.press(input.KeyEscape)
	s.False(s.world.AnyOpen())
}

func (s *InterfaceTestSuite) TestConsumeItemHeals() {
	s.Require().NoError(s.world.ConsumeItem("fo_healingpotion"))
	s.Equal(2, s.core.ItemCount("fo_healingpotion"))
	health, maxHealth := s.core.Health()
	s.Equal(maxHealth, health)
	s.True(s.world.TakeDirty())
	s.False(s.world.TakeDirty())
}

func (s *InterfaceTestSuite) TestConsumeMissingItem() {
	s.Error(s.world.ConsumeItem("fo_bread"))
	s.Error(s.world.ConsumeItem("nothing"))
}

func (s *InterfaceTestSuite) TestDropItem() {
	s.Require().NoError(s.world.DropItem("do_letter"))
	s.Zero(s.core.ItemCount("do_letter"))
	s.Error(s.world.DropItem("do_letter"))
}

func (s *InterfaceTestSuite) TestBookIsModal() {
	s.world.ReadDocument("do_letter")
	s.Require().True(s.world.Book().IsVisible())

	s.press(input.KeyInventory)
	s.False(s.world.Inventory().IsVisible())

	s.press(input.KeyEscape)
	s.False(s.world.Book().IsVisible())
}

func (s *InterfaceTestSuite) TestSpellscrollAlreadyKnown() {
	s.Require().NoError(s.core.AddItem("sp_fireball", 1))
	s.Require().NoError(s.world.LearnSpellscroll("sp_fireball"))
	s.Equal(1, s.core.ItemCount("sp_fireball"))
	s.Equal([]string{"AlreadyLearned"}, s.world.Hints().Texts())
}

func (s *InterfaceTestSuite) TestScriptCommands() {
	console := newFakeConsole(
		protocol.Command{ID: 1, Type: protocol.CommandLearnSpell, Spell: "holyfire"},
		protocol.Command{ID: 2, Type: protocol.CommandAddItem, Item: "eq_amulet"},
		protocol.Command{ID: 3, Type: protocol.CommandLearnModifier, Modifier: "range", Level: 2},
		protocol.Command{ID: 4, Type: protocol.CommandEquipSpell, Spell: "fireball"},
		protocol.Command{ID: 5, Type: "summon"},
		protocol.Command{ID: 6, Type: protocol.CommandOpen, Window: "spellbook"},
	)
	s.world.SetConsole(console)
	s.world.Update(frameTime)

	s.Require().Len(console.replies, 6)
	for _, r := range console.replies[:4] {
		s.True(r.OK, "command %d: %s", r.ID, r.Error)
	}
	s.False(console.replies[4].OK)
	s.Contains(console.replies[4].Error, "unknown command")
	s.True(console.replies[5].OK)

	s.Contains(s.core.LearnedSpells(components.SchoolDivine), components.SpellID("holyfire"))
	s.Equal(1, s.core.ItemCount("eq_amulet"))
	s.Equal(2, s.core.LearnedModifiers()[components.ModifierRange])
	s.Equal(0, s.core.Weapon().SlotOf("fireball"))
	s.True(s.world.Spellbook().IsVisible())
}

func TestInterfaceTestSuite(t *testing.T) {
	suite.Run(t, new(InterfaceTestSuite))
}

func TestLearnSpellscroll(t *testing.T) {
	core := character.NewCore(character.Data{Items: map[string]int{"sp_fireball": 1}})
	w := NewInterface(gui.Env{Input: input.NewState()}, core, gui.ContextLevel)

	require.NoError(t, w.LearnSpellscroll("sp_fireball"))
	assert.Equal(t, []components.SpellID{"fireball"}, core.LearnedSpells(components.SchoolElemental))
	assert.Zero(t, core.ItemCount("sp_fireball"))
	assert.Equal(t, []string{"SpellLearned"}, w.Hints().Texts())

	assert.Error(t, w.LearnSpellscroll("do_letter"))
}

func TestMapContextSpellbookIsReadOnly(t *testing.T) {
	core := character.NewCore(character.StarterData())
	w := NewInterface(gui.Env{Input: input.NewState()}, core, gui.ContextMap)
	assert.Equal(t, gui.ContextMap, w.Context())

	w.OpenSpellbook()
	canvas := &uitest.Canvas{}
	w.Draw(canvas)
	assert.True(t, canvas.Balanced())
	assert.True(t, canvas.HasText("Old Staff"))
}
