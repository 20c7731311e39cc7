package ui

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimoire/pkg/input"
)

type fakeButton struct {
	selected bool
	inactive bool
}

func (b *fakeButton) Select()        { b.selected = true }
func (b *fakeButton) Deselect()      { b.selected = false }
func (b *fakeButton) IsActive() bool { return !b.inactive }

func gamepadFrame(in *input.State, k input.Key) {
	in.BeginFrame()
	in.SetGamepadConnected(true)
	for key := input.KeyNone + 1; key < input.KeyCount; key++ {
		in.SetKey(key, false)
	}
	if k != input.KeyNone {
		in.SetKey(k, true)
	}
}

func grid(t *testing.T, rows ...int) (*ButtonGroup, [][]*fakeButton) {
	g := NewButtonGroup()
	g.SetGamepadEnabled(true)
	buttons := make([][]*fakeButton, len(rows))
	for r, n := range rows {
		for c := 0; c < n; c++ {
			b := &fakeButton{}
			buttons[r] = append(buttons[r], b)
			assert.Equal(t, c, g.AddButton(b, r))
		}
	}
	return g, buttons
}

func TestButtonGroupFirstInputSelectsOrigin(t *testing.T) {
	g, buttons := grid(t, 3, 3)
	in := input.NewState()

	_, _, ok := g.Selected()
	require.False(t, ok)

	gamepadFrame(in, input.KeyDown)
	g.Update(in)
	row, col, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.True(t, buttons[0][0].selected)
	assert.True(t, in.IsActionLocked())
}

func TestButtonGroupClampsAtEdges(t *testing.T) {
	g, buttons := grid(t, 2, 3)
	in := input.NewState()
	g.SelectButton(0, 0)

	gamepadFrame(in, input.KeyUp)
	g.Update(in)
	row, col, _ := g.Selected()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	g.SelectButton(0, 1)
	gamepadFrame(in, input.KeyDown)
	g.Update(in)
	row, col, _ = g.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	gamepadFrame(in, input.KeyRight)
	g.Update(in)
	gamepadFrame(in, input.KeyRight)
	g.Update(in)
	gamepadFrame(in, input.KeyRight)
	g.Update(in)
	row, col, _ = g.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 2, col)
	assert.True(t, buttons[1][2].selected)
	assert.False(t, buttons[0][1].selected)
}

func TestButtonGroupColumnClampsOnShorterRow(t *testing.T) {
	g, _ := grid(t, 4, 1)
	in := input.NewState()
	g.SelectButton(0, 3)

	gamepadFrame(in, input.KeyDown)
	g.Update(in)
	row, col, _ := g.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)
}

func TestButtonGroupSkipsInactive(t *testing.T) {
	g, buttons := grid(t, 1, 1, 1)
	buttons[1][0].inactive = true
	in := input.NewState()
	g.SelectButton(0, 0)

	gamepadFrame(in, input.KeyDown)
	g.Update(in)
	row, _, _ := g.Selected()
	assert.Equal(t, 2, row)
}

func TestButtonGroupSelectButtonClamps(t *testing.T) {
	g, _ := grid(t, 2, 2)
	g.SelectButton(10, -4)
	row, col, _ := g.Selected()
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	empty := NewButtonGroup()
	empty.SelectButton(0, 0)
	_, _, ok := empty.Selected()
	assert.False(t, ok)
	assert.Nil(t, empty.SelectedButton())
}

func TestButtonGroupIgnoresInputWhenDisabled(t *testing.T) {
	g, _ := grid(t, 2)
	in := input.NewState()

	g.SetGamepadEnabled(false)
	gamepadFrame(in, input.KeyDown)
	g.Update(in)
	_, _, ok := g.Selected()
	assert.False(t, ok)

	g.SetGamepadEnabled(true)
	gamepadFrame(in, input.KeyDown)
	in.SetGamepadConnected(false)
	g.Update(in)
	_, _, ok = g.Selected()
	assert.False(t, ok)

	gamepadFrame(in, input.KeyDown)
	in.LockAction()
	g.Update(in)
	_, _, ok = g.Selected()
	assert.False(t, ok)
}

type focusRecorder struct {
	events []bool
}

func (f *focusRecorder) WindowSelectedChanged(selected bool) {
	f.events = append(f.events, selected)
}

func TestButtonGroupHandsFocusToNeighbor(t *testing.T) {
	var left, right SelectableWindow
	leftEvents, rightEvents := &focusRecorder{}, &focusRecorder{}
	left.SetWindowListener(leftEvents)
	right.SetWindowListener(rightEvents)
	left.SetRightWindow(&right)
	right.SetLeftWindow(&left)
	left.SetWindowSelected(true)

	g, _ := grid(t, 2)
	g.SetSelectableWindow(&left)
	g.SelectButton(0, 1)
	in := input.NewState()

	g.SetWindowLock(true)
	gamepadFrame(in, input.KeyRight)
	g.Update(in)
	assert.True(t, left.IsWindowSelected())

	g.SetWindowLock(false)
	gamepadFrame(in, input.KeyRight)
	g.Update(in)
	assert.False(t, left.IsWindowSelected())
	assert.True(t, right.IsWindowSelected())
	assert.Equal(t, []bool{true, false}, leftEvents.events)
	assert.Equal(t, []bool{true}, rightEvents.events)
}

func TestButtonGroupSelectionStaysInRange(t *testing.T) {
	keys := []input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight}
	rng := rand.New(rand.NewSource(7))
	in := input.NewState()

	for trial := 0; trial < 200; trial++ {
		rows := make([]int, 1+rng.Intn(5))
		for i := range rows {
			rows[i] = 1 + rng.Intn(6)
		}
		g, buttons := grid(t, rows...)
		for r := range buttons {
			for _, b := range buttons[r] {
				b.inactive = rng.Intn(4) == 0
			}
		}

		for step := 0; step < 50; step++ {
			gamepadFrame(in, keys[rng.Intn(len(keys))])
			g.Update(in)

			row, col, ok := g.Selected()
			if !ok {
				continue
			}
			require.GreaterOrEqual(t, row, 0)
			require.Less(t, row, g.Rows())
			require.GreaterOrEqual(t, col, 0)
			require.Less(t, col, g.RowLen(row))

			selected := 0
			for r := range buttons {
				for _, b := range buttons[r] {
					if b.selected {
						selected++
					}
				}
			}
			require.Equal(t, 1, selected, "exactly one button is selected")
		}
	}
}
