package ui

import (
	"grimoire/pkg/input"
)

// Focusable is a widget a ButtonGroup can select.
type Focusable interface {
	Select()
	Deselect()
	IsActive() bool
}

// ButtonGroup is a grid of focusable widgets registered row by row.
// Navigation is clamped at the grid edges and never wraps. Moving past a
// left or right edge hands focus to the neighbor window instead, unless
// the window is locked.
type ButtonGroup struct {
	rows [][]Focusable

	selRow, selCol int // -1 when nothing is selected

	gamepadEnabled bool
	windowLocked   bool
	window         *SelectableWindow
}

func NewButtonGroup() *ButtonGroup {
	return &ButtonGroup{selRow: -1, selCol: -1}
}

func (g *ButtonGroup) SetSelectableWindow(w *SelectableWindow) {
	g.window = w
}

func (g *ButtonGroup) SetGamepadEnabled(enabled bool) {
	g.gamepadEnabled = enabled
}

func (g *ButtonGroup) IsGamepadEnabled() bool {
	return g.gamepadEnabled
}

// SetWindowLock keeps navigation inside this group while a gamepad
// pick and place sequence picks its target.
func (g *ButtonGroup) SetWindowLock(locked bool) {
	g.windowLocked = locked
}

// AddButton appends b to row and returns its column.
func (g *ButtonGroup) AddButton(b Focusable, row int) int {
	if row < 0 {
		row = 0
	}
	for len(g.rows) <= row {
		g.rows = append(g.rows, nil)
	}
	g.rows[row] = append(g.rows[row], b)
	return len(g.rows[row]) - 1
}

func (g *ButtonGroup) Len() int {
	n := 0
	for _, r := range g.rows {
		n += len(r)
	}
	return n
}

func (g *ButtonGroup) Rows() int { return len(g.rows) }

func (g *ButtonGroup) RowLen(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Selected returns the selected coordinates.
func (g *ButtonGroup) Selected() (row, col int, ok bool) {
	if g.selRow < 0 {
		return -1, -1, false
	}
	return g.selRow, g.selCol, true
}

func (g *ButtonGroup) SelectedButton() Focusable {
	if g.selRow < 0 {
		return nil
	}
	return g.rows[g.selRow][g.selCol]
}

// SelectButton selects the button at row, col. Both are clamped into the
// grid. Empty rows are skipped towards row zero.
func (g *ButtonGroup) SelectButton(row, col int) {
	if g.Len() == 0 {
		return
	}
	row = clamp(row, 0, len(g.rows)-1)
	for row > 0 && len(g.rows[row]) == 0 {
		row--
	}
	for len(g.rows[row]) == 0 {
		row++
	}
	col = clamp(col, 0, len(g.rows[row])-1)
	g.set(row, col)
}

// SelectButtonRef selects b if it is registered.
func (g *ButtonGroup) SelectButtonRef(b Focusable) bool {
	row, col, ok := g.IndexOf(b)
	if ok {
		g.set(row, col)
	}
	return ok
}

func (g *ButtonGroup) IndexOf(b Focusable) (row, col int, ok bool) {
	for r, buttons := range g.rows {
		for c, candidate := range buttons {
			if candidate == b {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// SelectFirst selects the first active button in reading order.
func (g *ButtonGroup) SelectFirst() bool {
	for r, buttons := range g.rows {
		for c, b := range buttons {
			if b.IsActive() {
				g.set(r, c)
				return true
			}
		}
	}
	return false
}

func (g *ButtonGroup) ClearSelection() {
	if b := g.SelectedButton(); b != nil {
		b.Deselect()
	}
	g.selRow, g.selCol = -1, -1
}

func (g *ButtonGroup) set(row, col int) {
	if row == g.selRow && col == g.selCol {
		g.rows[row][col].Select()
		return
	}
	if b := g.SelectedButton(); b != nil {
		b.Deselect()
	}
	g.selRow, g.selCol = row, col
	g.rows[row][col].Select()
}

// Update applies gamepad navigation. It only runs for an enabled group
// with a gamepad connected and no action consumed earlier this frame.
func (g *ButtonGroup) Update(in input.Controller) {
	if !g.gamepadEnabled || !in.IsGamepadConnected() || in.IsActionLocked() {
		return
	}
	switch {
	case in.IsKeyJustPressed(input.KeyUp):
		g.moveVertical(-1)
		in.LockAction()
	case in.IsKeyJustPressed(input.KeyDown):
		g.moveVertical(1)
		in.LockAction()
	case in.IsKeyJustPressed(input.KeyLeft):
		if !g.moveHorizontal(-1) && !g.windowLocked && g.window != nil {
			g.window.SetLeftWindowSelected()
		}
		in.LockAction()
	case in.IsKeyJustPressed(input.KeyRight):
		if !g.moveHorizontal(1) && !g.windowLocked && g.window != nil {
			g.window.SetRightWindowSelected()
		}
		in.LockAction()
	}
}

func (g *ButtonGroup) moveVertical(dir int) bool {
	if g.selRow < 0 {
		return g.SelectFirst()
	}
	for row := g.selRow + dir; row >= 0 && row < len(g.rows); row += dir {
		if col, ok := g.nearestActive(row, g.selCol); ok {
			g.set(row, col)
			return true
		}
	}
	return false
}

func (g *ButtonGroup) moveHorizontal(dir int) bool {
	if g.selRow < 0 {
		return g.SelectFirst()
	}
	buttons := g.rows[g.selRow]
	for col := g.selCol + dir; col >= 0 && col < len(buttons); col += dir {
		if buttons[col].IsActive() {
			g.set(g.selRow, col)
			return true
		}
	}
	return false
}

// nearestActive finds the active button in row closest to col.
func (g *ButtonGroup) nearestActive(row, col int) (int, bool) {
	buttons := g.rows[row]
	if len(buttons) == 0 {
		return -1, false
	}
	col = clamp(col, 0, len(buttons)-1)
	for d := 0; d < len(buttons); d++ {
		if c := col - d; c >= 0 && buttons[c].IsActive() {
			return c, true
		}
		if c := col + d; c < len(buttons) && buttons[c].IsActive() {
			return c, true
		}
	}
	return -1, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
