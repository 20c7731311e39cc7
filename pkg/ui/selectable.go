package ui

// WindowListener is told when its window gains or loses gamepad focus.
type WindowListener interface {
	WindowSelectedChanged(selected bool)
}

// SelectableWindow is a panel that can hold gamepad focus. Neighbors form
// a chain that Left and Right walk along. Mouse input ignores focus.
type SelectableWindow struct {
	selected bool
	left     *SelectableWindow
	right    *SelectableWindow
	listener WindowListener
}

func (w *SelectableWindow) SetWindowListener(l WindowListener) {
	w.listener = l
}

func (w *SelectableWindow) SetLeftWindow(left *SelectableWindow) {
	w.left = left
}

func (w *SelectableWindow) SetRightWindow(right *SelectableWindow) {
	w.right = right
}

func (w *SelectableWindow) IsWindowSelected() bool {
	return w.selected
}

func (w *SelectableWindow) SetWindowSelected(selected bool) {
	if w.selected == selected {
		return
	}
	w.selected = selected
	if w.listener != nil {
		w.listener.WindowSelectedChanged(selected)
	}
}

// SetLeftWindowSelected hands focus to the left neighbor. It returns
// false and keeps focus when there is none.
func (w *SelectableWindow) SetLeftWindowSelected() bool {
	if w.left == nil {
		return false
	}
	w.SetWindowSelected(false)
	w.left.SetWindowSelected(true)
	return true
}

func (w *SelectableWindow) SetRightWindowSelected() bool {
	if w.right == nil {
		return false
	}
	w.SetWindowSelected(false)
	w.right.SetWindowSelected(true)
	return true
}
