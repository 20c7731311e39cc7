package input

// State holds input state for the current frame.
// It is populated by the platform poller, or directly by tests.
type State struct {
	mouseX, mouseY float64

	leftDown     bool
	leftPressed  bool // True on the frame the button was pressed
	leftReleased bool // True on the frame the button was released
	rightPressed bool
	wheelY       float64

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool

	gamepadConnected bool
	gamepadNames     map[Key]string

	actionLocked bool
}

func NewState() *State {
	return &State{gamepadNames: make(map[Key]string)}
}

// BeginFrame clears per-frame input state.
// Call this at the start of each frame before collecting input.
func (s *State) BeginFrame() {
	s.leftPressed = false
	s.leftReleased = false
	s.rightPressed = false
	s.wheelY = 0
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.actionLocked = false
}

func (s *State) SetMousePos(x, y float64) {
	s.mouseX = x
	s.mouseY = y
}

// SetMouseLeft sets the left button state, deriving the edges from the
// previous state.
func (s *State) SetMouseLeft(down bool) {
	wasDown := s.leftDown
	s.leftDown = down
	if down && !wasDown {
		s.leftPressed = true
	}
	if !down && wasDown {
		s.leftReleased = true
	}
}

// PressMouseRight registers a right click for this frame.
func (s *State) PressMouseRight() {
	s.rightPressed = true
}

func (s *State) SetWheelY(dy float64) {
	s.wheelY = dy
}

func (s *State) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	s.keyDown[key] = down
}

func (s *State) SetGamepadConnected(connected bool) {
	s.gamepadConnected = connected
}

func (s *State) SetGamepadButtonName(key Key, name string) {
	s.gamepadNames[key] = name
}

// Controller

func (s *State) MousePosition() (float64, float64) { return s.mouseX, s.mouseY }
func (s *State) IsMousePressedLeft() bool          { return s.leftDown }
func (s *State) IsMouseJustPressedLeft() bool      { return s.leftPressed }
func (s *State) IsMouseJustReleasedLeft() bool     { return s.leftReleased }
func (s *State) IsMouseJustPressedRight() bool     { return s.rightPressed }
func (s *State) WheelY() float64                   { return s.wheelY }

func (s *State) IsKeyActive(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	return s.keyDown[k]
}

func (s *State) IsKeyJustPressed(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	return s.keyPressed[k]
}

func (s *State) IsGamepadConnected() bool { return s.gamepadConnected }

func (s *State) GamepadButtonName(k Key) string { return s.gamepadNames[k] }

func (s *State) IsActionLocked() bool { return s.actionLocked }
func (s *State) LockAction()          { s.actionLocked = true }
