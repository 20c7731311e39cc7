package input

// Key is a logical input action. Physical keys and gamepad buttons are
// mapped onto these by the platform poller.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyInteract
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPreviousSpell
	KeyNextSpell
	KeyDrop
	KeyInventory
	KeySpellbook
	KeyCount
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "Escape"
	case KeyInteract:
		return "Interact"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyPreviousSpell:
		return "PreviousSpell"
	case KeyNextSpell:
		return "NextSpell"
	case KeyDrop:
		return "Drop"
	case KeyInventory:
		return "Inventory"
	case KeySpellbook:
		return "Spellbook"
	default:
		return "None"
	}
}

// KeyByName resolves a binding action name to its Key.
func KeyByName(name string) Key {
	for k := KeyNone + 1; k < KeyCount; k++ {
		if k.String() == name {
			return k
		}
	}
	return KeyNone
}

// Controller is the polling surface the GUI reads once per frame.
// All Just* queries are edge-triggered and true for exactly one frame.
type Controller interface {
	MousePosition() (x, y float64)
	IsMousePressedLeft() bool
	IsMouseJustPressedLeft() bool
	IsMouseJustReleasedLeft() bool
	IsMouseJustPressedRight() bool
	WheelY() float64

	IsKeyActive(k Key) bool
	IsKeyJustPressed(k Key) bool

	IsGamepadConnected() bool
	GamepadButtonName(k Key) string

	// The action lock suppresses the rest of the frame from reacting to
	// a gesture that was already consumed. It clears on the next frame.
	IsActionLocked() bool
	LockAction()
}
