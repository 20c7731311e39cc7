package systems

import (
	"fmt"

	"grimoire/pkg/input"
	"grimoire/pkg/shared/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gamepadButtons = map[string]ebiten.StandardGamepadButton{
	"A":         ebiten.StandardGamepadButtonRightBottom,
	"B":         ebiten.StandardGamepadButtonRightRight,
	"X":         ebiten.StandardGamepadButtonRightLeft,
	"Y":         ebiten.StandardGamepadButtonRightTop,
	"LB":        ebiten.StandardGamepadButtonFrontTopLeft,
	"RB":        ebiten.StandardGamepadButtonFrontTopRight,
	"LT":        ebiten.StandardGamepadButtonFrontBottomLeft,
	"RT":        ebiten.StandardGamepadButtonFrontBottomRight,
	"Back":      ebiten.StandardGamepadButtonCenterLeft,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
}

// InputSystem polls ebiten once per frame and fills the GUI input state.
type InputSystem struct {
	State *input.State

	keys     [input.KeyCount][]ebiten.Key
	buttons  [input.KeyCount][]ebiten.StandardGamepadButton
	gamepads []ebiten.GamepadID
}

func NewInputSystem(state *input.State, bindings config.Bindings) (*InputSystem, error) {
	s := &InputSystem{State: state}
	for action, b := range bindings {
		k := input.KeyByName(action)
		if k == input.KeyNone {
			return nil, fmt.Errorf("binding for unknown action %q", action)
		}
		for _, name := range b.Keyboard {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("action %s: %w", action, err)
			}
			s.keys[k] = append(s.keys[k], key)
		}
		for _, name := range b.Gamepad {
			button, ok := gamepadButtons[name]
			if !ok {
				return nil, fmt.Errorf("action %s: unknown gamepad button %q", action, name)
			}
			s.buttons[k] = append(s.buttons[k], button)
		}
		if len(b.Gamepad) > 0 {
			state.SetGamepadButtonName(k, b.Gamepad[0])
		}
	}
	return s, nil
}

func (s *InputSystem) Update() {
	st := s.State
	st.BeginFrame()

	mx, my := ebiten.CursorPosition()
	st.SetMousePos(float64(mx), float64(my))
	st.SetMouseLeft(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		st.PressMouseRight()
	}
	_, wheelY := ebiten.Wheel()
	st.SetWheelY(wheelY)

	pad, connected := s.gamepad()
	st.SetGamepadConnected(connected)

	for k := input.KeyNone + 1; k < input.KeyCount; k++ {
		down := false
		for _, key := range s.keys[k] {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		if connected && !down {
			for _, b := range s.buttons[k] {
				if ebiten.IsStandardGamepadButtonPressed(pad, b) {
					down = true
					break
				}
			}
		}
		st.SetKey(k, down)
	}
}

// gamepad returns the first connected gamepad with a standard layout.
func (s *InputSystem) gamepad() (ebiten.GamepadID, bool) {
	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}
