package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Binding lists the physical inputs that trigger one logical action.
// Keyboard names follow ebiten key names ("ArrowUp", "Escape", "KeyE"...),
// gamepad names are standard layout buttons ("A", "B", "LB", "DpadUp"...).
type Binding struct {
	Keyboard []string `yaml:"keyboard,omitempty"`
	Gamepad  []string `yaml:"gamepad,omitempty"`
}

// Bindings maps action names (see the Action* constants) to their inputs.
type Bindings map[string]Binding

func DefaultBindings() Bindings {
	return Bindings{
		ActionEscape:    {Keyboard: []string{"Escape"}, Gamepad: []string{"B"}},
		ActionInteract:  {Keyboard: []string{"Enter"}, Gamepad: []string{"A"}},
		ActionUp:        {Keyboard: []string{"ArrowUp"}, Gamepad: []string{"DpadUp"}},
		ActionDown:      {Keyboard: []string{"ArrowDown"}, Gamepad: []string{"DpadDown"}},
		ActionLeft:      {Keyboard: []string{"ArrowLeft"}, Gamepad: []string{"DpadLeft"}},
		ActionRight:     {Keyboard: []string{"ArrowRight"}, Gamepad: []string{"DpadRight"}},
		ActionPrevious:  {Keyboard: []string{"Q"}, Gamepad: []string{"LB"}},
		ActionNext:      {Keyboard: []string{"E"}, Gamepad: []string{"RB"}},
		ActionDrop:      {Keyboard: []string{"Delete"}, Gamepad: []string{"Y"}},
		ActionInventory: {Keyboard: []string{"I"}, Gamepad: []string{"Back"}},
		ActionSpellbook: {Keyboard: []string{"M"}, Gamepad: []string{"Start"}},
	}
}

// LoadBindings reads a YAML binding file on top of the defaults.
// A missing file is not an error, the defaults are returned as-is.
func LoadBindings(path string) (Bindings, error) {
	bindings := DefaultBindings()
	if path == "" {
		return bindings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return bindings, nil
		}
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}

	var overrides Bindings
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse bindings %s: %w", path, err)
	}
	for action, b := range overrides {
		if _, ok := bindings[action]; !ok {
			return nil, fmt.Errorf("unknown action %q in %s", action, path)
		}
		bindings[action] = b
	}
	return bindings, nil
}

func SaveBindings(path string, bindings Bindings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(bindings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
