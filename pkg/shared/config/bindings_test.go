package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBindingsDefaults(t *testing.T) {
	b, err := LoadBindings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBindings(), b)

	b, err = LoadBindings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Escape"}, b[ActionEscape].Keyboard)
}

func TestLoadBindingsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Inventory:\n  keyboard: [Tab]\n  gamepad: [X]\n"), 0644))

	b, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, Binding{Keyboard: []string{"Tab"}, Gamepad: []string{"X"}}, b[ActionInventory])
	assert.Equal(t, DefaultBindings()[ActionSpellbook], b[ActionSpellbook])
}

func TestLoadBindingsErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("Jump:\n  keyboard: [Space]\n"), 0644))
	_, err := LoadBindings(unknown)
	assert.ErrorContains(t, err, `unknown action "Jump"`)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("Inventory: [\n"), 0644))
	_, err = LoadBindings(broken)
	assert.ErrorContains(t, err, "parse bindings")
}

func TestSaveBindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "keys.yaml")
	b := DefaultBindings()
	b[ActionDrop] = Binding{Keyboard: []string{"Backspace"}}
	require.NoError(t, SaveBindings(path, b))

	loaded, err := LoadBindings(path)
	require.NoError(t, err)
	assert.Equal(t, b, loaded)
}
