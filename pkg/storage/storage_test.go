package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimoire/pkg/character"
	"grimoire/pkg/shared/components"
)

func TestMissingProfileIsStarter(t *testing.T) {
	store := NewStore(t.TempDir())
	data, found, err := store.LoadProfile("hero")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, character.StarterData(), data)
}

func TestSaveLoadProfile(t *testing.T) {
	store := NewStore(t.TempDir())
	core := character.NewCore(character.StarterData())
	require.NoError(t, core.AddSpell("fireball", 0))
	require.NoError(t, core.AddModifier(components.Modifier{Type: components.ModifierDamage, Level: 2}, 0, 0))
	require.NoError(t, core.EquipItem("eq_wizardhat", components.SlotHead))

	require.NoError(t, store.SaveProfile("hero", core.Snapshot()))

	data, found, err := store.LoadProfile("hero")
	require.NoError(t, err)
	require.True(t, found)

	loaded := character.NewCore(data)
	assert.Equal(t, core.Snapshot(), loaded.Snapshot())
	assert.Equal(t, "eq_wizardhat", loaded.Equipped(components.SlotHead))
	assert.Equal(t, components.SpellID("fireball"), loaded.Weapon().Slots[0].Spell)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestInvalidNames(t *testing.T) {
	store := NewStore(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b", "with space"} {
		_, _, err := store.LoadProfile(name)
		assert.ErrorIs(t, err, ErrInvalidName, name)
		assert.ErrorIs(t, store.SaveProfile(name, character.Data{}), ErrInvalidName, name)
	}
}

func TestCorruptProfile(t *testing.T) {
	store := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir, "hero.json"), []byte("{"), 0644))
	_, _, err := store.LoadProfile("hero")
	assert.ErrorContains(t, err, "decode profile hero")
}
