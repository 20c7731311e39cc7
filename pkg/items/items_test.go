package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimoire/pkg/shared/components"
)

func TestBagAddRemove(t *testing.T) {
	bag := NewBag()
	require.NoError(t, bag.AddItem("fo_bread", 2))
	require.NoError(t, bag.AddItem("fo_bread", 1))
	assert.Equal(t, 3, bag.Count("fo_bread"))

	require.ErrorIs(t, bag.RemoveItem("fo_bread", 4), ErrNotEnough)
	require.NoError(t, bag.RemoveItem("fo_bread", 3))
	assert.Equal(t, 0, bag.Count("fo_bread"))
	assert.NotContains(t, bag.Snapshot(), "fo_bread")
}

func TestBagRejectsUnknownAndInvalid(t *testing.T) {
	bag := NewBag()
	assert.ErrorIs(t, bag.AddItem("nope", 1), ErrUnknownItem)
	assert.ErrorIs(t, bag.AddItem("fo_bread", 0), ErrInvalidAmount)
	assert.ErrorIs(t, bag.RemoveItem("fo_bread", -1), ErrInvalidAmount)
}

func TestBagByCategory(t *testing.T) {
	bag := NewBag()
	require.NoError(t, bag.AddItem("fo_healingpotion", 1))
	require.NoError(t, bag.AddItem("fo_bread", 1))
	require.NoError(t, bag.AddItem("eq_ring", 1))
	require.NoError(t, bag.AddItem("sp_fireball", 1))

	assert.Equal(t, []string{"fo_bread", "fo_healingpotion"}, bag.ByCategory(CategoryConsumable))
	assert.Equal(t, []string{"eq_ring"}, bag.ByCategory(CategoryEquipment))
	assert.Equal(t, []string{"sp_fireball"}, bag.ByCategory(CategoryDocument))
	assert.Empty(t, bag.ByCategory(CategoryKey))
}

func TestNewWeapon(t *testing.T) {
	w, ok := NewWeapon("we_ancientstaff")
	require.True(t, ok)
	require.Len(t, w.Slots, 4)
	assert.Equal(t, components.SchoolMeta, w.Slots[3].School)
	assert.Len(t, w.Slots[3].Modifiers, 3)
	assert.Equal(t, components.NoSpell, w.Slots[0].Spell)

	_, ok = NewWeapon("eq_ring")
	assert.False(t, ok)
}

func TestFitsSlot(t *testing.T) {
	assert.True(t, ItemTypeRing.FitsSlot(components.SlotRing2))
	assert.False(t, ItemTypeRing.FitsSlot(components.SlotHead))
	assert.False(t, ItemTypeConsumable.FitsSlot(components.SlotWeapon))
}
