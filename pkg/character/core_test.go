package character_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"grimoire/pkg/character"
	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
)

type recorder struct {
	changes []character.Change
}

func (r *recorder) NotifyChange(c character.Change) {
	r.changes = append(r.changes, c)
}

type CoreTestSuite struct {
	suite.Suite
	core     *character.Core
	observer *recorder
}

func (s *CoreTestSuite) SetupTest() {
	s.core = character.NewCore(character.Data{
		SpellsLearned: map[components.School][]components.SpellID{
			components.SchoolElemental: {"fireball", "icyambush"},
			components.SchoolDivine:    {"heal", "holyfire"},
		},
		ModifiersLearned: map[components.ModifierType]int{
			components.ModifierDamage: 2,
			components.ModifierSpeed:  1,
		},
		Items:    map[string]int{"fo_bread": 2, "eq_ring": 1, "we_oldstaff": 1},
		Equipped: map[components.EquipmentSlot]string{components.SlotWeapon: "we_ancientstaff"},
	})
	s.observer = &recorder{}
	s.core.Subscribe(s.observer)
}

func TestCoreTestSuite(t *testing.T) {
	suite.Run(t, new(CoreTestSuite))
}

func (s *CoreTestSuite) TestStartsWithEquippedWeaponLayout() {
	w := s.core.Weapon()
	s.Require().NotNil(w)
	s.Equal("we_ancientstaff", w.ItemID)
	s.Len(w.Slots, 4)
}

func (s *CoreTestSuite) TestWeaponIsACopy() {
	w := s.core.Weapon()
	w.Slots[0].Spell = "fireball"
	s.Equal(components.NoSpell, s.core.Weapon().Slots[0].Spell)
}

func (s *CoreTestSuite) TestAddSpell() {
	s.Run("equips into compatible slot", func() {
		s.Require().NoError(s.core.AddSpell("fireball", 0))
		s.Equal(components.SpellID("fireball"), s.core.Weapon().Slots[0].Spell)
	})

	s.Run("meta slot takes any school", func() {
		s.Require().NoError(s.core.AddSpell("heal", 3))
		s.Equal(components.SpellID("heal"), s.core.Weapon().Slots[3].Spell)
	})

	s.Run("rejects incompatible school", func() {
		s.ErrorIs(s.core.AddSpell("holyfire", 0), character.ErrIncompatible)
	})

	s.Run("rejects unlearned spell", func() {
		s.ErrorIs(s.core.AddSpell("raisethedead", 2), character.ErrNotLearned)
	})

	s.Run("rejects out of range slot", func() {
		s.ErrorIs(s.core.AddSpell("fireball", 9), character.ErrInvalidSlot)
		s.ErrorIs(s.core.AddSpell("fireball", -1), character.ErrInvalidSlot)
	})

	s.Run("moving an equipped spell clears its old slot", func() {
		s.Require().NoError(s.core.AddSpell("fireball", 3))
		w := s.core.Weapon()
		s.Equal(components.NoSpell, w.Slots[0].Spell)
		s.Equal(components.SpellID("fireball"), w.Slots[3].Spell)
	})
}

func (s *CoreTestSuite) TestAddSpellDropsDisallowedModifiers() {
	s.Require().NoError(s.core.AddSpell("fireball", 0))
	s.Require().NoError(s.core.AddModifier(components.Modifier{Type: components.ModifierSpeed, Level: 1}, 0, 0))
	s.Require().NoError(s.core.AddModifier(components.Modifier{Type: components.ModifierDamage, Level: 2}, 0, 1))

	// icyambush allows damage but not speed
	s.Require().NoError(s.core.AddSpell("icyambush", 0))
	mods := s.core.Weapon().Slots[0].Modifiers
	s.True(mods[0].IsEmpty())
	s.Equal(components.Modifier{Type: components.ModifierDamage, Level: 2}, mods[1])
}

func (s *CoreTestSuite) TestAddModifier() {
	s.Require().NoError(s.core.AddSpell("fireball", 0))
	damage := components.Modifier{Type: components.ModifierDamage, Level: 1}

	s.Run("requires a spell in the slot", func() {
		s.ErrorIs(s.core.AddModifier(damage, 1, 0), character.ErrIncompatible)
	})

	s.Run("rejects level above learned", func() {
		s.ErrorIs(s.core.AddModifier(components.Modifier{Type: components.ModifierDamage, Level: 3}, 0, 0), character.ErrNotLearned)
	})

	s.Run("rejects out of range index", func() {
		s.ErrorIs(s.core.AddModifier(damage, 0, 2), character.ErrInvalidSlot)
	})

	s.Run("same type replaces previous placement", func() {
		s.Require().NoError(s.core.AddModifier(damage, 0, 0))
		s.Require().NoError(s.core.AddModifier(components.Modifier{Type: components.ModifierDamage, Level: 2}, 0, 1))
		mods := s.core.Weapon().Slots[0].Modifiers
		s.True(mods[0].IsEmpty())
		s.Equal(2, mods[1].Level)
	})

	s.Run("remove clears the index", func() {
		s.Require().NoError(s.core.RemoveModifier(0, 1))
		s.True(s.core.Weapon().Slots[0].Modifiers[1].IsEmpty())
	})
}

func (s *CoreTestSuite) TestRemoveSpellClearsModifiers() {
	s.Require().NoError(s.core.AddSpell("fireball", 0))
	s.Require().NoError(s.core.AddModifier(components.Modifier{Type: components.ModifierDamage, Level: 1}, 0, 0))
	s.Require().NoError(s.core.RemoveSpell(0))

	slot := s.core.Weapon().Slots[0]
	s.Equal(components.NoSpell, slot.Spell)
	s.True(slot.Modifiers[0].IsEmpty())
}

func (s *CoreTestSuite) TestNoWeapon() {
	s.Require().NoError(s.core.UnequipItem(components.SlotWeapon))
	s.Nil(s.core.Weapon())
	s.ErrorIs(s.core.AddSpell("fireball", 0), character.ErrNoWeapon)
	s.ErrorIs(s.core.RemoveSpell(0), character.ErrNoWeapon)
	s.Equal(1, s.core.ItemCount("we_ancientstaff"))
}

func (s *CoreTestSuite) TestEquipItem() {
	s.Run("swaps previous occupant back into the bag", func() {
		s.Require().NoError(s.core.EquipItem("we_oldstaff", components.SlotWeapon))
		s.Equal("we_oldstaff", s.core.Equipped(components.SlotWeapon))
		s.Equal(0, s.core.ItemCount("we_oldstaff"))
		s.Equal(1, s.core.ItemCount("we_ancientstaff"))
		s.Len(s.core.Weapon().Slots, 2)
	})

	s.Run("rejects wrong slot", func() {
		s.ErrorIs(s.core.EquipItem("eq_ring", components.SlotHead), character.ErrNotEquippable)
	})

	s.Run("rejects items not in the bag", func() {
		s.ErrorIs(s.core.EquipItem("eq_robe", components.SlotBody), items.ErrNotEnough)
	})
}

func (s *CoreTestSuite) TestAddItemGoesToPurseForGold() {
	s.Require().NoError(s.core.AddItem("gold", 5))
	s.Equal(5, s.core.Gold())
	s.Equal(0, s.core.ItemCount("gold"))
}

func (s *CoreTestSuite) TestObserversSeeEveryMutation() {
	s.Require().NoError(s.core.AddSpell("fireball", 0))
	s.Require().NoError(s.core.RemoveItem("fo_bread", 1))
	s.Require().Error(s.core.RemoveItem("fo_bread", 5))

	s.Equal([]character.Change{
		{Kind: character.ChangeWeapon, ID: "fireball"},
		{Kind: character.ChangeItems, ID: "fo_bread"},
	}, s.observer.changes)
}

func (s *CoreTestSuite) TestLearn() {
	s.Require().NoError(s.core.LearnSpell("raisethedead"))
	s.Equal([]components.SpellID{"raisethedead"}, s.core.LearnedSpells(components.SchoolNecromancy))
	s.Require().NoError(s.core.LearnSpell("raisethedead"))
	s.Len(s.core.LearnedSpells(components.SchoolNecromancy), 1)

	s.Require().NoError(s.core.LearnModifier(components.ModifierSpeed, 3))
	s.Equal(3, s.core.LearnedModifiers()[components.ModifierSpeed])
	s.Require().NoError(s.core.LearnModifier(components.ModifierSpeed, 1))
	s.Equal(3, s.core.LearnedModifiers()[components.ModifierSpeed])
}

func (s *CoreTestSuite) TestSnapshotRoundTrip() {
	s.Require().NoError(s.core.AddSpell("fireball", 0))
	restored := character.NewCore(s.core.Snapshot())
	s.Equal(s.core.Weapon(), restored.Weapon())
	s.Equal(s.core.Items(), restored.Items())
	s.Equal(s.core.LearnedSpells(components.SchoolDivine), restored.LearnedSpells(components.SchoolDivine))
}
