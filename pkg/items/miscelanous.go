package items

func init() {
	// Documents, quest items, keys, etc.
	Register(ItemDefinition{
		ID:          "do_letter",
		Name:        "Sealed Letter",
		Type:        ItemTypeDocument,
		Description: "A letter addressed to the mayor.",
		Pages: []string{
			"To the mayor of the village.",
			"The bridge to the north has collapsed. Send help before the first frost.",
		},
	})
	Register(ItemDefinition{
		ID:          "sp_fireball",
		Name:        "Scroll of Fire",
		Type:        ItemTypeSpellscroll,
		Description: "Reading it teaches Fireball.",
		Pages:       []string{"Words of flame are written here."},
		Spell:       "fireball",
	})
	Register(ItemDefinition{
		ID:          "qe_feather",
		Name:        "Raven Feather",
		Type:        ItemTypeQuest,
		Description: "The old woman asked for this.",
	})
	Register(ItemDefinition{
		ID:          "ke_cellar",
		Name:        "Cellar Key",
		Type:        ItemTypeKey,
		Description: "Opens the tavern cellar.",
	})
	Register(ItemDefinition{
		ID:          "mi_bone",
		Name:        "Bone",
		Type:        ItemTypeMisc,
		Description: "Probably not human.",
		Value:       1,
	})
	Register(ItemDefinition{
		ID:          "gold",
		Name:        "Gold Coin",
		Type:        ItemTypeGold,
		Description: "Standard currency.",
	})
}
