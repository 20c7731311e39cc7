package config

const (
	// Screen Dimensions
	ScreenWidth  = 1000
	ScreenHeight = 640

	// Panel Layout
	GUILeft         = 20.0
	GUITop          = 50.0
	GUIWindowHeight = 480.0
	GUIMargin       = 8.0
	GUITextOffset   = 18.0
	GUITabsTop      = 26.0

	// Slots
	SpellSlotSize    = 54.0
	ModifierSlotSize = 34.0
	ItemSlotSize     = 50.0

	// Interaction
	DragDistance    = 10.0 // pixels the pointer travels while pressed before a clone spawns
	DoubleClickTime = 0.3  // seconds
	ScrollStep      = 18.0

	// Keybindings
	ActionEscape    = "Escape"
	ActionInteract  = "Interact"
	ActionUp        = "Up"
	ActionDown      = "Down"
	ActionLeft      = "Left"
	ActionRight     = "Right"
	ActionPrevious  = "PreviousSpell"
	ActionNext      = "NextSpell"
	ActionDrop      = "Drop"
	ActionInventory = "Inventory"
	ActionSpellbook = "Spellbook"

	// Script Console
	ScriptConsoleURL = "ws://127.0.0.1:8081/script"

	// Profiles
	DefaultProfile = "hero"
)
