// Package network defines the JSON messages of the script console.
package network

// CommandType names what a script command does.
type CommandType string

const (
	CommandLearnSpell    CommandType = "learn_spell"
	CommandLearnModifier CommandType = "learn_modifier"
	CommandAddItem       CommandType = "add_item"
	CommandRemoveItem    CommandType = "remove_item"
	CommandEquipSpell    CommandType = "equip_spell"
	CommandHeal          CommandType = "heal"
	CommandOpen          CommandType = "open"
	CommandHint          CommandType = "hint"
)

// Command is one message from the script endpoint (Server -> Client).
// Only the fields the type needs are set.
type Command struct {
	ID       int         `json:"id,omitempty"`
	Type     CommandType `json:"type"`
	Spell    string      `json:"spell,omitempty"`
	Modifier string      `json:"modifier,omitempty"`
	Level    int         `json:"level,omitempty"`
	Item     string      `json:"item,omitempty"`
	Quantity int         `json:"quantity,omitempty"`
	Amount   float64     `json:"amount,omitempty"`
	Window   string      `json:"window,omitempty"` // "inventory", "spellbook"
	Key      string      `json:"key,omitempty"`
}

// Reply acknowledges a command (Client -> Server).
type Reply struct {
	ID    int    `json:"id,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}
