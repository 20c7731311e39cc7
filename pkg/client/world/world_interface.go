// Package world hosts the inventory and spellbook panels on top of a
// character and performs the item actions that reach outside the UI.
package world

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"grimoire/pkg/character"
	"grimoire/pkg/client/gui"
	"grimoire/pkg/input"
	"grimoire/pkg/items"
	"grimoire/pkg/shared/components"
	protocol "grimoire/pkg/shared/network"
	"grimoire/pkg/ui"
)

var ErrUnknownCommand = errors.New("unknown command")

// Console is the source of script commands, see network.Console.
type Console interface {
	Commands() <-chan protocol.Command
	Reply(r protocol.Reply)
}

// Interface owns the panels of one play session. Inventory and
// spellbook are exclusive, the book window is modal on top of them.
type Interface struct {
	env     gui.Env
	core    *character.Core
	context gui.Context
	console Console

	manager   *ui.Manager
	inventory *gui.Inventory
	spellbook *gui.Spellbook
	book      *gui.BookWindow
	hints     *gui.Hints

	dirty bool
}

func NewInterface(env gui.Env, core *character.Core, context gui.Context) *Interface {
	w := &Interface{
		env:     env,
		core:    core,
		context: context,
		manager: ui.NewManager(),
		book:    gui.NewBookWindow(env),
		hints:   gui.NewHints(env),
	}
	w.inventory = gui.NewInventory(env, core, w)
	w.spellbook = gui.NewSpellbook(env, core, context == gui.ContextLevel)
	w.manager.AddPanel(w.inventory)
	w.manager.AddPanel(w.spellbook)
	w.manager.AddPanel(w.book)
	w.manager.AddPanel(w.hints)
	core.Subscribe(w)
	return w
}

// SetConsole attaches a script command source. Nil detaches it.
func (w *Interface) SetConsole(c Console) { w.console = c }

func (w *Interface) Inventory() *gui.Inventory { return w.inventory }
func (w *Interface) Spellbook() *gui.Spellbook { return w.spellbook }
func (w *Interface) Book() *gui.BookWindow     { return w.book }
func (w *Interface) Hints() *gui.Hints         { return w.hints }

// TakeDirty reports whether the character changed since the last call.
func (w *Interface) TakeDirty() bool {
	d := w.dirty
	w.dirty = false
	return d
}

// NotifyChange routes model changes to the panels that show them.
func (w *Interface) NotifyChange(c character.Change) {
	w.dirty = true
	switch c.Kind {
	case character.ChangeSpells, character.ChangeModifiers:
		w.spellbook.NotifyChange()
	case character.ChangeWeapon:
		w.spellbook.NotifyChange()
		w.inventory.NotifyChange(c.ID)
	case character.ChangeItems, character.ChangeEquipment, character.ChangeGold:
		w.inventory.NotifyChange(c.ID)
	}
}

// ItemHost

func (w *Interface) Context() gui.Context { return w.context }

func (w *Interface) ConsumeItem(itemID string) error {
	def, ok := items.Get(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", items.ErrUnknownItem, itemID)
	}
	if err := w.core.RemoveItem(itemID, 1); err != nil {
		return err
	}
	if def.Heal > 0 {
		w.core.Heal(def.Heal)
	}
	return nil
}

func (w *Interface) DropItem(itemID string) error {
	if err := w.core.RemoveItem(itemID, 1); err != nil {
		return err
	}
	log.Printf("Dropped %s", itemID)
	return nil
}

func (w *Interface) ReadDocument(itemID string) {
	if !w.book.Open(itemID) {
		log.Printf("Document %s has no pages", itemID)
	}
}

// LearnSpellscroll teaches the scroll's spell and uses the scroll up.
// A spell already known leaves the scroll in the bag.
func (w *Interface) LearnSpellscroll(itemID string) error {
	def, ok := items.Get(itemID)
	if !ok || def.Spell == "" {
		return fmt.Errorf("%w: %s is not a spell scroll", items.ErrUnknownItem, itemID)
	}
	if slices.Contains(w.core.LearnedSpells(components.SchoolOf(def.Spell)), def.Spell) {
		w.ShowHint("AlreadyLearned")
		return nil
	}
	if err := w.core.LearnSpell(def.Spell); err != nil {
		return err
	}
	if err := w.core.RemoveItem(itemID, 1); err != nil {
		return err
	}
	w.ShowHint("SpellLearned")
	return nil
}

func (w *Interface) ShowHint(key string) { w.hints.Show(key) }

// Windows

func (w *Interface) OpenInventory() {
	w.spellbook.Hide()
	w.inventory.Show()
	w.inventory.SetWindowSelected(true)
}

func (w *Interface) OpenSpellbook() {
	w.inventory.Hide()
	w.spellbook.Show()
	w.spellbook.SetWindowSelected(true)
}

func (w *Interface) CloseAll() {
	w.book.Hide()
	w.inventory.Hide()
	w.spellbook.Hide()
}

func (w *Interface) AnyOpen() bool {
	return w.inventory.IsVisible() || w.spellbook.IsVisible() || w.book.IsVisible()
}

func (w *Interface) Update(dt float64) {
	w.drainConsole()

	in := w.env.Input
	if w.book.IsVisible() {
		w.book.Update(dt)
		w.hints.Update(dt)
		return
	}
	w.manager.Update(dt)

	if in.IsActionLocked() {
		return
	}
	switch {
	case in.IsKeyJustPressed(input.KeyInventory):
		in.LockAction()
		if w.inventory.IsVisible() {
			w.inventory.Hide()
		} else {
			w.OpenInventory()
		}
	case in.IsKeyJustPressed(input.KeySpellbook):
		in.LockAction()
		if w.spellbook.IsVisible() {
			w.spellbook.Hide()
		} else {
			w.OpenSpellbook()
		}
	case in.IsKeyJustPressed(input.KeyEscape) && w.AnyOpen():
		in.LockAction()
		w.CloseAll()
	}
}

func (w *Interface) Draw(c ui.Canvas) {
	w.manager.Draw(c)
}

func (w *Interface) drainConsole() {
	if w.console == nil {
		return
	}
	for {
		select {
		case cmd := <-w.console.Commands():
			reply := protocol.Reply{ID: cmd.ID, OK: true}
			if err := w.Apply(cmd); err != nil {
				log.Printf("Script command %s failed: %v", cmd.Type, err)
				reply = protocol.Reply{ID: cmd.ID, Error: err.Error()}
			}
			w.console.Reply(reply)
		default:
			return
		}
	}
}

// Apply runs one script command against the character and the panels.
func (w *Interface) Apply(cmd protocol.Command) error {
	switch cmd.Type {
	case protocol.CommandLearnSpell:
		return w.core.LearnSpell(components.SpellID(cmd.Spell))
	case protocol.CommandLearnModifier:
		t, ok := components.ParseModifierType(cmd.Modifier)
		if !ok {
			return fmt.Errorf("%w: modifier %q", ErrUnknownCommand, cmd.Modifier)
		}
		return w.core.LearnModifier(t, max(cmd.Level, 1))
	case protocol.CommandAddItem:
		return w.core.AddItem(cmd.Item, max(cmd.Quantity, 1))
	case protocol.CommandRemoveItem:
		return w.core.RemoveItem(cmd.Item, max(cmd.Quantity, 1))
	case protocol.CommandEquipSpell:
		if !w.spellbook.Weapon().EquipSpell(components.SpellID(cmd.Spell)) {
			return fmt.Errorf("no slot accepts %s", cmd.Spell)
		}
		return nil
	case protocol.CommandHeal:
		w.core.Heal(cmd.Amount)
		return nil
	case protocol.CommandOpen:
		switch cmd.Window {
		case "inventory":
			w.OpenInventory()
		case "spellbook":
			w.OpenSpellbook()
		case "":
			w.CloseAll()
		default:
			return fmt.Errorf("%w: window %q", ErrUnknownCommand, cmd.Window)
		}
		return nil
	case protocol.CommandHint:
		w.ShowHint(cmd.Key)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
}
