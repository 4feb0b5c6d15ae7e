package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/hito/internal/config"
)

// KeyMap holds the live board bindings
type KeyMap struct {
	PrevLane      key.Binding
	NextLane      key.Binding
	PrevItem      key.Binding
	NextItem      key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
	MoveBacklog   key.Binding
	ToggleBacklog key.Binding
	Refresh       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// NewKeyMap builds bindings from the configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevLane:      key.NewBinding(key.WithKeys(km.PrevLane, "left"), key.WithHelp(km.PrevLane, "previous lane")),
		NextLane:      key.NewBinding(key.WithKeys(km.NextLane, "right"), key.WithHelp(km.NextLane, "next lane")),
		PrevItem:      key.NewBinding(key.WithKeys(km.PrevItem, "up"), key.WithHelp(km.PrevItem, "previous item")),
		NextItem:      key.NewBinding(key.WithKeys(km.NextItem, "down"), key.WithHelp(km.NextItem, "next item")),
		MoveLeft:      key.NewBinding(key.WithKeys(km.MoveLeft), key.WithHelp(km.MoveLeft, "move item to previous lane")),
		MoveRight:     key.NewBinding(key.WithKeys(km.MoveRight), key.WithHelp(km.MoveRight, "move item to next lane")),
		MoveBacklog:   key.NewBinding(key.WithKeys(km.MoveBacklog), key.WithHelp(km.MoveBacklog, "move item to the backlog")),
		ToggleBacklog: key.NewBinding(key.WithKeys(km.ToggleBacklog), key.WithHelp(km.ToggleBacklog, "show or hide the backlog")),
		Refresh:       key.NewBinding(key.WithKeys(km.Refresh), key.WithHelp(km.Refresh, "reload the board")),
		Help:          key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:          key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// helpSections groups bindings for the help overlay
func (k KeyMap) helpSections() []helpSection {
	return []helpSection{
		{"NAVIGATION", []key.Binding{k.PrevLane, k.NextLane, k.PrevItem, k.NextItem}},
		{"ITEMS", []key.Binding{k.MoveLeft, k.MoveRight, k.MoveBacklog}},
		{"BOARD", []key.Binding{k.ToggleBacklog, k.Refresh, k.Help, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
