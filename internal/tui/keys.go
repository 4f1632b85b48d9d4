package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pbruna/todotui/internal/config"
)

// keyMap holds the resolved key bindings, built from the configurable
// mappings so the help footer always matches the config.
type keyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	View   key.Binding
	Reload key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys(km.AddTodo), key.WithHelp(km.AddTodo, "add")),
		Edit:   key.NewBinding(key.WithKeys(km.EditTodo), key.WithHelp(km.EditTodo, "edit")),
		Delete: key.NewBinding(key.WithKeys(km.DeleteTodo), key.WithHelp(km.DeleteTodo, "delete")),
		View:   key.NewBinding(key.WithKeys(km.ViewTodo), key.WithHelp(helpLabel(km.ViewTodo), "view")),
		Reload: key.NewBinding(key.WithKeys(km.Reload), key.WithHelp(km.Reload, "reload")),
		Up:     key.NewBinding(key.WithKeys(km.PrevTodo, "up"), key.WithHelp(km.PrevTodo+"/↑", "up")),
		Down:   key.NewBinding(key.WithKeys(km.NextTodo, "down"), key.WithHelp(km.NextTodo+"/↓", "down")),
		Help:   key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:   key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

func helpLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.View, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Edit, k.Delete, k.View},
		{k.Reload, k.Up, k.Down},
		{k.Help, k.Quit},
	}
}
