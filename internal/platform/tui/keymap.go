package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong13/internal/core"
)

// KeyMap defines the key bindings for both players.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "right down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Translate converts a key message to a game key. Unbound keys map to
// NoKey; Ctrl+C counts as Esc so the game ends through the normal quit path.
func (k KeyMap) Translate(msg tea.KeyMsg) core.Key {
	switch {
	case key.Matches(msg, k.LeftUp), key.Matches(msg, k.LeftDown):
		if len(msg.Runes) == 1 {
			return core.RuneKey(msg.Runes[0])
		}
		return core.NoKey
	case key.Matches(msg, k.RightUp):
		return core.UpKey
	case key.Matches(msg, k.RightDown):
		return core.DownKey
	case key.Matches(msg, k.Quit):
		return core.EscapeKey
	}
	return core.NoKey
}
