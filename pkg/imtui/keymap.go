package imtui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap lists the bindings the toolkit and its widgets react to.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Home  key.Binding
	End   key.Binding
	Enter key.Binding
	Next  key.Binding
	Prev  key.Binding
	Blur  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		Down:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick")),
		Next:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab")),
		Blur:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Next, k.Blur, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Enter, k.Next, k.Prev, k.Blur, k.Quit},
	}
}

// reserved reports whether a key belongs to the toolkit rather than to text
// entry.
func (k KeyMap) reserved(msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Up, k.Down, k.Home, k.End, k.Enter, k.Next, k.Prev, k.Blur, k.Quit)
}
