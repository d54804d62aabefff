package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the key bindings of the hangman view.
// Guessing accepts any single printable character; its binding is only
// used for the help line.
type KeyMap struct {
	Guess key.Binding
	Again key.Binding
	Stop  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "guess"),
		),
		Again: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "play again"),
		),
		Stop: key.NewBinding(
			key.WithKeys("n", "N", "q"),
			key.WithHelp("n/q", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// playingHelp lists bindings while a round is in progress.
type playingHelp struct{ k KeyMap }

func (h playingHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Guess, h.k.Quit}
}

func (h playingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// finishedHelp lists bindings once a round is over.
type finishedHelp struct{ k KeyMap }

func (h finishedHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Again, h.k.Stop}
}

func (h finishedHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

var (
	_ help.KeyMap = playingHelp{}
	_ help.KeyMap = finishedHelp{}
)
