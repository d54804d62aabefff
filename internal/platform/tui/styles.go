package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the hangman view.
type Styles struct {
	Title  lipgloss.Style
	Board  lipgloss.Style
	Status lipgloss.Style
	Hit    lipgloss.Style
	Miss   lipgloss.Style
	Win    lipgloss.Style
	Lose   lipgloss.Style
	Error  lipgloss.Style
	Frame  lipgloss.Style
	Faint  lipgloss.Style
}

// NewStyles builds styles for a renderer. SSH sessions pass a per-session
// renderer so colors match the remote terminal.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		Board:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Status: r.NewStyle().Foreground(lipgloss.Color("7")),
		Hit:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Miss:   r.NewStyle().Foreground(lipgloss.Color("208")),
		Win:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Lose:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Frame:  r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(1, 3),
		Faint:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
