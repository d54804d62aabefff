package tui

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// ModelConfig wires a Model to the session-wide pool and budget.
type ModelConfig struct {
	Pool        []string
	Picker      game.SecretPicker
	MaxAttempts int
	Renderer    *lipgloss.Renderer // nil means the default renderer
	Logger      *log.Logger
}

// Model is the Bubble Tea model for a hangman session: rounds repeat over
// the same pool and attempt budget until the player declines another.
type Model struct {
	pool        []string
	picker      game.SecretPicker
	maxAttempts int
	logger      *log.Logger

	round    *game.Round
	last     *game.Outcome
	rounds   int
	err      error
	keys     KeyMap
	help     help.Model
	bar      progress.Model
	styles   Styles
	width    int
	quitting bool
}

// NewModel creates a model and picks the first secret.
func NewModel(cfg ModelConfig) (Model, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		pool:        cfg.Pool,
		picker:      cfg.Picker,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bar:         progress.New(progress.WithSolidFill("208"), progress.WithoutPercentage(), progress.WithWidth(30)),
		styles:      NewStyles(cfg.Renderer),
	}

	if err := m.newRound(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newRound picks a fresh secret; pool and budget stay the same.
func (m *Model) newRound() error {
	secret, err := m.picker.Pick(m.pool)
	if err != nil {
		return fmt.Errorf("tui: cannot pick secret: %w", err)
	}
	m.round = game.NewRound(secret, m.maxAttempts)
	m.last = nil
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.round.Over() {
		switch {
		case key.Matches(msg, m.keys.Again):
			if err := m.newRound(); err != nil {
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Stop):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return m, nil
	}
	c := words.NormalizeGuess(msg.Runes[0])
	if !unicode.IsPrint(c) || unicode.IsSpace(c) {
		return m, nil
	}

	out, err := m.round.Guess(c)
	if err != nil {
		return m, nil
	}
	m.last = &out

	if m.round.Over() {
		m.rounds++
		res := m.round.Result()
		m.logger.Debug("round finished",
			"round", m.rounds,
			"status", res.Status,
			"attempts", res.Attempts,
		)
	}
	return m, nil
}

// View renders the current round.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("HANGMAN"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Board.Render(m.round.Reveal().Render(" ")))
	sb.WriteString("\n\n")

	attempts := m.round.Attempts()
	sb.WriteString(m.styles.Status.Render(fmt.Sprintf("Attempts: %d / %d", attempts, m.maxAttempts)))
	sb.WriteString("\n")
	sb.WriteString(m.bar.ViewAs(budgetUsed(attempts, m.maxAttempts)))
	sb.WriteString("\n\n")

	if guessed := m.round.Guessed(); len(guessed) > 0 {
		sb.WriteString(m.styles.Faint.Render("Guessed: " + joinRunes(guessed)))
		sb.WriteString("\n")
	}
	sb.WriteString(m.feedback())
	sb.WriteString("\n\n")

	if m.round.Over() {
		sb.WriteString(m.resultLine())
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Status.Render("Do you want to continue? [y/n]"))
		sb.WriteString("\n\n")
		sb.WriteString(m.help.View(finishedHelp{m.keys}))
	} else {
		sb.WriteString(m.help.View(playingHelp{m.keys}))
	}

	return m.styles.Frame.Render(sb.String())
}

// feedback describes the last guess.
func (m Model) feedback() string {
	if m.last == nil {
		return m.styles.Faint.Render(fmt.Sprintf("Welcome to hangman! You have %d attempts!", m.maxAttempts))
	}
	if m.last.Hits == 0 {
		return m.styles.Miss.Render(fmt.Sprintf("No %q in the word.", m.last.Guess))
	}
	return m.styles.Hit.Render(fmt.Sprintf("%q appears %d time(s).", m.last.Guess, m.last.Hits))
}

// resultLine renders the win or loss message.
func (m Model) resultLine() string {
	res := m.round.Result()
	if res.Status == game.StatusWon {
		return m.styles.Win.Render(fmt.Sprintf("You win! You took %d attempts to crack the word %q!", res.Attempts, res.Secret))
	}
	return m.styles.Lose.Render(fmt.Sprintf("Sorry, you ran out of attempts. The word was %q.", res.Secret))
}

// budgetUsed returns the used share of the attempt budget in [0, 1].
func budgetUsed(attempts, maxAttempts int) float64 {
	if maxAttempts <= 0 {
		return 1
	}
	used := float64(attempts) / float64(maxAttempts)
	if used > 1 {
		used = 1
	}
	return used
}

func joinRunes(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Round returns the current round.
func (m Model) Round() *game.Round {
	return m.round
}

// Rounds returns the number of finished rounds.
func (m Model) Rounds() int {
	return m.rounds
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true once the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program for the given configuration.
func Run(cfg ModelConfig) error {
	model, err := NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
