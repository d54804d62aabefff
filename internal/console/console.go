// Package console implements the line-oriented terminal frontend: it reads
// guesses and the continue decision from an input stream and reports round
// progress to an output stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	// ErrNoGuess is returned when a guess line holds no character.
	ErrNoGuess = errors.New("console: no character entered")
	// ErrNoInput is returned when input ends while a guess is expected.
	ErrNoInput = errors.New("console: input closed")
)

const (
	guessPrompt    = "Enter your guess: "
	continuePrompt = "Do you want to continue? [y/n]: "
)

// affirmative lists the answers that start another round.
var affirmative = map[string]bool{
	"y":    true,
	"Y":    true,
	"yes":  true,
	"Yes":  true,
	"yeah": true,
	"Yeah": true,
}

// IsAffirmative reports whether answer asks for another round.
func IsAffirmative(answer string) bool {
	return affirmative[strings.TrimSpace(answer)]
}

// Console is the game's guess source, continue prompt and reporter.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

type styles struct {
	banner lipgloss.Style
	board  lipgloss.Style
	win    lipgloss.Style
	lose   lipgloss.Style
	prompt lipgloss.Style
}

// New creates a console reading from in and writing to out.
// Colors are only emitted when out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		styles: styles{
			banner: r.NewStyle().Bold(true),
			board:  r.NewStyle().Foreground(lipgloss.Color("14")),
			win:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			lose:   r.NewStyle().Foreground(lipgloss.Color("9")),
			prompt: r.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

var (
	_ game.GuessSource    = (*Console)(nil)
	_ game.ContinuePrompt = (*Console)(nil)
	_ game.Reporter       = (*Console)(nil)
)

// readLine returns the next line without its terminator.
// io.EOF is returned only when nothing was read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// NextGuess prompts for a guess and returns its first character, lower-cased.
func (c *Console) NextGuess() (rune, error) {
	fmt.Fprint(c.out, "\n"+c.styles.prompt.Render(guessPrompt))

	line, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrNoInput
		}
		return 0, fmt.Errorf("console: cannot read guess: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return 0, ErrNoGuess
	}

	r, _ := utf8.DecodeRuneInString(line)
	return words.NormalizeGuess(r), nil
}

// Continue asks whether to play again. End of input means no.
func (c *Console) Continue() (bool, error) {
	fmt.Fprint(c.out, "\n"+c.styles.prompt.Render(continuePrompt))

	line, err := c.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("console: cannot read answer: %w", err)
	}
	return IsAffirmative(line), nil
}

// RoundStarted prints the round banner.
func (c *Console) RoundStarted(maxAttempts int) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.banner.Render(
		fmt.Sprintf("Welcome to hangman! You have %d attempts!", maxAttempts)))
}

// Board prints the masked word with spaces between characters.
func (c *Console) Board(reveal *game.Reveal) {
	fmt.Fprintln(c.out, c.styles.board.Render(reveal.Render(" ")))
}

// Finished prints the win or loss message.
func (c *Console) Finished(res game.Result) {
	switch res.Status {
	case game.StatusWon:
		fmt.Fprintf(c.out, "\n%s\n", c.styles.win.Render(
			fmt.Sprintf("You win! You took %d attempts to crack the word %q!", res.Attempts, res.Secret)))
	case game.StatusLost:
		fmt.Fprintf(c.out, "\n%s\n", c.styles.lose.Render(
			fmt.Sprintf("Sorry, but you exceeded the maximum number of attempts to guess %q. Better luck next time!", res.Secret)))
	}
}

// Farewell prints the goodbye message.
func (c *Console) Farewell() {
	fmt.Fprintf(c.out, "\n%s\n\n", c.styles.banner.Render("Thank you for playing Hangman!"))
}
