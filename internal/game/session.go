package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// GuessSource supplies one guessed character per call. It blocks until the
// player answers; an error means no valid character is available.
type GuessSource interface {
	NextGuess() (rune, error)
}

// ContinuePrompt asks whether another round should be played.
type ContinuePrompt interface {
	Continue() (bool, error)
}

// Reporter presents round progress to the player.
type Reporter interface {
	RoundStarted(maxAttempts int)
	Board(reveal *Reveal)
	Finished(res Result)
	Farewell()
}

// SecretPicker chooses the next secret word from the pool.
type SecretPicker interface {
	Pick(pool []string) (string, error)
}

// SessionConfig wires a session to its collaborators.
type SessionConfig struct {
	Pool        []string
	Picker      SecretPicker
	MaxAttempts int
	Guesses     GuessSource
	Prompt      ContinuePrompt
	Reporter    Reporter
	Logger      *log.Logger
}

// Session repeats rounds over a fixed pool and attempt budget.
type Session struct {
	cfg    SessionConfig
	logger *log.Logger
	played int
}

// NewSession creates a session. A nil logger discards output.
func NewSession(cfg SessionConfig) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{cfg: cfg, logger: logger}
}

// Run plays rounds until the continue prompt declines, then says goodbye.
// Errors from picking, guessing or prompting abort the session.
func (s *Session) Run() error {
	if s.cfg.Picker == nil || s.cfg.Guesses == nil || s.cfg.Prompt == nil || s.cfg.Reporter == nil {
		return errors.New("game: session is missing a collaborator")
	}

	for {
		secret, err := s.cfg.Picker.Pick(s.cfg.Pool)
		if err != nil {
			return fmt.Errorf("game: cannot pick secret: %w", err)
		}

		s.cfg.Reporter.RoundStarted(s.cfg.MaxAttempts)

		round := NewRound(secret, s.cfg.MaxAttempts)
		res, err := round.Play(s.cfg.Guesses, s.cfg.Reporter)
		if err != nil {
			return fmt.Errorf("game: round %d: %w", s.played+1, err)
		}
		s.played++

		s.logger.Debug("round finished",
			"round", s.played,
			"status", res.Status,
			"attempts", res.Attempts,
			"length", round.Reveal().Len(),
		)

		again, err := s.cfg.Prompt.Continue()
		if err != nil {
			return fmt.Errorf("game: continue prompt: %w", err)
		}
		if !again {
			break
		}
	}

	s.cfg.Reporter.Farewell()
	return nil
}

// Played returns the number of completed rounds.
func (s *Session) Played() int {
	return s.played
}
