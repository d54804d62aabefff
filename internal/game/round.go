package game

import (
	"errors"
	"unicode/utf8"
)

// ErrRoundOver is returned when guessing on a finished round.
var ErrRoundOver = errors.New("game: round is over")

// Status is the state of a round.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Outcome describes the effect of a single guess.
type Outcome struct {
	Guess    rune
	Hits     int // positions matching the guess, 0 on a miss
	Attempts int
	Status   Status
}

// Result is the terminal summary of a round.
type Result struct {
	Status   Status
	Attempts int
	Secret   string
}

// Round is one play-through of a secret word.
type Round struct {
	secret      string
	reveal      *Reveal
	attempts    int
	maxAttempts int
	status      Status
	guessed     []rune
}

// NewRound starts a round for an already lower-cased secret.
func NewRound(secret string, maxAttempts int) *Round {
	return &Round{
		secret:      secret,
		reveal:      NewReveal(utf8.RuneCountInString(secret)),
		maxAttempts: maxAttempts,
		status:      StatusInProgress,
	}
}

// Guess applies one guessed character and advances the state machine.
// Every guess costs one attempt, hit or miss. The win check runs before the
// budget check, so solving on the attempt that exceeds the budget still wins.
func (r *Round) Guess(c rune) (Outcome, error) {
	if r.status != StatusInProgress {
		return Outcome{Guess: c, Attempts: r.attempts, Status: r.status}, ErrRoundOver
	}

	hits := r.reveal.Apply(r.secret, c)
	r.attempts++
	r.remember(c)

	switch {
	case r.reveal.Solved(r.secret):
		r.status = StatusWon
	case r.attempts > r.maxAttempts:
		r.status = StatusLost
	}

	return Outcome{Guess: c, Hits: hits, Attempts: r.attempts, Status: r.status}, nil
}

func (r *Round) remember(c rune) {
	for _, g := range r.guessed {
		if g == c {
			return
		}
	}
	r.guessed = append(r.guessed, c)
}

// Play drives the guess loop until the round ends. The board is reported
// before every guess. Errors from the guess source end the round early.
func (r *Round) Play(src GuessSource, rep Reporter) (Result, error) {
	for r.status == StatusInProgress {
		rep.Board(r.reveal)

		c, err := src.NextGuess()
		if err != nil {
			return r.Result(), err
		}
		if _, err := r.Guess(c); err != nil {
			return r.Result(), err
		}
	}

	res := r.Result()
	rep.Finished(res)
	return res, nil
}

// Result returns the current summary. The secret is always included;
// callers decide whether to disclose it.
func (r *Round) Result() Result {
	return Result{Status: r.status, Attempts: r.attempts, Secret: r.secret}
}

// Status returns the round state.
func (r *Round) Status() Status { return r.status }

// Attempts returns the number of guesses made so far.
func (r *Round) Attempts() int { return r.attempts }

// MaxAttempts returns the attempt budget.
func (r *Round) MaxAttempts() int { return r.maxAttempts }

// Reveal returns the masked buffer.
func (r *Round) Reveal() *Reveal { return r.reveal }

// Guessed returns distinct guessed characters in the order first tried.
func (r *Round) Guessed() []rune {
	out := make([]rune, len(r.guessed))
	copy(out, r.guessed)
	return out
}

// Over reports whether the round reached a terminal state.
func (r *Round) Over() bool { return r.status != StatusInProgress }
