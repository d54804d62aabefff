package game

import (
	"errors"
	"testing"
)

func guessAll(t *testing.T, r *Round, guesses string) Outcome {
	t.Helper()
	var out Outcome
	for _, c := range guesses {
		var err error
		out, err = r.Guess(c)
		if err != nil {
			t.Fatalf("Guess(%q) failed: %v", c, err)
		}
	}
	return out
}

func TestRoundInitialState(t *testing.T) {
	r := NewRound("apple", 10)
	if r.Status() != StatusInProgress {
		t.Errorf("status = %s, want in progress", r.Status())
	}
	if r.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0", r.Attempts())
	}
	if r.Reveal().String() != "_____" {
		t.Errorf("reveal = %q", r.Reveal().String())
	}
}

func TestRoundWinScenario(t *testing.T) {
	r := NewRound("apple", 10)
	out := guessAll(t, r, "aple")

	if out.Status != StatusWon {
		t.Fatalf("status = %s, want won", out.Status)
	}
	if r.Attempts() != 4 {
		t.Errorf("attempts = %d, want 4", r.Attempts())
	}
	if r.Reveal().String() != "apple" {
		t.Errorf("reveal = %q, want apple", r.Reveal().String())
	}
}

func TestRoundLoseScenario(t *testing.T) {
	r := NewRound("kiwi", 2)

	out := guessAll(t, r, "xz")
	if out.Status != StatusInProgress {
		t.Fatalf("after 2 misses status = %s, want in progress", out.Status)
	}
	if out.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", out.Attempts)
	}

	out = guessAll(t, r, "q")
	if out.Status != StatusLost {
		t.Fatalf("after 3 misses status = %s, want lost", out.Status)
	}
	if res := r.Result(); res.Secret != "kiwi" || res.Attempts != 3 {
		t.Errorf("result = %+v", res)
	}
}

func TestRoundAttemptsCountEveryGuess(t *testing.T) {
	r := NewRound("banana", 100)
	for i, c := range "bzbbxa" {
		out, err := r.Guess(c)
		if err != nil {
			t.Fatalf("Guess(%q) failed: %v", c, err)
		}
		if out.Attempts != i+1 {
			t.Errorf("guess %d: attempts = %d, want %d", i, out.Attempts, i+1)
		}
	}
}

func TestRoundWinOnBudgetOverflow(t *testing.T) {
	tests := []struct {
		name    string
		max     int
		guesses string
	}{
		{"last letter exceeds budget", 3, "aple"},
		{"after many misses", 10, "aplxxxxxxxe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRound("apple", tt.max)
			out := guessAll(t, r, tt.guesses)
			if out.Attempts <= tt.max {
				t.Fatalf("test setup: attempts %d does not exceed budget %d", out.Attempts, tt.max)
			}
			if out.Status != StatusWon {
				t.Errorf("status = %s, want won", out.Status)
			}
		})
	}
}

func TestRoundGuessAfterOver(t *testing.T) {
	r := NewRound("apple", 10)
	guessAll(t, r, "aple")

	out, err := r.Guess('x')
	if !errors.Is(err, ErrRoundOver) {
		t.Fatalf("Guess after win error = %v, want ErrRoundOver", err)
	}
	if out.Attempts != 4 || r.Attempts() != 4 {
		t.Errorf("attempts changed after round over: %d", r.Attempts())
	}
}

func TestRoundGuessedDistinct(t *testing.T) {
	r := NewRound("apple", 10)
	guessAll(t, r, "ppaz")
	if got := string(r.Guessed()); got != "paz" {
		t.Errorf("Guessed() = %q, want paz", got)
	}
}

func TestRoundPlay(t *testing.T) {
	src := &scriptedGuesses{guesses: []rune("aple")}
	rep := &recordingReporter{}

	res, err := NewRound("apple", 10).Play(src, rep)
	if err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if res.Status != StatusWon || res.Attempts != 4 {
		t.Errorf("result = %+v", res)
	}

	wantBoards := []string{"_____", "a____", "app__", "appl_"}
	if len(rep.boards) != len(wantBoards) {
		t.Fatalf("boards = %v, want %v", rep.boards, wantBoards)
	}
	for i, b := range wantBoards {
		if rep.boards[i] != b {
			t.Errorf("board %d = %q, want %q", i, rep.boards[i], b)
		}
	}
	if len(rep.results) != 1 || rep.results[0].Status != StatusWon {
		t.Errorf("finished results = %+v", rep.results)
	}
}

func TestRoundPlayPropagatesInputError(t *testing.T) {
	errNoInput := errors.New("no input")
	src := &scriptedGuesses{guesses: []rune("a"), err: errNoInput}
	rep := &recordingReporter{}

	res, err := NewRound("apple", 10).Play(src, rep)
	if !errors.Is(err, errNoInput) {
		t.Fatalf("Play() error = %v, want %v", err, errNoInput)
	}
	if res.Status != StatusInProgress || res.Attempts != 1 {
		t.Errorf("result = %+v", res)
	}
	if len(rep.results) != 0 {
		t.Error("Finished should not be reported on input error")
	}
}

func TestStatusString(t *testing.T) {
	if StatusWon.String() != "won" || StatusLost.String() != "lost" || StatusInProgress.String() != "in progress" {
		t.Error("unexpected status names")
	}
	if Status(42).String() != "unknown" {
		t.Error("unknown status should stringify as unknown")
	}
}
