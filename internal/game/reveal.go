// Package game implements the hangman state machine: the masked reveal
// buffer, a single round with its attempt budget, and the session loop
// that repeats rounds while the player wants to continue.
package game

import "strings"

// Placeholder masks an unrevealed position.
const Placeholder = '_'

// Reveal is the masked working copy of a secret word.
// Each cell is either Placeholder or the secret's character at that position.
type Reveal struct {
	cells []rune
}

// NewReveal creates a buffer of n placeholders.
func NewReveal(n int) *Reveal {
	cells := make([]rune, n)
	for i := range cells {
		cells[i] = Placeholder
	}
	return &Reveal{cells: cells}
}

// Apply reveals every position where secret matches guess and returns
// the number of matching positions. Comparison is case-sensitive.
func (r *Reveal) Apply(secret string, guess rune) int {
	hits := 0
	i := 0
	for _, c := range secret {
		if i >= len(r.cells) {
			break
		}
		if c == guess {
			r.cells[i] = guess
			hits++
		}
		i++
	}
	return hits
}

// Solved reports whether the buffer equals secret.
func (r *Reveal) Solved(secret string) bool {
	return string(r.cells) == secret
}

// Len returns the number of positions.
func (r *Reveal) Len() int {
	return len(r.cells)
}

// Hidden returns how many positions are still masked.
func (r *Reveal) Hidden() int {
	n := 0
	for _, c := range r.cells {
		if c == Placeholder {
			n++
		}
	}
	return n
}

// String returns the raw buffer, e.g. "a__le".
func (r *Reveal) String() string {
	return string(r.cells)
}

// Render joins the cells with sep, e.g. "a _ _ l e".
func (r *Reveal) Render(sep string) string {
	var sb strings.Builder
	for i, c := range r.cells {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
