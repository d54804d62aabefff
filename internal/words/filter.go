// Package words provides dictionary loading, length filtering and random
// secret selection for the hangman game.
package words

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinWordLength is the shortest word ever used as a secret.
const MinWordLength = 5

// Filter returns the candidates whose character length lies in [minLen, maxLen].
// Relative order is preserved and the input slice is not modified.
func Filter(candidates []string, minLen, maxLen int) []string {
	pool := make([]string, 0, len(candidates))
	for _, w := range candidates {
		n := utf8.RuneCountInString(w)
		if n >= minLen && n <= maxLen {
			pool = append(pool, w)
		}
	}
	return pool
}

// Normalize lower-cases a dictionary word for use as a secret.
// Final sigma is not special-cased: a secret must only hold runes that
// NormalizeGuess can produce from a single key press.
// A Caser is stateful, so each call builds its own.
func Normalize(w string) string {
	return cases.Lower(language.Und, cases.HandleFinalSigma(false)).String(w)
}

// NormalizeGuess lower-cases a guessed character with the same mapping as
// Normalize. When lower-casing expands the rune, its first rune is kept.
func NormalizeGuess(r rune) rune {
	lowered, _ := utf8.DecodeRuneInString(Normalize(string(r)))
	return lowered
}
