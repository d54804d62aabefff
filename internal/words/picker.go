package words

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyPool is returned when no dictionary word satisfies the length bounds.
var ErrEmptyPool = errors.New("words: no words match the length bounds")

// IndexSource yields uniformly distributed indexes in [0, n).
// *rand.Rand satisfies it; tests supply fixed sequences.
type IndexSource interface {
	Intn(n int) int
}

// NewSeededSource returns a math/rand source. A zero seed means time based.
func NewSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Picker selects secret words from a filtered pool.
type Picker struct {
	src IndexSource
}

// NewPicker creates a picker drawing indexes from src.
func NewPicker(src IndexSource) *Picker {
	return &Picker{src: src}
}

// Pick returns a lower-cased word chosen uniformly from pool.
func (p *Picker) Pick(pool []string) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	return Normalize(pool[p.src.Intn(len(pool))]), nil
}
