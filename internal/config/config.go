// Package config provides bounds validation for the command line and
// YAML/env based settings loading for the hangman game.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/words"
)

// Bounds accepted on the command line. The shortest length is the
// dictionary filter's own lower bound.
const (
	MinWordLength = words.MinWordLength
	MaxWordLength = 24

	MinAttempts = 10
	MaxAttempts = 100
)

// Process exit codes, one per failure class.
const (
	ExitUsage      = 1
	ExitWordLength = 2
	ExitAttempts   = 3
	ExitResource   = 4
	ExitInput      = 5
)

// Usage is printed when the positional arguments cannot be understood.
const Usage = "Usage: hangman [max-word-length = 5 to 24] [number-of-attempts = 10 to 100]"

// ExitError is a fatal error carrying the process exit code.
type ExitError struct {
	Code int
	Msg  string
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// UsageError reports bad command line arity or a non-integer argument.
func UsageError() error {
	return &ExitError{Code: ExitUsage, Msg: Usage}
}

// ValidateWordLength checks n against [MinWordLength, MaxWordLength].
func ValidateWordLength(n int) error {
	if n < MinWordLength || n > MaxWordLength {
		return &ExitError{
			Code: ExitWordLength,
			Msg:  fmt.Sprintf("Word length must be between %d and %d (inclusive)", MinWordLength, MaxWordLength),
		}
	}
	return nil
}

// ValidateAttempts checks n against [MinAttempts, MaxAttempts].
func ValidateAttempts(n int) error {
	if n < MinAttempts || n > MaxAttempts {
		return &ExitError{
			Code: ExitAttempts,
			Msg:  fmt.Sprintf("Number of attempts must be between %d and %d (inclusive)", MinAttempts, MaxAttempts),
		}
	}
	return nil
}

// Bounds are the two validated numbers that shape a session.
type Bounds struct {
	MaxWordLength int
	Attempts      int
}

// ParseBounds reads [max_word_length] [number_of_attempts].
// Exactly one or two integer arguments are accepted; with one argument
// the attempts come from defaults and are not re-validated.
func ParseBounds(args []string, defaults Bounds) (Bounds, error) {
	if len(args) == 0 || len(args) > 2 {
		return Bounds{}, UsageError()
	}

	nums := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return Bounds{}, &ExitError{Code: ExitUsage, Msg: Usage, Err: err}
		}
		nums[i] = n
	}

	b := defaults
	if err := ValidateWordLength(nums[0]); err != nil {
		return Bounds{}, err
	}
	b.MaxWordLength = nums[0]

	if len(nums) == 2 {
		if err := ValidateAttempts(nums[1]); err != nil {
			return Bounds{}, err
		}
		b.Attempts = nums[1]
	}

	return b, nil
}

// Settings is the file and environment configuration.
type Settings struct {
	Attempts      int         `yaml:"attempts" env:"HANGMAN_ATTEMPTS"`
	MaxWordLength int         `yaml:"max_word_length" env:"HANGMAN_MAX_WORD_LENGTH"`
	Dictionary    string      `yaml:"dictionary" env:"HANGMAN_DICTIONARY"`
	LogLevel      string      `yaml:"log_level" env:"HANGMAN_LOG_LEVEL"`
	SSH           SSHSettings `yaml:"ssh"`
}

// SSHSettings configures `hangman serve`.
type SSHSettings struct {
	Address     string        `yaml:"address" env:"HANGMAN_SSH_ADDRESS"`
	HostKey     string        `yaml:"host_key" env:"HANGMAN_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HANGMAN_SSH_IDLE_TIMEOUT"`
}

// Bounds returns the defaults the command line falls back to.
func (s Settings) Bounds() Bounds {
	return Bounds{MaxWordLength: s.MaxWordLength, Attempts: s.Attempts}
}

// ResolveBounds parses the command line over the settings. Only values that
// end up in the result are validated, in argument order: the settings
// attempts are checked after the length, and only when no attempts argument
// overrides them.
func (s Settings) ResolveBounds(args []string) (Bounds, error) {
	b, err := ParseBounds(args, s.Bounds())
	if err != nil {
		return Bounds{}, err
	}
	if len(args) == 1 {
		if err := ValidateAttempts(b.Attempts); err != nil {
			return Bounds{}, err
		}
	}
	return b, nil
}

// Validate checks that file/env values respect the command line bounds.
func (s Settings) Validate() error {
	if err := ValidateWordLength(s.MaxWordLength); err != nil {
		return err
	}
	return ValidateAttempts(s.Attempts)
}
