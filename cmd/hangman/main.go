// hangman is a terminal word-guessing game.
//
// Usage:
//
//	hangman <max-word-length> [number-of-attempts]   - Play in the terminal
//	hangman serve [max-word-length] [attempts]       - Serve the game over SSH
//	hangman words <max-word-length>                  - Show dictionary statistics
//
// max-word-length must be 5 to 24, number-of-attempts 10 to 100.
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible word selection
//	--dict <path>      - Use a specific dictionary file
//	--config <path>    - Use a specific settings file
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

// options holds the global flags.
type options struct {
	seed     int64
	dict     string
	config   string
	logLevel string
	tui      bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{}
	rootCmd := newRootCmd(opts, stdin, stdout, stderr)
	rootCmd.SetArgs(numericPositionals(rootCmd, args))

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *config.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(stderr, exitErr.Error())
		return exitErr.Code
	}

	// Flag parsing and other cobra errors.
	fmt.Fprintln(stderr, err)
	fmt.Fprintln(stderr, config.Usage)
	return config.ExitUsage
}

func newRootCmd(opts *options, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hangman <max-word-length> [number-of-attempts]",
		Short: "Hangman - guess the word one letter at a time",
		Long: `Hangman picks a random dictionary word between 5 and max-word-length
characters long. Guess one character per turn; every guess costs an attempt.
Reveal the whole word before the attempts run out.

Arguments:
  max-word-length      5 to 24
  number-of-attempts   10 to 100 (default 10)

Examples:
  hangman 8
  hangman 12 30
  hangman 6 --tui
  hangman serve 10 20 --ssh :2222`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 || len(args) > 2 {
				return config.UsageError()
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts, args)
		},
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&opts.dict, "dict", "", "Path to a dictionary file (one word per line)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&opts.tui, "tui", false, "Play in full-screen mode")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newWordsCmd(opts))

	return rootCmd
}

// numericPositionals moves the positional arguments behind a "--" terminator
// when one of them is a negative integer, so that "-5" reaches bounds
// validation instead of being parsed as a shorthand flag. A leading
// subcommand name and all flags keep their place in front.
func numericPositionals(root *cobra.Command, args []string) []string {
	var flags, positional []string
	negative := false

scan:
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			positional = append(positional, args[i+1:]...)
			break scan
		case isNegativeInt(a):
			positional = append(positional, a)
			negative = true
		case strings.HasPrefix(a, "-") && len(a) > 1:
			flags = append(flags, a)
			if !strings.Contains(a, "=") && flagTakesValue(root, a) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, a)
		}
	}

	if !negative {
		return args
	}

	out := make([]string, 0, len(args)+1)
	if len(positional) > 0 && isSubcommand(root, positional[0]) {
		out = append(out, positional[0])
		positional = positional[1:]
	}
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional...)
}

func isNegativeInt(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func isSubcommand(root *cobra.Command, name string) bool {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

// flagTakesValue reports whether arg names a known flag that consumes the
// next argument. Unknown flags are left for cobra to reject.
func flagTakesValue(root *cobra.Command, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	long := strings.HasPrefix(arg, "--")
	if !long && len(name) != 1 {
		return false
	}

	sets := []*pflag.FlagSet{root.PersistentFlags(), root.Flags()}
	for _, c := range root.Commands() {
		sets = append(sets, c.Flags())
	}
	for _, fs := range sets {
		f := fs.Lookup(name)
		if !long {
			f = fs.ShorthandLookup(name)
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

// loadSettings reads the settings file and applies global flag overrides.
func loadSettings(opts *options) (config.Settings, error) {
	settings, err := config.Load(opts.config)
	if err != nil {
		return settings, &config.ExitError{Code: config.ExitUsage, Err: err}
	}
	if opts.dict != "" {
		settings.Dictionary = opts.dict
	}
	if opts.logLevel != "" {
		settings.LogLevel = opts.logLevel
	}
	return settings, nil
}

// newLogger creates the structured logger used across the program.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "hangman",
	})

	if level == "" {
		level = "warn"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, &config.ExitError{
			Code: config.ExitUsage,
			Msg:  fmt.Sprintf("invalid log level %q", level),
			Err:  err,
		}
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// loadPool reads the dictionary and filters it to the length bounds.
// Any failure is a fatal resource error.
func loadPool(logger *log.Logger, path string, maxLen int) ([]string, words.Source, error) {
	loader := words.NewLoader(path)

	candidates, src, err := loader.Load()
	if err != nil {
		return nil, src, &config.ExitError{Code: config.ExitResource, Err: err}
	}

	pool, err := words.Pool(candidates, maxLen)
	if err != nil {
		return nil, src, &config.ExitError{Code: config.ExitResource, Err: err}
	}

	logger.Debug("dictionary loaded",
		"source", src,
		"candidates", len(candidates),
		"pool", len(pool),
		"max_length", maxLen,
	)
	return pool, src, nil
}
