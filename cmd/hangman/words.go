package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

func newWordsCmd(opts *options) *cobra.Command {
	var sample int

	cmd := &cobra.Command{
		Use:   "words <max-word-length>",
		Short: "Show which dictionary is used and how many words qualify",
		Long: `Loads the dictionary the game would use and reports the number of
words between 5 and max-word-length characters.

Examples:
  hangman words 6
  hangman words 10 --sample 5 --seed 42`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return config.UsageError()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(opts)
			if err != nil {
				return err
			}
			bounds, err := config.ParseBounds(args, settings.Bounds())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
			if err != nil {
				return err
			}

			pool, src, err := loadPool(logger, settings.Dictionary, bounds.MaxWordLength)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dictionary: %s\n", src)
			fmt.Fprintf(out, "Words between %d and %d characters: %d\n",
				words.MinWordLength, bounds.MaxWordLength, len(pool))

			if sample > 0 {
				picker := words.NewPicker(words.NewSeededSource(opts.seed))
				fmt.Fprintln(out)
				for i := 0; i < sample; i++ {
					w, err := picker.Pick(pool)
					if err != nil {
						return &config.ExitError{Code: config.ExitResource, Err: err}
					}
					fmt.Fprintf(out, "  %s\n", w)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sample, "sample", 0, "Print this many randomly picked words")
	return cmd
}
