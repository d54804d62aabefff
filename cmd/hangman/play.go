package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/console"
	"github.com/vovakirdan/tui-hangman/internal/game"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

func runPlay(cmd *cobra.Command, opts *options, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	bounds, err := settings.ResolveBounds(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), settings.LogLevel)
	if err != nil {
		return err
	}

	pool, _, err := loadPool(logger, settings.Dictionary, bounds.MaxWordLength)
	if err != nil {
		return err
	}

	picker := words.NewPicker(words.NewSeededSource(opts.seed))

	if opts.tui {
		in, ok := cmd.InOrStdin().(*os.File)
		if !ok || !term.IsTerminal(int(in.Fd())) {
			return &config.ExitError{Code: config.ExitUsage, Msg: "--tui needs an interactive terminal"}
		}
		return tui.Run(tui.ModelConfig{
			Pool:        pool,
			Picker:      picker,
			MaxAttempts: bounds.Attempts,
			Logger:      logger,
		})
	}

	c := console.New(cmd.InOrStdin(), cmd.OutOrStdout())
	session := game.NewSession(game.SessionConfig{
		Pool:        pool,
		Picker:      picker,
		MaxAttempts: bounds.Attempts,
		Guesses:     c,
		Prompt:      c,
		Reporter:    c,
		Logger:      logger,
	})

	if err := session.Run(); err != nil {
		code := config.ExitInput
		if errors.Is(err, words.ErrEmptyPool) {
			code = config.ExitResource
		}
		return &config.ExitError{Code: code, Err: err}
	}

	logger.Info("session finished", "rounds", session.Played())
	return nil
}
