package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

type serveOptions struct {
	addr        string
	hostKey     string
	idleTimeout time.Duration
}

func newServeCmd(opts *options) *cobra.Command {
	sopts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve [max-word-length] [number-of-attempts]",
		Short: "Start the hangman SSH server",
		Long: `Start an SSH server that lets users connect and play hangman.

Each SSH connection gets its own independent game. Without arguments the
bounds come from the settings file (max_word_length, attempts).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hangman/host_key

Examples:
  hangman serve                        # Listen on :23235 with auto-generated key
  hangman serve 8 20 --ssh :2222       # Words up to 8 letters, 20 attempts
  hangman serve --host-key ./host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 2 {
				return config.UsageError()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts, sopts, args)
		},
	}

	cmd.Flags().StringVar(&sopts.addr, "ssh", "", "SSH server address (host:port)")
	cmd.Flags().StringVar(&sopts.hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().DurationVar(&sopts.idleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (e.g. 30m)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *options, sopts *serveOptions, args []string) error {
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}

	var bounds config.Bounds
	if len(args) == 0 {
		if err := settings.Validate(); err != nil {
			return err
		}
		bounds = settings.Bounds()
	} else if bounds, err = settings.ResolveBounds(args); err != nil {
		return err
	}

	if cmd.Flags().Changed("ssh") {
		settings.SSH.Address = sopts.addr
	}
	if cmd.Flags().Changed("host-key") {
		settings.SSH.HostKey = sopts.hostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		settings.SSH.IdleTimeout = sopts.idleTimeout
	}

	// Server logs default to info so session events are visible.
	level := settings.LogLevel
	if opts.logLevel == "" && level == "warn" {
		level = "info"
	}
	logger, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	logger.SetReportTimestamp(true)

	pool, _, err := loadPool(logger, settings.Dictionary, bounds.MaxWordLength)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     settings.SSH.Address,
		HostKeyPath: settings.SSH.HostKey,
		IdleTimeout: settings.SSH.IdleTimeout,
		Pool:        pool,
		MaxAttempts: bounds.Attempts,
	}, logger.WithPrefix("hangman-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting hangman SSH server on %s\n", server.Addr())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
