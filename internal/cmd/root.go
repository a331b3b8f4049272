// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

const defaultLogLevel = "info"

// exitError carries the exit code the whole program should terminate with,
// mirroring the emulator's own exit code.
type exitError struct {
	code int
}

// Error implements the [error] interface.
func (e *exitError) Error() string {
	return "exit code " + strconv.Itoa(e.code)
}

// Execute runs the CLI and returns the process exit code. The emulator's
// exit code is passed through when it fails on its own.
func Execute() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		unix.SIGTERM,
	)
	defer stop()

	root := newRootCommand()

	if err := root.ExecuteContext(ctx); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}

		slog.Error(err.Error())

		return 1
	}

	return 0
}

func newRootCommand() *cobra.Command {
	var levelVar slog.LevelVar

	setupLogging(os.Stderr, &levelVar)

	logLevel := defaultLogLevel

	root := &cobra.Command{
		Use:           "bemuctl",
		Short:         "Launch and supervise BEMU virtual machines",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		defaultLogLevel,
		"log verbosity (debug, info, warning, error)",
	)

	root.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		level, err := parseLogLevel(logLevel)
		if err != nil {
			return err
		}

		levelVar.Set(level)

		return nil
	}

	root.AddCommand(
		newRunCommand(),
		newInspectCommand(),
		newVersionCommand(),
	)

	return root
}
