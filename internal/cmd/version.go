// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// ErrReadBuildInfo is returned if the binary carries no build info.
var ErrReadBuildInfo = errors.New("build info not available")

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildInfo, ok := debug.ReadBuildInfo()
			if !ok {
				return ErrReadBuildInfo
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"Version: %s\n", buildInfo.Main.Version)

			return nil
		},
	}
}
