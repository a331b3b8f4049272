// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bemu/bemuctl/internal/vmx"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect descriptor.vmx",
		Short: "Show what a descriptor would import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor := args[0]

			overrides, err := vmx.Import(descriptor)
			if err != nil {
				return fmt.Errorf("import descriptor: %w", err)
			}

			for _, fieldErr := range overrides.FieldErrors {
				slog.Warn("Ignoring descriptor field",
					slog.String("descriptor", descriptor),
					slog.Any("error", fieldErr))
			}

			out := cmd.OutOrStdout()

			if overrides.DiskPath != nil {
				fmt.Fprintf(out, "disk:   %s\n", *overrides.DiskPath)
			}

			if overrides.MemoryMB != nil {
				fmt.Fprintf(out, "memory: %d MB\n", *overrides.MemoryMB)
			}

			if overrides.VCPUs != nil {
				fmt.Fprintf(out, "vcpus:  %d\n", *overrides.VCPUs)
			}

			return nil
		},
	}
}
