// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Validate checks the launch invariants of the config.
//
// It returns a [*ValidationError] for the first violation found: memory and
// vCPU count out of bounds, an emulator binary that cannot be resolved, or
// a referenced disk or firmware file that does not exist.
func (c *LaunchConfig) Validate() error {
	if c.MemoryMB < MemoryMin || c.MemoryMB > MemoryMax {
		return NewValidationError(
			fmt.Sprintf(
				"memory %d MB out of range [%d, %d]",
				c.MemoryMB, MemoryMin, MemoryMax,
			),
			nil,
		)
	}

	if c.VCPUs < VCPUMin || c.VCPUs > VCPUMax {
		return NewValidationError(
			fmt.Sprintf(
				"vcpu count %d out of range [%d, %d]",
				c.VCPUs, VCPUMin, VCPUMax,
			),
			nil,
		)
	}

	if err := validateExecutable(c.Executable); err != nil {
		return NewValidationError("emulator binary "+c.Executable, err)
	}

	if c.DiskPath != "" {
		if err := ValidateFilePath(c.DiskPath); err != nil {
			return NewValidationError("disk image "+c.DiskPath, err)
		}
	}

	if c.Firmware != "" {
		if err := ValidateFilePath(c.Firmware); err != nil {
			return NewValidationError("firmware image "+c.Firmware, err)
		}
	}

	return nil
}

// validateExecutable checks that the binary can be launched. Names
// containing a path separator must point to an existing executable file.
// Bare names must resolve via PATH.
func validateExecutable(binary string) error {
	if binary == "" {
		return ErrEmptyFilePath
	}

	if !strings.ContainsRune(binary, os.PathSeparator) {
		_, err := exec.LookPath(binary)
		return err //nolint:wrapcheck
	}

	stat, err := os.Stat(binary)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	if stat.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("%s: %w", binary, os.ErrPermission)
	}

	return nil
}

// ValidateFilePath checks that the path points to an existing regular file.
func ValidateFilePath(name string) error {
	stat, err := os.Stat(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !stat.Mode().IsRegular() {
		return ErrNotRegularFile
	}

	return nil
}
