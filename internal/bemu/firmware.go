// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu

import (
	"os"
	"path/filepath"
)

const (
	// FirmwareName is the firmware image file name searched for in the
	// firmware directories.
	FirmwareName = "bios.bin"

	// FirmwareDirEnv overrides the firmware search directory. It is
	// consulted after the bundled directory and before the conventional
	// system paths.
	FirmwareDirEnv = "SEABIOS_DIR"
)

// FindFirmware searches the known firmware directories for a SeaBIOS image
// and returns the path of the first existing one.
//
// Search order: the pc-bios directory bundled next to the own executable,
// the [FirmwareDirEnv] override directory, and finally the conventional
// system paths. An empty string is returned if no image is found. That is
// not fatal, the emulator then boots with its built-in firmware.
func FindFirmware() string {
	return findFirmware(firmwareDirs())
}

func findFirmware(dirs []string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}

		candidate := filepath.Join(dir, FirmwareName)

		stat, err := os.Stat(candidate)
		if err != nil || !stat.Mode().IsRegular() {
			continue
		}

		return candidate
	}

	return ""
}

func firmwareDirs() []string {
	dirs := make([]string, 0, 5)

	// The BEMU tools ship the firmware in a pc-bios directory alongside the
	// tool binaries.
	if self, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(self), "..", "pc-bios"))
	}

	dirs = append(dirs, os.Getenv(FirmwareDirEnv))

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "seabios"))
	}

	return append(dirs,
		"/usr/share/seabios",
		"/usr/local/share/seabios",
	)
}
