// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemu/bemuctl/internal/bemu"
)

func TestLaunchConfigArguments(t *testing.T) {
	base := func() bemu.LaunchConfig {
		return bemu.LaunchConfig{
			Executable: "bemu-system-x86_64",
			MemoryMB:   2048,
			VCPUs:      2,
			CPUModel:   "v4004",
			Machine:    "q35",
		}
	}

	tests := []struct {
		name     string
		config   func() bemu.LaunchConfig
		expected []string
	}{
		{
			name:   "no disk no firmware",
			config: base,
			expected: []string{
				"-machine", "q35",
				"-m", "2048",
				"-smp", "2",
				"-cpu", "v4004",
			},
		},
		{
			name: "qcow2 disk attaches via virtio",
			config: func() bemu.LaunchConfig {
				c := base()
				c.DiskPath = "/images/guest.qcow2"
				return c
			},
			expected: []string{
				"-machine", "q35",
				"-m", "2048",
				"-smp", "2",
				"-cpu", "v4004",
				"-drive", "file=/images/guest.qcow2,if=virtio,format=qcow2",
			},
		},
		{
			name: "raw disk attaches as legacy ide",
			config: func() bemu.LaunchConfig {
				c := base()
				c.DiskPath = "/images/guest.img"
				return c
			},
			expected: []string{
				"-machine", "q35",
				"-m", "2048",
				"-smp", "2",
				"-cpu", "v4004",
				"-hda", "/images/guest.img",
			},
		},
		{
			name: "explicit disk mode wins over suffix",
			config: func() bemu.LaunchConfig {
				c := base()
				c.DiskPath = "/images/guest.qcow2"
				c.DiskMode = bemu.DiskModeIDE
				return c
			},
			expected: []string{
				"-machine", "q35",
				"-m", "2048",
				"-smp", "2",
				"-cpu", "v4004",
				"-hda", "/images/guest.qcow2",
			},
		},
		{
			name: "firmware set",
			config: func() bemu.LaunchConfig {
				c := base()
				c.Firmware = "/usr/share/seabios/bios.bin"
				return c
			},
			expected: []string{
				"-machine", "q35",
				"-m", "2048",
				"-smp", "2",
				"-cpu", "v4004",
				"-bios", "/usr/share/seabios/bios.bin",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config()

			args, err := cfg.Arguments()
			require.NoError(t, err)

			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestLaunchConfigArgumentsDiskFlagCount(t *testing.T) {
	countDiskFlags := func(args []string) int {
		count := 0
		for _, arg := range args {
			if arg == "-drive" || arg == "-hda" {
				count++
			}
		}
		return count
	}

	cfg := bemu.NewLaunchConfig()

	args, err := cfg.Arguments()
	require.NoError(t, err)
	assert.Zero(t, countDiskFlags(args))

	cfg.DiskPath = "/images/guest.qcow2"

	args, err = cfg.Arguments()
	require.NoError(t, err)
	assert.Equal(t, 1, countDiskFlags(args))
}

func TestLaunchConfigArgumentsStable(t *testing.T) {
	cfg := bemu.NewLaunchConfig()
	cfg.DiskPath = "/images/guest.qcow2"
	cfg.Firmware = "/firmware/bios.bin"

	first, err := cfg.Arguments()
	require.NoError(t, err)

	second, err := cfg.Arguments()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDefaultExecutable(t *testing.T) {
	tests := []struct {
		name     string
		bemuEnv  string
		qemuEnv  string
		expected string
	}{
		{
			name:     "unset",
			expected: "bemu-system-x86_64",
		},
		{
			name:     "bemu env set",
			bemuEnv:  "/opt/bemu/bin/bemu",
			expected: "/opt/bemu/bin/bemu",
		},
		{
			name:     "qemu fallback",
			qemuEnv:  "qemu-system-x86_64",
			expected: "qemu-system-x86_64",
		},
		{
			name:     "bemu env wins over fallback",
			bemuEnv:  "/opt/bemu/bin/bemu",
			qemuEnv:  "qemu-system-x86_64",
			expected: "/opt/bemu/bin/bemu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(bemu.ExecutableEnv, tt.bemuEnv)
			t.Setenv(bemu.ExecutableEnvFallback, tt.qemuEnv)

			assert.Equal(t, tt.expected, bemu.DefaultExecutable())
		})
	}
}
