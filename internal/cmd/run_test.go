// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemu/bemuctl/internal/bemu"
	"github.com/bemu/bemuctl/internal/supervisor"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected func(bemu.LaunchConfig) bemu.LaunchConfig
	}{
		{
			name: "no flags change nothing",
			args: nil,
			expected: func(c bemu.LaunchConfig) bemu.LaunchConfig {
				return c
			},
		},
		{
			name: "untouched flags do not reset other fields",
			args: []string{"--firmware", "/fw/bios.bin"},
			expected: func(c bemu.LaunchConfig) bemu.LaunchConfig {
				c.Firmware = "/fw/bios.bin"
				return c
			},
		},
		{
			name: "disk flag sets path and mode",
			args: []string{"--disk", "/images/guest.qcow2"},
			expected: func(c bemu.LaunchConfig) bemu.LaunchConfig {
				c.DiskPath = "/images/guest.qcow2"
				c.DiskMode = bemu.DiskModeVirtio
				return c
			},
		},
		{
			name: "explicit disk mode wins over suffix",
			args: []string{
				"--disk", "/images/guest.qcow2",
				"--disk-mode", "ide",
			},
			expected: func(c bemu.LaunchConfig) bemu.LaunchConfig {
				c.DiskPath = "/images/guest.qcow2"
				c.DiskMode = bemu.DiskModeIDE
				return c
			},
		},
		{
			name: "resources and machine",
			args: []string{
				"--memory", "8192",
				"--vcpus", "4",
				"--cpu", "v4004-turbo",
				"--machine", "pc",
				"--emulator", "/opt/bemu/bin/bemu",
			},
			expected: func(c bemu.LaunchConfig) bemu.LaunchConfig {
				c.MemoryMB = 8192
				c.VCPUs = 4
				c.CPUModel = "v4004-turbo"
				c.Machine = "pc"
				c.Executable = "/opt/bemu/bin/bemu"
				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := &runOptions{
				diskMode:    bemu.DiskModeVirtio,
				gracePeriod: supervisor.DefaultGracePeriod,
			}
			runCmd := opts.command()
			require.NoError(t, runCmd.ParseFlags(tt.args))

			cfg := bemu.NewLaunchConfig()
			expected := tt.expected(cfg)

			applyFlags(runCmd, &cfg, opts)

			assert.Equal(t, expected, cfg)
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		expected    string
		expectError bool
	}{
		{name: "debug", expected: "DEBUG"},
		{name: "info", expected: "INFO"},
		{name: "warning", expected: "WARN"},
		{name: "warn", expected: "WARN"},
		{name: "error", expected: "ERROR"},
		{name: "loud", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := parseLogLevel(tt.name)
			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, level.String())
		})
	}
}
