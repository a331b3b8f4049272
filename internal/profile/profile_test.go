// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemu/bemuctl/internal/bemu"
	"github.com/bemu/bemuctl/internal/profile"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := profile.Load(filepath.Join(t.TempDir(), "profile.yaml"))
	require.NoError(t, err)

	assert.Equal(t, bemu.NewLaunchConfig(), cfg)
}

func TestLoadPartialProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
memory_mb: 8192
disk: /images/guest.qcow2
`), 0o600))

	cfg, err := profile.Load(path)
	require.NoError(t, err)

	// Saved settings win, everything else keeps its default.
	assert.EqualValues(t, 8192, cfg.MemoryMB)
	assert.Equal(t, "/images/guest.qcow2", cfg.DiskPath)
	assert.EqualValues(t, bemu.VCPUDefault, cfg.VCPUs)
	assert.Equal(t, bemu.CPUModelDefault, cfg.CPUModel)
	assert.Equal(t, bemu.MachineDefault, cfg.Machine)
}

func TestLoadMalformedProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("memory_mb: [oops"), 0o600))

	_, err := profile.Load(path)
	require.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "profile.yaml")

	cfg := bemu.NewLaunchConfig()
	cfg.DiskPath = "/images/guest.img"
	cfg.DiskMode = bemu.DiskModeIDE
	cfg.MemoryMB = 4096
	cfg.Firmware = "/firmware/bios.bin"

	require.NoError(t, profile.Save(path, cfg))

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())

	loaded, err := profile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
