// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

// Package profile persists launch settings between invocations. It is the
// command line analogue of the form state the original BEMU VM manager GUI
// kept between launches.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bemu/bemuctl/internal/bemu"
)

// DefaultPath returns the default profile location,
// $XDG_CONFIG_HOME/bemuctl/profile.yaml.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}

	return filepath.Join(configDir, "bemuctl", "profile.yaml"), nil
}

// launchProfile mirrors [bemu.LaunchConfig] with optional fields, so a
// profile only pins the settings the user actually saved.
type launchProfile struct {
	Executable string         `yaml:"executable,omitempty"`
	DiskPath   string         `yaml:"disk,omitempty"`
	DiskMode   *bemu.DiskMode `yaml:"disk_mode,omitempty"`
	MemoryMB   *uint64        `yaml:"memory_mb,omitempty"`
	VCPUs      *uint64        `yaml:"vcpus,omitempty"`
	CPUModel   string         `yaml:"cpu_model,omitempty"`
	Machine    string         `yaml:"machine,omitempty"`
	Firmware   string         `yaml:"firmware,omitempty"`
}

// Load reads the profile file and merges it over the built-in defaults. A
// missing file is not an error and yields the plain defaults.
func Load(path string) (bemu.LaunchConfig, error) {
	cfg := bemu.NewLaunchConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read profile: %w", err)
	}

	var prof launchProfile

	if err := yaml.Unmarshal(content, &prof); err != nil {
		return cfg, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if prof.Executable != "" {
		cfg.Executable = prof.Executable
	}

	if prof.DiskPath != "" {
		cfg.DiskPath = prof.DiskPath
	}

	if prof.DiskMode != nil {
		cfg.DiskMode = *prof.DiskMode
	}

	if prof.MemoryMB != nil {
		cfg.MemoryMB = *prof.MemoryMB
	}

	if prof.VCPUs != nil {
		cfg.VCPUs = *prof.VCPUs
	}

	if prof.CPUModel != "" {
		cfg.CPUModel = prof.CPUModel
	}

	if prof.Machine != "" {
		cfg.Machine = prof.Machine
	}

	if prof.Firmware != "" {
		cfg.Firmware = prof.Firmware
	}

	return cfg, nil
}

// Save writes the config as profile file, creating the parent directory if
// needed.
func Save(path string, cfg bemu.LaunchConfig) error {
	prof := launchProfile{
		Executable: cfg.Executable,
		DiskPath:   cfg.DiskPath,
		MemoryMB:   &cfg.MemoryMB,
		VCPUs:      &cfg.VCPUs,
		CPUModel:   cfg.CPUModel,
		Machine:    cfg.Machine,
		Firmware:   cfg.Firmware,
	}

	if cfg.DiskMode.String() != "" {
		prof.DiskMode = &cfg.DiskMode
	}

	content, err := yaml.Marshal(&prof)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	return nil
}
