// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu

import (
	"os"
	"strconv"
)

const (
	// MemoryMin is the smallest guest memory size in MB a launch is
	// permitted with.
	MemoryMin = 256
	// MemoryMax is the largest guest memory size in MB a launch is
	// permitted with.
	MemoryMax = 262144

	// VCPUMin is the smallest permitted number of virtual CPUs.
	VCPUMin = 1
	// VCPUMax is the largest permitted number of virtual CPUs.
	VCPUMax = 1024

	// MemoryDefault is the guest memory size in MB used if none is
	// configured.
	MemoryDefault = 2048
	// VCPUDefault is the number of virtual CPUs used if none is configured.
	VCPUDefault = 2

	// CPUModelDefault is the guest CPU model used if none is configured.
	CPUModelDefault = "v4004"
	// MachineDefault is the machine type used if none is configured.
	MachineDefault = "q35"

	// ExecutableDefault is the emulator binary looked up in PATH if none is
	// configured and no environment override is set.
	ExecutableDefault = "bemu-system-x86_64"

	// ExecutableEnv overrides the default emulator binary name or path.
	ExecutableEnv = "BEMU_BINARY"
	// ExecutableEnvFallback is consulted if [ExecutableEnv] is not set. It
	// exists for setups that run BEMU images with a stock QEMU build.
	ExecutableEnvFallback = "QEMU_BINARY"
)

// LaunchConfig defines the parameters the emulator subprocess is launched
// with.
type LaunchConfig struct {
	// Name or path of the emulator binary. Bare names are resolved via
	// PATH.
	Executable string

	// Path to the disk image to boot. Optional.
	DiskPath string

	// How the disk image is attached. Only meaningful if DiskPath is set.
	// If empty, [DefaultDiskMode] of DiskPath is used.
	DiskMode DiskMode

	// Memory for the machine in MB.
	MemoryMB uint64

	// Number of virtual CPUs for the guest.
	VCPUs uint64

	// Guest CPU model.
	CPUModel string

	// Machine type to use. Depends on the emulator binary used.
	Machine string

	// Path to the firmware image to boot with. Optional. If empty, the
	// firmware flag is omitted and the emulator falls back to its bundled
	// firmware.
	Firmware string
}

// NewLaunchConfig creates a new [LaunchConfig] with the defaults the
// original BEMU tools ship with. The emulator binary is resolved from the
// environment with [DefaultExecutable].
func NewLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Executable: DefaultExecutable(),
		MemoryMB:   MemoryDefault,
		VCPUs:      VCPUDefault,
		CPUModel:   CPUModelDefault,
		Machine:    MachineDefault,
	}
}

// DefaultExecutable returns the emulator binary name or path to use if none
// is configured explicitly. The environment variables [ExecutableEnv] and
// [ExecutableEnvFallback] are consulted in that order.
func DefaultExecutable() string {
	for _, env := range []string{ExecutableEnv, ExecutableEnvFallback} {
		if binary := os.Getenv(env); binary != "" {
			return binary
		}
	}

	return ExecutableDefault
}

// diskMode returns the configured disk mode or the default for the disk
// image path.
func (c *LaunchConfig) diskMode() DiskMode {
	if c.DiskMode.isKnown() {
		return c.DiskMode
	}

	return DefaultDiskMode(c.DiskPath)
}

// arguments compiles the argument list for the emulator command.
//
// The mapping is total and deterministic. Optional fields that are unset do
// not emit any argument, so the resulting vector is stable and launches are
// reproducible.
func (c *LaunchConfig) arguments() []Argument {
	args := []Argument{
		UniqueArg("machine", c.Machine),
		UniqueArg("m", strconv.FormatUint(c.MemoryMB, 10)),
		UniqueArg("smp", strconv.FormatUint(c.VCPUs, 10)),
		UniqueArg("cpu", c.CPUModel),
	}

	if c.Firmware != "" {
		args = append(args, UniqueArg("bios", c.Firmware))
	}

	if c.DiskPath != "" {
		switch c.diskMode() {
		case DiskModeVirtio:
			args = append(args, RepeatableArg(
				"drive",
				"file="+c.DiskPath,
				"if=virtio",
				"format=qcow2",
			))
		case DiskModeIDE:
			args = append(args, UniqueArg("hda", c.DiskPath))
		}
	}

	return args
}

// Arguments compiles the argument vector for the emulator command as passed
// to [os/exec.Command].
func (c *LaunchConfig) Arguments() ([]string, error) {
	return BuildArgumentStrings(c.arguments())
}
