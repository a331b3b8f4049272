// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/bemu/bemuctl/internal/bemu"
	"github.com/bemu/bemuctl/internal/profile"
	"github.com/bemu/bemuctl/internal/supervisor"
	"github.com/bemu/bemuctl/internal/vmx"
)

// pollInterval drives the background liveness refresh of the run loop.
const pollInterval = 250 * time.Millisecond

type runOptions struct {
	profilePath string
	saveProfile bool
	gracePeriod time.Duration

	executable string
	diskPath   string
	diskMode   bemu.DiskMode
	memoryMB   uint64
	vcpus      uint64
	cpuModel   string
	machine    string
	firmware   string
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{
		diskMode:    bemu.DiskModeVirtio,
		gracePeriod: supervisor.DefaultGracePeriod,
	}

	return opts.command()
}

func (o *runOptions) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [descriptor.vmx]",
		Short: "Start a VM and supervise it until it exits",
		Long: `Start a VM and supervise it until it exits or is interrupted.

Launch settings come from the profile file, then from the descriptor given
as argument, then from explicit flags, in increasing precedence. SIGINT and
SIGTERM stop the VM gracefully, escalating to a forced kill after the grace
period.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor := ""
			if len(args) == 1 {
				descriptor = args[0]
			}

			return o.run(cmd, descriptor)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.profilePath, "profile", "",
		"launch profile file to use")
	flags.BoolVar(&o.saveProfile, "save-profile", false,
		"write the merged launch settings back to the profile")
	flags.DurationVar(&o.gracePeriod, "grace-period", o.gracePeriod,
		"wait between interrupt and forced kill on stop")
	flags.StringVar(&o.executable, "emulator", "",
		"emulator binary name or path")
	flags.StringVar(&o.diskPath, "disk", "",
		"disk image to boot")
	flags.Var(&diskModeFlag{mode: &o.diskMode}, "disk-mode",
		"disk attachment mode (virtio, ide)")
	flags.Uint64Var(&o.memoryMB, "memory", bemu.MemoryDefault,
		"guest memory in MB")
	flags.Uint64Var(&o.vcpus, "vcpus", bemu.VCPUDefault,
		"number of virtual CPUs")
	flags.StringVar(&o.cpuModel, "cpu", bemu.CPUModelDefault,
		"guest CPU model")
	flags.StringVar(&o.machine, "machine", bemu.MachineDefault,
		"machine type")
	flags.StringVar(&o.firmware, "firmware", "",
		"firmware image to boot with")

	return cmd
}

// buildConfig merges profile, descriptor and flags in increasing
// precedence.
func (o *runOptions) buildConfig(
	cmd *cobra.Command,
	descriptor string,
) (bemu.LaunchConfig, error) {
	path := o.profilePath
	if path == "" {
		var err error

		path, err = profile.DefaultPath()
		if err != nil {
			return bemu.LaunchConfig{}, err
		}
	}

	cfg, err := profile.Load(path)
	if err != nil {
		return bemu.LaunchConfig{}, err
	}

	if descriptor != "" {
		overrides, err := vmx.Import(descriptor)
		if err != nil {
			return bemu.LaunchConfig{}, fmt.Errorf("import descriptor: %w", err)
		}

		for _, fieldErr := range overrides.FieldErrors {
			slog.Warn("Ignoring descriptor field",
				slog.String("descriptor", descriptor),
				slog.Any("error", fieldErr))
		}

		overrides.Apply(&cfg)

		slog.Info("Imported descriptor",
			slog.String("descriptor", descriptor),
			slog.String("disk", cfg.DiskPath),
			slog.Uint64("memory_mb", cfg.MemoryMB),
			slog.Uint64("vcpus", cfg.VCPUs))
	}

	applyFlags(cmd, &cfg, o)

	if cfg.Firmware == "" {
		cfg.Firmware = bemu.FindFirmware()
	}

	if o.saveProfile {
		if err := profile.Save(path, cfg); err != nil {
			return bemu.LaunchConfig{}, err
		}

		slog.Info("Saved launch profile", slog.String("path", path))
	}

	return cfg, nil
}

// applyFlags copies explicitly set flags into the config. Flags left at
// their default do not override profile or descriptor values.
func applyFlags(cmd *cobra.Command, cfg *bemu.LaunchConfig, o *runOptions) {
	flags := cmd.Flags()

	if flags.Changed("emulator") {
		cfg.Executable = o.executable
	}

	if flags.Changed("disk") {
		cfg.DiskPath = o.diskPath
		cfg.DiskMode = bemu.DefaultDiskMode(o.diskPath)
	}

	if flags.Changed("disk-mode") {
		cfg.DiskMode = o.diskMode
	}

	if flags.Changed("memory") {
		cfg.MemoryMB = o.memoryMB
	}

	if flags.Changed("vcpus") {
		cfg.VCPUs = o.vcpus
	}

	if flags.Changed("cpu") {
		cfg.CPUModel = o.cpuModel
	}

	if flags.Changed("machine") {
		cfg.Machine = o.machine
	}

	if flags.Changed("firmware") {
		cfg.Firmware = o.firmware
	}
}

func (o *runOptions) run(cmd *cobra.Command, descriptor string) error {
	ctx := cmd.Context()

	cfg, err := o.buildConfig(cmd, descriptor)
	if err != nil {
		return err
	}

	sup := &supervisor.Supervisor{
		GracePeriod: o.gracePeriod,
	}

	// Signals are handled by the supervise loop, so the subprocess must
	// not be tied to the command context.
	handle, err := sup.Start(context.WithoutCancel(ctx), cfg)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	slog.Info("Emulator running",
		slog.String("id", handle.ID.String()),
		slog.Int("pid", handle.PID))

	return superviseLoop(ctx, sup, handle)
}

// superviseLoop refreshes the process state on a timer until the process
// has terminated. An interrupted context requests a graceful stop while the
// poll loop keeps running, so the transition to the terminal state is
// observed promptly.
func superviseLoop(
	ctx context.Context,
	sup *supervisor.Supervisor,
	handle *supervisor.Handle,
) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	interrupt := ctx.Done()
	last := supervisor.StateRunning

	for {
		select {
		case <-interrupt:
			slog.Info("Stopping emulator",
				slog.Int("pid", handle.PID))

			if err := sup.Stop(); err != nil {
				slog.Warn("Stop signal not delivered",
					slog.Any("error", err))
			}

			// Stop has been requested once. Keep polling only.
			interrupt = nil
		case <-ticker.C:
			state := sup.Poll()
			if state == last {
				continue
			}

			last = state
			slog.Debug("Emulator state changed",
				slog.String("state", state.String()))

			if state.Live() {
				continue
			}

			return reportExit(handle, state)
		}
	}
}

func reportExit(handle *supervisor.Handle, state supervisor.State) error {
	exitCode, _ := handle.ExitCode()

	if state == supervisor.StateFailed {
		slog.Error("Emulator failed",
			slog.Int("exit_code", exitCode))

		if exitCode > 0 {
			return &exitError{code: exitCode}
		}

		return &exitError{code: 1}
	}

	slog.Info("Emulator stopped",
		slog.Int("exit_code", exitCode))

	return nil
}
