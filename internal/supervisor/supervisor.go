// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package supervisor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/bemu/bemuctl/internal/bemu"
)

// DefaultGracePeriod is the time between the interrupt signal and the
// forced kill if none is configured.
const DefaultGracePeriod = 5 * time.Second

// stderrTailSize bounds the retained stderr used for status reporting.
const stderrTailSize = 4096

// Supervisor spawns and owns the emulator subprocess.
//
// At most one [Handle] is live at a time. Starting a second emulator while
// one is Running or Stopping is rejected, so two guests never contend for
// the same disk image. The zero value is ready to use.
type Supervisor struct {
	// GracePeriod between the interrupt signal and the forced kill. If
	// zero, [DefaultGracePeriod] is used.
	GracePeriod time.Duration

	// Stdout of the emulator process. If not set, [os.Stdout] is used.
	OutWriter io.Writer
	// Stderr of the emulator process. If not set, [os.Stderr] is used.
	ErrWriter io.Writer

	mu     sync.Mutex
	handle *Handle
}

// Output returns [Supervisor.OutWriter] if set or [os.Stdout] otherwise.
func (s *Supervisor) Output() io.Writer {
	if s.OutWriter == nil {
		return os.Stdout
	}

	return s.OutWriter
}

// ErrOutput returns [Supervisor.ErrWriter] if set or [os.Stderr] otherwise.
func (s *Supervisor) ErrOutput() io.Writer {
	if s.ErrWriter == nil {
		return os.Stderr
	}

	return s.ErrWriter
}

func (s *Supervisor) gracePeriod() time.Duration {
	if s.GracePeriod <= 0 {
		return DefaultGracePeriod
	}

	return s.GracePeriod
}

// Current returns the handle of the most recent launch, or nil if there has
// not been any.
func (s *Supervisor) Current() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle
}

// Start validates the config and spawns the emulator process.
//
// It returns a [*bemu.ValidationError] if the config violates its launch
// invariants or another emulator is still live, and a [*LaunchError] if the
// OS refuses to spawn the process. On success the process's stdout and
// stderr are streamed to the configured writers while a bounded tail of
// stderr is retained for status reporting.
//
// Canceling the context interrupts the process and force-kills it after the
// grace period, same as [Supervisor.Stop].
func (s *Supervisor) Start(
	ctx context.Context,
	cfg bemu.LaunchConfig,
) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handle != nil && s.handle.State().Live() {
		return nil, bemu.NewValidationError(
			"emulator already running with pid "+
				strconv.Itoa(s.handle.PID),
			nil,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	args, err := cfg.Arguments()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, cfg.Executable, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGINT) //nolint:wrapcheck
	}
	cmd.WaitDelay = s.gracePeriod()

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &LaunchError{err: err}
	}

	tail := newTailBuffer(stderrTailSize)

	copiers := &errgroup.Group{}
	copiers.Go(func() error {
		_, err := io.Copy(s.Output(), stdout)
		return err //nolint:wrapcheck
	})
	copiers.Go(func() error {
		_, err := io.Copy(io.MultiWriter(s.ErrOutput(), tail), stderr)
		return err //nolint:wrapcheck
	})

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{err: err}
	}

	handle := &Handle{
		ID:        uuid.New(),
		PID:       cmd.Process.Pid,
		StartedAt: time.Now(),
		cmd:       cmd,
		tail:      tail,
		done:      make(chan struct{}),
		state:     StateRunning,
		exitCode:  -1,
	}
	s.handle = handle

	go func() {
		// The pipes reach EOF once the process exits. Drain them before
		// Wait closes the read ends.
		_ = copiers.Wait()
		_ = cmd.Wait()

		// A canceled context is a stop request, not a failure.
		handle.finish(cmd.ProcessState.ExitCode(), ctx.Err() != nil)
	}()

	return handle, nil
}

// Poll returns the current lifecycle state without blocking. With no launch
// so far it reports Stopped.
func (s *Supervisor) Poll() State {
	handle := s.Current()
	if handle == nil {
		return StateStopped
	}

	return handle.State()
}

// Stop terminates the live process: interrupt signal first, forced kill
// once the grace period has passed without an exit.
//
// Stop without a live process is a no-op. Repeated calls while the process
// is already Stopping do not signal again. A refused signal delivery is
// returned for status reporting and does not change the escalation.
func (s *Supervisor) Stop() error {
	handle := s.Current()
	if handle == nil {
		return nil
	}

	return handle.stop(s.gracePeriod())
}

// Wait blocks until the current process has terminated or the context is
// done. It returns immediately if nothing is live.
func (s *Supervisor) Wait(ctx context.Context) error {
	handle := s.Current()
	if handle == nil {
		return nil
	}

	return handle.Wait(ctx)
}
