// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"
)

// Handle identifies a single spawned emulator process. It is created by
// [Supervisor.Start] and remains valid after the process has terminated so
// the final state and exit code can still be queried.
type Handle struct {
	// ID identifies this launch in logs and status output.
	ID uuid.UUID
	// PID of the emulator process.
	PID int
	// StartedAt is the spawn time.
	StartedAt time.Time

	cmd  *exec.Cmd
	tail *tailBuffer
	done chan struct{}

	mu       sync.Mutex
	state    State
	exitCode int
}

// State returns the current lifecycle state. It never blocks and is safe to
// call repeatedly from a timer-driven poll loop. Exit detection happens in
// the background, so the returned state is already terminal once the
// process has gone away.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.state
}

// ExitCode returns the recorded exit code. It reports false while the
// process is still live and true with the exit code once it has terminated.
// A process killed by a signal reports -1.
func (h *Handle) ExitCode() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state.Live() {
		return 0, false
	}

	return h.exitCode, true
}

// StderrTail returns the retained end of the process's stderr stream for
// status reporting.
func (h *Handle) StderrTail() string {
	return h.tail.String()
}

// Done returns a channel that is closed once the process has terminated.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the process has terminated or the context is done.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	case <-h.done:
		return nil
	}
}

// stop transitions the handle to Stopping and sends the interrupt signal.
// It is idempotent: once the handle is Stopping or terminal it returns
// without signaling again.
func (h *Handle) stop(grace time.Duration) error {
	h.mu.Lock()

	if h.state != StateRunning {
		h.mu.Unlock()
		return nil
	}

	h.state = StateStopping
	h.mu.Unlock()

	go h.enforceGrace(grace)

	err := h.cmd.Process.Signal(unix.SIGINT)
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("interrupt pid %d: %w", h.PID, err)
	}

	return nil
}

// enforceGrace force-kills the process if it has not exited within the
// grace period.
func (h *Handle) enforceGrace(grace time.Duration) {
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-h.done:
	case <-timer.C:
		_ = h.cmd.Process.Signal(unix.SIGKILL)
	}
}

// finish records the exit result and moves the handle to its terminal
// state. A stop that was requested always ends Stopped, a process that
// exited on its own ends Stopped or Failed depending on its exit code.
func (h *Handle) finish(exitCode int, stopRequested bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.exitCode = exitCode

	switch {
	case h.state == StateStopping || stopRequested:
		h.state = StateStopped
	case exitCode == 0:
		h.state = StateStopped
	default:
		h.state = StateFailed
	}

	close(h.done)
}
