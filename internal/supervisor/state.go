// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package supervisor

// State is the lifecycle state of a supervised emulator process.
//
// Running and Stopping are live states. Stopped and Failed are terminal, a
// new [Supervisor.Start] is required to get a new [Handle].
type State string

const (
	// StateRunning means the subprocess is alive.
	StateRunning State = "running"
	// StateStopping means the interrupt signal has been sent and the
	// process has not exited yet.
	StateStopping State = "stopping"
	// StateStopped means the process exited cleanly or was stopped on
	// request.
	StateStopped State = "stopped"
	// StateFailed means the process exited on its own with a non-zero exit
	// code.
	StateFailed State = "failed"
)

// String implements [fmt.Stringer].
func (s State) String() string {
	return string(s)
}

// Live reports whether the state still has a subprocess attached.
func (s State) Live() bool {
	return s == StateRunning || s == StateStopping
}
