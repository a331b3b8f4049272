// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package supervisor

// LaunchError indicates that the OS refused to spawn the emulator process.
// No subprocess exists when it is returned.
type LaunchError struct {
	err error
}

// Error implements the [error] interface.
func (e *LaunchError) Error() string {
	return "launch: " + e.err.Error()
}

// Is implements the [errors.Is] interface.
func (*LaunchError) Is(other error) bool {
	_, ok := other.(*LaunchError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LaunchError) Unwrap() error {
	return e.err
}
