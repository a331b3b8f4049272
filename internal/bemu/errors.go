// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu

import "errors"

var (
	// ErrArgumentCollision is returned if two [Argument]s are considered
	// equal.
	ErrArgumentCollision = errors.New("colliding args")

	// ErrDiskModeInvalid is returned if a disk mode is invalid.
	ErrDiskModeInvalid = errors.New("unknown disk mode")

	// ErrEmptyFilePath is returned if a file path is empty.
	ErrEmptyFilePath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if a path does not point to a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")
)

// ValidationError indicates a [LaunchConfig] that must not be launched.
type ValidationError struct {
	msg string
	err error
}

// NewValidationError creates a new [ValidationError] with the given message
// wrapping the given error. The error may be nil.
func NewValidationError(msg string, err error) *ValidationError {
	return &ValidationError{
		msg: msg,
		err: err,
	}
}

// Error implements the [error] interface.
func (e *ValidationError) Error() string {
	if e.err == nil {
		return "validate: " + e.msg
	}

	return "validate: " + e.msg + ": " + e.err.Error()
}

// Is implements the [errors.Is] interface.
func (*ValidationError) Is(other error) bool {
	_, ok := other.(*ValidationError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ValidationError) Unwrap() error {
	return e.err
}
