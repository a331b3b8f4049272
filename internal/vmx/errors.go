// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package vmx

import "errors"

// ErrNoRecognizedKeys is returned if a descriptor does not contain any of
// the recognized keys.
var ErrNoRecognizedKeys = errors.New("no recognized keys found")

// ParseError indicates that a descriptor could not be imported at all.
//
// Malformed values of individual recognized keys do not cause a ParseError.
// They are collected in [Overrides.FieldErrors] so the remaining fields can
// still be applied.
type ParseError struct {
	Path string
	err  error
}

// Error implements the [error] interface.
func (e *ParseError) Error() string {
	return "parse " + e.Path + ": " + e.err.Error()
}

// Is implements the [errors.Is] interface.
func (*ParseError) Is(other error) bool {
	_, ok := other.(*ParseError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ParseError) Unwrap() error {
	return e.err
}
