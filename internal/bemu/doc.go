// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

// Package bemu provides utilities for composing BEMU system emulator
// commands. It maps a [LaunchConfig] to the deterministic argument vector
// the emulator binary is invoked with and validates the configuration
// before a launch is permitted. It expects the emulator binary to be
// present on the system.
package bemu
