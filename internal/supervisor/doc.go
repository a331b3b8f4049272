// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

// Package supervisor owns the lifecycle of the spawned emulator subprocess.
//
// A [Supervisor] launches at most one emulator at a time. It spawns the
// process from a validated [bemu.LaunchConfig], captures its output,
// observes its liveness without blocking the caller and terminates it on
// request with an interrupt signal first and a forced kill once the grace
// period has passed.
package supervisor
