// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI entry point for bemuctl. It wires the
// descriptor importer, the launch profile and the process supervisor
// together and converts their failures into user-visible status output.
package cmd
