// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package cmd

import "github.com/bemu/bemuctl/internal/bemu"

// diskModeFlag adapts [bemu.DiskMode] to the flag value interface.
type diskModeFlag struct {
	mode *bemu.DiskMode
}

func (f *diskModeFlag) String() string {
	return f.mode.String()
}

func (f *diskModeFlag) Set(value string) error {
	return f.mode.UnmarshalText([]byte(value)) //nolint:wrapcheck
}

func (f *diskModeFlag) Type() string {
	return "mode"
}
