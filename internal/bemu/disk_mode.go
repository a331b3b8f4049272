// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu

import (
	"path/filepath"
	"slices"
	"strings"
)

const (
	// DiskModeVirtio attaches the disk as para-virtualized virtio-blk
	// device. Requires a guest kernel with virtio support.
	DiskModeVirtio DiskMode = "virtio"
	// DiskModeIDE attaches the disk as legacy IDE device. Slow, but works
	// with any guest.
	DiskModeIDE DiskMode = "ide"
)

// DiskMode represents the way a disk image is attached to the emulator.
type DiskMode string

func (m *DiskMode) isKnown() bool {
	knownDiskModes := []DiskMode{
		DiskModeVirtio,
		DiskModeIDE,
	}

	return slices.Contains(knownDiskModes, *m)
}

// String implements [fmt.Stringer].
func (m *DiskMode) String() string {
	if !m.isKnown() {
		return ""
	}

	return string(*m)
}

// MarshalText implements [encoding.TextMarshaler].
func (m DiskMode) MarshalText() ([]byte, error) {
	s := m.String()
	if s == "" {
		return nil, ErrDiskModeInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *DiskMode) UnmarshalText(text []byte) error {
	mode := DiskMode(text)
	if !mode.isKnown() {
		return ErrDiskModeInvalid
	}

	*m = mode

	return nil
}

// DefaultDiskMode returns the disk mode used for the given disk image path
// if none is set explicitly. Copy-on-write qcow2 images are attached via
// virtio, anything else as legacy IDE device.
func DefaultDiskMode(diskPath string) DiskMode {
	if strings.EqualFold(filepath.Ext(diskPath), ".qcow2") {
		return DiskModeVirtio
	}

	return DiskModeIDE
}
