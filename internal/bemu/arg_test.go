// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package bemu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemu/bemuctl/internal/bemu"
)

func TestBuildArgumentStrings(t *testing.T) {
	t.Run("builds", func(t *testing.T) {
		args := []bemu.Argument{
			bemu.UniqueArg("machine", "q35"),
			bemu.UniqueArg("enable-kvm"),
			bemu.RepeatableArg("drive", "file=a.qcow2", "if=virtio"),
		}
		expected := []string{
			"-machine", "q35",
			"-enable-kvm",
			"-drive", "file=a.qcow2,if=virtio",
		}

		built, err := bemu.BuildArgumentStrings(args)
		require.NoError(t, err)
		assert.Equal(t, expected, built)
	})

	t.Run("unique name collision", func(t *testing.T) {
		args := []bemu.Argument{
			bemu.UniqueArg("machine", "q35"),
			bemu.UniqueArg("machine", "pc"),
		}

		_, err := bemu.BuildArgumentStrings(args)
		require.ErrorIs(t, err, bemu.ErrArgumentCollision)
	})

	t.Run("repeatable name allowed", func(t *testing.T) {
		args := []bemu.Argument{
			bemu.RepeatableArg("drive", "file=a.qcow2"),
			bemu.RepeatableArg("drive", "file=b.qcow2"),
		}

		_, err := bemu.BuildArgumentStrings(args)
		require.NoError(t, err)
	})

	t.Run("repeatable value collision", func(t *testing.T) {
		args := []bemu.Argument{
			bemu.RepeatableArg("drive", "file=a.qcow2"),
			bemu.RepeatableArg("drive", "file=a.qcow2"),
		}

		_, err := bemu.BuildArgumentStrings(args)
		require.ErrorIs(t, err, bemu.ErrArgumentCollision)
	})
}

func TestDiskMode(t *testing.T) {
	t.Run("default by suffix", func(t *testing.T) {
		assert.Equal(t, bemu.DiskModeVirtio, bemu.DefaultDiskMode("a.qcow2"))
		assert.Equal(t, bemu.DiskModeVirtio, bemu.DefaultDiskMode("a.QCOW2"))
		assert.Equal(t, bemu.DiskModeIDE, bemu.DefaultDiskMode("a.img"))
		assert.Equal(t, bemu.DiskModeIDE, bemu.DefaultDiskMode("a.vmdk"))
		assert.Equal(t, bemu.DiskModeIDE, bemu.DefaultDiskMode("a.raw"))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var mode bemu.DiskMode

		require.NoError(t, mode.UnmarshalText([]byte("virtio")))
		assert.Equal(t, bemu.DiskModeVirtio, mode)

		err := mode.UnmarshalText([]byte("floppy"))
		require.ErrorIs(t, err, bemu.ErrDiskModeInvalid)
	})

	t.Run("marshal invalid", func(t *testing.T) {
		_, err := bemu.DiskMode("floppy").MarshalText()
		require.ErrorIs(t, err, bemu.ErrDiskModeInvalid)
	})
}
