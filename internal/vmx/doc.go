// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

// Package vmx reads the minimal subset of the VMware VMX descriptor format
// that is useful for pre-filling emulator launch parameters: the guest disk
// image, the memory size and the number of virtual CPUs. All other keys are
// ignored. A descriptor is read once at import time and never written.
package vmx
