// SPDX-FileCopyrightText: 2026 The bemuctl authors
//
// SPDX-License-Identifier: MIT

package vmx

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/bemu/bemuctl/internal/bemu"
)

const (
	keyMemSize = "memsize"
	keyNumCPUs = "numvcpus"

	diskKeySuffix = ".filename"
)

// diskSuffixes are the disk image file suffixes a *.fileName value must
// have to be imported as disk path.
var diskSuffixes = []string{".vmdk", ".qcow2", ".img", ".raw"}

// Overrides is the subset of launch parameters found in a descriptor.
//
// Fields are nil if the descriptor did not contain a usable value for them,
// so applying the overrides is a partial merge that leaves unmentioned
// fields untouched.
type Overrides struct {
	DiskPath *string
	MemoryMB *uint64
	VCPUs    *uint64

	// FieldErrors collects per-field issues, like malformed numeric
	// values. A bad memory value does not prevent the disk path from being
	// applied.
	FieldErrors []error
}

// Apply merges the overrides into the given config.
func (o *Overrides) Apply(cfg *bemu.LaunchConfig) {
	if o.DiskPath != nil {
		cfg.DiskPath = *o.DiskPath
		cfg.DiskMode = bemu.DefaultDiskMode(*o.DiskPath)
	}

	if o.MemoryMB != nil {
		cfg.MemoryMB = *o.MemoryMB
	}

	if o.VCPUs != nil {
		cfg.VCPUs = *o.VCPUs
	}
}

// Import reads the descriptor file and extracts the recognized launch
// parameters.
//
// It returns a [*ParseError] if the file cannot be opened or none of the
// recognized keys is present. VMX memory sizes are megabytes already, so
// values are taken as is.
func Import(path string) (*Overrides, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, err: err}
	}
	defer file.Close()

	var (
		overrides  Overrides
		recognized bool
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, found := splitLine(scanner.Text())
		if !found {
			continue
		}

		switch {
		case key == keyMemSize:
			recognized = true
			overrides.MemoryMB = parseCount(
				&overrides.FieldErrors, keyMemSize, value,
			)
		case key == keyNumCPUs:
			recognized = true
			overrides.VCPUs = parseCount(
				&overrides.FieldErrors, keyNumCPUs, value,
			)
		case strings.HasSuffix(key, diskKeySuffix):
			disk, ok := diskPath(path, value)
			if !ok {
				continue
			}

			recognized = true
			if overrides.DiskPath == nil {
				overrides.DiskPath = &disk
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: path, err: err}
	}

	if !recognized {
		return nil, &ParseError{Path: path, err: ErrNoRecognizedKeys}
	}

	return &overrides, nil
}

// splitLine splits a descriptor line into lower-cased key and unquoted
// value. It reports false for blank lines, comments and lines without a key
// value separator.
func splitLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}

	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.Trim(strings.TrimSpace(value), `"`)

	return key, value, true
}

// parseCount parses a positive integer value. A malformed or non-positive
// value is recorded as field error and nil is returned, so the remaining
// fields are unaffected.
func parseCount(fieldErrors *[]error, key, value string) *uint64 {
	count, err := strconv.ParseUint(value, 10, 64)
	if err != nil || count == 0 {
		*fieldErrors = append(
			*fieldErrors,
			fmt.Errorf("%s: invalid value %q", key, value),
		)

		return nil
	}

	return &count
}

// diskPath resolves a *.fileName value to an existing disk image path.
// Relative values are resolved against the descriptor's own directory.
func diskPath(descriptorPath, value string) (string, bool) {
	if value == "" {
		return "", false
	}

	suffix := strings.ToLower(filepath.Ext(value))
	if !slices.Contains(diskSuffixes, suffix) {
		return "", false
	}

	if !filepath.IsAbs(value) {
		value = filepath.Join(filepath.Dir(descriptorPath), value)
	}

	if err := bemu.ValidateFilePath(value); err != nil {
		return "", false
	}

	return value, true
}
