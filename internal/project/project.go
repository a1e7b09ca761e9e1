// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package project manages the files nbproj creates inside a project:
// the tests package, the example notebook and the optional status report.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// TestsMarker is the empty file that makes the tests directory a package.
const TestsMarker = "__init__.py"

// EnsureTestsDir creates dir and an empty marker file when dir is absent.
// An existing directory is left exactly as it is.
func EnsureTestsDir(dir string) (created bool, err error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to check %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	marker := filepath.Join(dir, TestsMarker)
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", marker, err)
	}
	return true, nil
}
