// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"errors"
	"os/exec"
	"runtime"
)

// shellCommand wraps a command line in the platform shell so pipes, globs and
// quoting behave as they would when typed by hand.
func shellCommand(commandLine string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", commandLine)
	}
	return exec.Command("sh", "-c", commandLine)
}

// exitCode extracts the child's exit status, or -1 when the process never ran.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
