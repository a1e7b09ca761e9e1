// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package runner

import (
	"nbproj/internal/config"
	"nbproj/internal/util"
)

// toolStep builds a step that runs a project tool through the package manager.
func toolStep(cfg config.Config, name string, args ...string) CommandStep {
	return CommandStep{
		Name:        name,
		CommandLine: util.JoinCommandLine(cfg.PackageManager, append([]string{"run"}, args...)...),
	}
}

// SyncStep installs the declared dependencies.
func SyncStep(cfg config.Config) CommandStep {
	return CommandStep{
		Name:        "Installing dependencies",
		CommandLine: util.JoinCommandLine(cfg.PackageManager, "sync"),
	}
}

// KernelStep registers the project's Jupyter kernel for the current user.
func KernelStep(cfg config.Config) CommandStep {
	return toolStep(cfg, "Installing Jupyter kernel",
		"python", "-m", "ipykernel", "install", "--user", "--name="+cfg.KernelName)
}

// TestStep runs the test suite.
func TestStep(cfg config.Config) CommandStep {
	return toolStep(cfg, "Running tests", "pytest")
}

// FormatSequence formats code and then sorts imports.
func FormatSequence(cfg config.Config) []CommandStep {
	return []CommandStep{
		toolStep(cfg, "Formatting code with black", "black", "."),
		toolStep(cfg, "Sorting imports with isort", "isort", "."),
	}
}

// LintStep checks the code with flake8.
func LintStep(cfg config.Config) CommandStep {
	return toolStep(cfg, "Checking code with flake8", "flake8", ".")
}

// JupyterCommandLine starts Jupyter Lab.
func JupyterCommandLine(cfg config.Config) string {
	return util.JoinCommandLine(cfg.PackageManager, "run", "jupyter", "lab")
}
