// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the optional per-project configuration file that
// adjusts the tool names and paths nbproj uses. A project without the file
// gets the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project directory.
const FileName = ".nbproj.yaml"

const (
	DefaultPackageManager   = "uv"
	DefaultKernelName       = "notebook-project"
	DefaultPythonVersion    = "3.12.9"
	DefaultNotebookPath     = "notebooks/example.ipynb"
	DefaultTestsDir         = "tests"
	DefaultStatusReportPath = "PROJECT_STATUS.md"
)

// Config represents the project configuration.
type Config struct {
	// PackageManager is the executable used to sync and run project tools
	PackageManager string `yaml:"package_manager,omitempty"`

	// KernelName is registered with ipykernel and written into the example notebook
	KernelName string `yaml:"kernel_name,omitempty"`

	// PythonVersion is recorded in the example notebook's language_info
	PythonVersion string `yaml:"python_version,omitempty"`

	// NotebookPath is where the example notebook is created, relative to the project
	NotebookPath string `yaml:"notebook_path,omitempty"`

	// TestsDir is the directory the test command ensures before running pytest
	TestsDir string `yaml:"tests_dir,omitempty"`

	// StatusReportPath is the destination of the report command
	StatusReportPath string `yaml:"status_report_path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		PackageManager:   DefaultPackageManager,
		KernelName:       DefaultKernelName,
		PythonVersion:    DefaultPythonVersion,
		NotebookPath:     DefaultNotebookPath,
		TestsDir:         DefaultTestsDir,
		StatusReportPath: DefaultStatusReportPath,
	}
}

// Load reads FileName from dir. A missing file yields Default.
func Load(dir string) (Config, error) {
	configPath := filepath.Join(dir, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return cfg.withDefaults(), nil
}

func (c Config) withDefaults() Config {
	def := Default()
	fill := func(v *string, fallback string) {
		if strings.TrimSpace(*v) == "" {
			*v = fallback
		}
	}
	fill(&c.PackageManager, def.PackageManager)
	fill(&c.KernelName, def.KernelName)
	fill(&c.PythonVersion, def.PythonVersion)
	fill(&c.NotebookPath, def.NotebookPath)
	fill(&c.TestsDir, def.TestsDir)
	fill(&c.StatusReportPath, def.StatusReportPath)
	return c
}
