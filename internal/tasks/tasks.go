// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package tasks dispatches nbproj commands to their fixed step sequences.
//
// Every external step is fatal on failure. The only exception is writing the
// example notebook during setup, which warns and lets setup finish.
package tasks

import (
	"fmt"
	"path/filepath"
	"strings"

	"nbproj/internal/config"
	"nbproj/internal/console"
	"nbproj/internal/logger"
	"nbproj/internal/project"
	"nbproj/internal/runner"
)

// Executor runs external steps. runner.Executor is the production implementation.
type Executor interface {
	Run(step runner.CommandStep) string
	Probe(name string, args ...string) error
	Launch(commandLine string)
}

// Dispatcher runs one Command against a project directory.
type Dispatcher struct {
	Exec    Executor
	Config  config.Config
	Console *console.Printer

	// Dir is the project directory that relative config paths resolve against.
	Dir string

	// Exit terminates the process for failures detected by the dispatcher itself.
	Exit func(code int)
}

// Run performs c's steps in order.
func (d *Dispatcher) Run(c Command) {
	logger.Info("dispatching command", "command", c.String())

	switch c {
	case Setup:
		d.setup()
	case Jupyter:
		d.startJupyter()
	case Test:
		d.runTests()
	case Format:
		d.formatCode()
	case Lint:
		d.lintCode()
	default:
		d.fail("Command '%s' not recognized", c)
	}
}

// Usage returns the text printed when no command is given.
func Usage(program string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s <command>\n\nAvailable commands:\n", program)
	for _, c := range All() {
		fmt.Fprintf(&b, "  %-9s - %s\n", c, c.Summary())
	}
	return b.String()
}

func (d *Dispatcher) setup() {
	d.Console.Heading("%s + Jupyter project setup\n", strings.ToUpper(d.Config.PackageManager))

	pm := d.Config.PackageManager
	if err := d.Exec.Probe(pm, "--version"); err != nil {
		d.Console.Error("%s is not installed. Install it with:", pm)
		d.Console.Println(`   PowerShell: powershell -c "irm https://astral.sh/uv/install.ps1 | iex"`)
		d.Console.Println("   macOS/Linux: curl -LsSf https://astral.sh/uv/install.sh | sh")
		d.Exit(1)
		return
	}
	d.Console.OK("%s is installed", pm)

	d.Exec.Run(runner.SyncStep(d.Config))
	d.Exec.Run(runner.KernelStep(d.Config))
	d.ensureExampleNotebook()

	d.Console.Println()
	d.Console.OK("Setup completed!")
	d.Console.Println("\nNext steps:")
	d.Console.Println("1. Open VS Code in this folder")
	d.Console.Println("2. Install recommended extensions")
	d.Console.Println("3. Select Python interpreter: .venv/Scripts/python.exe")
	d.Console.Printf("4. Start Jupyter with: %s\n", runner.JupyterCommandLine(d.Config))
}

// ensureExampleNotebook is the one step whose failure is not fatal.
func (d *Dispatcher) ensureExampleNotebook() {
	rel := d.Config.NotebookPath
	nb := project.ExampleNotebook(d.Config.KernelName, d.Config.PythonVersion)

	created, err := project.EnsureExampleNotebook(d.path(rel), nb)
	switch {
	case err != nil:
		logger.Warn("example notebook not written", "path", rel, "error", err)
		d.Console.Warn("Could not create example notebook: %v", err)
	case created:
		d.Console.OK("Example notebook created: %s", filepath.ToSlash(rel))
	default:
		d.Console.OK("Example notebook already exists")
	}
}

func (d *Dispatcher) startJupyter() {
	d.Console.Println("Starting Jupyter Lab...")
	d.Exec.Launch(runner.JupyterCommandLine(d.Config))
}

func (d *Dispatcher) runTests() {
	created, err := project.EnsureTestsDir(d.path(d.Config.TestsDir))
	if err != nil {
		d.fail("Could not prepare %s: %v", d.Config.TestsDir, err)
		return
	}
	if created {
		d.Console.Printf("Created tests folder: %s\n", filepath.ToSlash(d.Config.TestsDir))
	}
	d.Exec.Run(runner.TestStep(d.Config))
}

func (d *Dispatcher) formatCode() {
	for _, step := range runner.FormatSequence(d.Config) {
		d.Exec.Run(step)
	}
}

func (d *Dispatcher) lintCode() {
	d.Exec.Run(runner.LintStep(d.Config))
}

func (d *Dispatcher) path(rel string) string {
	if filepath.IsAbs(rel) || d.Dir == "" {
		return rel
	}
	return filepath.Join(d.Dir, rel)
}

func (d *Dispatcher) fail(format string, a ...any) {
	logger.Errorf(format, a...)
	d.Console.Error(format, a...)
	d.Exit(1)
}
