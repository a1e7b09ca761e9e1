// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package runner executes the external tools behind every nbproj command.
// A failing step is fatal: the executor prints a diagnostic and terminates
// the process instead of returning an error.
package runner

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"nbproj/internal/console"
	"nbproj/internal/logger"

	"github.com/briandowns/spinner"
)

// CommandStep is one external command line. Name is the human-readable
// description shown in notices and may be empty.
type CommandStep struct {
	Name        string
	CommandLine string
}

// Description returns Name, or the raw command line when no name is set.
func (s CommandStep) Description() string {
	if s.Name != "" {
		return s.Name
	}
	return s.CommandLine
}

// Executor runs command steps as child processes.
type Executor struct {
	Console *console.Printer

	// Dir is the working directory of child processes; empty means the caller's.
	Dir string

	// Exit terminates the process. Tests replace it to observe fatal failures.
	Exit func(code int)
}

// NewExecutor returns an Executor that prints through p and exits via os.Exit.
func NewExecutor(p *console.Printer) *Executor {
	return &Executor{Console: p, Exit: os.Exit}
}

// Run executes step to completion and returns its standard output.
// On a non-zero exit it prints the description and captured stderr, then
// exits with status 1. If Exit returns (only in tests) Run returns "".
func (e *Executor) Run(step CommandStep) string {
	if step.Name != "" {
		e.Console.Step(step.Name)
	}
	logger.Info("running step", "step", step.Description(), "command", step.CommandLine)

	cmd := shellCommand(step.CommandLine)
	cmd.Dir = e.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stop := e.startSpinner(step)
	err := cmd.Run()
	stop()

	if err != nil {
		desc := step.Description()
		errText := stderr.String()
		if strings.TrimSpace(errText) == "" {
			errText = err.Error()
		}
		logger.Error("step failed", "step", desc, "exit_code", exitCode(err), "error", err)
		e.Console.Error("Error during: %s", desc)
		e.Console.Printf("Error: %s\n", strings.TrimRight(errText, "\n"))
		e.Exit(1)
		return ""
	}

	logger.Info("step completed", "step", step.Description())
	if step.Name != "" {
		e.Console.OK("%s completed", step.Name)
	}
	return stdout.String()
}

// Probe runs a tool directly, without a shell, discarding its output.
// It reports whether the tool could be started and exited with status 0.
func (e *Executor) Probe(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = e.Dir
	if err := cmd.Run(); err != nil {
		logger.Warn("probe failed", "tool", name, "exit_code", exitCode(err), "error", err)
		return fmt.Errorf("%s is not available: %w", name, err)
	}
	return nil
}

// Launch runs a long-lived command line attached to the terminal and waits
// for it to end. Its outcome is logged but not reported.
func (e *Executor) Launch(commandLine string) {
	logger.Info("launching", "command", commandLine)

	cmd := shellCommand(commandLine)
	cmd.Dir = e.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.Console.Out
	cmd.Stderr = e.Console.Err
	if err := cmd.Run(); err != nil {
		logger.Warn("launched command ended with error", "command", commandLine, "exit_code", exitCode(err), "error", err)
	}
}

// startSpinner animates while a described step runs on a terminal. The
// returned func stops it.
func (e *Executor) startSpinner(step CommandStep) func() {
	f, ok := e.Console.Out.(*os.File)
	if step.Name == "" || !ok {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(f))
	s.Suffix = " " + step.Name
	s.Start()
	return s.Stop
}
