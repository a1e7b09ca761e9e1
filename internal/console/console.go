// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package console prints the tagged progress notices ([*], [OK], [ERROR],
// [WARNING]) that nbproj shows while it drives external tools.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	statusColor  = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
	headingColor = color.New(color.Bold)
)

// Printer writes notices to an output and an error stream.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// New returns a Printer bound to the process's standard streams.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Step announces a step that is about to run.
func (p *Printer) Step(format string, a ...any) {
	statusColor.Fprintf(p.Out, "[*] "+format+"...\n", a...)
}

// OK reports a completed step.
func (p *Printer) OK(format string, a ...any) {
	successColor.Fprintf(p.Out, "[OK] "+format+"\n", a...)
}

// Error reports a fatal problem. It goes to the output stream so the
// diagnostic stays next to the step notices it refers to.
func (p *Printer) Error(format string, a ...any) {
	errorColor.Fprintf(p.Out, "[ERROR] "+format+"\n", a...)
}

// Warn reports a problem the current operation continues past.
func (p *Printer) Warn(format string, a ...any) {
	warnColor.Fprintf(p.Out, "[WARNING] "+format+"\n", a...)
}

// Heading prints a bold title line.
func (p *Printer) Heading(format string, a ...any) {
	headingColor.Fprintf(p.Out, format+"\n", a...)
}

// Println prints plain text to the output stream.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.Out, a...)
}

// Printf prints formatted plain text to the output stream.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.Out, format, a...)
}
