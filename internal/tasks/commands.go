// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tasks

import (
	"errors"
	"fmt"
)

// Command is one of the fixed project operations.
type Command int

const (
	Setup Command = iota + 1
	Jupyter
	Test
	Format
	Lint
)

// ErrUnknownCommand is returned by ParseCommand for names outside the set.
var ErrUnknownCommand = errors.New("command not recognized")

// All returns the commands in usage order.
func All() []Command {
	return []Command{Setup, Jupyter, Test, Format, Lint}
}

// String returns the name used on the command line.
func (c Command) String() string {
	switch c {
	case Setup:
		return "setup"
	case Jupyter:
		return "jupyter"
	case Test:
		return "test"
	case Format:
		return "format"
	case Lint:
		return "lint"
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// Summary is the one-line description shown in usage text.
func (c Command) Summary() string {
	switch c {
	case Setup:
		return "Initial project setup"
	case Jupyter:
		return "Start Jupyter Lab"
	case Test:
		return "Run tests"
	case Format:
		return "Format code"
	case Lint:
		return "Check code"
	}
	return ""
}

// Aliases lists alternative names accepted for c.
func (c Command) Aliases() []string {
	if c == Jupyter {
		return []string{"start"}
	}
	return nil
}

// ParseCommand maps a command-line name to a Command.
func ParseCommand(name string) (Command, error) {
	for _, c := range All() {
		if c.String() == name {
			return c, nil
		}
		for _, alias := range c.Aliases() {
			if alias == name {
				return c, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
