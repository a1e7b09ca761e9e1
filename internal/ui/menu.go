// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive command menu. The menu only picks a
// command; running it happens after the program has left the alternate
// screen so tool output lands in the normal terminal.
package ui

import (
	"fmt"
	"strings"

	"nbproj/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuModel is the Bubble Tea model of the command picker.
type MenuModel struct {
	commands []tasks.Command
	cursor   int
	chosen   bool
	keymap   KeyMap
	width    int
}

// NewMenuModel lists every command with the cursor on the first.
func NewMenuModel() MenuModel {
	return MenuModel{commands: tasks.All(), keymap: DefaultKeyMap}
}

// Choice returns the confirmed command. ok is false when the user quit.
func (m MenuModel) Choice() (c tasks.Command, ok bool) {
	if !m.chosen {
		return 0, false
	}
	return m.commands[m.cursor], true
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.commands)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keymap.Home):
			m.cursor = 0
		case key.Matches(msg, m.keymap.End):
			m.cursor = len(m.commands) - 1
		case key.Matches(msg, m.keymap.Enter):
			m.chosen = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.chosen {
		return ""
	}

	var body strings.Builder
	for i, c := range m.commands {
		line := fmt.Sprintf("%-8s %s", c, summaryStyle.Render(c.Summary()))
		if i == m.cursor {
			body.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(line))
		} else {
			body.WriteString("  " + line)
		}
		if i < len(m.commands)-1 {
			body.WriteString("\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("nbproj"),
		menuBoxStyle.Render(body.String()),
		m.renderFooter(),
	)
}

func (m MenuModel) renderFooter() string {
	bindings := []key.Binding{m.keymap.Up, m.keymap.Down, m.keymap.Enter, m.keymap.Quit}
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = footerKeyStyle.Render(b.Help().Key) + " " + footerDescStyle.Render(b.Help().Desc)
	}
	footer := strings.Join(parts, footerSeparatorStyle.Render(" | "))
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(footer)
	}
	return footer
}

// RunMenu shows the menu and returns the chosen command.
func RunMenu() (tasks.Command, bool, error) {
	final, err := tea.NewProgram(NewMenuModel()).Run()
	if err != nil {
		return 0, false, err
	}
	c, ok := final.(MenuModel).Choice()
	return c, ok, nil
}
