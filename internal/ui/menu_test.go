// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"
	"testing"

	"nbproj/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
)

func press(t *testing.T, m MenuModel, msgs ...tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuSelectsCommand(t *testing.T) {
	m, cmd := press(t, NewMenuModel(),
		runes("j"), tea.KeyMsg{Type: tea.KeyDown}, runes("k"), tea.KeyMsg{Type: tea.KeyEnter})

	c, ok := m.Choice()
	if !ok || c != tasks.Jupyter {
		t.Fatalf("want jupyter chosen, got %v (ok=%v)", c, ok)
	}
	if cmd == nil {
		t.Fatalf("enter should quit the program")
	}
	if _, isQuit := cmd().(tea.QuitMsg); !isQuit {
		t.Fatalf("enter should return tea.Quit")
	}
}

func TestMenuCursorStaysInBounds(t *testing.T) {
	m, _ := press(t, NewMenuModel(), runes("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first item: %d", m.cursor)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnd}, runes("j"), runes("j"))
	if m.cursor != len(tasks.All())-1 {
		t.Fatalf("cursor moved past last item: %d", m.cursor)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	if m.cursor != 0 {
		t.Fatalf("home did not jump to first item: %d", m.cursor)
	}
}

func TestMenuQuitWithoutChoice(t *testing.T) {
	m, cmd := press(t, NewMenuModel(), runes("q"))
	if _, ok := m.Choice(); ok {
		t.Fatalf("quit must not choose a command")
	}
	if cmd == nil {
		t.Fatalf("q should quit the program")
	}
}

func TestMenuViewListsCommands(t *testing.T) {
	view := NewMenuModel().View()
	for _, c := range tasks.All() {
		if !strings.Contains(view, c.String()) {
			t.Fatalf("view missing %s:\n%s", c, view)
		}
	}
}
