// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogFilePathUsesXDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := LogFilePath()
	if err != nil {
		t.Fatalf("LogFilePath: %v", err)
	}
	want := filepath.Join(dir, "nbproj", "app.log")
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestInitLoggerWritesToStateFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	t.Cleanup(func() { defaultLogger = nil })

	InitLogger()
	Info("step finished", "step", "Installing dependencies")

	data, err := os.ReadFile(filepath.Join(dir, "nbproj", "app.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"step":"Installing dependencies"`) {
		t.Fatalf("log record missing step attribute: %s", data)
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { defaultLogger = nil })

	Warn("notebook not written")
	Errorf("exit %d", 1)

	out := buf.String()
	if !strings.Contains(out, "notebook not written") || !strings.Contains(out, "exit 1") {
		t.Fatalf("unexpected log output: %q", out)
	}
}
