// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tasks

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"nbproj/internal/config"
	"nbproj/internal/console"
	"nbproj/internal/logger"
	"nbproj/internal/runner"
)

type exitCalled struct{ code int }

func exitPanics(code int) { panic(exitCalled{code}) }

// fakeExecutor records every call and fails the step whose command line
// matches failOn by calling exit, as runner.Executor does.
type fakeExecutor struct {
	calls     []string
	failOn    string
	probeFail bool
	exit      func(int)
}

func (f *fakeExecutor) Run(step runner.CommandStep) string {
	f.calls = append(f.calls, step.CommandLine)
	if step.CommandLine == f.failOn {
		f.exit(1)
	}
	return ""
}

func (f *fakeExecutor) Probe(name string, args ...string) error {
	f.calls = append(f.calls, "probe "+strings.Join(append([]string{name}, args...), " "))
	if f.probeFail {
		return errors.New("not found")
	}
	return nil
}

func (f *fakeExecutor) Launch(commandLine string) {
	f.calls = append(f.calls, "launch "+commandLine)
}

type harness struct {
	exec *fakeExecutor
	out  *bytes.Buffer
	d    *Dispatcher
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	fe := &fakeExecutor{exit: exitPanics}
	return &harness{
		exec: fe,
		out:  out,
		d: &Dispatcher{
			Exec:    fe,
			Config:  config.Default(),
			Console: &console.Printer{Out: out, Err: out},
			Dir:     t.TempDir(),
			Exit:    exitPanics,
		},
	}
}

// run dispatches c and returns the exit code, or -1 if the process would
// have continued normally.
func (h *harness) run(c Command) (code int) {
	code = -1
	defer func() {
		if r := recover(); r != nil {
			ec, ok := r.(exitCalled)
			if !ok {
				panic(r)
			}
			code = ec.code
		}
	}()
	h.d.Run(c)
	return code
}

func TestCommandSequences(t *testing.T) {
	cases := []struct {
		cmd  Command
		want []string
	}{
		{Setup, []string{
			"probe uv --version",
			"uv sync",
			"uv run python -m ipykernel install --user --name=notebook-project",
		}},
		{Jupyter, []string{"launch uv run jupyter lab"}},
		{Test, []string{"uv run pytest"}},
		{Format, []string{"uv run black .", "uv run isort ."}},
		{Lint, []string{"uv run flake8 ."}},
	}
	for _, tc := range cases {
		t.Run(tc.cmd.String(), func(t *testing.T) {
			h := newHarness(t)
			if code := h.run(tc.cmd); code != -1 {
				t.Fatalf("unexpected exit %d; output:\n%s", code, h.out)
			}
			if !reflect.DeepEqual(h.exec.calls, tc.want) {
				t.Fatalf("want %q, got %q", tc.want, h.exec.calls)
			}
		})
	}
}

func TestFatalStepStopsSequence(t *testing.T) {
	cases := []struct {
		cmd    Command
		failOn string
		want   []string
	}{
		{Setup, "uv sync", []string{"probe uv --version", "uv sync"}},
		{Format, "uv run black .", []string{"uv run black ."}},
		{Test, "uv run pytest", []string{"uv run pytest"}},
		{Lint, "uv run flake8 .", []string{"uv run flake8 ."}},
	}
	for _, tc := range cases {
		t.Run(tc.cmd.String(), func(t *testing.T) {
			h := newHarness(t)
			h.exec.failOn = tc.failOn
			if code := h.run(tc.cmd); code != 1 {
				t.Fatalf("want exit 1, got %d", code)
			}
			if !reflect.DeepEqual(h.exec.calls, tc.want) {
				t.Fatalf("want %q, got %q", tc.want, h.exec.calls)
			}
		})
	}
}

func TestSetupKernelFailureSkipsNotebook(t *testing.T) {
	h := newHarness(t)
	h.exec.failOn = "uv run python -m ipykernel install --user --name=notebook-project"

	if code := h.run(Setup); code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(h.d.Dir, config.DefaultNotebookPath)); !os.IsNotExist(err) {
		t.Fatalf("notebook written after fatal step: %v", err)
	}
}

func TestSetupMissingPackageManager(t *testing.T) {
	h := newHarness(t)
	h.exec.probeFail = true

	if code := h.run(Setup); code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if !reflect.DeepEqual(h.exec.calls, []string{"probe uv --version"}) {
		t.Fatalf("sync attempted after failed probe: %q", h.exec.calls)
	}
	out := h.out.String()
	if !strings.Contains(out, "PowerShell:") || !strings.Contains(out, "macOS/Linux:") {
		t.Fatalf("missing install instructions:\n%s", out)
	}
}

func TestSetupCreatesNotebookOnce(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(h.d.Dir, config.DefaultNotebookPath)

	h.run(Setup)
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("notebook not created: %v", err)
	}
	if !strings.Contains(h.out.String(), "Example notebook created: notebooks/example.ipynb") {
		t.Fatalf("missing creation notice:\n%s", h.out)
	}

	h.out.Reset()
	h.run(Setup)
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("notebook rewritten on second setup")
	}
	if !strings.Contains(h.out.String(), "Example notebook already exists") {
		t.Fatalf("missing exists notice:\n%s", h.out)
	}
}

func TestSetupNotebookWriteFailureWarns(t *testing.T) {
	h := newHarness(t)
	// A regular file where the notebooks directory should be.
	if err := os.WriteFile(filepath.Join(h.d.Dir, "notebooks"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	if code := h.run(Setup); code != -1 {
		t.Fatalf("notebook failure must not be fatal, got exit %d", code)
	}
	out := h.out.String()
	if !strings.Contains(out, "[WARNING] Could not create example notebook") {
		t.Fatalf("missing warning:\n%s", out)
	}
	if !strings.Contains(out, "Setup completed!") {
		t.Fatalf("setup did not continue past the warning:\n%s", out)
	}
}

func TestTestCommandEnsuresTestsDir(t *testing.T) {
	h := newHarness(t)

	h.run(Test)
	if _, err := os.Stat(filepath.Join(h.d.Dir, "tests", "__init__.py")); err != nil {
		t.Fatalf("tests marker missing: %v", err)
	}
}

func TestTestCommandKeepsExistingTestsDir(t *testing.T) {
	h := newHarness(t)
	dir := filepath.Join(h.d.Dir, "tests")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatal(err)
	}

	if code := h.run(Test); code != -1 {
		t.Fatalf("unexpected exit %d", code)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("existing tests dir was modified: %v", entries)
	}
	if !reflect.DeepEqual(h.exec.calls, []string{"uv run pytest"}) {
		t.Fatalf("unexpected calls %q", h.exec.calls)
	}
}

func TestUnknownCommandValueIsFatal(t *testing.T) {
	h := newHarness(t)

	if code := h.run(Command(99)); code != 1 {
		t.Fatalf("want exit 1, got %d", code)
	}
	if len(h.exec.calls) != 0 {
		t.Fatalf("unexpected calls %q", h.exec.calls)
	}
}

func TestParseCommand(t *testing.T) {
	for _, c := range All() {
		got, err := ParseCommand(c.String())
		if err != nil || got != c {
			t.Fatalf("ParseCommand(%q) = %v, %v", c, got, err)
		}
	}
	if got, err := ParseCommand("start"); err != nil || got != Jupyter {
		t.Fatalf("alias start: got %v, %v", got, err)
	}
	_, err := ParseCommand("deploy")
	if !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), "deploy") {
		t.Fatalf("want ErrUnknownCommand naming deploy, got %v", err)
	}
}

func TestUsageListsAllCommands(t *testing.T) {
	usage := Usage("nbproj")
	for _, c := range All() {
		if !strings.Contains(usage, "  "+c.String()) || !strings.Contains(usage, c.Summary()) {
			t.Fatalf("usage missing %s:\n%s", c, usage)
		}
	}
}
