package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/ui"
)

func allBins(extra ...string) map[string]string {
	bins := map[string]string{"tmux": "/usr/bin/tmux", "tmuxp": "/usr/bin/tmuxp", "direnv": "/usr/bin/direnv"}
	for _, b := range extra {
		bins[b] = "/usr/bin/" + b
	}
	return bins
}

func writeRC(t *testing.T, home, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(home, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRun_AllChecksPass(t *testing.T) {
	home := t.TempDir()
	writeRC(t, home, ".zshrc", "export PATH=$HOME/bin:$PATH\neval \"$(direnv hook zsh)\"\n")
	e := &env.Map{Vars: map[string]string{"SHELL": "/bin/zsh"}, Home: home, Bins: allBins()}

	var out bytes.Buffer
	if err := Run(context.Background(), e, &out, ui.NewStyles(ui.DarkTheme()), nil); err != nil {
		t.Fatalf("Run() error: %v\n%s", err, out.String())
	}

	for _, want := range []string{
		"Running tmuxify doctor...",
		"Checking dependencies:",
		"✓ tmux",
		"✓ tmuxp",
		"✓ direnv",
		"Shell configuration:",
		"Detected shell: zsh",
		"direnv hook configured",
		"All checks passed!",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRun_MissingDependency(t *testing.T) {
	home := t.TempDir()
	writeRC(t, home, ".bashrc", "eval \"$(direnv hook bash)\"\n")
	bins := allBins("brew")
	delete(bins, "tmuxp")
	e := &env.Map{Vars: map[string]string{"SHELL": "/usr/bin/bash"}, Home: home, Bins: bins}

	var out bytes.Buffer
	err := Run(context.Background(), e, &out, ui.NewStyles(ui.DarkTheme()), nil)
	if !errors.Is(err, ErrChecksFailed) {
		t.Fatalf("expected ErrChecksFailed, got %v", err)
	}
	var reported *ui.ReportedError
	if !errors.As(err, &reported) {
		t.Error("error should be marked as reported")
	}
	if !strings.Contains(out.String(), "tmuxp - install with: brew install tmuxp") {
		t.Errorf("missing install hint:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Some issues found.") {
		t.Errorf("missing failure summary:\n%s", out.String())
	}
}

func TestCheck_HookMissing(t *testing.T) {
	home := t.TempDir()
	writeRC(t, home, ".zshrc", "# nothing here\n")
	e := &env.Map{Vars: map[string]string{"SHELL": "/bin/zsh"}, Home: home, Bins: allBins()}

	r := Check(e)
	if r.OK() {
		t.Fatal("expected report to fail without direnv hook")
	}
	if r.RCPath != filepath.Join(home, ".zshrc") {
		t.Errorf("RCPath = %q", r.RCPath)
	}
	if r.HookLine != `eval "$(direnv hook zsh)"` {
		t.Errorf("HookLine = %q", r.HookLine)
	}

	var out bytes.Buffer
	Render(&out, r, ui.NewStyles(ui.DarkTheme()))
	if !strings.Contains(out.String(), "Add this line to") || !strings.Contains(out.String(), r.HookLine) {
		t.Errorf("missing hook suggestion:\n%s", out.String())
	}
}

func TestCheck_NoRCFile(t *testing.T) {
	e := &env.Map{Vars: map[string]string{"SHELL": "/bin/zsh"}, Home: t.TempDir(), Bins: allBins()}
	r := Check(e)
	if r.HookErr != nil {
		t.Fatalf("missing rc file should not be an error: %v", r.HookErr)
	}
	if r.HookConfigured || r.OK() {
		t.Error("missing rc file means the hook is not configured")
	}
}

func TestCheck_ShellUndetected(t *testing.T) {
	e := &env.Map{Home: t.TempDir(), Bins: allBins()}
	r := Check(e)
	if r.ShellDetected {
		t.Fatal("no SHELL should mean undetected")
	}
	if !r.OK() {
		t.Error("an undetected shell is a warning, not a failure")
	}

	var out bytes.Buffer
	Render(&out, r, ui.NewStyles(ui.LightTheme()))
	if !strings.Contains(out.String(), "Could not detect shell") {
		t.Errorf("missing warning:\n%s", out.String())
	}
}
