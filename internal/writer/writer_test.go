package writer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/model"
	"github.com/timvw/tmuxify/internal/process"
)

var fixedTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.Local)

func testConfig(dir string) model.Config {
	return model.Config{
		SessionName:    "sess",
		StartDirectory: dir,
		Windows:        []model.Window{{Layout: model.LayoutTiled, Panes: []model.Pane{{}}}},
	}
}

func newTestWriter(home string, out *bytes.Buffer) *Writer {
	return &Writer{
		Env:    &env.Map{Home: home},
		Now:    func() time.Time { return fixedTime },
		Stdout: out,
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWriteConfig_FreshProject(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter(t.TempDir(), &bytes.Buffer{})

	res, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationProject, dir, Options{})
	if err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}
	if res.TmuxpBackedUp || res.EnvrcBackedUp {
		t.Errorf("no backups expected for fresh directory: %+v", res)
	}
	if got := listDir(t, dir); strings.Join(got, ",") != ".envrc,.tmuxp.yaml" {
		t.Errorf("directory contents = %v", got)
	}

	envrc, _ := os.ReadFile(filepath.Join(dir, ".envrc"))
	if string(envrc) != "if [ -z \"$TMUX\" ]; then\n  tmuxp load ./.tmuxp.yaml\nfi\n" {
		t.Errorf(".envrc = %q", envrc)
	}
	tmuxp, _ := os.ReadFile(filepath.Join(dir, ".tmuxp.yaml"))
	if !strings.Contains(string(tmuxp), "session_name: sess") {
		t.Errorf(".tmuxp.yaml = %q", tmuxp)
	}
	if !filepath.IsAbs(res.TmuxpPath) || !filepath.IsAbs(res.EnvrcPath) {
		t.Errorf("expected absolute paths: %+v", res)
	}
}

func TestWriteConfig_BacksUpExistingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tmuxp.yaml"), "existing tmuxp")
	writeFile(t, filepath.Join(dir, ".envrc"), "existing envrc")

	w := newTestWriter(t.TempDir(), &bytes.Buffer{})
	res, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationProject, dir, Options{})
	if err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}
	if !res.TmuxpBackedUp || !res.EnvrcBackedUp {
		t.Fatalf("expected both files backed up: %+v", res)
	}

	names := listDir(t, dir)
	if len(names) != 4 {
		t.Fatalf("expected 4 files, got %v", names)
	}
	backupRe := regexp.MustCompile(`^(\.tmuxp\.yaml|\.envrc)\.backup\.\d{8}_\d{6}$`)
	var backups int
	for _, n := range names {
		if backupRe.MatchString(n) {
			backups++
		}
	}
	if backups != 2 {
		t.Errorf("expected 2 backup files, got %v", names)
	}

	stamp := fixedTime.Format("20060102_150405")
	old, err := os.ReadFile(filepath.Join(dir, ".envrc.backup."+stamp))
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(old) != "existing envrc" {
		t.Errorf("backup content = %q", old)
	}
	current, _ := os.ReadFile(filepath.Join(dir, ".envrc"))
	if string(current) == "existing envrc" {
		t.Error(".envrc was not overwritten")
	}
}

func TestWriteConfig_ForceSkipsBackup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".tmuxp.yaml"), "existing tmuxp")
	writeFile(t, filepath.Join(dir, ".envrc"), "existing envrc")

	w := newTestWriter(t.TempDir(), &bytes.Buffer{})
	res, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationProject, dir, Options{Force: true})
	if err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}
	if res.TmuxpBackedUp || res.EnvrcBackedUp {
		t.Errorf("force must not back up: %+v", res)
	}
	if names := listDir(t, dir); len(names) != 2 {
		t.Errorf("expected exactly 2 files, got %v", names)
	}
}

func TestWriteConfig_DryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".envrc"), "existing envrc")
	home := t.TempDir()

	var out bytes.Buffer
	w := newTestWriter(home, &out)
	res, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationHome, dir, Options{DryRun: true})
	if err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}
	if res.TmuxpBackedUp || res.EnvrcBackedUp {
		t.Errorf("dry run must not back up: %+v", res)
	}
	if names := listDir(t, dir); len(names) != 1 {
		t.Errorf("project dir changed: %v", names)
	}
	if names := listDir(t, home); len(names) != 0 {
		t.Errorf("home dir changed: %v", names)
	}
	envrc, _ := os.ReadFile(filepath.Join(dir, ".envrc"))
	if string(envrc) != "existing envrc" {
		t.Errorf(".envrc modified: %q", envrc)
	}

	printed := out.String()
	for _, want := range []string{
		"[DRY RUN] Would write to: " + filepath.Join(home, ".tmuxp", "sess.yaml"),
		"[DRY RUN] Would write to: " + filepath.Join(dir, ".envrc"),
		"---",
		"session_name: sess",
		"tmuxp load ~/.tmuxp/sess.yaml",
	} {
		if !strings.Contains(printed, want) {
			t.Errorf("dry-run output missing %q:\n%s", want, printed)
		}
	}
}

func TestWriteConfig_HomeCreatesTmuxpDir(t *testing.T) {
	dir := t.TempDir()
	home := t.TempDir()

	w := newTestWriter(home, &bytes.Buffer{})
	res, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationHome, dir, Options{})
	if err != nil {
		t.Fatalf("WriteConfig() error: %v", err)
	}
	want := filepath.Join(home, ".tmuxp", "sess.yaml")
	if res.TmuxpPath != want {
		t.Errorf("TmuxpPath = %q, want %q", res.TmuxpPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("tmuxp file not written: %v", err)
	}
}

func TestWriteConfig_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	writeFile(t, blocker, "x")

	w := newTestWriter(t.TempDir(), &bytes.Buffer{})
	_, err := w.WriteConfig(context.Background(), testConfig(dir), model.LocationProject, filepath.Join(blocker, "sub"), Options{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if !strings.Contains(ioErr.Path, "file") {
		t.Errorf("IOError path = %q", ioErr.Path)
	}
}

func TestBackupPath(t *testing.T) {
	got := BackupPath(filepath.Join("/p", ".envrc"), fixedTime)
	want := filepath.Join("/p", ".envrc.backup.20260314_150926")
	if got != want {
		t.Errorf("BackupPath() = %q, want %q", got, want)
	}
}

func TestResultSummary(t *testing.T) {
	r := Result{TmuxpPath: "/p/.tmuxp.yaml", EnvrcPath: "/p/.envrc", EnvrcBackedUp: true}
	want := "\nFiles generated:\n  /p/.tmuxp.yaml\n  /p/.envrc (backed up existing file)\n"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

// recordingRunner records invocations and returns a canned result.
type recordingRunner struct {
	res     process.Result
	program string
	args    []string
	cwd     string
}

func (r *recordingRunner) Run(_ context.Context, program string, args []string, cwd string) (process.Result, error) {
	r.program, r.args, r.cwd = program, args, cwd
	return r.res, nil
}

func TestRunDirenvAllow(t *testing.T) {
	r := &recordingRunner{}
	if err := RunDirenvAllow(context.Background(), r, "/src/demo"); err != nil {
		t.Fatalf("RunDirenvAllow() error: %v", err)
	}
	if r.program != "direnv" || len(r.args) != 1 || r.args[0] != "allow" || r.cwd != "/src/demo" {
		t.Errorf("unexpected invocation: %s %v in %s", r.program, r.args, r.cwd)
	}
}

func TestRunDirenvAllow_Failure(t *testing.T) {
	r := &recordingRunner{res: process.Result{ExitCode: 1, Stderr: "direnv: error .envrc not found"}}
	err := RunDirenvAllow(context.Background(), r, "/src/demo")
	var se *process.SubprocessError
	if !errors.As(err, &se) {
		t.Fatalf("expected *process.SubprocessError, got %v", err)
	}
	if se.Stderr != "direnv: error .envrc not found" {
		t.Errorf("Stderr = %q", se.Stderr)
	}
}
