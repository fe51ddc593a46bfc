// Package writer emits the tmuxp file and .envrc, backing up any file it
// is about to overwrite.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/model"
	telem "github.com/timvw/tmuxify/internal/otel"
	"github.com/timvw/tmuxify/internal/placement"
)

// backupTimeFormat renders local time as YYYYMMDD_HHMMSS.
const backupTimeFormat = "20060102_150405"

// Options controls how files are written.
type Options struct {
	// DryRun prints what would be written and touches nothing.
	DryRun bool
	// Force overwrites existing files without a backup.
	Force bool
}

// Result describes what WriteConfig did.
type Result struct {
	TmuxpPath     string
	EnvrcPath     string
	TmuxpBackedUp bool
	EnvrcBackedUp bool
}

// IOError is a filesystem failure while writing artifacts.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Writer writes the generated artifacts. Zero-value fields fall back to
// the real environment, time.Now and os.Stdout.
type Writer struct {
	Env     env.Env
	Now     func() time.Time
	Stdout  io.Writer
	Logger  *log.Logger
	Metrics *telem.Metrics
}

func (w *Writer) env() env.Env {
	if w.Env == nil {
		return env.OS()
	}
	return w.Env
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

func (w *Writer) stdout() io.Writer {
	if w.Stdout == nil {
		return os.Stdout
	}
	return w.Stdout
}

func (w *Writer) debug(msg string, kv ...interface{}) {
	if w.Logger != nil {
		w.Logger.Debug(msg, kv...)
	}
}

// WriteConfig renders cfg and writes the tmuxp file and .envrc for the
// given location. In dry-run mode both files are printed instead.
func (w *Writer) WriteConfig(ctx context.Context, cfg model.Config, location model.TmuxpLocation, projectDir string, opts Options) (Result, error) {
	if projectDir != "" {
		abs, err := filepath.Abs(projectDir)
		if err != nil {
			return Result{}, fmt.Errorf("resolving project directory %s: %w", projectDir, err)
		}
		projectDir = abs
	}

	paths, err := placement.Resolve(w.env(), location, cfg, projectDir)
	if err != nil {
		return Result{}, err
	}
	w.debug("resolved artifact paths", "tmuxp", paths.Tmuxp, "envrc", paths.Envrc)

	tmuxpContent, err := cfg.ToYAML()
	if err != nil {
		return Result{}, err
	}
	envrcContent := cfg.GenerateEnvrc(location)

	res := Result{TmuxpPath: paths.Tmuxp, EnvrcPath: paths.Envrc}

	if opts.DryRun {
		out := w.stdout()
		printDryRun(out, paths.Tmuxp, tmuxpContent)
		printDryRun(out, paths.Envrc, envrcContent)
		return res, nil
	}

	dir := filepath.Dir(paths.Tmuxp)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, &IOError{Op: "creating directory", Path: dir, Err: err}
	}

	if res.TmuxpBackedUp, err = w.backup(ctx, paths.Tmuxp, opts.Force); err != nil {
		return Result{}, err
	}
	if res.EnvrcBackedUp, err = w.backup(ctx, paths.Envrc, opts.Force); err != nil {
		return Result{}, err
	}

	if err := w.write(ctx, paths.Tmuxp, tmuxpContent); err != nil {
		return Result{}, err
	}
	if err := w.write(ctx, paths.Envrc, envrcContent); err != nil {
		return Result{}, err
	}
	return res, nil
}

func printDryRun(out io.Writer, path, content string) {
	fmt.Fprintf(out, "\n[DRY RUN] Would write to: %s\n", path)
	fmt.Fprintln(out, "---")
	fmt.Fprintln(out, content)
	fmt.Fprintln(out, "---")
}

// BackupPath returns the sibling backup name for path at time t.
func BackupPath(path string, t time.Time) string {
	return filepath.Join(filepath.Dir(path), filepath.Base(path)+".backup."+t.Format(backupTimeFormat))
}

// backup copies an existing path to its timestamped sibling unless force
// is set. It reports whether a backup was made.
func (w *Writer) backup(ctx context.Context, path string, force bool) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "inspecting", Path: path, Err: err}
	}
	if force {
		w.debug("overwriting without backup", "path", path)
		return false, nil
	}

	dst := BackupPath(path, w.now())
	if err := copyFile(path, dst); err != nil {
		return false, &IOError{Op: "creating backup", Path: dst, Err: err}
	}
	w.debug("backup created", "path", dst)
	w.Metrics.RecordBackup(ctx, filepath.Base(path))
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// write replaces path with content via a temp file and rename so readers
// never observe a partial file.
func (w *Writer) write(ctx context.Context, path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		cleanup()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		cleanup()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	w.debug("wrote file", "path", path, "bytes", len(content))
	w.Metrics.RecordFileWritten(ctx, filepath.Base(path))
	return nil
}

// Summary returns the human-readable list of generated files.
func (r Result) Summary() string {
	line := func(path string, backedUp bool) string {
		if backedUp {
			return fmt.Sprintf("  %s (backed up existing file)\n", path)
		}
		return fmt.Sprintf("  %s\n", path)
	}
	return "\nFiles generated:\n" + line(r.TmuxpPath, r.TmuxpBackedUp) + line(r.EnvrcPath, r.EnvrcBackedUp)
}
