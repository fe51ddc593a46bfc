// Package wizard runs the interactive flow that turns a project directory
// into a tmuxp session file and a direnv hook.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/timvw/tmuxify/internal/config"
	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/model"
	"github.com/timvw/tmuxify/internal/mux"
	"github.com/timvw/tmuxify/internal/process"
	"github.com/timvw/tmuxify/internal/ui"
	"github.com/timvw/tmuxify/internal/validate"
	"github.com/timvw/tmuxify/internal/writer"
)

// defaultSessionName is offered when the project directory has no usable
// basename (e.g. "/").
const defaultSessionName = "my-session"

// Options are the command-line overrides for one run. Empty strings mean
// "ask".
type Options struct {
	DryRun        bool
	Force         bool
	Project       string
	TmuxpLocation string
	Session       string
	StartDir      string

	// DefaultLayout is preselected in the layout menu.
	DefaultLayout model.Layout
	// DirenvAllow is config.DirenvAsk, DirenvAlways or DirenvNever.
	DirenvAllow string
}

// Wizard wires the prompts, validator and writer together.
type Wizard struct {
	Prompter ui.Prompter
	Env      env.Env
	Runner   process.Runner
	Tmux     *mux.Tmux
	Writer   *writer.Writer
	Stdout   io.Writer
	Stderr   io.Writer
	Theme    ui.Theme
	Logger   *log.Logger

	// Getwd returns the working directory; nil uses os.Getwd.
	Getwd func() (string, error)
	// Animate shows a spinner while direnv runs.
	Animate bool

	styles ui.Styles
}

func (w *Wizard) println(a ...interface{}) {
	fmt.Fprintln(w.Stdout, a...)
}

func (w *Wizard) eprintln(a ...interface{}) {
	fmt.Fprintln(w.Stderr, a...)
}

// Run executes the full flow. Declining a confirmation or interrupting a
// prompt ends the run successfully without writing anything.
func (w *Wizard) Run(ctx context.Context, opts Options) error {
	w.styles = ui.NewStyles(w.Theme)
	if w.Logger == nil {
		w.Logger = log.New(io.Discard)
	}

	err := w.run(ctx, opts)
	if errors.Is(err, ui.ErrAborted) {
		w.println("Aborted.")
		return nil
	}
	return err
}

func (w *Wizard) run(ctx context.Context, opts Options) error {
	s := w.styles
	w.println(s.Title.Render("Welcome to tmuxify!"))
	w.println()

	if w.Tmux.Inside() {
		proceed, err := w.confirmInsideTmux(ctx)
		if err != nil {
			return err
		}
		if !proceed {
			w.println("Aborted. Please run tmuxify from outside of tmux.")
			return nil
		}
		w.println()
	}

	if err := validate.CheckDependencies(w.Env); err != nil {
		w.eprintln(s.Error.Render("Error:"))
		w.eprintln(err.Error())
		w.eprintln()
		w.eprintln(fmt.Sprintf("Run %s to check your system configuration.", s.Warning.Render("tmuxify doctor")))
		return ui.Reported(err)
	}

	projectDir, err := w.projectDir(opts.Project)
	if err != nil {
		return err
	}
	w.Logger.Debug("project directory", "path", projectDir)

	sessionName, err := w.sessionName(opts.Session, projectDir)
	if err != nil {
		return err
	}

	location, err := w.location(opts.TmuxpLocation)
	if err != nil {
		return err
	}

	startDir := projectDir
	if opts.StartDir != "" {
		startDir = opts.StartDir
	}

	w.println()
	w.println(s.Heading.Render("Configuring windows and panes..."))
	w.println()

	layout := opts.DefaultLayout
	if layout == "" {
		layout = model.LayoutTiled
	}
	var windows []model.Window
	for {
		win, err := w.buildWindow(len(windows)+1, layout)
		if err != nil {
			return err
		}
		windows = append(windows, win)

		more, err := w.Prompter.Confirm("Add another window?", false)
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	cfg := model.Config{
		SessionName:    sessionName,
		StartDirectory: startDir,
		Windows:        windows,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	content, err := cfg.ToYAML()
	if err != nil {
		return err
	}

	w.println()
	w.println(s.Title.Render("Configuration preview:"))
	w.println("---")
	w.println(content)
	w.println("---")
	w.println()

	proceed, err := w.Prompter.Confirm("Proceed with this configuration?", true)
	if err != nil {
		return err
	}
	if !proceed {
		w.println("Aborted.")
		return nil
	}

	res, err := w.Writer.WriteConfig(ctx, cfg, location, projectDir, writer.Options{
		DryRun: opts.DryRun,
		Force:  opts.Force,
	})
	if err != nil {
		return err
	}
	if opts.DryRun {
		return nil
	}
	fmt.Fprint(w.Stdout, res.Summary())

	return w.direnvAllow(ctx, projectDir, opts.DirenvAllow)
}

func (w *Wizard) confirmInsideTmux(ctx context.Context) (bool, error) {
	s := w.styles
	w.eprintln(s.Warning.Bold(true).Render("Warning:"))
	w.eprintln("You are currently inside a tmux session.")
	if name, ok := w.Tmux.CurrentSession(ctx); ok {
		w.eprintln("Current session: " + s.Accent.Render(name))
	}
	w.eprintln()
	w.eprintln("tmuxify is designed to create new tmux sessions.")
	w.eprintln("Running it from within tmux may cause unexpected behavior.")
	w.eprintln()
	return w.Prompter.Confirm("Continue anyway?", false)
}

func (w *Wizard) projectDir(flag string) (string, error) {
	dir := flag
	if dir == "" {
		getwd := w.Getwd
		if getwd == nil {
			getwd = os.Getwd
		}
		wd, err := getwd()
		if err != nil {
			return "", fmt.Errorf("determining current directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory %s: %w", dir, err)
	}
	return abs, nil
}

func (w *Wizard) sessionName(flag, projectDir string) (string, error) {
	if flag != "" {
		if err := model.ValidateSessionName(flag); err != nil {
			return "", err
		}
		return flag, nil
	}

	def := filepath.Base(projectDir)
	if model.ValidateSessionName(def) != nil {
		def = defaultSessionName
	}
	for {
		name, err := w.Prompter.AskText("Session name", def, false)
		if err != nil {
			return "", err
		}
		if err := model.ValidateSessionName(name); err != nil {
			w.eprintln(w.styles.Warning.Render(err.Error()))
			continue
		}
		return name, nil
	}
}

func (w *Wizard) location(flag string) (model.TmuxpLocation, error) {
	if flag != "" {
		return model.ParseLocationArg(flag)
	}
	choices := []string{"home (~/.tmuxp/)", "project (./.tmuxp.yaml)"}
	idx, err := w.Prompter.AskChoice("Where should the tmuxp config be stored?", choices, 0)
	if err != nil {
		return 0, err
	}
	if idx == 1 {
		return model.LocationProject, nil
	}
	return model.LocationHome, nil
}

func (w *Wizard) direnvAllow(ctx context.Context, projectDir, policy string) error {
	w.println()
	switch policy {
	case config.DirenvNever:
		return nil
	case config.DirenvAlways:
	default:
		ok, err := w.Prompter.Confirm("Run 'direnv allow' now?", true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	err := ui.Spin(w.Stderr, w.Theme, "Running direnv allow...", w.Animate, func() error {
		return writer.RunDirenvAllow(ctx, w.Runner, projectDir)
	})
	if err != nil {
		return err
	}

	w.println()
	w.println(w.styles.Success.Render("✓ All done! Your tmux session is ready."))
	w.println("  cd into this directory to automatically attach to your session.")
	return nil
}
