// Package doctor implements `tmuxify doctor`: it checks the required
// programs, the user's shell and the direnv hook, and prints a report.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/timvw/tmuxify/internal/env"
	telem "github.com/timvw/tmuxify/internal/otel"
	"github.com/timvw/tmuxify/internal/ui"
	"github.com/timvw/tmuxify/internal/validate"
)

// ErrChecksFailed is returned by Run when at least one check failed.
var ErrChecksFailed = errors.New("some doctor checks failed")

// DependencyStatus is the result of looking up one required program.
type DependencyStatus struct {
	Dependency validate.Dependency
	Installed  bool
	Hint       string // install command, set only when missing
}

// Report holds everything the doctor found.
type Report struct {
	Dependencies []DependencyStatus

	Shell         string
	ShellDetected bool

	RCPath         string
	HookLine       string
	HookConfigured bool
	// HookErr is set when the RC file could not be read. It is reported as
	// a warning and does not fail the run.
	HookErr error
}

// OK reports whether every check passed.
func (r Report) OK() bool {
	for _, d := range r.Dependencies {
		if !d.Installed {
			return false
		}
	}
	if r.ShellDetected && r.HookErr == nil && !r.HookConfigured {
		return false
	}
	return true
}

// Check inspects the environment. It never fails; problems are recorded
// in the report.
func Check(e env.Env) Report {
	var r Report
	for _, dep := range validate.Dependencies {
		st := DependencyStatus{Dependency: dep, Installed: dep.Installed(e)}
		if !st.Installed {
			st.Hint = validate.InstallHint(e, dep.Package)
		}
		r.Dependencies = append(r.Dependencies, st)
	}

	r.Shell, r.ShellDetected = validate.DetectShell(e)
	if !r.ShellDetected {
		return r
	}
	r.HookConfigured, r.HookErr = validate.CheckDirenvHook(e)
	if r.HookErr == nil && !r.HookConfigured {
		r.RCPath, _ = validate.ShellRCPath(e)
		r.HookLine = validate.DirenvHookLine(e)
	}
	return r
}

// Render writes the human-readable report.
func Render(w io.Writer, r Report, s ui.Styles) {
	fmt.Fprintln(w, s.Title.Render("Running tmuxify doctor..."))
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.Heading.Render("Checking dependencies:"))
	for _, d := range r.Dependencies {
		if d.Installed {
			fmt.Fprintf(w, "  %s %s\n", s.Tick(), d.Dependency.Name)
			continue
		}
		fmt.Fprintf(w, "  %s %s - %s\n", s.Cross(), d.Dependency.Name, s.Dim.Render("install with: "+d.Hint))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, s.Heading.Render("Shell configuration:"))
	switch {
	case !r.ShellDetected:
		fmt.Fprintf(w, "  %s Could not detect shell\n", s.Caution())
	default:
		fmt.Fprintf(w, "  %s Detected shell: %s\n", s.Tick(), r.Shell)
		switch {
		case r.HookErr != nil:
			fmt.Fprintf(w, "  %s Could not check direnv hook: %s\n", s.Caution(), s.Dim.Render(r.HookErr.Error()))
		case r.HookConfigured:
			fmt.Fprintf(w, "  %s direnv hook configured\n", s.Tick())
		default:
			fmt.Fprintf(w, "  %s direnv hook not found\n", s.Cross())
			if r.RCPath != "" {
				fmt.Fprintf(w, "    Add this line to %s:\n", s.Accent.Render(r.RCPath))
				fmt.Fprintf(w, "    %s\n", s.Warning.Render(r.HookLine))
			}
		}
	}
	fmt.Fprintln(w)

	if r.OK() {
		fmt.Fprintln(w, s.Success.Bold(true).Render("✓ All checks passed! You're ready to use tmuxify."))
	} else {
		fmt.Fprintln(w, s.Error.Bold(true).Render("✗ Some issues found. Please address them before using tmuxify."))
	}
}

// Run checks the environment, prints the report to w and records one
// metric per check. It returns ErrChecksFailed, already reported, when
// any check failed.
func Run(ctx context.Context, e env.Env, w io.Writer, s ui.Styles, m *telem.Metrics) error {
	r := Check(e)
	Render(w, r, s)

	for _, d := range r.Dependencies {
		m.RecordCheck(ctx, d.Dependency.Name, d.Installed)
	}
	if r.ShellDetected && r.HookErr == nil {
		m.RecordCheck(ctx, "direnv-hook", r.HookConfigured)
	}

	if !r.OK() {
		return ui.Reported(ErrChecksFailed)
	}
	return nil
}
