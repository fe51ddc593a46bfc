// Package validate checks that the workstation can use what tmuxify
// generates: required binaries, the user's shell, and the direnv hook.
package validate

import (
	"fmt"
	"strings"

	"github.com/timvw/tmuxify/internal/env"
)

// Dependency is an external program tmuxify relies on.
type Dependency struct {
	Name    string // display name
	Binary  string // executable looked up on PATH
	Package string // package name passed to the package manager
}

// Dependencies is the fixed registry of required programs.
var Dependencies = []Dependency{
	{Name: "tmux", Binary: "tmux", Package: "tmux"},
	{Name: "tmuxp", Binary: "tmuxp", Package: "tmuxp"},
	{Name: "direnv", Binary: "direnv", Package: "direnv"},
}

// Installed reports whether the dependency's binary resolves on PATH.
func (d Dependency) Installed(e env.Env) bool {
	_, err := e.LookPath(d.Binary)
	return err == nil
}

// Missing is a dependency that is not installed, with its install hint.
type Missing struct {
	Dependency Dependency
	Hint       string
}

// MissingDependenciesError lists every required program not found on PATH.
type MissingDependenciesError struct {
	Missing []Missing
}

func (e *MissingDependenciesError) Error() string {
	var b strings.Builder
	b.WriteString("Missing required dependencies:\n")
	for _, m := range e.Missing {
		fmt.Fprintf(&b, "  %s - install with: %s\n", m.Dependency.Name, m.Hint)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// CheckDependencies returns nil when every registered dependency is
// installed, and a *MissingDependenciesError otherwise.
func CheckDependencies(e env.Env) error {
	var missing []Missing
	for _, d := range Dependencies {
		if !d.Installed(e) {
			missing = append(missing, Missing{Dependency: d, Hint: InstallHint(e, d.Package)})
		}
	}
	if len(missing) > 0 {
		return &MissingDependenciesError{Missing: missing}
	}
	return nil
}
