package model

import (
	"fmt"
	"strings"
)

// ValidationError describes why a Config cannot be persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateSessionName reports whether name can be used as a file name
// component under ~/.tmuxp.
func ValidateSessionName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &ValidationError{Field: "session_name", Reason: "must not be empty"}
	case strings.ContainsAny(name, `/\`):
		return &ValidationError{Field: "session_name", Reason: fmt.Sprintf("%q must not contain path separators", name)}
	case name == "." || name == "..":
		return &ValidationError{Field: "session_name", Reason: fmt.Sprintf("%q is not a valid file name", name)}
	}
	return nil
}

// Validate checks the invariants a persisted config must hold: a usable
// session name, at least one window, at least one pane per window and no
// blank commands.
func (c Config) Validate() error {
	if err := ValidateSessionName(c.SessionName); err != nil {
		return err
	}
	if len(c.Windows) == 0 {
		return &ValidationError{Field: "windows", Reason: "at least one window is required"}
	}
	for i, w := range c.Windows {
		if w.Layout != "" {
			if _, err := ParseLayout(string(w.Layout)); err != nil {
				return &ValidationError{Field: fmt.Sprintf("windows[%d].layout", i), Reason: err.Error()}
			}
		}
		if len(w.Panes) == 0 {
			return &ValidationError{Field: fmt.Sprintf("windows[%d].panes", i), Reason: "at least one pane is required"}
		}
		for j, p := range w.Panes {
			for k, cmd := range p.ShellCommand {
				if strings.TrimSpace(cmd) == "" {
					return &ValidationError{
						Field:  fmt.Sprintf("windows[%d].panes[%d].shell_command[%d]", i, j, k),
						Reason: "must not be blank",
					}
				}
			}
		}
	}
	return nil
}
