// Package model holds the tmuxp session description written by tmuxify.
//
// Field names and YAML tags follow the tmuxp schema exactly; a Config
// rendered with ToYAML can be passed straight to `tmuxp load`.
package model

import (
	"fmt"
	"strings"
)

// Layout is a tmux window layout name.
type Layout string

// The five tmux preset layouts. Values are the kebab-case names tmux
// and tmuxp accept.
const (
	LayoutTiled          Layout = "tiled"
	LayoutEvenHorizontal Layout = "even-horizontal"
	LayoutEvenVertical   Layout = "even-vertical"
	LayoutMainHorizontal Layout = "main-horizontal"
	LayoutMainVertical   Layout = "main-vertical"
)

// Layouts returns all layouts in menu order.
func Layouts() []Layout {
	return []Layout{
		LayoutTiled,
		LayoutEvenHorizontal,
		LayoutEvenVertical,
		LayoutMainHorizontal,
		LayoutMainVertical,
	}
}

// String returns the kebab-case layout name.
func (l Layout) String() string {
	return string(l)
}

// ParseLayout parses a layout name case-insensitively.
func ParseLayout(s string) (Layout, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Layouts() {
		if string(l) == want {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown layout %q (supported: tiled, even-horizontal, even-vertical, main-horizontal, main-vertical)", s)
}

// TmuxpLocation selects where the tmuxp file is stored.
type TmuxpLocation int

const (
	// LocationHome stores the file as ~/.tmuxp/<session>.yaml.
	LocationHome TmuxpLocation = iota
	// LocationProject stores the file as <project>/.tmuxp.yaml.
	LocationProject
)

func (l TmuxpLocation) String() string {
	switch l {
	case LocationHome:
		return "home"
	case LocationProject:
		return "project"
	default:
		return fmt.Sprintf("TmuxpLocation(%d)", int(l))
	}
}

// ParseLocation parses "home" or "project", ignoring case.
// The second return value is false for anything else.
func ParseLocation(s string) (TmuxpLocation, bool) {
	switch strings.ToLower(s) {
	case "home":
		return LocationHome, true
	case "project":
		return LocationProject, true
	default:
		return 0, false
	}
}

// InvalidLocationError is returned when a location string is neither
// "home" nor "project".
type InvalidLocationError struct {
	Value string
}

func (e *InvalidLocationError) Error() string {
	return fmt.Sprintf("Invalid location: %s. Use 'home' or 'project'", e.Value)
}

// ParseLocationArg is ParseLocation for user-supplied flag and config
// values. It reports an *InvalidLocationError instead of a boolean.
func ParseLocationArg(s string) (TmuxpLocation, error) {
	loc, ok := ParseLocation(s)
	if !ok {
		return 0, &InvalidLocationError{Value: s}
	}
	return loc, nil
}

// Pane is a single tmux pane. ShellCommand lines run in order when the
// pane starts; an empty list leaves the pane at a shell prompt.
type Pane struct {
	ShellCommand []string `yaml:"shell_command,omitempty"`
}

// NewPane returns a pane running the given commands.
func NewPane(commands ...string) Pane {
	return Pane{ShellCommand: commands}
}

// Window is a tmux window. Name and Layout are omitted from the YAML when
// empty.
type Window struct {
	Name   string `yaml:"window_name,omitempty"`
	Layout Layout `yaml:"layout,omitempty"`
	Panes  []Pane `yaml:"panes"`
}

// Config is a complete tmuxp session description.
type Config struct {
	SessionName    string   `yaml:"session_name"`
	StartDirectory string   `yaml:"start_directory"`
	Windows        []Window `yaml:"windows"`
}
