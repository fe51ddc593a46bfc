package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither $VISUAL nor $EDITOR is set.
const DefaultEditor = "vi"

// Editor edits text in an external editor attached to the terminal.
type Editor struct {
	// Command is the editor command line, e.g. "vim" or "code --wait".
	Command string
	// TempDir holds the scratch file; empty means os.TempDir.
	TempDir string
}

// NewEditor creates an editor for the given command line.
func NewEditor(command string) *Editor {
	if strings.TrimSpace(command) == "" {
		command = DefaultEditor
	}
	return &Editor{Command: command}
}

// Edit writes initial to a scratch file, opens the editor on it and
// returns the saved content. ok is false when the content came back
// unchanged.
func (e *Editor) Edit(initial string) (text string, ok bool, err error) {
	f, err := os.CreateTemp(e.TempDir, "tmuxify-*.txt")
	if err != nil {
		return "", false, fmt.Errorf("creating editor file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", false, fmt.Errorf("writing editor file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", false, fmt.Errorf("writing editor file %s: %w", path, err)
	}

	argv := strings.Fields(e.Command)
	if len(argv) == 0 {
		argv = []string{DefaultEditor}
	}
	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("running editor %q: %w", e.Command, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading editor file %s: %w", path, err)
	}
	if string(data) == initial {
		return "", false, nil
	}
	return string(data), true, nil
}
