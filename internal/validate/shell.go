package validate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/timvw/tmuxify/internal/env"
)

// fallbackShell is assumed when $SHELL is unset.
const fallbackShell = "zsh"

// DetectShell returns the basename of $SHELL, e.g. "zsh" for /bin/zsh.
func DetectShell(e env.Env) (string, bool) {
	shell, ok := e.LookupEnv("SHELL")
	if !ok || shell == "" {
		return "", false
	}
	return filepath.Base(shell), true
}

func shellOrFallback(e env.Env) string {
	if s, ok := DetectShell(e); ok {
		return s
	}
	return fallbackShell
}

// ShellRCPath returns the RC file the direnv hook belongs in: ~/.bashrc
// for bash and ~/.zshrc for everything else.
func ShellRCPath(e env.Env) (string, error) {
	home, err := e.HomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving shell rc file: %w", err)
	}
	rc := ".zshrc"
	if shellOrFallback(e) == "bash" {
		rc = ".bashrc"
	}
	return filepath.Join(home, rc), nil
}

// CheckDirenvHook reports whether the shell RC file mentions
// "direnv hook <shell>". A missing RC file counts as not configured.
func CheckDirenvHook(e env.Env) (bool, error) {
	path, err := ShellRCPath(e)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Contains(string(data), "direnv hook "+shellOrFallback(e)), nil
}

// DirenvHookLine returns the line to add to the RC file.
func DirenvHookLine(e env.Env) string {
	return fmt.Sprintf(`eval "$(direnv hook %s)"`, shellOrFallback(e))
}
