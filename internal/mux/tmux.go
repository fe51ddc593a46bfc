// Package mux inspects the tmux context tmuxify runs in.
package mux

import (
	"context"
	"strings"

	"github.com/timvw/tmuxify/internal/env"
	"github.com/timvw/tmuxify/internal/process"
)

// Tmux answers questions about the surrounding tmux session.
type Tmux struct {
	Env    env.Env
	Runner process.Runner
}

// NewTmux creates a Tmux using the given environment and runner.
func NewTmux(e env.Env, r process.Runner) *Tmux {
	return &Tmux{Env: e, Runner: r}
}

// Inside reports whether the process runs inside tmux ($TMUX is set).
func (t *Tmux) Inside() bool {
	_, ok := t.Env.LookupEnv("TMUX")
	return ok
}

// CurrentSession returns the name of the attached session via
// `tmux display-message -p #S`. Any failure yields ok == false.
func (t *Tmux) CurrentSession(ctx context.Context) (name string, ok bool) {
	res, err := t.Runner.Run(ctx, "tmux", []string{"display-message", "-p", "#S"}, "")
	if err != nil || res.ExitCode != 0 {
		return "", false
	}
	name = strings.TrimSpace(res.Stdout)
	return name, name != ""
}
