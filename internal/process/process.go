// Package process runs external programs and captures their output.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Result holds the outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner runs a program to completion. A non-zero exit status is reported
// in Result, not as an error; err is reserved for failures to start or
// wait on the process.
type Runner interface {
	Run(ctx context.Context, program string, args []string, cwd string) (Result, error)
}

// SubprocessError reports a program that exited with a non-zero status.
type SubprocessError struct {
	Program  string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *SubprocessError) Error() string {
	cmdline := strings.TrimSpace(e.Program + " " + strings.Join(e.Args, " "))
	stderr := strings.TrimSpace(e.Stderr)
	if stderr == "" {
		return fmt.Sprintf("%s failed (exit %d)", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %s", cmdline, stderr)
}

// Check converts a non-zero Result into a *SubprocessError.
func Check(program string, args []string, res Result) error {
	if res.ExitCode == 0 {
		return nil
	}
	return &SubprocessError{Program: program, Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr}
}

// Exec is a Runner backed by os/exec.
type Exec struct {
	Logger *log.Logger
}

// NewExec creates an Exec runner. A nil logger discards debug output.
func NewExec(logger *log.Logger) *Exec {
	return &Exec{Logger: logger}
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, program string, args []string, cwd string) (Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = cwd
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("running %s: %w", program, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	if e.Logger != nil {
		e.Logger.Debug("subprocess finished", "program", program, "args", args, "cwd", cwd, "exit", res.ExitCode)
	}
	return res, nil
}
