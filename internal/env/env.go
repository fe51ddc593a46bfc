// Package env is the single place tmuxify reads process-wide state:
// environment variables, the home directory and PATH lookups.
package env

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Env abstracts the process environment so the validator and placement
// resolver can be tested without touching the real one.
type Env interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
	// LookPath resolves a binary name on PATH.
	LookPath(name string) (string, error)
}

// Getenv returns the value of key, or "" if unset.
func Getenv(e Env, key string) string {
	v, _ := e.LookupEnv(key)
	return v
}

type osEnv struct{}

// OS returns an Env backed by the real process environment.
func OS() Env {
	return osEnv{}
}

func (osEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (osEnv) HomeDir() (string, error)            { return os.UserHomeDir() }
func (osEnv) LookPath(name string) (string, error) { return exec.LookPath(name) }

// Map is an in-memory Env. Vars holds the environment, Home the home
// directory (empty means undeterminable) and Bins the binaries that
// resolve on PATH, mapped to their full path.
type Map struct {
	Vars map[string]string
	Home string
	Bins map[string]string
}

// ErrNoHome is returned by Map.HomeDir when Home is empty.
var ErrNoHome = errors.New("home directory not set")

func (m *Map) LookupEnv(key string) (string, bool) {
	v, ok := m.Vars[key]
	return v, ok
}

func (m *Map) HomeDir() (string, error) {
	if m.Home == "" {
		return "", ErrNoHome
	}
	return m.Home, nil
}

func (m *Map) LookPath(name string) (string, error) {
	if p, ok := m.Bins[name]; ok {
		return p, nil
	}
	if strings.Contains(name, "/") {
		return "", &exec.Error{Name: name, Err: os.ErrNotExist}
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
