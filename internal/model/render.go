package model

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML renders the config in the tmuxp YAML schema with two-space
// indentation.
func (c Config) ToYAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encoding tmuxp config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding tmuxp config: %w", err)
	}
	return buf.String(), nil
}

// LoadPath returns the path tmuxp is pointed at from the .envrc. The home
// variant keeps a literal "~/" for the shell to expand.
func (c Config) LoadPath(location TmuxpLocation) string {
	if location == LocationHome {
		return fmt.Sprintf("~/.tmuxp/%s.yaml", c.SessionName)
	}
	return "./.tmuxp.yaml"
}

// GenerateEnvrc returns the direnv snippet that loads the session on
// directory entry when not already inside tmux.
func (c Config) GenerateEnvrc(location TmuxpLocation) string {
	return fmt.Sprintf("if [ -z \"$TMUX\" ]; then\n  tmuxp load %s\nfi\n", c.LoadPath(location))
}
