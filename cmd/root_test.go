package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"dry-run", "force", "project", "tmuxp-location", "session", "start-dir", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing persistent flag --%s", name)
		}
	}
}

func TestSubcommands(t *testing.T) {
	want := map[string]bool{"doctor": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "tmuxify "+Version {
		t.Errorf("version output = %q", got)
	}
}
