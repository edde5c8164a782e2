package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// runCommand executes the CLI with a config path that does not exist, so
// every test runs against the built-in defaults.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	missingConfig := filepath.Join(t.TempDir(), "no-config.toml")
	full := append([]string{"--config", missingConfig}, args...)

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(full)

	err := cmd.Execute()
	return out.String(), err
}
