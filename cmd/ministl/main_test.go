// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with quiet logging and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func TestVectorCommand(t *testing.T) {
	out, err := run(t, "vector", "--count", "10")
	require.NoError(t, err)
	require.Contains(t, out, "reserve(10): len=0 cap=10")
	require.Contains(t, out, "erase(2):   [1, 2, 3, 4]")
}

func TestGrowthCommand(t *testing.T) {
	out, err := run(t, "growth", "--count", "5")
	require.NoError(t, err)
	require.Contains(t, out, "pushes=5 relocations=7")
}

func TestNDArrayAndListCommands(t *testing.T) {
	out, err := run(t, "ndarray")
	require.NoError(t, err)
	require.Contains(t, out, "sum=78 mean=6.5 min=1 max=12")

	out, err = run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "doubly: [5 10 20 30]")
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ministl.toml")
	require.NoError(t, os.WriteFile(path, []byte("[demo]\nmatrix-rows = 2\nmatrix-cols = 2\n"), 0o644))

	out, err := run(t, "--config", path, "config")
	require.NoError(t, err)
	require.Contains(t, out, "matrix_rows: 2")
	require.Contains(t, out, "level: error", "flags override the file")

	out, err = run(t, "--config", path, "ndarray")
	require.NoError(t, err)
	require.Contains(t, out, "[1, 2]\n[3, 4]\n")
}

func TestBadFlags(t *testing.T) {
	_, err := run(t, "--log-format", "xml", "list")
	require.Error(t, err)

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "nope.ini"), "list")
	require.Error(t, err)
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "ministl.log")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"--log-file", logPath, "--log-format", "json", "growth", "--count", "3"})
	require.NoError(t, cmd.Execute())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"growth finished"`)
}
