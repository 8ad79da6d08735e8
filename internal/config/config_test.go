// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, DefaultVectorCount, cfg.Demo.VectorCount)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ministl.yaml")
	body := "log:\n  level: debug\n  format: json\ndemo:\n  vector_count: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, 7, cfg.Demo.VectorCount)
	require.Equal(t, DefaultGrowthCount, cfg.Demo.GrowthCount, "missing keys keep defaults")
}

func TestLoad_TOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ministl.toml")
	body := "[log]\nlevel = \"warn\"\n\n[demo]\nmatrix-rows = 5\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 5, cfg.Demo.MatrixRows)
	require.Equal(t, DefaultMatrixCols, cfg.Demo.MatrixCols)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ini := filepath.Join(dir, "ministl.ini")
	require.NoError(t, os.WriteFile(ini, []byte("x=1"), 0o644))
	_, err = Load(ini)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("demo:\n  growth_count: -3\n"), 0o644))
	_, err = Load(bad)
	require.ErrorIs(t, err, ErrInvalid)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("[demo\n"), 0o644))
	_, err = Load(broken)
	require.Error(t, err)
}

func TestValidate_ReportsFirstInvalidSize(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Demo.VectorCount = 0
	cfg.Demo.GrowthCount = -1
	cfg.Demo.MatrixRows = -2
	cfg.Demo.MatrixCols = 0

	for range 20 {
		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalid)
		require.Contains(t, err.Error(), "demo.vector_count = 0")
	}

	cfg.Demo.VectorCount = 1
	require.Contains(t, cfg.Validate().Error(), "demo.growth_count = -1")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Demo.GrowthCount = 42
	cfg.Log.Format = "json"

	for _, name := range []string{"out.yaml", "out.toml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(path, cfg))
		got, err := Load(path)
		require.NoError(t, err, name)
		require.Equal(t, cfg, got, name)
	}
	require.ErrorIs(t, Save(filepath.Join(t.TempDir(), "out.json"), cfg), ErrUnsupportedFormat)

	text, err := cfg.YAML()
	require.NoError(t, err)
	require.Contains(t, text, "growth_count: 42")
}
