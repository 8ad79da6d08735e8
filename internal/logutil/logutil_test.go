// SPDX-License-Identifier: MIT

package logutil

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"default", "info", FormatConsole, false},
		{"json debug", "debug", FormatJSON, false},
		{"bad level", "loud", FormatJSON, true},
		{"bad format", "info", "xml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultLogConfig()
			cfg.Level, cfg.Format = tt.level, tt.format
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadLogConfig)

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBuildWithWriter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := DefaultLogConfig()
	cfg.Format = FormatJSON
	logger, err := cfg.BuildWithWriter(&buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("grow", zap.Int("cap", 8))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "grow", entry["msg"])
	require.Equal(t, float64(8), entry["cap"])
	require.Equal(t, "info", entry["level"])
}

func TestBuildWithWriter_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := DefaultLogConfig()
	cfg.Level = "debug"
	logger, err := cfg.BuildWithWriter(&buf)
	require.NoError(t, err)
	logger.Debug("visible")
	require.Contains(t, buf.String(), "DEBUG")
	require.Contains(t, buf.String(), "visible")

	cfg.Level = "nope"
	_, err = cfg.BuildWithWriter(&buf)
	require.ErrorIs(t, err, ErrBadLogConfig)
}

func TestBuild_File(t *testing.T) {
	t.Parallel()

	cfg := DefaultLogConfig()
	cfg.Filename = filepath.Join(t.TempDir(), "ministl.log")
	logger, err := cfg.Build()
	require.NoError(t, err)
	logger.Info("to file")
	require.NoError(t, logger.Sync())
	require.FileExists(t, cfg.Filename)
}
