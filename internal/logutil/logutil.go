// SPDX-License-Identifier: MIT

// Package logutil builds the zap loggers used by the ministl command and
// demos. Library packages never log.
package logutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Supported LogConfig.Format values.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrBadLogConfig indicates an unknown level or format.
var ErrBadLogConfig = errors.New("logutil: invalid log config")

// LogConfig describes where and how to log.
//   - Level: debug, info, warn, error (zap level names).
//   - Format: console or json.
//   - Filename: empty logs to stderr; otherwise the file rotates through
//     lumberjack using MaxSize (MB), MaxDays and MaxBackups.
type LogConfig struct {
	Level      string `toml:"level" yaml:"level"`
	Format     string `toml:"format" yaml:"format"`
	Filename   string `toml:"filename" yaml:"filename"`
	MaxSize    int    `toml:"max-size" yaml:"max_size"`
	MaxDays    int    `toml:"max-days" yaml:"max_days"`
	MaxBackups int    `toml:"max-backups" yaml:"max_backups"`
}

// DefaultLogConfig logs info and above to stderr in console format.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:      zapcore.InfoLevel.String(),
		Format:     FormatConsole,
		MaxSize:    64,
		MaxDays:    7,
		MaxBackups: 3,
	}
}

// Validate checks Level and Format.
func (cfg *LogConfig) Validate() error {
	if _, err := zapcore.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("level %q: %w", cfg.Level, ErrBadLogConfig)
	}
	if cfg.Format != FormatConsole && cfg.Format != FormatJSON {
		return fmt.Errorf("format %q: %w", cfg.Format, ErrBadLogConfig)
	}

	return nil
}

// Build returns a logger writing to the configured sink.
func (cfg *LogConfig) Build(opts ...zap.Option) (*zap.Logger, error) {
	return cfg.BuildWithWriter(cfg.getSyncer(), opts...)
}

// BuildWithWriter returns a logger writing to w regardless of Filename.
func (cfg *LogConfig) BuildWithWriter(w io.Writer, opts ...zap.Option) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", cfg.Level, ErrBadLogConfig)
	}
	core := zapcore.NewCore(getLoggerEncoder(cfg.Format), zapcore.AddSync(w), level)
	opts = append([]zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}, opts...)

	return zap.New(core, opts...), nil
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer { return zapcore.Lock(os.Stderr) }

func getLoggerEncoder(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == FormatJSON {
		return zapcore.NewJSONEncoder(encCfg)
	}
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(encCfg)
}
