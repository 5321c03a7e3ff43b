// Package logutil sets up the process logger.
package logutil

import (
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup builds a logger writing to stderr and installs it as zap's global logger.
// level is one of debug, info, warn, error; format is "console" or "json".
// The returned function restores the previous global logger.
func Setup(level, format string) (*zap.Logger, func(), error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, nil, errors.Errorf("invalid log level=%v", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch strings.ToLower(format) {
	case "json":
		cfg.Encoding = "json"
	case "", "console", "text":
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	default:
		return nil, nil, errors.Errorf("invalid log format=%v", format)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	restore := zap.ReplaceGlobals(logger)
	return logger, func() {
		logger.Sync()
		restore()
	}, nil
}
