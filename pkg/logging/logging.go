// Package logging builds the service's slog.Logger on top of a zap core.
package logging

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New creates a slog.Logger writing through zap with the configured level and encoding.
// The returned sync function flushes buffered entries and should run at shutdown.
func New(cfg *Config) (*slog.Logger, func() error, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse level: %w", err)
	}

	core := zapcore.NewCore(encoder(cfg.Format), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))
	zl := zap.New(core)

	return slog.New(zapslog.NewHandler(zl.Core())), zl.Sync, nil
}

func encoder(format string) zapcore.Encoder {
	if format == "json" {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(ec)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}
