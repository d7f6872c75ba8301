// Package logging builds the zap loggers used by slnstart. Everything is
// written to stderr so command output on stdout stays clean.
package logging

import (
	"fmt"

	"github.com/jacksmith/slnstart/internal/workspace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON logger that drops entries below level
// ("debug", "info", "warn" or "error"). An empty level means info.
func New(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

// NewVerbose returns a colored console logger at debug level.
func NewVerbose() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// GuardObserver returns a workspace observer that logs one debug line per
// examined entity, e.g. "/src/App.sln : Saved".
func GuardObserver(logger *zap.Logger) workspace.Observer {
	return func(c workspace.Check) {
		logger.Debug(c.String(),
			zap.String("kind", string(c.Kind)),
			zap.Bool("clean", c.Clean))
	}
}
