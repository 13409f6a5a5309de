package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing informational entries to stdout and warnings and
// errors to stderr.
func New(level string) (*zap.Logger, error) {
	return NewWithWriters(level, os.Stdout, os.Stderr)
}

// NewWithWriters is New with explicit destinations.
func NewWithWriters(level string, stdout, stderr io.Writer) (*zap.Logger, error) {
	threshold, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderCfg)

	info := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= threshold && l < zapcore.WarnLevel
	})
	problems := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= threshold && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(stdout), info),
		zapcore.NewCore(encoder, zapcore.AddSync(stderr), problems),
	)
	return zap.New(core), nil
}
