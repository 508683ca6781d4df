package logging

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger that writes to stderr at zap.WarnLevel, or
// zap.DebugLevel when verbose is true. Every logger is tagged with a fresh
// invocation ID so a single run's log lines can be correlated without a
// daemon's session concept.
func New(verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	return zap.New(core).With(zap.String("invocation_id", uuid.NewString()))
}

// Nop returns a logger that discards everything, for tests and library
// callers that don't want menucli's log output.
func Nop() *zap.Logger {
	return zap.NewNop()
}
