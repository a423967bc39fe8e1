package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
)

// LogConfig controls how the global logger is built.
type LogConfig struct {
	Level       string
	Development bool
	// OutputPaths defaults to stderr so generated SQL written to stdout stays clean.
	OutputPaths []string
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// InitLogger initializes the global sugared logger from lc.
func InitLogger(lc LogConfig) error {
	cfg := zap.NewProductionConfig()
	if lc.Development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(lc.Level))

	outputs := lc.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = []string{"stderr"}

	z, err := cfg.Build()
	if err != nil {
		return err
	}

	logger = z.Sugar()
	return nil
}

// SetLogger replaces the global logger. Tests use it with zap.NewNop or an observer core.
func SetLogger(l *zap.SugaredLogger) {
	logger = l
}

// L returns the global sugared logger.
// If InitLogger has not been called, it initializes at info level.
func L() *zap.SugaredLogger {
	if logger == nil {
		_ = InitLogger(LogConfig{Level: "info"})
	}
	return logger
}

// Sync flushes buffered log entries; errors from syncing stderr are ignored.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
