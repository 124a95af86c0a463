// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.RWMutex
	defaultLog   *zap.Logger
	sugared      *zap.SugaredLogger
	atomicLevel  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	outputCloser io.Closer
)

// Init configures the package logger from cfg. It may be called again to
// reconfigure; the previous output is closed.
func Init(cfg Config) error {
	cfg.process()

	out, closer, err := openOutput(cfg.LogFilePath)
	if err != nil {
		return err
	}
	return initWithWriter(cfg, out, closer)
}

// InitWriter is like Init but logs to w regardless of cfg.LogFilePath.
func InitWriter(cfg Config, w io.Writer) error {
	cfg.process()
	return initWithWriter(cfg, zapcore.AddSync(w), nil)
}

func initWithWriter(cfg Config, out zapcore.WriteSyncer, closer io.Closer) error {
	atomicLevel.SetLevel(cfg.level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), out, atomicLevel)
	if cfg.hasFilters() {
		core = newFilteringCore(core, &cfg)
	}

	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	mu.Lock()
	old := outputCloser
	if defaultLog != nil {
		_ = defaultLog.Sync()
	}
	defaultLog = l
	sugared = l.Sugar()
	outputCloser = closer
	mu.Unlock()

	if old != nil {
		_ = old.Close()
	}

	sugared.Debugf("Logger initialized (level %s)", cfg.level)
	return nil
}

// openOutput resolves the configured log path. Empty discards, "-" is stderr.
func openOutput(path string) (zapcore.WriteSyncer, io.Closer, error) {
	switch path {
	case "":
		return zapcore.AddSync(io.Discard), nil, nil
	case "-":
		return zapcore.Lock(os.Stderr), nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file '%s': %w", path, err)
	}
	return zapcore.Lock(f), f, nil
}

// Close flushes and closes the current output.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if defaultLog != nil {
		_ = defaultLog.Sync()
	}
	if outputCloser != nil {
		_ = outputCloser.Close()
		outputCloser = nil
	}
	defaultLog = zap.NewNop()
	sugared = defaultLog.Sugar()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	s := sugared
	mu.RUnlock()
	if s == nil {
		return zap.NewNop().Sugar()
	}
	return s
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

// DebugTagf logs a debug message carrying a tag that the tag filters match against.
func DebugTagf(tag string, format string, args ...interface{}) {
	s := current()
	if !atomicLevel.Enabled(zapcore.DebugLevel) {
		return
	}
	s.Desugar().Debug(fmt.Sprintf(format, args...), zap.String(tagKey, tag))
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	current().Infof(format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	current().Errorf(format, args...)
}

// Fatalf logs an error message, flushes and exits.
func Fatalf(format string, args ...interface{}) {
	current().Errorf(format, args...)
	Close()
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *zap.Logger {
	return current().Desugar()
}
