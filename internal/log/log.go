// Package log provides the debug logger. Logging is off by default
// and enabled with DDESK_DEBUG=1; output goes to ~/.ddesk/debug.log
// with rotation, never to the terminal the TUI owns.
package log

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu          sync.Mutex
	logger      *zap.Logger
	enabled     bool
	initialized bool
)

// Init initializes the logger based on the DDESK_DEBUG env var.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}
	initialized = true

	if os.Getenv("DDESK_DEBUG") != "1" {
		logger = zap.NewNop()
		return nil
	}
	enabled = true

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	logDir := filepath.Join(homeDir, ".ddesk")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	writeSyncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "debug.log"),
		MaxSize:    20, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	})

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		writeSyncer,
		zapcore.DebugLevel,
	)

	logger = zap.New(core, zap.AddCaller())
	logger.Info("Debug logging started")
	return nil
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Logger returns the underlying zap logger.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Sync flushes any buffered log entries.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return logger.Sync()
	}
	return nil
}
