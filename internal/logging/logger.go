package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how much the application logs.
type Options struct {
	// Path is the log file. Logging is disabled when empty.
	Path  string
	Level string

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultPath returns ~/.formsheet/logs/app.log.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".formsheet", "logs", "app.log"), nil
}

// ParseLevel maps a level name onto a zap level. Unknown names yield info.
func ParseLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a file-only JSON logger with rotation so terminal sessions stay
// clean. The returned func flushes buffered entries.
func New(opts Options) (*zap.Logger, func(), error) {
	if strings.TrimSpace(opts.Path) == "" {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	rotate := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, 2), // megabytes
		MaxBackups: orDefault(opts.MaxBackups, 5),
		MaxAge:     orDefault(opts.MaxAgeDays, 15), // days
		Compress:   true,
	}
	fileWriter := zapcore.AddSync(rotate)

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	encoder := zapcore.NewJSONEncoder(cfg.EncoderConfig)

	core := zapcore.NewCore(encoder, fileWriter, ParseLevel(opts.Level))
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, func() {
		_ = logger.Sync()
		_ = rotate.Close()
	}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
