// Package logging wires zap into the browser: one console-encoded core
// feeds the in-app log pane, an optional second core appends to a file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

func paneEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	// The pane is narrow; caller and stacktraces only clutter it.
	cfg.CallerKey = ""
	cfg.StacktraceKey = ""
	return cfg
}

// New builds a logger writing to the given pane writer and, when
// filePath is non-empty, to that file as well. The file is created
// with its parent directory if needed.
func New(pane io.Writer, filePath string) (*zap.Logger, error) {
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(paneEncoderConfig()),
			zapcore.AddSync(pane),
			zap.InfoLevel,
		),
	}

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(f),
			zap.DebugLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}

// SetGlobal installs the logger returned by L().
func SetGlobal(logger *zap.Logger) {
	globalLogger = logger
}

// L returns the global logger, falling back to a no-op one so code can
// log before the UI exists.
func L() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}
