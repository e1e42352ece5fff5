// Package log provides the process-wide structured logger.
//
// The default logger is a no-op so library packages and tests can log freely
// without configuration. Binaries call InitConsole or InitFile at startup.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger = zap.NewNop().Sugar()

// L returns the current logger.
func L() *zap.SugaredLogger {
	return logger
}

// InitConsole logs to stderr. Used by short-lived CLI commands.
func InitConsole(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	logger = zap.New(core).Sugar()
	return nil
}

// InitFile logs to a rotated file. The terminal UI owns stdout and stderr,
// so it must log elsewhere.
func InitFile(level, filename string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10, // MB
		MaxBackups: 3,
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		lvl,
	)
	logger = zap.New(core).Sugar()
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("bad log level %q: %w", level, err)
	}
	return lvl, nil
}
