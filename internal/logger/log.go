package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/willythepapi/FITART-v1/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init installs a JSON slog handler as the process-wide logger. The stdlib
// log package is routed through it as well.
func Init(cfg config.LogConfig) {
	InitConsole(cfg, os.Stdout)
}

// InitConsole is Init with console output sent to console instead of stdout.
func InitConsole(cfg config.LogConfig, console io.Writer) {
	h := slog.NewJSONHandler(writer(cfg, console), &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	slog.SetDefault(slog.New(h))
	Info("logger initialized", "level", cfg.Level, "file", cfg.File)
}

// Writer builds the log sink described by cfg.
func Writer(cfg config.LogConfig) io.Writer {
	return writer(cfg, os.Stdout)
}

func writer(cfg config.LogConfig, console io.Writer) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, console)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, console)
	}
	return io.MultiWriter(writers...)
}

func Info(msg string, args ...any) { slog.Info(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
