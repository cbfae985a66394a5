package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/secmon-lab/faultline/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger is the logging configuration shared by all commands
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns the CLI flags binding the logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level [debug, info, warn, error]",
			Value:       "info",
			Sources:     cli.EnvVars("FAULTLINE_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format [console, json]",
			Value:       "console",
			Sources:     cli.EnvVars("FAULTLINE_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Usage:       "Log output [stdout, stderr, or a file path]",
			Value:       "stderr",
			Sources:     cli.EnvVars("FAULTLINE_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

// Configure installs the process-wide logger and returns a closer for
// the log output.
func (x *Logger) Configure() (func(), error) {
	level, err := x.logLevel()
	if err != nil {
		return nil, err
	}

	w, closer, err := x.writer()
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch x.format {
	case "console":
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(w == os.Stdout || w == os.Stderr),
		)
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			// Detail options carry arbitrary caller context; redact
			// anything tagged as sensitive before it reaches the log.
			ReplaceAttr: masq.New(),
		})
	default:
		closer()
		return nil, goerr.Wrap(ErrInvalidLogFormat, "failed to configure logger",
			goerr.V(FormatKey, x.format))
	}

	logging.SetDefault(slog.New(handler))
	return closer, nil
}

func (x *Logger) logLevel() (slog.Level, error) {
	switch x.level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, goerr.Wrap(ErrInvalidLogLevel, "failed to configure logger",
			goerr.V(LevelKey, x.level))
	}
}

func (x *Logger) writer() (io.Writer, func(), error) {
	switch x.output {
	case "stdout", "-":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		f, err := os.OpenFile(x.output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file",
				goerr.V(PathKey, x.output))
		}
		return f, func() { _ = f.Close() }, nil
	}
}

// LogValue renders the configuration for startup logging
func (x *Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}
