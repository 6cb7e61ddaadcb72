// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

type handler int

const (
	DevHandler handler = iota
	TextHandler
	JSONHandler
)

type Opt func(o *opts)

type opts struct {
	writer  io.Writer
	level   slog.Level
	handler handler
	noColor bool
}

func WithWriter(w io.Writer) Opt {
	return func(o *opts) { o.writer = w }
}

func WithLevel(l slog.Level) Opt {
	return func(o *opts) { o.level = l }
}

func WithHandler(h handler) Opt {
	return func(o *opts) { o.handler = h }
}

// New returns a logger configured from LOG_HANDLER and LOG_LEVEL, then opts.
// Logs go to stderr so they never mix with the verse on stdout.
func New(options ...Opt) *slog.Logger {
	o := &opts{
		writer:  os.Stderr,
		level:   ParseLevel(os.Getenv("LOG_LEVEL")),
		handler: parseHandler(os.Getenv("LOG_HANDLER")),
	}
	for _, apply := range options {
		apply(o)
	}
	o.noColor = !isTerminal(o.writer)

	switch o.handler {
	case JSONHandler:
		return slog.New(slog.NewJSONHandler(o.writer, &slog.HandlerOptions{Level: o.level}))
	case TextHandler:
		return slog.New(slog.NewTextHandler(o.writer, &slog.HandlerOptions{Level: o.level}))
	default:
		return slog.New(tint.NewHandler(o.writer, &tint.Options{
			Level:      o.level,
			TimeFormat: "[15:04:05.000]",
			NoColor:    o.noColor,
		}))
	}
}

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to warn so
// normal runs stay quiet.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func parseHandler(s string) handler {
	switch strings.ToLower(s) {
	case "json":
		return JSONHandler
	case "txt", "text":
		return TextHandler
	default:
		return DevHandler
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
