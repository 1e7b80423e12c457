package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs.
	FormatText Format = "text"
)

// Settings is the environment-driven logger configuration.
type Settings struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// SettingsFromEnv parses Settings from the process environment.
func SettingsFromEnv() (Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("logger settings: %w", err)
	}
	return s, nil
}

// Option configures logger creation.
type Option func(*options)

type options struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets output format.
// Panics for unknown formats: a misconfigured logger should stop startup.
func WithFormat(f Format) Option {
	return func(o *options) {
		switch f {
		case FormatJSON, FormatText:
			o.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(o *options) { o.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(o *options) { o.format = FormatJSON }
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithSettings applies level and format from s.
// Unknown levels fall back to info; unknown formats panic like WithFormat.
func WithSettings(s Settings) Option {
	return func(o *options) {
		o.level = parseLevel(s.Level)
		if s.Format != "" {
			WithFormat(s.Format)(o)
		}
	}
}

// WithDevelopment uses text output at debug level.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = FormatText
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
	}
}

// WithProduction uses JSON output at info level.
func WithProduction(service string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = FormatJSON
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
	}
}

// New creates a configured slog.Logger. Defaults to JSON at info level on stdout.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.format == FormatText {
		handler = slog.NewTextHandler(o.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}

	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
