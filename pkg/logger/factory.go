package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/fieldcrypt/pkg/environment"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// RedactedValue replaces the value of every sensitive attribute.
const RedactedValue = "[REDACTED]"

// DefaultSensitiveKeys are attribute keys whose values never reach the output.
var DefaultSensitiveKeys = []string{
	"key",
	"encryption_key",
	"secret",
	"password",
	"plaintext",
	"national_id",
	"envelope",
}

// Config is the LOG_* environment configuration. Empty fields keep whatever
// earlier options, such as WithEnvironment, selected.
type Config struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats so misconfiguration fails at startup.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) { c.format = FormatText }
}

func WithJSONFormatter() Option {
	return func(c *config) { c.format = FormatJSON }
}

// WithOutput sets custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithSensitiveKeys adds attribute keys to the redaction list.
// Matching is case-insensitive and applies inside groups too.
func WithSensitiveKeys(keys ...string) Option {
	return func(c *config) {
		for _, k := range keys {
			if k != "" {
				c.sensitive[strings.ToLower(k)] = struct{}{}
			}
		}
	}
}

// WithEnvironment applies per-environment defaults: text at debug level for
// development, JSON at info level otherwise.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		switch env {
		case environment.Production, environment.Staging:
			c.level = slog.LevelInfo
			c.format = FormatJSON
		default:
			c.level = slog.LevelDebug
			c.format = FormatText
		}
		c.attrs = append(c.attrs, slog.String("env", env.String()))
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

// WithConfig applies LOG_LEVEL and LOG_FORMAT. Empty or unknown levels keep
// the current level; an empty format keeps the current format.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		var lvl slog.Level
		if cfg.Level != "" && lvl.UnmarshalText([]byte(cfg.Level)) == nil {
			c.level = lvl
		}
		if cfg.Format != "" {
			WithFormat(Format(strings.ToLower(cfg.Format)))(c)
		}
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level     slog.Level
	format    Format
	output    io.Writer
	attrs     []slog.Attr
	sensitive map[string]struct{}
}

// defaultConfig provides production-safe defaults: JSON format with INFO level.
func defaultConfig() *config {
	c := &config{
		level:     slog.LevelInfo,
		format:    FormatJSON,
		output:    os.Stdout,
		sensitive: make(map[string]struct{}, len(DefaultSensitiveKeys)),
	}
	for _, k := range DefaultSensitiveKeys {
		c.sensitive[k] = struct{}{}
	}
	return c
}

// New creates a configured slog.Logger that redacts sensitive attributes.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: redactor(cfg.sensitive),
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

func redactor(sensitive map[string]struct{}) func([]string, slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		if _, ok := sensitive[strings.ToLower(a.Key)]; ok {
			return slog.String(a.Key, RedactedValue)
		}
		return a
	}
}
