// Package charm adapts github.com/charmbracelet/log to the mdx logging
// contract. It is the default provider for the command line tool.
package charm

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-mdx/internal/logging"
	"github.com/goliatone/go-mdx/pkg/interfaces"
)

// Config controls the charm logger.
type Config struct {
	Writer    io.Writer
	Level     string
	Format    string
	AddSource bool
}

// Provider hands out prefixed charm loggers per module.
type Provider struct {
	root *log.Logger
}

var _ interfaces.LoggerProvider = (*Provider)(nil)

// NewProvider builds the root charm logger. Format is text (default),
// logfmt or json.
func NewProvider(cfg Config) (*Provider, error) {
	writer := cfg.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := log.InfoLevel
	if trimmed := strings.TrimSpace(cfg.Level); trimmed != "" {
		switch trimmed = strings.ToLower(trimmed); trimmed {
		case "trace":
			trimmed = "debug"
		case "warning":
			trimmed = "warn"
		}
		parsed, err := log.ParseLevel(trimmed)
		if err != nil {
			return nil, fmt.Errorf("charm: %w", err)
		}
		level = parsed
	}

	var formatter log.Formatter
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text", "console", "pretty":
		formatter = log.TextFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("charm: unsupported format %q", cfg.Format)
	}

	root := log.NewWithOptions(writer, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: level == log.DebugLevel,
		ReportCaller:    cfg.AddSource,
		TimeFormat:      time.DateTime,
	})
	return &Provider{root: root}, nil
}

// GetLogger returns a logger prefixed with name.
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}
	if name = strings.TrimSpace(name); name == "" {
		return &adapter{inner: p.root}
	}
	return &adapter{inner: p.root.WithPrefix(name)}
}

type adapter struct {
	inner *log.Logger
	ctx   context.Context
}

var _ interfaces.FieldsLogger = (*adapter)(nil)

// Trace maps to debug; charm has no trace level.
func (l *adapter) Trace(msg string, args ...any) { l.log(log.DebugLevel, msg, args) }
func (l *adapter) Debug(msg string, args ...any) { l.log(log.DebugLevel, msg, args) }
func (l *adapter) Info(msg string, args ...any)  { l.log(log.InfoLevel, msg, args) }
func (l *adapter) Warn(msg string, args ...any)  { l.log(log.WarnLevel, msg, args) }
func (l *adapter) Error(msg string, args ...any) { l.log(log.ErrorLevel, msg, args) }

// Fatal writes at fatal level without exiting the process.
func (l *adapter) Fatal(msg string, args ...any) { l.log(log.FatalLevel, msg, args) }

func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	return &adapter{inner: l.inner.With(keyvals(fields)...), ctx: l.ctx}
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	return &adapter{inner: l.inner, ctx: ctx}
}

func (l *adapter) log(level log.Level, msg string, args []any) {
	if fields := logging.ContextFields(l.ctx); len(fields) > 0 {
		args = append(keyvals(fields), args...)
	}
	l.inner.Log(level, msg, args...)
}

func keyvals(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		out = append(out, key, fields[key])
	}
	return out
}
