package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-mdx/pkg/interfaces"
)

const (
	rootModule     = "mdx"
	renderModule   = "mdx.render"
	compilerModule = "mdx.compiler"
	markdownModule = "mdx.markdown"
)

const (
	fieldDocumentPath = "document_path"
	fieldDocumentID   = "document_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RenderLogger returns the logger namespace reserved for the render pipeline.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// CompilerLogger returns the logger namespace reserved for tree-to-view compilation.
func CompilerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, compilerModule)
}

// MarkdownLogger returns the logger namespace reserved for markup compilation.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithDocumentContext enriches logger with the document path and id. Empty
// values are ignored.
func WithDocumentContext(logger interfaces.Logger, path, id string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDocumentPath] = trimmed
	}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldDocumentID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
