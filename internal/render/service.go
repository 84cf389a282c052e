// Package render runs the full pipeline: frontmatter split, markup
// compilation, tree parsing and tree-to-view compilation.
package render

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-mdx/internal/compiler"
	"github.com/goliatone/go-mdx/internal/frontmatter"
	"github.com/goliatone/go-mdx/internal/identity"
	"github.com/goliatone/go-mdx/internal/logging"
	"github.com/goliatone/go-mdx/internal/markdown"
	"github.com/goliatone/go-mdx/internal/markup"
	"github.com/goliatone/go-mdx/pkg/interfaces"
	"github.com/goliatone/go-mdx/pkg/view"
)

// Document is the full result of rendering one source.
type Document struct {
	ID          uuid.UUID
	Frontmatter frontmatter.Frontmatter
	Slug        string
	Body        []byte
	Markup      []byte
	Fragment    view.Fragment
	Unknown     []string
}

// Service renders sources. It is safe for concurrent use once built.
type Service struct {
	markup      interfaces.MarkupCompiler
	compiler    *compiler.Compiler
	validator   *frontmatter.Validator
	required    bool
	strict      bool
	provider    interfaces.LoggerProvider
	logger      interfaces.Logger
	markdownLog interfaces.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLoggerProvider sets the provider for the render, compiler and
// markdown module loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

// WithMarkupCompiler replaces the goldmark compiler.
func WithMarkupCompiler(c interfaces.MarkupCompiler) Option {
	return func(s *Service) {
		if c != nil {
			s.markup = c
		}
	}
}

// WithFrontmatterValidator validates every frontmatter block with v.
func WithFrontmatterValidator(v *frontmatter.Validator) Option {
	return func(s *Service) {
		s.validator = v
	}
}

// WithRequireFrontmatter rejects documents without a frontmatter block.
func WithRequireFrontmatter(required bool) Option {
	return func(s *Service) {
		s.required = required
	}
}

// WithStrict turns unknown elements into ErrUnknownElement.
func WithStrict(strict bool) Option {
	return func(s *Service) {
		s.strict = strict
	}
}

// NewService builds a render service with the goldmark compiler and no
// frontmatter schema unless options say otherwise.
func NewService(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.markup == nil {
		s.markup = markdown.NewCompiler()
	}
	s.logger = logging.RenderLogger(s.provider)
	s.markdownLog = logging.MarkdownLogger(s.provider)
	s.compiler = compiler.New(
		compiler.WithLogger(logging.CompilerLogger(s.provider)),
		compiler.WithStrict(s.strict),
	)
	return s
}

// Render returns only the view fragment of source.
func (s *Service) Render(ctx context.Context, source []byte, registry compiler.ComponentLookup) (view.Fragment, error) {
	doc, err := s.RenderDocument(ctx, source, registry)
	if err != nil {
		return nil, err
	}
	return doc.Fragment, nil
}

// RenderDocument renders source and returns every intermediate product.
// No fragment is produced when any stage fails.
func (s *Service) RenderDocument(ctx context.Context, source []byte, registry compiler.ComponentLookup) (*Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, contextError(err)
	}

	id := identity.DocumentUUID(source)
	logger := logging.WithDocumentContext(s.logger.WithContext(ctx), "", id.String())
	logger.Debug("mdx.render.start", "bytes", len(source))

	doc, err := s.render(ctx, id, source, registry)
	if err != nil {
		logger.Error("mdx.render.failed", "error", err)
		return nil, err
	}

	logger.Debug("mdx.render.complete",
		"document_id", id.String(),
		"elements", len(doc.Fragment),
		"unknown", len(doc.Unknown),
	)
	return doc, nil
}

func (s *Service) render(ctx context.Context, id uuid.UUID, source []byte, registry compiler.ComponentLookup) (*Document, error) {
	meta, body, err := frontmatter.Split(source)
	if err != nil {
		return nil, frontmatterError(err)
	}
	if meta == nil && s.required {
		return nil, frontmatterError(ErrFrontmatterMissing)
	}
	if err := s.validator.Validate(meta); err != nil {
		return nil, frontmatterError(err)
	}

	compiled, err := s.markup.Compile(body)
	if err != nil {
		return nil, markupCompileError(err)
	}
	s.markdownLog.WithContext(ctx).Trace("mdx.markdown.compiled", "body_bytes", len(body), "markup_bytes", len(compiled))

	tree, err := markup.Parse(compiled)
	if err != nil {
		return nil, markupParseError(err)
	}

	fragment, stats, err := s.compiler.Compile(tree, registry)
	if err != nil {
		return nil, unknownElementError(err)
	}

	return &Document{
		ID:          id,
		Frontmatter: meta,
		Slug:        frontmatter.Slug(meta),
		Body:        body,
		Markup:      compiled,
		Fragment:    fragment,
		Unknown:     stats.Unknown,
	}, nil
}
