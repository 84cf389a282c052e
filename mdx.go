// Package mdx renders Markdown documents with embedded component markers
// into view trees. Registered tag names become custom components; every
// other tag renders as its structural HTML equivalent.
package mdx

import (
	"context"
	"sync"

	"github.com/goliatone/go-mdx/internal/commands"
	rendercmd "github.com/goliatone/go-mdx/internal/commands/render"
	"github.com/goliatone/go-mdx/internal/components"
	"github.com/goliatone/go-mdx/internal/frontmatter"
	"github.com/goliatone/go-mdx/internal/render"
	"github.com/goliatone/go-mdx/pkg/interfaces"
	"github.com/goliatone/go-mdx/pkg/view"
)

// Components is the registry of custom components keyed by tag name.
type Components = components.Registry

// Props is the bundle every component receives.
type Props = components.Props

// Component renders a marker element.
type Component = components.Component

// ComponentFunc adapts a function to Component.
type ComponentFunc = components.ComponentFunc

// Document is the full render result.
type Document = render.Document

// Frontmatter is the decoded YAML block of a document.
type Frontmatter = frontmatter.Frontmatter

var (
	ErrFrontmatter        = render.ErrFrontmatter
	ErrFrontmatterMissing = render.ErrFrontmatterMissing
	ErrMarkupCompile      = render.ErrMarkupCompile
	ErrMarkupParse        = render.ErrMarkupParse
	ErrUnknownElement     = render.ErrUnknownElement
)

// NewComponents returns an empty registry.
func NewComponents() *Components {
	return components.NewRegistry()
}

// AddWithProps registers a component whose props are produced by adapter
// from the generic bundle.
func AddWithProps[P any](c *Components, name string, component func(P) view.Node, adapter func(Props) P) {
	components.AddWithProps(c, name, component, adapter)
}

var defaultService = sync.OnceValue(func() *render.Service {
	return render.NewService()
})

// Render renders source with the given components and default settings.
func Render(source string, registry *Components) (view.Fragment, error) {
	return defaultService().Render(context.Background(), []byte(source), registry)
}

// Option customises a Renderer.
type Option func(*options)

type options struct {
	provider interfaces.LoggerProvider
	markup   interfaces.MarkupCompiler
}

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) {
		o.provider = provider
	}
}

// WithMarkupCompiler replaces the goldmark based markup compiler.
func WithMarkupCompiler(c interfaces.MarkupCompiler) Option {
	return func(o *options) {
		o.markup = c
	}
}

// Renderer is a configured pipeline with its own component registry.
type Renderer struct {
	config     Config
	service    *render.Service
	components *Components
	provider   interfaces.LoggerProvider
}

// New validates cfg and builds a Renderer. Components declared in cfg are
// registered up front; more can be added through Components.
func New(cfg Config, opts ...Option) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	provider := o.provider
	if provider == nil {
		built, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	validator, err := frontmatter.NewValidator(cfg.Frontmatter.Schema)
	if err != nil {
		return nil, err
	}

	registry := components.NewRegistry()
	if err := components.RegisterDefinitions(registry, cfg.Components); err != nil {
		return nil, err
	}

	service := render.NewService(
		render.WithLoggerProvider(provider),
		render.WithMarkupCompiler(o.markup),
		render.WithFrontmatterValidator(validator),
		render.WithRequireFrontmatter(cfg.Frontmatter.Required),
		render.WithStrict(cfg.Compiler.Strict),
	)

	return &Renderer{
		config:     cfg,
		service:    service,
		components: registry,
		provider:   provider,
	}, nil
}

// Config returns the configuration the renderer was built with.
func (r *Renderer) Config() Config {
	return r.config
}

// Components returns the renderer's registry.
func (r *Renderer) Components() *Components {
	return r.components
}

// Render renders source to a view fragment.
func (r *Renderer) Render(ctx context.Context, source []byte) (view.Fragment, error) {
	return r.service.Render(ctx, source, r.components)
}

// RenderDocument renders source and returns frontmatter, slug, markup and
// fragment together.
func (r *Renderer) RenderDocument(ctx context.Context, source []byte) (*Document, error) {
	return r.service.RenderDocument(ctx, source, r.components)
}

// RenderFile reads and renders the document at path through the command
// layer. strict fails on unknown elements even when the renderer is lenient.
func (r *Renderer) RenderFile(ctx context.Context, path string, strict bool) (*Document, error) {
	var result *Document
	sink := func(_ context.Context, _ string, doc *render.Document) error {
		result = doc
		return nil
	}
	handler := rendercmd.NewRenderFileHandler(r.service, r.components, sink, commands.CommandLogger(r.provider, "render"))
	if err := handler.Execute(ctx, rendercmd.RenderFileCommand{Path: path, Strict: strict}); err != nil {
		return nil, err
	}
	return result, nil
}
