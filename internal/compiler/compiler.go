// Package compiler turns a markup tree into host view nodes, dispatching
// registered tag names to custom components and everything else to the
// structural element table.
package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mdx/internal/components"
	"github.com/goliatone/go-mdx/internal/logging"
	"github.com/goliatone/go-mdx/internal/markup"
	"github.com/goliatone/go-mdx/pkg/interfaces"
	"github.com/goliatone/go-mdx/pkg/view"
)

// ErrUnknownElement is returned in strict mode for tags that are neither
// registered nor structural.
var ErrUnknownElement = errors.New("compiler: unknown element")

// ComponentLookup resolves custom components by tag name.
type ComponentLookup interface {
	Lookup(name string) (components.Component, bool)
}

// Stats summarises one compilation.
type Stats struct {
	Elements   int
	Components int
	Unknown    []string
}

// Compiler walks markup trees. It holds no per-call state and can be shared.
type Compiler struct {
	elements map[string]Builder
	logger   interfaces.Logger
	strict   bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the logger used for unknown element diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Compiler) {
		if logger == nil {
			c.logger = logging.NoOp()
			return
		}
		c.logger = logger
	}
}

// WithStrict makes unknown elements fail the compilation.
func WithStrict(strict bool) Option {
	return func(c *Compiler) {
		c.strict = strict
	}
}

// WithElements replaces the structural element table.
func WithElements(elements map[string]Builder) Option {
	return func(c *Compiler) {
		if elements != nil {
			c.elements = elements
		}
	}
}

// New builds a compiler over StructuralElements.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		elements: StructuralElements,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile renders every top-level element of doc in order. Top-level text
// and comments are skipped. Unknown elements render as view.Empty and are
// logged; in strict mode the first one is also returned as an error.
func (c *Compiler) Compile(doc *markup.Document, registry ComponentLookup) (view.Fragment, Stats, error) {
	s := &session{compiler: c, registry: registry}

	fragment := view.Fragment{}
	for _, el := range doc.Elements() {
		fragment = append(fragment, s.element(el))
	}

	if s.err != nil {
		return nil, s.stats, s.err
	}
	return fragment, s.stats, nil
}

func (c *Compiler) builder(name string) (Builder, bool) {
	if builder, ok := c.elements[name]; ok {
		return builder, true
	}
	builder, ok := c.elements[strings.ToLower(name)]
	return builder, ok
}

type session struct {
	compiler *Compiler
	registry ComponentLookup
	stats    Stats
	err      error
}

func (s *session) element(el *markup.Element) view.Node {
	children := s.children(el.Children)

	if s.registry != nil {
		if component, ok := s.registry.Lookup(el.Name); ok {
			s.stats.Components++
			node := component.Render(components.Props{
				ID:         el.ID,
				Classes:    append([]string(nil), el.Classes...),
				Attributes: append(markup.Attributes(nil), el.Attributes...),
				Children:   children,
			})
			if node == nil {
				return view.Empty{}
			}
			return node
		}
	}

	builder, ok := s.compiler.builder(el.Name)
	if !ok {
		s.stats.Unknown = append(s.stats.Unknown, el.Name)
		s.compiler.logger.Warn("mdx.compiler.unknown_element", "element", el.Name)
		if s.compiler.strict && s.err == nil {
			s.err = fmt.Errorf("%w: <%s>", ErrUnknownElement, el.Name)
		}
		return view.Empty{}
	}

	s.stats.Elements++
	return structural(builder(), el, children)
}

func (s *session) children(nodes []markup.Node) view.Fragment {
	out := make(view.Fragment, 0, len(nodes))
	for _, node := range nodes {
		switch typed := node.(type) {
		case *markup.Element:
			out = append(out, s.element(typed))
		case *markup.Text:
			out = append(out, view.Text(typed.Data))
		}
	}
	return out
}

// structural copies id, valued attributes and classes onto el and appends
// the children in order.
func structural(el *view.Element, source *markup.Element, children view.Fragment) *view.Element {
	if source.ID != "" {
		el.SetID(source.ID)
	}
	for _, attr := range source.Attributes {
		if !attr.HasValue {
			continue
		}
		el.SetAttr(attr.Name, attr.Value)
	}
	if len(source.Classes) > 0 {
		el.SetClass(strings.Join(source.Classes, " "))
	}
	for _, child := range children {
		el.Append(child)
	}
	return el
}
