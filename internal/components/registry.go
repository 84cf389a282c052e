package components

import (
	"sort"
	"sync"

	"github.com/goliatone/go-mdx/internal/markup"
	"github.com/goliatone/go-mdx/pkg/view"
)

// Props is the normalized bundle every custom component receives. Children
// are built before the component runs and are passed by value.
type Props struct {
	ID         string
	Classes    []string
	Attributes markup.Attributes
	Children   view.Fragment
}

// Component renders a custom tag.
type Component interface {
	Render(props Props) view.Node
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(props Props) view.Node

// Render implements Component.
func (f ComponentFunc) Render(props Props) view.Node {
	return f(props)
}

// Registry maps tag names to components. Names are matched exactly and a
// later registration replaces an earlier one. The registry is safe for
// concurrent reads; registration is expected to finish before rendering.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Component
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{components: make(map[string]Component)}
}

// Register stores component under name. It panics on an empty name or a nil
// component.
func (r *Registry) Register(name string, component Component) {
	if name == "" {
		panic("components: name cannot be empty")
	}
	if component == nil {
		panic("components: component cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = component
}

// Add registers a component that takes no props. The bundle is discarded at
// dispatch time.
func (r *Registry) Add(name string, component func() view.Node) {
	if component == nil {
		panic("components: component cannot be nil")
	}
	r.Register(name, ComponentFunc(func(Props) view.Node {
		return component()
	}))
}

// AddWithProps registers a component with its own props type. adapter maps the
// normalized bundle onto P before component runs.
func AddWithProps[P any](r *Registry, name string, component func(P) view.Node, adapter func(Props) P) {
	if component == nil || adapter == nil {
		panic("components: component and adapter cannot be nil")
	}
	r.Register(name, ComponentFunc(func(props Props) view.Node {
		return component(adapter(props))
	}))
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (Component, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	component, ok := r.components[name]
	return component, ok
}

// Remove deletes the component registered under name.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.components, name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered components.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.components)
}
