// Package view is the host-side node model the MDX pipeline renders into.
// Nodes are plain values: elements carry a tag, an id, ordered attributes and
// children; text, fragments and the empty node complete the set. Hosts mount
// them directly or serialize them with Render.
package view

import "strings"

// Node is any renderable unit.
type Node interface {
	isNode()
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a structural node such as <h1> or <div>.
type Element struct {
	Tag      string
	ID       string
	Attrs    []Attr
	Children []Node
}

// Text is a text leaf. It is escaped on serialization.
type Text string

// Fragment groups sibling nodes without a wrapping element.
type Fragment []Node

// Empty renders nothing.
type Empty struct{}

func (*Element) isNode() {}
func (Text) isNode()     {}
func (Fragment) isNode() {}
func (Empty) isNode()    {}

// NewElement starts an element builder for tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetID sets the element id.
func (e *Element) SetID(id string) *Element {
	e.ID = id
	return e
}

// SetAttr sets name to value, replacing a previous value for the same name.
// The id attribute is routed to SetID.
func (e *Element) SetAttr(name, value string) *Element {
	if name == "id" {
		return e.SetID(value)
	}
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetClass sets the class attribute.
func (e *Element) SetClass(class string) *Element {
	return e.SetAttr("class", class)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	if name == "id" {
		return e.ID, e.ID != ""
	}
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Append adds children in order. Nil children are ignored.
func (e *Element) Append(children ...Node) *Element {
	for _, child := range children {
		if child == nil {
			continue
		}
		e.Children = append(e.Children, child)
	}
	return e
}

// Elements returns the element nodes of the fragment, flattening nested
// fragments and skipping text and empty nodes.
func (f Fragment) Elements() []*Element {
	var out []*Element
	for _, node := range f {
		switch typed := node.(type) {
		case *Element:
			out = append(out, typed)
		case Fragment:
			out = append(out, typed.Elements()...)
		}
	}
	return out
}

// TextContent concatenates every text leaf under node in document order.
func TextContent(node Node) string {
	switch typed := node.(type) {
	case Text:
		return string(typed)
	case *Element:
		if typed == nil {
			return ""
		}
		return TextContent(Fragment(typed.Children))
	case Fragment:
		var builder strings.Builder
		for _, child := range typed {
			builder.WriteString(TextContent(child))
		}
		return builder.String()
	default:
		return ""
	}
}
