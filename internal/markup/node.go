// Package markup parses compiled HTML markup into a generic element tree.
//
// The tree keeps the source case of tag and attribute names, honours
// self-closing syntax on any tag, and records whether an attribute carried a
// value. Those three details are what let custom component markers such as
// <custom-title /> or <Layout wide> survive the trip to the view compiler.
package markup

// Node is an Element, Text or Comment.
type Node interface {
	isNode()
}

// Attribute is a single attribute. HasValue is false for boolean-style
// attributes written without "=".
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
}

// Attributes keeps attributes in source order.
type Attributes []Attribute

// Get returns the value of the named attribute. The boolean is false when the
// attribute is missing or was written without a value.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, attr.HasValue
		}
	}
	return "", false
}

// Has reports whether the named attribute is present, with or without value.
func (a Attributes) Has(name string) bool {
	for _, attr := range a {
		if attr.Name == name {
			return true
		}
	}
	return false
}

// Element is a tag with its children.
type Element struct {
	Name       string
	ID         string
	Classes    []string
	Attributes Attributes
	Children   []Node
}

// Text is character data with entities already decoded.
type Text struct {
	Data string
}

// Comment is an HTML comment.
type Comment struct {
	Data string
}

// Document is the ordered list of top-level nodes.
type Document struct {
	Children []Node
}

func (*Element) isNode() {}
func (*Text) isNode()    {}
func (*Comment) isNode() {}

// Elements returns the top-level element nodes.
func (d *Document) Elements() []*Element {
	if d == nil {
		return nil
	}
	out := make([]*Element, 0, len(d.Children))
	for _, child := range d.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}
