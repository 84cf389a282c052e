package view

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render serializes node as HTML into w. Fragments render their members in
// order and Empty renders nothing.
func Render(w io.Writer, node Node) error {
	for _, n := range toHTML(node) {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("view render: %w", err)
		}
	}
	return nil
}

// RenderString serializes node as an HTML string.
func RenderString(node Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Equal reports whether a and b have the same structure: tags, ids,
// attributes, text and nesting.
func Equal(a, b Node) bool {
	return reflect.DeepEqual(a, b)
}

func toHTML(node Node) []*html.Node {
	switch typed := node.(type) {
	case nil:
		return nil
	case Empty:
		return nil
	case Text:
		return []*html.Node{{Type: html.TextNode, Data: string(typed)}}
	case Fragment:
		var out []*html.Node
		for _, child := range typed {
			out = append(out, toHTML(child)...)
		}
		return out
	case *Element:
		if typed == nil {
			return nil
		}
		n := &html.Node{
			Type:     html.ElementNode,
			Data:     typed.Tag,
			DataAtom: atom.Lookup([]byte(typed.Tag)),
		}
		if typed.ID != "" {
			n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: typed.ID})
		}
		for _, attr := range typed.Attrs {
			n.Attr = append(n.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
		}
		for _, child := range typed.Children {
			for _, c := range toHTML(child) {
				n.AppendChild(c)
			}
		}
		return []*html.Node{n}
	default:
		return nil
	}
}
