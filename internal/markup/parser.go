package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrMalformed reports markup that does not form a tree.
var ErrMalformed = errors.New("markup: malformed")

// SyntaxError locates a structural problem in the markup.
type SyntaxError struct {
	Offset int
	Tag    string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("markup: %s <%s> at offset %d", e.Reason, e.Tag, e.Offset)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "keygen": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

// IsVoid reports whether name is an HTML void element.
func IsVoid(name string) bool {
	_, ok := voidElements[strings.ToLower(name)]
	return ok
}

// Parse builds the element tree for markup. Unclosed elements, stray end
// tags and end tags that do not match the innermost open element fail with a
// *SyntaxError.
func Parse(markup []byte) (*Document, error) {
	doc := &Document{}
	var stack []*Element
	offset := 0

	appendNode := func(n Node) {
		if len(stack) == 0 {
			doc.Children = append(doc.Children, n)
			return
		}
		top := stack[len(stack)-1]
		top.Children = append(top.Children, n)
	}

	z := html.NewTokenizer(bytes.NewReader(markup))
	for {
		tt := z.Next()
		// Raw must be copied before Text or TagName rewrite the buffer.
		raw := append([]byte(nil), z.Raw()...)
		start := offset
		offset += len(raw)

		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, z.Err())
			}
			if len(stack) > 0 {
				return nil, &SyntaxError{Offset: offset, Tag: stack[len(stack)-1].Name, Reason: "unclosed element"}
			}
			return doc, nil
		case html.TextToken:
			appendNode(&Text{Data: string(z.Text())})
		case html.CommentToken:
			appendNode(&Comment{Data: string(z.Text())})
		case html.StartTagToken, html.SelfClosingTagToken:
			el := scanElement(raw)
			appendNode(el)
			if tt == html.StartTagToken && !IsVoid(el.Name) {
				stack = append(stack, el)
			}
		case html.EndTagToken:
			name, _ := scanTag(raw)
			if IsVoid(name) {
				continue
			}
			if len(stack) == 0 {
				return nil, &SyntaxError{Offset: start, Tag: name, Reason: "unexpected end tag"}
			}
			top := stack[len(stack)-1]
			if !strings.EqualFold(top.Name, name) {
				return nil, &SyntaxError{Offset: start, Tag: name, Reason: "mismatched end tag for <" + top.Name + ">"}
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func scanElement(raw []byte) *Element {
	name, attrs := scanTag(raw)
	el := &Element{Name: name}
	for _, attr := range attrs {
		switch strings.ToLower(attr.Name) {
		case "id":
			if attr.HasValue {
				el.ID = attr.Value
			}
		case "class":
			el.Classes = strings.Fields(attr.Value)
		default:
			el.Attributes = append(el.Attributes, attr)
		}
	}
	return el
}

// scanTag reads the tag name and attributes from the raw text of a start or
// end tag. The tokenizer lower-cases names and hides whether an attribute had
// a value, so both are recovered here. Duplicate attributes keep the first
// occurrence.
func scanTag(raw []byte) (string, Attributes) {
	i := 0
	n := len(raw)
	if i < n && raw[i] == '<' {
		i++
	}
	if i < n && raw[i] == '/' {
		i++
	}
	nameStart := i
	for i < n && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	name := string(raw[nameStart:i])

	var attrs Attributes
	seen := map[string]struct{}{}
	for {
		for i < n && (isTagSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= n || raw[i] == '>' {
			break
		}

		keyStart := i
		i++
		for i < n && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' && raw[i] != '=' {
			i++
		}
		attr := Attribute{Name: string(raw[keyStart:i])}

		j := i
		for j < n && isTagSpace(raw[j]) {
			j++
		}
		if j < n && raw[j] == '=' {
			i = j + 1
			for i < n && isTagSpace(raw[i]) {
				i++
			}
			var value []byte
			if i < n && (raw[i] == '"' || raw[i] == '\'') {
				quote := raw[i]
				i++
				valueStart := i
				for i < n && raw[i] != quote {
					i++
				}
				value = raw[valueStart:i]
				if i < n {
					i++
				}
			} else {
				valueStart := i
				for i < n && !isTagSpace(raw[i]) && raw[i] != '>' {
					i++
				}
				value = raw[valueStart:i]
			}
			attr.Value = html.UnescapeString(string(value))
			attr.HasValue = true
		}

		key := strings.ToLower(attr.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		attrs = append(attrs, attr)
	}
	return name, attrs
}

func isTagSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
