package markup

import (
	"errors"
	"testing"
)

func TestParse_TreeShape(t *testing.T) {
	doc := mustParse(t, "<h1 id=\"hello\">Hello, world!</h1>\n<p>This is <strong>bold</strong> &amp; <em>more</em>.</p>\n")

	els := doc.Elements()
	if len(els) != 2 {
		t.Fatalf("expected 2 top-level elements, got %d", len(els))
	}
	if len(doc.Children) != 4 {
		t.Fatalf("expected whitespace text siblings to be kept, got %d children", len(doc.Children))
	}

	h1 := els[0]
	if h1.Name != "h1" || h1.ID != "hello" || len(h1.Attributes) != 0 {
		t.Fatalf("unexpected h1: %#v", h1)
	}

	p := els[1]
	if len(p.Children) != 5 {
		t.Fatalf("expected 5 children in p, got %d", len(p.Children))
	}
	if text, ok := p.Children[2].(*Text); !ok || text.Data != " & " {
		t.Fatalf("expected decoded text node, got %#v", p.Children[2])
	}
	if strong, ok := p.Children[1].(*Element); !ok || strong.Name != "strong" {
		t.Fatalf("expected strong, got %#v", p.Children[1])
	}
}

func TestParse_SelfClosingCustomTagHasNoChildren(t *testing.T) {
	doc := mustParse(t, "<custom-title />\n<layout>\n<h2>subtitle</h2>\n</layout>\n")

	els := doc.Elements()
	if len(els) != 2 {
		t.Fatalf("expected custom-title and layout as siblings, got %d", len(els))
	}
	if els[0].Name != "custom-title" || len(els[0].Children) != 0 {
		t.Fatalf("unexpected custom-title: %#v", els[0])
	}
	layout := els[1]
	if layout.Name != "layout" || len(layout.Children) != 3 {
		t.Fatalf("unexpected layout: %#v", layout)
	}
}

func TestParse_PreservesCaseAndAttributeShape(t *testing.T) {
	doc := mustParse(t, `<Callout Kind="warning" class=" a  b " hidden data-x='1 &lt; 2' kind="dup">x</Callout>`)

	el := doc.Elements()[0]
	if el.Name != "Callout" {
		t.Fatalf("expected case-preserving name, got %q", el.Name)
	}
	if len(el.Classes) != 2 || el.Classes[0] != "a" || el.Classes[1] != "b" {
		t.Fatalf("unexpected classes: %#v", el.Classes)
	}
	want := Attributes{
		{Name: "Kind", Value: "warning", HasValue: true},
		{Name: "hidden"},
		{Name: "data-x", Value: "1 < 2", HasValue: true},
	}
	if len(el.Attributes) != len(want) {
		t.Fatalf("unexpected attributes: %#v", el.Attributes)
	}
	for i := range want {
		if el.Attributes[i] != want[i] {
			t.Fatalf("attribute %d mismatch: got %#v want %#v", i, el.Attributes[i], want[i])
		}
	}
	if !el.Attributes.Has("hidden") {
		t.Fatalf("expected hidden to be present")
	}
	if _, ok := el.Attributes.Get("hidden"); ok {
		t.Fatalf("expected hidden to have no value")
	}
}

func TestParse_VoidElementsAndComments(t *testing.T) {
	doc := mustParse(t, "<p>a<br>b<img src=\"x.png\" alt=\"\"><!-- note --></p>")

	p := doc.Elements()[0]
	if len(p.Children) != 5 {
		t.Fatalf("expected 5 children, got %d: %#v", len(p.Children), p.Children)
	}
	img, ok := p.Children[3].(*Element)
	if !ok || img.Name != "img" {
		t.Fatalf("expected img, got %#v", p.Children[3])
	}
	if alt, ok := img.Attributes.Get("alt"); !ok || alt != "" {
		t.Fatalf("expected empty alt with value, got %q %v", alt, ok)
	}
	if comment, ok := p.Children[4].(*Comment); !ok || comment.Data != " note " {
		t.Fatalf("expected comment, got %#v", p.Children[4])
	}
}

func TestParse_RawTextElements(t *testing.T) {
	doc := mustParse(t, "<script>if (a < b && c) {}</script>")

	script := doc.Elements()[0]
	if len(script.Children) != 1 {
		t.Fatalf("expected a single text child, got %#v", script.Children)
	}
	if text := script.Children[0].(*Text); text.Data != "if (a < b && c) {}" {
		t.Fatalf("unexpected script text: %q", text.Data)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"unclosed":   "<div><p>text</p>",
		"mismatched": "<div><span>text</div></span>",
		"stray end":  "<p>text</p></section>",
	}
	for name, source := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := Parse([]byte(source))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) || syntaxErr.Tag == "" {
				t.Fatalf("expected *SyntaxError with tag, got %#v", err)
			}
			if doc != nil {
				t.Fatalf("expected no partial document")
			}
		})
	}
}

func TestParse_Empty(t *testing.T) {
	doc := mustParse(t, "")
	if len(doc.Children) != 0 {
		t.Fatalf("expected empty document, got %#v", doc.Children)
	}
}

func TestScanTag(t *testing.T) {
	name, attrs := scanTag([]byte(`<input type=checkbox checked disabled="" />`))
	if name != "input" {
		t.Fatalf("unexpected name %q", name)
	}
	if len(attrs) != 3 {
		t.Fatalf("unexpected attrs: %#v", attrs)
	}
	if attrs[0] != (Attribute{Name: "type", Value: "checkbox", HasValue: true}) {
		t.Fatalf("unexpected type attr: %#v", attrs[0])
	}
	if attrs[1].HasValue || !attrs[2].HasValue {
		t.Fatalf("unexpected value flags: %#v", attrs)
	}

	name, _ = scanTag([]byte("</Layout>"))
	if name != "Layout" {
		t.Fatalf("unexpected end tag name %q", name)
	}
}

func mustParse(tb testing.TB, source string) *Document {
	tb.Helper()
	doc, err := Parse([]byte(source))
	if err != nil {
		tb.Fatalf("Parse: %v", err)
	}
	return doc
}
