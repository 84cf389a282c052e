package view

import "testing"

func TestRenderString_ElementWithAttributes(t *testing.T) {
	el := NewElement("a").
		SetID("home").
		SetAttr("href", "https://example.com/?a=1&b=2").
		SetClass("nav primary").
		Append(Text("Fish & Chips"))

	got, err := RenderString(el)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}

	want := `<a id="home" href="https://example.com/?a=1&amp;b=2" class="nav primary">Fish &amp; Chips</a>`
	if got != want {
		t.Fatalf("unexpected markup\nwant: %s\ngot:  %s", want, got)
	}
}

func TestRenderString_FragmentAndEmpty(t *testing.T) {
	frag := Fragment{
		NewElement("h1").Append(Text("Title")),
		Empty{},
		Fragment{NewElement("br"), Text("tail")},
	}

	got, err := RenderString(frag)
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if got != "<h1>Title</h1><br/>tail" {
		t.Fatalf("unexpected markup: %q", got)
	}
}

func TestRenderString_VoidElementWithChildrenFails(t *testing.T) {
	el := NewElement("br").Append(Text("nope"))
	if _, err := RenderString(el); err == nil {
		t.Fatalf("expected void element with children to fail")
	}
}

func TestElement_SetAttrReplaces(t *testing.T) {
	el := NewElement("div").SetAttr("data-x", "1").SetAttr("data-x", "2").SetAttr("id", "main")

	if len(el.Attrs) != 1 {
		t.Fatalf("expected a single attribute, got %#v", el.Attrs)
	}
	if v, ok := el.Attr("data-x"); !ok || v != "2" {
		t.Fatalf("expected data-x=2, got %q (%v)", v, ok)
	}
	if el.ID != "main" {
		t.Fatalf("expected id routed to SetID, got %q", el.ID)
	}
}

func TestFragment_ElementsAndTextContent(t *testing.T) {
	frag := Fragment{
		Text("\n"),
		NewElement("p").Append(Text("a "), NewElement("strong").Append(Text("b"))),
		Fragment{NewElement("hr")},
	}

	els := frag.Elements()
	if len(els) != 2 || els[0].Tag != "p" || els[1].Tag != "hr" {
		t.Fatalf("unexpected elements: %#v", els)
	}
	if got := TextContent(els[0]); got != "a b" {
		t.Fatalf("TextContent mismatch: %q", got)
	}
}

func TestEqual(t *testing.T) {
	build := func() Node {
		return Fragment{NewElement("p").SetClass("x").Append(Text("hi"))}
	}
	if !Equal(build(), build()) {
		t.Fatalf("expected identical trees to be equal")
	}
	if Equal(build(), Fragment{NewElement("p").Append(Text("hi"))}) {
		t.Fatalf("expected trees with different classes to differ")
	}
}
