package components

import (
	"sync"
	"testing"

	"github.com/goliatone/go-mdx/internal/markup"
	"github.com/goliatone/go-mdx/pkg/view"
)

func TestRegistry_AddDiscardsProps(t *testing.T) {
	registry := NewRegistry()
	registry.Add("custom-title", func() view.Node {
		return view.NewElement("h1").Append(view.Text("Some custom title!"))
	})

	component, ok := registry.Lookup("custom-title")
	if !ok {
		t.Fatalf("Lookup() expected component")
	}

	node := component.Render(Props{ID: "ignored", Children: view.Fragment{view.Text("ignored")}})
	el, ok := node.(*view.Element)
	if !ok || el.Tag != "h1" || el.ID != "" {
		t.Fatalf("unexpected node: %#v", node)
	}
	if got := view.TextContent(el); got != "Some custom title!" {
		t.Fatalf("unexpected text %q", got)
	}
}

type layoutProps struct {
	Children view.Fragment
	Wide     bool
}

func TestAddWithProps_AdapterRunsFirst(t *testing.T) {
	registry := NewRegistry()
	var order []string

	AddWithProps(registry, "layout",
		func(p layoutProps) view.Node {
			order = append(order, "component")
			el := view.NewElement("div").SetClass("layout")
			if p.Wide {
				el.SetAttr("data-wide", "true")
			}
			return el.Append(p.Children...)
		},
		func(p Props) layoutProps {
			order = append(order, "adapter")
			return layoutProps{Children: p.Children, Wide: p.Attributes.Has("wide")}
		},
	)

	children := view.Fragment{view.NewElement("h2").Append(view.Text("subtitle"))}
	component, _ := registry.Lookup("layout")
	node := component.Render(Props{
		Attributes: markup.Attributes{{Name: "wide"}},
		Children:   children,
	})

	if len(order) != 2 || order[0] != "adapter" || order[1] != "component" {
		t.Fatalf("unexpected call order: %v", order)
	}
	el := node.(*view.Element)
	if len(el.Children) != 1 || el.Children[0] != children[0] {
		t.Fatalf("expected the same child views to be handed over, got %#v", el.Children)
	}
	if v, ok := el.Attr("data-wide"); !ok || v != "true" {
		t.Fatalf("expected adapted prop to reach the component")
	}
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	registry := NewRegistry()
	registry.Add("demo", func() view.Node { return view.Text("first") })
	registry.Add("demo", func() view.Node { return view.Text("second") })

	component, _ := registry.Lookup("demo")
	if got := component.Render(Props{}); got != view.Text("second") {
		t.Fatalf("expected last registration to win, got %#v", got)
	}
	if registry.Len() != 1 {
		t.Fatalf("expected a single entry, got %d", registry.Len())
	}
}

func TestRegistry_NamesRemoveAndCase(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"beta", "Alpha", "gamma"} {
		registry.Add(name, func() view.Node { return view.Empty{} })
	}

	names := registry.Names()
	want := []string{"Alpha", "beta", "gamma"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() order mismatch at %d: got %s want %s", i, names[i], want[i])
		}
	}

	if _, ok := registry.Lookup("alpha"); ok {
		t.Fatalf("expected lookups to be case sensitive")
	}

	registry.Remove("beta")
	if _, ok := registry.Lookup("beta"); ok {
		t.Fatalf("expected beta to be removed")
	}
}

func TestRegistry_PanicsOnInvalidRegistration(t *testing.T) {
	cases := map[string]func(){
		"empty name":    func() { NewRegistry().Add("", func() view.Node { return nil }) },
		"nil component": func() { NewRegistry().Register("x", nil) },
		"nil adapter": func() {
			AddWithProps[int](NewRegistry(), "x", func(int) view.Node { return nil }, nil)
		},
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn()
		})
	}
}

func TestRegistry_ConcurrentLookups(t *testing.T) {
	registry := NewRegistry()
	registry.Add("demo", func() view.Node { return view.Empty{} })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := registry.Lookup("demo"); !ok {
				t.Errorf("expected lookup to succeed")
			}
		}()
	}
	wg.Wait()
}

func TestLookup_NilRegistry(t *testing.T) {
	var registry *Registry
	if _, ok := registry.Lookup("x"); ok {
		t.Fatalf("expected nil registry lookup to miss")
	}
}
