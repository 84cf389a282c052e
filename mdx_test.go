package mdx_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdx "github.com/goliatone/go-mdx"
	"github.com/goliatone/go-mdx/internal/logging/console"
	"github.com/goliatone/go-mdx/pkg/view"
)

type layoutProps struct {
	Children view.Fragment
}

func exampleComponents() *mdx.Components {
	components := mdx.NewComponents()
	components.Add("custom-title", func() view.Node {
		return view.NewElement("h1").Append(view.Text("Some custom title!"))
	})
	mdx.AddWithProps(components, "layout",
		func(props layoutProps) view.Node {
			return view.NewElement("div").SetClass("layout").Append(props.Children...)
		},
		func(props mdx.Props) layoutProps {
			return layoutProps{Children: props.Children}
		},
	)
	return components
}

func TestRenderExample(t *testing.T) {
	source, err := os.ReadFile("testdata/simple.mdx")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	fragment, err := mdx.Render(string(source), exampleComponents())
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	elements := fragment.Elements()
	tags := make([]string, 0, len(elements))
	for _, el := range elements {
		tags = append(tags, el.Tag)
	}
	if strings.Join(tags, ",") != "h1,p,h1,div" {
		t.Fatalf("unexpected top-level tags %v", tags)
	}
	if got := view.TextContent(elements[2]); got != "Some custom title!" {
		t.Fatalf("unexpected custom title %q", got)
	}
	if class, _ := elements[3].Attr("class"); class != "layout" {
		t.Fatalf("expected layout wrapper, got %q", class)
	}
}

func TestRenderPropagatesFrontmatterError(t *testing.T) {
	fragment, err := mdx.Render("---\ntitle: [\n---\nbody", nil)
	if !errors.Is(err, mdx.ErrFrontmatter) {
		t.Fatalf("expected ErrFrontmatter, got %v", err)
	}
	if fragment != nil {
		t.Fatalf("expected no fragment, got %v", fragment)
	}
}

func TestNewRegistersConfiguredComponents(t *testing.T) {
	cfg := mdx.DefaultConfig()
	cfg.Components = []mdx.ComponentConfig{
		{Name: "callout", Element: "aside", Classes: []string{"callout"}, Attributes: map[string]string{"role": "note"}},
	}

	var logs bytes.Buffer
	level := console.LevelWarn
	renderer, err := mdx.New(cfg, mdx.WithLoggerProvider(console.NewProvider(console.Options{Writer: &logs, MinLevel: &level})))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	fragment, err := renderer.Render(context.Background(), []byte("<callout class=\"tip\">\n\nRead *this*.\n\n</callout>\n"))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out, err := view.RenderString(fragment)
	if err != nil {
		t.Fatalf("RenderString returned error: %v", err)
	}
	want := "<aside role=\"note\" class=\"callout tip\">\n<p>Read <em>this</em>.</p>\n</aside>"
	if out != want {
		t.Fatalf("unexpected markup\nwant: %s\ngot:  %s", want, out)
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no warnings, got %q", logs.String())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := mdx.DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if _, err := mdx.New(cfg); !errors.Is(err, mdx.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestRendererStrictConfig(t *testing.T) {
	cfg := mdx.DefaultConfig()
	cfg.Compiler.Strict = true
	renderer, err := mdx.New(cfg)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := renderer.Render(context.Background(), []byte("<unheard-of />\n")); !errors.Is(err, mdx.ErrUnknownElement) {
		t.Fatalf("expected ErrUnknownElement, got %v", err)
	}
}

func TestRendererRenderFile(t *testing.T) {
	renderer, err := mdx.New(mdx.DefaultConfig())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	renderer.Components().Add("custom-title", func() view.Node { return view.NewElement("h1") })

	path := filepath.Join(t.TempDir(), "page.mdx")
	if err := os.WriteFile(path, []byte("---\nslug: My Page\n---\n<custom-title />\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc, err := renderer.RenderFile(context.Background(), path, true)
	if err != nil {
		t.Fatalf("RenderFile returned error: %v", err)
	}
	if doc.Slug != "my-page" {
		t.Fatalf("unexpected slug %q", doc.Slug)
	}
	if len(doc.Fragment) != 1 {
		t.Fatalf("expected one node, got %d", len(doc.Fragment))
	}
}
