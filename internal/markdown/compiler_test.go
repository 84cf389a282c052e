package markdown

import (
	"strings"
	"testing"
)

func TestCompiler_HeadingsAndEmphasis(t *testing.T) {
	out := compile(t, "# Hello, world!\n\nThis is a **markdown** file with some *content*.")

	if !strings.Contains(out, "Hello, world!</h1>") {
		t.Fatalf("expected h1, got %q", out)
	}
	if !strings.Contains(out, "<strong>markdown</strong>") || !strings.Contains(out, "<em>content</em>") {
		t.Fatalf("expected inline emphasis, got %q", out)
	}
}

func TestCompiler_RawTagsPassThrough(t *testing.T) {
	out := compile(t, "<custom-title />\n\n<layout>\n\n## subtitle\n\n</layout>\n")

	for _, want := range []string{"<custom-title />", "<layout>", "subtitle</h2>", "</layout>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
}

func TestCompiler_Extensions(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |\n",
			want:   []string{"<table>", "<th>a</th>", "<td>2</td>"},
		},
		{
			name:   "strikethrough",
			source: "~~gone~~",
			want:   []string{"<del>gone</del>"},
		},
		{
			name:   "superscript",
			source: "e = mc^2^.",
			want:   []string{"mc<sup>2</sup>."},
		},
		{
			name:   "footnote",
			source: "Text[^1].\n\n[^1]: The note.\n",
			want:   []string{`class="footnote-ref"`, "The note."},
		},
		{
			name:   "description list",
			source: "Term\n: Definition\n",
			want:   []string{"<dl>", "<dt>Term</dt>", "<dd>Definition</dd>"},
		},
		{
			name:   "autolink",
			source: "Visit https://example.com today",
			want:   []string{`<a href="https://example.com">https://example.com</a>`},
		},
		{
			name:   "highlighted fence",
			source: "```go\npackage main\n```\n",
			want:   []string{"<pre", "style=", "package"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := compile(t, tc.source)
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Fatalf("expected %q in output, got %q", want, out)
				}
			}
		})
	}
}

func TestCompiler_Deterministic(t *testing.T) {
	source := "# Title\n\n```js\nconst x = 1;\n```\n\n| a |\n|---|\n| b |\n"
	if first, second := compile(t, source), compile(t, source); first != second {
		t.Fatalf("expected identical output\nfirst:  %q\nsecond: %q", first, second)
	}
}

func compile(tb testing.TB, source string) string {
	tb.Helper()
	out, err := NewCompiler().Compile([]byte(source))
	if err != nil {
		tb.Fatalf("Compile: %v", err)
	}
	return string(out)
}
