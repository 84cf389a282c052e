package markdown

import (
	"bytes"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-mdx/pkg/interfaces"
)

// HighlightStyle is the chroma style applied to fenced code blocks.
const HighlightStyle = "github"

// ErrCompile wraps failures raised by the goldmark engine.
var ErrCompile = errors.New("markdown: compile failed")

// Compiler implements interfaces.MarkupCompiler with a fixed goldmark
// configuration. The engine is built once and is safe for concurrent use.
type Compiler struct {
	engine goldmark.Markdown
}

// NewCompiler builds the compiler with the full MDX extension set.
func NewCompiler() *Compiler {
	return &Compiler{engine: newEngine()}
}

// Compile renders body into HTML markup. Raw HTML in the body, including
// custom component tags, is passed through verbatim.
func (c *Compiler) Compile(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.engine.Convert(body, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return buf.Bytes(), nil
}

func newEngine() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Footnote,
			extension.Strikethrough,
			extension.DefinitionList,
			extension.Linkify,
			SuperscriptExtension,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false),
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

var _ interfaces.MarkupCompiler = (*Compiler)(nil)
