package markdown

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Superscript is an inline node produced by ^text^ spans.
type Superscript struct {
	gast.BaseInline
}

// KindSuperscript is the NodeKind of Superscript nodes.
var KindSuperscript = gast.NewNodeKind("Superscript")

// Kind implements ast.Node.
func (n *Superscript) Kind() gast.NodeKind {
	return KindSuperscript
}

// Dump implements ast.Node.
func (n *Superscript) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, nil, nil)
}

type superscriptDelimiterProcessor struct{}

func (p *superscriptDelimiterProcessor) IsDelimiter(b byte) bool {
	return b == '^'
}

func (p *superscriptDelimiterProcessor) CanOpenCloser(opener, closer *parser.Delimiter) bool {
	return opener.Char == closer.Char
}

func (p *superscriptDelimiterProcessor) OnMatch(consumes int) gast.Node {
	return &Superscript{}
}

var defaultSuperscriptDelimiterProcessor = &superscriptDelimiterProcessor{}

type superscriptParser struct{}

func (s *superscriptParser) Trigger() []byte {
	return []byte{'^'}
}

func (s *superscriptParser) Parse(parent gast.Node, block text.Reader, pc parser.Context) gast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	node := parser.ScanDelimiter(line, before, 1, defaultSuperscriptDelimiterProcessor)
	if node == nil || node.OriginalLength > 1 || before == '^' {
		return nil
	}

	node.Segment = segment.WithStop(segment.Start + node.OriginalLength)
	block.Advance(node.OriginalLength)
	pc.PushDelimiter(node)
	return node
}

func (s *superscriptParser) CloseBlock(parent gast.Node, pc parser.Context) {}

type superscriptRenderer struct {
	html.Config
}

func (r *superscriptRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindSuperscript, r.render)
}

func (r *superscriptRenderer) render(w util.BufWriter, source []byte, n gast.Node, entering bool) (gast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</sup>")
		return gast.WalkContinue, nil
	}
	if n.Attributes() != nil {
		_, _ = w.WriteString("<sup")
		html.RenderAttributes(w, n, html.GlobalAttributeFilter)
		_ = w.WriteByte('>')
		return gast.WalkContinue, nil
	}
	_, _ = w.WriteString("<sup>")
	return gast.WalkContinue, nil
}

type superscript struct{}

// SuperscriptExtension enables ^text^ superscript spans.
var SuperscriptExtension goldmark.Extender = &superscript{}

func (e *superscript) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&superscriptParser{}, 500),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&superscriptRenderer{Config: html.NewConfig()}, 500),
	))
}
