package compiler

import "github.com/goliatone/go-mdx/pkg/view"

// Builder creates the host element for a structural tag.
type Builder func() *view.Element

func element(tag string) Builder {
	return func() *view.Element {
		return view.NewElement(tag)
	}
}

func table(groups ...[]string) map[string]Builder {
	out := map[string]Builder{}
	for _, group := range groups {
		for _, tag := range group {
			out[tag] = element(tag)
		}
	}
	return out
}

var (
	documentTags = []string{
		"html", "base", "head", "link", "meta", "style", "title", "body",
	}
	sectioningTags = []string{
		"address", "article", "aside", "footer", "header", "hgroup",
		"h1", "h2", "h3", "h4", "h5", "h6", "main", "nav", "section",
	}
	textTags = []string{
		"blockquote", "dd", "div", "dl", "dt", "figcaption", "figure",
		"hr", "li", "ol", "p", "pre", "ul",
	}
	inlineTags = []string{
		"a", "abbr", "b", "bdi", "bdo", "br", "cite", "code", "data", "dfn",
		"em", "i", "kbd", "mark", "q", "rp", "rt", "ruby", "s", "samp",
		"small", "span", "strong", "sub", "sup", "time", "u", "var", "wbr",
	}
	mediaTags = []string{
		"area", "audio", "img", "map", "track", "video",
	}
	embeddedTags = []string{
		"embed", "iframe", "object", "param", "picture", "portal", "source",
		"svg", "math", "canvas", "noscript", "script",
	}
	editTags = []string{
		"del", "ins",
	}
	tableTags = []string{
		"caption", "col", "colgroup", "table", "tbody", "td", "tfoot", "th",
		"thead", "tr",
	}
	formTags = []string{
		"button", "datalist", "fieldset", "form", "input", "label", "legend",
		"meter", "optgroup", "option", "output", "progress", "select",
		"textarea",
	}
	interactiveTags = []string{
		"details", "dialog", "menu", "summary", "slot", "template",
	}
)

// StructuralElements is the built-in tag vocabulary. Tags outside this table
// and outside the component registry are unknown.
var StructuralElements = table(
	documentTags,
	sectioningTags,
	textTags,
	inlineTags,
	mediaTags,
	embeddedTags,
	editTags,
	tableTags,
	formTags,
	interactiveTags,
)
