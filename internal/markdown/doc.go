// Package markdown compiles MDX bodies into HTML markup with goldmark. The
// extension set is fixed: tables, footnotes, strikethrough, superscript,
// description lists, autolinks and chroma-highlighted code fences. Raw HTML
// passes through untouched so custom component tags reach the tree parser.
package markdown
