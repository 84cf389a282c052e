package interfaces

// MarkupCompiler turns a Markdown body into HTML markup. Implementations must
// leave raw tags they do not define semantics for untouched so custom
// component markers survive compilation.
type MarkupCompiler interface {
	Compile(body []byte) ([]byte, error)
}
