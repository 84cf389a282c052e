package render

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-mdx/internal/compiler"
)

var (
	// ErrFrontmatter reports a frontmatter block that is unterminated, not
	// valid YAML, missing when required, or rejected by the schema.
	ErrFrontmatter = errors.New("mdx: frontmatter error")
	// ErrMarkupCompile reports an unexpected failure converting the body to markup.
	ErrMarkupCompile = errors.New("mdx: markup compile error")
	// ErrMarkupParse reports markup that cannot be parsed into a tree.
	ErrMarkupParse = errors.New("mdx: markup parse error")
	// ErrUnknownElement is returned in strict mode for tags that are neither
	// registered nor structural.
	ErrUnknownElement = compiler.ErrUnknownElement
)

// ErrFrontmatterMissing is wrapped by ErrFrontmatter when frontmatter is
// required and the document has none.
var ErrFrontmatterMissing = errors.New("mdx: frontmatter block is required")

const (
	textCodeFrontmatter     = "MDX_FRONTMATTER_INVALID"
	textCodeMarkupCompile   = "MDX_MARKUP_COMPILE_FAILED"
	textCodeMarkupParse     = "MDX_MARKUP_PARSE_FAILED"
	textCodeUnknownElement  = "MDX_UNKNOWN_ELEMENT"
	textCodeContextCanceled = "MDX_CONTEXT_CANCELED"
)

func frontmatterError(err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrFrontmatter, err), goerrors.CategoryValidation, "frontmatter rejected").
		WithTextCode(textCodeFrontmatter)
}

func markupCompileError(err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrMarkupCompile, err), goerrors.CategoryInternal, "markup compilation failed").
		WithTextCode(textCodeMarkupCompile)
}

func markupParseError(err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrMarkupParse, err), goerrors.CategoryBadInput, "markup parsing failed").
		WithTextCode(textCodeMarkupParse)
}

func unknownElementError(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "unknown element").
		WithTextCode(textCodeUnknownElement)
}

func contextError(err error) error {
	message := "render cancelled"
	if errors.Is(err, context.DeadlineExceeded) {
		message = "render deadline exceeded"
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).
		WithTextCode(textCodeContextCanceled)
}
