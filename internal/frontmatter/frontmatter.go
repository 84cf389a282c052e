// Package frontmatter separates an optional YAML block from the body of an
// MDX document.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a frontmatter block. It must sit alone on its line.
const Delimiter = "---"

var (
	// ErrUnterminated reports a block that was opened but never closed.
	ErrUnterminated = errors.New("frontmatter: block is not terminated")
	// ErrInvalid reports a block whose YAML content cannot be decoded.
	ErrInvalid = errors.New("frontmatter: invalid block")
)

var yamlFormat = frontmatter.NewFormat(Delimiter, Delimiter, yaml.Unmarshal)

// Frontmatter holds the decoded key-value block.
type Frontmatter map[string]any

// String returns the value stored under key when it is a string.
func (f Frontmatter) String(key string) string {
	if f == nil {
		return ""
	}
	value, _ := f[key].(string)
	return value
}

// Split extracts the frontmatter block from source. Documents that do not
// open with the delimiter are returned unchanged with a nil Frontmatter.
func Split(source []byte) (Frontmatter, []byte, error) {
	if !opensBlock(source) {
		return nil, source, nil
	}

	var meta Frontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, nil, ErrUnterminated
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if meta == nil {
		meta = Frontmatter{}
	}
	return meta, body, nil
}

// Slug derives a URL slug from the slug key, falling back to the title.
func Slug(meta Frontmatter) string {
	for _, key := range []string{"slug", "title"} {
		value := strings.TrimSpace(meta.String(key))
		if value == "" {
			continue
		}
		normalized, err := slug.Normalize(value)
		if err != nil || normalized == "" {
			continue
		}
		return normalized
	}
	return ""
}

// opensBlock mirrors the detection rules of the underlying parser: leading
// blank lines are skipped and the first remaining line, trimmed, must be the
// delimiter.
func opensBlock(source []byte) bool {
	rest := source
	for len(rest) > 0 {
		line := rest
		if idx := bytes.IndexByte(rest, '\n'); idx >= 0 {
			line, rest = rest[:idx], rest[idx+1:]
		} else {
			rest = nil
		}
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 {
			continue
		}
		return string(trimmed) == Delimiter
	}
	return false
}
