package rendercmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const renderFileMessageType = "mdx.render.file"

var allowedExtensions = []any{".md", ".mdx", ".markdown"}

// RenderFileCommand renders a single document from disk.
type RenderFileCommand struct {
	// Path is the document location, relative or absolute.
	Path string `json:"path"`
	// Strict fails the command when the document contains unknown elements.
	Strict bool `json:"strict,omitempty"`
}

// Type implements command.Message.
func (RenderFileCommand) Type() string { return renderFileMessageType }

// Validate requires a path with a markdown extension.
func (cmd RenderFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path,
			validation.Required,
			validation.By(func(value any) error {
				path, _ := value.(string)
				if strings.TrimSpace(path) == "" {
					return validation.NewError("mdx.render.file.path_required", "path is required")
				}
				ext := strings.ToLower(filepath.Ext(path))
				if err := validation.Validate(ext, validation.In(allowedExtensions...)); err != nil {
					return validation.NewError("mdx.render.file.extension", "path must end in .md, .mdx or .markdown")
				}
				return nil
			}),
		),
	)
}
