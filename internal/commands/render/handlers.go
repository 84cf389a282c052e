// Package rendercmd exposes the render pipeline as go-command handlers.
package rendercmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-mdx/internal/commands"
	"github.com/goliatone/go-mdx/internal/compiler"
	"github.com/goliatone/go-mdx/internal/logging"
	"github.com/goliatone/go-mdx/internal/render"
	"github.com/goliatone/go-mdx/pkg/interfaces"
)

const renderFileOperation = "render.file"

// ErrSinkRequired is returned when the handler was built without a sink.
var ErrSinkRequired = errors.New("render command: result sink is required")

// Sink receives each rendered document.
type Sink func(ctx context.Context, path string, doc *render.Document) error

var _ command.Commander[RenderFileCommand] = (*RenderFileHandler)(nil)

// RenderFileHandler reads a file, renders it and hands the result to a Sink.
type RenderFileHandler struct {
	inner *commands.Handler[RenderFileCommand]
}

// NewRenderFileHandler binds the handler to a render service, a component
// registry and a sink.
func NewRenderFileHandler(service *render.Service, registry compiler.ComponentLookup, sink Sink, logger interfaces.Logger, opts ...commands.HandlerOption[RenderFileCommand]) *RenderFileHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg RenderFileCommand) error {
		if sink == nil {
			return ErrSinkRequired
		}
		path := strings.TrimSpace(msg.Path)

		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("render command: read %s: %w", path, err)
		}

		ctx = logging.ContextWithFields(ctx, map[string]any{"document_path": path})
		doc, err := service.RenderDocument(ctx, source, registry)
		if err != nil {
			return err
		}
		if msg.Strict && len(doc.Unknown) > 0 {
			return fmt.Errorf("%w: <%s>", render.ErrUnknownElement, strings.Join(doc.Unknown, ">, <"))
		}
		return sink(ctx, path, doc)
	}

	baseOpts := []commands.HandlerOption[RenderFileCommand]{
		commands.WithLogger[RenderFileCommand](logger),
		commands.WithOperation[RenderFileCommand](renderFileOperation),
	}
	baseOpts = append(baseOpts, opts...)

	return &RenderFileHandler{
		inner: commands.NewHandler[RenderFileCommand](exec, baseOpts...),
	}
}

// Execute satisfies command.Commander[RenderFileCommand].
func (h *RenderFileHandler) Execute(ctx context.Context, msg RenderFileCommand) error {
	return h.inner.Execute(ctx, msg)
}
