// Package cli implements the mdx command tree.
package cli

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	mdx "github.com/goliatone/go-mdx"
)

const (
	ExitGeneralError    = 1
	ExitValidationError = 2
)

type globalFlags struct {
	config   string
	logLevel string
}

// NewRootCmd builds the mdx command.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "mdx",
		Short:         "Render Markdown with component markers to HTML",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.config, "config", "", "Path to a YAML config file (env: MDX_*)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")

	root.AddCommand(newRenderCmd(flags))
	root.AddCommand(newComponentsCmd(flags))
	return root
}

func (f *globalFlags) renderer(strict bool) (*mdx.Renderer, error) {
	cfg, err := loadConfig(f.config)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if strict {
		cfg.Compiler.Strict = true
	}
	return mdx.New(cfg)
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case goerrors.IsCategory(err, goerrors.CategoryValidation),
		goerrors.IsCategory(err, goerrors.CategoryBadInput),
		errors.Is(err, mdx.ErrUnknownElement):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}
