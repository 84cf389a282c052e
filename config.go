package mdx

import (
	"fmt"
	"os"

	"github.com/goliatone/go-mdx/internal/logging/charm"
	"github.com/goliatone/go-mdx/internal/logging/console"
	"github.com/goliatone/go-mdx/internal/logging/gologger"
	"github.com/goliatone/go-mdx/internal/runtimeconfig"
	"github.com/goliatone/go-mdx/pkg/interfaces"
)

var (
	ErrLoggingProviderRequired   = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown    = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid       = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid      = runtimeconfig.ErrLoggingFormatInvalid
	ErrFrontmatterSchemaRequired = runtimeconfig.ErrFrontmatterSchemaRequired
	ErrFrontmatterSchemaInvalid  = runtimeconfig.ErrFrontmatterSchemaInvalid
	ErrComponentInvalid          = runtimeconfig.ErrComponentInvalid
)

type (
	Config            = runtimeconfig.Config
	LoggingConfig     = runtimeconfig.LoggingConfig
	FrontmatterConfig = runtimeconfig.FrontmatterConfig
	CompilerConfig    = runtimeconfig.CompilerConfig
	ComponentConfig   = runtimeconfig.ComponentConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// newLoggerProvider builds the provider named by cfg. Logs go to stderr so
// rendered output on stdout stays clean.
func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case "console":
		level, err := console.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		return console.NewProvider(console.Options{Writer: os.Stderr, MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	case "charm":
		return charm.NewProvider(charm.Config{
			Writer:    os.Stderr,
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
