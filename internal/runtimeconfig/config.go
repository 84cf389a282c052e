package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mdx/internal/components"
	"github.com/goliatone/go-mdx/internal/frontmatter"
)

var ErrLoggingProviderRequired = errors.New("mdx config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("mdx config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("mdx config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("mdx config: logging format is invalid")

// ErrFrontmatterSchemaRequired indicates Required was set without a schema to enforce.
var ErrFrontmatterSchemaRequired = errors.New("mdx config: frontmatter schema is required when frontmatter is required")

// ErrFrontmatterSchemaInvalid wraps schema compilation failures.
var ErrFrontmatterSchemaInvalid = errors.New("mdx config: frontmatter schema is invalid")

// ErrComponentInvalid wraps component definition validation failures.
var ErrComponentInvalid = errors.New("mdx config: component definition is invalid")

// Config aggregates the renderer options a host or the CLI can set.
type Config struct {
	Logging     LoggingConfig     `json:"logging" yaml:"logging" mapstructure:"logging"`
	Frontmatter FrontmatterConfig `json:"frontmatter" yaml:"frontmatter" mapstructure:"frontmatter"`
	Compiler    CompilerConfig    `json:"compiler" yaml:"compiler" mapstructure:"compiler"`
	Components  []ComponentConfig `json:"components" yaml:"components" mapstructure:"components"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `json:"provider" yaml:"provider" mapstructure:"provider"`
	Level     string   `json:"level" yaml:"level" mapstructure:"level"`
	Format    string   `json:"format" yaml:"format" mapstructure:"format"`
	AddSource bool     `json:"add_source" yaml:"add_source" mapstructure:"add_source"`
	Focus     []string `json:"focus" yaml:"focus" mapstructure:"focus"`
}

// FrontmatterConfig controls frontmatter validation. A nil Schema accepts
// any frontmatter. Required rejects documents without a frontmatter block.
type FrontmatterConfig struct {
	Schema   map[string]any `json:"schema" yaml:"schema" mapstructure:"schema"`
	Required bool           `json:"required" yaml:"required" mapstructure:"required"`
}

// CompilerConfig toggles tree-to-view behaviour.
type CompilerConfig struct {
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`
}

// ComponentConfig declares a wrapper component from configuration.
type ComponentConfig = components.Definition

// DefaultConfig returns the defaults used by the facade and the CLI.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
		Frontmatter: FrontmatterConfig{},
		Compiler:    CompilerConfig{},
		Components:  nil,
	}
}

// Validate performs consistency checks.
func (cfg Config) Validate() error {
	provider := NormalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(provider, format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}

	if cfg.Frontmatter.Required && len(cfg.Frontmatter.Schema) == 0 {
		return ErrFrontmatterSchemaRequired
	}
	if len(cfg.Frontmatter.Schema) > 0 {
		if _, err := frontmatter.NewValidator(cfg.Frontmatter.Schema); err != nil {
			return fmt.Errorf("%w: %w", ErrFrontmatterSchemaInvalid, err)
		}
	}

	for i, def := range cfg.Components {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("%w: %d (%s): %w", ErrComponentInvalid, i, def.Name, err)
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger", "charm":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(provider, format string) bool {
	format = strings.ToLower(strings.TrimSpace(format))
	switch provider {
	case "gologger":
		return format == "json" || format == "console" || format == "pretty"
	case "charm":
		return format == "text" || format == "logfmt" || format == "json"
	default:
		return false
	}
}
