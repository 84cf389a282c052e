package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	mdx "github.com/goliatone/go-mdx"
)

const envPrefix = "MDX"

// loadConfig merges defaults, the optional YAML file and MDX_ environment
// variables. A missing file is an error only when path was given explicitly.
func loadConfig(path string) (mdx.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := mdx.DefaultConfig()
	v.SetDefault("logging.provider", "charm")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.add_source", defaults.Logging.AddSource)
	v.SetDefault("frontmatter.required", defaults.Frontmatter.Required)
	v.SetDefault("compiler.strict", defaults.Compiler.Strict)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
				return mdx.Config{}, fmt.Errorf("config file %s not found", path)
			}
			return mdx.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg mdx.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return mdx.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if path != "" {
		schema, err := readSchema(path)
		if err != nil {
			return mdx.Config{}, err
		}
		cfg.Frontmatter.Schema = schema
	}
	return cfg, nil
}

// readSchema decodes frontmatter.schema straight from the file. Viper folds
// keys to lower case, which breaks JSON schema keywords such as minLength.
func readSchema(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var doc struct {
		Frontmatter struct {
			Schema map[string]any `yaml:"schema"`
		} `yaml:"frontmatter"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding frontmatter schema: %w", err)
	}
	return doc.Frontmatter.Schema, nil
}
