package frontmatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrSchemaInvalid reports a schema that cannot be compiled.
	ErrSchemaInvalid = errors.New("frontmatter: schema invalid")
	// ErrSchemaValidation reports frontmatter that does not satisfy the schema.
	ErrSchemaValidation = errors.New("frontmatter: schema validation failed")
)

// Issue is a single schema violation.
type Issue struct {
	Location string
	Message  string
}

// ValidationError lists every violation found in a frontmatter block.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "#"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return ErrSchemaValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Validator checks frontmatter against a JSON schema compiled once.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schema. A nil or empty schema yields a validator that
// accepts everything.
func NewValidator(schema map[string]any) (*Validator, error) {
	if len(schema) == 0 {
		return &Validator{}, nil
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks meta. A missing block validates as an empty object.
func (v *Validator) Validate(meta Frontmatter) error {
	if v == nil || v.schema == nil {
		return nil
	}
	instance, err := toJSONValue(meta)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := v.schema.Validate(instance); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return &ValidationError{Issues: collectIssues(validationErr)}
		}
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	return nil
}

func compileSchema(schema map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("frontmatter.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("frontmatter.json")
}

// toJSONValue normalizes YAML-decoded values (ints, nested maps) into the
// shapes the schema validator expects.
func toJSONValue(meta Frontmatter) (any, error) {
	if meta == nil {
		meta = Frontmatter{}
	}
	encoded, err := json.Marshal(map[string]any(meta))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(encoded, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
