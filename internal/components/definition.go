package components

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-mdx/pkg/view"
)

var tagNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\-_.:]*$`)

// Definition declares a wrapper component without Go code: the marker renders
// as Element with the declared classes and attributes, optional static Text,
// and the marker's children. The marker's own id, classes and valued
// attributes are forwarded onto the wrapper.
type Definition struct {
	Name       string            `json:"name" yaml:"name" mapstructure:"name"`
	Element    string            `json:"element" yaml:"element" mapstructure:"element"`
	Classes    []string          `json:"classes,omitempty" yaml:"classes" mapstructure:"classes"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes" mapstructure:"attributes"`
	Text       string            `json:"text,omitempty" yaml:"text" mapstructure:"text"`
}

// Validate checks that the definition names a marker and a wrapper element.
func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Match(tagNamePattern)),
		validation.Field(&d.Element, validation.Required, validation.Match(tagNamePattern)),
	)
}

// Component builds the wrapper component for the definition.
func (d Definition) Component() Component {
	keys := make([]string, 0, len(d.Attributes))
	for key := range d.Attributes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return ComponentFunc(func(props Props) view.Node {
		el := view.NewElement(d.Element)
		if props.ID != "" {
			el.SetID(props.ID)
		}
		for _, key := range keys {
			el.SetAttr(key, d.Attributes[key])
		}
		for _, attr := range props.Attributes {
			if attr.HasValue {
				el.SetAttr(attr.Name, attr.Value)
			}
		}
		classes := append(append([]string(nil), d.Classes...), props.Classes...)
		if len(classes) > 0 {
			el.SetClass(strings.Join(classes, " "))
		}
		if d.Text != "" {
			el.Append(view.Text(d.Text))
		}
		for _, child := range props.Children {
			el.Append(child)
		}
		return el
	})
}

// RegisterDefinitions validates and registers every definition. Nothing is
// registered when any definition is invalid.
func RegisterDefinitions(r *Registry, defs []Definition) error {
	for i, def := range defs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("components: definition %d (%s): %w", i, def.Name, err)
		}
	}
	for _, def := range defs {
		r.Register(def.Name, def.Component())
	}
	return nil
}
