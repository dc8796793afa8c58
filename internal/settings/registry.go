package settings

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FieldLabelKey is the catalog key of the settings field title.
	FieldLabelKey = "SettingsField.Label"

	defaultFieldTitle = "Settings"
)

// Registry holds the settings configuration of every record type together
// with the shared preset table. It is not modified after construction.
type Registry struct {
	presets Presets
	types   map[string]Raw
}

// NewRegistry creates a registry from a preset table and per-type raw settings.
func NewRegistry(presets Presets, types map[string]Raw) *Registry {
	r := &Registry{
		presets: make(Presets, len(presets)),
		types:   make(map[string]Raw, len(types)),
	}

	for name, d := range presets {
		r.presets[name] = d.clone()
	}

	for name, raw := range types {
		r.types[name] = raw
	}

	return r
}

// Types returns the configured record type names, sorted.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.types))
	for name := range r.types {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// HasType reports whether recordType has settings configured.
func (r *Registry) HasType(recordType string) bool {
	_, ok := r.types[recordType]
	return ok
}

// Resolve normalizes and validates the settings of recordType.
// A record type without configuration resolves to an empty schema.
func (r *Registry) Resolve(recordType string) (Schema, error) {
	s, err := Normalize(r.types[recordType], r.presets)
	if err != nil {
		return nil, errors.Wrapf(err, "record type [%s]", recordType)
	}

	if _, err = Validate(s); err != nil {
		return nil, errors.Wrapf(err, "record type [%s]", recordType)
	}

	return s, nil
}

// ValidateAll resolves every record type and returns the first error.
func (r *Registry) ValidateAll() error {
	for _, name := range r.Types() {
		if _, err := r.Resolve(name); err != nil {
			return err
		}
	}

	return nil
}

// FieldFor builds a localized settings field for recordType.
func (r *Registry) FieldFor(recordType string, tr Translator) (*Field, error) {
	s, err := r.Resolve(recordType)
	if err != nil {
		return nil, err
	}

	title := defaultFieldTitle
	if tr != nil {
		title = tr.Translate(FieldLabelKey, defaultFieldTitle)
	}

	return NewField(DefaultFieldName, title, Localize(recordType, s, tr)), nil
}

// LoadRegistry reads a yaml schema file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read settings schema file")
	}

	return ParseRegistry(data)
}

// ParseRegistry decodes a yaml schema document. The top level holds a
// "presets" mapping and a "types" mapping. Each type is either a sequence
// of preset names or a mapping of inline definitions; mapping order is kept.
func ParseRegistry(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse settings schema file")
	}

	r := &Registry{
		presets: Presets{},
		types:   map[string]Raw{},
	}

	// empty document
	if len(doc.Content) == 0 {
		return r, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, ErrMalformedSchemaFile
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		section, body := root.Content[i].Value, root.Content[i+1]

		switch section {
		case "presets":
			if err := decodePresets(body, r.presets); err != nil {
				return nil, err
			}
		case "types":
			if err := decodeTypes(body, r.types); err != nil {
				return nil, err
			}
		}
	}

	return r, nil
}

func decodePresets(n *yaml.Node, into Presets) error {
	if isNull(n) {
		return nil
	}

	if n.Kind != yaml.MappingNode {
		return errors.Wrap(ErrMalformedSchemaFile, "presets")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value

		d, err := decodeDefinition(name, n.Content[i+1])
		if err != nil {
			return errors.Wrapf(err, "preset [%s]", name)
		}

		into[name] = d
	}

	return nil
}

func decodeTypes(n *yaml.Node, into map[string]Raw) error {
	if isNull(n) {
		return nil
	}

	if n.Kind != yaml.MappingNode {
		return errors.Wrap(ErrMalformedSchemaFile, "types")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		name, body := n.Content[i].Value, n.Content[i+1]

		raw, err := decodeRaw(body)
		if err != nil {
			return errors.Wrapf(err, "record type [%s]", name)
		}

		into[name] = raw
	}

	return nil
}

func decodeRaw(n *yaml.Node) (Raw, error) {
	switch {
	case isNull(n):
		return nil, nil
	case n.Kind == yaml.SequenceNode:
		names := make(PresetNames, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, ErrSettingsNotArray
			}

			names = append(names, item.Value)
		}

		return names, nil
	case n.Kind == yaml.MappingNode:
		defs := make(Inline, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value

			d, err := decodeDefinition(key, n.Content[i+1])
			if err != nil {
				return nil, errors.Wrapf(err, "setting [%s]", key)
			}

			defs = append(defs, d)
		}

		return defs, nil
	default:
		return nil, ErrSettingsNotArray
	}
}

func decodeDefinition(key string, n *yaml.Node) (Definition, error) {
	d := Definition{Key: key}

	if n.Kind != yaml.MappingNode {
		return d, ErrMalformedDefinition
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		field, value := n.Content[i].Value, n.Content[i+1]

		switch field {
		case "label":
			d.Label = value.Value
		case "description":
			d.Description = value.Value
		case "default":
			d.Default = value.Value
		case "options":
			if value.Kind != yaml.MappingNode {
				continue
			}

			for j := 0; j+1 < len(value.Content); j += 2 {
				d.Options = append(d.Options, Option{
					Key:   value.Content[j].Value,
					Label: value.Content[j+1].Value,
				})
			}
		}
	}

	return d, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}
