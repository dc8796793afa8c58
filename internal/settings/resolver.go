package settings

import (
	"github.com/pkg/errors"
)

// Raw is the configured settings of one record type before normalization.
// It is either PresetNames or Inline.
type Raw interface {
	isRaw()
}

// PresetNames lists presets to expand against the preset table, in display order.
type PresetNames []string

// Inline holds definitions declared directly on the record type.
type Inline Schema

func (PresetNames) isRaw() {}
func (Inline) isRaw()      {}

// Normalize turns raw configuration into a schema.
// Preset names are looked up in presets; unknown names are dropped and the
// listed order is kept. Inline definitions are passed through.
func Normalize(raw Raw, presets Presets) (Schema, error) {
	switch r := raw.(type) {
	case nil:
		return Schema{}, nil
	case Inline:
		return Schema(r).Clone(), nil
	case PresetNames:
		if len(r) == 0 {
			return Schema{}, nil
		}

		if len(presets) == 0 {
			return nil, ErrNoPresets
		}

		out := make(Schema, 0, len(r))
		for _, name := range r {
			p, ok := presets[name]
			if !ok || out.Has(name) {
				continue
			}

			def := p.clone()
			def.Key = name
			out = append(out, def)
		}

		return out, nil
	default:
		return nil, ErrSettingsNotArray
	}
}

// Validate checks every definition and stops at the first offending one.
// On success the schema is returned unchanged.
func Validate(s Schema) (Schema, error) {
	seen := make(map[string]struct{}, len(s))

	for _, d := range s {
		if d.Key == "" {
			return nil, ErrEmptySettingKey
		}

		if _, dup := seen[d.Key]; dup {
			return nil, errors.Wrapf(ErrDuplicateSetting, "setting [%s]", d.Key)
		}

		seen[d.Key] = struct{}{}

		if len(d.Options) == 0 {
			return nil, errors.Wrapf(ErrNoOptions, "setting [%s]", d.Key)
		}

		if d.Default == "" {
			return nil, errors.Wrapf(ErrNoDefault, "setting [%s]", d.Key)
		}

		opts := make(map[string]struct{}, len(d.Options))
		for _, o := range d.Options {
			if _, dup := opts[o.Key]; dup {
				return nil, errors.Wrapf(ErrDuplicateOption, "setting [%s] option [%s]", d.Key, o.Key)
			}

			opts[o.Key] = struct{}{}
		}

		if _, ok := opts[d.Default]; !ok {
			return nil, errors.Wrapf(ErrDefaultNotInOptions, "setting [%s] default '%s'", d.Key, d.Default)
		}
	}

	return s, nil
}

// Translator looks up a catalog key and returns fallback when no translation exists.
type Translator interface {
	Translate(key, fallback string) string
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(key, fallback string) string

// Translate calls f.
func (f TranslatorFunc) Translate(key, fallback string) string {
	return f(key, fallback)
}

// LabelKey is the catalog key of a setting's label.
func LabelKey(owner, key string) string {
	return owner + ".setting_" + key + "_label"
}

// DescriptionKey is the catalog key of a setting's description.
func DescriptionKey(owner, key string) string {
	return owner + ".setting_" + key + "_description"
}

// OptionKey is the catalog key of an option label.
func OptionKey(owner, key, option string) string {
	return owner + ".setting_" + key + "_option_" + option
}

// Localize returns a copy of s with labels, descriptions and option labels
// translated under the owning record type. s itself is not modified.
func Localize(owner string, s Schema, tr Translator) Schema {
	out := s.Clone()
	if tr == nil {
		return out
	}

	for i := range out {
		d := &out[i]

		for j := range d.Options {
			d.Options[j].Label = tr.Translate(OptionKey(owner, d.Key, d.Options[j].Key), d.Options[j].Label)
		}

		d.Label = tr.Translate(LabelKey(owner, d.Key), d.Label)

		if d.Description != "" {
			d.Description = tr.Translate(DescriptionKey(owner, d.Key), d.Description)
		}
	}

	return out
}
