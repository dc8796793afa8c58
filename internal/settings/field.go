package settings

// DefaultFieldName is the name of the settings field and of the column it is stored in.
const DefaultFieldName = "ArbitrarySettings"

// RenderOption is one option of a rendered setting.
type RenderOption struct {
	Val      string
	Label    string
	Selected bool
}

// RenderSetting is one setting as handed to the template layer.
type RenderSetting struct {
	Key         string
	Label       string
	Description string
	Options     []RenderOption
}

// Field is a form field editing the settings of one record.
// It owns a private copy of its schema; mutators only affect that copy.
type Field struct {
	name   string
	title  string
	source Schema
	value  Values
}

// NewField creates a field for source. An empty title falls back to name.
func NewField(name, title string, source Schema) *Field {
	if title == "" {
		title = name
	}

	return &Field{
		name:   name,
		title:  title,
		source: source.Clone(),
	}
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Title returns the field title.
func (f *Field) Title() string { return f.title }

// ID returns the DOM id of the rendered field.
func (f *Field) ID() string { return "Form_" + f.name }

// KeyName is the form name of the submitted key rows.
func (f *Field) KeyName() string { return f.name + "[key][]" }

// ValueName is the form name of the submitted value rows.
func (f *Field) ValueName() string { return f.name + "[val][]" }

// Source returns a copy of the field's current schema.
func (f *Field) Source() Schema { return f.source.Clone() }

// Value returns a copy of the field's current values.
func (f *Field) Value() Values { return f.value.Clone() }

// Exclude removes the given settings. Unknown keys are ignored.
func (f *Field) Exclude(keys ...string) *Field {
	for _, k := range keys {
		if i := f.source.index(k); i >= 0 {
			f.source = append(f.source[:i], f.source[i+1:]...)
		}
	}

	return f
}

// Include reduces the schema to the given settings, in the given order.
// Unknown keys are ignored.
func (f *Field) Include(keys ...string) *Field {
	out := make(Schema, 0, len(keys))
	for _, k := range keys {
		if out.Has(k) {
			continue
		}

		if d, ok := f.source.Get(k); ok {
			out = append(out, d)
		}
	}

	f.source = out

	return f
}

// UpdateDefaultForKey replaces the default of key with newDefault when both
// the setting and the option exist. Otherwise the schema is left as is.
func (f *Field) UpdateDefaultForKey(key, newDefault string) *Field {
	i := f.source.index(key)
	if i < 0 || !f.source[i].HasOption(newDefault) {
		return f
	}

	f.source[i].Default = newDefault

	return f
}

// Settings builds the render data. An option is selected when it matches the
// stored value of its setting, or the default when nothing is stored.
func (f *Field) Settings() []RenderSetting {
	out := make([]RenderSetting, 0, len(f.source))

	for _, d := range f.source {
		current, stored := f.value[d.Key]
		if !stored {
			current = d.Default
		}

		opts := make([]RenderOption, 0, len(d.Options))
		for _, o := range d.Options {
			opts = append(opts, RenderOption{
				Val:      o.Key,
				Label:    o.Label,
				Selected: o.Key == current,
			})
		}

		out = append(out, RenderSetting{
			Key:         d.Key,
			Label:       d.Label,
			Description: d.Description,
			Options:     opts,
		})
	}

	return out
}

// SetValue normalizes in into a plain map and stores it on the field.
func (f *Field) SetValue(in Input) error {
	v, err := Collapse(in)
	if err != nil {
		return err
	}

	f.value = v

	return nil
}
