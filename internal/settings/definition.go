package settings

// Option is one selectable value of a setting.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Definition describes one configurable setting.
// Options are kept in display order.
type Definition struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Default     string   `json:"default"`
	Options     []Option `json:"options"`
}

// HasOption reports whether key is one of the definition's option keys.
func (d Definition) HasOption(key string) bool {
	for _, o := range d.Options {
		if o.Key == key {
			return true
		}
	}

	return false
}

// clone returns a copy that shares no memory with d.
func (d Definition) clone() Definition {
	out := d
	out.Options = append([]Option(nil), d.Options...)

	return out
}

// Schema is the ordered set of settings applicable to a record type.
type Schema []Definition

// Get returns the definition for key.
func (s Schema) Get(key string) (Definition, bool) {
	if i := s.index(key); i >= 0 {
		return s[i], true
	}

	return Definition{}, false
}

// Has reports whether key is part of the schema.
func (s Schema) Has(key string) bool {
	return s.index(key) >= 0
}

// Keys returns the setting keys in schema order.
func (s Schema) Keys() []string {
	keys := make([]string, 0, len(s))
	for _, d := range s {
		keys = append(keys, d.Key)
	}

	return keys
}

// Defaults returns a map of every setting key to its default option.
func (s Schema) Defaults() Values {
	out := make(Values, len(s))
	for _, d := range s {
		out[d.Key] = d.Default
	}

	return out
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}

	out := make(Schema, len(s))
	for i, d := range s {
		out[i] = d.clone()
	}

	return out
}

func (s Schema) index(key string) int {
	for i, d := range s {
		if d.Key == key {
			return i
		}
	}

	return -1
}

// Presets maps a preset name to a reusable definition.
type Presets map[string]Definition
