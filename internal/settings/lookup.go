package settings

// SettingByName returns the effective value of the setting name.
// A stored value always wins. Without one, the schema default is returned
// when returnDefault is set. The boolean is false when neither exists.
func SettingByName(values Values, schema Schema, name string, returnDefault bool) (string, bool) {
	if v, ok := values[name]; ok {
		return v, true
	}

	if !returnDefault {
		return "", false
	}

	if d, ok := schema.Get(name); ok && d.Default != "" {
		return d.Default, true
	}

	return "", false
}

// Effective merges stored values over the schema defaults. Stored keys that
// are no longer part of the schema are kept.
func Effective(values Values, schema Schema) Values {
	out := schema.Defaults()
	for k, v := range values {
		out[k] = v
	}

	return out
}
