package settings

import (
	"maps"
)

// Values maps a setting key to the selected option key of one record.
type Values map[string]string

// Clone returns a copy of v. A nil map stays nil.
func (v Values) Clone() Values {
	return maps.Clone(v)
}

// Input is a value accepted by Field.SetValue and Collapse:
// a submitted Payload, already collapsed Values, or a multi-value
// container wrapped with FromMultiValue.
type Input interface {
	collapse() (Values, error)
}

// Payload is the widget's submission: one row per index, keys[i] paired with vals[i].
type Payload struct {
	Keys []string `form:"key" json:"key" validate:"dive,max=255"`
	Vals []string `form:"val" json:"val" validate:"dive,max=255"`
}

// MultiValuer is implemented by containers that hold a stored key/value map.
type MultiValuer interface {
	MultiValues() map[string]string
}

type multiValue struct {
	m MultiValuer
}

// FromMultiValue wraps a multi-value container so it can be used as Input.
func FromMultiValue(m MultiValuer) Input {
	return multiValue{m: m}
}

func (p Payload) collapse() (Values, error) { return Format(p) }

func (v Values) collapse() (Values, error) { return v.Clone(), nil }

func (mv multiValue) collapse() (Values, error) {
	if mv.m == nil {
		return nil, nil
	}

	return Values(maps.Clone(mv.m.MultiValues())), nil
}

// IsUnformatted reports whether in is still a raw submission that needs Format.
func IsUnformatted(in Input) bool {
	switch p := in.(type) {
	case Payload:
		return true
	case *Payload:
		return p != nil
	default:
		return false
	}
}

// Format collapses submitted rows into a map. Rows with an empty key or an
// empty value are dropped; a later duplicate key overwrites an earlier one.
// Key and value rows must have the same length.
func Format(p Payload) (Values, error) {
	if len(p.Keys) != len(p.Vals) {
		return nil, ErrPayloadLengthMismatch
	}

	out := make(Values, len(p.Keys))
	for i, k := range p.Keys {
		if k != "" && p.Vals[i] != "" {
			out[k] = p.Vals[i]
		}
	}

	return out, nil
}

// Collapse normalizes any Input into a plain map. A nil input yields a nil map.
func Collapse(in Input) (Values, error) {
	if in == nil {
		return nil, nil
	}

	if p, ok := in.(*Payload); ok {
		if p == nil {
			return nil, nil
		}

		return Format(*p)
	}

	return in.collapse()
}
