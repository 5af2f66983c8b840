// Package descriptor provides tolerant, typed access to the untyped
// key/value tables an embedding scripting layer supplies when describing
// dialog controls. Lookups never fail: a missing key or a value of the
// wrong dynamic type yields the caller's default, which is how every
// control applies its per-field defaults.
package descriptor

// Source is the minimal capability a scripting runtime (or any other
// table-like host structure) must expose for control construction. Get
// reports the dynamically-typed value stored under name, if any.
type Source interface {
	Get(name string) (any, bool)
}

// Values adapts a plain map to the Source interface. It is the
// implementation used by the document loader, tests, and programmatic
// callers.
type Values map[string]any

// Get implements Source.
func (v Values) Get(name string) (any, bool) {
	value, ok := v[name]
	return value, ok
}

// String reads a string field, returning def when the key is absent or not
// a string.
func String(src Source, name, def string) string {
	if src == nil {
		return def
	}
	if value, ok := src.Get(name); ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return def
}

// Int reads an integer field. Numeric values of any width are accepted;
// floating point values are truncated. Anything else yields def.
func Int(src Source, name string, def int) int {
	if src == nil {
		return def
	}
	value, ok := src.Get(name)
	if !ok {
		return def
	}
	switch n := value.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float32:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// Float reads a numeric field as float64, accepting integer values as well.
// Anything else yields def.
func Float(src Source, name string, def float64) float64 {
	if src == nil {
		return def
	}
	value, ok := src.Get(name)
	if !ok {
		return def
	}
	switch n := value.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return def
	}
}

// Bool reads a boolean field, returning def when the key is absent or not a
// bool. Numeric and string truthiness are deliberately not applied.
func Bool(src Source, name string, def bool) bool {
	if src == nil {
		return def
	}
	if value, ok := src.Get(name); ok {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	return def
}

// StringSlice reads an indexable sub-collection under name, keeping only
// the entries that are strings and preserving their order. Non-string
// entries are skipped silently; a missing or non-sequence value yields nil.
func StringSlice(src Source, name string) []string {
	if src == nil {
		return nil
	}
	value, ok := src.Get(name)
	if !ok {
		return nil
	}
	switch seq := value.(type) {
	case []string:
		out := make([]string, len(seq))
		copy(out, seq)
		return out
	case []any:
		var out []string
		for _, entry := range seq {
			if s, ok := entry.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
