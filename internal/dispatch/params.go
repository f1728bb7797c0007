package dispatch

import "strconv"

// Parameters is the free-form argument map carried by responses and buttons.
// Lookups treat falsy values (missing, null, "", 0, false) as absent.
type Parameters map[string]any

// String returns the value at key as a string, or "" when absent.
func (p Parameters) String(key string) string {
	return p.StringOr(key, "")
}

// StringOr returns the value at key as a string, or def when absent.
func (p Parameters) StringOr(key, def string) string {
	v := p.Value(key)
	switch s := v.(type) {
	case nil:
		return def
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return "true"
	default:
		return def
	}
}

// Value returns the raw value at key, or nil when absent.
func (p Parameters) Value(key string) any {
	v, ok := p[key]
	if !ok || !truthy(v) {
		return nil
	}
	return v
}

// ValueOr returns the raw value at key, or def when absent.
func (p Parameters) ValueOr(key string, def any) any {
	if v := p.Value(key); v != nil {
		return v
	}
	return def
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return true
	}
}
