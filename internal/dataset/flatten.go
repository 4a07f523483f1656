package dataset

// Flatten collapses an arbitrarily nested slice into one flat slice,
// depth-first left to right. A nil input yields an empty slice; a
// non-slice input yields a single-element slice. Placeholder entries
// the dataset uses as padding (null, false, empty string, zero) are
// dropped. Flatten is total and idempotent: Flatten(Flatten(x)) is
// always equal to Flatten(x).
func Flatten(v any) []any {
	out := []any{}
	return appendFlat(out, v)
}

func appendFlat(out []any, v any) []any {
	if isPlaceholder(v) {
		return out
	}
	seq, ok := v.([]any)
	if !ok {
		return append(out, v)
	}
	for _, e := range seq {
		out = appendFlat(out, e)
	}
	return out
}

func isPlaceholder(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	case float64:
		return t == 0
	default:
		return false
	}
}
