package models

// StaticValue is the result of static-only expression evaluation: either a
// plain Go value (string, number, bool, []any, map[string]any) or an unknown
// marker with the reason the expression could not be reduced.
type StaticValue struct {
	Known bool `json:"known"`

	// Value is populated only when Known is true.
	Value any `json:"value,omitempty"`

	// Reason explains why the expression is not statically known, e.g.
	// "references var.region".
	Reason string `json:"reason,omitempty"`
}

// KnownValue wraps a plain Go value as a known static value.
func KnownValue(v any) *StaticValue {
	return &StaticValue{Known: true, Value: v}
}

// NotStatic marks an expression as not statically resolvable.
func NotStatic(reason string) *StaticValue {
	return &StaticValue{Reason: reason}
}
