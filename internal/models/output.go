package models

// Output represents a single "output" block.
type Output struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Value is the statically-evaluated output value. Outputs almost always
	// reference resources, in which case this carries the unknown marker.
	Value *StaticValue `json:"value,omitempty"`

	Sensitive bool `json:"sensitive,omitempty"`

	Pos SourcePos `json:"pos"`
}
