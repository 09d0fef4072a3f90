package models

// Variable represents a single "variable" block.
type Variable struct {
	Name string `json:"name"`

	// Type is the raw, unevaluated type-expression source text. Type
	// constraints are not interpreted by the inspector.
	Type string `json:"type,omitempty"`

	Description string `json:"description,omitempty"`

	// Default is the statically-evaluated default value, nil when the block
	// declares no default at all.
	Default *StaticValue `json:"default,omitempty"`

	Sensitive bool `json:"sensitive,omitempty"`

	Pos SourcePos `json:"pos"`
}
