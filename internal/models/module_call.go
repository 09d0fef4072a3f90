package models

// ModuleCall represents a "module" block: a declaration of a child module
// from inside its parent. The source address is recorded verbatim and never
// resolved.
type ModuleCall struct {
	Name   string `json:"name"`
	Source string `json:"source"`

	// VersionConstraint is the raw version argument, if any.
	VersionConstraint string `json:"version_constraint,omitempty"`

	Repetition Repetition `json:"repetition,omitempty"`

	Pos SourcePos `json:"pos"`
}
