package models

// ResourceMode distinguishes managed resources from data resources.
type ResourceMode string

const (
	// ManagedResourceMode is a "resource" block.
	ManagedResourceMode ResourceMode = "managed"
	// DataResourceMode is a "data" block.
	DataResourceMode ResourceMode = "data"
)

// Repetition records whether a block declares count or for_each. Only the
// presence of the meta-argument is recorded; its expression is not evaluated.
type Repetition string

const (
	RepetitionNone    Repetition = ""
	RepetitionCount   Repetition = "count"
	RepetitionForEach Repetition = "for_each"
)

// Resource represents a single "resource" or "data" block.
type Resource struct {
	Mode ResourceMode `json:"mode"`
	Type string       `json:"type"`
	Name string       `json:"name"`

	// Provider is the raw explicit provider reference (e.g. "aws.west"),
	// empty when the block has no provider argument. No default is inferred.
	Provider string `json:"provider,omitempty"`

	// DependsOn holds the raw reference strings of a depends_on list,
	// unresolved, in declaration order.
	DependsOn []string `json:"depends_on,omitempty"`

	Repetition Repetition `json:"repetition,omitempty"`

	// Provisioners lists the type labels of provisioner blocks in order.
	Provisioners []string `json:"provisioners,omitempty"`

	Pos SourcePos `json:"pos"`
}

// Address returns the canonical "type.name" address that uniquely identifies
// the resource within its mode.
func (r *Resource) Address() string {
	return r.Type + "." + r.Name
}
