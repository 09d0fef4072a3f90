package models

// Module is the merged, structured summary of one Terraform module
// directory's declarations. It is the sole result of an inspection run and
// is not mutated after the merge step completes.
type Module struct {
	// Path is the module's root directory as given to the loader.
	Path string `json:"path"`

	// RequiredCore holds one raw version-constraint string per
	// required_version declaration, in file order. Duplicates are kept.
	RequiredCore []string `json:"required_core,omitempty"`

	RequiredProviders map[string]*ProviderRequirement `json:"required_providers,omitempty"`

	Variables map[string]*Variable `json:"variables,omitempty"`
	Outputs   map[string]*Output   `json:"outputs,omitempty"`

	// ProviderConfigs is keyed by provider name, or "name.alias" when the
	// configuration carries an alias.
	ProviderConfigs map[string]*ProviderConfig `json:"provider_configs,omitempty"`

	// ManagedResources and DataResources are keyed by the canonical
	// "type.name" address.
	ManagedResources map[string]*Resource `json:"managed_resources,omitempty"`
	DataResources    map[string]*Resource `json:"data_resources,omitempty"`

	ModuleCalls map[string]*ModuleCall `json:"module_calls,omitempty"`

	Diagnostics Diagnostics `json:"diagnostics,omitempty"`
}

// NewModule creates an empty Module rooted at the given directory with all
// maps allocated, so callers never need to nil-check them.
func NewModule(path string) *Module {
	return &Module{
		Path:              path,
		RequiredProviders: map[string]*ProviderRequirement{},
		Variables:         map[string]*Variable{},
		Outputs:           map[string]*Output{},
		ProviderConfigs:   map[string]*ProviderConfig{},
		ManagedResources:  map[string]*Resource{},
		DataResources:     map[string]*Resource{},
		ModuleCalls:       map[string]*ModuleCall{},
	}
}
