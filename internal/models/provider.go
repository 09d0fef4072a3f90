package models

// ProviderRequirement represents one entry in a required_providers block,
// merged across all declarations for the same local name.
type ProviderRequirement struct {
	// Source is the declared provider source address (e.g. "hashicorp/aws").
	// It stays empty when the configuration never declares one; legacy
	// resolution rules are not applied here.
	Source string `json:"source,omitempty"`

	// VersionConstraints holds raw constraint strings in declaration order.
	VersionConstraints []string `json:"version_constraints,omitempty"`

	// ConfigurationAliases lists additional provider configurations the
	// module expects its caller to pass in.
	ConfigurationAliases []ProviderRef `json:"configuration_aliases,omitempty"`
}

// ProviderRef is a reference to a provider configuration, like "aws" or
// "aws.west".
type ProviderRef struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

// String returns the reference in its source form.
func (r ProviderRef) String() string {
	if r.Alias != "" {
		return r.Name + "." + r.Alias
	}
	return r.Name
}

// ProviderConfig represents a single "provider" block. Provider-specific
// arguments are opaque to the inspector and are not modeled.
type ProviderConfig struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`

	// VersionConstraint is the raw version argument, kept even though the
	// in-block form is deprecated upstream.
	VersionConstraint string `json:"version_constraint,omitempty"`

	Pos SourcePos `json:"pos"`
}

// Key returns the map key for the configuration: the provider name, or
// "name.alias" when aliased.
func (p *ProviderConfig) Key() string {
	if p.Alias != "" {
		return p.Name + "." + p.Alias
	}
	return p.Name
}
