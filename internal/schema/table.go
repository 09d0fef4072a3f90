package schema

// The schemas for every block type the inspector decodes. Opaque block
// bodies (provider, resource, module) accept arbitrary provider- or
// module-specific arguments, so unknown-name checking is disabled for them.

// Root is the schema for a configuration file's top level.
var Root = &Block{
	TolerateUnknownBlocks: true,
	Blocks: map[string]*NestedBlock{
		"terraform": {Schema: Terraform},
		"variable":  {Schema: Variable},
		"output":    {Schema: Output},
		"provider":  {Schema: Provider},
		"resource":  {Schema: Resource},
		"data":      {Schema: Resource},
		"module":    {Schema: ModuleCall},
		// locals carry expressions the inspector does not extract, but they
		// are standard configuration and should not draw a warning.
		"locals": {Ignore: true},
	},
}

// Terraform is the schema for "terraform" settings blocks.
var Terraform = &Block{
	Type: "terraform",
	Attributes: []Attribute{
		{Name: "required_version", Static: true},
		// Language experiment opt-ins carry nothing the inspector records.
		{Name: "experiments"},
	},
	Blocks: map[string]*NestedBlock{
		"required_providers": {Schema: &Block{Type: "required_providers"}},
		"backend":            {Schema: &Block{Type: "backend", LabelNames: []string{"type"}}, Ignore: true},
		"cloud":              {Schema: &Block{Type: "cloud"}, Ignore: true, Singleton: true},
		"provider_meta":      {Schema: &Block{Type: "provider_meta", LabelNames: []string{"provider"}}, Ignore: true},
	},
}

// Variable is the schema for "variable" blocks.
var Variable = &Block{
	Type:       "variable",
	LabelNames: []string{"name"},
	Attributes: []Attribute{
		{Name: "type"},
		{Name: "description", Static: true},
		// default is evaluated by the variable decoder itself so a non-static
		// value can be recorded with its reason.
		{Name: "default"},
		{Name: "sensitive", Static: true},
		{Name: "nullable"},
	},
	Blocks: map[string]*NestedBlock{
		"validation": {Schema: &Block{Type: "validation"}, Ignore: true},
	},
}

// Output is the schema for "output" blocks.
var Output = &Block{
	Type:       "output",
	LabelNames: []string{"name"},
	Attributes: []Attribute{
		{Name: "value", Required: true},
		{Name: "description", Static: true},
		{Name: "sensitive", Static: true},
		{Name: "depends_on"},
	},
	Blocks: map[string]*NestedBlock{
		"precondition": {Schema: &Block{Type: "precondition"}, Ignore: true},
	},
}

// Provider is the schema for "provider" configuration blocks. Everything
// beyond alias and version is provider-specific and opaque.
var Provider = &Block{
	Type:       "provider",
	LabelNames: []string{"name"},
	Opaque:     true,
	Attributes: []Attribute{
		{Name: "alias", Static: true},
		{Name: "version", Static: true},
	},
}

// Resource is the schema for "resource" and "data" blocks. The arguments of
// the resource itself are opaque; only meta-arguments and the well-known
// nested blocks are modeled.
var Resource = &Block{
	Type:       "resource",
	LabelNames: []string{"type", "name"},
	Opaque:     true,
	Attributes: []Attribute{
		{Name: "provider"},
		{Name: "count"},
		{Name: "for_each"},
		{Name: "depends_on"},
	},
	Blocks: map[string]*NestedBlock{
		"lifecycle":   {Schema: &Block{Type: "lifecycle"}, Singleton: true, Ignore: true},
		"connection":  {Schema: &Block{Type: "connection"}, Singleton: true, Ignore: true},
		"provisioner": {Schema: &Block{Type: "provisioner", LabelNames: []string{"type"}}},
		"dynamic":     {Schema: &Block{Type: "dynamic", LabelNames: []string{"name"}}, Ignore: true},
	},
}

// ModuleCall is the schema for "module" blocks. Input values for the child
// module are opaque.
var ModuleCall = &Block{
	Type:       "module",
	LabelNames: []string{"name"},
	Opaque:     true,
	Attributes: []Attribute{
		{Name: "source", Required: true, Static: true},
		{Name: "version", Static: true},
		{Name: "count"},
		{Name: "for_each"},
		{Name: "providers"},
		{Name: "depends_on"},
	},
}
