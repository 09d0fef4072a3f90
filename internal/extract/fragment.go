package extract

import "tfinspect/internal/models"

// Fragment is the partial, module-shaped result produced from a single
// configuration file. Declarations are kept in slices, in declaration order,
// so the merger can apply its first-seen conflict rules deterministically.
// A Fragment holds only what its own file declares.
type Fragment struct {
	Filename string

	RequiredCore      []string
	RequiredProviders []*RequiredProvider

	Variables       []*models.Variable
	Outputs         []*models.Output
	ProviderConfigs []*models.ProviderConfig

	ManagedResources []*models.Resource
	DataResources    []*models.Resource
	ModuleCalls      []*models.ModuleCall

	Diagnostics models.Diagnostics
}

// RequiredProvider is one named entry of a required_providers block, before
// cross-file merging.
type RequiredProvider struct {
	Name        string
	Requirement *models.ProviderRequirement
	Pos         models.SourcePos
}
