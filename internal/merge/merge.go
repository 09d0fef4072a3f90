// Package merge combines the per-file fragments of a module directory into
// one Module. The merge is a sequential, deterministic reduction: primary
// files come first and override files last, each group ordered
// lexicographically by filename, so results and diagnostic ordering are
// reproducible no matter what order the files were extracted in. Merging
// never fails; a fully malformed module still yields a Module, just one with
// empty maps and a diagnostics list explaining why.
package merge

import (
	"fmt"
	"path/filepath"
	"sort"

	"tfinspect/internal/discover"
	"tfinspect/internal/extract"
	"tfinspect/internal/models"
)

// Module merges fragments into the Module for the directory at path.
//
// Per-field rules: required_core concatenates across files with duplicates
// preserved; required_providers union by name with version constraints
// concatenated and conflicting sources reported; every other map is a keyed
// union where the first-seen declaration wins and later duplicates each cost
// an error diagnostic. Merge-time diagnostics come after all per-file ones.
func Module(path string, frags []*extract.Fragment) *models.Module {
	ordered := make([]*extract.Fragment, len(frags))
	copy(ordered, frags)
	sort.SliceStable(ordered, func(i, j int) bool {
		oi := discover.IsOverrideFile(filepath.Base(ordered[i].Filename))
		oj := discover.IsOverrideFile(filepath.Base(ordered[j].Filename))
		if oi != oj {
			// Override files merge after every primary file, so a primary
			// declaration is always the first seen.
			return oj
		}
		return ordered[i].Filename < ordered[j].Filename
	})

	mod := models.NewModule(path)
	var mergeDiags models.Diagnostics

	for _, frag := range ordered {
		mod.Diagnostics = append(mod.Diagnostics, frag.Diagnostics...)

		mod.RequiredCore = append(mod.RequiredCore, frag.RequiredCore...)

		for _, entry := range frag.RequiredProviders {
			mergeDiags = append(mergeDiags, mergeRequiredProvider(mod, entry)...)
		}

		for _, v := range frag.Variables {
			if prev, exists := mod.Variables[v.Name]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("variable", v.Name, prev.Pos, v.Pos))
				continue
			}
			mod.Variables[v.Name] = v
		}

		for _, o := range frag.Outputs {
			if prev, exists := mod.Outputs[o.Name]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("output", o.Name, prev.Pos, o.Pos))
				continue
			}
			mod.Outputs[o.Name] = o
		}

		for _, p := range frag.ProviderConfigs {
			key := p.Key()
			if prev, exists := mod.ProviderConfigs[key]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("provider configuration", key, prev.Pos, p.Pos))
				continue
			}
			mod.ProviderConfigs[key] = p
		}

		for _, r := range frag.ManagedResources {
			addr := r.Address()
			if prev, exists := mod.ManagedResources[addr]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("resource", addr, prev.Pos, r.Pos))
				continue
			}
			mod.ManagedResources[addr] = r
		}

		for _, r := range frag.DataResources {
			addr := r.Address()
			if prev, exists := mod.DataResources[addr]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("data resource", addr, prev.Pos, r.Pos))
				continue
			}
			mod.DataResources[addr] = r
		}

		for _, mc := range frag.ModuleCalls {
			if prev, exists := mod.ModuleCalls[mc.Name]; exists {
				mergeDiags = append(mergeDiags, duplicateDiag("module call", mc.Name, prev.Pos, mc.Pos))
				continue
			}
			mod.ModuleCalls[mc.Name] = mc
		}
	}

	mod.Diagnostics = append(mod.Diagnostics, mergeDiags...)
	return mod
}

// mergeRequiredProvider folds one required_providers entry into the module.
// Version constraint lists and configuration aliases concatenate; an entry
// that declares a different source than an earlier one is a conflict, and
// the earlier source is kept.
func mergeRequiredProvider(mod *models.Module, entry *extract.RequiredProvider) models.Diagnostics {
	existing, exists := mod.RequiredProviders[entry.Name]
	if !exists {
		mod.RequiredProviders[entry.Name] = entry.Requirement
		return nil
	}

	var diags models.Diagnostics
	if entry.Requirement.Source != "" {
		if existing.Source == "" {
			existing.Source = entry.Requirement.Source
		} else if existing.Source != entry.Requirement.Source {
			pos := entry.Pos
			diags = append(diags, &models.Diagnostic{
				Severity: models.SeverityError,
				Summary:  "Multiple provider source attributes",
				Detail: fmt.Sprintf("Found multiple source attributes for provider %s: %q, %q. The first declaration is kept.",
					entry.Name, existing.Source, entry.Requirement.Source),
				Pos: &pos,
			})
		}
	}
	existing.VersionConstraints = append(existing.VersionConstraints, entry.Requirement.VersionConstraints...)
	existing.ConfigurationAliases = append(existing.ConfigurationAliases, entry.Requirement.ConfigurationAliases...)
	return diags
}

// duplicateDiag builds the error for a duplicate declaration, citing the
// later declaration as the conflict source.
func duplicateDiag(kind, key string, first, dup models.SourcePos) *models.Diagnostic {
	pos := dup
	return &models.Diagnostic{
		Severity: models.SeverityError,
		Summary:  fmt.Sprintf("Duplicate %s declaration", kind),
		Detail: fmt.Sprintf("A %s named %q was already declared at %s:%d. This declaration is ignored.",
			kind, key, first.Filename, first.Line),
		Pos: &pos,
	}
}
