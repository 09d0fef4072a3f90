package extract

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
)

// terraformBlock decodes a "terraform" settings block: the required_version
// attribute and any nested required_providers blocks. Backend and cloud
// configuration is recognized but carries nothing the inspector records.
func (fx *fileExtract) terraformBlock(block *hcl.Block) {
	content, diags := schema.Terraform.DecodeBody(block.Body)
	fx.appendDiags(diags)

	if attr, defined := content.Attributes["required_version"]; defined {
		var constraint string
		if fx.decodeString(attr, &constraint) {
			fx.frag.RequiredCore = append(fx.frag.RequiredCore, constraint)
			fx.checkConstraint(constraint, attr.Expr.Range())
		}
	}

	for _, inner := range content.Blocks {
		if inner.Type == "required_providers" {
			fx.requiredProvidersBlock(inner)
		}
	}
}

// requiredProvidersBlock decodes one required_providers block. Each entry is
// either the object form {source, version, configuration_aliases} or the
// legacy string form carrying a bare version constraint. A malformed entry
// costs an error diagnostic; its siblings still decode.
func (fx *fileExtract) requiredProvidersBlock(block *hcl.Block) {
	attrs, hclDiags := block.Body.JustAttributes()
	fx.appendHCLDiags(hclDiags)

	for _, name := range attrNamesInOrder(attrs) {
		attr := attrs[name]
		req := &models.ProviderRequirement{}

		if pairs, mapDiags := hcl.ExprMap(attr.Expr); !mapDiags.HasErrors() {
			fx.requiredProviderObject(name, pairs, req)
		} else {
			var constraint string
			strDiags := gohcl.DecodeExpression(attr.Expr, nil, &constraint)
			if strDiags.HasErrors() {
				fx.appendDiags(models.Diagnostics{models.ErrorDiag(
					"Invalid required_providers entry",
					fmt.Sprintf("The entry for provider %q must be an object with source and version arguments, or a version constraint string.", name),
					attr.Expr.Range(),
				)})
				continue
			}
			req.VersionConstraints = append(req.VersionConstraints, constraint)
			fx.checkConstraint(constraint, attr.Expr.Range())
		}

		fx.frag.RequiredProviders = append(fx.frag.RequiredProviders, &RequiredProvider{
			Name:        name,
			Requirement: req,
			Pos:         models.SourcePosHCL(attr.Range),
		})
	}
}

// requiredProviderObject fills req from the object form of a
// required_providers entry.
func (fx *fileExtract) requiredProviderObject(name string, pairs []hcl.KeyValuePair, req *models.ProviderRequirement) {
	for _, pair := range pairs {
		key, keyDiags := pair.Key.Value(nil)
		if keyDiags.HasErrors() || !key.IsKnown() {
			fx.appendHCLDiags(keyDiags)
			continue
		}

		switch key.AsString() {
		case "source":
			attr := &hcl.Attribute{Name: "source", Expr: pair.Value, Range: pair.Value.Range()}
			fx.decodeString(attr, &req.Source)
		case "version":
			var constraint string
			attr := &hcl.Attribute{Name: "version", Expr: pair.Value, Range: pair.Value.Range()}
			if fx.decodeString(attr, &constraint) {
				req.VersionConstraints = append(req.VersionConstraints, constraint)
				fx.checkConstraint(constraint, pair.Value.Range())
			}
		case "configuration_aliases":
			fx.configurationAliases(name, pair.Value, req)
		default:
			fx.appendDiags(models.Diagnostics{models.WarnDiag(
				"Unsupported argument",
				fmt.Sprintf("The entry for provider %q has an argument named %q that is not expected here.", name, key.AsString()),
				pair.Value.Range(),
			)})
		}
	}
}

// configurationAliases decodes the configuration_aliases list of a
// required_providers entry: a list of references like aws.west.
func (fx *fileExtract) configurationAliases(name string, expr hcl.Expression, req *models.ProviderRequirement) {
	exprs, listDiags := hcl.ExprList(expr)
	if listDiags.HasErrors() {
		fx.appendDiags(models.Diagnostics{models.ErrorDiag(
			"Invalid configuration_aliases",
			fmt.Sprintf("The configuration_aliases for provider %q must be a list of provider references like %s.alias.", name, name),
			expr.Range(),
		)})
		return
	}
	for _, item := range exprs {
		traversal, travDiags := hcl.AbsTraversalForExpr(item)
		if travDiags.HasErrors() || len(traversal) == 0 {
			fx.appendDiags(models.Diagnostics{models.ErrorDiag(
				"Invalid configuration_aliases",
				"Each alias must be a provider reference like aws.west.",
				item.Range(),
			)})
			continue
		}
		ref := models.ProviderRef{Name: traversal.RootName()}
		if len(traversal) > 1 {
			if attrStep, ok := traversal[1].(hcl.TraverseAttr); ok {
				ref.Alias = attrStep.Name
			}
		}
		req.ConfigurationAliases = append(req.ConfigurationAliases, ref)
	}
}

// attrNamesInOrder sorts attribute names by source position so diagnostics
// and merge behavior don't depend on map iteration order.
func attrNamesInOrder(attrs hcl.Attributes) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := attrs[names[i]].Range, attrs[names[j]].Range
		if ri.Start.Byte != rj.Start.Byte {
			return ri.Start.Byte < rj.Start.Byte
		}
		return names[i] < names[j]
	})
	return names
}
