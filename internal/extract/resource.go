package extract

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
)

// resourceBlock decodes a "resource" or "data" block. Only meta-arguments
// and well-known nested blocks are modeled; the resource's own arguments are
// provider-specific and opaque to the inspector.
func (fx *fileExtract) resourceBlock(block *hcl.Block) {
	content, diags := schema.Resource.DecodeBody(block.Body)
	fx.appendDiags(diags)

	r := &models.Resource{
		Type: block.Labels[0],
		Name: block.Labels[1],
		Pos:  models.SourcePosHCL(block.DefRange),
	}
	if block.Type == "data" {
		r.Mode = models.DataResourceMode
	} else {
		r.Mode = models.ManagedResourceMode
	}

	if attr, defined := content.Attributes["provider"]; defined {
		fx.providerRef(attr, r)
	}
	if attr, defined := content.Attributes["depends_on"]; defined {
		r.DependsOn = fx.dependsOn(attr)
	}

	r.Repetition = fx.repetition(content)

	for _, inner := range content.Blocks {
		if inner.Type == "provisioner" {
			r.Provisioners = append(r.Provisioners, inner.Labels[0])
		}
	}

	if r.Mode == models.DataResourceMode {
		fx.frag.DataResources = append(fx.frag.DataResources, r)
	} else {
		fx.frag.ManagedResources = append(fx.frag.ManagedResources, r)
	}
}

// providerRef decodes an explicit provider argument. The current convention
// is a naked traversal like aws.west, but quoted references from older
// configurations are still accepted.
func (fx *fileExtract) providerRef(attr *hcl.Attribute, r *models.Resource) {
	traversal, travDiags := hcl.AbsTraversalForExpr(attr.Expr)
	if travDiags.HasErrors() {
		traversal = nil

		var quoted string
		if valDiags := gohcl.DecodeExpression(attr.Expr, nil, &quoted); !valDiags.HasErrors() {
			parsed, strDiags := hclsyntax.ParseTraversalAbs([]byte(quoted), "", hcl.Pos{Line: 1, Column: 1})
			if !strDiags.HasErrors() {
				traversal = parsed
			}
		}
	}

	if len(traversal) == 0 {
		fx.appendDiags(models.Diagnostics{models.ErrorDiag(
			"Invalid provider reference",
			"The provider argument requires a provider name followed by an optional alias, like \"aws.west\".",
			attr.Expr.Range(),
		)})
		return
	}
	r.Provider = traversalRef(traversal)
}

// dependsOn decodes a depends_on list into raw, unresolved reference
// strings. Invalid items cost a diagnostic each; valid siblings are kept.
func (fx *fileExtract) dependsOn(attr *hcl.Attribute) []string {
	exprs, listDiags := hcl.ExprList(attr.Expr)
	if listDiags.HasErrors() {
		fx.appendDiags(models.Diagnostics{models.ErrorDiag(
			"Invalid depends_on argument",
			"The depends_on argument must be a list of references to other declarations.",
			attr.Expr.Range(),
		)})
		return nil
	}

	var refs []string
	for _, item := range exprs {
		traversal, travDiags := hcl.AbsTraversalForExpr(item)
		if travDiags.HasErrors() || len(traversal) == 0 {
			fx.appendDiags(models.Diagnostics{models.ErrorDiag(
				"Invalid depends_on reference",
				"Each depends_on element must be a reference like aws_instance.example.",
				item.Range(),
			)})
			continue
		}
		refs = append(refs, traversalRef(traversal))
	}
	return refs
}
