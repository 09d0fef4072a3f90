package extract

import (
	"github.com/hashicorp/hcl/v2"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
)

// moduleCallBlock decodes a "module" block. The source address is recorded
// verbatim; input values for the child module are opaque.
func (fx *fileExtract) moduleCallBlock(block *hcl.Block) {
	content, diags := schema.ModuleCall.DecodeBody(block.Body)
	fx.appendDiags(diags)

	mc := &models.ModuleCall{
		Name: block.Labels[0],
		Pos:  models.SourcePosHCL(block.DefRange),
	}

	if attr, defined := content.Attributes["source"]; defined {
		fx.decodeString(attr, &mc.Source)
	}
	if attr, defined := content.Attributes["version"]; defined {
		if fx.decodeString(attr, &mc.VersionConstraint) && mc.VersionConstraint != "" {
			fx.checkConstraint(mc.VersionConstraint, attr.Expr.Range())
		}
	}

	mc.Repetition = fx.repetition(content)

	fx.frag.ModuleCalls = append(fx.frag.ModuleCalls, mc)
}
