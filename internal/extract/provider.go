package extract

import (
	"github.com/hashicorp/hcl/v2"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
)

// providerBlock decodes a "provider" configuration block. Only the name
// label, alias, and the deprecated in-block version argument are modeled.
func (fx *fileExtract) providerBlock(block *hcl.Block) {
	content, diags := schema.Provider.DecodeBody(block.Body)
	fx.appendDiags(diags)

	p := &models.ProviderConfig{
		Name: block.Labels[0],
		Pos:  models.SourcePosHCL(block.DefRange),
	}

	if attr, defined := content.Attributes["alias"]; defined {
		fx.decodeString(attr, &p.Alias)
	}
	if attr, defined := content.Attributes["version"]; defined {
		if fx.decodeString(attr, &p.VersionConstraint) && p.VersionConstraint != "" {
			fx.checkConstraint(p.VersionConstraint, attr.Expr.Range())
		}
	}

	fx.frag.ProviderConfigs = append(fx.frag.ProviderConfigs, p)
}
