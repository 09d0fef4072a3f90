package extract

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
	"tfinspect/internal/staticeval"
)

// variableBlock decodes a "variable" block.
func (fx *fileExtract) variableBlock(block *hcl.Block) {
	content, diags := schema.Variable.DecodeBody(block.Body)
	fx.appendDiags(diags)

	v := &models.Variable{
		Name: block.Labels[0],
		Pos:  models.SourcePosHCL(block.DefRange),
	}

	if attr, defined := content.Attributes["type"]; defined {
		// Type constraints are recorded as raw source text rather than
		// interpreted, so the inspector keeps working as the type expression
		// syntax evolves. Old configurations may give the type as a quoted
		// keyword, so that form is tried first.
		var legacy string
		if valDiags := gohcl.DecodeExpression(attr.Expr, nil, &legacy); !valDiags.HasErrors() {
			v.Type = legacy
		} else {
			rng := attr.Expr.Range()
			v.Type = string(rng.SliceBytes(fx.file.Bytes))
		}
	}

	if attr, defined := content.Attributes["description"]; defined {
		fx.decodeString(attr, &v.Description)
	}
	if attr, defined := content.Attributes["sensitive"]; defined {
		fx.decodeBool(attr, &v.Sensitive)
	}

	if attr, defined := content.Attributes["default"]; defined {
		v.Default = staticeval.Evaluate(attr.Expr)
		if !v.Default.Known {
			fx.appendDiags(models.Diagnostics{models.WarnDiag(
				"Variable default is not statically known",
				fmt.Sprintf("The default for variable %q could not be evaluated statically: %s.", v.Name, v.Default.Reason),
				attr.Expr.Range(),
			)})
		}
	}

	fx.frag.Variables = append(fx.frag.Variables, v)
}

// outputBlock decodes an "output" block. Output values normally reference
// resources, so a value that is not statically known is expected and carries
// only the unknown marker, without a diagnostic.
func (fx *fileExtract) outputBlock(block *hcl.Block) {
	content, diags := schema.Output.DecodeBody(block.Body)
	fx.appendDiags(diags)

	o := &models.Output{
		Name: block.Labels[0],
		Pos:  models.SourcePosHCL(block.DefRange),
	}

	if attr, defined := content.Attributes["description"]; defined {
		fx.decodeString(attr, &o.Description)
	}
	if attr, defined := content.Attributes["sensitive"]; defined {
		fx.decodeBool(attr, &o.Sensitive)
	}
	if attr, defined := content.Attributes["value"]; defined {
		o.Value = staticeval.Evaluate(attr.Expr)
	}

	fx.frag.Outputs = append(fx.frag.Outputs, o)
}
