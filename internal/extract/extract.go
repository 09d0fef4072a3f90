// Package extract walks the parsed block tree of one configuration file and
// decodes it into a Fragment: the file's contribution to the module model.
// Extraction is best-effort throughout. A malformed block costs a diagnostic
// and is skipped; it never stops the extraction of sibling blocks, and one
// file never affects another.
package extract

import (
	"fmt"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"tfinspect/internal/models"
	"tfinspect/internal/schema"
)

// blockHandlers maps a top-level block type to its decode function. Adding a
// block type means adding a schema entry and a row here.
var blockHandlers = map[string]func(*fileExtract, *hcl.Block){
	"terraform": (*fileExtract).terraformBlock,
	"variable":  (*fileExtract).variableBlock,
	"output":    (*fileExtract).outputBlock,
	"provider":  (*fileExtract).providerBlock,
	"resource":  (*fileExtract).resourceBlock,
	"data":      (*fileExtract).resourceBlock,
	"module":    (*fileExtract).moduleCallBlock,
}

// File extracts a Fragment from one parsed configuration file. The given
// diagnostics from the parse step, if any, are carried into the Fragment so
// they stay scoped to this file.
func File(file *hcl.File, filename string, parseDiags models.Diagnostics) *Fragment {
	frag := &Fragment{Filename: filename}
	frag.Diagnostics = append(frag.Diagnostics, parseDiags...)
	if file == nil || file.Body == nil {
		return frag
	}

	fx := &fileExtract{frag: frag, file: file}

	content, diags := schema.Root.DecodeBody(file.Body)
	fx.appendDiags(diags)

	for _, block := range content.Blocks {
		if handle, ok := blockHandlers[block.Type]; ok {
			handle(fx, block)
		}
	}
	return frag
}

// fileExtract carries the state shared by the per-block decode functions.
type fileExtract struct {
	frag *Fragment
	file *hcl.File
}

func (fx *fileExtract) appendDiags(diags models.Diagnostics) {
	fx.frag.Diagnostics = append(fx.frag.Diagnostics, diags...)
}

func (fx *fileExtract) appendHCLDiags(diags hcl.Diagnostics) {
	fx.appendDiags(models.DiagnosticsHCL(diags))
}

// decodeString decodes an attribute expression into a string, recording any
// decode diagnostics. It reports whether the decode succeeded.
func (fx *fileExtract) decodeString(attr *hcl.Attribute, target *string) bool {
	diags := gohcl.DecodeExpression(attr.Expr, nil, target)
	fx.appendHCLDiags(diags)
	return !diags.HasErrors()
}

// decodeBool decodes an attribute expression into a bool, recording any
// decode diagnostics.
func (fx *fileExtract) decodeBool(attr *hcl.Attribute, target *bool) bool {
	diags := gohcl.DecodeExpression(attr.Expr, nil, target)
	fx.appendHCLDiags(diags)
	return !diags.HasErrors()
}

// checkConstraint validates a version-constraint string, warning when it
// cannot be parsed. The raw string is recorded by the caller either way;
// constraint syntax is never interpreted beyond this check.
func (fx *fileExtract) checkConstraint(constraint string, rng hcl.Range) {
	if _, err := goversion.NewConstraint(constraint); err != nil {
		fx.appendDiags(models.Diagnostics{models.WarnDiag(
			"Invalid version constraint",
			fmt.Sprintf("%q cannot be parsed as a version constraint.", constraint),
			rng,
		)})
	}
}

// repetition inspects the count and for_each meta-arguments of a decoded
// body. Declaring both is an error; count wins so the result stays usable.
func (fx *fileExtract) repetition(content *schema.BodyContent) models.Repetition {
	_, hasCount := content.Attributes["count"]
	forEachAttr, hasForEach := content.Attributes["for_each"]
	switch {
	case hasCount && hasForEach:
		fx.appendDiags(models.Diagnostics{models.ErrorDiag(
			"Invalid combination of count and for_each",
			"The count and for_each meta-arguments are mutually exclusive.",
			forEachAttr.NameRange,
		)})
		return models.RepetitionCount
	case hasCount:
		return models.RepetitionCount
	case hasForEach:
		return models.RepetitionForEach
	default:
		return models.RepetitionNone
	}
}

// traversalRef renders an absolute traversal back into its source form,
// like "aws.west" or "module.network".
func traversalRef(trav hcl.Traversal) string {
	var sb strings.Builder
	for _, step := range trav {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			sb.WriteString(s.Name)
		case hcl.TraverseAttr:
			sb.WriteString("." + s.Name)
		case hcl.TraverseIndex:
			// Index keys are dropped; only the reference path matters here.
		}
	}
	return sb.String()
}
