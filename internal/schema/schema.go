// Package schema describes the shape of the configuration blocks the
// inspector understands and decodes generic block bodies against those
// shapes. Decoding is best-effort: schema violations become diagnostics and
// never stop the decoding of sibling content. Both the native syntax and the
// JSON syntax decode through the same path, because the generic hcl.Body
// abstraction hides the surface form.
package schema

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"tfinspect/internal/models"
)

// Attribute describes one attribute a block may carry.
type Attribute struct {
	Name     string
	Required bool

	// Static marks attributes whose value the extractor needs as a literal.
	// A non-static expression costs a warning and the attribute is dropped
	// from the decoded content.
	Static bool
}

// NestedBlock describes one nested block type a block may contain.
type NestedBlock struct {
	Schema *Block

	// Singleton blocks may appear at most once; a duplicate is an error and
	// the first occurrence wins.
	Singleton bool

	// Ignore marks block types that are recognized (so they produce no
	// diagnostics) but carry nothing the inspector extracts, like backend
	// configuration inside a terraform block.
	Ignore bool
}

// Block is the schema for one block type. Adding support for a new block
// type is a table edit in table.go, not new decoding code.
type Block struct {
	Type       string
	LabelNames []string
	Attributes []Attribute
	Blocks     map[string]*NestedBlock

	// TolerateUnknownBlocks downgrades unexpected nested block types from an
	// error to a warning. The file root uses this for forward compatibility
	// with block types the inspector does not know.
	TolerateUnknownBlocks bool

	// Opaque disables unknown-name checking entirely, for bodies that carry
	// arbitrary provider- or module-specific content.
	Opaque bool
}

// BodyContent is the result of decoding one body against a Block schema.
type BodyContent struct {
	// Attributes holds the schema-known attributes that are present.
	Attributes map[string]*hcl.Attribute

	// Blocks holds the schema-known, non-ignored nested blocks in
	// declaration order.
	Blocks []*hcl.Block
}

// DecodeBody decodes body against the schema. Missing required attributes,
// non-static values for static-marked attributes, duplicate singleton
// blocks, and unexpected nested blocks become diagnostics; decoding always
// continues and always returns usable content.
func (b *Block) DecodeBody(body hcl.Body) (*BodyContent, models.Diagnostics) {
	var diags models.Diagnostics

	content, _, hclDiags := body.PartialContent(b.hclSchema())
	diags = append(diags, models.DiagnosticsHCL(hclDiags)...)

	out := &BodyContent{Attributes: map[string]*hcl.Attribute{}}
	for name, attr := range content.Attributes {
		out.Attributes[name] = attr
	}

	for _, a := range b.Attributes {
		if !a.Static {
			continue
		}
		attr, exists := out.Attributes[a.Name]
		if !exists {
			continue
		}
		if val, valDiags := attr.Expr.Value(nil); valDiags.HasErrors() || !val.IsWhollyKnown() {
			diags = append(diags, models.WarnDiag(
				"Argument is not statically known",
				fmt.Sprintf("The %s argument must be a constant value. This one could not be evaluated statically and was ignored.", a.Name),
				attr.Expr.Range(),
			))
			delete(out.Attributes, a.Name)
		}
	}

	seen := map[string]*hcl.Block{}
	for _, block := range content.Blocks {
		nested := b.Blocks[block.Type]
		if nested == nil {
			// PartialContent only returns blocks the schema asked for.
			continue
		}
		if nested.Singleton {
			if first, dup := seen[block.Type]; dup {
				diags = append(diags, models.ErrorDiag(
					fmt.Sprintf("Duplicate %s block", block.Type),
					fmt.Sprintf("Only one %q block is allowed here. The first was declared at %s:%d.", block.Type, first.DefRange.Filename, first.DefRange.Start.Line),
					block.DefRange,
				))
				continue
			}
			seen[block.Type] = block
		}
		if nested.Ignore {
			continue
		}
		out.Blocks = append(out.Blocks, block)
	}

	diags = append(diags, b.checkUnexpected(body)...)
	return out, diags
}

// checkUnexpected reports attributes and nested blocks the schema does not
// know. Only native-syntax bodies expose enough structure for this; JSON
// bodies are ambiguous about what is a block and what is an attribute, so
// they are left alone.
func (b *Block) checkUnexpected(body hcl.Body) models.Diagnostics {
	if b.Opaque {
		return nil
	}
	syntaxBody, ok := body.(*hclsyntax.Body)
	if !ok {
		return nil
	}

	var diags models.Diagnostics

	known := map[string]bool{}
	var names []string
	for _, attr := range b.Attributes {
		known[attr.Name] = true
		names = append(names, attr.Name)
	}

	var extra []string
	for name := range syntaxBody.Attributes {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		attr := syntaxBody.Attributes[name]
		detail := fmt.Sprintf("An argument named %q is not expected here.", name)
		if suggestion := NameSuggestion(name, names); suggestion != "" {
			detail += fmt.Sprintf(" Did you mean %q?", suggestion)
		}
		diags = append(diags, models.WarnDiag("Unsupported argument", detail, attr.NameRange))
	}

	for _, block := range syntaxBody.Blocks {
		if _, ok := b.Blocks[block.Type]; ok {
			continue
		}
		if b.TolerateUnknownBlocks {
			diags = append(diags, models.WarnDiag(
				"Unsupported block type",
				fmt.Sprintf("Blocks of type %q are not expected here and were skipped.", block.Type),
				block.TypeRange,
			))
		} else {
			diags = append(diags, models.ErrorDiag(
				"Unexpected block",
				fmt.Sprintf("Blocks of type %q are not allowed here.", block.Type),
				block.TypeRange,
			))
		}
	}

	return diags
}

// hclSchema translates the Block into the shape the HCL API wants.
func (b *Block) hclSchema() *hcl.BodySchema {
	out := &hcl.BodySchema{}
	for _, attr := range b.Attributes {
		out.Attributes = append(out.Attributes, hcl.AttributeSchema{
			Name:     attr.Name,
			Required: attr.Required,
		})
	}
	var types []string
	for blockType := range b.Blocks {
		types = append(types, blockType)
	}
	sort.Strings(types)
	for _, blockType := range types {
		var labels []string
		if b.Blocks[blockType].Schema != nil {
			labels = b.Blocks[blockType].Schema.LabelNames
		}
		out.Blocks = append(out.Blocks, hcl.BlockHeaderSchema{
			Type:       blockType,
			LabelNames: labels,
		})
	}
	return out
}
