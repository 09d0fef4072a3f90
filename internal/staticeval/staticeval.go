// Package staticeval reduces configuration expressions to plain Go values
// without performing any real evaluation: only literal scalars, lists, and
// objects made purely of literals are considered known. Anything that
// references a variable, calls a function, or branches is reported as not
// statically resolvable rather than evaluated.
package staticeval

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"tfinspect/internal/models"
)

// Evaluate attempts to reduce expr to a static value. It never fails: any
// expression that is not a pure literal yields the unknown marker with a
// reason attached. The function is pure and safe for concurrent use.
func Evaluate(expr hcl.Expression) *models.StaticValue {
	if expr == nil {
		return models.NotStatic("missing expression")
	}

	if reason := nonLiteralReason(expr); reason != "" {
		return models.NotStatic(reason)
	}

	// JSON-syntax expressions don't go through the syntax-specific check
	// above, so references can still surface here.
	if vars := expr.Variables(); len(vars) > 0 {
		return models.NotStatic("references " + traversalStr(vars[0]))
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return models.NotStatic(diags[0].Summary)
	}
	if !val.IsWhollyKnown() {
		return models.NotStatic("value is not wholly known")
	}
	if val.IsNull() {
		return models.KnownValue(nil)
	}

	// Convert through the JSON encoding so callers get plain Go values
	// instead of cty values.
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return models.NotStatic(fmt.Sprintf("value has no static representation: %s", err))
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.NotStatic(fmt.Sprintf("value has no static representation: %s", err))
	}
	return models.KnownValue(out)
}

// nonLiteralReason inspects native-syntax expression nodes and returns a
// non-empty reason when the node cannot be a pure literal. Expression types
// from other syntaxes (JSON) return "" and are checked generically by the
// caller.
func nonLiteralReason(expr hcl.Expression) string {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return ""
	case *hclsyntax.TemplateExpr:
		for _, part := range e.Parts {
			if reason := nonLiteralReason(part); reason != "" {
				return reason
			}
		}
		return ""
	case *hclsyntax.TemplateWrapExpr:
		return nonLiteralReason(e.Wrapped)
	case *hclsyntax.ParenthesesExpr:
		return nonLiteralReason(e.Expression)
	case *hclsyntax.TupleConsExpr:
		for _, item := range e.Exprs {
			if reason := nonLiteralReason(item); reason != "" {
				return reason
			}
		}
		return ""
	case *hclsyntax.ObjectConsExpr:
		for _, item := range e.Items {
			if reason := nonLiteralKeyReason(item.KeyExpr); reason != "" {
				return reason
			}
			if reason := nonLiteralReason(item.ValueExpr); reason != "" {
				return reason
			}
		}
		return ""
	case *hclsyntax.UnaryOpExpr:
		// Negative number literals parse as a unary operation.
		return nonLiteralReason(e.Val)
	case *hclsyntax.ScopeTraversalExpr:
		return "references " + traversalStr(e.Traversal)
	case *hclsyntax.RelativeTraversalExpr:
		return "references " + traversalStr(e.Traversal)
	case *hclsyntax.FunctionCallExpr:
		return fmt.Sprintf("calls function %q", e.Name)
	case *hclsyntax.ConditionalExpr:
		return "conditional expression"
	case *hclsyntax.ForExpr:
		return "for expression"
	case *hclsyntax.SplatExpr:
		return "splat expression"
	case *hclsyntax.IndexExpr:
		return "index expression"
	case *hclsyntax.BinaryOpExpr:
		return "operation on non-constant expression"
	default:
		return ""
	}
}

// nonLiteralKeyReason handles object constructor keys, where a bare
// identifier like `source` is a literal string key rather than a reference.
func nonLiteralKeyReason(keyExpr hclsyntax.Expression) string {
	if wrapped, ok := keyExpr.(*hclsyntax.ObjectConsKeyExpr); ok {
		if trav, ok := wrapped.Wrapped.(*hclsyntax.ScopeTraversalExpr); ok && len(trav.Traversal) == 1 {
			return ""
		}
		return nonLiteralReason(wrapped.Wrapped)
	}
	return nonLiteralReason(keyExpr)
}

// traversalStr renders a traversal like var.region back into source form.
func traversalStr(trav hcl.Traversal) string {
	var sb strings.Builder
	for _, step := range trav {
		switch s := step.(type) {
		case hcl.TraverseRoot:
			sb.WriteString(s.Name)
		case hcl.TraverseAttr:
			sb.WriteString("." + s.Name)
		case hcl.TraverseIndex:
			sb.WriteString("[...]")
		}
	}
	return sb.String()
}
