package inspect

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"tfinspect/internal/discover"
	"tfinspect/internal/models"
)

// HCLParser is the default SyntaxParser, backed by the HCL parser for both
// the native and the JSON surface syntax.
type HCLParser struct{}

// NewHCLParser creates a new instance of HCLParser.
func NewHCLParser() HCLParser {
	return HCLParser{}
}

// ParseFile parses src as native syntax or JSON syntax depending on the file
// name. A fresh underlying parser is used per call so concurrent per-file
// parses never share state.
func (HCLParser) ParseFile(src []byte, filename string) (*hcl.File, models.Diagnostics) {
	parser := hclparse.NewParser()

	var file *hcl.File
	var diags hcl.Diagnostics
	if discover.IsJSONFile(filename) {
		file, diags = parser.ParseJSON(src, filename)
	} else {
		file, diags = parser.ParseHCL(src, filename)
	}
	return file, models.DiagnosticsHCL(diags)
}

// DirLister is the default FileLister, backed by the discover package.
type DirLister struct{}

// ModuleFiles implements FileLister.
func (DirLister) ModuleFiles(dir string) ([]string, error) {
	return discover.ModuleFiles(dir)
}
