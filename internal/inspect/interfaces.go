package inspect

import (
	"github.com/hashicorp/hcl/v2"

	"tfinspect/internal/models"
)

// FileLister supplies the ordered set of configuration files for a module
// directory.
//
//go:generate mockery --name=FileLister --output=./mocks
type FileLister interface {
	ModuleFiles(dir string) ([]string, error)
}

// SyntaxParser turns raw configuration text into a generic block tree,
// choosing the surface syntax from the file name. Parse diagnostics are
// returned alongside the tree; a file with errors still yields whatever
// partial tree the parser could build.
//
//go:generate mockery --name=SyntaxParser --output=./mocks
type SyntaxParser interface {
	ParseFile(src []byte, filename string) (*hcl.File, models.Diagnostics)
}
