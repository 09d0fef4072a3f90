package models

import "github.com/hashicorp/hcl/v2"

// SourcePos locates a construct in a configuration file. Start and end are
// best-effort: JSON-based files can only report approximate positions for
// some constructs.
type SourcePos struct {
	Filename  string `json:"filename"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
}

// SourcePosHCL converts an HCL source range into a SourcePos.
func SourcePosHCL(rng hcl.Range) SourcePos {
	return SourcePos{
		Filename:  rng.Filename,
		Line:      rng.Start.Line,
		Column:    rng.Start.Column,
		EndLine:   rng.End.Line,
		EndColumn: rng.End.Column,
	}
}
