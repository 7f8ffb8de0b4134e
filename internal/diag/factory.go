package diag

import (
	"gencat/internal/source"
)

// SourceTag identifies this generator as the origin of a diagnostic.
const SourceTag = "gencat"

// Node is the minimal view of a syntax-tree node the factory needs.
// ast node types satisfy it.
type Node interface {
	Span() source.Span
}

// AtNode builds the generator-raised diagnostic record for a validation
// failure at node. The record spans exactly the node inside file, carries
// the fixed GenDiagnostic code and SevError, and is tagged with SourceTag.
// Pure: no I/O, inputs are not mutated.
func AtNode(file source.FileID, node Node, msg string, notes ...Note) Diagnostic {
	sp := node.Span()
	sp.File = file
	return Diagnostic{
		Severity: SevError,
		Code:     GenDiagnostic,
		Message:  msg,
		Primary:  sp,
		Source:   SourceTag,
		Notes:    notes,
	}
}
