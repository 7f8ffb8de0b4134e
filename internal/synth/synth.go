// Package synth builds validated template-literal syntax nodes from runtime
// strings so the generator can splice them into output files.
package synth

import (
	"strings"

	"gencat/internal/ast"
	"gencat/internal/diag"
	"gencat/internal/parser"
	"gencat/internal/source"
)

// EscapeTemplateText escapes value for embedding between backticks.
// The order is load-bearing: backslashes are doubled first so the backtick
// and dollar escapes added afterwards are not escaped a second time.
func EscapeTemplateText(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, "`", "\\`")
	value = strings.ReplaceAll(value, `$`, `\$`)
	return value
}

// TemplateLiteral returns the syntax node representing value as a template
// literal, safe for direct insertion into generated source.
//
// The escaped value is wrapped in a one-statement synthetic fragment, parsed
// in isolation, and checked against three invariants: the fragment holds
// exactly one statement, that statement is an expression statement, and its
// expression is a template literal. A violation means the escaping above
// produced something the parser read differently than intended; trusting an
// unchecked result would let the generator inject broken code into every
// file it touches, so each check fails loudly with a KnownError instead.
// The synthetic wrapper file never escapes this function.
func TemplateLiteral(value string) (*ast.TemplateLiteral, error) {
	text := "`" + EscapeTemplateText(value) + "`"

	fs := source.NewFileSet()
	id := fs.AddVirtual("template.gen", []byte(text))

	bag := diag.NewBag(8)
	fragment := parser.ParseFragment(fs.Get(id), bag)

	if bag.HasErrors() {
		return nil, diag.Knownf("internal error: synthesized template literal did not parse: %s",
			strings.Join(bag.Messages(), "; "))
	}
	if len(fragment.Stmts) != 1 {
		return nil, diag.Knownf("internal error: expected synthesized fragment to hold exactly one statement, got %d",
			len(fragment.Stmts))
	}
	exprStmt, ok := fragment.Stmts[0].(*ast.ExprStmt)
	if !ok {
		return nil, diag.Known("internal error: synthesized statement is not an expression statement")
	}
	lit, ok := exprStmt.X.(*ast.TemplateLiteral)
	if !ok {
		return nil, diag.Known("internal error: synthesized expression is not a template literal")
	}
	return lit, nil
}
