// Package parser turns synthesized source fragments into syntax trees.
// Only the single-statement template-literal shape exists in this layer;
// real project sources are parsed by the compiler it integrates with.
package parser

import (
	"gencat/internal/ast"
	"gencat/internal/diag"
	"gencat/internal/lexer"
	"gencat/internal/source"
	"gencat/internal/token"
)

// ParseFragment parses a standalone source fragment into a flat statement
// list. Scan and parse errors go into bag; the returned tree contains only
// the statements that parsed cleanly.
func ParseFragment(file *source.File, bag *diag.Bag) *ast.File {
	lx := lexer.New(file, bag)
	out := &ast.File{
		Sp: source.Span{File: file.ID, Start: 0, End: uint32(len(file.Content))},
	}

	for {
		tok := lx.Next()
		switch tok.Kind {
		case token.EOF:
			return out

		case token.TemplateLit:
			lit := buildTemplate(file.ID, tok)
			sp := tok.Span
			// optional statement terminator
			next := lx.Next()
			switch next.Kind {
			case token.Semi:
				sp = sp.Cover(next.Span)
			case token.EOF:
				out.Stmts = append(out.Stmts, &ast.ExprStmt{Sp: sp, X: lit})
				return out
			default:
				bag.Add(diag.NewError(diag.SynUnexpectedToken, next.Span,
					"expected ';' or end of fragment after template literal"))
			}
			out.Stmts = append(out.Stmts, &ast.ExprStmt{Sp: sp, X: lit})

		case token.Invalid:
			// already reported by the lexer

		default:
			bag.Add(diag.NewError(diag.SynUnexpectedToken, tok.Span,
				"expected a template literal statement"))
		}
	}
}

// buildTemplate splits a scanned TemplateLit token into quasis and
// substitution expressions. The lexer guarantees the token is well formed:
// both backticks present, escapes paired, holes closed.
func buildTemplate(fid source.FileID, tok token.Token) *ast.TemplateLiteral {
	inner := tok.Text[1 : len(tok.Text)-1]
	base := tok.Span.Start + 1

	lit := &ast.TemplateLiteral{Sp: tok.Span}

	elemStart := 0
	i := 0
	flush := func(end int) {
		raw := inner[elemStart:end]
		lit.Quasis = append(lit.Quasis, ast.TemplateElement{
			Sp:     source.Span{File: fid, Start: base + uint32(elemStart), End: base + uint32(end)},
			Raw:    raw,
			Cooked: unescapeCooked(raw),
		})
	}

	for i < len(inner) {
		switch {
		case inner[i] == '\\':
			i += 2

		case inner[i] == '$' && i+1 < len(inner) && inner[i+1] == '{':
			flush(i)
			j := holeEnd(inner, i+2)
			lit.Exprs = append(lit.Exprs, &ast.RawExpr{
				Sp:   source.Span{File: fid, Start: base + uint32(i + 2), End: base + uint32(j)},
				Text: inner[i+2 : j],
			})
			i = j + 1
			elemStart = i

		default:
			i++
		}
	}
	flush(len(inner))
	return lit
}

// holeEnd returns the index of the '}' matching the hole opened before from,
// accounting for nesting.
func holeEnd(inner string, from int) int {
	depth := 1
	for i := from; i < len(inner); i++ {
		switch inner[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(inner)
}

// unescapeCooked evaluates the escape sequences the template grammar
// defines for this layer: \\, \` and \$. Any other backslash pair is kept
// verbatim; nothing in this layer ever produces one.
func unescapeCooked(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case '\\', '`', '$':
				out = append(out, raw[i+1])
				i++
				continue
			}
		}
		out = append(out, raw[i])
	}
	return string(out)
}
