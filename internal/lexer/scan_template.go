package lexer

import (
	"gencat/internal/diag"
	"gencat/internal/token"
)

// scanTemplate consumes a whole backtick-delimited literal, substitutions
// included. Escapes are eaten pairwise without validation; splitting into
// elements happens in the parser.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '`' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.TemplateLit, Span: sp, Text: lx.text(sp)}
		}

		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.SynDanglingEscape, sp, "backslash at end of template literal")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			lx.cursor.Bump()
			continue
		}

		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !lx.skipHole() {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.SynUnterminatedHole, sp, "unterminated ${...} substitution")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			continue
		}

		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.SynUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// skipHole consumes a substitution body up to its matching '}', tracking
// nested braces. Reports whether the closing brace was found.
func (lx *Lexer) skipHole() bool {
	depth := 1
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return true
			}
		}
	}
	return false
}
