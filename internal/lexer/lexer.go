// Package lexer scans the synthesized single-statement fragments gencat
// parses: template literals, statement terminators, nothing else. The
// scanning style (cursor, marks, span cutting) mirrors the front end it
// integrates with.
package lexer

import (
	"fmt"

	"gencat/internal/diag"
	"gencat/internal/source"
	"gencat/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	bag    *diag.Bag
}

// New creates a lexer over file. Scan errors are reported into bag.
func New(file *source.File, bag *diag.Bag) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		bag:    bag,
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(lx.cursor.Mark())}
	}

	switch lx.cursor.Peek() {
	case '`':
		return lx.scanTemplate()
	case ';':
		start := lx.cursor.Mark()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Semi, Span: sp, Text: lx.text(sp)}
	default:
		start := lx.cursor.Mark()
		b := lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.SynUnexpectedToken, sp, "unexpected character %q", b)
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		default:
			return
		}
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, format string, args ...any) {
	if lx.bag == nil {
		return
	}
	lx.bag.Add(diag.NewError(code, sp, fmt.Sprintf(format, args...)))
}
