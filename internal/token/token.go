// Package token defines the lexical token kinds of the generated-language
// fragment gencat understands. Only the pieces a synthesized template-literal
// statement can contain exist here.
// Invariants:
//   - Token.Text is a copy of the original source bytes.
//   - Token.Span matches Text exactly (Start..End).
package token

import (
	"gencat/internal/source"
)

type Kind uint8

const (
	EOF Kind = iota
	// TemplateLit is a whole backtick-delimited literal, including both
	// backticks and any ${...} substitutions.
	TemplateLit
	Semi
	Invalid
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case TemplateLit:
		return "TemplateLit"
	case Semi:
		return "Semi"
	case Invalid:
		return "Invalid"
	}
	return "Unknown"
}

type Token struct {
	Kind Kind
	Span source.Span
	Text string
}
