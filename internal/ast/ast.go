// Package ast holds the syntax-tree fragment of the generated language that
// gencat manipulates directly: expression statements wrapping template
// literals. The tree is immutable once built; the compilation-unit model it
// belongs to is treated as fixed, not redesigned.
package ast

import (
	"strings"

	"gencat/internal/source"
)

// Node is any syntax-tree node with a source span.
type Node interface {
	Span() source.Span
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// File is one parsed source fragment: a flat list of top-level statements.
type File struct {
	Sp    source.Span
	Stmts []Stmt
}

func (f *File) Span() source.Span { return f.Sp }

// ExprStmt is a statement consisting of a single expression.
type ExprStmt struct {
	Sp source.Span
	X  Expr
}

func (s *ExprStmt) Span() source.Span { return s.Sp }
func (s *ExprStmt) stmtNode()         {}

// TemplateElement is one raw-text run of a template literal, between the
// opening backtick, substitutions, and the closing backtick.
// Raw is the escaped source text; Cooked is the evaluated string value.
type TemplateElement struct {
	Sp     source.Span
	Raw    string
	Cooked string
}

// RawExpr is an unparsed ${...} substitution body. This layer splices
// template literals into generated output; it never evaluates holes, so their
// contents stay as text.
type RawExpr struct {
	Sp   source.Span
	Text string
}

func (e *RawExpr) Span() source.Span { return e.Sp }
func (e *RawExpr) exprNode()         {}

// TemplateLiteral is a backtick-delimited string literal with optional
// substitutions. Invariant: len(Quasis) == len(Exprs)+1.
type TemplateLiteral struct {
	Sp     source.Span
	Quasis []TemplateElement
	Exprs  []Expr
}

func (t *TemplateLiteral) Span() source.Span { return t.Sp }
func (t *TemplateLiteral) exprNode()         {}

// Cooked returns the evaluated string value of the literal. The second
// result is false when the literal has substitutions and therefore no
// constant value.
func (t *TemplateLiteral) Cooked() (string, bool) {
	if len(t.Exprs) > 0 {
		return "", false
	}
	var sb strings.Builder
	for i := range t.Quasis {
		sb.WriteString(t.Quasis[i].Cooked)
	}
	return sb.String(), true
}

// SourceText renders the literal back to source form, backticks included.
func (t *TemplateLiteral) SourceText() string {
	var sb strings.Builder
	sb.WriteByte('`')
	for i := range t.Quasis {
		sb.WriteString(t.Quasis[i].Raw)
		if i < len(t.Exprs) {
			sb.WriteString("${")
			sb.WriteString(exprText(t.Exprs[i]))
			sb.WriteByte('}')
		}
	}
	sb.WriteByte('`')
	return sb.String()
}

func exprText(e Expr) string {
	if r, ok := e.(*RawExpr); ok {
		return r.Text
	}
	return ""
}
