package synth

import (
	"strings"
	"testing"
)

func TestEscapeTemplateText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text unchanged", "hello world", "hello world"},
		{"backtick", "a`b", "a\\`b"},
		{"backslash", `a\b`, `a\\b`},
		{"dollar", "price: $5", `price: \$5`},
		{"all three in order", "a`b\\c$d", "a\\`b\\\\c\\$d"},
		{"quoted dollar", "He said \"$100\" `quoted`", "He said \"\\$100\" \\`quoted\\`"},
		{"dollar brace stays inert", "${name}", `\${name}`},
		{"pre-escaped input doubles", "\\`", "\\\\\\`"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EscapeTemplateText(c.in); got != c.want {
				t.Errorf("EscapeTemplateText(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestEscapeLeavesCleanInputAlone(t *testing.T) {
	inputs := []string{"plain", "with spaces", "unicode: приложение 🚀", "newline\nand tab\t"}
	for _, in := range inputs {
		if got := EscapeTemplateText(in); got != in {
			t.Errorf("input without specials must pass through: %q -> %q", in, got)
		}
	}
}

func TestTemplateLiteralRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"a`b\\c$d",
		"${injection.attempt}",
		"`${`nested`}`",
		`\\\`,
		"multi\nline\nvalue",
		"wide руны and emoji 🚀",
		"$ at end",
		"backslash at end \\",
	}
	for _, in := range inputs {
		lit, err := TemplateLiteral(in)
		if err != nil {
			t.Errorf("TemplateLiteral(%q) failed: %v", in, err)
			continue
		}
		cooked, ok := lit.Cooked()
		if !ok {
			t.Errorf("TemplateLiteral(%q) produced substitutions; escaping must make input inert", in)
			continue
		}
		if cooked != in {
			t.Errorf("round trip lost data: %q -> %q", in, cooked)
		}
	}
}

func TestTemplateLiteralShape(t *testing.T) {
	lit, err := TemplateLiteral("He said \"$100\" `quoted`")
	if err != nil {
		t.Fatalf("TemplateLiteral: %v", err)
	}
	if len(lit.Exprs) != 0 {
		t.Error("escaped value must never contain substitutions")
	}
	want := "`He said \"\\$100\" \\`quoted\\``"
	if got := lit.SourceText(); got != want {
		t.Errorf("SourceText = %q, want %q", got, want)
	}
}

func TestTemplateLiteralNeverExposesWrapper(t *testing.T) {
	lit, err := TemplateLiteral("x")
	if err != nil {
		t.Fatalf("TemplateLiteral: %v", err)
	}
	// the node spans only the literal inside its private fragment
	if lit.Span().Start != 0 {
		t.Errorf("literal should start its fragment, span = %v", lit.Span())
	}
	if got := lit.SourceText(); strings.Contains(got, ";") {
		t.Errorf("wrapper leaked into source text: %q", got)
	}
}
