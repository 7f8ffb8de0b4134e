// Package diagfmt renders diagnostics for humans. It is a pure formatting
// layer: records are rendered in the order given, never sorted, deduplicated
// or grouped, and rendering never fails — an empty input produces an empty
// string.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"gencat/internal/diag"
	"gencat/internal/source"
)

// Pretty writes diagnostics to w in a human-readable, color-capable form.
// Each diagnostic renders as
//
//	<path>:<line>:<col>: <SEV> [<ID>]: <message>
//
// followed, when opts.Context > 0 and the span has source context, by the
// offending line(s) and a ^~~~ underline, and by notes when enabled. Lines
// are separated by single newlines.
func Pretty(w io.Writer, diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	if len(diags) == 0 {
		return
	}
	pal := newPalette(opts.Color)
	for i := range diags {
		writeDiagnostic(w, &diags[i], fs, opts, pal)
	}
}

// PrettyString renders diagnostics into one string for callers that route
// output themselves.
func PrettyString(diags []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	var sb strings.Builder
	Pretty(&sb, diags, fs, opts)
	return sb.String()
}

type palette struct {
	err  *color.Color
	warn *color.Color
	info *color.Color
	mark *color.Color
}

func newPalette(enabled bool) *palette {
	pal := &palette{
		err:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		info: color.New(color.FgCyan),
		mark: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{pal.err, pal.warn, pal.info, pal.mark} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return pal
}

func (p *palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err.Sprint(s.String())
	case diag.SevWarning:
		return p.warn.Sprint(s.String())
	default:
		return p.info.Sprint(s.String())
	}
}

func writeDiagnostic(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal *palette) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.FormatPath(opts.PathMode.key(), opts.BaseDir),
		start.Line, start.Col,
		pal.severity(d.Severity), d.Code.ID(), d.Message)

	if opts.Context > 0 {
		writeContext(w, file, d.Primary, start, int(opts.Context), pal)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			npos, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				nf.FormatPath(opts.PathMode.key(), opts.BaseDir),
				npos.Line, npos.Col, n.Msg)
		}
	}
}

// writeContext prints up to context lines ending at the span's start line,
// then the caret underline aligned under the span. runewidth keeps the
// underline aligned when the line holds wide runes.
func writeContext(w io.Writer, file *source.File, sp source.Span, start source.LineCol, context int, pal *palette) {
	first := int(start.Line) - context + 1
	if first < 1 {
		first = 1
	}
	gutter := len(fmt.Sprint(start.Line))

	for ln := first; ln <= int(start.Line); ln++ {
		fmt.Fprintf(w, "  %*d | %s\n", gutter, ln, file.GetLine(uint32(ln)))
	}

	line := file.GetLine(start.Line)
	prefix := sliceByCol(line, int(start.Col)-1)
	marked := sliceByCol(line[len(prefix):], int(sp.Len()))

	pad := runewidth.StringWidth(prefix)
	width := runewidth.StringWidth(marked)
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s | %s%s\n", strings.Repeat(" ", gutter), strings.Repeat(" ", pad), pal.mark.Sprint(underline))
}

// sliceByCol returns the first n bytes of line, clamped to its length.
// Spans are byte-addressed, so byte slicing keeps rune boundaries intact.
func sliceByCol(line string, n int) string {
	if n < 0 {
		n = 0
	}
	if n > len(line) {
		n = len(line)
	}
	return line[:n]
}
