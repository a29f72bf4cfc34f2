package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"purefix/internal/diag"
	"purefix/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с
// аналогичным форматом. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiag(w, d, fs, opts)
	}
}

func writeDiag(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	head := fmt.Sprintf("%s: %s %s: %s",
		formatLocation(fs, d.Primary, opts.PathMode),
		severityText(d.Severity, opts.Color),
		d.Code.String(),
		d.Message)
	fmt.Fprintln(w, head)
	writeContext(w, fs, d.Primary, opts)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s: note: %s\n", formatLocation(fs, n.Span, opts.PathMode), n.Msg)
		writeContext(w, fs, n.Span, opts)
	}
}

// writeContext печатает строку исходника и каретку под спаном.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil || len(file.Content) == 0 {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// ширина префикса считается по экранным колонкам, не байтам
	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	marks := 1
	if end.Line == start.Line && end.Col > start.Col {
		marks = int(end.Col - start.Col)
	}
	caret := "^" + strings.Repeat("~", marks-1)
	if opts.Color {
		caret = color.New(color.FgHiRed, color.Bold).Sprint(caret)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, caret)
}

func severityText(sev diag.Severity, colored bool) string {
	text := sev.String()
	if !colored {
		return text
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case diag.SevWarning:
		return color.New(color.FgYellow).Sprint(text)
	default:
		return color.New(color.FgCyan).Sprint(text)
	}
}

func formatLocation(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", formatPath(fs, file, mode), start.Line, start.Col)
}

func formatPath(fs *source.FileSet, f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
