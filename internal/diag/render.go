package diag

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"zinc/internal/source"
)

// Render draws the plain-text explanation stored in Diagnostic.Message:
//
//	 --> 2:5
//	  |
//	2 | let = 1
//	  |     ^---
//	  |
//	  = expected identifier
//
// A positional failure gets "^---"; a span that stays on one line is marked
// from its first to its last column.
func Render(fs *source.FileSet, span source.Span, label string) string {
	start, end := fs.Resolve(span)
	line := fs.Get(span.File).GetLine(start.Line)

	num := strconv.FormatUint(uint64(start.Line), 10)
	pad := strings.Repeat(" ", len(num))

	var sb strings.Builder
	col := fs.Get(span.File).CharCol(start)
	sb.WriteString(pad + "--> " + num + ":" + strconv.FormatUint(uint64(col), 10) + "\n")
	sb.WriteString(pad + " |\n")
	sb.WriteString(num + " | " + line + "\n")
	sb.WriteString(pad + " | " + strings.Repeat(" ", CaretOffset(line, start.Col)) + caret(line, start, end) + "\n")
	sb.WriteString(pad + " |\n")
	sb.WriteString(pad + " = " + label)
	return sb.String()
}

// CaretOffset returns the display width of line before the 1-based byte column.
func CaretOffset(line string, col uint32) int {
	idx := int(col) - 1
	if idx <= 0 {
		return 0
	}
	if idx > len(line) {
		idx = len(line)
	}
	return runewidth.StringWidth(line[:idx])
}

func caret(line string, start, end source.LineCol) string {
	if start.Line != end.Line || end.Col <= start.Col+1 {
		return "^---"
	}
	from, to := int(start.Col)-1, int(end.Col)-1
	if to > len(line) {
		to = len(line)
	}
	if from >= to {
		return "^---"
	}
	w := runewidth.StringWidth(line[from:to])
	if w < 2 {
		return "^"
	}
	return "^" + strings.Repeat("-", w-2) + "^"
}

// Marker is the caret drawn under a span from start to end on line.
func Marker(line string, start, end source.LineCol) string {
	return caret(line, start, end)
}
