package lsp

import "unicode/utf8"

// applyChanges folds content changes into text; a change without a range replaces everything.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := offsetForPosition(text, change.Range.Start)
		end := max(offsetForPosition(text, change.Range.End), start)
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

// offsetForPosition converts an LSP position (UTF-16 columns) to a byte offset,
// clamped to the line end and the text end.
func offsetForPosition(text string, pos position) int {
	if pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	i := 0
	for line := 0; line < pos.Line; i++ {
		if i >= len(text) {
			return len(text)
		}
		if text[i] == '\n' {
			line++
		}
	}
	units := 0
	for i < len(text) && text[i] != '\n' {
		r, size := utf8.DecodeRuneInString(text[i:])
		need := utf16Width(r)
		if units+need > pos.Character {
			break
		}
		units += need
		i += size
	}
	return i
}

// linePrefix returns the text between the start of the line and offset.
func linePrefix(text string, offset int) string {
	start := offset
	for start > 0 && text[start-1] != '\n' {
		start--
	}
	return text[start:offset]
}

// utf16Range returns the UTF-16 span of the rune at index char of line.
// Past the end of line every rune counts as one unit.
func utf16Range(line string, char int) (from, to int) {
	i := 0
	for _, r := range line {
		w := utf16Width(r)
		if i == char {
			return from, from + w
		}
		from += w
		i++
	}
	from += char - i
	return from, from + 1
}

func utf16Width(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
