package codegen

import (
	"strings"
)

// StringLiteral turns a quoted Zinc string into a Rust raw string literal.
func StringLiteral(quoted string) string {
	return RawString(Unescape(quoted))
}

// Unescape strips the quotes and resolves the \" and \\ escapes. Other backslashes stay as written.
func Unescape(quoted string) string {
	s := quoted
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// RawString wraps s in r#"..."# using the fewest hashes (at least one) that keep it closed.
func RawString(s string) string {
	n := 1
	for strings.Contains(s, `"`+strings.Repeat("#", n)) {
		n++
	}
	hashes := strings.Repeat("#", n)
	return "r" + hashes + `"` + s + `"` + hashes
}

// ParseRawString is the inverse of RawString.
func ParseRawString(lit string) (string, bool) {
	if !strings.HasPrefix(lit, "r") {
		return "", false
	}
	rest := lit[1:]
	n := len(rest) - len(strings.TrimLeft(rest, "#"))
	hashes := strings.Repeat("#", n)
	open, closing := hashes+`"`, `"`+hashes
	if len(rest) < len(open)+len(closing) || !strings.HasPrefix(rest, open) || !strings.HasSuffix(rest, closing) {
		return "", false
	}
	body := rest[len(open) : len(rest)-len(closing)]
	if n > 0 && strings.Contains(body, closing) {
		return "", false
	}
	return body, true
}
