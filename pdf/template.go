package pdf

import (
	"strings"
	"unicode"
)

// Substitute replaces {{key}} and {key} placeholders with field values
// in a single left-to-right pass. An unknown key becomes the empty
// string. Substituted values are never re-scanned, and brace pairs that
// do not look like a placeholder name (CSS blocks, JSON snippets) are
// copied through untouched.
func Substitute(template string, fields map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for i < len(template) {
		if template[i] != '{' {
			b.WriteByte(template[i])
			i++
			continue
		}

		if i+1 < len(template) && template[i+1] == '{' {
			if end := strings.Index(template[i+2:], "}}"); end >= 0 {
				if name := template[i+2 : i+2+end]; placeholderName(name) {
					b.WriteString(fields[name])
					i += end + 4
					continue
				}
			}
			b.WriteByte('{')
			i++
			continue
		}

		if end := strings.IndexByte(template[i+1:], '}'); end >= 0 {
			if name := template[i+1 : i+1+end]; placeholderName(name) {
				b.WriteString(fields[name])
				i += end + 2
				continue
			}
		}
		b.WriteByte('{')
		i++
	}
	return b.String()
}

// placeholderName reports whether s is a plausible field name: letters
// (any script), digits, underscore, dash or dot, nothing else.
func placeholderName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}
