package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Sanitize brings free text pasted from external documents to a canonical form:
// unified line endings, no control or invisible characters except \n and \t,
// Unicode NFC and trimmed edges. Accented letters are preserved and
// Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = lineEndings.Replace(s)
	// Strip before composing: dropping a character after NFC could leave a
	// decomposed pair behind.
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n', r == '\t':
			return r
		case unicode.IsControl(r), r == '\uFEFF', r == '\u200B', r == unicode.ReplacementChar:
			return -1
		}
		return r
	}, s)
	s = norm.NFC.String(s)
	return strings.TrimSpace(s)
}
