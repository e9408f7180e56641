package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "control byte stripped, accents kept", in: "Café déjà vu\x07", want: "Café déjà vu"},
		{name: "decomposed accents composed", in: "Cafe\u0301 de\u0301ja\u0300", want: "Caf\u00e9 d\u00e9j\u00e0"},
		{name: "line endings unified", in: "line one\r\nline two\rthree", want: "line one\nline two\nthree"},
		{name: "tabs and newlines kept", in: "a\tb\nc", want: "a\tb\nc"},
		{name: "bom and zero width removed", in: "\uFEFFBack\u200Bend", want: "Backend"},
		{name: "control between base and mark", in: "e\x07\u0301", want: "\u00e9"},
		{name: "surrounding space trimmed", in: "  \n Go developer \t ", want: "Go developer"},
		{name: "non latin preserved", in: "Разработчик 開発者 ñandú", want: "Разработчик 開発者 ñandú"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, got, Sanitize(got), "sanitize must be idempotent")
		})
	}
}

func TestSanitizeKeepsAccentedLetters(t *testing.T) {
	got := Sanitize("Café déjà vu\x07")
	assert.Contains(t, got, "é")
	assert.Contains(t, got, "à")
	assert.NotContains(t, got, "\x07")
}
