package consult

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPatientName(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantName   string
		wantParent bool
	}{
		{
			name:       "plain patient title",
			title:      "Juan Perez",
			wantName:   "Juan Perez",
			wantParent: false,
		},
		{
			name:       "parent session",
			title:      "Padres de Sofia M",
			wantName:   "Sofia M",
			wantParent: true,
		},
		{
			name:       "parent session lowercase",
			title:      "padres de Sofia M",
			wantName:   "Sofia M",
			wantParent: true,
		},
		{
			name:       "parent session mixed casing and spacing",
			title:      "PADRES  DE   ana maria",
			wantName:   "Ana Maria",
			wantParent: true,
		},
		{
			name:       "title mentioning padres mid-string is not a parent session",
			title:      "Reunion padres de familia",
			wantName:   "Reunion Padres De Familia",
			wantParent: false,
		},
		{
			name:       "empty title",
			title:      "",
			wantName:   "",
			wantParent: false,
		},
		{
			name:       "whitespace only title",
			title:      "   ",
			wantName:   "",
			wantParent: false,
		},
		{
			name:       "lowercase title is normalized",
			title:      "  juan   perez ",
			wantName:   "Juan Perez",
			wantParent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, parent := ExtractPatientName(tt.title)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantParent, parent)
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normal", in: "Juan Perez", want: "Juan Perez"},
		{name: "mixed case", in: "jUAN pEREZ", want: "Juan Perez"},
		{name: "collapses whitespace", in: "  sofia \t  m ", want: "Sofia M"},
		{name: "interior punctuation stays inside the token", in: "maria o'neil", want: "Maria O'neil"},
		{name: "empty", in: "", want: ""},
		{name: "only spaces", in: " \t ", want: ""},
		{name: "accented initial", in: "ángela ruiz", want: "Ángela Ruiz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"juan perez",
		"  PADRES   de  alguien  ",
		"Sofia M",
		"maria o'neil",
		"",
	}

	for _, in := range inputs {
		once := NormalizeName(in)
		assert.Equal(t, once, NormalizeName(once), "normalize not idempotent for %q", in)
	}
}
