package consult

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParentPrefix is prepended to a patient name when labelling the column
// that collects sessions attended by the patient's parents.
const ParentPrefix = "Padres de "

// parentTitle matches titles of the form "Padres de <name>" in any casing.
// The captured remainder is the raw patient name.
var parentTitle = regexp.MustCompile(`(?i)^padres\s+de\s+(.+)$`)

// ExtractPatientName derives the canonical patient name from an event
// title. Titles matching the parent pattern yield the embedded name and a
// true flag; every other non-empty title is the patient name itself. An
// empty result means the event carries no valid patient name and must be
// dropped by the caller.
func ExtractPatientName(title string) (string, bool) {
	if title == "" {
		return "", false
	}
	if m := parentTitle.FindStringSubmatch(title); m != nil {
		return NormalizeName(m[1]), true
	}
	return NormalizeName(title), false
}

// NormalizeName trims the name, collapses whitespace runs to a single
// space, and capitalizes each whitespace-delimited token (first rune
// upper, remainder lower). Tokens are split on whitespace only; interior
// punctuation does not start a new word.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		fields[i] = capitalize(f)
	}
	return strings.Join(fields, " ")
}

func capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError && size <= 1 {
		return token
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(token[size:])
}
