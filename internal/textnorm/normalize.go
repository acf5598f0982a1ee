// Package textnorm canonicalizes free-form names and titles so that two
// spellings a human would consider equivalent compare equal as strings.
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Ligatures and letters with no canonical decomposition to a base Latin
// letter plus combining marks.
var ligatures = map[rune]string{
	'Æ': "AE",
	'æ': "ae",
	'Œ': "OE",
	'œ': "oe",
	'ß': "ss",
}

var featSuffixRe = regexp.MustCompile(`\(feat\. [^)]*\)$`)

// Unaccent replaces accented Latin letters with their base letter and
// expands a small set of ligatures. Non-Latin characters pass through
// unchanged, so Cyrillic or Greek diacritics are preserved.
func Unaccent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := ligatures[r]; ok {
			b.WriteString(rep)
			continue
		}
		decomposed := []rune(norm.NFD.String(string(r)))
		if len(decomposed) > 1 && unicode.Is(unicode.Latin, decomposed[0]) {
			b.WriteRune(decomposed[0])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Mangle normalizes a name for substring and equality comparison: it
// lowercases, removes accents, strips a trailing "(feat. ...)" suffix and
// drops everything except letters, digits and underscores. Mangle is
// idempotent.
func Mangle(s string) string {
	s = Unaccent(strings.ToLower(s))
	s = featSuffixRe.ReplaceAllString(s, "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// JoinNames renders a list of names for an edit note: a kind word
// (pluralized when needed), each name quoted, and long lists elided to the
// first three plus a count. An empty kind omits the kind word.
func JoinNames(kind string, names []string) string {
	if len(names) == 0 {
		return ""
	}
	result := kind
	if len(names) > 1 && kind != "" {
		if kind == "category" {
			result = "categories"
		} else {
			result = kind + "s"
		}
	}
	if result != "" {
		result += " "
	}
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}
	switch {
	case len(quoted) < 2:
		result += quoted[0]
	case len(quoted) < 4:
		result += strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
	default:
		result += strings.Join(quoted[:3], ", ")
		result += " and " + strconv.Itoa(len(quoted)-3) + " more"
	}
	return result
}
