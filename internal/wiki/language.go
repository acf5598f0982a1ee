package wiki

import (
	"fmt"
	"regexp"
)

// Language bundles everything parsing needs for one wiki language edition:
// the category link syntax, the infobox and persondata template grammars,
// and the mapping from localized persondata field names to their canonical
// English equivalents. Keeping it in one record (instead of parallel maps
// keyed by language code) means a missing entry is caught when the record
// is built, not deep inside a rule.
type Language struct {
	Code string

	categoryRe   *regexp.Regexp
	infoboxRe    *regexp.Regexp
	persondataRe *regexp.Regexp

	// persondataKeys translates localized persondata field names to
	// canonical keys. Nil for languages whose fields are already canonical.
	persondataKeys map[string]string
}

// The infobox and persondata grammars tolerate one level of nested
// template braces inside the block body.
var (
	english = &Language{
		Code:         "en",
		categoryRe:   regexp.MustCompile(`\[\[Category:(.*?)(?:\|.*?)?\]\]`),
		infoboxRe:    regexp.MustCompile(`(?s)\{\{Infobox (musical artist|person)[^|]*((?:[^{}].*?|\{\{.*?\}\})*)\}\}`),
		persondataRe: regexp.MustCompile(`(?s)\{\{Persondata[^|]*((?:[^{}].*?|\{\{.*?\}\})*)\}\}`),
	}

	french = &Language{
		Code:         "fr",
		categoryRe:   regexp.MustCompile(`\[\[Catégorie:(.*?)(?:\|.*?)?\]\]`),
		infoboxRe:    regexp.MustCompile(`(?s)\{\{Infobox (Musique \(artiste\)|Musique classique \(personnalité\))[^|]*((?:[^{}].*?|\{\{.*?\}\})*)\}\}`),
		persondataRe: regexp.MustCompile(`(?s)\{\{Métadonnées personne[^|]*((?:[^{}].*?|\{\{.*?\}\})*)\}\}`),
		persondataKeys: map[string]string{
			"nom":                "name",
			"noms alternatifs":   "alternative names",
			"courte description": "short description",
			"date de naissance":  "date of birth",
			"lieu de naissance":  "place of birth",
			"date de décès":      "date of death",
			"lieu de décès":      "place of death",
		},
	}

	// The Japanese wiki bots only ever inspect mangled page text, so the
	// structured-block grammars stay at their defaults (category links use
	// the English form on ja.wikipedia).
	japanese = &Language{
		Code:       "ja",
		categoryRe: regexp.MustCompile(`\[\[Category:(.*?)(?:\|.*?)?\]\]`),
	}
)

// ForCode returns the Language record for a supported wiki language code.
func ForCode(code string) (*Language, error) {
	switch code {
	case "en":
		return english, nil
	case "fr":
		return french, nil
	case "ja":
		return japanese, nil
	}
	return nil, fmt.Errorf("wiki: unsupported language %q", code)
}

// English returns the English wiki language record.
func English() *Language { return english }

// French returns the French wiki language record.
func French() *Language { return french }

// Japanese returns the Japanese wiki language record.
func Japanese() *Language { return japanese }
