// Package match decides whether a candidate document is about a known
// catalog entity. Cheap structural rejections run first; the uncertain
// statistical overlap score runs only on survivors.
package match

import "strings"

// Candidate is one document proposed as referring to a catalog entity.
type Candidate struct {
	Title   string
	Text    string // raw document text
	Mangled string // normalized document text
}

// Predicate is a named structural rejection test. Predicates are evaluated
// in order and short-circuit on the first hit, so new detectors can be
// added without touching the scoring logic.
type Predicate struct {
	Name string
	Test func(c Candidate) bool
}

// FirstRejection returns the name of the first predicate that rejects the
// candidate, or ok=true if none does.
func FirstRejection(c Candidate, predicates []Predicate) (string, bool) {
	for _, p := range predicates {
		if p.Test(c) {
			return p.Name, false
		}
	}
	return "", true
}

func isRedirect(c Candidate) bool {
	return strings.Contains(c.Mangled, "redirect")
}

func isDisambiguation(lang string) func(Candidate) bool {
	return func(c Candidate) bool {
		if strings.Contains(c.Title, "disambiguation") {
			return true
		}
		if strings.Contains(strings.ToLower(c.Text), "{{disamb") {
			return true
		}
		if strings.Contains(c.Mangled, "disambiguationpages") {
			return true
		}
		switch lang {
		case "fr":
			return strings.Contains(c.Mangled, "homonymie")
		case "ja":
			return strings.Contains(c.Mangled, "曖昧さ回避")
		}
		return false
	}
}

func isAlbumTitle(c Candidate) bool {
	return strings.HasSuffix(c.Title, "album)") || strings.HasSuffix(c.Title, "song)")
}

func isAlbumPage(c Candidate) bool {
	return strings.Contains(c.Mangled, "infoboxalbum")
}

func isNotRecordLabelPage(c Candidate) bool {
	return !strings.Contains(c.Mangled, "recordlabels")
}

// ArtistPredicates rejects pages that cannot be an artist article: title
// suffixes of album/song articles, redirects, disambiguation pages, and
// album infoboxes.
func ArtistPredicates(lang string) []Predicate {
	return []Predicate{
		{"album or song title", isAlbumTitle},
		{"redirect page", isRedirect},
		{"disambiguation page", isDisambiguation(lang)},
		{"album page", isAlbumPage},
	}
}

// ReleaseGroupPredicates rejects pages that cannot be an album article.
// Whether the page is an album article is a positive check done by the
// caller on categories, not a rejection here.
func ReleaseGroupPredicates(lang string) []Predicate {
	return []Predicate{
		{"redirect page", isRedirect},
		{"disambiguation page", isDisambiguation(lang)},
	}
}

// LabelPredicates rejects pages that cannot be a record label article.
func LabelPredicates() []Predicate {
	return []Predicate{
		{"disambiguation page", isDisambiguation("en")},
		{"not a record label page", isNotRecordLabelPage},
	}
}
