package match

import "testing"

func TestFirstRejectionShortCircuits(t *testing.T) {
	calls := []string{}
	preds := []Predicate{
		{"first", func(Candidate) bool { calls = append(calls, "first"); return false }},
		{"second", func(Candidate) bool { calls = append(calls, "second"); return true }},
		{"third", func(Candidate) bool { calls = append(calls, "third"); return true }},
	}
	name, ok := FirstRejection(Candidate{}, preds)
	if ok || name != "second" {
		t.Fatalf("got (%q, %v), want (second, false)", name, ok)
	}
	if len(calls) != 2 {
		t.Fatalf("predicates after the first rejection must not run, calls = %v", calls)
	}
}

func TestArtistPredicates(t *testing.T) {
	preds := ArtistPredicates("en")
	cases := []struct {
		name   string
		c      Candidate
		reject string
	}{
		{"album title suffix", Candidate{Title: "True Blue (Madonna album)"}, "album or song title"},
		{"song title suffix", Candidate{Title: "Vogue (Madonna song)"}, "album or song title"},
		{"redirect", Candidate{Title: "Madonna", Mangled: "redirect madonnaentertainer"}, "redirect page"},
		{"disambiguation title", Candidate{Title: "Madonna (disambiguation)"}, "disambiguation page"},
		{"disambiguation template", Candidate{Title: "Madonna", Text: "{{disambig}}"}, "disambiguation page"},
		{"disambiguation category", Candidate{Title: "Madonna", Mangled: "categorydisambiguationpages"}, "disambiguation page"},
		{"album infobox", Candidate{Title: "Madonna", Mangled: "infoboxalbum name trueblue"}, "album page"},
		{"clean artist page", Candidate{Title: "Madonna", Mangled: "infoboxmusicalartist madonna"}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			name, ok := FirstRejection(tc.c, preds)
			if tc.reject == "" {
				if !ok {
					t.Fatalf("unexpected rejection: %s", name)
				}
			} else if ok || name != tc.reject {
				t.Fatalf("got (%q, %v), want (%q, false)", name, ok, tc.reject)
			}
		})
	}
}

func TestDisambiguationByLanguage(t *testing.T) {
	fr := ArtistPredicates("fr")
	if name, ok := FirstRejection(Candidate{Title: "Madonna", Mangled: "categoriehomonymie"}, fr); ok || name != "disambiguation page" {
		t.Fatalf("fr homonymie page not rejected, got (%q, %v)", name, ok)
	}
	ja := ArtistPredicates("ja")
	if name, ok := FirstRejection(Candidate{Title: "マドンナ", Mangled: "曖昧さ回避"}, ja); ok || name != "disambiguation page" {
		t.Fatalf("ja disambiguation page not rejected, got (%q, %v)", name, ok)
	}
	// The fr marker must not reject on en pages.
	if _, ok := FirstRejection(Candidate{Title: "Madonna", Mangled: "homonymie"}, ArtistPredicates("en")); !ok {
		t.Fatal("en predicates must ignore the fr disambiguation marker")
	}
}

func TestLabelPredicates(t *testing.T) {
	preds := LabelPredicates()
	if name, ok := FirstRejection(Candidate{Title: "Sire Records", Mangled: "biography of a person"}, preds); ok || name != "not a record label page" {
		t.Fatalf("non-label page not rejected, got (%q, %v)", name, ok)
	}
	if name, ok := FirstRejection(Candidate{Title: "Sire Records", Mangled: "americanrecordlabels"}, preds); !ok {
		t.Fatalf("label page rejected: %s", name)
	}
}

func TestReleaseGroupPredicates(t *testing.T) {
	preds := ReleaseGroupPredicates("en")
	if name, ok := FirstRejection(Candidate{Title: "True Blue", Mangled: "redirect"}, preds); ok || name != "redirect page" {
		t.Fatalf("redirect not rejected, got (%q, %v)", name, ok)
	}
	if _, ok := FirstRejection(Candidate{Title: "True Blue (Madonna album)", Mangled: "infoboxalbum 1986albums"}, preds); !ok {
		t.Fatal("album page must survive release group predicates")
	}
}
