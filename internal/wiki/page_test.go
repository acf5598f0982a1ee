package wiki

import (
	"reflect"
	"testing"
)

const samplePageEN = `{{Infobox musical artist
| name = Example Artist
| background = solo_singer
| origin = [[France]]
| birth_date = {{Birth date|1950|5|2}}
}}
'''Example Artist''' is a French singer.

Career details follow.
{{Persondata
| NAME = Example Artist
| DATE OF BIRTH = May 2, 1950
}}
[[Category:French singers]]
[[Category:1950 births|Example]]
[[Category:French singers]]
`

func TestParseEnglish(t *testing.T) {
	p := English().Parse("Example Artist", samplePageEN)

	wantCats := []string{"French singers", "1950 births", "French singers"}
	if !reflect.DeepEqual(p.Categories, wantCats) {
		t.Errorf("Categories = %v, want %v", p.Categories, wantCats)
	}

	if p.InfoboxType != "musical artist" {
		t.Errorf("InfoboxType = %q", p.InfoboxType)
	}
	if got := p.Infobox["origin"]; got != "[[France]]" {
		t.Errorf("Infobox[origin] = %q", got)
	}
	if got := p.Infobox["background"]; got != "solo_singer" {
		t.Errorf("Infobox[background] = %q", got)
	}
	// Nested template value survives one level of brace nesting.
	if got := p.Infobox["birth_date"]; got != "{{Birth date|1950|5|2}}" {
		t.Errorf("Infobox[birth_date] = %q", got)
	}

	if got := p.Persondata["date of birth"]; got != "May 2, 1950" {
		t.Errorf("Persondata[date of birth] = %q", got)
	}

	if p.Abstract != "'''Example Artist''' is a French singer." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
}

func TestParseFrenchPersondataKeys(t *testing.T) {
	text := `{{Métadonnées personne
| nom = Exemple
| date de naissance = 2 mai 1950
}}
[[Catégorie:Naissance en 1950]]
[[Catégorie:Chanteuse française|Exemple]]
`
	p := French().Parse("Exemple", text)

	if got := p.Persondata["name"]; got != "Exemple" {
		t.Errorf("Persondata[name] = %q (key translation failed)", got)
	}
	if got := p.Persondata["date of birth"]; got != "2 mai 1950" {
		t.Errorf("Persondata[date of birth] = %q", got)
	}
	wantCats := []string{"Naissance en 1950", "Chanteuse française"}
	if !reflect.DeepEqual(p.Categories, wantCats) {
		t.Errorf("Categories = %v, want %v", p.Categories, wantCats)
	}
}

func TestParseMissingBlocks(t *testing.T) {
	p := English().Parse("Empty", "Just prose, no templates.")
	if len(p.Infobox) != 0 || len(p.Persondata) != 0 {
		t.Errorf("expected empty maps, got infobox=%v persondata=%v", p.Infobox, p.Persondata)
	}
	if p.Categories != nil {
		t.Errorf("expected no categories, got %v", p.Categories)
	}
	if p.Abstract != "Just prose, no templates." {
		t.Errorf("Abstract = %q", p.Abstract)
	}
}

func TestTitleFromURL(t *testing.T) {
	tests := []struct {
		url, lang, want string
	}{
		{"https://en.wikipedia.org/wiki/True_Blue_(album)", "en", "True Blue (album)"},
		{"http://fr.wikipedia.org/wiki/%C3%89dith_Piaf", "fr", "Édith Piaf"},
		{"https://en.wikipedia.org/wiki/Madonna", "fr", ""},
		{"https://example.com/Madonna", "en", ""},
	}
	for _, tt := range tests {
		if got := TitleFromURL(tt.url, tt.lang); got != tt.want {
			t.Errorf("TitleFromURL(%q, %q) = %q, want %q", tt.url, tt.lang, got, tt.want)
		}
	}
}
