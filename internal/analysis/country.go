package analysis

import (
	"strings"

	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

// findCountriesInText scans text for wiki links or template transclusions
// referencing a known country name (tried in original case and lowercased)
// or a US state, optionally prefixed "City, State" inside the link.
func (p *Profile) findCountriesInText(text string, countries map[string]struct{}, links *[]string) {
	text = strings.ReplaceAll(text, "_", " ")
	for _, name := range p.countryNames {
		code := p.CountryLinks[name]
		for _, variant := range []string{name, strings.ToLower(name)} {
			if strings.Contains(text, "[["+variant+"]]") ||
				strings.Contains(text, "[["+variant+"|") ||
				strings.Contains(text, "{{"+variant+"}}") {
				countries[code] = struct{}{}
				*links = append(*links, variant)
				break
			}
		}
	}
	for _, re := range p.stateLinkRes {
		if m := re.FindStringSubmatch(text); m != nil {
			countries["US"] = struct{}{}
			*links = append(*links, m[1])
		}
	}
}

// CountryFromInfobox proposes countries referenced from the profile's
// country-bearing infobox fields.
func CountryFromInfobox(page *wiki.Page, p *Profile) Evidence {
	countries := map[string]struct{}{}
	var links []string
	for _, field := range p.CountryFields {
		p.findCountriesInText(page.Infobox[field], countries, &links)
	}
	return newEvidence(countries,
		"Infobox links to "+textnorm.JoinNames("", links)+".", false)
}

// CountryFromText proposes countries referenced from the lead paragraph.
func CountryFromText(page *wiki.Page, p *Profile) Evidence {
	countries := map[string]struct{}{}
	var links []string
	p.findCountriesInText(page.Abstract, countries, &links)
	return newEvidence(countries,
		"The first paragraph links to "+textnorm.JoinNames("", links)+".", false)
}

// CountryFromCategories proposes countries from demonyms in category names
// and "from <US state>" category suffixes. The matched-category count is
// returned alongside for diagnostics.
func CountryFromCategories(page *wiki.Page, p *Profile) (Evidence, int) {
	countries := map[string]struct{}{}
	var relevant []string
	for _, category := range page.Categories {
		category = strings.ReplaceAll(category, "_", " ")
		for _, demonym := range p.demonymNames {
			if strings.Contains(category, demonym) {
				countries[p.Demonyms[demonym]] = struct{}{}
				relevant = append(relevant, category)
			}
		}
		for _, suffix := range p.stateCategorySuffixes {
			if strings.HasSuffix(category, suffix) {
				countries["US"] = struct{}{}
				relevant = append(relevant, category)
			}
		}
	}
	ev := newEvidence(countries,
		"Belongs to "+textnorm.JoinNames("category", relevant)+".", true)
	return ev, len(relevant)
}

// DetermineCountry runs all country rules and aggregates them. Category
// corroboration is required: a single infobox field or free-text mention
// is too noisy to act on alone.
func DetermineCountry(page *wiki.Page, p *Profile) Result {
	infobox := CountryFromInfobox(page, p)
	text := CountryFromText(page, p)
	categories, _ := CountryFromCategories(page, p)
	return Aggregate([]Evidence{infobox, text, categories}, Options{RequireCategories: true})
}
