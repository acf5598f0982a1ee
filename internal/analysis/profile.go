package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tanagerbot/tanager/internal/wiki"
)

// Profile carries everything the inference rules need for one language:
// the parsing grammar, the lookup tables, and the per-language regexes.
// Building the record up front (instead of consulting global maps keyed by
// language code at each call) surfaces a missing entry at startup.
type Profile struct {
	Lang *wiki.Language

	// Country inference.
	CountryFields         []string          // infobox fields scanned for country links
	CountryLinks          map[string]string // link text -> ISO code
	Demonyms              map[string]string // nationality adjective -> ISO code
	USStates              []string
	countryNames          []string // sorted keys of CountryLinks, for determinism
	demonymNames          []string // sorted keys of Demonyms
	stateLinkRes          []*regexp.Regexp
	stateCategorySuffixes []string

	// Gender inference.
	Firstnames        map[string]string
	HyphenPrefixNames bool // try the prefix before the first hyphen of a compound name
	PronounRe         *regexp.Regexp
	FemalePronouns    map[string]struct{}
	MaleCategoryRes   []*regexp.Regexp
	FemaleCategoryRes []*regexp.Regexp

	// Type inference.
	BackgroundField       string
	PersonBackgrounds     []string
	GroupBackgrounds      []string
	GroupCategoryPrefixes []string
	GroupCategorySuffixes []string

	// Date inference.
	BeginDateField   string
	EndDateField     string
	BeginTemplateRe  *regexp.Regexp
	EndTemplateRe    *regexp.Regexp
	PersonBirthRe    *regexp.Regexp
	PersonDeathRe    *regexp.Regexp
	GroupFormedRe    *regexp.Regexp
	GroupDisbandedRe *regexp.Regexp
	Months           map[string]int // lowercased month name -> number
}

// NewProfile builds the inference profile for a supported language.
func NewProfile(code string, tables *Tables) (*Profile, error) {
	lang, err := wiki.ForCode(code)
	if err != nil {
		return nil, err
	}

	p := &Profile{
		Lang:         lang,
		CountryLinks: tables.CountryLinks[code],
		Demonyms:     tables.Demonyms[code],
		USStates:     tables.USStates,
		Firstnames:   tables.Firstnames[code],
	}

	switch code {
	case "en":
		p.CountryFields = []string{"origin", "born", "birth_place"}
		p.PronounRe = regexp.MustCompile(`(?i)\b(he|she|her|his)\b`)
		p.FemalePronouns = pronounSet("she", "her")
		p.MaleCategoryRes = []*regexp.Regexp{regexp.MustCompile(`(?i)\bmale\b`)}
		p.FemaleCategoryRes = []*regexp.Regexp{regexp.MustCompile(`(?i)\bfemale\b`)}
		p.BackgroundField = "background"
		p.PersonBackgrounds = []string{"solo_singer", "vocal"}
		p.GroupBackgrounds = []string{"group_or_band"}
		p.GroupCategoryPrefixes = []string{"Musical groups"}
		p.GroupCategorySuffixes = []string{" groups"}
		p.BeginDateField = "birth_date"
		p.EndDateField = "death_date"
		p.BeginTemplateRe = regexp.MustCompile(`(?i)^\{\{(?:Birth date and age|Birth date|Bda|dob)\|(?P<year>\d+)\|(?P<month>\w+)\|(?P<day>\d+)`)
		p.EndTemplateRe = regexp.MustCompile(`(?i)^\{\{(?:Death date and age|Dda)\|(?P<year>\d+)\|(?P<month>\w+)\|(?P<day>\d+)`)
		p.PersonBirthRe = regexp.MustCompile(`(?i)^(\d{4}) births`)
		p.PersonDeathRe = regexp.MustCompile(`(?i)^(\d{4}) deaths`)
		p.GroupFormedRe = regexp.MustCompile(`(?i)^Musical groups established in (\d{4})`)
		p.GroupDisbandedRe = regexp.MustCompile(`(?i)^Musical groups disestablished in (\d{4})`)
		p.Months = monthsEN
	case "fr":
		p.CountryFields = []string{"naissance lieu", "décès lieu", "nationalité", "pays origine"}
		p.HyphenPrefixNames = true
		p.PronounRe = regexp.MustCompile(`(?i)\b(il|elle)\b`)
		p.FemalePronouns = pronounSet("elle")
		p.MaleCategoryRes = []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bmale\b`),
			regexp.MustCompile(`(?i)^(Chanteur|Acteur|Animateur)\b`),
		}
		p.FemaleCategoryRes = []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bfemale\b`),
			regexp.MustCompile(`(?i)^(Chanteuse|Actrice|Animatrice)\b`),
		}
		p.BackgroundField = "charte"
		p.PersonBackgrounds = []string{"vocal", "instrumentiste"}
		p.GroupBackgrounds = []string{"groupe"}
		p.GroupCategoryPrefixes = []string{"Groupe"}
		p.BeginDateField = "naissance"
		p.EndDateField = "décès"
		p.BeginTemplateRe = regexp.MustCompile(`(?i)^\{\{Date de naissance\|(?P<day>\d+)\|(?P<month>\w+)\|(?P<year>\d+)`)
		p.EndTemplateRe = regexp.MustCompile(`(?i)^\{\{Date de décès\|(?P<day>\d+)\|(?P<month>\w+)\|(?P<year>\d+)`)
		p.PersonBirthRe = regexp.MustCompile(`(?i)^Naissance en (\d{4})`)
		p.PersonDeathRe = regexp.MustCompile(`(?i)^Décès en (\d{4})`)
		p.GroupFormedRe = regexp.MustCompile(`(?i)^Groupe de musique formé en (\d{4})`)
		p.Months = monthsFR
	default:
		return nil, fmt.Errorf("analysis: no inference profile for language %q", code)
	}

	p.countryNames = sortedKeys(p.CountryLinks)
	p.demonymNames = sortedKeys(p.Demonyms)
	for _, state := range p.USStates {
		p.stateLinkRes = append(p.stateLinkRes,
			regexp.MustCompile(`\[\[(([^\]|]+, )?`+regexp.QuoteMeta(state)+`)(\]\]|\|)`))
		p.stateCategorySuffixes = append(p.stateCategorySuffixes, "from "+state)
	}
	return p, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func pronounSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

var monthsEN = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5,
	"june": 6, "july": 7, "august": 8, "september": 9, "october": 10,
	"november": 11, "december": 12,
}

var monthsFR = map[string]int{
	"janvier": 1, "février": 2, "mars": 3, "avril": 4, "mai": 5, "juin": 6,
	"juillet": 7, "août": 8, "septembre": 9, "octobre": 10, "novembre": 11,
	"décembre": 12,
}
