package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

var firstTokenRe = regexp.MustCompile(`^(\S+)\s`)
var hyphenPrefixRe = regexp.MustCompile(`^([^-]+)-`)

// GenderFromFirstname proposes a gender from the first whitespace-delimited
// token of the page title, treated as a given name. For languages with
// hyphenated compound names the prefix before the first hyphen is tried as
// a fallback (Jean-Baptiste -> Jean).
func GenderFromFirstname(page *wiki.Page, p *Profile) Evidence {
	m := firstTokenRe.FindStringSubmatch(strings.ReplaceAll(page.Title, "_", " "))
	if m == nil {
		return Evidence{}
	}
	firstname := m[1]
	if gender, ok := p.Firstnames[firstname]; ok {
		return genderEvidence(firstname, gender)
	}
	if p.HyphenPrefixNames {
		if pm := hyphenPrefixRe.FindStringSubmatch(firstname); pm != nil {
			if gender, ok := p.Firstnames[pm[1]]; ok {
				return genderEvidence(firstname, gender)
			}
		}
	}
	return Evidence{}
}

func genderEvidence(firstname, gender string) Evidence {
	return newEvidence(map[string]struct{}{gender: {}},
		fmt.Sprintf("First name %q is a %s first name.", firstname, gender), false)
}

// GenderFromCategories proposes genders from male/female marker words and
// gendered profession prefixes in category names.
func GenderFromCategories(page *wiki.Page, p *Profile) Evidence {
	genders := map[string]struct{}{}
	var relevant []string
	for _, category := range page.Categories {
		for _, re := range p.MaleCategoryRes {
			if re.MatchString(category) {
				genders["male"] = struct{}{}
				relevant = append(relevant, category)
			}
		}
		for _, re := range p.FemaleCategoryRes {
			if re.MatchString(category) {
				genders["female"] = struct{}{}
				relevant = append(relevant, category)
			}
		}
	}
	return newEvidence(genders,
		"Belongs to "+textnorm.JoinNames("category", relevant)+".", true)
}

// GenderFromPronouns counts gendered pronouns in the full page text. A
// gender is proposed only when one count exceeds two and the other is
// zero; asymmetric evidence is inconclusive, not averaged.
func GenderFromPronouns(page *wiki.Page, p *Profile) Evidence {
	male, female := 0, 0
	for _, m := range p.PronounRe.FindAllStringSubmatch(page.Text, -1) {
		if _, ok := p.FemalePronouns[strings.ToLower(m[1])]; ok {
			female++
		} else {
			male++
		}
	}
	switch {
	case male > 2 && female == 0:
		return newEvidence(map[string]struct{}{"male": {}},
			fmt.Sprintf("The page text uses male pronouns %d times.", male), false)
	case female > 2 && male == 0:
		return newEvidence(map[string]struct{}{"female": {}},
			fmt.Sprintf("The page text uses female pronouns %d times.", female), false)
	}
	return Evidence{}
}

// DetermineGender runs all gender rules and aggregates them. No category
// corroboration is required; the pronoun rule's own asymmetry check and
// the conflict policy bound the noise.
func DetermineGender(page *wiki.Page, p *Profile) Result {
	evidence := []Evidence{
		GenderFromFirstname(page, p),
		GenderFromCategories(page, p),
		GenderFromPronouns(page, p),
	}
	return Aggregate(evidence, Options{})
}
