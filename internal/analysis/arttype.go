package analysis

import (
	"fmt"
	"strings"

	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

// Artist type values as MusicBrainz names them.
const (
	TypePerson = "person"
	TypeGroup  = "group"
)

// TypeFromInfobox proposes an artist type from the infobox background
// field and from the presence of the persondata block (which only exists
// for people).
func TypeFromInfobox(page *wiki.Page, p *Profile) Evidence {
	types := map[string]struct{}{}
	var reasons []string
	background := page.Infobox[p.BackgroundField]
	for _, v := range p.PersonBackgrounds {
		if background == v {
			types[TypePerson] = struct{}{}
			reasons = append(reasons, fmt.Sprintf("Infobox has %q.", p.BackgroundField+" = "+background))
			break
		}
	}
	for _, v := range p.GroupBackgrounds {
		if background == v {
			types[TypeGroup] = struct{}{}
			reasons = append(reasons, fmt.Sprintf("Infobox has %q.", p.BackgroundField+" = "+background))
			break
		}
	}
	if page.Persondata["name"] != "" {
		types[TypePerson] = struct{}{}
		reasons = append(reasons, `Contains the "Persondata" infobox.`)
	}
	return newEvidence(types, strings.Join(reasons, " "), false)
}

// TypeFromCategories proposes the group type from the language's
// group-category naming conventions.
func TypeFromCategories(page *wiki.Page, p *Profile) Evidence {
	types := map[string]struct{}{}
	var relevant []string
	for _, category := range page.Categories {
		matched := false
		for _, prefix := range p.GroupCategoryPrefixes {
			if strings.HasPrefix(category, prefix) {
				matched = true
				break
			}
		}
		if !matched {
			for _, suffix := range p.GroupCategorySuffixes {
				if strings.HasSuffix(category, suffix) {
					matched = true
					break
				}
			}
		}
		if matched {
			types[TypeGroup] = struct{}{}
			relevant = append(relevant, category)
		}
	}
	return newEvidence(types,
		"Belongs to "+textnorm.JoinNames("category", relevant)+".", true)
}

// DetermineType runs the type rules and aggregates them with category
// corroboration required.
func DetermineType(page *wiki.Page, p *Profile) Result {
	evidence := []Evidence{
		TypeFromInfobox(page, p),
		TypeFromCategories(page, p),
	}
	return Aggregate(evidence, Options{RequireCategories: true})
}
