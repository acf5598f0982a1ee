// Package wiki models fetched wiki documents: the category tags, the
// infobox and persondata blocks, and the markup-stripped lead paragraph
// that the inference rules consume.
package wiki

import (
	"regexp"
	"strings"
)

// Page is one parsed wiki document. It is constructed once per fetch and
// treated as immutable afterward, so inference rules may read it in any
// order without coordination.
type Page struct {
	Title string
	Text  string
	Lang  *Language

	// Categories in document order, duplicates and empty captures kept.
	Categories []string

	// InfoboxType is the template name variant that matched, if any.
	InfoboxType string

	// Infobox maps lowercased field names to raw field values.
	Infobox map[string]string

	// Persondata is like Infobox but sourced from the biography-metadata
	// block, with field names translated to canonical English keys.
	Persondata map[string]string

	// Abstract is the first paragraph of body text, markup stripped.
	Abstract string
}

// Parse builds a Page from raw wiki text using this language's grammar.
func (l *Language) Parse(title, text string) *Page {
	p := &Page{
		Title: title,
		Text:  text,
		Lang:  l,
	}
	p.Categories = l.extractCategories(text)
	p.InfoboxType, p.Infobox = l.parseBlock(l.infoboxRe, text, nil)
	_, p.Persondata = l.parseBlock(l.persondataRe, text, l.persondataKeys)
	p.Abstract = FirstParagraph(RemoveMarkup(text))
	return p
}

func (l *Language) extractCategories(text string) []string {
	if l.categoryRe == nil {
		return nil
	}
	var categories []string
	for _, m := range l.categoryRe.FindAllStringSubmatch(text, -1) {
		categories = append(categories, m[1])
	}
	return categories
}

// parseBlock locates a templated block and splits its body into fields,
// one per "name = value" line. Field names are trimmed of the leading pipe
// marker, lowercased, and optionally translated through keyMap. A missing
// block yields an empty map, not an error.
func (l *Language) parseBlock(re *regexp.Regexp, text string, keyMap map[string]string) (string, map[string]string) {
	fields := map[string]string{}
	if re == nil {
		return "", fields
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", fields
	}
	blockType := ""
	body := m[len(m)-1]
	if len(m) > 2 {
		blockType = m[1]
	}
	for _, line := range strings.Split(body, "\n") {
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		name := strings.ToLower(strings.TrimLeft(strings.TrimSpace(line[:eq]), "| "))
		value := strings.TrimSpace(line[eq+1:])
		if keyMap != nil {
			if canonical, ok := keyMap[name]; ok {
				name = canonical
			}
		}
		fields[name] = value
	}
	return blockType, fields
}
