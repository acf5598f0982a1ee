package mb

import (
	"sort"
	"strings"
)

// NoteSection is one attribute's justification block in an edit note.
type NoteSection struct {
	Attribute string
	Reasons   []string
}

// EditNote renders the standard edit note: the source URL on the first
// line, then one section per updated attribute with the reasons that
// justified it. Sections are sorted by attribute name so the same edit
// always produces the same note.
func EditNote(sourceURL string, sections []NoteSection) string {
	var b strings.Builder
	b.WriteString("From ")
	b.WriteString(sourceURL)
	b.WriteString(".")

	sorted := make([]NoteSection, len(sections))
	copy(sorted, sections)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Attribute < sorted[j].Attribute })

	for _, s := range sorted {
		if len(s.Reasons) == 0 {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(strings.ToUpper(s.Attribute))
		b.WriteString(":\n")
		b.WriteString(strings.Join(s.Reasons, "\n"))
	}
	return b.String()
}
