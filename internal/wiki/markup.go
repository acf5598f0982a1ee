package wiki

import (
	"regexp"
	"strings"
)

var markupDelimRe = regexp.MustCompile(`\{\{|\}\}|<!--|-->`)

// RemoveMarkup strips template transclusions and comments from wiki text.
// Template braces and comment delimiters nest independently; text is
// emitted only where both depths are zero. Unbalanced closers push a depth
// negative, which also suppresses output, mirroring the upstream wikis'
// forgiving rendering of broken markup.
func RemoveMarkup(text string) string {
	var b strings.Builder
	templateDepth, commentDepth := 0, 0
	last := 0
	for _, loc := range markupDelimRe.FindAllStringIndex(text, -1) {
		if templateDepth == 0 && commentDepth == 0 {
			b.WriteString(text[last:loc[0]])
		}
		switch text[loc[0]:loc[1]] {
		case "{{":
			templateDepth++
		case "}}":
			templateDepth--
		case "<!--":
			commentDepth++
		case "-->":
			commentDepth--
		}
		last = loc[1]
	}
	if templateDepth == 0 && commentDepth == 0 {
		b.WriteString(text[last:])
	}
	return b.String()
}

// FirstParagraph returns the text up to the first blank-line paragraph
// break, with surrounding whitespace trimmed.
func FirstParagraph(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.Index(text, "\n\n"); i >= 0 {
		return text[:i]
	}
	return text
}
