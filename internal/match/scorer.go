package match

import (
	"strings"
	"unicode/utf8"

	"github.com/tanagerbot/tanager/internal/textnorm"
)

func mangle(s string) string { return textnorm.Mangle(s) }

// ScoreOptions tune the overlap score for a bot's entity class.
type ScoreOptions struct {
	// MinEntryLen drops catalog entries whose mangled form is shorter than
	// this from the numerator. Entries that are too short match almost any
	// page and say nothing.
	MinEntryLen int
	// DropShortFromCatalog removes too-short entries from the denominator
	// as well, instead of just never counting them as found.
	DropShortFromCatalog bool
	// MinCatalog fails the score outright when fewer than this many
	// entries remain after filtering. Zero disables the floor.
	MinCatalog int
}

// ScoreResult reports how much of an entity's catalog a document mentions.
type ScoreResult struct {
	// Scored is false when the catalog was too small to score.
	Scored bool
	// Ratio is len(Found) / CatalogSize.
	Ratio float64
	// Found lists the catalog entries (original form) whose mangled form
	// appears in the document, in catalog order.
	Found []string
	// CatalogSize is the denominator actually used.
	CatalogSize int
}

// Score measures what fraction of the entity's catalog appears in the
// mangled document text. Catalog entries that contain the entity's own
// mangled name are excluded before scoring: "Madonna (Remix)" mentions
// Madonna by construction and proves nothing about the page.
func Score(entityName string, catalog []string, mangledDoc string, opts ScoreOptions) ScoreResult {
	mangledName := mangle(entityName)

	type entry struct {
		original string
		mangled  string
	}
	var entries []entry
	for _, c := range catalog {
		m := mangle(c)
		if mangledName != "" && strings.Contains(m, mangledName) {
			continue
		}
		if opts.DropShortFromCatalog && utf8.RuneCountInString(m) < opts.MinEntryLen {
			continue
		}
		entries = append(entries, entry{c, m})
	}

	if len(entries) < opts.MinCatalog {
		return ScoreResult{CatalogSize: len(entries)}
	}

	var found []string
	for _, e := range entries {
		if utf8.RuneCountInString(e.mangled) < opts.MinEntryLen {
			continue
		}
		if strings.Contains(mangledDoc, e.mangled) {
			found = append(found, e.original)
		}
	}

	res := ScoreResult{
		Scored:      true,
		Found:       found,
		CatalogSize: len(entries),
	}
	if res.CatalogSize > 0 {
		res.Ratio = float64(len(found)) / float64(res.CatalogSize)
	}
	return res
}

// Threshold returns the acceptance ratio for an entity name: long names
// are unambiguous enough that weaker catalog overlap suffices. Length is
// counted in runes, an accented name is no less ambiguous than its plain
// spelling.
func Threshold(entityName string, long, short float64, nameLen int) float64 {
	if utf8.RuneCountInString(entityName) > nameLen {
		return long
	}
	return short
}
