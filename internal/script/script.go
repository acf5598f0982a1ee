// Package script answers whether text belongs to a given writing system.
// It is used by language-specific bots to skip entities whose names cannot
// appear on the wiki they target (for example, artist names with no
// Japanese script run are never looked up on the Japanese wiki).
package script

import "unicode"

// Classifier tests text against named script range tables. The table is
// supplied at construction so tests can substitute a reduced one; the
// default is the Unicode script table shipped with the runtime.
type Classifier struct {
	tables map[string]*unicode.RangeTable
}

// NewClassifier creates a Classifier over the given script tables.
func NewClassifier(tables map[string]*unicode.RangeTable) *Classifier {
	return &Classifier{tables: tables}
}

// Default returns a Classifier over the full Unicode script table.
func Default() *Classifier {
	return NewClassifier(unicode.Scripts)
}

// resolve maps script names to range tables. An unknown name is a
// programming error, not a runtime condition, and panics immediately.
func (c *Classifier) resolve(scripts []string) []*unicode.RangeTable {
	tables := make([]*unicode.RangeTable, len(scripts))
	for i, name := range scripts {
		t, ok := c.tables[name]
		if !ok {
			panic("script: unknown script name " + name)
		}
		tables[i] = t
	}
	return tables
}

// Contains reports whether any character of text belongs to any of the
// named scripts.
func (c *Classifier) Contains(text string, scripts ...string) bool {
	tables := c.resolve(scripts)
	for _, r := range text {
		for _, t := range tables {
			if unicode.Is(t, r) {
				return true
			}
		}
	}
	return false
}

// Entirely reports whether every character of text belongs to the union of
// the named scripts. The empty string is not in any script.
func (c *Classifier) Entirely(text string, scripts ...string) bool {
	tables := c.resolve(scripts)
	if text == "" {
		return false
	}
	for _, r := range text {
		inAny := false
		for _, t := range tables {
			if unicode.Is(t, r) {
				inAny = true
				break
			}
		}
		if !inAny {
			return false
		}
	}
	return true
}
