// Package bot holds the batch jobs that turn candidate rows into
// MusicBrainz edits. Each bot runs its candidates sequentially, marks
// every examined entity as processed, and submits at most one edit per
// entity.
package bot

import (
	"context"
	"regexp"

	"github.com/tanagerbot/tanager/internal/analysis"
	"github.com/tanagerbot/tanager/internal/discogs"
	"github.com/tanagerbot/tanager/internal/script"
	"github.com/tanagerbot/tanager/internal/search"
	"github.com/tanagerbot/tanager/internal/textnorm"
)

// Editor submits edits to the MusicBrainz server.
type Editor interface {
	UpdateArtist(ctx context.Context, gid string, updates map[string]string, note string) error
	AddURL(ctx context.Context, entityType, gid string, linkType int, target, note string, auto bool) error
}

// PageFetcher retrieves wiki page source.
type PageFetcher interface {
	PageContent(ctx context.Context, lang, title string) (string, error)
}

// Searcher queries the article title index.
type Searcher interface {
	Search(ctx context.Context, lang, query string, rows int) ([]search.Hit, error)
}

// MasterResolver resolves a Discogs release to its master.
type MasterResolver interface {
	ReleaseMaster(ctx context.Context, releaseID int) (*discogs.Master, error)
}

// Marker tracks processed entities across runs.
type Marker interface {
	Seen(ctx context.Context, bot, gid, lang string) (bool, error)
	Mark(ctx context.Context, bot, gid, lang string) error
}

// Stats summarizes one bot run.
type Stats struct {
	Examined int
	Edited   int
	Skipped  int
}

// acceptableCountries lists, per non-English wiki language, the artist
// countries for which a link to that wiki is plausible. A language absent
// from the map never links.
var acceptableCountries = map[string][]string{
	"fr": {"FR", "MC"},
}

func countryAcceptable(lang, code string) bool {
	for _, c := range acceptableCountries[lang] {
		if c == code {
			return true
		}
	}
	return false
}

var trailingParenRe = regexp.MustCompile(` \(.+\)$`)

// titleMatchesName reports whether an article title names the entity,
// with or without a trailing disambiguation parenthetical.
func titleMatchesName(title, name string) bool {
	mangledName := textnorm.Mangle(name)
	if textnorm.Mangle(trailingParenRe.ReplaceAllString(title, "")) == mangledName {
		return true
	}
	return textnorm.Mangle(title) == mangledName
}

var (
	defaultScripts = script.Default()
	defaultTables  = analysis.DefaultTables()
)
