package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tanagerbot/tanager/internal/match"
	"github.com/tanagerbot/tanager/internal/mb"
	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

const linkReleaseGroupsName = "link-release-groups"

// LinkReleaseGroups finds wiki articles about albums and links them to
// the matching release group, using the track list as the catalog.
type LinkReleaseGroups struct {
	Logger *slog.Logger
	Store  Marker
	Editor Editor
	Wiki   PageFetcher
	Search Searcher
	Lang   string
}

// Run processes the candidates.
func (b *LinkReleaseGroups) Run(ctx context.Context, candidates []ReleaseGroupCandidate) (Stats, error) {
	lang, err := wiki.ForCode(b.Lang)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, rg := range candidates {
		seen, err := b.Store.Seen(ctx, linkReleaseGroupsName, rg.GID, b.Lang)
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", rg.GID), slog.String("name", rg.Name))
		edited, err := b.processReleaseGroup(ctx, lang, rg, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, linkReleaseGroupsName, rg.GID, b.Lang); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *LinkReleaseGroups) processReleaseGroup(ctx context.Context, lang *wiki.Language, rg ReleaseGroupCandidate, log *slog.Logger) (bool, error) {
	hits, err := b.Search.Search(ctx, b.Lang, rg.Name, 100)
	if err != nil {
		return false, fmt.Errorf("searching for %q: %w", rg.Name, err)
	}

	predicates := match.ReleaseGroupPredicates(b.Lang)
	for _, hit := range hits {
		if !titleMatchesName(hit.Title, rg.Name) {
			continue
		}

		content, err := b.Wiki.PageContent(ctx, b.Lang, hit.Title)
		if err != nil {
			var missing *wiki.ErrPageMissing
			if errors.As(err, &missing) {
				continue
			}
			return false, err
		}
		log.Debug("trying article", slog.String("title", hit.Title))

		candidate := match.Candidate{
			Title:   hit.Title,
			Text:    content,
			Mangled: textnorm.Mangle(content),
		}
		if reason, ok := match.FirstRejection(candidate, predicates); !ok {
			log.Debug("rejected", slog.String("title", hit.Title), slog.String("reason", reason))
			continue
		}

		page := lang.Parse(hit.Title, content)
		if !isAlbumPage(b.Lang, page.Categories) {
			log.Debug("not an album page", slog.String("title", hit.Title))
			continue
		}
		if !strings.Contains(candidate.Mangled, textnorm.Mangle(rg.Artist)) {
			log.Debug("artist name not found", slog.String("title", hit.Title))
			continue
		}

		res := match.Score(rg.Name, rg.Tracks, candidate.Mangled, match.ScoreOptions{
			MinEntryLen:          5,
			DropShortFromCatalog: true,
			MinCatalog:           5,
		})
		if !res.Scored {
			continue
		}
		minRatio := match.Threshold(rg.Name, 0.7, 1.0, 4)
		log.Debug("scored",
			slog.Float64("ratio", res.Ratio),
			slog.Int("catalog", res.CatalogSize),
			slog.Int("found", len(res.Found)))
		if res.Ratio < minRatio {
			continue
		}

		auto := res.Ratio > 0.75 && rg.Type != "Compilation" && rg.Type != "Soundtrack"
		pageURL := wiki.PageURL(b.Lang, hit.Title)
		note := fmt.Sprintf("Matched based on the name. The page mentions artist %q and %s.",
			rg.Artist, textnorm.JoinNames("track", res.Found))
		log.Info("linking", slog.String("url", pageURL), slog.Bool("auto", auto))
		if err := b.Editor.AddURL(ctx, "release_group", rg.GID, mb.LinkReleaseGroupWikipedia, pageURL, note, auto); err != nil {
			return false, fmt.Errorf("linking release group %s: %w", rg.GID, err)
		}
		return true, nil
	}
	return false, nil
}

// isAlbumPage checks the categories for the language's album article
// conventions.
func isAlbumPage(lang string, categories []string) bool {
	for _, c := range categories {
		switch lang {
		case "en":
			lower := strings.ToLower(c)
			if strings.HasSuffix(lower, " albums") || strings.HasSuffix(lower, " soundtracks") {
				return true
			}
		case "fr":
			if strings.HasPrefix(c, "Album ") {
				return true
			}
		}
	}
	return false
}
