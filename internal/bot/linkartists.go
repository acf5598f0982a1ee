package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tanagerbot/tanager/internal/analysis"
	"github.com/tanagerbot/tanager/internal/match"
	"github.com/tanagerbot/tanager/internal/mb"
	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

const linkArtistsName = "link-artists"

// LinkArtists finds wiki articles about artists that lack one, matching
// search hits against the artist's release catalog.
type LinkArtists struct {
	Logger *slog.Logger
	Store  Marker
	Editor Editor
	Wiki   PageFetcher
	Search Searcher
	Lang   string
}

// Run processes the candidates. For each artist the first search hit that
// survives the title gate, the structural rejections, the catalog overlap
// threshold, and (for non-English wikis) the country gate gets linked.
func (b *LinkArtists) Run(ctx context.Context, candidates []ArtistCandidate) (Stats, error) {
	var stats Stats
	for _, artist := range candidates {
		seen, err := b.Store.Seen(ctx, linkArtistsName, artist.GID, b.Lang)
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", artist.GID), slog.String("name", artist.Name))
		edited, err := b.processArtist(ctx, artist, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, linkArtistsName, artist.GID, b.Lang); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *LinkArtists) processArtist(ctx context.Context, artist ArtistCandidate, log *slog.Logger) (bool, error) {
	hits, err := b.Search.Search(ctx, b.Lang, artist.Name, 50)
	if err != nil {
		return false, fmt.Errorf("searching for %q: %w", artist.Name, err)
	}

	predicates := match.ArtistPredicates(b.Lang)
	for _, hit := range hits {
		if !titleMatchesName(hit.Title, artist.Name) {
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

		res := match.Score(artist.Name, artist.Albums, candidate.Mangled, match.ScoreOptions{
			MinEntryLen: 7,
		})
		if res.CatalogSize == 0 {
			continue
		}
		minRatio := match.Threshold(artist.Name, 0.15, 0.3, 15)
		log.Debug("scored",
			slog.Float64("ratio", res.Ratio),
			slog.Int("catalog", res.CatalogSize),
			slog.Int("found", len(res.Found)))
		if res.Ratio < minRatio {
			continue
		}

		if b.Lang != "en" {
			ok, err := b.languageCompatible(hit.Title, content, artist)
			if err != nil {
				return false, err
			}
			if !ok {
				log.Info("artist country not compatible with wiki language",
					slog.String("lang", b.Lang), slog.String("country", artist.Country))
				continue
			}
		}

		pageURL := wiki.PageURL(b.Lang, hit.Title)
		note := fmt.Sprintf("Matched based on the name. The page mentions %s.",
			textnorm.JoinNames("album", res.Found))
		log.Info("linking", slog.String("url", pageURL))
		if err := b.Editor.AddURL(ctx, "artist", artist.GID, mb.LinkArtistWikipedia, pageURL, note, false); err != nil {
			return false, fmt.Errorf("linking artist %s: %w", artist.GID, err)
		}
		return true, nil
	}
	return false, nil
}

// languageCompatible checks that either the artist's recorded country or
// the country inferred from the page itself is plausible for the wiki's
// language.
func (b *LinkArtists) languageCompatible(title, content string, artist ArtistCandidate) (bool, error) {
	if _, ok := acceptableCountries[b.Lang]; !ok {
		return false, nil
	}
	if countryAcceptable(b.Lang, artist.Country) {
		return true, nil
	}

	lang, err := wiki.ForCode(b.Lang)
	if err != nil {
		return false, err
	}
	profile, err := analysis.NewProfile(b.Lang, defaultTables)
	if err != nil {
		return false, err
	}
	country := analysis.DetermineCountry(lang.Parse(title, content), profile)
	return country.Decided && countryAcceptable(b.Lang, country.Value), nil
}
