package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tanagerbot/tanager/internal/match"
	"github.com/tanagerbot/tanager/internal/mb"
	"github.com/tanagerbot/tanager/internal/textnorm"
	"github.com/tanagerbot/tanager/internal/wiki"
)

const linkArtistsJaName = "link-artists-ja"

// japaneseScripts are the writing systems a name must contain for a
// Japanese wiki lookup to be worth attempting.
var japaneseScripts = []string{"Katakana", "Hiragana", "Han"}

// LinkArtistsJa is the Japanese wiki variant of the artist linker. Names
// without a Japanese script run are marked processed without a lookup,
// and the catalog thresholds are looser because Japanese titles rarely
// carry disambiguation suffixes.
type LinkArtistsJa struct {
	Logger *slog.Logger
	Store  Marker
	Editor Editor
	Wiki   PageFetcher
	Search Searcher
}

// Run processes the candidates.
func (b *LinkArtistsJa) Run(ctx context.Context, candidates []ArtistCandidate) (Stats, error) {
	var stats Stats
	for _, artist := range candidates {
		seen, err := b.Store.Seen(ctx, linkArtistsJaName, artist.GID, "")
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", artist.GID), slog.String("name", artist.Name))

		if !defaultScripts.Contains(artist.Name, japaneseScripts...) {
			log.Debug("name has no japanese script, skipping")
			stats.Skipped++
			if err := b.Store.Mark(ctx, linkArtistsJaName, artist.GID, ""); err != nil {
				return stats, err
			}
			continue
		}

		edited, err := b.processArtist(ctx, artist, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, linkArtistsJaName, artist.GID, ""); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *LinkArtistsJa) processArtist(ctx context.Context, artist ArtistCandidate, log *slog.Logger) (bool, error) {
	hits, err := b.Search.Search(ctx, "ja", artist.Name, 50)
	if err != nil {
		return false, fmt.Errorf("searching for %q: %w", artist.Name, err)
	}

	predicates := match.ArtistPredicates("ja")
	for _, hit := range hits {
		if !titleMatchesName(hit.Title, artist.Name) {
			continue
		}

		content, err := b.Wiki.PageContent(ctx, "ja", hit.Title)
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
			MinEntryLen: 5,
		})
		if res.CatalogSize == 0 {
			continue
		}
		log.Debug("scored",
			slog.Float64("ratio", res.Ratio),
			slog.Int("catalog", res.CatalogSize),
			slog.Int("found", len(res.Found)))
		if len(res.Found) < 2 || res.Ratio < 0.2 {
			continue
		}

		pageURL := wiki.PageURL("ja", hit.Title)
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
