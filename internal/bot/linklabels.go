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

const linkLabelsName = "link-labels"

// LinkLabels finds wiki articles about record labels, matching against
// the artists who released on the label. English wiki only; it is the
// only one with a reliable record-label category convention.
type LinkLabels struct {
	Logger *slog.Logger
	Store  Marker
	Editor Editor
	Wiki   PageFetcher
	Search Searcher
}

// Run processes the candidates.
func (b *LinkLabels) Run(ctx context.Context, candidates []LabelCandidate) (Stats, error) {
	var stats Stats
	for _, label := range candidates {
		seen, err := b.Store.Seen(ctx, linkLabelsName, label.GID, "")
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", label.GID), slog.String("name", label.Name))
		edited, err := b.processLabel(ctx, label, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, linkLabelsName, label.GID, ""); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *LinkLabels) processLabel(ctx context.Context, label LabelCandidate, log *slog.Logger) (bool, error) {
	hits, err := b.Search.Search(ctx, "en", strings.ToLower(label.Name), 50)
	if err != nil {
		return false, fmt.Errorf("searching for %q: %w", label.Name, err)
	}

	predicates := match.LabelPredicates()
	for _, hit := range hits {
		if !titleMatchesName(hit.Title, label.Name) {
			continue
		}

		content, err := b.Wiki.PageContent(ctx, "en", hit.Title)
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

		res := match.Score(label.Name, label.Artists, candidate.Mangled, match.ScoreOptions{
			MinEntryLen: 6,
		})
		if res.CatalogSize == 0 {
			continue
		}
		log.Debug("scored",
			slog.Float64("ratio", res.Ratio),
			slog.Int("catalog", res.CatalogSize),
			slog.Int("found", len(res.Found)))
		if len(res.Found) < 2 {
			continue
		}

		pageURL := wiki.PageURL("en", hit.Title)
		note := fmt.Sprintf("Matched based on the name. The page mentions %s.",
			textnorm.JoinNames("artist", res.Found))
		log.Info("linking", slog.String("url", pageURL))
		if err := b.Editor.AddURL(ctx, "label", label.GID, mb.LinkLabelWikipedia, pageURL, note, false); err != nil {
			return false, fmt.Errorf("linking label %s: %w", label.GID, err)
		}
		return true, nil
	}
	return false, nil
}
