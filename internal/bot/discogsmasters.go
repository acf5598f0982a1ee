package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/tanagerbot/tanager/internal/discogs"
	"github.com/tanagerbot/tanager/internal/mb"
)

const discogsMastersName = "discogs-masters"

// minMasterSimilarity is how close the Discogs master title must be to
// the release group name.
const minMasterSimilarity = 0.8

// DiscogsMasters links release groups to the Discogs master that all of
// their releases' Discogs links resolve to.
type DiscogsMasters struct {
	Logger  *slog.Logger
	Store   Marker
	Editor  Editor
	Discogs MasterResolver
}

// Run processes the candidates.
func (b *DiscogsMasters) Run(ctx context.Context, candidates []MasterCandidate) (Stats, error) {
	var stats Stats
	for _, rg := range candidates {
		seen, err := b.Store.Seen(ctx, discogsMastersName, rg.GID, "")
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", rg.GID), slog.String("name", rg.Name))
		edited, err := b.processReleaseGroup(ctx, rg, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, discogsMastersName, rg.GID, ""); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *DiscogsMasters) processReleaseGroup(ctx context.Context, rg MasterCandidate, log *slog.Logger) (bool, error) {
	urls := distinct(rg.ReleaseURLs)
	if len(urls) < 2 {
		log.Debug("fewer than two discogs links, skipping")
		return false, nil
	}

	masters := map[int]*discogs.Master{}
	for _, u := range urls {
		id, ok := discogs.ReleaseIDFromURL(u)
		if !ok {
			continue
		}
		master, err := b.Discogs.ReleaseMaster(ctx, id)
		if err != nil {
			var noMaster *discogs.ErrNoMaster
			if errors.As(err, &noMaster) {
				continue
			}
			return false, fmt.Errorf("resolving release %d: %w", id, err)
		}
		masters[master.ID] = master
	}

	switch len(masters) {
	case 0:
		log.Info("no discogs master")
		return false, nil
	case 1:
	default:
		log.Info("releases point at different masters", slog.Int("masters", len(masters)))
		return false, nil
	}

	var master *discogs.Master
	for _, m := range masters {
		master = m
	}

	sim := similarity(strings.ToLower(master.Title), strings.ToLower(rg.Name))
	if sim < minMasterSimilarity {
		log.Info("master title too dissimilar",
			slog.String("master", master.Title), slog.Float64("similarity", sim))
		return false, nil
	}

	note := fmt.Sprintf("There are %d distinct Discogs links in this release group, and all point to this master URL.\n", len(urls)) +
		fmt.Sprintf("The name of the Discogs master is %q (similarity: %.0f%%) by %s.",
			master.Title, sim*100, discogs.JoinArtists(master.Artists))
	log.Info("linking", slog.String("url", master.URL()))
	if err := b.Editor.AddURL(ctx, "release_group", rg.GID, mb.LinkReleaseGroupDiscogs, master.URL(), note, false); err != nil {
		return false, fmt.Errorf("linking release group %s: %w", rg.GID, err)
	}
	return true, nil
}

// similarity is 1 minus the normalized edit distance.
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(max)
}

func distinct(values []string) []string {
	set := map[string]struct{}{}
	for _, v := range values {
		set[v] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
