package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tanagerbot/tanager/internal/analysis"
	"github.com/tanagerbot/tanager/internal/mb"
	"github.com/tanagerbot/tanager/internal/wiki"
)

const artistCountryName = "artist-country"

var genderIDs = map[string]string{
	"male":   "1",
	"female": "2",
}

var typeIDs = map[string]string{
	analysis.TypePerson: "1",
	analysis.TypeGroup:  "2",
}

// ArtistCountry infers country, gender, type, and life-span dates for
// artists that already link to a wiki article, and submits one
// consolidated edit per artist.
type ArtistCountry struct {
	Logger *slog.Logger
	Store  Marker
	Editor Editor
	Wiki   PageFetcher
	Lang   string
}

// Run processes the candidates and returns run statistics. Entities are
// marked processed whether or not an edit was made.
func (b *ArtistCountry) Run(ctx context.Context, candidates []ArtistCandidate) (Stats, error) {
	lang, err := wiki.ForCode(b.Lang)
	if err != nil {
		return Stats{}, err
	}
	profile, err := analysis.NewProfile(b.Lang, defaultTables)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, artist := range candidates {
		seen, err := b.Store.Seen(ctx, artistCountryName, artist.GID, b.Lang)
		if err != nil {
			return stats, err
		}
		if seen {
			continue
		}
		stats.Examined++

		log := b.Logger.With(slog.String("gid", artist.GID), slog.String("name", artist.Name))
		edited, err := b.processArtist(ctx, lang, profile, artist, log)
		if err != nil {
			return stats, err
		}
		if edited {
			stats.Edited++
		} else {
			stats.Skipped++
		}
		if err := b.Store.Mark(ctx, artistCountryName, artist.GID, b.Lang); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (b *ArtistCountry) processArtist(ctx context.Context, lang *wiki.Language, profile *analysis.Profile, artist ArtistCandidate, log *slog.Logger) (bool, error) {
	title := wiki.TitleFromURL(artist.WikiURL, b.Lang)
	if title == "" {
		log.Warn("url is not a wiki page", slog.String("url", artist.WikiURL))
		return false, nil
	}

	content, err := b.Wiki.PageContent(ctx, b.Lang, title)
	if err != nil {
		var missing *wiki.ErrPageMissing
		if errors.As(err, &missing) {
			log.Info("wiki page gone", slog.String("title", title))
			return false, nil
		}
		return false, err
	}
	page := lang.Parse(title, content)

	updates := map[string]string{}
	var sections []mb.NoteSection

	country := analysis.DetermineCountry(page, profile)
	if country.Decided {
		updates["country"] = country.Value
		sections = append(sections, mb.NoteSection{Attribute: "country", Reasons: country.Reasons})
	} else if country.Conflict {
		log.Info("conflicting countries",
			slog.Any("values", country.Values), slog.Any("reasons", country.Reasons))
	}

	artistType := analysis.DetermineType(page, profile)
	if artistType.Decided && artist.Type == "" {
		updates["type_id"] = typeIDs[artistType.Value]
		sections = append(sections, mb.NoteSection{Attribute: "type", Reasons: artistType.Reasons})
	} else if artistType.Conflict {
		log.Info("conflicting types",
			slog.Any("values", artistType.Values), slog.Any("reasons", artistType.Reasons))
	}

	// Gender only makes sense for people. Without a type decision the
	// gender rules still run: a female-singer category on a group page is
	// rare enough that the conflict handling below covers it.
	if !strings.EqualFold(artist.Type, analysis.TypeGroup) && artistType.Value != analysis.TypeGroup {
		gender := analysis.DetermineGender(page, profile)
		if gender.Decided {
			updates["gender_id"] = genderIDs[gender.Value]
			sections = append(sections, mb.NoteSection{Attribute: "gender", Reasons: gender.Reasons})
		} else if gender.Conflict {
			log.Info("conflicting genders",
				slog.Any("values", gender.Values), slog.Any("reasons", gender.Reasons))
		}
	}

	// Life-span dates need to know whether begin means "born" or
	// "formed". The candidate row carries the database's recorded type
	// when one exists; the inferred type is the fallback.
	if entity, ok := dateEntity(artist.Type, artistType); ok {
		if begin, reasons := analysis.DetermineBeginDate(page, profile, entity, false); !begin.IsZero() {
			addDateFields(updates, "period.begin_date", begin)
			sections = append(sections, mb.NoteSection{Attribute: "begin date", Reasons: reasons})
		}
		if end, reasons := analysis.DetermineEndDate(page, profile, entity, false); !end.IsZero() {
			addDateFields(updates, "period.end_date", end)
			sections = append(sections, mb.NoteSection{Attribute: "end date", Reasons: reasons})
		}
	}

	if len(updates) == 0 {
		log.Info("not enough evidence, skipping")
		return false, nil
	}

	note := mb.EditNote(wiki.PageURL(b.Lang, title), sections)
	log.Info("submitting artist edit", slog.Int("fields", len(updates)))
	if err := b.Editor.UpdateArtist(ctx, artist.GID, updates, note); err != nil {
		return false, fmt.Errorf("editing artist %s: %w", artist.GID, err)
	}
	return true, nil
}

// dateEntity resolves the person/group dispatch for life-span dates from
// the recorded artist type, falling back to the inferred one.
func dateEntity(recorded string, inferred analysis.Result) (analysis.EntityType, bool) {
	switch strings.ToLower(recorded) {
	case analysis.TypePerson:
		return analysis.EntityPerson, true
	case analysis.TypeGroup:
		return analysis.EntityGroup, true
	}
	if !inferred.Decided {
		return 0, false
	}
	if inferred.Value == analysis.TypeGroup {
		return analysis.EntityGroup, true
	}
	return analysis.EntityPerson, true
}

func addDateFields(updates map[string]string, prefix string, d analysis.Date) {
	updates[prefix+".year"] = strconv.Itoa(d.Year)
	if d.Month != 0 {
		updates[prefix+".month"] = strconv.Itoa(d.Month)
	}
	if d.Day != 0 {
		updates[prefix+".day"] = strconv.Itoa(d.Day)
	}
}
