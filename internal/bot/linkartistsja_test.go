package bot

import (
	"context"
	"testing"

	"github.com/tanagerbot/tanager/internal/search"
)

func newLinkArtistsJa(st *fakeStore, ed *fakeEditor, w *fakeWiki, s *fakeSearch) *LinkArtistsJa {
	return &LinkArtistsJa{
		Logger: testLogger(),
		Store:  st,
		Editor: ed,
		Wiki:   w,
		Search: s,
	}
}

func TestLinkArtistsJaScriptGate(t *testing.T) {
	st := newFakeStore()
	ed := &fakeEditor{}
	s := &fakeSearch{hits: map[string][]search.Hit{}}

	b := newLinkArtistsJa(st, ed, &fakeWiki{}, s)
	stats, err := b.Run(context.Background(), []ArtistCandidate{{
		GID:  madonnaGID,
		Name: "Madonna",
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Skipped != 1 || stats.Edited != 0 {
		t.Fatalf("stats = %+v, want one skip", stats)
	}
	seen, _ := st.Seen(context.Background(), "link-artists-ja", madonnaGID, "")
	if !seen {
		t.Error("latin-only name must still be marked processed")
	}
}

func TestLinkArtistsJaLinks(t *testing.T) {
	page := `'''ピチカート・ファイヴ'''は日本のバンド。アルバムに『Bossa Nova 2001』、` +
		`『Overdose』、『Happy End of the World』がある。`

	st := newFakeStore()
	ed := &fakeEditor{}
	w := &fakeWiki{pages: map[string]string{"ja/ピチカート・ファイヴ": page}}
	s := &fakeSearch{hits: map[string][]search.Hit{
		"ピチカート・ファイヴ": {{Title: "ピチカート・ファイヴ", Score: 7}},
	}}

	b := newLinkArtistsJa(st, ed, w, s)
	stats, err := b.Run(context.Background(), []ArtistCandidate{{
		GID:    madonnaGID,
		Name:   "ピチカート・ファイヴ",
		Albums: []string{"Bossa Nova 2001", "Overdose", "Happy End of the World"},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 1 {
		t.Fatalf("edited = %d, want 1", stats.Edited)
	}
	edit := ed.urls[0]
	if edit.entityType != "artist" || edit.linkType != 179 {
		t.Errorf("edit = %+v", edit)
	}
}

func TestLinkArtistsJaNeedsTwoAlbums(t *testing.T) {
	page := `'''ピチカート・ファイヴ'''は日本のバンド。アルバムに『Overdose』がある。`

	st := newFakeStore()
	ed := &fakeEditor{}
	w := &fakeWiki{pages: map[string]string{"ja/ピチカート・ファイヴ": page}}
	s := &fakeSearch{hits: map[string][]search.Hit{
		"ピチカート・ファイヴ": {{Title: "ピチカート・ファイヴ", Score: 7}},
	}}

	b := newLinkArtistsJa(st, ed, w, s)
	stats, err := b.Run(context.Background(), []ArtistCandidate{{
		GID:    madonnaGID,
		Name:   "ピチカート・ファイヴ",
		Albums: []string{"Bossa Nova 2001", "Overdose", "Happy End of the World"},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 0 {
		t.Fatal("one found album is not enough")
	}
}
