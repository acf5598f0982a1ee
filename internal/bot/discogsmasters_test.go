package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/tanagerbot/tanager/internal/discogs"
)

type fakeDiscogs struct {
	masters map[int]*discogs.Master // releaseID -> master
}

func (d *fakeDiscogs) ReleaseMaster(_ context.Context, releaseID int) (*discogs.Master, error) {
	m, ok := d.masters[releaseID]
	if !ok {
		return nil, &discogs.ErrNoMaster{ReleaseID: releaseID}
	}
	return m, nil
}

func newDiscogsMasters(st *fakeStore, ed *fakeEditor, d *fakeDiscogs) *DiscogsMasters {
	return &DiscogsMasters{
		Logger:  testLogger(),
		Store:   st,
		Editor:  ed,
		Discogs: d,
	}
}

func TestDiscogsMastersLinksAgreeingReleases(t *testing.T) {
	master := &discogs.Master{ID: 4470, Title: "True Blue", Artists: []string{"Madonna"}}
	st := newFakeStore()
	ed := &fakeEditor{}
	d := &fakeDiscogs{masters: map[int]*discogs.Master{
		249504: master,
		249505: master,
	}}

	b := newDiscogsMasters(st, ed, d)
	stats, err := b.Run(context.Background(), []MasterCandidate{{
		GID:  madonnaGID,
		Name: "True Blue",
		ReleaseURLs: []string{
			"http://www.discogs.com/release/249504",
			"http://www.discogs.com/release/249505",
		},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 1 {
		t.Fatalf("edited = %d, want 1", stats.Edited)
	}

	edit := ed.urls[0]
	if edit.entityType != "release_group" || edit.linkType != 90 {
		t.Errorf("edit = %+v", edit)
	}
	if edit.url != "https://www.discogs.com/master/4470" {
		t.Errorf("url = %q", edit.url)
	}
	if !strings.Contains(edit.note, "2 distinct Discogs links") {
		t.Errorf("note = %q", edit.note)
	}
	if !strings.Contains(edit.note, "by Madonna") {
		t.Errorf("note must credit the master artists, got %q", edit.note)
	}
}

func TestDiscogsMastersNeedsTwoLinks(t *testing.T) {
	st := newFakeStore()
	ed := &fakeEditor{}
	d := &fakeDiscogs{masters: map[int]*discogs.Master{
		249504: {ID: 4470, Title: "True Blue"},
	}}

	b := newDiscogsMasters(st, ed, d)
	stats, err := b.Run(context.Background(), []MasterCandidate{{
		GID:         madonnaGID,
		Name:        "True Blue",
		ReleaseURLs: []string{"http://www.discogs.com/release/249504"},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 0 {
		t.Fatal("one link is not enough corroboration")
	}
	seen, _ := st.Seen(context.Background(), "discogs-masters", madonnaGID, "")
	if !seen {
		t.Error("entity must still be marked processed")
	}
}

func TestDiscogsMastersDisagreeingMasters(t *testing.T) {
	st := newFakeStore()
	ed := &fakeEditor{}
	d := &fakeDiscogs{masters: map[int]*discogs.Master{
		1: {ID: 10, Title: "True Blue"},
		2: {ID: 20, Title: "True Blue"},
	}}

	b := newDiscogsMasters(st, ed, d)
	stats, err := b.Run(context.Background(), []MasterCandidate{{
		GID:  madonnaGID,
		Name: "True Blue",
		ReleaseURLs: []string{
			"http://www.discogs.com/release/1",
			"http://www.discogs.com/release/2",
		},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 0 {
		t.Fatal("releases pointing at different masters must not link")
	}
}

func TestDiscogsMastersTitleTooDifferent(t *testing.T) {
	master := &discogs.Master{ID: 10, Title: "Completely Different Name"}
	st := newFakeStore()
	ed := &fakeEditor{}
	d := &fakeDiscogs{masters: map[int]*discogs.Master{1: master, 2: master}}

	b := newDiscogsMasters(st, ed, d)
	stats, err := b.Run(context.Background(), []MasterCandidate{{
		GID:  madonnaGID,
		Name: "True Blue",
		ReleaseURLs: []string{
			"http://www.discogs.com/release/1",
			"http://www.discogs.com/release/2",
		},
	}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Edited != 0 {
		t.Fatal("dissimilar master title must not link")
	}
}
