package mb

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordedRequest struct {
	path string
	form url.Values
}

func newTestServer(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		reqs = append(reqs, recordedRequest{r.URL.Path, r.PostForm})
		if r.URL.Path == "/login" {
			http.SetCookie(w, &http.Cookie{Name: "musicbrainz_server_session", Value: "abc"})
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestLoginAndUpdateArtist(t *testing.T) {
	srv, reqs := newTestServer(t)
	c, err := New(srv.URL, "bot", "hunter2", discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	if err := c.Login(ctx); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := c.UpdateArtist(ctx, "some-gid", map[string]string{
		"area.name": "France",
		"gender_id": "2",
	}, "From https://example.org."); err != nil {
		t.Fatalf("UpdateArtist: %v", err)
	}

	if len(*reqs) != 2 {
		t.Fatalf("requests = %d, want 2", len(*reqs))
	}
	login := (*reqs)[0]
	if login.path != "/login" || login.form.Get("username") != "bot" {
		t.Errorf("unexpected login request: %+v", login)
	}
	edit := (*reqs)[1]
	if edit.path != "/artist/some-gid/edit" {
		t.Errorf("edit path = %q", edit.path)
	}
	if edit.form.Get("edit-artist.area.name") != "France" {
		t.Errorf("area field = %q", edit.form.Get("edit-artist.area.name"))
	}
	if edit.form.Get("edit-artist.gender_id") != "2" {
		t.Errorf("gender field = %q", edit.form.Get("edit-artist.gender_id"))
	}
	if edit.form.Get("edit-artist.edit_note") != "From https://example.org." {
		t.Errorf("note = %q", edit.form.Get("edit-artist.edit_note"))
	}
}

func TestEditRequiresLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	c, err := New(srv.URL, "bot", "pw", discardLogger())
	if err != nil {
		t.Fatal(err)
	}

	err = c.UpdateArtist(context.Background(), "gid", nil, "note")
	var notLoggedIn ErrNotLoggedIn
	if !errors.As(err, &notLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
	err = c.AddURL(context.Background(), "artist", "gid", LinkArtistWikipedia, "https://x", "note", false)
	if !errors.As(err, &notLoggedIn) {
		t.Fatalf("err = %v, want ErrNotLoggedIn", err)
	}
}

func TestAddURL(t *testing.T) {
	srv, reqs := newTestServer(t)
	c, err := New(srv.URL, "bot", "pw", discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := c.Login(ctx); err != nil {
		t.Fatal(err)
	}
	if err := c.AddURL(ctx, "release_group", "rg-gid", LinkReleaseGroupWikipedia,
		"https://en.wikipedia.org/wiki/True_Blue_(album)", "note text", true); err != nil {
		t.Fatalf("AddURL: %v", err)
	}

	req := (*reqs)[len(*reqs)-1]
	if !strings.HasPrefix(req.path, "/edit/relationship/create-url") {
		t.Errorf("path = %q", req.path)
	}
	if req.form.Get("ar.link_type_id") != "89" {
		t.Errorf("link type = %q", req.form.Get("ar.link_type_id"))
	}
	if req.form.Get("ar.url") != "https://en.wikipedia.org/wiki/True_Blue_(album)" {
		t.Errorf("url = %q", req.form.Get("ar.url"))
	}
	if req.form.Get("ar.as_auto_editor") != "1" {
		t.Error("expected auto edit flag")
	}
}

func TestEditRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "bot", "pw", discardLogger())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := c.Login(ctx); err != nil {
		t.Fatal(err)
	}

	err = c.UpdateArtist(ctx, "gid", map[string]string{"area.name": "X"}, "note")
	var rejected *ErrEditRejected
	if !errors.As(err, &rejected) {
		t.Fatalf("err = %v, want ErrEditRejected", err)
	}
	if rejected.Status != http.StatusBadRequest {
		t.Errorf("status = %d", rejected.Status)
	}
}

func TestEditNote(t *testing.T) {
	note := EditNote("https://en.wikipedia.org/wiki/Madonna", []NoteSection{
		{Attribute: "gender", Reasons: []string{"Belongs to the category American female singers."}},
		{Attribute: "country", Reasons: []string{
			"The first paragraph links to United States.",
			"Belongs to the category American pop singers.",
		}},
	})
	want := "From https://en.wikipedia.org/wiki/Madonna.\n\n" +
		"COUNTRY:\n" +
		"The first paragraph links to United States.\n" +
		"Belongs to the category American pop singers.\n\n" +
		"GENDER:\n" +
		"Belongs to the category American female singers."
	if note != want {
		t.Errorf("note:\n%q\nwant:\n%q", note, want)
	}
}

func TestEditNoteSkipsEmptySections(t *testing.T) {
	note := EditNote("https://example.org", []NoteSection{
		{Attribute: "type"},
	})
	if note != "From https://example.org." {
		t.Errorf("note = %q", note)
	}
}
