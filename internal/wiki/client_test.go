package wiki

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newWikiServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		title := r.URL.Query().Get("titles")
		w.Header().Set("Content-Type", "application/json")
		if title == "Missing Page" {
			fmt.Fprint(w, `{"query":{"pages":{"-1":{"title":"Missing Page","missing":""}}}}`)
			return
		}
		fmt.Fprintf(w, `{"query":{"pages":{"42":{"title":%q,"revisions":[{"*":"content of %s"}]}}}}`, title, title)
	}))
}

func TestPageContent(t *testing.T) {
	var hits atomic.Int64
	srv := newWikiServer(t, &hits)
	defer srv.Close()

	c := NewClientWithAPI(srv.URL, t.TempDir(), testLogger())
	got, err := c.PageContent(context.Background(), "en", "Madonna")
	if err != nil {
		t.Fatalf("PageContent: %v", err)
	}
	if got != "content of Madonna" {
		t.Errorf("content = %q", got)
	}
}

func TestPageContentMissing(t *testing.T) {
	var hits atomic.Int64
	srv := newWikiServer(t, &hits)
	defer srv.Close()

	c := NewClientWithAPI(srv.URL, "", testLogger())
	_, err := c.PageContent(context.Background(), "en", "Missing Page")
	var missing *ErrPageMissing
	if !errors.As(err, &missing) {
		t.Fatalf("expected ErrPageMissing, got %v", err)
	}
	if missing.Title != "Missing Page" {
		t.Errorf("Title = %q", missing.Title)
	}
}

func TestPageContentDiskCache(t *testing.T) {
	var hits atomic.Int64
	srv := newWikiServer(t, &hits)
	defer srv.Close()

	dir := t.TempDir()
	c := NewClientWithAPI(srv.URL, dir, testLogger())
	if _, err := c.PageContent(context.Background(), "en", "Madonna"); err != nil {
		t.Fatalf("first fetch: %v", err)
	}

	// A fresh client must hit the disk cache, not the network.
	c2 := NewClientWithAPI(srv.URL, dir, testLogger())
	got, err := c2.PageContent(context.Background(), "en", "Madonna")
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got != "content of Madonna" {
		t.Errorf("cached content = %q", got)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 network hit, got %d", hits.Load())
	}
}

func TestPageURL(t *testing.T) {
	got := PageURL("en", "True Blue (album)")
	want := "https://en.wikipedia.org/wiki/True_Blue_%28album%29"
	if got != want {
		t.Errorf("PageURL = %q, want %q", got, want)
	}
}
