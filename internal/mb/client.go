// Package mb submits edits to a MusicBrainz server through its web forms.
// The server has no write API for these edit types, so the client drives
// the same forms a browser would, holding the session cookie between
// requests.
package mb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tanagerbot/tanager/internal/version"
)

// URL relationship link types.
const (
	LinkArtistWikipedia       = 179
	LinkReleaseGroupWikipedia = 89
	LinkLabelWikipedia        = 216
	LinkReleaseGroupDiscogs   = 90
)

// ErrNotLoggedIn is returned when an edit is attempted before Login or
// after the session expired.
type ErrNotLoggedIn struct{}

func (ErrNotLoggedIn) Error() string { return "musicbrainz: not logged in" }

// ErrEditRejected is returned when the server answered the edit form with
// something other than success.
type ErrEditRejected struct {
	Status int
	Detail string
}

func (e *ErrEditRejected) Error() string {
	return fmt.Sprintf("musicbrainz: edit rejected (HTTP %d): %s", e.Status, e.Detail)
}

// Client drives the MusicBrainz edit forms. Edits must be submitted one
// at a time; the server keeps per-session form state.
type Client struct {
	http     *http.Client
	logger   *slog.Logger
	server   string
	username string
	password string
	loggedIn bool
}

// New creates a client for the given server. Call Login before editing.
func New(server, username, password string, logger *slog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &Client{
		http: &http.Client{
			Timeout: 60 * time.Second,
			Jar:     jar,
		},
		logger:   logger.With(slog.String("component", "mb")),
		server:   strings.TrimRight(server, "/"),
		username: username,
		password: password,
	}, nil
}

// Login establishes an editing session.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{
		"username": {c.username},
		"password": {c.password},
	}
	resp, err := c.postForm(ctx, "/login", form)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusSeeOther {
		return &ErrEditRejected{Status: resp.StatusCode, Detail: "login failed"}
	}
	c.loggedIn = true
	c.logger.Info("logged in", slog.String("server", c.server), slog.String("username", c.username))
	return nil
}

// UpdateArtist submits an artist edit. updates maps form field names
// without the "edit-artist." prefix (e.g. "area.name", "gender_id",
// "period.begin_date.year") to their new values.
func (c *Client) UpdateArtist(ctx context.Context, gid string, updates map[string]string, note string) error {
	if !c.loggedIn {
		return ErrNotLoggedIn{}
	}

	form := url.Values{}
	for field, value := range updates {
		form.Set("edit-artist."+field, value)
	}
	form.Set("edit-artist.edit_note", note)

	resp, err := c.postForm(ctx, "/artist/"+gid+"/edit", form)
	if err != nil {
		return fmt.Errorf("updating artist %s: %w", gid, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusSeeOther {
		return &ErrEditRejected{Status: resp.StatusCode, Detail: "artist edit"}
	}
	c.logger.Info("submitted artist edit", slog.String("gid", gid), slog.Int("fields", len(updates)))
	return nil
}

// AddURL creates a URL relationship of the given link type between the
// entity and the target URL. auto marks the edit as an auto-edit where
// the account has that privilege.
func (c *Client) AddURL(ctx context.Context, entityType, gid string, linkType int, target, note string, auto bool) error {
	if !c.loggedIn {
		return ErrNotLoggedIn{}
	}

	form := url.Values{
		"ar.link_type_id": {strconv.Itoa(linkType)},
		"ar.url":          {target},
		"ar.edit_note":    {note},
	}
	if auto {
		form.Set("ar.as_auto_editor", "1")
	}

	path := fmt.Sprintf("/edit/relationship/create-url?entity=%s&type=%s", gid, entityType)
	resp, err := c.postForm(ctx, path, form)
	if err != nil {
		return fmt.Errorf("adding url to %s %s: %w", entityType, gid, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusSeeOther {
		return &ErrEditRejected{Status: resp.StatusCode, Detail: "url relationship"}
	}
	c.logger.Info("submitted url relationship",
		slog.String("entity_type", entityType),
		slog.String("gid", gid),
		slog.Int("link_type", linkType),
		slog.String("url", target))
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("posting form", slog.String("path", path))
	return c.http.Do(req)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
