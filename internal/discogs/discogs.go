// Package discogs is a minimal client for the Discogs API, covering only
// the release-to-master lookup the release group linker needs.
package discogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tanagerbot/tanager/internal/version"
)

// Master is a Discogs master release.
type Master struct {
	ID      int
	Title   string
	Artists []string
}

// URL returns the canonical page URL for the master.
func (m Master) URL() string {
	return fmt.Sprintf("https://www.discogs.com/master/%d", m.ID)
}

// ErrNoMaster is returned when a release has no master.
type ErrNoMaster struct {
	ReleaseID int
}

func (e *ErrNoMaster) Error() string {
	return fmt.Sprintf("discogs: release %d has no master", e.ReleaseID)
}

// Client calls the Discogs API.
type Client struct {
	http    *http.Client
	logger  *slog.Logger
	baseURL string
	token   string
}

// New creates a Discogs client. token may be empty for anonymous access
// at a lower rate limit.
func New(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With(slog.String("component", "discogs")),
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// ReleaseMaster resolves a release to its master.
func (c *Client) ReleaseMaster(ctx context.Context, releaseID int) (*Master, error) {
	body, err := c.get(ctx, "/releases/"+strconv.Itoa(releaseID))
	if err != nil {
		return nil, err
	}

	var release struct {
		MasterID int `json:"master_id"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release %d: %w", releaseID, err)
	}
	if release.MasterID == 0 {
		return nil, &ErrNoMaster{ReleaseID: releaseID}
	}
	return c.Master(ctx, release.MasterID)
}

// Master fetches a master by ID.
func (c *Client) Master(ctx context.Context, id int) (*Master, error) {
	body, err := c.get(ctx, "/masters/"+strconv.Itoa(id))
	if err != nil {
		return nil, err
	}

	var master struct {
		ID      int    `json:"id"`
		Title   string `json:"title"`
		Artists []struct {
			Name string `json:"name"`
		} `json:"artists"`
	}
	if err := json.Unmarshal(body, &master); err != nil {
		return nil, fmt.Errorf("parsing master %d: %w", id, err)
	}

	m := &Master{ID: master.ID, Title: master.Title}
	for _, a := range master.Artists {
		m.Artists = append(m.Artists, a.Name)
	}
	return m, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Discogs token="+c.token)
	}

	c.logger.Debug("requesting", slog.String("path", path))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("discogs returned HTTP %d for %s", resp.StatusCode, path)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}

var releaseURLRe = regexp.MustCompile(`^https?://(?:www\.)?discogs\.com/release/(\d+)`)

// ReleaseIDFromURL extracts the release ID from a Discogs release URL.
func ReleaseIDFromURL(u string) (int, bool) {
	m := releaseURLRe.FindStringSubmatch(u)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// JoinArtists renders an artist list the way Discogs credits read:
// "a", "a and b", "a, b and c".
func JoinArtists(artists []string) string {
	switch len(artists) {
	case 0:
		return ""
	case 1:
		return artists[0]
	default:
		return strings.Join(artists[:len(artists)-1], ", ") + " and " + artists[len(artists)-1]
	}
}
