package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/tanagerbot/tanager/internal/version"
)

// ErrPageMissing indicates the wiki has no page under the requested title.
type ErrPageMissing struct {
	Lang  string
	Title string
}

func (e *ErrPageMissing) Error() string {
	return fmt.Sprintf("wiki: no page %q on %s.wikipedia.org", e.Title, e.Lang)
}

// Client fetches raw page content through the MediaWiki API. Fetches are
// rate limited and cached twice: an in-process layer that lives for one
// bot run, and an on-disk layer shared across runs. Disk entries are never
// invalidated; staleness is an accepted risk for batch enrichment.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	memory   *gocache.Cache
	cacheDir string
	logger   *slog.Logger

	// apiURL builds the API endpoint for a language edition. Overridable
	// for tests.
	apiURL func(lang string) string
}

// NewClient creates a wiki fetch client. cacheDir may be empty to disable
// the on-disk cache. requestsPerSecond bounds API traffic per the wikis'
// bot policy (the original bots waited one second between fetches).
func NewClient(cacheDir string, requestsPerSecond float64, logger *slog.Logger) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	return &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		memory:   gocache.New(gocache.NoExpiration, 0),
		cacheDir: cacheDir,
		logger:   logger.With(slog.String("component", "wiki")),
		apiURL: func(lang string) string {
			return fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
		},
	}
}

// NewClientWithAPI creates a client that hits a fixed API endpoint
// regardless of language (for tests).
func NewClientWithAPI(api string, cacheDir string, logger *slog.Logger) *Client {
	c := NewClient(cacheDir, 1000, logger)
	c.apiURL = func(string) string { return api }
	return c
}

// PageContent returns the raw wikitext of a page, consulting the memory
// and disk caches before the network. A missing page is reported as
// *ErrPageMissing; transient HTTP failures propagate to the caller.
func (c *Client) PageContent(ctx context.Context, lang, title string) (string, error) {
	key := lang + "\x00" + title
	if cached, ok := c.memory.Get(key); ok {
		return cached.(string), nil
	}
	if content, ok := c.readDiskCache(lang, title); ok {
		c.memory.Set(key, content, gocache.NoExpiration)
		return content, nil
	}

	content, err := c.fetch(ctx, lang, title)
	if err != nil {
		return "", err
	}
	c.memory.Set(key, content, gocache.NoExpiration)
	c.writeDiskCache(lang, title, content)
	return content, nil
}

func (c *Client) fetch(ctx context.Context, lang, title string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	params := url.Values{
		"action": {"query"},
		"prop":   {"revisions"},
		"titles": {title},
		"rvprop": {"content"},
		"format": {"json"},
	}
	reqURL := c.apiURL(lang) + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("fetching page", "lang", lang, "title", title)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %q: %w", title, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %q: unexpected status %d", title, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response for %q: %w", title, err)
	}

	var parsed struct {
		Query struct {
			Pages map[string]struct {
				Title     string `json:"title"`
				Revisions []map[string]any
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing response for %q: %w", title, err)
	}

	for _, page := range parsed.Query.Pages {
		for _, rev := range page.Revisions {
			// The API keys revision content as "*" in the legacy format
			// and "content" in the newer one.
			for _, field := range []string{"*", "content"} {
				if v, ok := rev[field].(string); ok {
					return v, nil
				}
			}
		}
	}
	return "", &ErrPageMissing{Lang: lang, Title: title}
}

// cacheKey mirrors the on-disk layout the original bots used: one file per
// page, sharded by the first byte of the sanitized title.
func cacheKey(title string) string {
	return strings.ReplaceAll(title, "/", "_")
}

func (c *Client) readDiskCache(lang, title string) (string, bool) {
	if c.cacheDir == "" {
		return "", false
	}
	key := cacheKey(title)
	if key == "" {
		return "", false
	}
	path := filepath.Join(c.cacheDir, lang, key[:1], key)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (c *Client) writeDiskCache(lang, title, content string) {
	if c.cacheDir == "" {
		return
	}
	key := cacheKey(title)
	if key == "" {
		return
	}
	dir := filepath.Join(c.cacheDir, lang, key[:1])
	if err := os.MkdirAll(dir, 0o750); err != nil {
		c.logger.Warn("creating cache directory", "dir", dir, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, key), []byte(content), 0o640); err != nil {
		c.logger.Warn("writing cache entry", "title", title, "error", err)
	}
}

// PageURL builds the canonical article URL for a title.
func PageURL(lang, title string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s",
		lang, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
}

// TitleFromURL extracts the page title from an article URL for the given
// language, or "" if the URL does not belong to that wiki. Both the http
// and https schemes are accepted since the database holds legacy links.
func TitleFromURL(pageURL, lang string) string {
	for _, scheme := range []string{"https", "http"} {
		prefix := fmt.Sprintf("%s://%s.wikipedia.org/wiki/", scheme, lang)
		if strings.HasPrefix(pageURL, prefix) {
			unescaped, err := url.PathUnescape(pageURL[len(prefix):])
			if err != nil {
				return ""
			}
			return strings.ReplaceAll(unescaped, "_", " ")
		}
	}
	return ""
}
