// Package search queries the Solr index of wiki article titles. One core
// exists per language: the base core for English, base_<lang> otherwise.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tanagerbot/tanager/internal/version"
)

// Hit is one search result.
type Hit struct {
	Title string
	Score float64
}

// Client queries a Solr endpoint.
type Client struct {
	http    *http.Client
	logger  *slog.Logger
	baseURL string
}

// New creates a search client for the base core URL, e.g.
// http://localhost:8983/solr/wikipedia.
func New(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With(slog.String("component", "search")),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Search runs a dismax query against the name field of the language's
// core and returns hits ordered by descending score.
func (c *Client) Search(ctx context.Context, lang, query string, rows int) ([]Hit, error) {
	core := c.baseURL
	if lang != "" && lang != "en" {
		core += "_" + lang
	}

	params := url.Values{
		"q":       {EscapeQuery(query)},
		"defType": {"dismax"},
		"qf":      {"name"},
		"fl":      {"name,score"},
		"rows":    {strconv.Itoa(rows)},
		"wt":      {"json"},
	}
	reqURL := core + "/select?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", version.UserAgent())

	c.logger.Debug("searching", slog.String("lang", lang), slog.String("query", query))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying search index: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("search index returned HTTP %d", resp.StatusCode)
	}

	var parsed struct {
		Response struct {
			Docs []struct {
				Name  string  `json:"name"`
				Score float64 `json:"score"`
			} `json:"docs"`
		} `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	hits := make([]Hit, 0, len(parsed.Response.Docs))
	for _, d := range parsed.Response.Docs {
		hits = append(hits, Hit{Title: d.Name, Score: d.Score})
	}
	return hits, nil
}

var (
	orRe  = regexp.MustCompile(`\bOR\b`)
	andRe = regexp.MustCompile(`\bAND\b`)
	notRe = regexp.MustCompile(`\bNOT\b`)
)

// EscapeQuery neutralizes query syntax in an entity name: the boolean
// operators are lowercased and '+' is escaped.
func EscapeQuery(s string) string {
	s = orRe.ReplaceAllString(s, "or")
	s = andRe.ReplaceAllString(s, "and")
	s = notRe.ReplaceAllString(s, "not")
	return strings.ReplaceAll(s, "+", `\+`)
}
