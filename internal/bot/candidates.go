package bot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Candidate rows are exported from the MusicBrainz database by the
// operator's SQL scripts and fed to the bots as JSON lines, one entity
// per line.

// ArtistCandidate is an artist to consider, with its release catalog.
// Type is the artist type already recorded in the database ("Person" or
// "Group"), empty when unset.
type ArtistCandidate struct {
	GID     string   `json:"gid"`
	Name    string   `json:"name"`
	Type    string   `json:"type,omitempty"`
	Country string   `json:"country,omitempty"`
	WikiURL string   `json:"wiki_url,omitempty"`
	Albums  []string `json:"albums,omitempty"`
}

// ReleaseGroupCandidate is a release group with its track catalog.
type ReleaseGroupCandidate struct {
	GID    string   `json:"gid"`
	Name   string   `json:"name"`
	Type   string   `json:"type,omitempty"`
	Artist string   `json:"artist"`
	Tracks []string `json:"tracks,omitempty"`
}

// LabelCandidate is a label with the artists who released on it.
type LabelCandidate struct {
	GID     string   `json:"gid"`
	Name    string   `json:"name"`
	Artists []string `json:"artists,omitempty"`
}

// MasterCandidate is a release group whose releases carry Discogs links.
type MasterCandidate struct {
	GID         string   `json:"gid"`
	Name        string   `json:"name"`
	ReleaseURLs []string `json:"release_urls,omitempty"`
}

// LoadCandidates reads a JSONL file of candidate rows. Blank lines and
// lines starting with '#' are skipped.
func LoadCandidates[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening candidates file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	var out []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var row T
		if err := json.Unmarshal([]byte(text), &row); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		out = append(out, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading candidates file: %w", err)
	}
	return out, nil
}
