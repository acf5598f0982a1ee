package bot

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCandidates(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.jsonl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCandidates(t *testing.T) {
	path := writeCandidates(t, `
# exported 2013-04-02
{"gid":"79239441-bfd5-4981-a70c-55c3f15c1287","name":"Madonna","albums":["True Blue"]}

{"gid":"d87e52c5-bb8d-4da8-b941-9f4928627dc8","name":"ABBA","country":"SE"}
`)
	rows, err := LoadCandidates[ArtistCandidate](path)
	if err != nil {
		t.Fatalf("LoadCandidates: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Name != "Madonna" || len(rows[0].Albums) != 1 {
		t.Errorf("first row = %+v", rows[0])
	}
	if rows[1].Country != "SE" {
		t.Errorf("second row = %+v", rows[1])
	}
}

func TestLoadCandidatesBadLine(t *testing.T) {
	path := writeCandidates(t, `{"gid":"x"}
not json
`)
	_, err := LoadCandidates[ArtistCandidate](path)
	if err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestLoadCandidatesMissingFile(t *testing.T) {
	if _, err := LoadCandidates[ArtistCandidate](filepath.Join(t.TempDir(), "nope.jsonl")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
