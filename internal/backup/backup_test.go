package backup

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tanagerbot/tanager/internal/database"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	_, err = db.ExecContext(context.Background(),
		`INSERT INTO processed (bot, gid) VALUES ('link-artists', '79239441-bfd5-4981-a70c-55c3f15c1287')`)
	if err != nil {
		t.Fatalf("inserting row: %v", err)
	}
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeFakeBackup drops a file with a backup filename for the given time.
func writeFakeBackup(t *testing.T, dir string, ts time.Time) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	name := "tanager-" + ts.UTC().Format("20060102-150405") + ".db"
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestBackup(t *testing.T) {
	db := setupTestDB(t)
	backupDir := filepath.Join(t.TempDir(), "backups")
	svc := NewService(db, backupDir, 7, testLogger())

	info, err := svc.Backup(context.Background())
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}

	if info.Filename == "" {
		t.Error("expected non-empty filename")
	}
	if info.Size == 0 {
		t.Error("expected non-zero file size")
	}

	// The backup must be a usable database with the processed rows intact.
	backupDB, err := database.Open(filepath.Join(backupDir, info.Filename))
	if err != nil {
		t.Fatalf("opening backup: %v", err)
	}
	defer backupDB.Close()

	var count int
	err = backupDB.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM processed").Scan(&count)
	if err != nil {
		t.Fatalf("querying backup: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 processed row in backup, got %d", count)
	}
}

func TestListBackups(t *testing.T) {
	db := setupTestDB(t)
	backupDir := filepath.Join(t.TempDir(), "backups")
	svc := NewService(db, backupDir, 7, testLogger())

	now := time.Now().UTC()
	writeFakeBackup(t, backupDir, now.Add(-2*time.Hour))
	newest := writeFakeBackup(t, backupDir, now)
	writeFakeBackup(t, backupDir, now.Add(-time.Hour))

	// Non-backup files are ignored.
	if err := os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	backups, err := svc.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	if backups[0].Filename != newest {
		t.Errorf("expected newest backup first, got %s", backups[0].Filename)
	}
}

func TestPrune(t *testing.T) {
	db := setupTestDB(t)
	backupDir := filepath.Join(t.TempDir(), "backups")
	svc := NewService(db, backupDir, 2, testLogger())

	now := time.Now().UTC()
	var names []string
	for i := 0; i < 4; i++ {
		names = append(names, writeFakeBackup(t, backupDir, now.Add(-time.Duration(i)*time.Hour)))
	}

	if err := svc.Prune(); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	backups, err := svc.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups after prune: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups after prune, got %d", len(backups))
	}
	// The two newest survive.
	if backups[0].Filename != names[0] || backups[1].Filename != names[1] {
		t.Errorf("expected newest backups to survive, got %s, %s",
			backups[0].Filename, backups[1].Filename)
	}
}

func TestPruneRetentionDisabled(t *testing.T) {
	db := setupTestDB(t)
	backupDir := filepath.Join(t.TempDir(), "backups")
	svc := NewService(db, backupDir, 0, testLogger())

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		writeFakeBackup(t, backupDir, now.Add(-time.Duration(i)*time.Hour))
	}

	if err := svc.Prune(); err != nil {
		t.Fatalf("Prune: %v", err)
	}

	backups, err := svc.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected all 3 backups kept, got %d", len(backups))
	}
}

func TestListBackupsEmptyDir(t *testing.T) {
	db := setupTestDB(t)
	backupDir := filepath.Join(t.TempDir(), "nonexistent")
	svc := NewService(db, backupDir, 7, testLogger())

	backups, err := svc.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups, got %d", len(backups))
	}
}

func TestIsValidBackupFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid", "tanager-20260220-143022.db", true},
		{"path traversal", "../tanager-20260220-143022.db", false},
		{"backslash", "..\\tanager-20260220-143022.db", false},
		{"wrong prefix", "backup-20260220-143022.db", false},
		{"wrong extension", "tanager-20260220-143022.sql", false},
		{"garbage timestamp", "tanager-notadate.db", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidBackupFilename(tt.input); got != tt.want {
				t.Errorf("IsValidBackupFilename(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
