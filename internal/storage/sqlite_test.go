package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func record(user, outcome string, ticks uint64, ended time.Time) SessionRecord {
	return SessionRecord{
		User:      user,
		Remote:    "127.0.0.1:50000",
		Outcome:   outcome,
		Ticks:     ticks,
		StartedAt: ended.Add(-time.Duration(ticks) * 200 * time.Millisecond),
		EndedAt:   ended,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	if _, err := store.SaveSession(record("alice", "game_over", 150, base)); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(record("bob", "quit", 30, base.Add(time.Minute))); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(record("alice", "disconnect", 5, base.Add(2*time.Minute))); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Newest first
	if sessions[0].Outcome != "disconnect" || sessions[2].Outcome != "game_over" {
		t.Errorf("Sessions not ordered newest first: %+v", sessions)
	}

	first := sessions[2]
	if first.User != "alice" || first.Ticks != 150 {
		t.Errorf("Unexpected record: %+v", first)
	}
	if !first.EndedAt.Equal(base) {
		t.Errorf("EndedAt = %v, expected %v", first.EndedAt, base)
	}
	if first.Duration() != 30*time.Second {
		t.Errorf("Duration() = %v, expected 30s", first.Duration())
	}
}

func TestStoreRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(record("user", "quit", uint64(i), base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Ticks != 4 || sessions[2].Ticks != 2 {
		t.Errorf("Sessions not in expected order: %+v", sessions)
	}
}

func TestStoreUserSessions(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	store.SaveSession(record("alice", "quit", 1, base))
	store.SaveSession(record("bob", "quit", 2, base))
	store.SaveSession(record("alice", "game_over", 3, base.Add(time.Second)))

	sessions, err := store.UserSessions("alice", 10)
	if err != nil {
		t.Fatalf("UserSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions for alice, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.User != "alice" {
			t.Errorf("Got session for %q", s.User)
		}
	}
}

func TestStoreCountAndClear(t *testing.T) {
	store := openTestStore(t)

	n, err := store.SessionCount()
	if err != nil || n != 0 {
		t.Fatalf("SessionCount() = %d, %v, expected 0", n, err)
	}

	store.SaveSession(record("alice", "quit", 1, time.Now()))
	store.SaveSession(record("bob", "quit", 1, time.Now()))

	if n, _ := store.SessionCount(); n != 2 {
		t.Errorf("SessionCount() = %d, expected 2", n)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	if n, _ := store.SessionCount(); n != 0 {
		t.Errorf("SessionCount() = %d after clear, expected 0", n)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
