package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestClearSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	now := time.Now()
	for _, user := range []string{"alice", "bob"} {
		if _, err := store.SaveSession(storage.SessionRecord{
			User: user, Remote: "127.0.0.1:1", Outcome: "game_over", StartedAt: now, EndedAt: now,
		}); err != nil {
			t.Fatalf("SaveSession: %v", err)
		}
	}

	n, err := clearSessions(store)
	if err != nil {
		t.Fatalf("clearSessions: %v", err)
	}
	if n != 2 {
		t.Errorf("clearSessions() = %d, expected 2", n)
	}
	if count, _ := store.SessionCount(); count != 0 {
		t.Errorf("SessionCount() = %d after clear, expected 0", count)
	}

	n, err = clearSessions(store)
	if err != nil || n != 0 {
		t.Errorf("clearSessions() on empty log = %d, %v, expected 0, nil", n, err)
	}
}
