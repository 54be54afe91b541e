package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

type stubFrontend struct{ id string }

func (s stubFrontend) ID() string    { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }
func (s stubFrontend) Play(_ context.Context, g *snake.Game, _ Options) (snake.Snapshot, error) {
	return g.Snapshot(), nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Frontend { return stubFrontend{id: "stub-a"} })
	Register("stub-b", func() Frontend { return stubFrontend{id: "stub-b"} })

	if !Exists("stub-a") {
		t.Error("stub-a should exist")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", f.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-z", func() Frontend { return stubFrontend{id: "stub-z"} })
	Register("stub-m", func() Frontend { return stubFrontend{id: "stub-m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "stub-m" {
			found = true
			if info.Title != "Stub stub-m" {
				t.Errorf("Title = %q, expected Stub stub-m", info.Title)
			}
		}
	}
	if !found {
		t.Error("stub-m missing from List()")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate IDs")
		}
	}()
	Register("stub-dup", func() Frontend { return stubFrontend{id: "stub-dup"} })
}

func TestOptionsLog(t *testing.T) {
	var opts Options
	if opts.Log() == nil {
		t.Fatal("Log() should never return nil")
	}
	// Logging through the fallback must be safe.
	opts.Log().Info("discarded")
}
