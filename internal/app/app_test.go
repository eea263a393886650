package app

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/identity"
	"github.com/thenoetrevino/tablero/internal/stats"
	"github.com/thenoetrevino/tablero/internal/store"
)

func setupApp(t *testing.T) *App {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	a := New(s, events.NewBus(), config.Default())
	t.Cleanup(func() {
		if err := a.Close(); err != nil {
			t.Errorf("Failed to close app: %v", err)
		}
	})
	return a
}

func TestTheme_DefaultsFromConfig(t *testing.T) {
	a := setupApp(t)
	if got := a.Theme(context.Background()); got != models.ThemeLight {
		t.Errorf("Theme = %q, want light", got)
	}
}

func TestSetTheme_PersistsAndEmits(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t)

	var changed []models.Theme
	a.Bus.On(events.EventThemeChanged, func(e events.Event) {
		changed = append(changed, e.Payload.(events.ThemePayload).Theme)
	})

	if err := a.SetTheme(ctx, models.ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if got := a.Theme(ctx); got != models.ThemeDark {
		t.Errorf("Theme = %q, want dark", got)
	}
	if len(changed) != 1 || changed[0] != models.ThemeDark {
		t.Errorf("theme:changed events = %v", changed)
	}
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	a := setupApp(t)
	if err := a.SetTheme(context.Background(), models.Theme("sepia")); err == nil {
		t.Fatal("expected error for unknown theme")
	}
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t)

	got, err := a.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("ToggleTheme failed: %v", err)
	}
	if got != models.ThemeDark {
		t.Errorf("first toggle = %q, want dark", got)
	}

	got, err = a.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("ToggleTheme failed: %v", err)
	}
	if got != models.ThemeLight {
		t.Errorf("second toggle = %q, want light", got)
	}
}

func TestLoadSeed_DisabledIsNoOp(t *testing.T) {
	a := setupApp(t)
	if count := a.LoadSeed(context.Background()); count != 0 {
		t.Errorf("LoadSeed with seeding disabled = %d, want 0", count)
	}
}

// End-to-end flow over one shared store: register, add a task, move it
// to done, check the stats, delete it.
func TestRegisterAddMoveDeleteFlow(t *testing.T) {
	ctx := context.Background()
	a := setupApp(t)

	_, err := a.Identity.Register(ctx, identity.RegisterRequest{
		Name:      "Ana",
		Email:     "ana@x.com",
		Password:  "secret1",
		Password2: "secret1",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	current, ok := a.Identity.CurrentUser(ctx)
	if !ok || current.Email != "ana@x.com" {
		t.Fatalf("CurrentUser = %+v, ok=%v", current, ok)
	}

	task, err := a.Board.CreateTask(ctx, "Write spec", "")
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if tasks := a.Board.Tasks(ctx); len(tasks) != 1 || tasks[0].Column != models.ColumnBacklog {
		t.Fatalf("unexpected collection after create: %+v", tasks)
	}

	if _, err := a.Board.MoveTask(ctx, task.ID, models.ColumnDone); err != nil {
		t.Fatalf("MoveTask failed: %v", err)
	}
	split := stats.CompletionSplit(a.Board.Tasks(ctx))
	if split.Completed != 1 || split.Pending != 0 {
		t.Errorf("CompletionSplit = %+v, want {1 0}", split)
	}

	removed, err := a.Board.DeleteTask(ctx, task.ID)
	if err != nil || !removed {
		t.Fatalf("DeleteTask = %v, %v", removed, err)
	}
	if got := len(a.Board.Tasks(ctx)); got != 0 {
		t.Errorf("collection length after delete = %d, want 0", got)
	}
}
