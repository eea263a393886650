package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

func setupStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Failed to close test store: %v", err)
		}
	})
	return s
}

func seedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoad_PopulatesEmptyStore(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	bus := events.NewBus()

	seeded := 0
	bus.On(events.EventSeedLoaded, func(e events.Event) {
		seeded = e.Payload.(events.SeedPayload).Loaded
	})

	srv := seedServer(t, http.StatusOK, `[
		{"id": "task_seed1", "title": "First", "column": "inprogress"},
		{"title": "Second"},
		{"title": "", "column": "done"}
	]`)

	loader := NewLoader(s, bus, srv.URL, 0)
	count, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if count != 2 {
		t.Errorf("loaded = %d, want 2 (untitled record dropped)", count)
	}
	if seeded != 2 {
		t.Errorf("seed:loaded payload = %d, want 2", seeded)
	}

	tasks := store.Load(ctx, s, store.KeyTasks, []models.Task{})
	if len(tasks) != 2 {
		t.Fatalf("stored tasks = %d, want 2", len(tasks))
	}
	if tasks[0].ID != "task_seed1" || tasks[0].Column != models.ColumnInProgress {
		t.Errorf("first task not normalized as expected: %+v", tasks[0])
	}
	if tasks[1].ID == "" {
		t.Error("expected missing ID to be generated")
	}
	if tasks[1].Column != models.ColumnBacklog {
		t.Errorf("missing column defaulted to %q, want backlog", tasks[1].Column)
	}
	if tasks[1].Assignees == nil {
		t.Error("expected assignees to default to an empty set")
	}
}

func TestLoad_SkipsWhenDataExists(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	existing := []models.Task{{ID: "task_mine", Title: "Mine", Column: models.ColumnBacklog}}
	if err := store.SaveValue(ctx, s, store.KeyTasks, existing); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	loader := NewLoader(s, events.NewBus(), srv.URL, 0)
	count, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if count != 0 {
		t.Errorf("loaded = %d, want 0", count)
	}
	if requests != 0 {
		t.Errorf("endpoint hit %d times, want 0 when data exists", requests)
	}

	tasks := store.Load(ctx, s, store.KeyTasks, []models.Task{})
	if len(tasks) != 1 || tasks[0].ID != "task_mine" {
		t.Errorf("existing data was disturbed: %+v", tasks)
	}
}

func TestLoad_SkipsEvenWhenStoredCollectionIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	// An explicitly stored empty collection counts as existing data:
	// the user may have deleted every task on purpose.
	if err := store.SaveValue(ctx, s, store.KeyTasks, []models.Task{}); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}

	srv := seedServer(t, http.StatusOK, `[{"title": "Ghost"}]`)
	loader := NewLoader(s, events.NewBus(), srv.URL, 0)

	count, err := loader.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if count != 0 {
		t.Errorf("loaded = %d, want 0", count)
	}
}

func TestLoad_NonSuccessStatus(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	srv := seedServer(t, http.StatusInternalServerError, "boom")

	loader := NewLoader(s, events.NewBus(), srv.URL, 0)
	if _, err := loader.Load(ctx); err == nil {
		t.Fatal("expected error for non-success status")
	}

	// Failure leaves the store empty and retryable
	ok, err := store.Has(ctx, s, store.KeyTasks)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if ok {
		t.Error("expected no task data after failed seed")
	}
}

func TestLoad_MalformedBody(t *testing.T) {
	s := setupStore(t)
	srv := seedServer(t, http.StatusOK, `{"not": "an array"`)

	loader := NewLoader(s, events.NewBus(), srv.URL, 0)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed seed body")
	}
}

func TestLoad_UnreachableEndpoint(t *testing.T) {
	s := setupStore(t)

	loader := NewLoader(s, events.NewBus(), "http://127.0.0.1:1/tasks", 0)
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected error for unreachable endpoint")
	}

	ok, err := store.Has(context.Background(), s, store.KeyTasks)
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if ok {
		t.Error("expected store untouched after network failure")
	}
}
