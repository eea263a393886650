package store

import (
	"context"
	"reflect"
	"testing"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
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

func TestGet_MissingKey(t *testing.T) {
	s := setupTestStore(t)

	_, ok, err := s.Get(context.Background(), "ttm:absent")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	tests := []struct {
		name  string
		value any
	}{
		{"string", "hello"},
		{"number", 42.5},
		{"array", []any{"a", "b", "c"}},
		{"object", map[string]any{"nested": map[string]any{"deep": true}}},
		{"null", nil},
		{"empty array", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := SaveValue(ctx, s, "ttm:roundtrip", tt.value); err != nil {
				t.Fatalf("SaveValue failed: %v", err)
			}
			got := Load[any](ctx, s, "ttm:roundtrip", "fallback")
			if !reflect.DeepEqual(got, tt.value) {
				t.Errorf("round trip = %#v, want %#v", got, tt.value)
			}
		})
	}
}

func TestSet_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	if err := SaveValue(ctx, s, "ttm:theme", "light"); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}
	if err := SaveValue(ctx, s, "ttm:theme", "dark"); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}

	if got := Load(ctx, s, "ttm:theme", ""); got != "dark" {
		t.Errorf("Load = %q, want %q", got, "dark")
	}
}

func TestLoad_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	// Raw write bypassing JSON encoding to simulate corruption
	if err := s.Set(ctx, "ttm:tasks", []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got := Load(ctx, s, "ttm:tasks", []string{"fallback"})
	if !reflect.DeepEqual(got, []string{"fallback"}) {
		t.Errorf("Load on corrupt value = %#v, want fallback", got)
	}
}

func TestLoad_MissingKeyFallsBack(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	got := Load(ctx, s, "ttm:session", map[string]string{"user_id": "none"})
	if got["user_id"] != "none" {
		t.Errorf("Load on missing key = %#v, want fallback", got)
	}
}

func TestPatch_UpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	if err := SaveValue(ctx, s, "ttm:counter", 1); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}

	err := Patch(ctx, s, "ttm:counter", 0, func(n int) int { return n + 10 })
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	if got := Load(ctx, s, "ttm:counter", 0); got != 11 {
		t.Errorf("Load after patch = %d, want 11", got)
	}
}

func TestPatch_SeedsFallbackWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	err := Patch(ctx, s, "ttm:tasks", []string{}, func(ts []string) []string {
		return append(ts, "first")
	})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	got := Load(ctx, s, "ttm:tasks", []string{})
	if !reflect.DeepEqual(got, []string{"first"}) {
		t.Errorf("Load after seeding patch = %#v, want [first]", got)
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	if err := SaveValue(ctx, s, "ttm:session", "x"); err != nil {
		t.Fatalf("SaveValue failed: %v", err)
	}
	if err := s.Remove(ctx, "ttm:session"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	ok, err := Has(ctx, s, "ttm:session")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if ok {
		t.Error("expected key to be gone after Remove")
	}

	// Removing again must not error
	if err := s.Remove(ctx, "ttm:session"); err != nil {
		t.Errorf("Remove of absent key returned error: %v", err)
	}
}

func TestKeys_Sorted(t *testing.T) {
	ctx := context.Background()
	s := setupTestStore(t)

	for _, key := range []string{"ttm:users", "ttm:session", "ttm:tasks"} {
		if err := SaveValue(ctx, s, key, "v"); err != nil {
			t.Fatalf("SaveValue failed: %v", err)
		}
	}

	keys, err := s.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{"ttm:session", "ttm:tasks", "ttm:users"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys = %v, want %v", keys, want)
	}
}
