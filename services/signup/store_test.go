package signup

import (
	"context"
	"reflect"
	"testing"
)

func TestMemoryStoreToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle is its own inverse", func(t *testing.T) {
		store := NewMemoryStore()
		if _, _, err := store.Toggle(ctx, 1, "15:00-15:10"); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		before, _ := store.Get(ctx, 1)

		if _, _, err := store.Toggle(ctx, 1, "15:20-15:30"); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if _, _, err := store.Toggle(ctx, 1, "15:20-15:30"); err != nil {
			t.Fatalf("Toggle: %v", err)
		}

		after, _ := store.Get(ctx, 1)
		if !reflect.DeepEqual(before, after) {
			t.Fatalf("double toggle changed the set: before %v, after %v", before, after)
		}
	})

	t.Run("first toggle creates the entry selected", func(t *testing.T) {
		store := NewMemoryStore()
		set, selected, err := store.Toggle(ctx, 7, "15:10-15:20")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if !selected {
			t.Fatal("expected slot to be selected after first toggle")
		}
		if want := []string{"15:10-15:20"}; !reflect.DeepEqual(set, want) {
			t.Fatalf("set = %v, want %v", set, want)
		}
	})

	t.Run("returned sets are sorted", func(t *testing.T) {
		store := NewMemoryStore()
		store.Toggle(ctx, 1, "15:40-15:50")
		store.Toggle(ctx, 1, "15:00-15:10")
		set, _, err := store.Toggle(ctx, 1, "15:20-15:30")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		want := []string{"15:00-15:10", "15:20-15:30", "15:40-15:50"}
		if !reflect.DeepEqual(set, want) {
			t.Fatalf("set = %v, want %v", set, want)
		}
	})

	t.Run("users are independent", func(t *testing.T) {
		store := NewMemoryStore()
		store.Toggle(ctx, 1, "15:00-15:10")
		store.Toggle(ctx, 2, "15:10-15:20")

		got1, _ := store.Get(ctx, 1)
		got2, _ := store.Get(ctx, 2)
		if reflect.DeepEqual(got1, got2) {
			t.Fatalf("users share a set: %v", got1)
		}
	})
}

func TestMemoryStoreGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	set, err := store.Get(ctx, 42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set for unknown user, got %v", set)
	}

	// Get must not create an entry.
	store.mu.Lock()
	_, exists := store.selections[42]
	store.mu.Unlock()
	if exists {
		t.Fatal("Get created an entry")
	}
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Clear(ctx, 5); err != nil {
		t.Fatalf("Clear of absent entry: %v", err)
	}

	store.Toggle(ctx, 5, "15:00-15:10")
	if err := store.Clear(ctx, 5); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	set, _ := store.Get(ctx, 5)
	if len(set) != 0 {
		t.Fatalf("entry survived Clear: %v", set)
	}
}
