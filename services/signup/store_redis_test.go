package signup

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// fakeRedisSets implements selectionCommands over plain maps and records
// every Expire call, so TTL behavior can be asserted without a server.
type fakeRedisSets struct {
	sets    map[string]map[string]struct{}
	expires []time.Duration

	saddErr error
	sremErr error
}

func newFakeRedisSets() *fakeRedisSets {
	return &fakeRedisSets{sets: make(map[string]map[string]struct{})}
}

func (f *fakeRedisSets) SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	if f.saddErr != nil {
		return redis.NewIntResult(0, f.saddErr)
	}
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]struct{})
		f.sets[key] = set
	}
	var added int64
	for _, m := range members {
		s := m.(string)
		if _, exists := set[s]; !exists {
			set[s] = struct{}{}
			added++
		}
	}
	return redis.NewIntResult(added, nil)
}

func (f *fakeRedisSets) SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	if f.sremErr != nil {
		return redis.NewIntResult(0, f.sremErr)
	}
	var removed int64
	for _, m := range members {
		s := m.(string)
		if _, exists := f.sets[key][s]; exists {
			delete(f.sets[key], s)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func (f *fakeRedisSets) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	var out []string
	for s := range f.sets[key] {
		out = append(out, s)
	}
	return redis.NewStringSliceResult(out, nil)
}

func (f *fakeRedisSets) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.sets[key]; ok {
			delete(f.sets, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedisSets) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	f.expires = append(f.expires, expiration)
	return redis.NewBoolResult(true, nil)
}

func TestRedisStoreToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("toggle is self-inverse", func(t *testing.T) {
		fake := newFakeRedisSets()
		store := NewRedisStore(fake, 0)

		set, selected, err := store.Toggle(ctx, 1, "10:00")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if !selected || !reflect.DeepEqual(set, []string{"10:00"}) {
			t.Fatalf("first toggle: selected=%v set=%v", selected, set)
		}

		set, selected, err = store.Toggle(ctx, 1, "10:00")
		if err != nil {
			t.Fatalf("Toggle: %v", err)
		}
		if selected || len(set) != 0 {
			t.Fatalf("second toggle: selected=%v set=%v", selected, set)
		}
	})

	t.Run("returned set is sorted", func(t *testing.T) {
		fake := newFakeRedisSets()
		store := NewRedisStore(fake, 0)

		for _, slot := range []string{"10:30", "10:00", "10:20"} {
			if _, _, err := store.Toggle(ctx, 1, slot); err != nil {
				t.Fatalf("Toggle(%s): %v", slot, err)
			}
		}
		set, err := store.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if want := []string{"10:00", "10:20", "10:30"}; !reflect.DeepEqual(set, want) {
			t.Fatalf("set = %v, want %v", set, want)
		}
	})

	t.Run("every toggle refreshes the TTL", func(t *testing.T) {
		fake := newFakeRedisSets()
		store := NewRedisStore(fake, 30*time.Minute)

		store.Toggle(ctx, 1, "10:00")
		store.Toggle(ctx, 1, "10:10")
		store.Toggle(ctx, 1, "10:00") // removal refreshes too

		if len(fake.expires) != 3 {
			t.Fatalf("expected 3 Expire calls, got %d", len(fake.expires))
		}
		for _, d := range fake.expires {
			if d != 30*time.Minute {
				t.Fatalf("Expire duration = %v, want 30m", d)
			}
		}
	})

	t.Run("zero TTL never touches Expire", func(t *testing.T) {
		fake := newFakeRedisSets()
		store := NewRedisStore(fake, 0)

		store.Toggle(ctx, 1, "10:00")
		if len(fake.expires) != 0 {
			t.Fatalf("unexpected Expire calls: %v", fake.expires)
		}
	})

	t.Run("command failure surfaces as an error", func(t *testing.T) {
		fake := newFakeRedisSets()
		fake.saddErr = errors.New("connection refused")
		store := NewRedisStore(fake, 0)

		if _, _, err := store.Toggle(ctx, 1, "10:00"); err == nil {
			t.Fatal("expected error from failing SAdd")
		}
	})
}

func TestRedisStoreClear(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedisSets()
	store := NewRedisStore(fake, 0)

	store.Toggle(ctx, 1, "10:00")
	store.Toggle(ctx, 2, "10:10")

	if err := store.Clear(ctx, 1); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	set, _ := store.Get(ctx, 1)
	if len(set) != 0 {
		t.Fatalf("selection survived Clear: %v", set)
	}

	// Other users are untouched.
	set, _ = store.Get(ctx, 2)
	if !reflect.DeepEqual(set, []string{"10:10"}) {
		t.Fatalf("unrelated selection = %v, want [10:10]", set)
	}
}
