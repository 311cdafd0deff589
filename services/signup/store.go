package signup

import (
	"context"
	"sort"
	"sync"
)

// SelectionStore keeps each user's pending, not-yet-confirmed slot choices.
// Entries are transient: they exist only between the first toggle and a
// successful confirm. Nothing here is durable.
//
// All returned sets are sorted lexicographically.
type SelectionStore interface {
	// Toggle flips membership of slot in the user's pending set, creating the
	// entry on first use. It reports whether the slot is selected after the
	// flip, along with the resulting set.
	Toggle(ctx context.Context, userID int64, slot string) (set []string, selected bool, err error)
	// Get returns the user's pending set without creating an entry.
	Get(ctx context.Context, userID int64) ([]string, error)
	// Clear removes the user's entry. Clearing an absent entry is a no-op.
	Clear(ctx context.Context, userID int64) error
}

// MemoryStore is the default SelectionStore: a mutex-guarded in-process map.
// A restart discards all pending selections, which is acceptable because
// nothing has been committed yet.
type MemoryStore struct {
	mu         sync.Mutex
	selections map[int64]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{selections: make(map[int64]map[string]struct{})}
}

func (s *MemoryStore) Toggle(ctx context.Context, userID int64, slot string) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.selections[userID]
	if !ok {
		set = make(map[string]struct{})
		s.selections[userID] = set
	}

	_, selected := set[slot]
	if selected {
		delete(set, slot)
	} else {
		set[slot] = struct{}{}
	}
	return sortedKeys(set), !selected, nil
}

func (s *MemoryStore) Get(ctx context.Context, userID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(s.selections[userID]), nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, userID)
	return nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
