package todo

import (
	"sort"
	"strings"
	"sync"
)

// Store is the in-memory todo collection. IDs are assigned from a monotonic
// counter seeded past the highest seeded item.
type Store struct {
	mu     sync.RWMutex
	items  map[int]Todo
	nextID int
}

// NewStore creates a store seeded with the given items. The ID counter
// starts one past the highest seeded ID.
func NewStore(seed []Todo) *Store {
	items := make(map[int]Todo, len(seed))
	nextID := 1
	for _, t := range seed {
		items[t.ID] = t
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	return &Store{items: items, nextID: nextID}
}

// ListFilter narrows and pages List results. Zero values mean "no filter".
type ListFilter struct {
	Done        *bool
	TitlePrefix string
	Page        int
	Limit       int
}

// List returns items matching the filter, ordered by ID. Pagination is
// 1-based; a page past the end yields an empty slice, never an error.
func (s *Store) List(f ListFilter) []Todo {
	s.mu.RLock()
	results := make([]Todo, 0, len(s.items))
	for _, t := range s.items {
		if f.Done != nil && t.Done != *f.Done {
			continue
		}
		if f.TitlePrefix != "" &&
			!strings.HasPrefix(strings.ToLower(t.Title), strings.ToLower(f.TitlePrefix)) {
			continue
		}
		results = append(results, t)
	}
	s.mu.RUnlock()

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	if f.Page > 0 && f.Limit > 0 {
		start := (f.Page - 1) * f.Limit
		if start >= len(results) {
			return []Todo{}
		}
		end := start + f.Limit
		if end > len(results) {
			end = len(results)
		}
		results = results[start:end]
	}
	return results
}

// Get returns the item with the given ID.
func (s *Store) Get(id int) (Todo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.items[id]
	return t, ok
}

// Add creates a new item with the next ID and returns it.
func (s *Store) Add(title string, done bool, description *string) Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := Todo{ID: s.nextID, Title: title, Done: done, Description: description}
	s.items[t.ID] = t
	s.nextID++
	return t
}

// Replace overwrites every field of an existing item.
func (s *Store) Replace(id int, title string, done bool, description *string) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return Todo{}, false
	}
	t := Todo{ID: id, Title: title, Done: done, Description: description}
	s.items[id] = t
	return t, true
}

// Patch updates only the provided fields of an existing item.
func (s *Store) Patch(id int, title *string, done *bool, description *string) (Todo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok {
		return Todo{}, false
	}
	if title != nil {
		t.Title = *title
	}
	if done != nil {
		t.Done = *done
	}
	if description != nil {
		t.Description = description
	}
	s.items[id] = t
	return t, true
}

// Delete removes an item, reporting whether it existed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Count reports the number of stored items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
