package store

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	catalogerrors "pricebook/internal/errors"
)

// inMemory implements CatalogStore using an ordered slice. IDs come from a
// monotonically increasing counter owned by the store and are never reused.
type inMemory struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
}

// NewInMemoryStore creates a new empty instance of CatalogStore.
func NewInMemoryStore() CatalogStore {
	return &inMemory{
		entries: make([]Entry, 0, 16),
		nextID:  1,
	}
}

// List returns a copy of all entries in catalog order.
func (s *inMemory) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Entry, len(s.entries))
	copy(list, s.entries)
	return list
}

// Len returns the number of entries.
func (s *inMemory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// FindByID retrieves an entry by its ID.
func (s *inMemory) FindByID(id int64) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, catalogerrors.ErrEntryNotFound
}

// FindByPrefix returns the first entry whose name starts with the prefix,
// compared case-insensitively. Ties break by catalog order.
func (s *inMemory) FindByPrefix(prefix string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(prefix)
	for i := range s.entries {
		if strings.HasPrefix(strings.ToLower(s.entries[i].Name), lowered) {
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, catalogerrors.ErrEntryNotFound
}

// Append adds a new entry at the end of the catalog.
func (s *inMemory) Append(name string, price decimal.Decimal) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		ID:    s.nextID,
		Name:  name,
		Price: price,
	}
	s.nextID++
	s.entries = append(s.entries, entry)

	return &entry, nil
}

// Replace updates an existing entry in place, keeping its ID and position.
func (s *inMemory) Replace(id int64, name string, price decimal.Decimal) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Name = name
			s.entries[i].Price = price
			e := s.entries[i]
			return &e, nil
		}
	}
	return nil, catalogerrors.ErrEntryNotFound
}

// Remove deletes an entry by its ID, preserving the order of the rest.
func (s *inMemory) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}
