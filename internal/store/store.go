// Package store provides an interface for catalog storage operations.
package store

import "github.com/shopspring/decimal"

// Entry represents a single product entry in the catalog.
type Entry struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// CatalogStore is an interface for catalog storage operations. The catalog
// is an ordered sequence: entries keep their insertion order, updates
// mutate in place and deletes remove in place.
type CatalogStore interface {
	// List returns all entries in catalog order.
	// Returns an empty slice if the catalog is empty.
	List() []Entry

	// Len returns the number of entries.
	Len() int

	// FindByID retrieves a single entry by its unique identifier.
	// Returns ErrEntryNotFound if no entry exists with the given ID.
	FindByID(id int64) (*Entry, error)

	// FindByPrefix returns the first entry, in catalog order, whose name
	// starts with the given prefix, compared case-insensitively.
	// Returns ErrEntryNotFound if no entry matches.
	FindByPrefix(prefix string) (*Entry, error)

	// Append adds a new entry at the end of the catalog with a freshly
	// generated unique ID.
	Append(name string, price decimal.Decimal) (*Entry, error)

	// Replace updates the name and price of an existing entry in place;
	// its ID and position are unchanged.
	// Returns ErrEntryNotFound if no entry exists with the given ID.
	Replace(id int64, name string, price decimal.Decimal) (*Entry, error)

	// Remove deletes the entry with the given ID and reports whether an
	// entry was removed. Removing an absent ID is a no-op.
	Remove(id int64) bool
}
