// Package service provides the implementation of catalog business logic:
// validation, the edit session state machine, and price lookup.
package service

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	catalogerrors "pricebook/internal/errors"
	"pricebook/internal/store"
)

// CatalogService defines the operations for managing the catalog and its
// edit session. A submission either appends a new entry or, when an edit
// session is active, updates the session's target in place.
type CatalogService interface {
	// Entries returns all catalog entries in catalog order.
	Entries() []EntryDto

	// Session returns the current edit session and form snapshot.
	Session() SessionDto

	// SubmitEntry validates the raw form input and applies it: an update
	// in place when an edit session is active, an append otherwise. On
	// success the edit session and form are cleared. On a validation
	// error nothing mutates and the session is unchanged.
	SubmitEntry(name, priceText string) (*SubmitResult, error)

	// BeginEdit starts an edit session for the given entry and populates
	// the form from it. Returns ErrEntryNotFound, with the session
	// unchanged, if the entry has vanished.
	BeginEdit(id int64) (*SessionDto, error)

	// CancelEdit clears the edit session and form. Idempotent.
	CancelEdit() SessionDto

	// DeleteEntry removes an entry and reports whether anything was
	// removed; a missing ID is a no-op. Deleting the active edit target
	// also clears the edit session. Confirmation of the destructive
	// action is the caller's concern.
	DeleteEntry(id int64) bool

	// LookupPrice returns the formatted price of the first entry whose
	// name starts with the trimmed term, compared case-insensitively.
	// An empty term or no match yields the not-found result. Pure.
	LookupPrice(term string) LookupResult
}

// Presentation holds the user-facing text the service produces. Both are
// presentation concerns, configurable rather than hard-coded.
type Presentation struct {
	Currency     string
	NotFoundText string
}

// Service implements CatalogService on top of a CatalogStore.
type Service struct {
	repository store.CatalogStore
	currency   string
	notFound   string

	// Edit session state. Guarded by mu together with the compound
	// submit/delete transitions so each operation is a single atomic
	// state transition.
	mu        sync.Mutex
	editing   bool
	editID    int64
	formName  string
	formPrice string
}

// NewService creates a new CatalogService with the provided store.
func NewService(repo store.CatalogStore, p Presentation) *Service {
	if p.Currency == "" {
		p.Currency = "$"
	}
	if p.NotFoundText == "" {
		p.NotFoundText = "Product not found"
	}
	return &Service{
		repository: repo,
		currency:   p.Currency,
		notFound:   p.NotFoundText,
	}
}

// EntryDto represents the data transfer object for a catalog entry.
type EntryDto struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SessionDto represents the edit session and the form text owned by it.
// EntryID is only meaningful while Editing is true.
type SessionDto struct {
	Editing bool   `json:"editing"`
	EntryID int64  `json:"entry_id,omitempty"`
	Name    string `json:"name"`
	Price   string `json:"price"`
}

// SubmitDto represents the raw form input for a submission. Both fields
// arrive as text; the price is parsed by the service.
type SubmitDto struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Price string `json:"price" validate:"required"`
}

// SubmitResult reports the outcome of a successful submission.
type SubmitResult struct {
	Entry   EntryDto `json:"entry"`
	Updated bool     `json:"updated"`
}

// LookupResult is the outcome of a price lookup. Price is set when Found,
// Message carries the not-found text otherwise.
type LookupResult struct {
	Found   bool   `json:"found"`
	Price   string `json:"price,omitempty"`
	Message string `json:"message,omitempty"`
}

// Entries returns all catalog entries in catalog order.
func (s *Service) Entries() []EntryDto {
	entries := s.repository.List()
	dtos := make([]EntryDto, len(entries))
	for i := range entries {
		dtos[i] = toDto(&entries[i])
	}
	return dtos
}

// Session returns the current edit session and form snapshot.
func (s *Service) Session() SessionDto {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionLocked()
}

// SubmitEntry validates and applies a submission.
func (s *Service) SubmitEntry(name, priceText string) (*SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, catalogerrors.ErrNameRequired
	}
	priceText = strings.TrimSpace(priceText)
	if priceText == "" {
		return nil, catalogerrors.ErrPriceRequired
	}
	price, err := decimal.NewFromString(priceText)
	if err != nil || price.IsNegative() {
		return nil, catalogerrors.ErrPriceInvalid
	}

	if s.editing {
		entry, err := s.repository.Replace(s.editID, trimmed, price)
		if err != nil {
			// The edit target vanished underneath the session. Drop the
			// session so it never references a missing entry.
			s.clearSessionLocked()
			return nil, err
		}
		s.clearSessionLocked()
		return &SubmitResult{Entry: toDto(entry), Updated: true}, nil
	}

	entry, err := s.repository.Append(trimmed, price)
	if err != nil {
		return nil, err
	}
	s.clearSessionLocked()
	return &SubmitResult{Entry: toDto(entry)}, nil
}

// BeginEdit starts an edit session for the given entry.
func (s *Service) BeginEdit(id int64) (*SessionDto, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.repository.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.editing = true
	s.editID = entry.ID
	s.formName = entry.Name
	s.formPrice = entry.Price.String()

	session := s.sessionLocked()
	return &session, nil
}

// CancelEdit clears the edit session and form.
func (s *Service) CancelEdit() SessionDto {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSessionLocked()
	return s.sessionLocked()
}

// DeleteEntry removes an entry by its ID.
func (s *Service) DeleteEntry(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.repository.Remove(id)
	if s.editing && s.editID == id {
		s.clearSessionLocked()
	}
	return removed
}

// LookupPrice resolves a price by case-insensitive name prefix.
func (s *Service) LookupPrice(term string) LookupResult {
	term = strings.TrimSpace(term)
	if term == "" {
		return LookupResult{Found: false, Message: s.notFound}
	}
	entry, err := s.repository.FindByPrefix(term)
	if err != nil {
		return LookupResult{Found: false, Message: s.notFound}
	}
	return LookupResult{Found: true, Price: s.FormatPrice(entry.Price)}
}

// FormatPrice renders a price with two decimal places and the configured
// currency prefix.
func (s *Service) FormatPrice(price decimal.Decimal) string {
	return s.currency + price.StringFixed(2)
}

func (s *Service) sessionLocked() SessionDto {
	session := SessionDto{
		Editing: s.editing,
		Name:    s.formName,
		Price:   s.formPrice,
	}
	if s.editing {
		session.EntryID = s.editID
	}
	return session
}

func (s *Service) clearSessionLocked() {
	s.editing = false
	s.editID = 0
	s.formName = ""
	s.formPrice = ""
}

// toDto converts a store.Entry to an EntryDto.
func toDto(entry *store.Entry) EntryDto {
	return EntryDto{
		ID:    entry.ID,
		Name:  entry.Name,
		Price: entry.Price.InexactFloat64(),
	}
}
