package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogerrors "pricebook/internal/errors"
	"pricebook/internal/store"
)

// newSeededService builds a service over a fresh in-memory catalog seeded
// with Laptop/1200 and Keyboard/75.
func newSeededService(t *testing.T) (*Service, store.CatalogStore) {
	t.Helper()
	catalog := store.NewInMemoryStore()
	svc := NewService(catalog, Presentation{})
	_, err := svc.SubmitEntry("Laptop", "1200")
	require.NoError(t, err)
	_, err = svc.SubmitEntry("Keyboard", "75")
	require.NoError(t, err)
	return svc, catalog
}

func Test_CatalogService_SubmitEntry_Append(t *testing.T) {
	// given
	svc, catalog := newSeededService(t)
	// when
	result, err := svc.SubmitEntry("  Mouse  ", " 25 ")
	// then
	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.Equal(t, "Mouse", result.Entry.Name)
	assert.InDelta(t, 25.0, result.Entry.Price, 0.001)
	assert.Equal(t, 3, catalog.Len())

	entries := svc.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "Mouse", entries[2].Name, "new entries append at the end")
}

func Test_CatalogService_SubmitEntry_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		entryName   string
		priceText   string
		expectError error
	}{
		{
			name:        "Error - name empty after trim",
			entryName:   "   ",
			priceText:   "10",
			expectError: catalogerrors.ErrNameRequired,
		},
		{
			name:        "Error - price missing",
			entryName:   "Webcam",
			priceText:   "",
			expectError: catalogerrors.ErrPriceRequired,
		},
		{
			name:        "Error - price not a number",
			entryName:   "Webcam",
			priceText:   "abc",
			expectError: catalogerrors.ErrPriceInvalid,
		},
		{
			name:        "Error - price negative",
			entryName:   "Webcam",
			priceText:   "-5",
			expectError: catalogerrors.ErrPriceInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, catalog := newSeededService(t)
			// when
			result, err := svc.SubmitEntry(tc.entryName, tc.priceText)
			// then
			assert.ErrorIs(t, err, tc.expectError)
			assert.Nil(t, result)
			assert.Equal(t, 2, catalog.Len(), "a rejected submission never mutates the catalog")
		})
	}
}

func Test_CatalogService_SubmitEntry_UpdateInPlace(t *testing.T) {
	// given
	svc, catalog := newSeededService(t)
	keyboard := svc.Entries()[1]
	_, err := svc.BeginEdit(keyboard.ID)
	require.NoError(t, err)
	// when
	result, err := svc.SubmitEntry("Keyboard Pro", "80")
	// then
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, keyboard.ID, result.Entry.ID, "ID unchanged on update")
	assert.Equal(t, 2, catalog.Len(), "length unchanged on update")

	entries := svc.Entries()
	assert.Equal(t, "Keyboard Pro", entries[1].Name, "position unchanged on update")
	assert.InDelta(t, 80.0, entries[1].Price, 0.001)
	assert.False(t, svc.Session().Editing, "successful submission clears the edit session")
}

func Test_CatalogService_SubmitEntry_ValidationKeepsSession(t *testing.T) {
	// given
	svc, _ := newSeededService(t)
	laptop := svc.Entries()[0]
	_, err := svc.BeginEdit(laptop.ID)
	require.NoError(t, err)
	// when
	_, err = svc.SubmitEntry("", "oops")
	// then
	assert.Error(t, err)
	session := svc.Session()
	assert.True(t, session.Editing, "validation failure leaves the edit session active")
	assert.Equal(t, laptop.ID, session.EntryID)
}

func Test_CatalogService_BeginEdit(t *testing.T) {
	t.Run("Success - session and form populated", func(t *testing.T) {
		// given
		svc, _ := newSeededService(t)
		laptop := svc.Entries()[0]
		// when
		session, err := svc.BeginEdit(laptop.ID)
		// then
		require.NoError(t, err)
		assert.True(t, session.Editing)
		assert.Equal(t, laptop.ID, session.EntryID)
		assert.Equal(t, "Laptop", session.Name)
		assert.Equal(t, "1200", session.Price)
	})

	t.Run("Error - entry not found, session unchanged", func(t *testing.T) {
		// given
		svc, _ := newSeededService(t)
		// when
		session, err := svc.BeginEdit(999)
		// then
		assert.ErrorIs(t, err, catalogerrors.ErrEntryNotFound)
		assert.Nil(t, session)
		assert.False(t, svc.Session().Editing)
	})
}

func Test_CatalogService_CancelEdit_Idempotent(t *testing.T) {
	// given
	svc, _ := newSeededService(t)
	laptop := svc.Entries()[0]
	_, err := svc.BeginEdit(laptop.ID)
	require.NoError(t, err)
	// when
	first := svc.CancelEdit()
	second := svc.CancelEdit()
	// then
	assert.Equal(t, first, second)
	assert.False(t, second.Editing)
	assert.Empty(t, second.Name)
	assert.Empty(t, second.Price)
}

func Test_CatalogService_DeleteEntry(t *testing.T) {
	t.Run("Success - entry removed", func(t *testing.T) {
		// given
		svc, catalog := newSeededService(t)
		laptop := svc.Entries()[0]
		// when
		removed := svc.DeleteEntry(laptop.ID)
		// then
		assert.True(t, removed)
		assert.Equal(t, 1, catalog.Len())
		assert.Equal(t, "Keyboard", svc.Entries()[0].Name)
	})

	t.Run("No-op - entry absent", func(t *testing.T) {
		// given
		svc, catalog := newSeededService(t)
		// when
		removed := svc.DeleteEntry(999)
		// then
		assert.False(t, removed)
		assert.Equal(t, 2, catalog.Len())
	})

	t.Run("Deleting the edit target clears the session", func(t *testing.T) {
		// given
		svc, _ := newSeededService(t)
		laptop := svc.Entries()[0]
		_, err := svc.BeginEdit(laptop.ID)
		require.NoError(t, err)
		// when
		removed := svc.DeleteEntry(laptop.ID)
		// then
		assert.True(t, removed)
		assert.False(t, svc.Session().Editing)
	})

	t.Run("Deleting another entry keeps the session", func(t *testing.T) {
		// given
		svc, _ := newSeededService(t)
		entries := svc.Entries()
		_, err := svc.BeginEdit(entries[0].ID)
		require.NoError(t, err)
		// when
		removed := svc.DeleteEntry(entries[1].ID)
		// then
		assert.True(t, removed)
		session := svc.Session()
		assert.True(t, session.Editing)
		assert.Equal(t, entries[0].ID, session.EntryID)
	})
}

func Test_CatalogService_LookupPrice(t *testing.T) {
	testCases := []struct {
		name     string
		term     string
		expected LookupResult
	}{
		{
			name:     "Success - case-insensitive prefix match, two decimals",
			term:     "lap",
			expected: LookupResult{Found: true, Price: "$1200.00"},
		},
		{
			name:     "Success - term is trimmed",
			term:     "  Key  ",
			expected: LookupResult{Found: true, Price: "$75.00"},
		},
		{
			name:     "Not found - empty term",
			term:     "",
			expected: LookupResult{Found: false, Message: "Product not found"},
		},
		{
			name:     "Not found - whitespace-only term",
			term:     "   ",
			expected: LookupResult{Found: false, Message: "Product not found"},
		},
		{
			name:     "Not found - no match",
			term:     "zzz",
			expected: LookupResult{Found: false, Message: "Product not found"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, _ := newSeededService(t)
			// when
			result := svc.LookupPrice(tc.term)
			// then
			assert.Equal(t, tc.expected, result)
		})
	}
}

func Test_CatalogService_LookupPrice_FirstMatchWins(t *testing.T) {
	// given
	svc, _ := newSeededService(t)
	_, err := svc.SubmitEntry("Keyboard Pro", "80")
	require.NoError(t, err)
	// when
	result := svc.LookupPrice("key")
	// then
	assert.True(t, result.Found)
	assert.Equal(t, "$75.00", result.Price, "ties break by catalog order")
}

func Test_CatalogService_Presentation(t *testing.T) {
	// given
	catalog := store.NewInMemoryStore()
	svc := NewService(catalog, Presentation{Currency: "€", NotFoundText: "Nichts gefunden"})
	_, err := svc.SubmitEntry("Laptop", "1200")
	require.NoError(t, err)
	// when / then
	assert.Equal(t, LookupResult{Found: true, Price: "€1200.00"}, svc.LookupPrice("lap"))
	assert.Equal(t, LookupResult{Found: false, Message: "Nichts gefunden"}, svc.LookupPrice("zzz"))
}

func Test_CatalogService_Scenario(t *testing.T) {
	// given a catalog seeded with Laptop/1200 and Keyboard/75
	svc, catalog := newSeededService(t)

	assert.Equal(t, "$1200.00", svc.LookupPrice("lap").Price)

	// append Mouse
	result, err := svc.SubmitEntry("Mouse", "25")
	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.Equal(t, 3, catalog.Len())

	// edit the Keyboard entry in place
	keyboard := svc.Entries()[1]
	_, err = svc.BeginEdit(keyboard.ID)
	require.NoError(t, err)
	result, err = svc.SubmitEntry("Keyboard Pro", "80")
	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, keyboard.ID, result.Entry.ID)
	assert.Equal(t, 3, catalog.Len())

	// delete the Laptop entry
	laptop := svc.Entries()[0]
	assert.True(t, svc.DeleteEntry(laptop.ID))
	assert.Equal(t, 2, catalog.Len())
	_, err = catalog.FindByID(laptop.ID)
	assert.ErrorIs(t, err, catalogerrors.ErrEntryNotFound)

	// no match
	assert.False(t, svc.LookupPrice("zzz").Found)
}
