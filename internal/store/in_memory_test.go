package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogerrors "pricebook/internal/errors"
)

func seeded(t *testing.T, names ...string) CatalogStore {
	t.Helper()
	s := NewInMemoryStore()
	for _, name := range names {
		_, err := s.Append(name, decimal.NewFromInt(10))
		require.NoError(t, err)
	}
	return s
}

func Test_InMemoryStore_Append(t *testing.T) {
	// given
	s := NewInMemoryStore()
	// when
	first, err := s.Append("Laptop", decimal.NewFromInt(1200))
	require.NoError(t, err)
	second, err := s.Append("Keyboard", decimal.NewFromInt(75))
	require.NoError(t, err)
	// then
	assert.Equal(t, 2, s.Len())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Laptop", list[0].Name)
	assert.Equal(t, "Keyboard", list[1].Name)
}

func Test_InMemoryStore_Replace(t *testing.T) {
	t.Run("Success - entry updated in place", func(t *testing.T) {
		// given
		s := seeded(t, "Laptop", "Keyboard", "Mouse")
		target := s.List()[1]
		// when
		updated, err := s.Replace(target.ID, "Keyboard Pro", decimal.NewFromInt(80))
		// then
		require.NoError(t, err)
		assert.Equal(t, target.ID, updated.ID)
		assert.Equal(t, "Keyboard Pro", updated.Name)

		list := s.List()
		require.Len(t, list, 3)
		assert.Equal(t, "Laptop", list[0].Name)
		assert.Equal(t, "Keyboard Pro", list[1].Name)
		assert.Equal(t, "Mouse", list[2].Name)
	})

	t.Run("Error - entry not found", func(t *testing.T) {
		// given
		s := seeded(t, "Laptop")
		// when
		updated, err := s.Replace(999, "Ghost", decimal.NewFromInt(1))
		// then
		assert.ErrorIs(t, err, catalogerrors.ErrEntryNotFound)
		assert.Nil(t, updated)
		assert.Equal(t, 1, s.Len())
	})
}

func Test_InMemoryStore_Remove(t *testing.T) {
	t.Run("Success - entry removed, order preserved", func(t *testing.T) {
		// given
		s := seeded(t, "Laptop", "Keyboard", "Mouse")
		target := s.List()[1]
		// when
		removed := s.Remove(target.ID)
		// then
		assert.True(t, removed)
		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, "Laptop", list[0].Name)
		assert.Equal(t, "Mouse", list[1].Name)
	})

	t.Run("No-op - entry absent", func(t *testing.T) {
		// given
		s := seeded(t, "Laptop")
		// when
		removed := s.Remove(999)
		// then
		assert.False(t, removed)
		assert.Equal(t, 1, s.Len())
	})
}

func Test_InMemoryStore_IDsNeverReused(t *testing.T) {
	// given
	s := NewInMemoryStore()
	first, err := s.Append("Laptop", decimal.NewFromInt(1200))
	require.NoError(t, err)
	// when
	s.Remove(first.ID)
	second, err := s.Append("Keyboard", decimal.NewFromInt(75))
	require.NoError(t, err)
	// then
	assert.NotEqual(t, first.ID, second.ID)
}

func Test_InMemoryStore_FindByID(t *testing.T) {
	// given
	s := seeded(t, "Laptop", "Keyboard")
	target := s.List()[1]

	found, err := s.FindByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", found.Name)

	missing, err := s.FindByID(999)
	assert.ErrorIs(t, err, catalogerrors.ErrEntryNotFound)
	assert.Nil(t, missing)
}

func Test_InMemoryStore_FindByPrefix(t *testing.T) {
	testCases := []struct {
		name         string
		prefix       string
		expectedName string
		expectError  error
	}{
		{
			name:         "Success - case-insensitive match",
			prefix:       "lap",
			expectedName: "Laptop",
		},
		{
			name:         "Success - first match in catalog order",
			prefix:       "KEY",
			expectedName: "Keyboard",
		},
		{
			name:         "Success - full name matches as prefix",
			prefix:       "Mouse",
			expectedName: "Mouse",
		},
		{
			name:        "Error - no match",
			prefix:      "zzz",
			expectError: catalogerrors.ErrEntryNotFound,
		},
		{
			name:        "Error - suffix does not match",
			prefix:      "top",
			expectError: catalogerrors.ErrEntryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			s := seeded(t, "Laptop", "Keyboard", "Keyboard Pro", "Mouse")
			// when
			found, err := s.FindByPrefix(tc.prefix)
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedName, found.Name)
		})
	}
}

func Test_InMemoryStore_ListReturnsCopy(t *testing.T) {
	// given
	s := seeded(t, "Laptop")
	// when
	list := s.List()
	list[0].Name = "Tampered"
	// then
	fresh := s.List()
	assert.Equal(t, "Laptop", fresh[0].Name)
}
