package sales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesboard/backend/internal/domain/shared"
)

func TestSnapshotValidate(t *testing.T) {
	t.Run("valid snapshot passes", func(t *testing.T) {
		s := &Snapshot{
			Sellers:         []Seller{{ID: "s1", FirstName: "Ada"}},
			Products:        []Product{},
			PurchaseRecords: []PurchaseRecord{},
		}
		require.NoError(t, s.Validate())
	})

	t.Run("nil snapshot fails", func(t *testing.T) {
		var s *Snapshot
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("nil sellers fails", func(t *testing.T) {
		s := &Snapshot{
			Products:        []Product{},
			PurchaseRecords: []PurchaseRecord{},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("empty sellers fails", func(t *testing.T) {
		s := &Snapshot{
			Sellers:         []Seller{},
			Products:        []Product{},
			PurchaseRecords: []PurchaseRecord{},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("nil products fails", func(t *testing.T) {
		s := &Snapshot{
			Sellers:         []Seller{{ID: "s1"}},
			PurchaseRecords: []PurchaseRecord{},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("nil purchase records fails", func(t *testing.T) {
		s := &Snapshot{
			Sellers:  []Seller{{ID: "s1"}},
			Products: []Product{},
		}
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})

	t.Run("empty products and records are allowed", func(t *testing.T) {
		s := &Snapshot{
			Sellers:         []Seller{{ID: "s1"}},
			Products:        []Product{},
			PurchaseRecords: []PurchaseRecord{},
		}
		assert.NoError(t, s.Validate())
	})
}

func TestSellerName(t *testing.T) {
	tests := []struct {
		name     string
		seller   Seller
		expected string
	}{
		{
			name:     "display name wins",
			seller:   Seller{FirstName: "Ada", LastName: "Lovelace", DisplayName: "Ada L."},
			expected: "Ada L.",
		},
		{
			name:     "first and last name",
			seller:   Seller{FirstName: "Ada", LastName: "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "first name only",
			seller:   Seller{FirstName: "Ada"},
			expected: "Ada",
		},
		{
			name:     "last name only",
			seller:   Seller{LastName: "Lovelace"},
			expected: "Lovelace",
		},
		{
			name:     "no names at all",
			seller:   Seller{ID: "s1"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.seller.Name())
		})
	}
}
