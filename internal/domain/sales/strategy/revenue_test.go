package strategy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/salesboard/backend/internal/domain/sales"
)

func TestDiscountedSalePriceStrategy(t *testing.T) {
	s := NewDiscountedSalePriceStrategy()

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "discounted_sale_price", s.Name())
		assert.Equal(t, StrategyTypeRevenue, s.Type())
	})

	tests := []struct {
		name     string
		item     sales.LineItem
		expected string
	}{
		{
			name: "no discount",
			item: sales.LineItem{
				Quantity:  4,
				SalePrice: decimal.NewFromInt(10),
			},
			expected: "40",
		},
		{
			name: "with discount",
			item: sales.LineItem{
				Quantity:        2,
				SalePrice:       decimal.NewFromInt(100),
				DiscountPercent: decimal.NewFromInt(25),
			},
			expected: "150",
		},
		{
			name: "full discount yields zero",
			item: sales.LineItem{
				Quantity:        3,
				SalePrice:       decimal.NewFromInt(10),
				DiscountPercent: decimal.NewFromInt(100),
			},
			expected: "0",
		},
		{
			name: "zero quantity yields zero",
			item: sales.LineItem{
				SalePrice:       decimal.NewFromInt(10),
				DiscountPercent: decimal.NewFromInt(10),
			},
			expected: "0",
		},
		{
			name: "fractional discount",
			item: sales.LineItem{
				Quantity:        1,
				SalePrice:       decimal.NewFromInt(200),
				DiscountPercent: decimal.NewFromFloat(12.5),
			},
			expected: "175",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.CalculateRevenue(tt.item, sales.Product{})
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got.String())
		})
	}
}

func TestCatalogListPriceStrategy(t *testing.T) {
	s := NewCatalogListPriceStrategy()

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "catalog_list_price", s.Name())
		assert.Equal(t, StrategyTypeRevenue, s.Type())
	})

	t.Run("uses list price instead of sale price", func(t *testing.T) {
		item := sales.LineItem{
			Quantity:  2,
			SalePrice: decimal.NewFromInt(5),
		}
		product := sales.Product{ListPrice: decimal.NewFromInt(20)}

		got := s.CalculateRevenue(item, product)
		assert.True(t, got.Equal(decimal.NewFromInt(40)), "got %s", got.String())
	})

	t.Run("applies the item discount to the list price", func(t *testing.T) {
		item := sales.LineItem{
			Quantity:        1,
			SalePrice:       decimal.NewFromInt(90),
			DiscountPercent: decimal.NewFromInt(50),
		}
		product := sales.Product{ListPrice: decimal.NewFromInt(100)}

		got := s.CalculateRevenue(item, product)
		assert.True(t, got.Equal(decimal.NewFromInt(50)), "got %s", got.String())
	})
}
