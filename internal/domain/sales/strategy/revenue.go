package strategy

import (
	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// RevenueStrategy computes the monetary revenue attributed to one line item.
// Implementations must be pure: same inputs, same result, no side effects.
type RevenueStrategy interface {
	Strategy
	// CalculateRevenue returns the revenue for the given line item. The
	// catalog product is provided for strategies that price off the catalog
	// rather than the recorded sale price; item-price strategies ignore it.
	CalculateRevenue(item sales.LineItem, product sales.Product) decimal.Decimal
}

// DiscountedSalePriceStrategy is the default revenue policy: the recorded
// sale price times quantity, reduced by the line item's discount percentage.
// The catalog product is ignored; revenue is entirely attributable to the
// price recorded on the sale.
type DiscountedSalePriceStrategy struct {
	BaseStrategy
}

// NewDiscountedSalePriceStrategy creates the default revenue strategy
func NewDiscountedSalePriceStrategy() *DiscountedSalePriceStrategy {
	return &DiscountedSalePriceStrategy{
		BaseStrategy: NewBaseStrategy(
			"discounted_sale_price",
			StrategyTypeRevenue,
			"Revenue is the recorded sale price times quantity, less the item discount",
		),
	}
}

// CalculateRevenue returns salePrice * quantity * (1 - discount/100)
func (s *DiscountedSalePriceStrategy) CalculateRevenue(item sales.LineItem, _ sales.Product) decimal.Decimal {
	return discountedAmount(item.SalePrice, item.Quantity, item.DiscountPercent)
}

// CatalogListPriceStrategy prices every line item off the catalog list
// price instead of the recorded sale price. Useful for measuring sellers
// against list-price targets regardless of negotiated prices.
type CatalogListPriceStrategy struct {
	BaseStrategy
}

// NewCatalogListPriceStrategy creates a catalog list-price revenue strategy
func NewCatalogListPriceStrategy() *CatalogListPriceStrategy {
	return &CatalogListPriceStrategy{
		BaseStrategy: NewBaseStrategy(
			"catalog_list_price",
			StrategyTypeRevenue,
			"Revenue is the catalog list price times quantity, less the item discount",
		),
	}
}

// CalculateRevenue returns listPrice * quantity * (1 - discount/100)
func (s *CatalogListPriceStrategy) CalculateRevenue(item sales.LineItem, product sales.Product) decimal.Decimal {
	return discountedAmount(product.ListPrice, item.Quantity, item.DiscountPercent)
}

var oneHundred = decimal.NewFromInt(100)

// discountedAmount computes unitPrice * quantity * (1 - discountPercent/100)
func discountedAmount(unitPrice decimal.Decimal, quantity int64, discountPercent decimal.Decimal) decimal.Decimal {
	gross := unitPrice.Mul(decimal.NewFromInt(quantity))
	if discountPercent.IsZero() {
		return gross
	}
	multiplier := oneHundred.Sub(discountPercent).Div(oneHundred)
	return gross.Mul(multiplier)
}
