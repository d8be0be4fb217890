package strategy

import (
	"fmt"

	domstrategy "github.com/salesboard/backend/internal/domain/sales/strategy"
	"github.com/shopspring/decimal"
)

// NewDefaultRegistry creates a registry with the built-in strategies
// registered and defaults set: discounted_sale_price for revenue and
// profit_rank for bonus.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()

	if err := r.RegisterRevenueStrategy(domstrategy.NewDiscountedSalePriceStrategy()); err != nil {
		return nil, fmt.Errorf("registering revenue strategies: %w", err)
	}
	if err := r.RegisterRevenueStrategy(domstrategy.NewCatalogListPriceStrategy()); err != nil {
		return nil, fmt.Errorf("registering revenue strategies: %w", err)
	}

	if err := r.RegisterBonusStrategy(domstrategy.NewProfitRankBonusStrategy()); err != nil {
		return nil, fmt.Errorf("registering bonus strategies: %w", err)
	}
	if err := r.RegisterBonusStrategy(domstrategy.NewFlatRateBonusStrategy(decimal.NewFromInt(5))); err != nil {
		return nil, fmt.Errorf("registering bonus strategies: %w", err)
	}

	if err := r.SetDefault(domstrategy.StrategyTypeRevenue, "discounted_sale_price"); err != nil {
		return nil, err
	}
	if err := r.SetDefault(domstrategy.StrategyTypeBonus, "profit_rank"); err != nil {
		return nil, err
	}

	return r, nil
}
