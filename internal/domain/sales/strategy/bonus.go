package strategy

import (
	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// BonusStrategy computes a bonus PERCENTAGE for a seller from its zero-based
// rank in the profit-sorted sequence. The pipeline multiplies the returned
// percentage by the seller's profit and divides by 100; strategies never
// return a final amount directly.
type BonusStrategy interface {
	Strategy
	// CalculateBonus returns the bonus percentage for the seller at the given
	// rank. total is the number of ranked sellers; perf carries the seller's
	// accumulated totals for strategies that depend on them.
	CalculateBonus(rank, total int, perf sales.Performance) decimal.Decimal
}

// ProfitRankBonusStrategy is the default bonus policy:
// rank 0 gets 15%, ranks 1-2 get 10%, the last rank gets 0%, everyone else 5%.
// The rank-0 branch is checked first, so a sole seller (rank 0 is also the
// last rank) receives the top percentage.
type ProfitRankBonusStrategy struct {
	BaseStrategy
}

// NewProfitRankBonusStrategy creates the default bonus strategy
func NewProfitRankBonusStrategy() *ProfitRankBonusStrategy {
	return &ProfitRankBonusStrategy{
		BaseStrategy: NewBaseStrategy(
			"profit_rank",
			StrategyTypeBonus,
			"Bonus percentage by profit rank: 15% for first, 10% for second and third, 0% for last, 5% otherwise",
		),
	}
}

// CalculateBonus returns the rank-based bonus percentage
func (s *ProfitRankBonusStrategy) CalculateBonus(rank, total int, _ sales.Performance) decimal.Decimal {
	switch {
	case rank == 0:
		return decimal.NewFromInt(15)
	case rank == 1 || rank == 2:
		return decimal.NewFromInt(10)
	case rank == total-1:
		return decimal.Zero
	default:
		return decimal.NewFromInt(5)
	}
}

// FlatRateBonusStrategy awards the same percentage to every seller
// regardless of rank.
type FlatRateBonusStrategy struct {
	BaseStrategy
	rate decimal.Decimal
}

// NewFlatRateBonusStrategy creates a flat-rate bonus strategy with the given
// percentage
func NewFlatRateBonusStrategy(rate decimal.Decimal) *FlatRateBonusStrategy {
	return &FlatRateBonusStrategy{
		BaseStrategy: NewBaseStrategy(
			"flat_rate",
			StrategyTypeBonus,
			"Every seller receives the same bonus percentage",
		),
		rate: rate,
	}
}

// CalculateBonus returns the configured flat percentage
func (s *FlatRateBonusStrategy) CalculateBonus(_, _ int, _ sales.Performance) decimal.Decimal {
	return s.rate
}
