package sales

import (
	"fmt"

	"github.com/salesboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Snapshot is one complete in-memory input bundle for a single analysis run.
// All three collections must be present; only the sellers collection must be
// non-empty. Products and purchase records may legitimately be empty (a new
// tenant with no catalog or no trading history yet).
type Snapshot struct {
	Sellers         []Seller
	Products        []Product
	PurchaseRecords []PurchaseRecord
}

// Validate checks the structural validity of the snapshot before any
// computation proceeds. It is a pure precondition gate: no state is touched.
func (s *Snapshot) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: snapshot is nil", shared.ErrInvalidInput)
	}
	if s.Sellers == nil {
		return fmt.Errorf("%w: sellers collection is missing", shared.ErrInvalidInput)
	}
	if len(s.Sellers) == 0 {
		return fmt.Errorf("%w: sellers collection is empty", shared.ErrInvalidInput)
	}
	if s.Products == nil {
		return fmt.Errorf("%w: products collection is missing", shared.ErrInvalidInput)
	}
	if s.PurchaseRecords == nil {
		return fmt.Errorf("%w: purchase records collection is missing", shared.ErrInvalidInput)
	}
	return nil
}

// Performance carries a seller's accumulated totals into strategy
// callbacks. It is a read-only projection of the internal accumulator;
// mutating it has no effect on the pipeline.
type Performance struct {
	SellerID   string
	Name       string
	SalesCount int64
	Revenue    decimal.Decimal
	Cost       decimal.Decimal
	Profit     decimal.Decimal
}
