package analytics

import (
	"fmt"
	"sort"

	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/salesboard/backend/internal/domain/sales/strategy"
	"github.com/salesboard/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// UnknownProductName is reported for a top-product entry whose SKU can no
// longer be resolved against the product index.
const UnknownProductName = "unknown product"

// topProductLimit caps the number of top products reported per seller.
const topProductLimit = 10

// Options bundles the two strategies injected into an analysis run.
// Both are required; validation fails with ErrInvalidOptions otherwise.
type Options struct {
	Revenue strategy.RevenueStrategy
	Bonus   strategy.BonusStrategy
}

// TopProductEntry is one product line in a seller's top-products list.
type TopProductEntry struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SellerReportEntry is the externally visible, immutable projection of one
// seller's performance. Monetary fields are rounded to 2 decimal places.
// The report sequence is ordered by profit descending; the order is itself
// meaningful (rank order).
type SellerReportEntry struct {
	SellerID    string            `json:"seller_id"`
	Name        string            `json:"name"`
	Revenue     float64           `json:"revenue"`
	Profit      float64           `json:"profit"`
	SalesCount  int64             `json:"sales_count"`
	TopProducts []TopProductEntry `json:"top_products"`
	Bonus       float64           `json:"bonus"`
}

// sellerAccumulator is the internal mutable state for one seller during a
// run. It is never exposed; the final report is built by explicit projection.
type sellerAccumulator struct {
	sellerID   string
	name       string
	salesCount int64
	revenue    decimal.Decimal
	cost       decimal.Decimal
	profit     decimal.Decimal
	soldBySKU  map[string]*productSales
	skuOrder   []string // first-encountered SKU order, used for tie-breaking
}

// productSales tracks quantity and revenue attributed to one SKU for one seller.
type productSales struct {
	quantity int64
	revenue  decimal.Decimal
}

// Analyze runs the full aggregation pipeline over one snapshot: validation,
// indexing, per-record accumulation, ranking, bonus assignment and top-product
// extraction. It either returns a complete report or an error before any
// partial result is observable. Inputs are treated as read-only; repeated
// calls with identical inputs yield identical output.
func Analyze(snapshot *sales.Snapshot, opts Options) ([]SellerReportEntry, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	accumulators, sellerIndex, productIndex := buildIndexes(snapshot)
	aggregate(snapshot.PurchaseRecords, sellerIndex, productIndex, opts.Revenue)
	return rankAndProject(accumulators, productIndex, opts.Bonus), nil
}

// validateOptions confirms both strategies are present before any processing.
func validateOptions(opts Options) error {
	if opts.Revenue == nil {
		return fmt.Errorf("%w: revenue strategy is required", shared.ErrInvalidOptions)
	}
	if opts.Bonus == nil {
		return fmt.Errorf("%w: bonus strategy is required", shared.ErrInvalidOptions)
	}
	return nil
}

// buildIndexes creates one fresh accumulator per seller plus the two lookup
// maps, in one pass over each input collection. Later duplicate keys
// overwrite earlier ones; this is accepted behavior, not an error.
func buildIndexes(snapshot *sales.Snapshot) ([]*sellerAccumulator, map[string]*sellerAccumulator, map[string]sales.Product) {
	accumulators := make([]*sellerAccumulator, 0, len(snapshot.Sellers))
	sellerIndex := make(map[string]*sellerAccumulator, len(snapshot.Sellers))
	for _, seller := range snapshot.Sellers {
		acc := &sellerAccumulator{
			sellerID:  seller.ID,
			name:      seller.Name(),
			soldBySKU: make(map[string]*productSales),
		}
		if existing, ok := sellerIndex[seller.ID]; ok {
			// Duplicate seller ID: the later record wins in the index, and the
			// earlier accumulator is replaced in the output sequence too.
			for i, a := range accumulators {
				if a == existing {
					accumulators[i] = acc
					break
				}
			}
		} else {
			accumulators = append(accumulators, acc)
		}
		sellerIndex[seller.ID] = acc
	}

	productIndex := make(map[string]sales.Product, len(snapshot.Products))
	for _, product := range snapshot.Products {
		productIndex[product.SKU] = product
	}

	return accumulators, sellerIndex, productIndex
}

// aggregate folds the purchase records into the per-seller accumulators.
// A record referencing an unknown seller is skipped entirely; a line item
// referencing an unknown SKU is skipped while the rest of its record is
// still processed. Unresolved references never raise.
func aggregate(records []sales.PurchaseRecord, sellerIndex map[string]*sellerAccumulator, productIndex map[string]sales.Product, revenue strategy.RevenueStrategy) {
	for _, record := range records {
		acc, ok := sellerIndex[record.SellerID]
		if !ok {
			continue
		}
		acc.salesCount++

		for _, item := range record.Items {
			product, ok := productIndex[item.SKU]
			if !ok {
				continue
			}

			itemCost := product.PurchasePrice.Mul(decimal.NewFromInt(item.Quantity))
			itemRevenue := revenue.CalculateRevenue(item, product)
			itemProfit := itemRevenue.Sub(itemCost)

			acc.revenue = acc.revenue.Add(itemRevenue)
			acc.cost = acc.cost.Add(itemCost)
			acc.profit = acc.profit.Add(itemProfit)

			sold, ok := acc.soldBySKU[item.SKU]
			if !ok {
				sold = &productSales{}
				acc.soldBySKU[item.SKU] = sold
				acc.skuOrder = append(acc.skuOrder, item.SKU)
			}
			sold.quantity += item.Quantity
			sold.revenue = sold.revenue.Add(itemRevenue)
		}
	}
}

// rankAndProject sorts the accumulators by profit descending (stable on
// ties), assigns rank-based bonuses, derives each seller's top products and
// projects everything into the immutable report shape.
func rankAndProject(accumulators []*sellerAccumulator, productIndex map[string]sales.Product, bonus strategy.BonusStrategy) []SellerReportEntry {
	sort.SliceStable(accumulators, func(i, j int) bool {
		return accumulators[i].profit.GreaterThan(accumulators[j].profit)
	})

	total := len(accumulators)
	report := make([]SellerReportEntry, total)
	for rank, acc := range accumulators {
		pct := bonus.CalculateBonus(rank, total, sales.Performance{
			SellerID:   acc.sellerID,
			Name:       acc.name,
			SalesCount: acc.salesCount,
			Revenue:    acc.revenue,
			Cost:       acc.cost,
			Profit:     acc.profit,
		})
		bonusAmount := acc.profit.Mul(pct).Div(oneHundred)

		report[rank] = SellerReportEntry{
			SellerID:    acc.sellerID,
			Name:        acc.name,
			Revenue:     toRounded(acc.revenue),
			Profit:      toRounded(acc.profit),
			SalesCount:  acc.salesCount,
			TopProducts: topProducts(acc, productIndex),
			Bonus:       toRounded(bonusAmount),
		}
	}
	return report
}

// topProducts derives a seller's top-product list: quantity descending,
// ties kept in first-encountered SKU order, truncated to topProductLimit.
func topProducts(acc *sellerAccumulator, productIndex map[string]sales.Product) []TopProductEntry {
	entries := make([]TopProductEntry, 0, len(acc.skuOrder))
	for _, sku := range acc.skuOrder {
		sold := acc.soldBySKU[sku]
		name := UnknownProductName
		if product, ok := productIndex[sku]; ok {
			name = product.Name
		}
		entries = append(entries, TopProductEntry{
			SKU:      sku,
			Name:     name,
			Quantity: sold.quantity,
			Revenue:  toRounded(sold.revenue),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Quantity > entries[j].Quantity
	})

	if len(entries) > topProductLimit {
		entries = entries[:topProductLimit]
	}
	return entries
}

var oneHundred = decimal.NewFromInt(100)

// toRounded rounds a decimal to 2 places and converts it to float64 for the
// externally visible report.
func toRounded(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
