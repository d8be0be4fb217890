package dto

import (
	"github.com/shopspring/decimal"

	"github.com/salesboard/backend/internal/domain/sales"
)

// SellerDTO is the wire shape of one seller in an ad-hoc analysis request.
type SellerDTO struct {
	ID          string `json:"id" binding:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Position    string `json:"position"`
}

// ProductDTO is the wire shape of one product in an ad-hoc analysis request.
type ProductDTO struct {
	SKU           string  `json:"sku" binding:"required"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
	ListPrice     float64 `json:"list_price"`
}

// LineItemDTO is the wire shape of one line item of a purchase record.
type LineItemDTO struct {
	SKU             string  `json:"sku" binding:"required"`
	Quantity        int64   `json:"quantity"`
	SalePrice       float64 `json:"sale_price"`
	DiscountPercent float64 `json:"discount_percent"`
}

// PurchaseRecordDTO is the wire shape of one purchase record.
type PurchaseRecordDTO struct {
	SellerID string        `json:"seller_id" binding:"required"`
	Items    []LineItemDTO `json:"items"`
}

// AnalyzeSnapshotRequest is the body of an ad-hoc analysis request. Strategy
// names are optional; empty names select the registered defaults.
type AnalyzeSnapshotRequest struct {
	Sellers         []SellerDTO         `json:"sellers" binding:"required"`
	Products        []ProductDTO        `json:"products"`
	PurchaseRecords []PurchaseRecordDTO `json:"purchase_records"`
	RevenueStrategy string              `json:"revenue_strategy"`
	BonusStrategy   string              `json:"bonus_strategy"`
}

// ToDomain converts the request body into a domain snapshot.
func (r *AnalyzeSnapshotRequest) ToDomain() *sales.Snapshot {
	return snapshotFromWire(r.Sellers, r.Products, r.PurchaseRecords)
}

// ReplaceDatasetRequest is the body of a dataset replacement request. It
// carries the same snapshot shape as an ad-hoc analysis but no strategy
// selection.
type ReplaceDatasetRequest struct {
	Sellers         []SellerDTO         `json:"sellers" binding:"required"`
	Products        []ProductDTO        `json:"products"`
	PurchaseRecords []PurchaseRecordDTO `json:"purchase_records"`
}

// ToDomain converts the request body into a domain snapshot.
func (r *ReplaceDatasetRequest) ToDomain() *sales.Snapshot {
	return snapshotFromWire(r.Sellers, r.Products, r.PurchaseRecords)
}

// DatasetSummary reports the size of a stored dataset.
type DatasetSummary struct {
	Sellers         int `json:"sellers"`
	Products        int `json:"products"`
	PurchaseRecords int `json:"purchase_records"`
}

// snapshotFromWire builds a domain snapshot from wire DTOs. Products and
// purchase records become empty (not nil) slices when absent so that
// validation treats a body without them as empty datasets.
func snapshotFromWire(sellers []SellerDTO, products []ProductDTO, records []PurchaseRecordDTO) *sales.Snapshot {
	snapshot := &sales.Snapshot{
		Sellers:         make([]sales.Seller, len(sellers)),
		Products:        make([]sales.Product, len(products)),
		PurchaseRecords: make([]sales.PurchaseRecord, len(records)),
	}
	for i, s := range sellers {
		snapshot.Sellers[i] = sales.Seller{
			ID:          s.ID,
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			DisplayName: s.DisplayName,
			Position:    s.Position,
		}
	}
	for i, p := range products {
		snapshot.Products[i] = sales.Product{
			SKU:           p.SKU,
			Name:          p.Name,
			PurchasePrice: decimal.NewFromFloat(p.PurchasePrice),
			ListPrice:     decimal.NewFromFloat(p.ListPrice),
		}
	}
	for i, rec := range records {
		items := make([]sales.LineItem, len(rec.Items))
		for j, item := range rec.Items {
			items[j] = sales.LineItem{
				SKU:             item.SKU,
				Quantity:        item.Quantity,
				SalePrice:       decimal.NewFromFloat(item.SalePrice),
				DiscountPercent: decimal.NewFromFloat(item.DiscountPercent),
			}
		}
		snapshot.PurchaseRecords[i] = sales.PurchaseRecord{
			SellerID: rec.SellerID,
			Items:    items,
		}
	}
	return snapshot
}

// ReportQuery holds the strategy selection query parameters for stored-data
// report requests.
type ReportQuery struct {
	RevenueStrategy string `form:"revenue_strategy"`
	BonusStrategy   string `form:"bonus_strategy"`
}

// StrategyListResponse lists the registered strategy names and the defaults.
type StrategyListResponse struct {
	RevenueStrategies []string `json:"revenue_strategies"`
	BonusStrategies   []string `json:"bonus_strategies"`
	DefaultRevenue    string   `json:"default_revenue"`
	DefaultBonus      string   `json:"default_bonus"`
}
