package sales

import "github.com/shopspring/decimal"

// LineItem is a single product line within a purchase record.
type LineItem struct {
	SKU             string          `json:"sku"`
	Quantity        int64           `json:"quantity"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	DiscountPercent decimal.Decimal `json:"discount"`
}

// PurchaseRecord is one completed transaction by a seller, containing
// an ordered sequence of line items.
type PurchaseRecord struct {
	SellerID string     `json:"seller_id"`
	Items    []LineItem `json:"items"`
}
