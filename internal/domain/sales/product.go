package sales

import "github.com/shopspring/decimal"

// Product is an immutable catalog record identified by SKU.
// PurchasePrice is the cost of acquiring one unit; ListPrice is the
// catalog selling price, used by list-price revenue strategies.
type Product struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	ListPrice     decimal.Decimal `json:"list_price"`
}
