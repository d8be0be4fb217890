package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/salesboard/backend/internal/domain/sales"
)

// SellerModel is the persistence model for the Seller domain entity.
type SellerModel struct {
	ID          string    `gorm:"type:varchar(64);primary_key"`
	FirstName   string    `gorm:"type:varchar(100);not null;default:''"`
	LastName    string    `gorm:"type:varchar(100);not null;default:''"`
	DisplayName string    `gorm:"type:varchar(200);not null;default:''"`
	Position    string    `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SellerModel) TableName() string {
	return "sellers"
}

// ToDomain converts the persistence model to a domain Seller.
func (m *SellerModel) ToDomain() sales.Seller {
	return sales.Seller{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DisplayName: m.DisplayName,
		Position:    m.Position,
	}
}

// FromDomain populates the persistence model from a domain Seller.
func (m *SellerModel) FromDomain(s sales.Seller) {
	m.ID = s.ID
	m.FirstName = s.FirstName
	m.LastName = s.LastName
	m.DisplayName = s.DisplayName
	m.Position = s.Position
}

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	SKU           string          `gorm:"type:varchar(64);primary_key"`
	Name          string          `gorm:"type:varchar(200);not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ListPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product.
func (m *ProductModel) ToDomain() sales.Product {
	return sales.Product{
		SKU:           m.SKU,
		Name:          m.Name,
		PurchasePrice: m.PurchasePrice,
		ListPrice:     m.ListPrice,
	}
}

// FromDomain populates the persistence model from a domain Product.
func (m *ProductModel) FromDomain(p sales.Product) {
	m.SKU = p.SKU
	m.Name = p.Name
	m.PurchasePrice = p.PurchasePrice
	m.ListPrice = p.ListPrice
}

// PurchaseRecordModel is the persistence model for one purchase record.
// Line items are stored in purchase_record_items and ordered by position.
type PurchaseRecordModel struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key"`
	SellerID   string              `gorm:"type:varchar(64);not null;index"`
	RecordedAt time.Time           `gorm:"not null;index"`
	Items      []PurchaseItemModel `gorm:"foreignKey:PurchaseRecordID;references:ID"`
	CreatedAt  time.Time           `gorm:"not null"`
	UpdatedAt  time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseRecordModel) TableName() string {
	return "purchase_records"
}

// ToDomain converts the persistence model to a domain PurchaseRecord.
// Items are expected to be preloaded in position order.
func (m *PurchaseRecordModel) ToDomain() sales.PurchaseRecord {
	items := make([]sales.LineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = item.ToDomain()
	}
	return sales.PurchaseRecord{
		SellerID: m.SellerID,
		Items:    items,
	}
}

// FromDomain populates the persistence model from a domain PurchaseRecord.
// A fresh ID is assigned; item positions preserve the domain item order.
func (m *PurchaseRecordModel) FromDomain(r sales.PurchaseRecord, recordedAt time.Time) {
	m.ID = uuid.New()
	m.SellerID = r.SellerID
	m.RecordedAt = recordedAt
	m.Items = make([]PurchaseItemModel, len(r.Items))
	for i, item := range r.Items {
		m.Items[i] = PurchaseItemModel{
			ID:               uuid.New(),
			PurchaseRecordID: m.ID,
			Position:         i,
			SKU:              item.SKU,
			Quantity:         item.Quantity,
			SalePrice:        item.SalePrice,
			DiscountPercent:  item.DiscountPercent,
		}
	}
}

// PurchaseItemModel is the persistence model for one line item of a
// purchase record.
type PurchaseItemModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	PurchaseRecordID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null;default:0"`
	SKU              string          `gorm:"type:varchar(64);not null;index"`
	Quantity         int64           `gorm:"not null;default:0"`
	SalePrice        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountPercent  decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseItemModel) TableName() string {
	return "purchase_record_items"
}

// ToDomain converts the persistence model to a domain LineItem.
func (m *PurchaseItemModel) ToDomain() sales.LineItem {
	return sales.LineItem{
		SKU:             m.SKU,
		Quantity:        m.Quantity,
		SalePrice:       m.SalePrice,
		DiscountPercent: m.DiscountPercent,
	}
}
