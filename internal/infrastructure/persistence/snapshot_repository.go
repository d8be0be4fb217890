package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salesboard/backend/internal/application/analytics"
	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/salesboard/backend/internal/infrastructure/persistence/models"
)

// GormSnapshotRepository implements analytics.SnapshotRepository using GORM.
// Load ordering is deterministic: sellers and records come back in insertion
// order so repeated loads of unchanged data produce identical snapshots.
type GormSnapshotRepository struct {
	db *gorm.DB
}

// NewGormSnapshotRepository creates a new GormSnapshotRepository
func NewGormSnapshotRepository(db *gorm.DB) *GormSnapshotRepository {
	return &GormSnapshotRepository{db: db}
}

// LoadSnapshot loads the complete stored dataset as one snapshot.
func (r *GormSnapshotRepository) LoadSnapshot(ctx context.Context) (*sales.Snapshot, error) {
	var sellerModels []models.SellerModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&sellerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load sellers: %w", err)
	}

	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Order("sku ASC").
		Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var recordModels []models.PurchaseRecordModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("recorded_at ASC, id ASC").
		Find(&recordModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load purchase records: %w", err)
	}

	snapshot := &sales.Snapshot{
		Sellers:         make([]sales.Seller, len(sellerModels)),
		Products:        make([]sales.Product, len(productModels)),
		PurchaseRecords: make([]sales.PurchaseRecord, len(recordModels)),
	}
	for i, m := range sellerModels {
		snapshot.Sellers[i] = m.ToDomain()
	}
	for i, m := range productModels {
		snapshot.Products[i] = m.ToDomain()
	}
	for i, m := range recordModels {
		snapshot.PurchaseRecords[i] = m.ToDomain()
	}
	return snapshot, nil
}

// ReplaceSnapshot atomically replaces the stored dataset with the given
// snapshot. Backs the dataset replacement endpoint and bulk seeding.
func (r *GormSnapshotRepository) ReplaceSnapshot(ctx context.Context, snapshot *sales.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"purchase_record_items", "purchase_records", "products", "sellers"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		sellerModels := make([]models.SellerModel, len(snapshot.Sellers))
		for i, s := range snapshot.Sellers {
			sellerModels[i].FromDomain(s)
		}
		if len(sellerModels) > 0 {
			if err := tx.Create(&sellerModels).Error; err != nil {
				return fmt.Errorf("failed to insert sellers: %w", err)
			}
		}

		productModels := make([]models.ProductModel, len(snapshot.Products))
		for i, p := range snapshot.Products {
			productModels[i].FromDomain(p)
		}
		if len(productModels) > 0 {
			if err := tx.Create(&productModels).Error; err != nil {
				return fmt.Errorf("failed to insert products: %w", err)
			}
		}

		// recordedAt increments per record so load order matches input order
		for i, record := range snapshot.PurchaseRecords {
			var m models.PurchaseRecordModel
			m.FromDomain(record, now.Add(time.Duration(i)*time.Microsecond))
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("failed to insert purchase record: %w", err)
			}
		}
		return nil
	})
}

// Ensure GormSnapshotRepository implements SnapshotRepository
var _ analytics.SnapshotRepository = (*GormSnapshotRepository)(nil)
