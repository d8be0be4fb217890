package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/salesboard/backend/internal/domain/sales/strategy"
	"github.com/salesboard/backend/internal/domain/shared"
)

type fakeSnapshotRepository struct {
	snapshot *sales.Snapshot
	err      error
	loads    int
	replaces int
}

func (f *fakeSnapshotRepository) LoadSnapshot(ctx context.Context) (*sales.Snapshot, error) {
	f.loads++
	return f.snapshot, f.err
}

func (f *fakeSnapshotRepository) ReplaceSnapshot(ctx context.Context, snapshot *sales.Snapshot) error {
	if f.err != nil {
		return f.err
	}
	f.replaces++
	f.snapshot = snapshot
	return nil
}

type fakeStrategyProvider struct{}

func (fakeStrategyProvider) RevenueStrategy(name string) (strategy.RevenueStrategy, error) {
	switch name {
	case "", "discounted_sale_price":
		return strategy.NewDiscountedSalePriceStrategy(), nil
	default:
		return nil, shared.ErrNotFound
	}
}

func (fakeStrategyProvider) BonusStrategy(name string) (strategy.BonusStrategy, error) {
	switch name {
	case "", "profit_rank":
		return strategy.NewProfitRankBonusStrategy(), nil
	default:
		return nil, shared.ErrNotFound
	}
}

type fakeReportCache struct {
	entries       map[string][]SellerReportEntry
	sets          int
	invalidations int
}

func newFakeReportCache() *fakeReportCache {
	return &fakeReportCache{entries: make(map[string][]SellerReportEntry)}
}

func (f *fakeReportCache) Get(ctx context.Context, key string) ([]SellerReportEntry, bool) {
	entries, ok := f.entries[key]
	return entries, ok
}

func (f *fakeReportCache) Set(ctx context.Context, key string, entries []SellerReportEntry, ttl time.Duration) {
	f.entries[key] = entries
	f.sets++
}

func (f *fakeReportCache) Invalidate(ctx context.Context) error {
	f.entries = make(map[string][]SellerReportEntry)
	f.invalidations++
	return nil
}

func serviceSnapshot() *sales.Snapshot {
	return &sales.Snapshot{
		Sellers: []sales.Seller{{ID: "s1", FirstName: "Ada"}},
		Products: []sales.Product{
			{SKU: "p1", Name: "Widget", PurchasePrice: decimal.NewFromInt(10)},
		},
		PurchaseRecords: []sales.PurchaseRecord{
			{
				SellerID: "s1",
				Items: []sales.LineItem{
					{SKU: "p1", Quantity: 2, SalePrice: decimal.NewFromInt(25), DiscountPercent: decimal.NewFromInt(20)},
				},
			},
		},
	}
}

func TestReportServiceSellerPerformance(t *testing.T) {
	t.Run("computes report from stored snapshot", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		svc := NewReportService(repo, fakeStrategyProvider{}, nil, 0, zap.NewNop())

		report, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, 40.0, report[0].Revenue)
		assert.Equal(t, 1, repo.loads)
	})

	t.Run("caches computed report", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		cache := newFakeReportCache()
		svc := NewReportService(repo, fakeStrategyProvider{}, cache, time.Minute, zap.NewNop())

		first, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.NoError(t, err)
		second, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, repo.loads, "second call should hit the cache")
		assert.Equal(t, 1, cache.sets)
	})

	t.Run("unknown strategy name fails before loading data", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		svc := NewReportService(repo, fakeStrategyProvider{}, nil, 0, zap.NewNop())

		_, err := svc.SellerPerformance(context.Background(), ReportRequest{RevenueStrategy: "bogus"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Equal(t, 0, repo.loads)
	})

	t.Run("repository errors propagate", func(t *testing.T) {
		repo := &fakeSnapshotRepository{err: errors.New("connection refused")}
		svc := NewReportService(repo, fakeStrategyProvider{}, nil, 0, zap.NewNop())

		_, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.Error(t, err)
	})
}

func TestReportServiceReplaceDataset(t *testing.T) {
	t.Run("stores snapshot and drops cached reports", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		cache := newFakeReportCache()
		svc := NewReportService(repo, fakeStrategyProvider{}, cache, time.Minute, zap.NewNop())

		_, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.NoError(t, err)
		require.Equal(t, 1, cache.sets)

		replacement := serviceSnapshot()
		replacement.Sellers = append(replacement.Sellers, sales.Seller{ID: "s2", FirstName: "Grace"})
		require.NoError(t, svc.ReplaceDataset(context.Background(), replacement))

		assert.Equal(t, 1, repo.replaces)
		assert.Equal(t, 1, cache.invalidations)
		assert.Empty(t, cache.entries)

		report, err := svc.SellerPerformance(context.Background(), ReportRequest{})
		require.NoError(t, err)
		assert.Len(t, report, 2)
	})

	t.Run("invalid snapshot is rejected before any write", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		svc := NewReportService(repo, fakeStrategyProvider{}, nil, 0, zap.NewNop())

		err := svc.ReplaceDataset(context.Background(), &sales.Snapshot{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		assert.Equal(t, 0, repo.replaces)
	})
}

func TestReportServiceAnalyzeSnapshot(t *testing.T) {
	t.Run("ad-hoc snapshots bypass the cache", func(t *testing.T) {
		repo := &fakeSnapshotRepository{snapshot: serviceSnapshot()}
		cache := newFakeReportCache()
		svc := NewReportService(repo, fakeStrategyProvider{}, cache, time.Minute, zap.NewNop())

		report, err := svc.AnalyzeSnapshot(context.Background(), serviceSnapshot(), ReportRequest{})
		require.NoError(t, err)
		require.Len(t, report, 1)
		assert.Equal(t, 0, repo.loads)
		assert.Equal(t, 0, cache.sets)
	})

	t.Run("invalid snapshot fails", func(t *testing.T) {
		svc := NewReportService(&fakeSnapshotRepository{}, fakeStrategyProvider{}, nil, 0, zap.NewNop())

		_, err := svc.AnalyzeSnapshot(context.Background(), &sales.Snapshot{}, ReportRequest{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}
