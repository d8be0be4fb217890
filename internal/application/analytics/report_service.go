package analytics

import (
	"context"
	"time"

	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/salesboard/backend/internal/domain/sales/strategy"
	"go.uber.org/zap"
)

// SnapshotRepository stores and loads one complete input snapshot.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context) (*sales.Snapshot, error)
	ReplaceSnapshot(ctx context.Context, snapshot *sales.Snapshot) error
}

// StrategyProvider resolves strategies by name. An empty name resolves to
// the default strategy for that type.
type StrategyProvider interface {
	RevenueStrategy(name string) (strategy.RevenueStrategy, error)
	BonusStrategy(name string) (strategy.BonusStrategy, error)
}

// ReportCache stores computed reports keyed by strategy selection. A cache
// is an optimization only; misses and errors fall through to recomputation.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]SellerReportEntry, bool)
	Set(ctx context.Context, key string, entries []SellerReportEntry, ttl time.Duration)
	Invalidate(ctx context.Context) error
}

// ReportRequest selects the strategies for one report run. Empty names
// select the registered defaults.
type ReportRequest struct {
	RevenueStrategy string
	BonusStrategy   string
}

// ReportService provides application-level seller performance reporting.
type ReportService struct {
	snapshots  SnapshotRepository
	strategies StrategyProvider
	cache      ReportCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewReportService creates a new ReportService. cache may be nil to disable
// report caching.
func NewReportService(
	snapshots SnapshotRepository,
	strategies StrategyProvider,
	cache ReportCache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		snapshots:  snapshots,
		strategies: strategies,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// SellerPerformance loads the stored snapshot and runs the analysis pipeline
// with the requested strategies, consulting the report cache first.
func (s *ReportService) SellerPerformance(ctx context.Context, req ReportRequest) ([]SellerReportEntry, error) {
	opts, err := s.resolveOptions(req)
	if err != nil {
		return nil, err
	}

	cacheKey := "seller-performance:" + opts.Revenue.Name() + ":" + opts.Bonus.Name()
	if s.cache != nil {
		if entries, ok := s.cache.Get(ctx, cacheKey); ok {
			s.logger.Debug("Seller performance report served from cache",
				zap.String("cache_key", cacheKey),
			)
			return entries, nil
		}
	}

	snapshot, err := s.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := Analyze(snapshot, opts)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, entries, s.cacheTTL)
	}

	s.logger.Info("Seller performance report computed",
		zap.Int("sellers", len(entries)),
		zap.Int("purchase_records", len(snapshot.PurchaseRecords)),
		zap.String("revenue_strategy", opts.Revenue.Name()),
		zap.String("bonus_strategy", opts.Bonus.Name()),
	)

	return entries, nil
}

// AnalyzeSnapshot runs the analysis pipeline over a caller-supplied snapshot
// with the requested strategies. Results are not cached: ad-hoc snapshots
// have no stable identity.
func (s *ReportService) AnalyzeSnapshot(ctx context.Context, snapshot *sales.Snapshot, req ReportRequest) ([]SellerReportEntry, error) {
	opts, err := s.resolveOptions(req)
	if err != nil {
		return nil, err
	}

	entries, err := Analyze(snapshot, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Ad-hoc seller performance analysis completed",
		zap.Int("sellers", len(entries)),
		zap.String("revenue_strategy", opts.Revenue.Name()),
		zap.String("bonus_strategy", opts.Bonus.Name()),
	)

	return entries, nil
}

// ReplaceDataset validates and stores a new snapshot as the dataset for
// subsequent stored-data reports, dropping any cached reports computed from
// the previous dataset.
func (s *ReportService) ReplaceDataset(ctx context.Context, snapshot *sales.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	if err := s.snapshots.ReplaceSnapshot(ctx, snapshot); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("Failed to invalidate report cache after dataset replacement", zap.Error(err))
		}
	}

	s.logger.Info("Dataset replaced",
		zap.Int("sellers", len(snapshot.Sellers)),
		zap.Int("products", len(snapshot.Products)),
		zap.Int("purchase_records", len(snapshot.PurchaseRecords)),
	)

	return nil
}

// resolveOptions turns strategy names into concrete strategies.
func (s *ReportService) resolveOptions(req ReportRequest) (Options, error) {
	revenue, err := s.strategies.RevenueStrategy(req.RevenueStrategy)
	if err != nil {
		return Options{}, err
	}
	bonus, err := s.strategies.BonusStrategy(req.BonusStrategy)
	if err != nil {
		return Options{}, err
	}
	return Options{Revenue: revenue, Bonus: bonus}, nil
}
