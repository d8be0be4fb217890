package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salesboard/backend/internal/application/analytics"
	"github.com/salesboard/backend/internal/domain/sales"
	"github.com/salesboard/backend/internal/infrastructure/strategy"
	"github.com/salesboard/backend/internal/interfaces/http/dto"
)

type stubSnapshotRepository struct {
	snapshot *sales.Snapshot
	err      error
}

func (s *stubSnapshotRepository) LoadSnapshot(ctx context.Context) (*sales.Snapshot, error) {
	return s.snapshot, s.err
}

func (s *stubSnapshotRepository) ReplaceSnapshot(ctx context.Context, snapshot *sales.Snapshot) error {
	if s.err != nil {
		return s.err
	}
	s.snapshot = snapshot
	return nil
}

func storedSnapshot() *sales.Snapshot {
	return &sales.Snapshot{
		Sellers: []sales.Seller{{ID: "s1", FirstName: "Ada", LastName: "Lovelace"}},
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

func setupReportRouter(t *testing.T, repo analytics.SnapshotRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := strategy.NewDefaultRegistry()
	require.NoError(t, err)

	service := analytics.NewReportService(repo, registry, nil, 0, zap.NewNop())

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewReportHandler(service).RegisterRoutes(api)
	return engine
}

func decodeResponse(t *testing.T, body *bytes.Buffer) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestReportHandler_SellerPerformance(t *testing.T) {
	t.Run("returns report from stored data", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{snapshot: storedSnapshot()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/seller-performance", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		require.True(t, resp.Success)

		entries, ok := resp.Data.([]interface{})
		require.True(t, ok)
		require.Len(t, entries, 1)

		entry := entries[0].(map[string]interface{})
		assert.Equal(t, "s1", entry["seller_id"])
		assert.Equal(t, "Ada Lovelace", entry["name"])
		assert.Equal(t, 40.0, entry["revenue"])
		assert.Equal(t, 20.0, entry["profit"])
		assert.Equal(t, 3.0, entry["bonus"])
	})

	t.Run("unknown strategy name returns 404", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{snapshot: storedSnapshot()})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/seller-performance?revenue_strategy=bogus", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeResponse(t, w.Body)
		require.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("empty stored dataset returns 400", func(t *testing.T) {
		empty := &sales.Snapshot{
			Sellers:         []sales.Seller{},
			Products:        []sales.Product{},
			PurchaseRecords: []sales.PurchaseRecord{},
		}
		engine := setupReportRouter(t, &stubSnapshotRepository{snapshot: empty})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/seller-performance", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	})
}

func TestReportHandler_AnalyzeSnapshot(t *testing.T) {
	t.Run("analyzes posted dataset", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{})

		body := `{
			"sellers": [{"id": "s1", "first_name": "Ada", "last_name": "Lovelace"}],
			"products": [{"sku": "p1", "name": "Widget", "purchase_price": 10}],
			"purchase_records": [{
				"seller_id": "s1",
				"items": [{"sku": "p1", "quantity": 2, "sale_price": 25, "discount_percent": 20}]
			}]
		}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/seller-performance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		require.True(t, resp.Success)

		entries := resp.Data.([]interface{})
		require.Len(t, entries, 1)
		entry := entries[0].(map[string]interface{})
		assert.Equal(t, 40.0, entry["revenue"])
		assert.Equal(t, float64(1), entry["sales_count"])
	})

	t.Run("body without products or records analyzes against empty datasets", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{})

		body := `{"sellers": [{"id": "s1", "first_name": "Ada"}]}`

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/seller-performance", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w.Body)
		entries := resp.Data.([]interface{})
		require.Len(t, entries, 1)
		entry := entries[0].(map[string]interface{})
		assert.Equal(t, 0.0, entry["revenue"])
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/seller-performance", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w.Body)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
	})

	t.Run("missing sellers returns 400", func(t *testing.T) {
		engine := setupReportRouter(t, &stubSnapshotRepository{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/seller-performance", bytes.NewBufferString(`{"products": []}`))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestStrategyHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry, err := strategy.NewDefaultRegistry()
	require.NoError(t, err)

	engine := gin.New()
	api := engine.Group("/api/v1")
	NewStrategyHandler(registry).RegisterRoutes(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/strategies", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w.Body)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "discounted_sale_price", data["default_revenue"])
	assert.Equal(t, "profit_rank", data["default_bonus"])
	assert.Len(t, data["revenue_strategies"], 2)
	assert.Len(t, data["bonus_strategies"], 2)
}
