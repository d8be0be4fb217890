package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salesboard/backend/internal/application/analytics"
	"github.com/salesboard/backend/internal/interfaces/http/dto"
	"github.com/salesboard/backend/internal/interfaces/http/middleware"
)

// ReportHandler serves seller performance reports
type ReportHandler struct {
	BaseHandler
	service *analytics.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(service *analytics.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/seller-performance", h.SellerPerformance)
		reports.POST("/seller-performance", h.AnalyzeSnapshot)
	}
}

// SellerPerformance computes the seller performance report from the stored
// dataset. Strategy names come from query parameters; empty values select
// the registered defaults.
func (h *ReportHandler) SellerPerformance(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	report, err := h.service.SellerPerformance(c.Request.Context(), analytics.ReportRequest{
		RevenueStrategy: query.RevenueStrategy,
		BonusStrategy:   query.BonusStrategy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// AnalyzeSnapshot computes a seller performance report for a caller-supplied
// dataset without touching stored data.
func (h *ReportHandler) AnalyzeSnapshot(c *gin.Context) {
	var req dto.AnalyzeSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := middleware.ValidationMessages(err)
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body: "+strings.Join(messages, "; "))
		return
	}

	report, err := h.service.AnalyzeSnapshot(c.Request.Context(), req.ToDomain(), analytics.ReportRequest{
		RevenueStrategy: req.RevenueStrategy,
		BonusStrategy:   req.BonusStrategy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}
