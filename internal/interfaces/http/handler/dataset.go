package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/salesboard/backend/internal/application/analytics"
	"github.com/salesboard/backend/internal/interfaces/http/dto"
	"github.com/salesboard/backend/internal/interfaces/http/middleware"
)

// DatasetHandler manages the stored dataset behind stored-data reports
type DatasetHandler struct {
	BaseHandler
	service *analytics.ReportService
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(service *analytics.ReportService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// RegisterRoutes registers dataset routes
func (h *DatasetHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/datasets", h.ReplaceDataset)
}

// ReplaceDataset replaces the stored dataset with the request body. Cached
// reports computed from the previous dataset are dropped.
func (h *DatasetHandler) ReplaceDataset(c *gin.Context) {
	var req dto.ReplaceDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		messages := middleware.ValidationMessages(err)
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body: "+strings.Join(messages, "; "))
		return
	}

	if err := h.service.ReplaceDataset(c.Request.Context(), req.ToDomain()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, dto.DatasetSummary{
		Sellers:         len(req.Sellers),
		Products:        len(req.Products),
		PurchaseRecords: len(req.PurchaseRecords),
	})
}
