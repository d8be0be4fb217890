package handler

import (
	"github.com/gin-gonic/gin"

	domstrategy "github.com/salesboard/backend/internal/domain/sales/strategy"
	"github.com/salesboard/backend/internal/infrastructure/strategy"
	"github.com/salesboard/backend/internal/interfaces/http/dto"
)

// StrategyHandler exposes the registered calculation strategies
type StrategyHandler struct {
	BaseHandler
	registry *strategy.Registry
}

// NewStrategyHandler creates a new StrategyHandler
func NewStrategyHandler(registry *strategy.Registry) *StrategyHandler {
	return &StrategyHandler{registry: registry}
}

// RegisterRoutes registers strategy routes
func (h *StrategyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/strategies", h.List)
}

// List returns all registered strategy names and the configured defaults.
func (h *StrategyHandler) List(c *gin.Context) {
	h.Success(c, dto.StrategyListResponse{
		RevenueStrategies: h.registry.ListRevenueStrategies(),
		BonusStrategies:   h.registry.ListBonusStrategies(),
		DefaultRevenue:    h.registry.Default(domstrategy.StrategyTypeRevenue),
		DefaultBonus:      h.registry.Default(domstrategy.StrategyTypeBonus),
	})
}
