package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// StatsHandler 统计仪表盘相关的HTTP处理器
type StatsHandler struct {
	statsService service.StatsService
	logger       *zap.Logger
}

// NewStatsHandler 创建统计处理器实例
func NewStatsHandler(statsService service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetStats 获取仪表盘统计快照
// GET /api/v1/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.statsService.Snapshot(r.Context())
	if err != nil {
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("get stats failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	resp.OK(w, snapshot, reqID, "")
}
