package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// ViewHandler 顶层视图状态相关的HTTP处理器
type ViewHandler struct {
	viewService service.ViewService
	logger      *zap.Logger
}

// NewViewHandler 创建视图处理器实例
func NewViewHandler(viewService service.ViewService, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{
		viewService: viewService,
		logger:      logger,
	}
}

// navigateRequest 切换视图的请求体
type navigateRequest struct {
	View string `json:"view"`
}

// searchRequest 设置搜索词的请求体
type searchRequest struct {
	Query string `json:"query"`
}

// GetView 获取当前视图和搜索词
// GET /api/v1/view
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	result := map[string]interface{}{
		"view":         h.viewService.Current(),
		"search_query": h.viewService.SearchQuery(),
	}
	resp.OK(w, &result, reqID, "")
}

// Navigate 切换到指定视图
// PUT /api/v1/view
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid request body", reqID, "")
		return
	}

	if err := h.viewService.Navigate(service.View(req.View)); err != nil {
		if errors.Is(err, service.ErrUnknownView) {
			resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "unknown view", reqID, "")
			return
		}
		h.logger.Error("navigate failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusInternalServerError, resp.CodeInternalError, "navigate failed", reqID, "")
		return
	}

	result := map[string]interface{}{"view": h.viewService.Current()}
	resp.OK(w, &result, reqID, "")
}

// SetSearch 设置搜索词并强制回到首页
// PUT /api/v1/view/search
func (h *ViewHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid request body", reqID, "")
		return
	}

	h.viewService.SetSearchQuery(req.Query)

	result := map[string]interface{}{
		"view":         h.viewService.Current(),
		"search_query": h.viewService.SearchQuery(),
	}
	resp.OK(w, &result, reqID, "")
}
