package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// PreferencesHandler 用户偏好相关的HTTP处理器
type PreferencesHandler struct {
	preferencesService service.PreferencesService
	logger             *zap.Logger
}

// NewPreferencesHandler 创建偏好处理器实例
func NewPreferencesHandler(preferencesService service.PreferencesService, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		preferencesService: preferencesService,
		logger:             logger,
	}
}

// GetTheme 获取当前主题
// GET /api/v1/preferences/theme
func (h *PreferencesHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	result := map[string]interface{}{"theme": h.preferencesService.Theme()}
	resp.OK(w, &result, reqID, "")
}

// ToggleTheme 切换主题并持久化
// POST /api/v1/preferences/theme/toggle
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	theme, err := h.preferencesService.ToggleTheme()
	if err != nil {
		h.logger.Error("toggle theme failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusInternalServerError, resp.CodeInternalError, "toggle theme failed", reqID, "")
		return
	}

	result := map[string]interface{}{"theme": theme}
	resp.OK(w, &result, reqID, "")
}
