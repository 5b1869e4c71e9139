package api

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// NotificationHandler 通知队列相关的HTTP处理器
type NotificationHandler struct {
	notificationService service.NotificationService
	logger              *zap.Logger
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notificationService service.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger,
	}
}

// ListNotifications 获取当前可见的通知
// GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	resp.OK(w, h.notificationService.Active(), reqID, "")
}

// DismissNotification 撤销一条通知
// DELETE /api/v1/notifications/{id}
func (h *NotificationHandler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 5 || parts[4] == "" {
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid notification ID", reqID, "")
		return
	}

	h.notificationService.Dismiss(parts[4])
	resp.OK(w, h.notificationService.Active(), reqID, "")
}
