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

// CheckoutHandler 结算流程相关的HTTP处理器
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler 创建结算处理器实例
func NewCheckoutHandler(checkoutService service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// setFieldRequest 设置表单字段的请求体
type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// StartCheckout 开启新的结算会话
// POST /api/v1/checkout
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.checkoutService.Start()
	if err != nil {
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// GetCheckout 获取当前会话状态
// GET /api/v1/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.checkoutService.Snapshot()
	if err != nil {
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// SetField 设置表单字段
// PUT /api/v1/checkout/fields
func (h *CheckoutHandler) SetField(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req setFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid request body", reqID, "")
		return
	}

	snapshot, err := h.checkoutService.SetField(req.Field, req.Value)
	if err != nil {
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// NextStep 校验当前步骤并前进
// POST /api/v1/checkout/next
func (h *CheckoutHandler) NextStep(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.checkoutService.Next()
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			// 校验失败时返回带字段错误的快照，方便客户端逐项展示
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(&resp.Response{
				Code:      resp.CodeInvalidParam,
				Message:   "validation failed",
				Data:      snapshot,
				RequestID: reqID,
			})
			return
		}
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// PrevStep 无条件后退一步
// POST /api/v1/checkout/back
func (h *CheckoutHandler) PrevStep(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.checkoutService.Back()
	if err != nil {
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// SubmitOrder 从确认步骤发起模拟支付
// POST /api/v1/checkout/submit
func (h *CheckoutHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	snapshot, err := h.checkoutService.Submit()
	if err != nil {
		h.writeCheckoutError(w, err, reqID)
		return
	}
	resp.OK(w, snapshot, reqID, "")
}

// writeCheckoutError 将结算业务错误映射为HTTP响应
func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, err error, reqID string) {
	switch {
	case errors.Is(err, service.ErrNoCheckoutSession):
		resp.Error(w, http.StatusNotFound, resp.CodeNotFound, "no checkout session", reqID, "")
	case errors.Is(err, service.ErrCartEmpty):
		resp.Error(w, http.StatusConflict, resp.CodeInvalidParam, "cart is empty", reqID, "")
	case errors.Is(err, service.ErrNotReviewStep):
		resp.Error(w, http.StatusConflict, resp.CodeInvalidParam, "order can only be submitted from the review step", reqID, "")
	case errors.Is(err, service.ErrSubmitInFlight):
		resp.Error(w, http.StatusConflict, resp.CodeInvalidParam, "payment already in progress", reqID, "")
	case errors.Is(err, service.ErrCheckoutComplete):
		resp.Error(w, http.StatusConflict, resp.CodeInvalidParam, "checkout already completed", reqID, "")
	case errors.Is(err, service.ErrValidationFailed):
		resp.Error(w, http.StatusUnprocessableEntity, resp.CodeInvalidParam, "validation failed", reqID, "")
	default:
		h.logger.Error("checkout operation failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusInternalServerError, resp.CodeInternalError, "checkout operation failed", reqID, "")
	}
}
