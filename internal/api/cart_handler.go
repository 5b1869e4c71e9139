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

// CartHandler 购物车相关的HTTP处理器
type CartHandler struct {
	cartService    service.CartService
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCartHandler 创建购物车处理器实例
func NewCartHandler(cartService service.CartService, catalogService service.CatalogService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		catalogService: catalogService,
		logger:         logger,
	}
}

// addItemRequest 添加购物车条目的请求体
type addItemRequest struct {
	ProductID int64 `json:"product_id"`
}

// updateItemRequest 修改购物车条目数量的请求体
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车内容
// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	resp.OK(w, h.cartService.Summary(), reqID, "")
}

// AddItem 添加商品到购物车
// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid request body", reqID, "")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			resp.Error(w, http.StatusNotFound, resp.CodeNotFound, "product not found", reqID, "")
			return
		}
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("resolve product failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	h.cartService.AddToCart(product)
	resp.OK(w, h.cartService.Summary(), reqID, "")
}

// UpdateItem 修改条目数量，数量<=0等价于移除
// PUT /api/v1/cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	id, ok := parsePathID(w, r, 5, "invalid product ID", reqID)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, "invalid request body", reqID, "")
		return
	}

	h.cartService.UpdateQuantity(id, req.Quantity)
	resp.OK(w, h.cartService.Summary(), reqID, "")
}

// RemoveItem 移除购物车条目
// DELETE /api/v1/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	id, ok := parsePathID(w, r, 5, "invalid product ID", reqID)
	if !ok {
		return
	}

	h.cartService.RemoveFromCart(id)
	resp.OK(w, h.cartService.Summary(), reqID, "")
}

// ClearCart 清空购物车
// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	h.cartService.ClearCart()
	resp.OK(w, h.cartService.Summary(), reqID, "")
}
