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

// FavoritesHandler 收藏列表相关的HTTP处理器
type FavoritesHandler struct {
	favoritesService service.FavoritesService
	catalogService   service.CatalogService
	logger           *zap.Logger
}

// NewFavoritesHandler 创建收藏处理器实例
func NewFavoritesHandler(favoritesService service.FavoritesService, catalogService service.CatalogService, logger *zap.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		catalogService:   catalogService,
		logger:           logger,
	}
}

// addFavoriteRequest 收藏商品的请求体
type addFavoriteRequest struct {
	ProductID int64 `json:"product_id"`
}

// ListFavorites 获取收藏列表
// GET /api/v1/favorites
func (h *FavoritesHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())
	h.writeFavorites(w, reqID)
}

// writeFavorites 写出统一的收藏列表响应体
func (h *FavoritesHandler) writeFavorites(w http.ResponseWriter, reqID string) {
	result := map[string]interface{}{
		"favorites": h.favoritesService.List(),
		"total":     h.favoritesService.Count(),
	}
	resp.OK(w, &result, reqID, "")
}

// AddFavorite 收藏商品，重复收藏为空操作
// POST /api/v1/favorites
func (h *FavoritesHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	var req addFavoriteRequest
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

	h.favoritesService.AddToFavorites(product)
	h.writeFavorites(w, reqID)
}

// CheckFavorite 查询商品是否已收藏
// GET /api/v1/favorites/{id}
func (h *FavoritesHandler) CheckFavorite(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	id, ok := parsePathID(w, r, 4, "invalid product ID", reqID)
	if !ok {
		return
	}

	result := map[string]interface{}{
		"product_id":  id,
		"is_favorite": h.favoritesService.IsFavorite(id),
	}
	resp.OK(w, &result, reqID, "")
}

// RemoveFavorite 取消收藏，未收藏时为空操作
// DELETE /api/v1/favorites/{id}
func (h *FavoritesHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	id, ok := parsePathID(w, r, 4, "invalid product ID", reqID)
	if !ok {
		return
	}

	h.favoritesService.RemoveFromFavorites(id)
	h.writeFavorites(w, reqID)
}
