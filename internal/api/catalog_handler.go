// Package api 提供HTTP API处理器实现。
// API层负责处理HTTP请求/响应，进行数据验证和格式转换。
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/middleware"
	"github.com/MorseWayne/mercado_shop/internal/resp"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// CatalogHandler 商品目录相关的HTTP处理器
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler 创建目录处理器实例
func NewCatalogHandler(catalogService service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProducts 获取商品列表
// GET /api/v1/products?q=camisa&category=electronics&min_price=10&max_price=500&min_rating=4&sort=asc
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	criteria, err := parseFilterCriteria(r)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, err.Error(), reqID, "")
		return
	}

	products, err := h.catalogService.ListProducts(r.Context(), criteria)
	if err != nil {
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("list products failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	result := map[string]interface{}{
		"products": products,
		"total":    len(products),
	}
	resp.OK(w, &result, reqID, "")
}

// GetProduct 获取商品详情
// GET /api/v1/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	id, ok := parsePathID(w, r, 4, "invalid product ID", reqID)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			resp.Error(w, http.StatusNotFound, resp.CodeNotFound, "product not found", reqID, "")
			return
		}
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("get product failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	resp.OK(w, product, reqID, "")
}

// ListCategories 获取全部分类
// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	categories, err := h.catalogService.Categories(r.Context())
	if err != nil {
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("list categories failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	resp.OK(w, categories, reqID, "")
}

// GetCatalogStats 获取目录统计
// GET /api/v1/products/stats
func (h *CatalogHandler) GetCatalogStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.RequestIDFromContext(r.Context())

	stats, err := h.catalogService.Stats(r.Context())
	if err != nil {
		if middleware.HandleTimeout(w, r) {
			return
		}
		h.logger.Error("get catalog stats failed", zap.String("request_id", reqID), zap.Error(err))
		resp.Error(w, http.StatusBadGateway, resp.CodeInternalError, "catalog unavailable", reqID, "")
		return
	}

	resp.OK(w, stats, reqID, "")
}

// parseFilterCriteria 从查询参数解析过滤条件
func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, error) {
	query := r.URL.Query()
	criteria := domain.FilterCriteria{
		Query:    query.Get("q"),
		Category: query.Get("category"),
	}

	if v := query.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return criteria, errors.New("invalid min_price")
		}
		criteria.MinPrice = f
	}

	if v := query.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return criteria, errors.New("invalid max_price")
		}
		criteria.MaxPrice = f
	}

	if v := query.Get("min_rating"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 5 {
			return criteria, errors.New("invalid min_rating")
		}
		criteria.MinRating = f
	}

	switch sort := query.Get("sort"); sort {
	case "", "none":
		criteria.Sort = domain.SortNone
	case "asc":
		criteria.Sort = domain.SortPriceAsc
	case "desc":
		criteria.Sort = domain.SortPriceDesc
	default:
		return criteria, errors.New("invalid sort, expected asc or desc")
	}

	return criteria, nil
}

// parsePathID 从URL路径的指定段提取数字ID
func parsePathID(w http.ResponseWriter, r *http.Request, index int, msg, reqID string) (int64, bool) {
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) <= index {
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, msg, reqID, "")
		return 0, false
	}

	id, err := strconv.ParseInt(parts[index], 10, 64)
	if err != nil {
		resp.Error(w, http.StatusBadRequest, resp.CodeInvalidParam, msg, reqID, "")
		return 0, false
	}
	return id, true
}
