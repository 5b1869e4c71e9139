package service

import (
	"context"
	"fmt"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// StatsSnapshot 仪表盘的统计快照
type StatsSnapshot struct {
	Catalog         *domain.ProductStats `json:"catalog"`
	CartItems       int                  `json:"cart_items"`
	CartTotal       float64              `json:"cart_total"`
	Favorites       int                  `json:"favorites"`
	PopularCategory string               `json:"popular_category,omitempty"` // 购物车中数量最多的分类，空购物车时为空
}

// StatsService 定义统计仪表盘业务逻辑接口
type StatsService interface {
	// Snapshot 汇总目录、购物车和收藏的当前统计
	Snapshot(ctx context.Context) (*StatsSnapshot, error)
}

// statsService 实现StatsService接口
type statsService struct {
	catalog   CatalogService
	cart      CartService
	favorites FavoritesService
}

// NewStatsService 创建统计服务实例
func NewStatsService(catalog CatalogService, cart CartService, favorites FavoritesService) StatsService {
	return &statsService{
		catalog:   catalog,
		cart:      cart,
		favorites: favorites,
	}
}

// Snapshot 汇总当前统计
func (s *statsService) Snapshot(ctx context.Context) (*StatsSnapshot, error) {
	catalogStats, err := s.catalog.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog stats: %w", err)
	}

	snap := &StatsSnapshot{
		Catalog:   catalogStats,
		CartItems: s.cart.TotalItems(),
		CartTotal: s.cart.TotalPrice(),
		Favorites: s.favorites.Count(),
	}
	snap.PopularCategory = s.popularCategory()

	return snap, nil
}

// popularCategory 按数量统计购物车中最受欢迎的分类
// 数量并列时取先加入购物车的分类，保证结果确定
func (s *statsService) popularCategory() string {
	counts := make(map[string]int)
	best := ""
	for _, item := range s.cart.Items() {
		category := item.Product.Category
		counts[category] += item.Quantity
		if best == "" || counts[category] > counts[best] {
			best = category
		}
	}
	return best
}
