// Package repo 提供带缓存的目录仓储实现
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/MorseWayne/mercado_shop/internal/cache"
	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// CachedCatalogRepository 带缓存的目录仓储
// 目录数据静态不变，缓存的意义在于跳过底层访问器的模拟网络延迟
type CachedCatalogRepository struct {
	repo  CatalogRepository
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedCatalogRepository 创建带缓存的目录仓储
func NewCachedCatalogRepository(repo CatalogRepository, cache cache.Cache, ttl time.Duration) CatalogRepository {
	return &CachedCatalogRepository{
		repo:  repo,
		cache: cache,
		ttl:   ttl,
	}
}

// FetchProducts 获取全部商品（带缓存）
func (r *CachedCatalogRepository) FetchProducts(ctx context.Context) ([]*domain.Product, error) {
	cacheKey := "catalog:products"

	var products []*domain.Product
	if err := r.cache.Get(ctx, cacheKey, &products); err == nil {
		return products, nil
	}

	// 缓存未命中，走底层访问器
	result, err := r.repo.FetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, result, r.ttl)

	return result, nil
}

// FetchCategories 获取全部分类名（带缓存）
func (r *CachedCatalogRepository) FetchCategories(ctx context.Context) ([]string, error) {
	cacheKey := "catalog:categories"

	var categories []string
	if err := r.cache.Get(ctx, cacheKey, &categories); err == nil {
		return categories, nil
	}

	result, err := r.repo.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Set(ctx, cacheKey, result, r.ttl)

	return result, nil
}

// GetByID 根据ID获取商品（带缓存）
func (r *CachedCatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	cacheKey := fmt.Sprintf("catalog:product:%d", id)

	var product domain.Product
	if err := r.cache.Get(ctx, cacheKey, &product); err == nil {
		return &product, nil
	}

	result, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// 未找到不写缓存
		return nil, nil
	}

	_ = r.cache.Set(ctx, cacheKey, result, r.ttl)

	return result, nil
}
