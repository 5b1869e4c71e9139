// Package repo 实现数据访问层，负责目录数据和本地持久化数据的读写。
package repo

import (
	"context"
	"time"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// CatalogRepository 定义商品目录数据访问接口
// 访问器是异步语义：带延迟、可能失败；当前实现总是在固定延迟后成功返回，
// 真实环境可替换为HTTP数据源，调用方已经处理失败分支
type CatalogRepository interface {
	// FetchProducts 获取全部商品
	FetchProducts(ctx context.Context) ([]*domain.Product, error)

	// FetchCategories 获取全部分类名
	FetchCategories(ctx context.Context) ([]string, error)

	// GetByID 根据ID获取商品，未找到时返回 (nil, nil)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// CatalogDelays 目录访问器的模拟网络延迟配置
type CatalogDelays struct {
	Products   time.Duration // FetchProducts 延迟
	Categories time.Duration // FetchCategories 延迟
	Product    time.Duration // GetByID 延迟
}

// staticCatalogRepository 基于静态内存数据的目录实现
type staticCatalogRepository struct {
	products   []*domain.Product
	categories []string
	delays     CatalogDelays
}

// NewStaticCatalogRepository 创建静态目录仓储实例，使用内置的演示数据集
func NewStaticCatalogRepository(delays CatalogDelays) CatalogRepository {
	return &staticCatalogRepository{
		products:   catalogProducts,
		categories: catalogCategories,
		delays:     delays,
	}
}

// FetchProducts 获取全部商品
func (r *staticCatalogRepository) FetchProducts(ctx context.Context) ([]*domain.Product, error) {
	if err := simulateLatency(ctx, r.delays.Products); err != nil {
		return nil, err
	}

	// 返回新切片，调用方的排序/过滤不会影响目录本身
	result := make([]*domain.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

// FetchCategories 获取全部分类名
func (r *staticCatalogRepository) FetchCategories(ctx context.Context) ([]string, error) {
	if err := simulateLatency(ctx, r.delays.Categories); err != nil {
		return nil, err
	}

	result := make([]string, len(r.categories))
	copy(result, r.categories)
	return result, nil
}

// GetByID 根据ID获取商品
func (r *staticCatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := simulateLatency(ctx, r.delays.Product); err != nil {
		return nil, err
	}

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// simulateLatency 模拟网络延迟，尊重上下文取消
// 调用方提前离开（取消）时返回上下文错误而不是继续等待
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
