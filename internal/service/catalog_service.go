// Package service 实现业务逻辑层，协调各种资源完成业务需求。
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/repo"
)

// 定义业务错误
var (
	ErrProductNotFound = errors.New("product not found")
)

// CatalogService 定义商品目录业务逻辑接口
type CatalogService interface {
	// ListProducts 按过滤条件查询商品列表，结果满足所有激活的条件
	ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]*domain.Product, error)

	// GetProduct 获取商品详情，未找到时返回 ErrProductNotFound
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// Categories 获取全部分类名
	Categories(ctx context.Context) ([]string, error)

	// MaxPrice 获取目录中的最高价格，供价格区间控件初始化
	MaxPrice(ctx context.Context) (float64, error)

	// Stats 获取目录统计信息
	Stats(ctx context.Context) (*domain.ProductStats, error)
}

// catalogService 实现CatalogService接口
type catalogService struct {
	catalogRepo repo.CatalogRepository
}

// NewCatalogService 创建目录服务实例
func NewCatalogService(catalogRepo repo.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListProducts 按过滤条件查询商品列表
// 过滤与排序是目录和条件的纯函数，不依赖任何隐藏状态
func (s *catalogService) ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]*domain.Product, error) {
	products, err := s.catalogRepo.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return domain.ApplyFilter(products, criteria), nil
}

// GetProduct 获取商品详情
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// Categories 获取全部分类名
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.catalogRepo.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, nil
}

// MaxPrice 获取目录中的最高价格
func (s *catalogService) MaxPrice(ctx context.Context) (float64, error) {
	products, err := s.catalogRepo.FetchProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	max := 0.0
	for _, p := range products {
		if p.Price > max {
			max = p.Price
		}
	}
	return max, nil
}

// Stats 获取目录统计信息
func (s *catalogService) Stats(ctx context.Context) (*domain.ProductStats, error) {
	products, err := s.catalogRepo.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	return domain.ComputeProductStats(products), nil
}
