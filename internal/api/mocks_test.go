package api

import (
	"context"
	"errors"

	"github.com/MorseWayne/mercado_shop/internal/domain"
	"github.com/MorseWayne/mercado_shop/internal/service"
)

// fakeCatalogService 返回固定目录的目录服务
type fakeCatalogService struct {
	products []*domain.Product
	fail     bool
}

func newFakeCatalogService() *fakeCatalogService {
	return &fakeCatalogService{
		products: []*domain.Product{
			{ID: 1, Title: "Auriculares", Price: 199.99, Category: "electronics", Rating: domain.Rating{Rate: 4.7, Count: 200}},
			{ID: 2, Title: "Camisa", Price: 19.99, Category: "men's clothing", Rating: domain.Rating{Rate: 4.2, Count: 50}},
		},
	}
}

func (f *fakeCatalogService) ListProducts(ctx context.Context, criteria domain.FilterCriteria) ([]*domain.Product, error) {
	if f.fail {
		return nil, errors.New("catalog unavailable")
	}
	return domain.ApplyFilter(f.products, criteria), nil
}

func (f *fakeCatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if f.fail {
		return nil, errors.New("catalog unavailable")
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, service.ErrProductNotFound
}

func (f *fakeCatalogService) Categories(ctx context.Context) ([]string, error) {
	if f.fail {
		return nil, errors.New("catalog unavailable")
	}
	return []string{"electronics", "men's clothing"}, nil
}

func (f *fakeCatalogService) MaxPrice(ctx context.Context) (float64, error) {
	if f.fail {
		return 0, errors.New("catalog unavailable")
	}
	return 199.99, nil
}

func (f *fakeCatalogService) Stats(ctx context.Context) (*domain.ProductStats, error) {
	if f.fail {
		return nil, errors.New("catalog unavailable")
	}
	return domain.ComputeProductStats(f.products), nil
}
