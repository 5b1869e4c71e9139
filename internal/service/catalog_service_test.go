package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

func TestCatalogService_ListProducts(t *testing.T) {
	svc := NewCatalogService(newMockCatalogRepository())
	ctx := context.Background()

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		wantIDs  []int64
	}{
		{
			name:     "no criteria returns full catalog in order",
			criteria: domain.FilterCriteria{},
			wantIDs:  []int64{1, 2, 3, 4},
		},
		{
			name:     "category and rating combined",
			criteria: domain.FilterCriteria{Category: "electronics", MinRating: 4.75},
			wantIDs:  []int64{1},
		},
		{
			name:     "price sort descending",
			criteria: domain.FilterCriteria{Sort: domain.SortPriceDesc},
			wantIDs:  []int64{1, 4, 3, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ListProducts(ctx, tt.criteria)
			if err != nil {
				t.Fatalf("ListProducts() error = %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ListProducts() returned %d products, want %d", len(got), len(tt.wantIDs))
			}
			for i, p := range got {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %d, want %d", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestCatalogService_ListProducts_FetchError(t *testing.T) {
	catalogRepo := newMockCatalogRepository()
	catalogRepo.failFetch = true
	svc := NewCatalogService(catalogRepo)

	if _, err := svc.ListProducts(context.Background(), domain.FilterCriteria{}); err == nil {
		t.Error("expected error when catalog fetch fails")
	}
}

func TestCatalogService_GetProduct(t *testing.T) {
	svc := NewCatalogService(newMockCatalogRepository())
	ctx := context.Background()

	product, err := svc.GetProduct(ctx, 1)
	if err != nil {
		t.Fatalf("GetProduct(1) error = %v", err)
	}
	if product.ID != 1 {
		t.Errorf("GetProduct(1).ID = %d", product.ID)
	}

	_, err = svc.GetProduct(ctx, 999)
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("GetProduct(999) error = %v, want ErrProductNotFound", err)
	}
}

func TestCatalogService_Categories(t *testing.T) {
	svc := NewCatalogService(newMockCatalogRepository())

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 3 {
		t.Errorf("Categories() returned %d, want 3", len(categories))
	}
}

func TestCatalogService_MaxPrice(t *testing.T) {
	svc := NewCatalogService(newMockCatalogRepository())

	max, err := svc.MaxPrice(context.Background())
	if err != nil {
		t.Fatalf("MaxPrice() error = %v", err)
	}
	if max != 999.99 {
		t.Errorf("MaxPrice() = %v, want 999.99", max)
	}
}

func TestCatalogService_Stats(t *testing.T) {
	svc := NewCatalogService(newMockCatalogRepository())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalProducts != 4 {
		t.Errorf("TotalProducts = %d, want 4", stats.TotalProducts)
	}
	if stats.HighestPrice != 999.99 || stats.LowestPrice != 19.99 {
		t.Errorf("price extremes = %v / %v", stats.HighestPrice, stats.LowestPrice)
	}
}
