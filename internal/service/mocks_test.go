package service

import (
	"context"
	"errors"

	"github.com/MorseWayne/mercado_shop/internal/domain"
)

// Mock CatalogRepository for testing
type mockCatalogRepository struct {
	products   []*domain.Product
	categories []string
	failFetch  bool
}

func newMockCatalogRepository() *mockCatalogRepository {
	return &mockCatalogRepository{
		products: []*domain.Product{
			{ID: 1, Title: "Phone", Price: 999.99, Description: "Flagship phone", Category: "electronics", Rating: domain.Rating{Rate: 4.8, Count: 100}},
			{ID: 2, Title: "T-Shirt", Price: 19.99, Description: "Cotton tee", Category: "men's clothing", Rating: domain.Rating{Rate: 4.2, Count: 50}},
			{ID: 3, Title: "Dress", Price: 49.99, Description: "Summer dress", Category: "women's clothing", Rating: domain.Rating{Rate: 4.6, Count: 80}},
			{ID: 4, Title: "Headphones", Price: 199.99, Description: "Wireless audio", Category: "electronics", Rating: domain.Rating{Rate: 4.7, Count: 200}},
		},
		categories: []string{"electronics", "men's clothing", "women's clothing"},
	}
}

func (m *mockCatalogRepository) FetchProducts(ctx context.Context) ([]*domain.Product, error) {
	if m.failFetch {
		return nil, errors.New("catalog unavailable")
	}
	result := make([]*domain.Product, len(m.products))
	copy(result, m.products)
	return result, nil
}

func (m *mockCatalogRepository) FetchCategories(ctx context.Context) ([]string, error) {
	if m.failFetch {
		return nil, errors.New("catalog unavailable")
	}
	return m.categories, nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.failFetch {
		return nil, errors.New("catalog unavailable")
	}
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Mock FavoritesRepository for testing
type mockFavoritesRepository struct {
	saved   []*domain.Product
	initial []*domain.Product
	failing bool
	saves   int
}

func (m *mockFavoritesRepository) Load() []*domain.Product {
	return m.initial
}

func (m *mockFavoritesRepository) Save(favorites []*domain.Product) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.saved = make([]*domain.Product, len(favorites))
	copy(m.saved, favorites)
	m.saves++
	return nil
}

// Mock PreferencesRepository for testing
type mockPreferencesRepository struct {
	theme   string
	failing bool
	saves   int
}

func (m *mockPreferencesRepository) Theme() string {
	if m.theme == "" {
		return "light"
	}
	return m.theme
}

func (m *mockPreferencesRepository) SaveTheme(theme string) error {
	if m.failing {
		return errors.New("disk full")
	}
	m.theme = theme
	m.saves++
	return nil
}

func testProduct(id int64, title string, price float64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Category: "electronics",
		Rating:   domain.Rating{Rate: 4.5, Count: 10},
	}
}
