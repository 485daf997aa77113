package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"furnish-shop/models"
	"furnish-shop/repositories"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogProvider supplies the product catalog. The mock variant serves
// a fixed in-memory list behind a simulated network delay; the postgres
// variant reads from the products table.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// sleepCtx simulates network latency while honoring cancellation, so a
// caller that goes away mid-request never has its result applied.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type MockCatalog struct {
	delay    time.Duration
	products []models.Product
}

func NewMockCatalog(delay time.Duration) *MockCatalog {
	return &MockCatalog{delay: delay, products: mockProducts()}
}

func (m *MockCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	if err := sleepCtx(ctx, m.delay); err != nil {
		return nil, err
	}
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *MockCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if err := sleepCtx(ctx, m.delay); err != nil {
		return nil, err
	}
	for _, p := range m.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrProductNotFound
}

// PostgresCatalog serves the catalog from the products table.
type PostgresCatalog struct {
	repo *repositories.ProductRepository
}

func NewPostgresCatalog() *PostgresCatalog {
	return &PostgresCatalog{repo: repositories.NewProductRepository()}
}

func (p *PostgresCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return p.repo.ListProducts(ctx)
}

func (p *PostgresCatalog) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := p.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Categories returns the distinct category names present in the list,
// sorted for stable display.
func Categories(products []models.Product) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, p := range products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out
}

// FilterByCategory returns the products matching the given category, or
// the full list when category is empty.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" {
		return products
	}
	out := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
