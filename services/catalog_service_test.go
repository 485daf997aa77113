package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCatalogListProducts(t *testing.T) {
	catalog := NewMockCatalog(0)

	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 9)
	assert.Equal(t, "Asgaard Sofa", products[0].Name)
}

func TestMockCatalogGetProduct(t *testing.T) {
	catalog := NewMockCatalog(0)
	ctx := context.Background()

	product, err := catalog.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Asgaard Sofa", product.Name)
	assert.True(t, product.OnSale)
	assert.InDelta(t, 149.99, product.UnitPrice(), 1e-9)

	_, err = catalog.GetProduct(ctx, "404")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMockCatalogHonorsCancellation(t *testing.T) {
	catalog := NewMockCatalog(500 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.ListProducts(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = catalog.GetProduct(ctx, "1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategories(t *testing.T) {
	catalog := NewMockCatalog(0)
	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err)

	got := Categories(products)
	assert.Equal(t, []string{"beds", "chairs", "sofas", "storage", "tables"}, got)
}

func TestFilterByCategory(t *testing.T) {
	catalog := NewMockCatalog(0)
	products, err := catalog.ListProducts(context.Background())
	require.NoError(t, err)

	sofas := FilterByCategory(products, "sofas")
	require.Len(t, sofas, 2)
	for _, p := range sofas {
		assert.Equal(t, "sofas", p.Category)
	}

	assert.Len(t, FilterByCategory(products, ""), len(products))
	assert.Empty(t, FilterByCategory(products, "garden"))
}
