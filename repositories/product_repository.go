package repositories

import (
	"context"
	"errors"

	"furnish-shop/config"
	"furnish-shop/models"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a lookup matches nothing.
var ErrNoRows = pgx.ErrNoRows

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, description, price, sale_price, on_sale, image, category,
	vendor, rating, review_count, sku, in_stock, created_at`

func (r *ProductRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE in_stock = true ORDER BY created_at`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	row := config.DB.QueryRow(ctx, query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.SalePrice, &p.OnSale,
		&p.Image, &p.Category, &p.Vendor, &p.Rating, &p.ReviewCount,
		&p.SKU, &p.InStock, &p.CreatedAt,
	)
	return p, err
}
