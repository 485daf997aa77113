package models

import "time"

type Specifications struct {
	Dimensions string `json:"dimensions,omitempty"`
	Material   string `json:"material,omitempty"`
	Weight     string `json:"weight,omitempty"`
	Assembly   string `json:"assembly,omitempty"`
}

type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	SalePrice      *float64        `json:"sale_price"`
	OnSale         bool            `json:"on_sale"`
	Image          string          `json:"image"`
	Category       string          `json:"category"`
	Vendor         string          `json:"vendor"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	SKU            string          `json:"sku"`
	InStock        bool            `json:"in_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	Specifications *Specifications `json:"specifications,omitempty"`
	SelectedColor  string          `json:"selected_color,omitempty"`
}

// UnitPrice returns the effective price, honoring an active sale.
func (p Product) UnitPrice() float64 {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
