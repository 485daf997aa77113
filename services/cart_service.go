package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"furnish-shop/models"
	"furnish-shop/storage"
)

// CartService owns the ordered collection of cart lines. Every mutation
// re-serializes the full collection to the store under the cart key
// before returning, so a reload always reproduces the same cart.
type CartService struct {
	mu    sync.Mutex
	store storage.Store
	items []models.CartItem
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store, items: []models.CartItem{}}
}

// Load reads the persisted cart. A missing key means an empty cart; a
// corrupt blob is discarded rather than wedging startup.
func (s *CartService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Get(ctx, storage.KeyCart)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.items = []models.CartItem{}
			return nil
		}
		return err
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("Failed to parse saved cart, starting empty: %v", err)
		s.items = []models.CartItem{}
		return nil
	}
	if items == nil {
		items = []models.CartItem{}
	}
	s.items = items
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart merges the product into an existing line with the same
// (id, color) key, or appends a new line at the end. Quantity sanity is
// the caller's concern; the store only accumulates.
func (s *CartService) AddToCart(ctx context.Context, product models.Product, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Matches(product.ID, product.SelectedColor) {
			s.items[i].Quantity += quantity
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	return s.persist(ctx)
}

// UpdateQuantity replaces the quantity of the line keyed by
// (productID, color). Unknown keys are a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, productID, color string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Matches(productID, color) {
			s.items[i].Quantity = quantity
			break
		}
	}
	return s.persist(ctx)
}

// RemoveFromCart deletes the line keyed by (productID, color); no-op if
// no line matches.
func (s *CartService) RemoveFromCart(ctx context.Context, productID, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if !item.Matches(productID, color) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return s.persist(ctx)
}

// ClearCart empties the collection.
func (s *CartService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []models.CartItem{}
	return s.persist(ctx)
}

func (s *CartService) persist(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.KeyCart, data)
}

// CartSummary is computed by consumers of the cart, not stored with it.
// Shipping is a flat fee applied only to non-empty carts. The live cart
// carries no tax figure; only historical orders do.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func Summarize(items []models.CartItem, shippingFee float64) CartSummary {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice() * float64(item.Quantity)
	}

	var shipping float64
	if subtotal > 0 {
		shipping = shippingFee
	}

	return CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}
