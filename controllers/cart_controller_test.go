package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"furnish-shop/config"
	"furnish-shop/services"
	"furnish-shop/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   "1h",
		ShippingFee: 10,
	}
	os.Exit(m.Run())
}

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cart := services.NewCartService(store)
	require.NoError(t, cart.Load(context.Background()))

	ctrl := &CartController{
		Cart:    cart,
		Catalog: services.NewMockCatalog(0),
		Notify:  services.LogNotifier{},
	}

	r := gin.New()
	r.GET("/cart", ctrl.GetCart)
	r.DELETE("/cart", ctrl.ClearCart)
	r.POST("/cart/items", ctrl.AddToCart)
	r.PATCH("/cart/items", ctrl.UpdateQuantity)
	r.DELETE("/cart/items", ctrl.RemoveFromCart)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartEndpoint(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID       string `json:"id"`
			Quantity int    `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "1", resp.Data[0].ID)
	assert.Equal(t, 2, resp.Data[0].Quantity)
}

func TestAddToCartMergesOnRepeat(t *testing.T) {
	r := newCartRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 2})
	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Quantity int `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5, resp.Data[0].Quantity)
}

func TestAddToCartRejectsZeroQuantity(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "404", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartSummary(t *testing.T) {
	r := newCartRouter(t)

	// Product 1 is on sale at 149.99.
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 2})

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Summary struct {
				Subtotal float64 `json:"subtotal"`
				Shipping float64 `json:"shipping"`
				Total    float64 `json:"total"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 299.98, resp.Data.Summary.Subtotal, 1e-6)
	assert.InDelta(t, 10, resp.Data.Summary.Shipping, 1e-6)
	assert.InDelta(t, 309.98, resp.Data.Summary.Total, 1e-6)
}

func TestGetCartEmptySummaryHasNoShipping(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Summary struct {
				Shipping float64 `json:"shipping"`
				Total    float64 `json:"total"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.Summary.Shipping)
	assert.Zero(t, resp.Data.Summary.Total)
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	r := newCartRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 2})
	w := doJSON(t, r, http.MethodPatch, "/cart/items", gin.H{"product_id": "1", "quantity": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Quantity int `json:"quantity"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 7, resp.Data[0].Quantity)
}

func TestRemoveFromCartEndpoint(t *testing.T) {
	r := newCartRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 1})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "2", "quantity": 1})

	w := doJSON(t, r, http.MethodDelete, "/cart/items?product_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "2", resp.Data[0].ID)
}

func TestRemoveFromCartRequiresProductID(t *testing.T) {
	r := newCartRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/cart/items", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCartEndpoint(t *testing.T) {
	r := newCartRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1", "quantity": 1})
	w := doJSON(t, r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	var resp struct {
		Data struct {
			Items []json.RawMessage `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)
}
