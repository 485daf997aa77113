package controllers

import (
	"errors"
	"net/http"

	"furnish-shop/config"
	"furnish-shop/models"
	"furnish-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart    *services.CartService
	Catalog services.CatalogProvider
	Notify  services.Notifier
}

// GetCart godoc
// @Summary Get cart
// @Description Get the cart lines with the computed summary
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items := ctrl.Cart.Items()
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved",
		Data: gin.H{
			"items":   items,
			"summary": services.Summarize(items, config.AppConfig.ShippingFee),
		},
	})
}

// AddToCart godoc
// @Summary Add to cart
// @Description Add a product to the cart, merging into an existing line with the same product and color
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	product, err := ctrl.Catalog.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to fetch product", Error: err.Error()})
		return
	}

	product.SelectedColor = req.SelectedColor
	if err := ctrl.Cart.AddToCart(c.Request.Context(), *product, req.Quantity); err != nil {
		ctrl.Notify.Notify("Add failed", "An error occurred. Please try again later.", services.NotifyDestructive)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Added to cart", product.Name+" has been added to your cart.", services.NotifyDefault)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    ctrl.Cart.Items(),
	})
}

// UpdateQuantity godoc
// @Summary Update cart line quantity
// @Description Replace the quantity of the line matching product and color
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.UpdateQuantityRequest true "Update Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.Cart.UpdateQuantity(c.Request.Context(), req.ProductID, req.SelectedColor, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Quantity updated",
		Data:    ctrl.Cart.Items(),
	})
}

// RemoveFromCart godoc
// @Summary Remove cart line
// @Description Delete the line matching product_id and color
// @Tags Cart
// @Produce json
// @Param product_id query string true "Product ID"
// @Param color query string false "Selected color"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	productID := c.Query("product_id")
	if productID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "product_id is required"})
		return
	}

	if err := ctrl.Cart.RemoveFromCart(c.Request.Context(), productID, c.Query("color")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update cart", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Removed from cart", "The item has been removed from your cart.", services.NotifyDefault)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed",
		Data:    ctrl.Cart.Items(),
	})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.Cart.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to clear cart", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared"})
}
