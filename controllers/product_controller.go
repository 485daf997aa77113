package controllers

import (
	"errors"
	"net/http"

	"furnish-shop/models"
	"furnish-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	Catalog services.CatalogProvider
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get the product catalog, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch products",
			Error:   err.Error(),
		})
		return
	}

	products = services.FilterByCategory(products, c.Query("category"))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
	})
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.Catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch product",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}

// GetAllCategories godoc
// @Summary Get all categories
// @Description Get the distinct product categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	products, err := ctrl.Catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    services.Categories(products),
	})
}
