package controllers

import (
	"net/http"

	"furnish-shop/models"
	"furnish-shop/services"
	"furnish-shop/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Users  *services.UserService
	Notify services.Notifier
}

// GetProfile godoc
// @Summary Get user profile
// @Description Get the current user with addresses and order history
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	user := ctrl.Users.User()
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "No user loaded"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profile retrieved", Data: user})
}

// UpdateProfile godoc
// @Summary Update profile
// @Description Shallow-merge the supplied fields into the current user
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /profile [patch]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.Users.UpdateUser(c.Request.Context(), req); err != nil {
		ctrl.Notify.Notify("Update failed", "An error occurred. Please try again later.", services.NotifyDestructive)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update profile", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Profile updated", "Your profile has been updated successfully.", services.NotifyDefault)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Profile updated", Data: ctrl.Users.User()})
}

// UpdateProfilePhoto godoc
// @Summary Update profile photo
// @Description Upload an avatar image
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo file"
// @Success 200 {object} models.Response
// @Router /profile/photo [post]
func (ctrl *ProfileController) UpdateProfilePhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Photo required"})
		return
	}

	path, err := utils.UploadFile(c, file, "avatars")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: err.Error()})
		return
	}

	if old := ctrl.Users.User(); old != nil && old.Avatar != "" {
		_ = utils.DeleteFile(old.Avatar)
	}

	if err := ctrl.Users.UpdateUser(c.Request.Context(), models.UpdateProfileRequest{Avatar: path}); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update avatar", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Photo updated", Data: gin.H{"avatar": path}})
}

// GetAddresses godoc
// @Summary List addresses
// @Description Get the current user's address collection
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /profile/addresses [get]
func (ctrl *ProfileController) GetAddresses(c *gin.Context) {
	user := ctrl.Users.User()
	if user == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "No user loaded"})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Addresses retrieved", Data: user.Addresses})
}

// AddAddress godoc
// @Summary Add address
// @Description Add a new address; the first address becomes the default
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddressRequest true "Address Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/addresses [post]
func (ctrl *ProfileController) AddAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.Users.AddAddress(c.Request.Context(), req); err != nil {
		ctrl.Notify.Notify("Add failed", "An error occurred. Please try again later.", services.NotifyDestructive)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to add address", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Address added", "Your new address has been added successfully.", services.NotifyDefault)
	user := ctrl.Users.User()
	var addresses []models.Address
	if user != nil {
		addresses = user.Addresses
	}
	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Address added", Data: addresses})
}

// UpdateAddress godoc
// @Summary Update address
// @Description Replace the fields of the matching address; unknown ids leave the collection unchanged
// @Tags Addresses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Address ID"
// @Param request body models.AddressRequest true "Address Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/addresses/{id} [patch]
func (ctrl *ProfileController) UpdateAddress(c *gin.Context) {
	var req models.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	if err := ctrl.Users.UpdateAddress(c.Request.Context(), c.Param("id"), req); err != nil {
		ctrl.Notify.Notify("Update failed", "An error occurred. Please try again later.", services.NotifyDestructive)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to update address", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Address updated", "Your address has been updated successfully.", services.NotifyDefault)
	user := ctrl.Users.User()
	var addresses []models.Address
	if user != nil {
		addresses = user.Addresses
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address updated", Data: addresses})
}

// RemoveAddress godoc
// @Summary Remove address
// @Description Delete the matching address, promoting a remaining one to default if needed
// @Tags Addresses
// @Security BearerAuth
// @Produce json
// @Param id path string true "Address ID"
// @Success 200 {object} models.Response
// @Router /profile/addresses/{id} [delete]
func (ctrl *ProfileController) RemoveAddress(c *gin.Context) {
	if err := ctrl.Users.RemoveAddress(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to remove address", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Address removed", "The address has been removed.", services.NotifyDefault)
	user := ctrl.Users.User()
	var addresses []models.Address
	if user != nil {
		addresses = user.Addresses
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Address removed", Data: addresses})
}

// GetOrders godoc
// @Summary Get order history
// @Description Get the current user's read-only order history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /profile/orders [get]
func (ctrl *ProfileController) GetOrders(c *gin.Context) {
	orders := ctrl.Users.Orders()
	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Orders retrieved", Data: orders})
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get one order from the history
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/orders/{id} [get]
func (ctrl *ProfileController) GetOrderByID(c *gin.Context) {
	id := c.Param("id")
	for _, order := range ctrl.Users.Orders() {
		if order.ID == id {
			c.JSON(http.StatusOK, models.Response{Success: true, Message: "Order retrieved", Data: order})
			return
		}
	}

	c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Order not found"})
}
