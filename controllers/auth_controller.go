package controllers

import (
	"errors"
	"net/http"

	"furnish-shop/models"
	"furnish-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth   *services.AuthService
	Notify services.Notifier
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	token, user, err := ctrl.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctrl.Notify.Notify("Login failed", "Invalid email or password.", services.NotifyDestructive)
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Login failed", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Welcome back", "You have been logged in.", services.NotifyDefault)
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    models.LoginResponse{Token: token, User: user},
	})
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	token, user, err := ctrl.Auth.Register(c.Request.Context(), req)
	if err != nil {
		ctrl.Notify.Notify("Registration failed", "An error occurred. Please try again later.", services.NotifyDestructive)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Registration failed", Error: err.Error()})
		return
	}

	ctrl.Notify.Notify("Account created", "Your account has been created.", services.NotifyDefault)
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Registration successful",
		Data:    models.LoginResponse{Token: token, User: user},
	})
}

// Logout godoc
// @Summary User logout
// @Description Clear the current user and erase the token marker
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.Auth.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Logout failed", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out"})
}

// GetSession godoc
// @Summary Get session state
// @Description Report the derived authentication state
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/session [get]
func (ctrl *AuthController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Session retrieved",
		Data: models.SessionResponse{
			Authenticated: ctrl.Auth.IsAuthenticated(),
			State:         ctrl.Auth.State().String(),
		},
	})
}
