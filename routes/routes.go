package routes

import (
	"context"
	"fmt"
	"log"

	"furnish-shop/config"
	"furnish-shop/controllers"
	"furnish-shop/middleware"
	"furnish-shop/services"
	"furnish-shop/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds the wired state services shared by the
// controllers.
type Dependencies struct {
	Store   storage.Store
	Catalog services.CatalogProvider
	Cart    *services.CartService
	Users   *services.UserService
	Auth    *services.AuthService
	Notify  services.Notifier
}

// Bootstrap builds the storage backend and providers selected by
// configuration, loads the persisted cart and user state, and resolves
// the initial authentication state.
func Bootstrap(ctx context.Context) (*Dependencies, error) {
	var store storage.Store
	switch config.AppConfig.StorageDriver {
	case "redis":
		rs, err := storage.NewRedisStore(config.AppConfig.RedisURL, config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("init redis store: %w", err)
		}
		store = rs
	case "file":
		fs, err := storage.NewFileStore(config.AppConfig.DataDir)
		if err != nil {
			return nil, fmt.Errorf("init file store: %w", err)
		}
		store = fs
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.AppConfig.StorageDriver)
	}

	var catalog services.CatalogProvider
	if config.AppConfig.CatalogProvider == "postgres" {
		catalog = services.NewPostgresCatalog()
	} else {
		catalog = services.NewMockCatalog(config.AppConfig.MockDelay)
	}

	var authProvider services.AuthProvider
	if config.AppConfig.AuthProvider == "postgres" {
		authProvider = services.NewPostgresAuthProvider()
	} else {
		authProvider = services.NewMockAuthProvider(config.AppConfig.MockDelay)
	}

	var notify services.Notifier = services.LogNotifier{}
	if emailNotify, err := services.NewEmailNotifier(); err == nil {
		notify = emailNotify
	} else {
		log.Printf("Email notifications disabled: %v", err)
	}

	cart := services.NewCartService(store)
	if err := cart.Load(ctx); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	users := services.NewUserService(store, authProvider)
	if err := users.Load(ctx); err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	auth := services.NewAuthService(users, store)
	if err := auth.CheckAuth(ctx); err != nil {
		return nil, fmt.Errorf("check auth: %w", err)
	}

	return &Dependencies{
		Store:   store,
		Catalog: catalog,
		Cart:    cart,
		Users:   users,
		Auth:    auth,
		Notify:  notify,
	}, nil
}

func SetupRoutes(router *gin.Engine, d *Dependencies) {
	authCtrl := &controllers.AuthController{Auth: d.Auth, Notify: d.Notify}
	productCtrl := &controllers.ProductController{Catalog: d.Catalog}
	cartCtrl := &controllers.CartController{Cart: d.Cart, Catalog: d.Catalog, Notify: d.Notify}
	profileCtrl := &controllers.ProfileController{Users: d.Users, Notify: d.Notify}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/auth/session", authCtrl.GetSession)

	router.GET("/categories", productCtrl.GetAllCategories)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	router.GET("/cart", cartCtrl.GetCart)
	router.DELETE("/cart", cartCtrl.ClearCart)
	router.POST("/cart/items", cartCtrl.AddToCart)
	router.PATCH("/cart/items", cartCtrl.UpdateQuantity)
	router.DELETE("/cart/items", cartCtrl.RemoveFromCart)

	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware())
	{
		profile.GET("", profileCtrl.GetProfile)
		profile.PATCH("", profileCtrl.UpdateProfile)
		profile.POST("/photo", profileCtrl.UpdateProfilePhoto)

		profile.GET("/addresses", profileCtrl.GetAddresses)
		profile.POST("/addresses", profileCtrl.AddAddress)
		profile.PATCH("/addresses/:id", profileCtrl.UpdateAddress)
		profile.DELETE("/addresses/:id", profileCtrl.RemoveAddress)

		profile.GET("/orders", profileCtrl.GetOrders)
		profile.GET("/orders/:id", profileCtrl.GetOrderByID)
	}

	router.Static("/uploads", "./uploads")
}
