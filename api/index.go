package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"furnish-shop/config"
	"furnish-shop/middleware"
	"furnish-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		if config.AppConfig.CatalogProvider == "postgres" || config.AppConfig.AuthProvider == "postgres" {
			config.ConnectDB()
		}

		deps, err := routes.Bootstrap(context.Background())
		if err != nil {
			log.Fatalf("Failed to bootstrap application state: %v", err)
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, deps)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
