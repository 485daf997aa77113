package main

import (
	"context"
	"log"
	"os"

	"furnish-shop/config"
	_ "furnish-shop/docs"
	"furnish-shop/middleware"
	"furnish-shop/routes"

	"github.com/gin-gonic/gin"
)

func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if config.AppConfig.CatalogProvider == "postgres" || config.AppConfig.AuthProvider == "postgres" {
		config.ConnectDB()
		defer config.CloseDB()
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	deps, err := routes.Bootstrap(context.Background())
	if err != nil {
		log.Fatalf("Failed to bootstrap application state: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, deps)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
