package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	DataDir         string
	StorageDriver   string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	CatalogProvider string
	AuthProvider    string
	MockDelay       time.Duration
	ShippingFee     float64
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	JWTSecret       string
	JWTExpiry       string
	UploadDir       string
	MaxUploadSize   int64
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	mockDelay, err := time.ParseDuration(getEnv("MOCK_DELAY", "500ms"))
	if err != nil {
		mockDelay = 500 * time.Millisecond
	}

	shippingFee, err := strconv.ParseFloat(getEnv("SHIPPING_FEE", "10"), 64)
	if err != nil {
		shippingFee = 10
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		DataDir:         getEnv("DATA_DIR", "./data"),
		StorageDriver:   getEnv("STORAGE_DRIVER", "file"),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogProvider: getEnv("CATALOG_PROVIDER", "mock"),
		AuthProvider:    getEnv("AUTH_PROVIDER", "mock"),
		MockDelay:       mockDelay,
		ShippingFee:     shippingFee,
		DBHost:          getEnv("DB_HOST", "localhost"),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", "postgres"),
		DBName:          getEnv("DB_NAME", "furnish_shop"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		JWTExpiry:       getEnv("JWT_EXPIRY", "24h"),
		UploadDir:       getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize:   maxUploadSize,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Storage driver: %s", AppConfig.StorageDriver)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
