package services

import (
	"os"
	"testing"

	"furnish-shop/config"
)

func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{
		JWTSecret:   "test-secret",
		JWTExpiry:   "1h",
		ShippingFee: 10,
	}
	os.Exit(m.Run())
}
