package services

import (
	"time"

	"furnish-shop/models"
)

func salePrice(v float64) *float64 { return &v }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// mockProducts is the demo furniture catalog served by MockCatalog.
func mockProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Asgaard Sofa",
			Description: "A beautiful and comfortable sofa with a modern design. Perfect for any living room.",
			Price:       199.99,
			SalePrice:   salePrice(149.99),
			OnSale:      true,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "sofas",
			Vendor:      "Furnish",
			Rating:      4.5,
			ReviewCount: 12,
			SKU:         "SOFA-001",
			InStock:     true,
			CreatedAt:   day(2023, time.January, 15),
			Specifications: &models.Specifications{
				Dimensions: "W180 x D80 x H90 cm",
				Material:   "Fabric, Wood",
				Weight:     "45 kg",
				Assembly:   "Required",
			},
		},
		{
			ID:          "2",
			Name:        "Syltherine Table",
			Description: "Stylish coffee table with a minimalist design. Made from high-quality materials.",
			Price:       149.99,
			OnSale:      false,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "tables",
			Vendor:      "Furnish",
			Rating:      4.2,
			ReviewCount: 8,
			SKU:         "TABLE-001",
			InStock:     true,
			CreatedAt:   day(2023, time.February, 10),
		},
		{
			ID:          "3",
			Name:        "Leviosa Desk",
			Description: "Modern desk with ample storage space. Perfect for home office or study.",
			Price:       249.99,
			SalePrice:   salePrice(199.99),
			OnSale:      true,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "tables",
			Vendor:      "Furnish",
			Rating:      4.8,
			ReviewCount: 15,
			SKU:         "DESK-001",
			InStock:     true,
			CreatedAt:   day(2023, time.March, 5),
		},
		{
			ID:          "4",
			Name:        "Lolito Chair",
			Description: "Comfortable chair with a sleek design. Perfect for dining or as an accent piece.",
			Price:       99.99,
			OnSale:      false,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "chairs",
			Vendor:      "Furnish",
			Rating:      4.0,
			ReviewCount: 10,
			SKU:         "CHAIR-001",
			InStock:     true,
			CreatedAt:   day(2023, time.April, 20),
		},
		{
			ID:          "5",
			Name:        "Respira Bookshelf",
			Description: "Spacious bookshelf with a modern design. Perfect for displaying books and decorative items.",
			Price:       299.99,
			SalePrice:   salePrice(249.99),
			OnSale:      true,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "storage",
			Vendor:      "Furnish",
			Rating:      4.6,
			ReviewCount: 18,
			SKU:         "SHELF-001",
			InStock:     true,
			CreatedAt:   day(2023, time.May, 15),
		},
		{
			ID:          "6",
			Name:        "Grifo Nightstand",
			Description: "Elegant nightstand with storage drawer. Perfect for bedside essentials.",
			Price:       89.99,
			OnSale:      false,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "storage",
			Vendor:      "Furnish",
			Rating:      4.3,
			ReviewCount: 7,
			SKU:         "NIGHT-001",
			InStock:     true,
			CreatedAt:   day(2023, time.June, 10),
		},
		{
			ID:          "7",
			Name:        "Pingky Bed",
			Description: "Comfortable bed with a stylish headboard. Perfect for a good night's sleep.",
			Price:       399.99,
			SalePrice:   salePrice(349.99),
			OnSale:      true,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "beds",
			Vendor:      "Furnish",
			Rating:      4.7,
			ReviewCount: 20,
			SKU:         "BED-001",
			InStock:     true,
			CreatedAt:   day(2023, time.July, 5),
		},
		{
			ID:          "8",
			Name:        "Potty Stool",
			Description: "Versatile stool that can be used as a side table or extra seating.",
			Price:       59.99,
			OnSale:      false,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "chairs",
			Vendor:      "Furnish",
			Rating:      4.1,
			ReviewCount: 5,
			SKU:         "STOOL-001",
			InStock:     true,
			CreatedAt:   day(2023, time.August, 20),
		},
		{
			ID:          "9",
			Name:        "Cloudy Sofa",
			Description: "Plush sofa with cloud-like comfort. Perfect for relaxing after a long day.",
			Price:       349.99,
			SalePrice:   salePrice(299.99),
			OnSale:      true,
			Image:       "/placeholder.svg?height=600&width=600",
			Category:    "sofas",
			Vendor:      "Furnish",
			Rating:      4.9,
			ReviewCount: 25,
			SKU:         "SOFA-002",
			InStock:     true,
			CreatedAt:   day(2023, time.September, 15),
		},
	}
}

// DemoUser is the fixed record the user store is seeded with, and the
// record the mock auth provider signs in.
func DemoUser() *models.User {
	return &models.User{
		ID:        "1",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "(123) 456-7890",
		Addresses: []models.Address{
			{
				ID:        "1",
				Name:      "Home",
				Street:    "123 Main St",
				City:      "Anytown",
				State:     "CA",
				ZipCode:   "12345",
				Country:   "US",
				IsDefault: true,
			},
			{
				ID:        "2",
				Name:      "Work",
				Street:    "456 Office Blvd",
				City:      "Workville",
				State:     "NY",
				ZipCode:   "67890",
				Country:   "US",
				IsDefault: false,
			},
		},
		Orders: []models.Order{
			{
				ID:          "1",
				OrderNumber: "ORD-12345",
				Date:        time.Date(2023, time.April, 15, 10, 30, 0, 0, time.UTC),
				Status:      models.OrderDelivered,
				Items: []models.OrderItem{
					{ID: "1", Name: "Asgaard Sofa", Price: 149.99, Quantity: 1, Image: "/placeholder.svg?height=600&width=600"},
					{ID: "2", Name: "Syltherine Table", Price: 149.99, Quantity: 2, Image: "/placeholder.svg?height=600&width=600"},
				},
				Subtotal: 449.97,
				Shipping: 10.00,
				Tax:      36.00,
				Total:    495.97,
				ShippingAddress: models.ShippingAddress{
					Street: "123 Main St", City: "Anytown", State: "CA", ZipCode: "12345", Country: "US",
				},
			},
			{
				ID:          "2",
				OrderNumber: "ORD-67890",
				Date:        time.Date(2023, time.May, 20, 14, 45, 0, 0, time.UTC),
				Status:      models.OrderShipped,
				Items: []models.OrderItem{
					{ID: "3", Name: "Leviosa Desk", Price: 199.99, Quantity: 1, Image: "/placeholder.svg?height=600&width=600"},
				},
				Subtotal: 199.99,
				Shipping: 10.00,
				Tax:      16.00,
				Total:    225.99,
				ShippingAddress: models.ShippingAddress{
					Street: "456 Office Blvd", City: "Workville", State: "NY", ZipCode: "67890", Country: "US",
				},
			},
			{
				ID:          "3",
				OrderNumber: "ORD-24680",
				Date:        time.Date(2023, time.June, 10, 9, 15, 0, 0, time.UTC),
				Status:      models.OrderProcessing,
				Items: []models.OrderItem{
					{ID: "4", Name: "Lolito Chair", Price: 99.99, Quantity: 4, Image: "/placeholder.svg?height=600&width=600"},
					{ID: "5", Name: "Respira Bookshelf", Price: 249.99, Quantity: 1, Image: "/placeholder.svg?height=600&width=600"},
				},
				Subtotal: 649.95,
				Shipping: 15.00,
				Tax:      52.00,
				Total:    716.95,
				ShippingAddress: models.ShippingAddress{
					Street: "123 Main St", City: "Anytown", State: "CA", ZipCode: "12345", Country: "US",
				},
			},
		},
	}
}
