package store

import (
	"time"

	"github.com/depotbar/stock-api/internal/domain"
)

// DemoCatalog returns the sample products used when the server runs with
// memory storage.
func DemoCatalog() []domain.Product {
	return []domain.Product{
		{
			Name:        "Gaming Laptop",
			Designation: "Electronics",
			Quantity:    15,
			UnitPrice:   1299.99,
			Description: "High-performance gaming laptop with RTX graphics",
			MinQuantity: intPtr(5),
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:        "Wireless Headphones",
			Designation: "Audio",
			Quantity:    3,
			UnitPrice:   199.99,
			Description: "Premium noise-canceling wireless headphones",
			MinQuantity: intPtr(10),
			CreatedAt:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:        "Smart Watch",
			Designation: "Wearables",
			Quantity:    25,
			UnitPrice:   299.99,
			Description: "Advanced fitness tracking smartwatch",
			MinQuantity: intPtr(8),
			CreatedAt:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			Name:        "Mechanical Keyboard",
			Designation: "Peripherals",
			Quantity:    2,
			UnitPrice:   149.99,
			Description: "RGB mechanical keyboard with custom switches",
			MinQuantity: intPtr(6),
			CreatedAt:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		},
	}
}

func intPtr(n int) *int {
	return &n
}
