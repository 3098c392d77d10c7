package domain

import "time"

// Product is a catalog entry. Quantity is kept consistent with the sale and
// restock ledgers by the transaction service; it never goes below zero.
type Product struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Description string    `json:"description"`
	MinQuantity *int      `json:"minQuantity,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its minimum quantity.
// Products without a minimum are never flagged.
func (p Product) LowStock() bool {
	return p.MinQuantity != nil && p.Quantity <= *p.MinQuantity
}
