package domain

import "time"

// SaleLineItem is one product entry within a sale. Name and UnitPrice are
// denormalized from the catalog at sale time so history survives product
// deletion. SoldPrice may differ from UnitPrice (discounting).
type SaleLineItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	SoldPrice float64 `json:"soldPrice"`
}

func (li SaleLineItem) Total() float64 {
	return float64(li.Quantity) * li.SoldPrice
}

// Sale is an immutable ledger entry. Items keep insertion order; TotalAmount
// always equals the sum of the line totals.
type Sale struct {
	ID          uint           `json:"id"`
	Items       []SaleLineItem `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Timestamp   time.Time      `json:"timestamp"`
}

// NewSale builds a sale whose total is derived from its lines.
func NewSale(items []SaleLineItem, timestamp time.Time) Sale {
	var total float64
	for _, li := range items {
		total += li.Total()
	}

	return Sale{
		Items:       items,
		TotalAmount: total,
		Timestamp:   timestamp,
	}
}

// RestockLineItem is one product entry within a restock.
type RestockLineItem struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func (li RestockLineItem) Total() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// Restock is an immutable ledger entry. Restocks carry no stored aggregate;
// the cost is derived on demand.
type Restock struct {
	ID        uint              `json:"id"`
	Items     []RestockLineItem `json:"items"`
	Timestamp time.Time         `json:"timestamp"`
}

// TotalCost sums the line totals.
func (r Restock) TotalCost() float64 {
	var total float64
	for _, li := range r.Items {
		total += li.Total()
	}

	return total
}
