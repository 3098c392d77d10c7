package response

import (
	"time"

	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/lineitem"
	"github.com/depotbar/stock-api/internal/service"
)

// Sale mirrors what the original backend returns: the typed aggregate plus
// the encoded line items in nomProdEtPrixT.
type Sale struct {
	ID             uint                  `json:"id"`
	Items          []domain.SaleLineItem `json:"items"`
	TotalAmount    float64               `json:"totalAmount"`
	Timestamp      time.Time             `json:"timestamp"`
	NomProdEtPrixT string                `json:"nomProdEtPrixT"`
}

func NewSale(sale domain.Sale) Sale {
	return Sale{
		ID:             sale.ID,
		Items:          sale.Items,
		TotalAmount:    sale.TotalAmount,
		Timestamp:      sale.Timestamp,
		NomProdEtPrixT: lineitem.EncodeSale(sale.Items),
	}
}

func NewSales(sales []domain.Sale) []Sale {
	out := make([]Sale, len(sales))
	for i, s := range sales {
		out[i] = NewSale(s)
	}

	return out
}

// CreatedSale adds the line item warnings gathered while applying the sale.
type CreatedSale struct {
	Sale
	Warnings []service.Warning `json:"warnings,omitempty"`
}

func NewCreatedSale(sale domain.Sale, warnings []service.Warning) CreatedSale {
	return CreatedSale{
		Sale:     NewSale(sale),
		Warnings: warnings,
	}
}

type Restock struct {
	ID             uint                     `json:"id"`
	Items          []domain.RestockLineItem `json:"items"`
	Timestamp      time.Time                `json:"timestamp"`
	TotalCost      float64                  `json:"totalCost"`
	NomProdEtPrixT string                   `json:"nomProdEtPrixT"`
}

func NewRestock(restock domain.Restock) Restock {
	return Restock{
		ID:             restock.ID,
		Items:          restock.Items,
		Timestamp:      restock.Timestamp,
		TotalCost:      restock.TotalCost(),
		NomProdEtPrixT: lineitem.EncodeRestock(restock.Items),
	}
}

func NewRestocks(restocks []domain.Restock) []Restock {
	out := make([]Restock, len(restocks))
	for i, r := range restocks {
		out[i] = NewRestock(r)
	}

	return out
}

// CreatedRestock adds the line item warnings gathered while applying the
// restock.
type CreatedRestock struct {
	Restock
	Warnings []service.Warning `json:"warnings,omitempty"`
}

func NewCreatedRestock(restock domain.Restock, warnings []service.Warning) CreatedRestock {
	return CreatedRestock{
		Restock:  NewRestock(restock),
		Warnings: warnings,
	}
}
