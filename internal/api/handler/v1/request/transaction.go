package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/depotbar/stock-api/internal/domain"
)

// Line-level problems (unknown product, short stock) are not rejected here:
// the transaction service skips or clamps them and reports warnings, so a
// partially valid transaction still applies.
type SaleItemRequest struct {
	ProductID uint     `json:"id"`
	Quantity  int      `json:"quantity"`
	SoldPrice *float64 `json:"soldPrice"`
}

type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
}

func (req *CreateSaleRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Items, validation.Required, validation.Length(1, 100)),
	)
}

func (req *CreateSaleRequest) ToDomain() []domain.SaleLineItem {
	items := make([]domain.SaleLineItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.SaleLineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if it.SoldPrice != nil {
			items[i].SoldPrice = *it.SoldPrice
		}
	}

	return items
}

type RestockItemRequest struct {
	ProductID uint     `json:"id"`
	Quantity  int      `json:"quantity"`
	UnitPrice *float64 `json:"unitPrice"`
}

type CreateRestockRequest struct {
	Items []RestockItemRequest `json:"items"`
}

func (req *CreateRestockRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Items, validation.Required, validation.Length(1, 100)),
	)
}

func (req *CreateRestockRequest) ToDomain() []domain.RestockLineItem {
	items := make([]domain.RestockLineItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = domain.RestockLineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}
		if it.UnitPrice != nil {
			items[i].UnitPrice = *it.UnitPrice
		}
	}

	return items
}
