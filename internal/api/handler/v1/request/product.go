package request

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/service"
)

// Product names end up in the comma-delimited, line-per-item encoding of
// nom_prod_et_prix_t, where a comma or line break would corrupt the row.
var nameIsEncodable = validation.NewStringRule(func(s string) bool {
	return !strings.ContainsAny(s, ",\n\r")
}, "must not contain commas or line breaks")

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Designation string  `json:"designation"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Description string  `json:"description"`
	MinQuantity *int    `json:"minQuantity"`
}

func (req *CreateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100), nameIsEncodable),
		validation.Field(&req.Designation, validation.Length(0, 100)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.UnitPrice, validation.Min(0.0)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.MinQuantity, validation.Min(0)),
	)
}

func (req *CreateProductRequest) ToDomain() domain.Product {
	return domain.Product{
		Name:        req.Name,
		Designation: req.Designation,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		MinQuantity: req.MinQuantity,
	}
}

// UpdateProductRequest is a partial update; absent fields keep their current
// value.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Designation *string  `json:"designation"`
	Quantity    *int     `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	Description *string  `json:"description"`
	MinQuantity *int     `json:"minQuantity"`
}

func (req *UpdateProductRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Length(1, 100), nameIsEncodable),
		validation.Field(&req.Designation, validation.Length(0, 100)),
		validation.Field(&req.Quantity, validation.Min(0)),
		validation.Field(&req.UnitPrice, validation.Min(0.0)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.MinQuantity, validation.Min(0)),
	)
}

func (req *UpdateProductRequest) ToPatch() service.ProductPatch {
	return service.ProductPatch{
		Name:        req.Name,
		Designation: req.Designation,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Description: req.Description,
		MinQuantity: req.MinQuantity,
	}
}
