package domain

import "errors"

// Sentinel errors shared by every storage backend.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrSaleNotFound    = errors.New("sale not found")
)
