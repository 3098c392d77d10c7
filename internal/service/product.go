package service

import (
	"context"
	"fmt"
	"time"

	"github.com/depotbar/stock-api/internal/domain"
)

var ErrProductNotFound = domain.ErrProductNotFound

type ProductRepository interface {
	Create(ctx context.Context, product domain.Product) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (domain.Product, error)
	FindByName(ctx context.Context, name string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// ProductPatch carries the fields of a product update; nil fields are left
// unchanged.
type ProductPatch struct {
	Name        *string
	Designation *string
	Quantity    *int
	UnitPrice   *float64
	Description *string
	MinQuantity *int
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// AddProduct creates a catalog entry with a fresh id and both timestamps set
// to now. Names need not be unique.
func (s *ProductService) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	now := time.Now()
	product.ID = 0
	product.CreatedAt = now
	product.UpdatedAt = now

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// AddProducts creates several catalog entries in input order.
func (s *ProductService) AddProducts(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	created := make([]domain.Product, 0, len(products))
	for _, p := range products {
		c, err := s.AddProduct(ctx, p)
		if err != nil {
			return created, err
		}
		created = append(created, c)
	}

	return created, nil
}

// UpdateProduct merges the patch into the matching product and refreshes its
// updated timestamp.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, patch ProductPatch) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Designation != nil {
		product.Designation = *patch.Designation
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		product.UnitPrice = *patch.UnitPrice
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.MinQuantity != nil {
		product.MinQuantity = patch.MinQuantity
	}
	product.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteProduct removes the product from the catalog. Historical sales and
// restocks that reference it are left untouched.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	product, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return domain.Product{}, fmt.Errorf("s.repo.FindByName -> %w", err)
	}

	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return products, nil
}

// LowStockProducts returns the products at or below their minimum quantity,
// in catalog order.
func (s *ProductService) LowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.LowStock() {
			low = append(low, p)
		}
	}

	return low, nil
}
