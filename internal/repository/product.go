package repository

import (
	"context"
	"fmt"

	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/repository/dao"
)

var ErrProductNotFound = domain.ErrProductNotFound

type ProductRepository struct {
	dao *dao.ProductDAO
}

func NewProductRepository(dao *dao.ProductDAO) *ProductRepository {
	return &ProductRepository{
		dao: dao,
	}
}

func (r *ProductRepository) domainToDao(p domain.Product) dao.Produit {
	return dao.Produit{
		ID:          p.ID,
		Name:        p.Name,
		Designation: p.Designation,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Description: p.Description,
		MinQuantity: p.MinQuantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProductRepository) daoToDomain(p dao.Produit) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Designation: p.Designation,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
		Description: p.Description,
		MinQuantity: p.MinQuantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ProductRepository) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(product))
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	produit, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(produit), nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string) (domain.Product, error) {
	produit, err := r.dao.FindByName(ctx, name)
	if err != nil {
		return domain.Product{}, fmt.Errorf("r.dao.FindByName -> %w", err)
	}

	return r.daoToDomain(produit), nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	produits, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	products := make([]domain.Product, len(produits))
	for i, p := range produits {
		products[i] = r.daoToDomain(p)
	}

	return products, nil
}
