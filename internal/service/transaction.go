package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/depotbar/stock-api/internal/domain"
)

var (
	ErrSaleNotFound = domain.ErrSaleNotFound

	// ErrEmptyTransaction is returned when no line item of a sale or restock
	// could be applied.
	ErrEmptyTransaction = errors.New("transaction has no applicable line items")
)

type TransactionRepository interface {
	CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error)
	FindAllSales(ctx context.Context) ([]domain.Sale, error)
	FindSaleByID(ctx context.Context, id uint) (domain.Sale, error)
	FindSalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error)
	CreateRestock(ctx context.Context, restock domain.Restock) (domain.Restock, error)
	FindAllRestocks(ctx context.Context) ([]domain.Restock, error)
}

// Warning reports a line item that was skipped or adjusted while applying a
// transaction. Warnings are business signals, not failures: the rest of the
// transaction still applies.
type Warning struct {
	Line      int    `json:"line"`
	ProductID uint   `json:"productId"`
	Reason    string `json:"reason"`
}

// TransactionService applies sale and restock events to the catalog and keeps
// the append-only ledgers.
type TransactionService struct {
	repo        TransactionRepository
	productRepo ProductRepository
}

func NewTransactionService(repo TransactionRepository, productRepo ProductRepository) *TransactionService {
	return &TransactionService{
		repo:        repo,
		productRepo: productRepo,
	}
}

// RecordSale applies the line items in input order, decrementing each
// referenced product's quantity, floored at zero. Lines with a missing or
// unknown product reference, or a quantity below one, are skipped. The sale's
// total is the sum of the applied line totals. Insufficient stock clamps to
// zero and warns instead of failing; overselling is reconciled later.
func (s *TransactionService) RecordSale(ctx context.Context, items []domain.SaleLineItem) (domain.Sale, []Warning, error) {
	applied := make([]domain.SaleLineItem, 0, len(items))
	var warnings []Warning

	for i, li := range items {
		product, warning, err := s.applyLine(ctx, i, li.ProductID, li.Quantity, -li.Quantity)
		if err != nil {
			return domain.Sale{}, warnings, err
		}
		if warning != nil {
			warnings = append(warnings, *warning)
			if warning.Reason != reasonInsufficientStock {
				continue
			}
		}

		li.Name = product.Name
		li.UnitPrice = product.UnitPrice
		if li.SoldPrice == 0 {
			li.SoldPrice = product.UnitPrice
		}
		applied = append(applied, li)
	}

	if len(applied) == 0 {
		return domain.Sale{}, warnings, ErrEmptyTransaction
	}

	sale := domain.NewSale(applied, time.Now())
	created, err := s.repo.CreateSale(ctx, sale)
	if err != nil {
		return domain.Sale{}, warnings, fmt.Errorf("s.repo.CreateSale -> %w", err)
	}

	logWarnings("sale", created.ID, warnings)

	return created, warnings, nil
}

// RecordRestock applies the line items in input order, incrementing each
// referenced product's quantity. Lines with a missing or unknown product
// reference, or a quantity below one, are skipped.
func (s *TransactionService) RecordRestock(ctx context.Context, items []domain.RestockLineItem) (domain.Restock, []Warning, error) {
	applied := make([]domain.RestockLineItem, 0, len(items))
	var warnings []Warning

	for i, li := range items {
		product, warning, err := s.applyLine(ctx, i, li.ProductID, li.Quantity, li.Quantity)
		if err != nil {
			return domain.Restock{}, warnings, err
		}
		if warning != nil {
			warnings = append(warnings, *warning)
			continue
		}

		li.Name = product.Name
		if li.UnitPrice == 0 {
			li.UnitPrice = product.UnitPrice
		}
		applied = append(applied, li)
	}

	if len(applied) == 0 {
		return domain.Restock{}, warnings, ErrEmptyTransaction
	}

	restock := domain.Restock{
		Items:     applied,
		Timestamp: time.Now(),
	}
	created, err := s.repo.CreateRestock(ctx, restock)
	if err != nil {
		return domain.Restock{}, warnings, fmt.Errorf("s.repo.CreateRestock -> %w", err)
	}

	logWarnings("restock", created.ID, warnings)

	return created, warnings, nil
}

const reasonInsufficientStock = "insufficient stock, quantity clamped at zero"

// applyLine validates one line reference and applies the quantity delta to
// the referenced product, clamping at zero. Each line sees the quantities
// left by the lines before it. The returned warning is nil when the line
// applied cleanly; a non-nil warning with the insufficient-stock reason means
// the line still applied, any other reason means it was skipped.
func (s *TransactionService) applyLine(ctx context.Context, line int, productID uint, quantity, delta int) (domain.Product, *Warning, error) {
	if productID == 0 {
		return domain.Product{}, &Warning{Line: line, Reason: "missing product reference"}, nil
	}
	if quantity < 1 {
		return domain.Product{}, &Warning{Line: line, ProductID: productID, Reason: "quantity must be at least 1"}, nil
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return domain.Product{}, &Warning{Line: line, ProductID: productID, Reason: "unknown product"}, nil
	}
	if err != nil {
		return domain.Product{}, nil, fmt.Errorf("s.productRepo.FindByID -> %w", err)
	}

	var warning *Warning
	newQuantity := product.Quantity + delta
	if newQuantity < 0 {
		newQuantity = 0
		warning = &Warning{Line: line, ProductID: productID, Reason: reasonInsufficientStock}
	}

	product.Quantity = newQuantity
	product.UpdatedAt = time.Now()
	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		return domain.Product{}, nil, fmt.Errorf("s.productRepo.Update -> %w", err)
	}

	return updated, warning, nil
}

func (s *TransactionService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales, err := s.repo.FindAllSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllSales -> %w", err)
	}

	return sales, nil
}

func (s *TransactionService) GetSale(ctx context.Context, id uint) (domain.Sale, error) {
	sale, err := s.repo.FindSaleByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("s.repo.FindSaleByID -> %w", err)
	}

	return sale, nil
}

func (s *TransactionService) SalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error) {
	sales, err := s.repo.FindSalesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindSalesByDate -> %w", err)
	}

	return sales, nil
}

func (s *TransactionService) ListRestocks(ctx context.Context) ([]domain.Restock, error) {
	restocks, err := s.repo.FindAllRestocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllRestocks -> %w", err)
	}

	return restocks, nil
}

func logWarnings(kind string, id uint, warnings []Warning) {
	for _, w := range warnings {
		zap.L().Warn("line item warning",
			zap.String("transaction", kind),
			zap.Uint("id", id),
			zap.Int("line", w.Line),
			zap.Uint("productID", w.ProductID),
			zap.String("reason", w.Reason),
		)
	}
}
