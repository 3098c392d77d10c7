// Package store is the in-memory storage backend: a mutex-guarded product
// catalog plus append-only sale and restock ledgers. It satisfies the same
// repository interfaces as the Postgres backend, so the service layer runs
// unchanged on top of it (memory storage mode, tests, seeding demos).
package store

import (
	"context"
	"sync"
	"time"

	"github.com/depotbar/stock-api/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	products map[uint]domain.Product
	order    []uint // catalog insertion order

	sales    []domain.Sale    // most recent first
	restocks []domain.Restock // most recent first

	nextProductID uint
	nextSaleID    uint
	nextRestockID uint
}

func New() *Store {
	return &Store{
		products:      make(map[uint]domain.Product),
		nextProductID: 1,
		nextSaleID:    1,
		nextRestockID: 1,
	}
}

// Seed replaces the catalog with the given products, assigning fresh ids to
// entries that carry none. Ledgers are left untouched.
func (s *Store) Seed(products ...domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[uint]domain.Product, len(products))
	s.order = s.order[:0]
	for _, p := range products {
		if p.ID == 0 {
			p.ID = s.nextProductID
		}
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
}

// Clear drops the catalog and both ledgers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make(map[uint]domain.Product)
	s.order = nil
	s.sales = nil
	s.restocks = nil
	s.nextProductID = 1
	s.nextSaleID = 1
	s.nextRestockID = 1
}

func (s *Store) Create(ctx context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = s.nextProductID
	s.nextProductID++
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)

	return product, nil
}

func (s *Store) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[product.ID]; !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	s.products[product.ID] = product

	return product, nil
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *Store) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return p, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if s.products[id].Name == name {
			return s.products[id], nil
		}
	}

	return domain.Product{}, domain.ErrProductNotFound
}

func (s *Store) FindAll(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.products[id])
	}

	return products, nil
}

func (s *Store) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale.ID = s.nextSaleID
	s.nextSaleID++
	sale.Items = append([]domain.SaleLineItem(nil), sale.Items...)
	s.sales = append([]domain.Sale{sale}, s.sales...)

	return sale, nil
}

func (s *Store) FindAllSales(ctx context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Sale(nil), s.sales...), nil
}

func (s *Store) FindSaleByID(ctx context.Context, id uint) (domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sale := range s.sales {
		if sale.ID == id {
			return sale, nil
		}
	}

	return domain.Sale{}, domain.ErrSaleNotFound
}

func (s *Store) FindSalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	y, m, d := date.Date()
	var sales []domain.Sale
	for _, sale := range s.sales {
		sy, sm, sd := sale.Timestamp.Date()
		if sy == y && sm == m && sd == d {
			sales = append(sales, sale)
		}
	}

	return sales, nil
}

func (s *Store) CreateRestock(ctx context.Context, restock domain.Restock) (domain.Restock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	restock.ID = s.nextRestockID
	s.nextRestockID++
	restock.Items = append([]domain.RestockLineItem(nil), restock.Items...)
	s.restocks = append([]domain.Restock{restock}, s.restocks...)

	return restock, nil
}

func (s *Store) FindAllRestocks(ctx context.Context) ([]domain.Restock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Restock(nil), s.restocks...), nil
}
