package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/depotbar/stock-api/internal/api/handler/v1/request"
	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/lineitem"
)

// Catalog mirrors the backend's product and ledger state on the client side.
// Every mutator writes through the HTTP client and then refetches the
// affected collections, so the snapshot always reflects what the server
// actually stored, reconciliation warnings included.
type Catalog struct {
	client *Client

	mu       sync.RWMutex
	products []domain.Product
	sales    []response.Sale
	restocks []response.Restock
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Init loads the full backend state. Call it once before reading.
func (c *Catalog) Init(ctx context.Context) error {
	if err := c.refreshProducts(ctx); err != nil {
		return err
	}
	if err := c.refreshSales(ctx); err != nil {
		return err
	}

	return c.refreshRestocks(ctx)
}

// Clear drops the local snapshot without touching the backend.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.sales = nil
	c.restocks = nil
}

func (c *Catalog) AddProduct(ctx context.Context, req request.CreateProductRequest) (domain.Product, error) {
	created, err := c.client.CreateProduct(ctx, req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("c.client.CreateProduct -> %w", err)
	}
	if err := c.refreshProducts(ctx); err != nil {
		return domain.Product{}, err
	}

	return created, nil
}

func (c *Catalog) AddProducts(ctx context.Context, reqs []request.CreateProductRequest) ([]domain.Product, error) {
	created, err := c.client.CreateProducts(ctx, reqs)
	if err != nil {
		return nil, fmt.Errorf("c.client.CreateProducts -> %w", err)
	}
	if err := c.refreshProducts(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, productID uint, req request.UpdateProductRequest) (domain.Product, error) {
	updated, err := c.client.UpdateProduct(ctx, productID, req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("c.client.UpdateProduct -> %w", err)
	}
	if err := c.refreshProducts(ctx); err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, productID uint) error {
	if err := c.client.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("c.client.DeleteProduct -> %w", err)
	}

	return c.refreshProducts(ctx)
}

// RecordSale posts the sale, then refetches both the catalog (stock levels
// moved) and the sale ledger.
func (c *Catalog) RecordSale(ctx context.Context, req request.CreateSaleRequest) (response.CreatedSale, error) {
	created, err := c.client.CreateSale(ctx, req)
	if err != nil {
		return response.CreatedSale{}, fmt.Errorf("c.client.CreateSale -> %w", err)
	}
	if err := c.refreshProducts(ctx); err != nil {
		return response.CreatedSale{}, err
	}
	if err := c.refreshSales(ctx); err != nil {
		return response.CreatedSale{}, err
	}

	return created, nil
}

// RecordRestock posts the restock, then refetches the catalog and the
// restock ledger.
func (c *Catalog) RecordRestock(ctx context.Context, req request.CreateRestockRequest) (response.CreatedRestock, error) {
	created, err := c.client.CreateRestock(ctx, req)
	if err != nil {
		return response.CreatedRestock{}, fmt.Errorf("c.client.CreateRestock -> %w", err)
	}
	if err := c.refreshProducts(ctx); err != nil {
		return response.CreatedRestock{}, err
	}
	if err := c.refreshRestocks(ctx); err != nil {
		return response.CreatedRestock{}, err
	}

	return created, nil
}

// Products returns a copy of the product snapshot in catalog order.
func (c *Catalog) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)

	return out
}

// Product looks the snapshot up by ID.
func (c *Catalog) Product(productID uint) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == productID {
			return p, true
		}
	}

	return domain.Product{}, false
}

// LowStockProducts filters the snapshot, same rule as the server.
func (c *Catalog) LowStockProducts() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Product
	for _, p := range c.products {
		if p.LowStock() {
			out = append(out, p)
		}
	}

	return out
}

// Sales returns a copy of the sale snapshot, most recent first.
func (c *Catalog) Sales() []response.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]response.Sale, len(c.sales))
	copy(out, c.sales)

	return out
}

// SalesOn filters the snapshot to one calendar day.
func (c *Catalog) SalesOn(date time.Time) []response.Sale {
	c.mu.RLock()
	defer c.mu.RUnlock()

	y, m, d := date.Date()

	var out []response.Sale
	for _, s := range c.sales {
		sy, sm, sd := s.Timestamp.Date()
		if sy == y && sm == m && sd == d {
			out = append(out, s)
		}
	}

	return out
}

// Restocks returns a copy of the restock snapshot, most recent first.
func (c *Catalog) Restocks() []response.Restock {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]response.Restock, len(c.restocks))
	copy(out, c.restocks)

	return out
}

func (c *Catalog) refreshProducts(ctx context.Context) error {
	products, err := c.client.GetAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("c.client.GetAllProducts -> %w", err)
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return nil
}

func (c *Catalog) refreshSales(ctx context.Context) error {
	sales, err := c.client.GetAllSales(ctx)
	if err != nil {
		return fmt.Errorf("c.client.GetAllSales -> %w", err)
	}

	// Some deployments only fill nomProdEtPrixT; rebuild the typed items
	// from the encoded text when they are missing.
	for i := range sales {
		if len(sales[i].Items) > 0 || sales[i].NomProdEtPrixT == "" {
			continue
		}
		results := lineitem.DecodeAll(sales[i].NomProdEtPrixT, lineitem.KindSale)
		for _, res := range results {
			if !res.Clean() {
				zap.L().Warn("sale line decoded with warnings",
					zap.Uint("sale_id", sales[i].ID),
					zap.Any("warnings", res.Warnings))
			}
			sales[i].Items = append(sales[i].Items, res.Item.SaleLine())
		}
	}

	c.mu.Lock()
	c.sales = sales
	c.mu.Unlock()

	return nil
}

func (c *Catalog) refreshRestocks(ctx context.Context) error {
	restocks, err := c.client.GetAllRestocks(ctx)
	if err != nil {
		return fmt.Errorf("c.client.GetAllRestocks -> %w", err)
	}

	for i := range restocks {
		if len(restocks[i].Items) > 0 || restocks[i].NomProdEtPrixT == "" {
			continue
		}
		results := lineitem.DecodeAll(restocks[i].NomProdEtPrixT, lineitem.KindRestock)
		for _, res := range results {
			if !res.Clean() {
				zap.L().Warn("restock line decoded with warnings",
					zap.Uint("restock_id", restocks[i].ID),
					zap.Any("warnings", res.Warnings))
			}
			restocks[i].Items = append(restocks[i].Items, res.Item.RestockLine())
		}
	}

	c.mu.Lock()
	c.restocks = restocks
	c.mu.Unlock()

	return nil
}
