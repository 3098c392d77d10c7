// Package gateway is the HTTP client for a remote stock-api backend. It
// mirrors the server surface one method per endpoint and keeps a refetched
// catalog snapshot in Catalog.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/depotbar/stock-api/internal/api/handler/v1/request"
	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/domain"
)

const defaultTimeout = 15 * time.Second

// APIError carries a non-2xx backend reply, body included, so callers can
// surface the server's own message.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend replied %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient points at a backend root such as "http://localhost:1010". The
// "/api" base path is added here.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL + "/api",
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP keeps the caller's transport, used by tests.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL: baseURL + "/api",
		http:    httpClient,
	}
}

func (c *Client) CreateProduct(ctx context.Context, req request.CreateProductRequest) (domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, http.MethodPost, "/produit/create", req, &out); err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) CreateProducts(ctx context.Context, reqs []request.CreateProductRequest) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodPost, "/produit/create", reqs, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, productID uint, req request.UpdateProductRequest) (domain.Product, error) {
	var out domain.Product
	path := "/produit/update/" + strconv.FormatUint(uint64(productID), 10)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID uint) error {
	path := "/produit/delete/" + strconv.FormatUint(uint64(productID), 10)

	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) GetProduct(ctx context.Context, productID uint) (domain.Product, error) {
	var out domain.Product
	path := "/produit/" + strconv.FormatUint(uint64(productID), 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/produit/getAllProd", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	var out domain.Product
	path := "/produit/getProdByNom/" + url.PathEscape(name)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return domain.Product{}, err
	}

	return out, nil
}

func (c *Client) GetLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, http.MethodGet, "/produit/getLowStock", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateSale(ctx context.Context, req request.CreateSaleRequest) (response.CreatedSale, error) {
	var out response.CreatedSale
	if err := c.do(ctx, http.MethodPost, "/vente/newVente", req, &out); err != nil {
		return response.CreatedSale{}, err
	}

	return out, nil
}

func (c *Client) GetAllSales(ctx context.Context) ([]response.Sale, error) {
	var out []response.Sale
	if err := c.do(ctx, http.MethodGet, "/vente/getAllVente", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) GetSaleByID(ctx context.Context, saleID uint) (response.Sale, error) {
	var out response.Sale
	path := "/vente/by-id/" + strconv.FormatUint(uint64(saleID), 10)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return response.Sale{}, err
	}

	return out, nil
}

func (c *Client) GetSalesByDate(ctx context.Context, date time.Time) ([]response.Sale, error) {
	var out []response.Sale
	path := "/vente/by-date/" + date.Format("2006-01-02")
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateRestock(ctx context.Context, req request.CreateRestockRequest) (response.CreatedRestock, error) {
	var out response.CreatedRestock
	if err := c.do(ctx, http.MethodPost, "/achat/new-achat", req, &out); err != nil {
		return response.CreatedRestock{}, err
	}

	return out, nil
}

func (c *Client) GetAllRestocks(ctx context.Context) ([]response.Restock, error) {
	var out []response.Restock
	if err := c.do(ctx, http.MethodGet, "/achat/get-all-achat", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// do sends one request and decodes the reply into out when out is non-nil.
// Non-2xx replies become an *APIError with the raw body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal -> %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("c.http.Do -> %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll -> %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("json.Unmarshal -> %w", err)
		}
	}

	return nil
}
