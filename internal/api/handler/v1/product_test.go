package v1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depotbar/stock-api/internal/api"
	"github.com/depotbar/stock-api/internal/config"
	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/store"
)

func newTestServer(t *testing.T, products ...domain.Product) (*api.Server, *store.Store) {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:        "test",
			BaseURL:            "localhost:1010",
			Port:               "1010",
			Storage:            config.StorageMemory,
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	s := store.New()
	s.Seed(products...)

	return api.NewServer(conf, s, s), s
}

func doRequest(t *testing.T, server *api.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	server.Router.ServeHTTP(rec, req)

	return rec
}

func TestServerWithoutCORSDomains(t *testing.T) {
	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment: "test",
			BaseURL:     "localhost:1010",
			Port:        "1010",
			Storage:     config.StorageMemory,
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}
	s := store.New()

	var server *api.Server
	require.NotPanics(t, func() {
		server = api.NewServer(conf, s, s)
	})

	rec := doRequest(t, server, http.MethodGet, "/api/produit/getAllProd", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCreateProduct(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/produit/create",
		`{"name":"Soda Can","quantity":40,"unitPrice":2.5,"minQuantity":10}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), `"name":"Soda Can"`)
}

func TestHandleCreateProductBatch(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/produit/create",
		`[{"name":"Soda Can","quantity":40,"unitPrice":2.5},{"name":"Chips","quantity":20,"unitPrice":1.2}]`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["), "batch create returns an array")
	assert.Contains(t, rec.Body.String(), `"name":"Chips"`)
}

func TestHandleCreateProductRejectsMissingName(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/produit/create",
		`{"quantity":40,"unitPrice":2.5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateProductRejectsCommaInName(t *testing.T) {
	server, _ := newTestServer(t)

	// Commas would corrupt the encoded line items of sales referencing the
	// product.
	rec := doRequest(t, server, http.MethodPost, "/api/produit/create",
		`{"name":"Soda, Can","quantity":40,"unitPrice":2.5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateProductRejectsCommaInName(t *testing.T) {
	server, _ := newTestServer(t, domain.Product{Name: "Soda Can"})

	rec := doRequest(t, server, http.MethodPut, "/api/produit/update/1",
		`{"name":"Soda, Can"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateProductRejectsNegativeQuantity(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/produit/create",
		`{"name":"Soda Can","quantity":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUpdateProduct(t *testing.T) {
	server, _ := newTestServer(t, domain.Product{Name: "Soda Can", Quantity: 40, UnitPrice: 2.50})

	rec := doRequest(t, server, http.MethodPut, "/api/produit/update/1",
		`{"unitPrice":2.8}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"unitPrice":2.8`)
	assert.Contains(t, rec.Body.String(), `"quantity":40`)
}

func TestHandleUpdateProductNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPut, "/api/produit/update/42", `{"unitPrice":2.8}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteProduct(t *testing.T) {
	server, _ := newTestServer(t, domain.Product{Name: "Soda Can"})

	rec := doRequest(t, server, http.MethodDelete, "/api/produit/delete/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/produit/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetProductRejectsBadID(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/produit/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAllProducts(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Soda Can"},
		domain.Product{Name: "Chips"},
	)

	rec := doRequest(t, server, http.MethodGet, "/api/produit/getAllProd", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Soda Can")
	assert.Contains(t, rec.Body.String(), "Chips")
}

func TestHandleGetProductByName(t *testing.T) {
	server, _ := newTestServer(t, domain.Product{Name: "Soda Can"})

	rec := doRequest(t, server, http.MethodGet, "/api/produit/getProdByNom/Soda%20Can", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)

	rec = doRequest(t, server, http.MethodGet, "/api/produit/getProdByNom/Nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetLowStockProducts(t *testing.T) {
	min5 := 5
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 2, MinQuantity: &min5},
		domain.Product{Name: "Soda Can", Quantity: 10, MinQuantity: &min5},
	)

	rec := doRequest(t, server, http.MethodGet, "/api/produit/getLowStock", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Chips")
	assert.NotContains(t, rec.Body.String(), "Soda Can")
}
