package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depotbar/stock-api/internal/api/handler/v1/response"
	"github.com/depotbar/stock-api/internal/domain"
)

func TestHandleCreateSale(t *testing.T) {
	server, s := newTestServer(t,
		domain.Product{Name: "Soda Can", Quantity: 40, UnitPrice: 10.0},
		domain.Product{Name: "Chips", Quantity: 20, UnitPrice: 5.0},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente",
		`{"items":[{"id":1,"quantity":3},{"id":2,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created response.CreatedSale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.InDelta(t, 40.0, created.TotalAmount, 0.001)
	assert.Empty(t, created.Warnings)
	assert.Contains(t, created.NomProdEtPrixT, "CodeProduit: 1")
	assert.Contains(t, created.NomProdEtPrixT, "Nom produit: Soda Can")

	p, err := s.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 37, p.Quantity)
}

func TestHandleCreateSaleReportsWarnings(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente",
		`{"items":[{"id":1,"quantity":5}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created response.CreatedSale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Warnings, 1)
	assert.Contains(t, created.Warnings[0].Reason, "clamped")
}

func TestHandleCreateSaleRejectsEmptyItems(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, http.MethodPost, "/api/vente/newVente", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateSaleAllLinesSkipped(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente",
		`{"items":[{"id":99,"quantity":2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAllSales(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Soda Can", Quantity: 40, UnitPrice: 2.50},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente",
		`{"items":[{"id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/vente/getAllVente", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sales []response.Sale
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	require.Len(t, sales, 1)
	assert.InDelta(t, 5.00, sales[0].TotalAmount, 0.001)
}

func TestHandleGetSaleByID(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Soda Can", Quantity: 40, UnitPrice: 2.50},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/vente/newVente",
		`{"items":[{"id":1,"quantity":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/vente/by-id/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/vente/by-id/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/vente/by-id/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetSalesByDateRejectsBadDate(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodGet, "/api/vente/by-date/12-08-2026", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/vente/by-date/2026-08-12", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
