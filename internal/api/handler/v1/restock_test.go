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

func TestHandleCreateRestock(t *testing.T) {
	server, s := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/achat/new-achat",
		`{"items":[{"id":1,"quantity":4}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created response.CreatedRestock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.InDelta(t, 4.80, created.TotalCost, 0.001)
	assert.Empty(t, created.Warnings)
	assert.Contains(t, created.NomProdEtPrixT, "Qte produit: 4")

	p, err := s.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Quantity)
}

func TestHandleCreateRestockWithExplicitUnitPrice(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/achat/new-achat",
		`{"items":[{"id":1,"quantity":2,"unitPrice":0.9}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created response.CreatedRestock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.InDelta(t, 1.80, created.TotalCost, 0.001)
}

func TestHandleCreateRestockSkipsUnknownProduct(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/achat/new-achat",
		`{"items":[{"id":99,"quantity":4},{"id":1,"quantity":1}]}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created response.CreatedRestock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Warnings, 1)
	assert.Equal(t, "unknown product", created.Warnings[0].Reason)
	require.Len(t, created.Items, 1)
}

func TestHandleCreateRestockRejectsEmptyItems(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(t, server, http.MethodPost, "/api/achat/new-achat", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetAllRestocks(t *testing.T) {
	server, _ := newTestServer(t,
		domain.Product{Name: "Chips", Quantity: 3, UnitPrice: 1.20},
	)

	rec := doRequest(t, server, http.MethodPost, "/api/achat/new-achat",
		`{"items":[{"id":1,"quantity":4}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, server, http.MethodGet, "/api/achat/get-all-achat", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var restocks []response.Restock
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restocks))
	require.Len(t, restocks, 1)
	assert.InDelta(t, 4.80, restocks[0].TotalCost, 0.001)
}
