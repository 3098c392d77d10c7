package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/repository/dao"
)

func TestSaleRowRoundTrip(t *testing.T) {
	r := &TransactionRepository{}

	sale := domain.Sale{
		ID: 3,
		Items: []domain.SaleLineItem{
			{ProductID: 12, Name: "Widget", Quantity: 3, UnitPrice: 9.99, SoldPrice: 8.50},
			{ProductID: 7, Name: "Gadget", Quantity: 1, UnitPrice: 4.00, SoldPrice: 4.00},
		},
		TotalAmount: 29.50,
		Timestamp:   time.Date(2026, 8, 12, 18, 0, 0, 0, time.UTC),
	}

	row := r.saleToDao(sale)
	assert.Contains(t, row.NomProdEtPrixT, "CodeProduit: 12")
	assert.Contains(t, row.NomProdEtPrixT, "Prix vendu: 8.50")

	back := r.daoToSale(row)
	assert.Equal(t, sale.ID, back.ID)
	assert.InDelta(t, sale.TotalAmount, back.TotalAmount, 0.001)
	require.Len(t, back.Items, 2)
	assert.Equal(t, uint(12), back.Items[0].ProductID)
	assert.Equal(t, "Widget", back.Items[0].Name)
	assert.InDelta(t, 8.50, back.Items[0].SoldPrice, 0.001)
}

func TestSaleRowKeepsStoredTotal(t *testing.T) {
	r := &TransactionRepository{}

	// The stored total is authoritative even when the encoded lines disagree.
	back := r.daoToSale(dao.Vente{
		ID:             5,
		TotalAmount:    99.00,
		NomProdEtPrixT: "CodeProduit: 1, Nom produit: Widget, Qte produit: 1, Prix unitaire: 2.00, Prix vendu: 2.00, Total: 2.00",
	})

	assert.InDelta(t, 99.00, back.TotalAmount, 0.001)
}

func TestSaleRowToleratesPartialLines(t *testing.T) {
	r := &TransactionRepository{}

	back := r.daoToSale(dao.Vente{
		ID:             6,
		NomProdEtPrixT: "CodeProduit: 4, Nom produit: Mystery",
	})

	require.Len(t, back.Items, 1)
	assert.Equal(t, uint(4), back.Items[0].ProductID)
	assert.Equal(t, "Mystery", back.Items[0].Name)
	assert.Zero(t, back.Items[0].Quantity)
}

func TestRestockRowRoundTrip(t *testing.T) {
	r := &TransactionRepository{}

	restock := domain.Restock{
		ID: 2,
		Items: []domain.RestockLineItem{
			{ProductID: 12, Name: "Widget", Quantity: 2, UnitPrice: 9.99},
		},
		Timestamp: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	}

	row := r.restockToDao(restock)
	assert.NotContains(t, row.NomProdEtPrixT, "Prix vendu")
	assert.Equal(t, restock.Timestamp, row.Date)

	back := r.daoToRestock(row)
	require.Len(t, back.Items, 1)
	assert.Equal(t, 2, back.Items[0].Quantity)
	assert.InDelta(t, 19.98, back.TotalCost(), 0.001)
}
