package lineitem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depotbar/stock-api/internal/domain"
)

func TestDecode_SaleLine(t *testing.T) {
	line := "CodeProduit: 12, Nom produit: Widget, Qte produit: 3, Prix unitaire: 9.99, Prix vendu: 8.50, Total: 25.50"

	res := Decode(line, KindSale)

	require.True(t, res.Clean(), "expected no warnings, got %v", res.Warnings)
	assert.Equal(t, "12", res.Item.ID)
	assert.Equal(t, uint(12), res.Item.ProductID())
	assert.Equal(t, "Widget", res.Item.Name)
	assert.Equal(t, 3, res.Item.Quantity)
	assert.Equal(t, 9.99, res.Item.UnitPrice)
	assert.Equal(t, 8.50, res.Item.SoldPrice)
	assert.Equal(t, 25.50, res.Item.Total)
}

func TestDecode_EmptyString(t *testing.T) {
	res := Decode("", KindSale)

	assert.False(t, res.Clean())
	assert.Len(t, res.Warnings, 6)
	assert.Equal(t, Item{}, res.Item)
}

func TestDecode_PartialLine(t *testing.T) {
	// Missing "Total": matched groups populate, the rest defaults.
	line := "CodeProduit: 7, Nom produit: Clavier, Qte produit: 2, Prix unitaire: 149.99, Prix vendu: 120.00"

	res := Decode(line, KindSale)

	assert.False(t, res.Clean())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Total", res.Warnings[0].Field)
	assert.Equal(t, "Clavier", res.Item.Name)
	assert.Equal(t, 2, res.Item.Quantity)
	assert.Equal(t, 120.00, res.Item.SoldPrice)
	assert.Zero(t, res.Item.Total)
}

func TestDecode_TrailingGarbageOnNumbers(t *testing.T) {
	line := "CodeProduit: 12abc, Nom produit: Widget, Qte produit: 3pcs, Prix unitaire: 9.99EUR, Prix vendu: 8.50x, Total: 25.50!!"

	res := Decode(line, KindSale)

	assert.Equal(t, "12", res.Item.ID)
	assert.Equal(t, 3, res.Item.Quantity)
	assert.Equal(t, 9.99, res.Item.UnitPrice)
	assert.Equal(t, 8.50, res.Item.SoldPrice)
	assert.Equal(t, 25.50, res.Item.Total)
}

func TestDecode_RestockKindSkipsSoldPrice(t *testing.T) {
	line := "CodeProduit: 4, Nom produit: Souris, Qte produit: 10, Prix unitaire: 25.00, Total: 250.00"

	res := Decode(line, KindRestock)

	require.True(t, res.Clean(), "expected no warnings, got %v", res.Warnings)
	assert.Equal(t, 10, res.Item.Quantity)
	assert.Zero(t, res.Item.SoldPrice)
	assert.Equal(t, 250.00, res.Item.Total)
}

func TestDecode_OutOfOrderFieldsDoNotMatch(t *testing.T) {
	// Field order is significant; a Total placed before Qte is not picked up.
	line := "CodeProduit: 5, Nom produit: Ecran, Total: 99.00, Qte produit: 1, Prix unitaire: 99.00, Prix vendu: 99.00"

	res := Decode(line, KindSale)

	assert.False(t, res.Clean())
	assert.Zero(t, res.Item.Total)
	assert.Equal(t, 1, res.Item.Quantity)
}

func TestDecode_Idempotent(t *testing.T) {
	line := "CodeProduit: 12, Nom produit: Widget, Qte produit: 3, Prix unitaire: 9.99, Prix vendu: 8.50, Total: 25.50"

	assert.Equal(t, Decode(line, KindSale), Decode(line, KindSale))
}

func TestDecodeAll(t *testing.T) {
	payload := "CodeProduit: 1, Nom produit: A, Qte produit: 1, Prix unitaire: 2.00, Prix vendu: 2.00, Total: 2.00\n" +
		"\n" +
		"CodeProduit: 2, Nom produit: B, Qte produit: 4, Prix unitaire: 3.00, Prix vendu: 2.50, Total: 10.00"

	results := DecodeAll(payload, KindSale)

	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Item.Name)
	assert.Equal(t, uint(2), results[1].Item.ProductID())
	assert.Equal(t, 10.00, results[1].Item.Total)
}

func TestEncodeSaleItem_RoundTrip(t *testing.T) {
	li := domain.SaleLineItem{
		ProductID: 12,
		Name:      "Widget",
		Quantity:  3,
		UnitPrice: 9.99,
		SoldPrice: 8.50,
	}

	encoded := EncodeSaleItem(li)
	assert.Equal(t, "CodeProduit: 12, Nom produit: Widget, Qte produit: 3, Prix unitaire: 9.99, Prix vendu: 8.50, Total: 25.50", encoded)

	res := Decode(encoded, KindSale)
	require.True(t, res.Clean())
	assert.Equal(t, li, res.Item.SaleLine())
}

func TestDecode_CommaInNameTruncates(t *testing.T) {
	// Commas delimit fields, so a comma-bearing name cannot survive a round
	// trip. Request validation keeps such names out of the catalog.
	li := domain.SaleLineItem{ProductID: 1, Name: "Soda, Can", Quantity: 1, UnitPrice: 2.50, SoldPrice: 2.50}

	res := Decode(EncodeSaleItem(li), KindSale)

	assert.Equal(t, "Soda", res.Item.Name)
}

func TestEncodeSaleItem_RoundsPricesToTwoDecimals(t *testing.T) {
	li := domain.SaleLineItem{ProductID: 1, Name: "Widget", Quantity: 1, UnitPrice: 9.994, SoldPrice: 9.994}

	encoded := EncodeSaleItem(li)
	assert.Contains(t, encoded, "Prix unitaire: 9.99,")

	res := Decode(encoded, KindSale)
	assert.Equal(t, 9.99, res.Item.UnitPrice)
}

func TestEncodeRestock(t *testing.T) {
	items := []domain.RestockLineItem{
		{ProductID: 4, Name: "Souris", Quantity: 10, UnitPrice: 25},
		{ProductID: 5, Name: "Ecran", Quantity: 2, UnitPrice: 99.5},
	}

	encoded := EncodeRestock(items)

	results := DecodeAll(encoded, KindRestock)
	require.Len(t, results, 2)
	assert.Equal(t, items[0], results[0].Item.RestockLine())
	assert.Equal(t, 199.00, results[1].Item.Total)
}
