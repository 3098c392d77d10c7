// Package lineitem implements the textual line-item encoding used by the
// vente/achat endpoints. A transaction's items travel as one string per item:
//
//	CodeProduit: 12, Nom produit: Widget, Qte produit: 3, Prix unitaire: 9.99, Prix vendu: 8.50, Total: 25.50
//
// Sales carry the "Prix vendu" field; restocks do not. Decoding is tolerant:
// a malformed line never produces an error, unmatched fields fall back to
// zero/empty values and are reported as warnings on the Result.
package lineitem

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/depotbar/stock-api/internal/domain"
)

// Kind selects the schema variant of a line.
type Kind int

const (
	KindSale Kind = iota
	KindRestock
)

// Item is one decoded line. ID is kept as the raw captured text; use
// ProductID for the numeric form.
type Item struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	SoldPrice float64 `json:"soldPrice"`
	Total     float64 `json:"total"`
}

// ProductID returns the numeric product reference, zero when the id did not
// decode.
func (it Item) ProductID() uint {
	id, err := strconv.ParseUint(it.ID, 10, 64)
	if err != nil {
		return 0
	}

	return uint(id)
}

// SaleLine converts the decoded item into a sale line item.
func (it Item) SaleLine() domain.SaleLineItem {
	return domain.SaleLineItem{
		ProductID: it.ProductID(),
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		SoldPrice: it.SoldPrice,
	}
}

// RestockLine converts the decoded item into a restock line item.
func (it Item) RestockLine() domain.RestockLineItem {
	return domain.RestockLineItem{
		ProductID: it.ProductID(),
		Name:      it.Name,
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
	}
}

// Warning records a field that did not match and was defaulted.
type Warning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Result tags a decoded item with the warnings gathered while decoding, so
// callers can tell a clean parse from a defaulted one.
type Result struct {
	Item     Item      `json:"item"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Clean reports whether every field matched.
func (r Result) Clean() bool {
	return len(r.Warnings) == 0
}

type field struct {
	name   string
	re     *regexp2.Regexp
	assign func(it *Item, raw string)
}

// Field order mirrors the encoder and is significant: each pattern is searched
// from the end of the previous match, so out-of-order fields do not decode.
var saleFields = []field{
	{
		name:   "CodeProduit",
		re:     regexp2.MustCompile(`CodeProduit:\s*(\d+)`, regexp2.None),
		assign: func(it *Item, raw string) { it.ID = raw },
	},
	{
		name:   "Nom produit",
		re:     regexp2.MustCompile(`Nom produit:\s*([^,]*)`, regexp2.None),
		assign: func(it *Item, raw string) { it.Name = strings.TrimSpace(raw) },
	},
	{
		name:   "Qte produit",
		re:     regexp2.MustCompile(`Qte produit:\s*(\d+)`, regexp2.None),
		assign: func(it *Item, raw string) { it.Quantity = atoi(raw) },
	},
	{
		name:   "Prix unitaire",
		re:     regexp2.MustCompile(`Prix unitaire:\s*(\d+(?:\.\d+)?)`, regexp2.None),
		assign: func(it *Item, raw string) { it.UnitPrice = atof(raw) },
	},
	{
		name:   "Prix vendu",
		re:     regexp2.MustCompile(`Prix vendu:\s*(\d+(?:\.\d+)?)`, regexp2.None),
		assign: func(it *Item, raw string) { it.SoldPrice = atof(raw) },
	},
	{
		name:   "Total",
		re:     regexp2.MustCompile(`Total:\s*(\d+(?:\.\d+)?)`, regexp2.None),
		assign: func(it *Item, raw string) { it.Total = atof(raw) },
	},
}

func fieldsFor(kind Kind) []field {
	if kind == KindRestock {
		fields := make([]field, 0, len(saleFields)-1)
		for _, f := range saleFields {
			if f.name == "Prix vendu" {
				continue
			}
			fields = append(fields, f)
		}

		return fields
	}

	return saleFields
}

// Decode parses a single encoded line. It is pure and never fails; fields
// that do not match keep their zero value and add a warning to the result.
func Decode(line string, kind Kind) Result {
	var res Result

	pos := 0
	for _, f := range fieldsFor(kind) {
		m, err := f.re.FindStringMatchStartingAt(line, pos)
		if err != nil || m == nil {
			res.Warnings = append(res.Warnings, Warning{
				Field:  f.name,
				Reason: "field not found, defaulted",
			})
			continue
		}

		f.assign(&res.Item, m.GroupByNumber(1).String())
		pos = m.Index + m.Length
	}

	return res
}

// DecodeAll splits a multi-line payload and decodes every non-empty line.
func DecodeAll(payload string, kind Kind) []Result {
	var results []Result
	for _, line := range strings.Split(payload, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, Decode(line, kind))
	}

	return results
}

// EncodeSaleItem renders a sale line in the wire form decoded by Decode.
// Prices are written with two decimals; since this encoding is also the
// stored form, sub-cent precision is not preserved.
func EncodeSaleItem(li domain.SaleLineItem) string {
	return fmt.Sprintf("CodeProduit: %d, Nom produit: %s, Qte produit: %d, Prix unitaire: %.2f, Prix vendu: %.2f, Total: %.2f",
		li.ProductID, li.Name, li.Quantity, li.UnitPrice, li.SoldPrice, li.Total())
}

// EncodeRestockItem renders a restock line; restocks have no sold price.
// Prices round to two decimals, same as EncodeSaleItem.
func EncodeRestockItem(li domain.RestockLineItem) string {
	return fmt.Sprintf("CodeProduit: %d, Nom produit: %s, Qte produit: %d, Prix unitaire: %.2f, Total: %.2f",
		li.ProductID, li.Name, li.Quantity, li.UnitPrice, li.Total())
}

// EncodeSale joins the encoded lines of a sale, one item per line.
func EncodeSale(items []domain.SaleLineItem) string {
	lines := make([]string, len(items))
	for i, li := range items {
		lines[i] = EncodeSaleItem(li)
	}

	return strings.Join(lines, "\n")
}

// EncodeRestock joins the encoded lines of a restock, one item per line.
func EncodeRestock(items []domain.RestockLineItem) string {
	lines := make([]string, len(items))
	for i, li := range items {
		lines[i] = EncodeRestockItem(li)
	}

	return strings.Join(lines, "\n")
}

func atoi(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}

	return n
}

func atof(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return f
}
