package repository

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/depotbar/stock-api/internal/domain"
	"github.com/depotbar/stock-api/internal/lineitem"
	"github.com/depotbar/stock-api/internal/repository/dao"
)

var ErrSaleNotFound = domain.ErrSaleNotFound

// TransactionRepository persists sales and restocks. Line items are stored in
// the textual encoding (one line per item) and decoded back on load, which is
// also what list endpoints return to clients.
type TransactionRepository struct {
	dao *dao.TransactionDAO
}

func NewTransactionRepository(dao *dao.TransactionDAO) *TransactionRepository {
	return &TransactionRepository{
		dao: dao,
	}
}

func (r *TransactionRepository) saleToDao(sale domain.Sale) dao.Vente {
	return dao.Vente{
		ID:             sale.ID,
		TotalAmount:    sale.TotalAmount,
		NomProdEtPrixT: lineitem.EncodeSale(sale.Items),
		Timestamp:      sale.Timestamp,
	}
}

func (r *TransactionRepository) daoToSale(vente dao.Vente) domain.Sale {
	results := lineitem.DecodeAll(vente.NomProdEtPrixT, lineitem.KindSale)
	items := make([]domain.SaleLineItem, len(results))
	for i, res := range results {
		if !res.Clean() {
			zap.L().Warn("stored sale line decoded with defaults",
				zap.Uint("venteID", vente.ID),
				zap.Int("line", i),
				zap.Any("warnings", res.Warnings),
			)
		}
		items[i] = res.Item.SaleLine()
	}

	return domain.Sale{
		ID:          vente.ID,
		Items:       items,
		TotalAmount: vente.TotalAmount,
		Timestamp:   vente.Timestamp,
	}
}

func (r *TransactionRepository) restockToDao(restock domain.Restock) dao.Achat {
	return dao.Achat{
		ID:             restock.ID,
		NomProdEtPrixT: lineitem.EncodeRestock(restock.Items),
		Date:           restock.Timestamp,
	}
}

func (r *TransactionRepository) daoToRestock(achat dao.Achat) domain.Restock {
	results := lineitem.DecodeAll(achat.NomProdEtPrixT, lineitem.KindRestock)
	items := make([]domain.RestockLineItem, len(results))
	for i, res := range results {
		if !res.Clean() {
			zap.L().Warn("stored restock line decoded with defaults",
				zap.Uint("achatID", achat.ID),
				zap.Int("line", i),
				zap.Any("warnings", res.Warnings),
			)
		}
		items[i] = res.Item.RestockLine()
	}

	return domain.Restock{
		ID:        achat.ID,
		Items:     items,
		Timestamp: achat.Date,
	}
}

func (r *TransactionRepository) CreateSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	created, err := r.dao.InsertVente(ctx, r.saleToDao(sale))
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.InsertVente -> %w", err)
	}

	return r.daoToSale(created), nil
}

func (r *TransactionRepository) FindAllSales(ctx context.Context) ([]domain.Sale, error) {
	ventes, err := r.dao.FindAllVentes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllVentes -> %w", err)
	}

	sales := make([]domain.Sale, len(ventes))
	for i, v := range ventes {
		sales[i] = r.daoToSale(v)
	}

	return sales, nil
}

func (r *TransactionRepository) FindSaleByID(ctx context.Context, id uint) (domain.Sale, error) {
	vente, err := r.dao.FindVenteByID(ctx, id)
	if err != nil {
		return domain.Sale{}, fmt.Errorf("r.dao.FindVenteByID -> %w", err)
	}

	return r.daoToSale(vente), nil
}

func (r *TransactionRepository) FindSalesByDate(ctx context.Context, date time.Time) ([]domain.Sale, error) {
	ventes, err := r.dao.FindVentesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindVentesByDate -> %w", err)
	}

	sales := make([]domain.Sale, len(ventes))
	for i, v := range ventes {
		sales[i] = r.daoToSale(v)
	}

	return sales, nil
}

func (r *TransactionRepository) CreateRestock(ctx context.Context, restock domain.Restock) (domain.Restock, error) {
	created, err := r.dao.InsertAchat(ctx, r.restockToDao(restock))
	if err != nil {
		return domain.Restock{}, fmt.Errorf("r.dao.InsertAchat -> %w", err)
	}

	return r.daoToRestock(created), nil
}

func (r *TransactionRepository) FindAllRestocks(ctx context.Context) ([]domain.Restock, error) {
	achats, err := r.dao.FindAllAchats(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllAchats -> %w", err)
	}

	restocks := make([]domain.Restock, len(achats))
	for i, a := range achats {
		restocks[i] = r.daoToRestock(a)
	}

	return restocks, nil
}
