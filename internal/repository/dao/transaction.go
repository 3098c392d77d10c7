package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/depotbar/stock-api/internal/domain"
)

// Vente is a sale row. Line items are stored in the textual encoding handled
// by the lineitem package, one line per item.
type Vente struct {
	ID             uint      `gorm:"primaryKey"`
	TotalAmount    float64   `gorm:"not null"`
	NomProdEtPrixT string    `gorm:"column:nom_prod_et_prix_t;type:text"`
	Timestamp      time.Time `gorm:"not null;index"`
}

// Achat is a restock row, line items encoded the same way minus the sold
// price field.
type Achat struct {
	ID             uint      `gorm:"primaryKey"`
	NomProdEtPrixT string    `gorm:"column:nom_prod_et_prix_t;type:text"`
	Date           time.Time `gorm:"not null;index"`
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) InsertVente(ctx context.Context, vente Vente) (Vente, error) {
	result := d.db.WithContext(ctx).Create(&vente)
	if result.Error != nil {
		return Vente{}, result.Error
	}

	return vente, nil
}

func (d *TransactionDAO) FindAllVentes(ctx context.Context) ([]Vente, error) {
	var ventes []Vente

	result := d.db.WithContext(ctx).Order("timestamp desc, id desc").Find(&ventes)
	if result.Error != nil {
		return nil, result.Error
	}

	return ventes, nil
}

func (d *TransactionDAO) FindVenteByID(ctx context.Context, id uint) (Vente, error) {
	var vente Vente

	result := d.db.WithContext(ctx).First(&vente, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Vente{}, domain.ErrSaleNotFound
		}

		return Vente{}, result.Error
	}

	return vente, nil
}

func (d *TransactionDAO) FindVentesByDate(ctx context.Context, date time.Time) ([]Vente, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var ventes []Vente
	result := d.db.WithContext(ctx).
		Where("timestamp >= ? AND timestamp < ?", day, day.AddDate(0, 0, 1)).
		Order("timestamp desc, id desc").
		Find(&ventes)
	if result.Error != nil {
		return nil, result.Error
	}

	return ventes, nil
}

func (d *TransactionDAO) InsertAchat(ctx context.Context, achat Achat) (Achat, error) {
	result := d.db.WithContext(ctx).Create(&achat)
	if result.Error != nil {
		return Achat{}, result.Error
	}

	return achat, nil
}

func (d *TransactionDAO) FindAllAchats(ctx context.Context) ([]Achat, error) {
	var achats []Achat

	result := d.db.WithContext(ctx).Order("date desc, id desc").Find(&achats)
	if result.Error != nil {
		return nil, result.Error
	}

	return achats, nil
}
