package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/depotbar/stock-api/internal/domain"
)

// ErrNegativeQuantity surfaces the quantity check constraint; the service
// clamps before writing, so hitting it means a caller bypassed the service.
var ErrNegativeQuantity = errors.New("product quantity cannot be negative")

type Produit struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Designation string
	Quantity    int `gorm:"not null;check:quantity >= 0"`
	UnitPrice   float64
	Description string
	MinQuantity *int
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type ProductDAO struct {
	db *gorm.DB
}

func NewProductDAO(db *gorm.DB) *ProductDAO {
	return &ProductDAO{
		db: db,
	}
}

func (d *ProductDAO) Insert(ctx context.Context, produit Produit) (Produit, error) {
	result := d.db.WithContext(ctx).Create(&produit)
	if result.Error != nil {
		return Produit{}, mapPgError(result.Error)
	}

	return produit, nil
}

func (d *ProductDAO) Update(ctx context.Context, produit Produit) (Produit, error) {
	result := d.db.WithContext(ctx).
		Model(&Produit{}).
		Where("id = ?", produit.ID).
		Select("*").
		Updates(produit)
	if result.Error != nil {
		return Produit{}, mapPgError(result.Error)
	}
	if result.RowsAffected == 0 {
		return Produit{}, domain.ErrProductNotFound
	}

	return produit, nil
}

func (d *ProductDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Produit{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func (d *ProductDAO) FindByID(ctx context.Context, id uint) (Produit, error) {
	var produit Produit

	result := d.db.WithContext(ctx).First(&produit, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Produit{}, domain.ErrProductNotFound
		}

		return Produit{}, result.Error
	}

	return produit, nil
}

func (d *ProductDAO) FindByName(ctx context.Context, name string) (Produit, error) {
	var produit Produit

	result := d.db.WithContext(ctx).Order("id asc").First(&produit, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Produit{}, domain.ErrProductNotFound
		}

		return Produit{}, result.Error
	}

	return produit, nil
}

func (d *ProductDAO) FindAll(ctx context.Context) ([]Produit, error) {
	var produits []Produit

	result := d.db.WithContext(ctx).Order("id asc").Find(&produits)
	if result.Error != nil {
		return nil, result.Error
	}

	return produits, nil
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
		return ErrNegativeQuantity
	}

	return err
}
