package repository

import (
	"context"

	"inventory-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindPage(ctx context.Context, offset, limit int) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, updatedBy string) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// Create inserts product. A SKU collision on the unique index returns ErrDuplicate.
func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *productRepo) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "sku = ?", sku).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// FindPage returns at most limit products after skipping offset, in insertion order.
func (r *productRepo) FindPage(ctx context.Context, offset, limit int) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, translate(err)
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error
	return total, translate(err)
}

// UpdateQuantity sets the quantity of an existing product and returns the
// updated row. It never inserts.
func (r *productRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int, updatedBy string) (*model.Product, error) {
	var updated model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"quantity":   quantity,
				"updated_by": updatedBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}
