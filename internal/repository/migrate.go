package repository

import (
	"inventory-api/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, including the unique indexes on
// products.sku and users.username.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.Product{})
}
