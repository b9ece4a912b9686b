package migrations

import (
	"github.com/shopmk/go-backoffice/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.Manufacturer{}, &models.Product{}, &models.User{}, &models.ShoppingCart{}, &models.CartItem{})
}
