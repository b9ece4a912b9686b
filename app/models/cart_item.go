package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartItem struct {
	ID             string        `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ShoppingCart   *ShoppingCart `gorm:"foreignKey:ShoppingCartID"`
	ShoppingCartID string        `gorm:"size:36;index"`
	Product        *Product      `gorm:"foreignKey:ProductID"`
	ProductID      string        `gorm:"size:36;index"`
	Quantity       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}
