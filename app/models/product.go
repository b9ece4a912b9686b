package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name           string          `gorm:"size:255;not null;uniqueIndex"`
	Price          decimal.Decimal `gorm:"type:decimal(16,2);not null"`
	Quantity       int             `gorm:"not null"`
	CategoryID     string          `gorm:"size:36;index;not null"`
	Category       Category        `gorm:"foreignKey:CategoryID"`
	ManufacturerID string          `gorm:"size:36;index;not null"`
	Manufacturer   Manufacturer    `gorm:"foreignKey:ManufacturerID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
