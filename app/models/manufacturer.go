package models

import (
	"time"
)

type Manufacturer struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:100;not null"`
	Address   string `gorm:"size:255"`
	Products  []Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
