package models

import (
	"time"
)

// ShoppingCart is created empty when the user registers and lives for the
// lifetime of the account.
type ShoppingCart struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	UserID    string `gorm:"size:36;index;not null"`
	User      User   `gorm:"foreignKey:UserID"`
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
