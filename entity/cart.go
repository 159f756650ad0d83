package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is one pending-purchase line: a single menu item held by a single
// user. One row per (user, menuitem) pair.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"user"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuitem"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
