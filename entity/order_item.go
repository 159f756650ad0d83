package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_line" json:"order"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_order_line" json:"menuitem"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2)" json:"unit_price"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2)" json:"price"`
}
