package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `json:"user"`
	User   User `json:"-"`

	// assigned by a manager; membership in the Delivery crew group is a
	// policy rule, not a storage constraint
	DeliveryCrewID *uint `json:"delivery_crew"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	// false = pending, true = delivered
	Status bool            `gorm:"index;default:false" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(6,2)" json:"total"`
	Date   time.Time       `gorm:"index" json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
