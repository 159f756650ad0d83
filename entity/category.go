package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Title string `gorm:"size:255;index" json:"title"`

	// delete stays blocked while menu items reference the category
	MenuItems []MenuItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
