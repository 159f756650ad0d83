package repository

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// ListForUser returns the caller's cart lines in storage order.
func (r *CartRepository) ListForUser(userID uint) ([]entity.Cart, error) {
	var lines []entity.Cart
	err := r.DB.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) CountForUser(userID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Cart{}).Where("user_id = ?", userID).Count(&cnt).Error
	return cnt, err
}

func (r *CartRepository) Add(line *entity.Cart) error {
	return r.DB.Create(line).Error
}

// ClearForUser removes every line owned by the user. Lines are consumed,
// not archived: the delete is unscoped so the (user, menuitem) unique
// index frees up for re-adds.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.Cart{}).Error
}
