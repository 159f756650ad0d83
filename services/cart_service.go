package services

import (
	"strings"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// AddCartIn resolves the menu item by title, matching the public
// contract of the cart endpoint.
type AddCartIn struct {
	MenuItem string `json:"menuitem" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

func (s *CartService) List(userID uint) ([]entity.Cart, error) {
	return s.CartRepo.ListForUser(userID)
}

// Add snapshots the item's current price into the line; later menu price
// changes never touch existing cart lines.
func (s *CartService) Add(userID uint, in *AddCartIn) (*entity.Cart, error) {
	item, err := s.MenuRepo.GetByTitle(in.MenuItem)
	if err != nil {
		return nil, err
	}

	line := &entity.Cart{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2),
	}
	if err := s.CartRepo.Add(line); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateLine
		}
		return nil, err
	}
	return line, nil
}

// Clear wipes every line the caller owns; clearing an empty cart is an
// error, not a no-op.
func (s *CartService) Clear(userID uint) error {
	cnt, err := s.CartRepo.CountForUser(userID)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrCartEmpty
	}
	return s.CartRepo.ClearForUser(s.DB, userID)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
