package services

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"github.com/shopspring/decimal"
)

// maxPrice guards the decimal(6,2) column: 6 significant digits, 2 of
// them fractional.
var maxPrice = decimal.New(999999, -2)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- Categories -----

type CreateCategoryIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) CreateCategory(in *CreateCategoryIn) (*entity.Category, error) {
	cat := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ----- Menu items -----

type CreateMenuItemIn struct {
	Title    string          `json:"title" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Featured bool            `json:"featured"`
	Category uint            `json:"category" binding:"required"`
}

// UpdateMenuItemIn is the narrow toggle contract: PATCH/PUT may only
// flip the featured flag.
type UpdateMenuItemIn struct {
	Featured *bool `json:"featured" binding:"required"`
}

func (s *MenuService) ListItems(ordering, search string) ([]entity.MenuItem, error) {
	return s.Repo.List(ordering, search)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	return s.Repo.Get(id)
}

func (s *MenuService) CreateItem(in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrPriceNegative
	}
	if in.Price.GreaterThan(maxPrice) {
		return nil, ErrPriceTooLarge
	}
	ok, err := s.Repo.CategoryExists(in.Category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryMissing
	}

	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price.Round(2),
		Featured:   in.Featured,
		CategoryID: in.Category,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) SetFeatured(id uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	ok, err := s.Repo.UpdateFeatured(id, *in.Featured)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoMenuItems
	}
	return s.Repo.Get(id)
}

func (s *MenuService) DeleteItem(id uint) error {
	rows, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoMenuItems
	}
	return nil
}

// ClearItems empties the whole collection. An already-empty catalog is
// reported, not silently accepted.
func (s *MenuService) ClearItems() error {
	cnt, err := s.Repo.Count()
	if err != nil {
		return err
	}
	if cnt == 0 {
		return ErrNoMenuItems
	}
	return s.Repo.DeleteAll()
}
