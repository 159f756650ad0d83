package repository

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ---------------- Categories ----------------

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) CategoryExists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Menu items ----------------

// List supports ordering by price and searching by category title.
func (r *MenuRepository) List(ordering, search string) ([]entity.MenuItem, error) {
	db := r.DB.Model(&entity.MenuItem{})
	if search != "" {
		db = db.Select("menu_items.*").
			Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title LIKE ?", "%"+search+"%")
	}
	switch ordering {
	case "price":
		db = db.Order("price ASC")
	case "-price":
		db = db.Order("price DESC")
	}
	var items []entity.MenuItem
	err := db.Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) GetByTitle(title string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("title = ?", title).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// UpdateFeatured flips only the featured flag; the toggle is the sole
// update surface for menu items.
func (r *MenuRepository) UpdateFeatured(id uint, featured bool) (bool, error) {
	res := r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("featured", featured)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *MenuRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.MenuItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) Count() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).Count(&cnt).Error
	return cnt, err
}

func (r *MenuRepository) DeleteAll() error {
	return r.DB.Where("1 = 1").Delete(&entity.MenuItem{}).Error
}
