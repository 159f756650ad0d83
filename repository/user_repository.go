package repository

import (
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Preload("Groups").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetGroup(role entity.Role) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", string(role)).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListByRole returns the roster of a role group.
func (r *UserRepository) ListByRole(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Select("users.*").
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("g.name = ?", string(role)).
		Preload("Groups").
		Find(&users).Error
	return users, err
}

// FindByIDWithRole loads a user only if they hold the given role.
func (r *UserRepository) FindByIDWithRole(id uint, role entity.Role) (*entity.User, error) {
	var user entity.User
	err := r.DB.
		Select("users.*").
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN groups g ON g.id = ug.group_id").
		Where("users.id = ? AND g.name = ?", id, string(role)).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RemoveRole drops the group membership only; the user row survives.
func (r *UserRepository) RemoveRole(user *entity.User, group *entity.Group) error {
	return r.DB.Model(user).Association("Groups").Delete(group)
}

func (r *UserRepository) HasRole(userID uint, role entity.Role) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups").
		Joins("JOIN groups g ON g.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND g.name = ?", userID, string(role)).
		Count(&count).Error
	return count > 0, err
}
