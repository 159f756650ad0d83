package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	Superuser bool   `gorm:"default:false" json:"-"`

	Groups []Group `gorm:"many2many:user_groups;" json:"groups"`
}

// AfterCreate puts a brand-new user with no role into the Customer
// group. Fires only when the user was created without memberships, so it
// never touches roster-created staff.
func (u *User) AfterCreate(tx *gorm.DB) error {
	if len(u.Groups) > 0 {
		return nil
	}
	var g Group
	if err := tx.Where(Group{Name: string(RoleCustomer)}).FirstOrCreate(&g).Error; err != nil {
		return err
	}
	if err := tx.Model(u).Association("Groups").Append(&g); err != nil {
		return err
	}
	u.Groups = append(u.Groups, g)
	return nil
}
