package configs

import (
	"log"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedGroups creates the three role groups.
func SeedGroups() error {
	return SeedGroupsOn(db)
}

func SeedGroupsOn(g *gorm.DB) error {
	for _, role := range entity.GroupRoles {
		if err := g.FirstOrCreate(&entity.Group{}, entity.Group{Name: string(role)}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first superuser from env, once.
func SeedAdmin(cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:  cfg.AdminUsername,
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		Superuser: true,
	}
	return db.Create(&admin).Error
}
