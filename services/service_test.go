package services_test

import (
	"testing"

	"github.com/BtJ-gogo/meta-back-end-developer/configs"
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedGroupsOn(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, roles ...entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	for _, r := range roles {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", string(r)).First(&g).Error)
		u.Groups = append(u.Groups, g)
	}
	require.NoError(t, db.Create(u).Error)

	var got entity.User
	require.NoError(t, db.Preload("Groups").First(&got, u.ID).Error)
	return &got
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price string) *entity.MenuItem {
	t.Helper()
	cat := entity.Category{Slug: "mains-" + title, Title: "Mains"}
	require.NoError(t, db.Create(&cat).Error)

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	item := entity.MenuItem{Title: title, Price: p, CategoryID: cat.ID}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func two() decimal.Decimal { return decimal.NewFromInt(2) }

func menuRepo(db *gorm.DB) *repository.MenuRepository   { return repository.NewMenuRepository(db) }
func cartRepo(db *gorm.DB) *repository.CartRepository   { return repository.NewCartRepository(db) }
func orderRepo(db *gorm.DB) *repository.OrderRepository { return repository.NewOrderRepository(db) }
func userRepo(db *gorm.DB) *repository.UserRepository   { return repository.NewUserRepository(db) }
