package entity_test

import (
	"testing"

	"github.com/BtJ-gogo/meta-back-end-developer/configs"
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
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

func TestNewUserGetsCustomerGroup(t *testing.T) {
	db := setupDB(t)

	u := entity.User{Username: "alice", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	var got entity.User
	require.NoError(t, db.Preload("Groups").First(&got, u.ID).Error)
	require.Len(t, got.Groups, 1)
	require.Equal(t, string(entity.RoleCustomer), got.Groups[0].Name)
}

func TestBootstrapSkipsUsersCreatedWithGroups(t *testing.T) {
	db := setupDB(t)

	var mgr entity.Group
	require.NoError(t, db.Where("name = ?", string(entity.RoleManager)).First(&mgr).Error)

	u := entity.User{Username: "bob", Password: "x", Groups: []entity.Group{mgr}}
	require.NoError(t, db.Create(&u).Error)

	var got entity.User
	require.NoError(t, db.Preload("Groups").First(&got, u.ID).Error)
	require.Len(t, got.Groups, 1)
	require.Equal(t, string(entity.RoleManager), got.Groups[0].Name)
}

func TestBootstrapFiresOnlyOnce(t *testing.T) {
	db := setupDB(t)

	u := entity.User{Username: "carol", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	// later saves must not add another membership
	require.NoError(t, db.Model(&entity.User{}).Where("id = ?", u.ID).
		Update("email", "carol@example.com").Error)

	var count int64
	require.NoError(t, db.Table("user_groups").Where("user_id = ?", u.ID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSatisfiesRoles(t *testing.T) {
	u := entity.User{
		Superuser: true,
		Groups:    []entity.Group{{Name: string(entity.RoleManager)}},
	}
	require.True(t, u.Satisfies(entity.RoleSuperUser))
	require.True(t, u.Satisfies(entity.RoleManager))
	require.False(t, u.Satisfies(entity.RoleCustomer))

	plain := entity.User{Groups: []entity.Group{{Name: string(entity.RoleCustomer)}}}
	require.False(t, plain.Satisfies(entity.RoleSuperUser))
	require.True(t, plain.Satisfies(entity.RoleCustomer))
}
