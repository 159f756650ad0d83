package configs

import (
	"log"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&entity.Group{}, &entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
