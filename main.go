package main

import (
	"fmt"
	"log"

	"github.com/BtJ-gogo/meta-back-end-developer/configs"
	"github.com/BtJ-gogo/meta-back-end-developer/middlewares"
	"github.com/BtJ-gogo/meta-back-end-developer/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedGroups(); err != nil {
		log.Fatalf("seed groups failed: %v", err)
	}
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
