package routes

import (
	"github.com/BtJ-gogo/meta-back-end-developer/configs"
	"github.com/BtJ-gogo/meta-back-end-developer/controllers"
	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/middlewares"
	"github.com/BtJ-gogo/meta-back-end-developer/repository"
	"github.com/BtJ-gogo/meta-back-end-developer/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes is the route/verb/allow-set table of the API.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)
	rosterSvc := services.NewRosterService(userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewRosterController(rosterSvc, entity.RoleManager)
	crewCtrl := controllers.NewRosterController(rosterSvc, entity.RoleDeliveryCrew)

	throttle := middlewares.Throttle(cfg.AnonThrottleRPM, cfg.UserThrottleRPM)

	api := r.Group("/api")

	// Auth (public)
	a := api.Group("/auth", throttle)
	{
		a.POST("/users", authCtrl.Register)
		a.POST("/token/login", authCtrl.Login)
	}

	// Everything below carries a principal
	authed := api.Group("", middlewares.Authenticate(db, cfg.JWTSecret), throttle)

	authed.GET("/auth/users/me", authCtrl.Me)

	anyRole := middlewares.RequireAny(
		entity.RoleSuperUser, entity.RoleManager, entity.RoleCustomer, entity.RoleDeliveryCrew,
	)
	staffOnly := middlewares.RequireAny(entity.RoleSuperUser, entity.RoleManager)

	// Menu catalog
	menu := authed.Group("/menu-items")
	{
		menu.GET("", anyRole, menuCtrl.List)
		menu.POST("", staffOnly, menuCtrl.Create)
		menu.DELETE("", staffOnly, menuCtrl.Clear)

		menu.GET("/category", middlewares.RequireAny(entity.RoleSuperUser, entity.RoleCustomer), menuCtrl.ListCategories)
		menu.POST("/category", middlewares.RequireAny(entity.RoleSuperUser), menuCtrl.CreateCategory)

		menu.GET("/:id", anyRole, menuCtrl.Detail)
		menu.PATCH("/:id", staffOnly, menuCtrl.Update)
		menu.PUT("/:id", staffOnly, menuCtrl.Update)
		menu.DELETE("/:id", staffOnly, menuCtrl.Delete)
	}

	// Cart
	cart := authed.Group("/cart/menu-items", middlewares.RequireAny(entity.RoleCustomer))
	{
		cart.GET("", cartCtrl.List)
		cart.POST("", cartCtrl.Add)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := authed.Group("/orders")
	{
		orders.GET("", anyRole, orderCtrl.List)
		orders.POST("", middlewares.RequireAny(entity.RoleCustomer), orderCtrl.Create)

		orders.GET("/:id", middlewares.RequireAny(entity.RoleManager, entity.RoleCustomer, entity.RoleDeliveryCrew), orderCtrl.Detail)
		orders.PUT("/:id", middlewares.RequireAny(entity.RoleManager), orderCtrl.Assign)
		orders.PATCH("/:id", middlewares.RequireAny(entity.RoleManager, entity.RoleDeliveryCrew), orderCtrl.UpdateStatus)
		orders.DELETE("/:id", middlewares.RequireAny(entity.RoleManager), orderCtrl.Delete)
	}

	// Rosters
	managers := authed.Group("/groups/manager/users", middlewares.RequireAny(entity.RoleSuperUser))
	{
		managers.GET("", managerCtrl.List)
		managers.POST("", managerCtrl.Create)
		managers.DELETE("/:id", managerCtrl.Remove)
	}

	crew := authed.Group("/groups/delivery-crew/users", middlewares.RequireAny(entity.RoleManager))
	{
		crew.GET("", crewCtrl.List)
		crew.POST("", crewCtrl.Create)
		crew.DELETE("/:id", crewCtrl.Remove)
	}
}
