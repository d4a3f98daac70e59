package router

import (
	"github.com/gin-gonic/gin"

	"github.com/temucosoft/retail-backend/internal/domain/identity"
	"github.com/temucosoft/retail-backend/internal/infrastructure/auth"
	"github.com/temucosoft/retail-backend/internal/interfaces/http/handler"
	"github.com/temucosoft/retail-backend/internal/interfaces/http/middleware"
)

// Handlers collects every HTTP handler the router wires up
type Handlers struct {
	Auth      *handler.AuthHandler
	Company   *handler.CompanyHandler
	User      *handler.UserHandler
	Catalog   *handler.CatalogHandler
	Inventory *handler.InventoryHandler
	Purchase  *handler.PurchaseHandler
	Sale      *handler.SaleHandler
	Order     *handler.OrderHandler
	Cart      *handler.CartHandler
}

// Setup registers all API routes on the engine under /api/v1
func Setup(engine *gin.Engine, jwtService *auth.JWTService, h Handlers) {
	api := engine.Group("/api/v1")

	// Public routes
	authRoutes := api.Group("/auth")
	authRoutes.POST("/login", h.Auth.Login)
	authRoutes.POST("/register", h.Auth.Register)

	// Everything below requires a valid token
	protected := api.Group("")
	protected.Use(middleware.Auth(jwtService))

	companies := protected.Group("/companies")
	companies.POST("", middleware.RequireRole(identity.RoleSuperAdmin), h.Company.Create)
	companies.GET("", middleware.RequireRole(identity.RoleSuperAdmin), h.Company.List)
	companies.GET("/:id", h.Company.Get)
	companies.POST("/:id/suspend", middleware.RequireRole(identity.RoleSuperAdmin), h.Company.Suspend)
	companies.POST("/:id/activate", middleware.RequireRole(identity.RoleSuperAdmin), h.Company.Activate)

	users := protected.Group("/users")
	users.POST("", h.User.Create)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.Get)
	users.POST("/:id/deactivate", h.User.Deactivate)

	catalog := protected.Group("/catalog")
	catalog.POST("/products", middleware.RequireStaff(), h.Catalog.CreateProduct)
	catalog.GET("/products", h.Catalog.ListProducts)
	catalog.GET("/products/:id", h.Catalog.GetProduct)
	catalog.PUT("/products/:id", middleware.RequireStaff(), h.Catalog.UpdateProduct)
	catalog.DELETE("/products/:id", middleware.RequireStaff(), h.Catalog.DeleteProduct)
	catalog.POST("/categories", middleware.RequireStaff(), h.Catalog.CreateCategory)
	catalog.GET("/categories", h.Catalog.ListCategories)
	catalog.POST("/suppliers", middleware.RequireStaff(), h.Catalog.CreateSupplier)
	catalog.GET("/suppliers", h.Catalog.ListSuppliers)

	branches := protected.Group("/branches")
	branches.Use(middleware.RequireStaff())
	branches.POST("", h.Inventory.CreateBranch)
	branches.GET("", h.Inventory.ListBranches)
	branches.GET("/:id", h.Inventory.GetBranch)
	branches.PUT("/:id", h.Inventory.UpdateBranch)

	inventory := protected.Group("/inventory")
	inventory.Use(middleware.RequireStaff())
	inventory.GET("", h.Inventory.List)
	inventory.GET("/lookup", h.Inventory.Get)
	inventory.GET("/alerts/reorder", h.Inventory.ListNeedingReorder)
	inventory.GET("/:id/movements", h.Inventory.ListMovements)
	inventory.POST("/adjust", h.Inventory.AdjustStock)
	inventory.PUT("/:id/reorder-point", h.Inventory.SetReorderPoint)

	purchases := protected.Group("/purchases")
	purchases.Use(middleware.RequireStaff())
	purchases.POST("", h.Purchase.Create)
	purchases.GET("", h.Purchase.List)
	purchases.GET("/:id", h.Purchase.Get)
	purchases.POST("/:id/receive", h.Purchase.Receive)
	purchases.POST("/:id/cancel", h.Purchase.Cancel)

	sales := protected.Group("/sales")
	sales.Use(middleware.RequireStaff())
	sales.POST("", h.Sale.Create)
	sales.GET("", h.Sale.List)
	sales.GET("/:id", h.Sale.Get)

	orders := protected.Group("/orders")
	orders.GET("", h.Order.List)
	orders.GET("/:id", h.Order.Get)
	orders.POST("/:id/process", middleware.RequireStaff(), h.Order.Process)
	orders.PATCH("/:id/status", middleware.RequireStaff(), h.Order.UpdateStatus)

	cart := protected.Group("/cart")
	cart.GET("", h.Cart.GetCart)
	cart.POST("/items", h.Cart.AddItem)
	cart.PUT("/items/:id", h.Cart.UpdateItem)
	cart.DELETE("/items/:id", h.Cart.RemoveItem)
	cart.POST("/checkout", h.Cart.Checkout)
}
