package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/model"
	"github.com/Gokul0616/JOSHI-BROTHERS/pkg/middleware"
)

// Handlers bundles everything RegisterRoutes needs.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Cart    *CartHandler
	Orders  *OrderHandler
	Gate    *middleware.AuthMiddleware
}

func RegisterRoutes(rg *gin.RouterGroup, h Handlers) {
	// Public: browsing, registration, login
	rg.POST("/auth/register", h.Auth.Register)
	rg.POST("/auth/login", h.Auth.Login)
	rg.POST("/admin/login", h.Auth.AdminLogin)

	rg.GET("/products", h.Catalog.ListProducts)
	rg.GET("/products/:id", h.Catalog.GetProduct)
	rg.GET("/categories", h.Catalog.ListCategories)
	rg.GET("/brands", h.Catalog.ListBrands)

	// User credential required
	user := rg.Group("")
	user.Use(h.Gate.BearerAuth())
	{
		cart := user.Group("/cart")
		{
			cart.POST("/add", h.Cart.Add)
			cart.GET("", h.Cart.List)
			cart.DELETE("/:product_id", h.Cart.Remove)
		}

		user.POST("/orders", h.Orders.Create)
		user.GET("/orders", h.Orders.ListMine)
	}

	// Admin credential required
	admin := rg.Group("/admin")
	admin.Use(h.Gate.BearerAuth(), h.Gate.RequireRole(model.RoleAdmin))
	{
		admin.GET("/dashboard", h.Orders.Dashboard)

		admin.POST("/products", h.Catalog.CreateProduct)
		admin.POST("/products/upload", h.Catalog.UploadProducts)
		admin.PUT("/products/:id", h.Catalog.UpdateProduct)
		admin.DELETE("/products/:id", h.Catalog.DeleteProduct)

		admin.POST("/categories", h.Catalog.CreateCategory)
		admin.DELETE("/categories/:id", h.Catalog.DeleteCategory)

		admin.POST("/brands", h.Catalog.CreateBrand)
		admin.DELETE("/brands/:id", h.Catalog.DeleteBrand)

		admin.GET("/orders", h.Orders.ListAll)
		admin.PUT("/orders/:id/status", h.Orders.UpdateStatus)

		admin.GET("/users", h.Auth.ListUsers)
	}
}
