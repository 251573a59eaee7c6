package router

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/adapter/api/handler"
	"petpal/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public storefront catalog
	e.GET("/v1/products", productHandler.ListProducts)
	e.GET("/v1/product/:id", productHandler.GetProduct)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/products", productHandler.ListProducts)
	admin.POST("/product/new", productHandler.CreateProduct)
	admin.PUT("/product/:id", productHandler.UpdateProduct)
	admin.DELETE("/product/:id", productHandler.DeleteProduct)
	admin.DELETE("/products/delete-bulk", productHandler.DeleteProductsBulk)
}
