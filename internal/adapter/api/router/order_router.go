package router

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/adapter/api/handler"
	"petpal/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1")
	orders.Use(authMiddleware.Authenticate)
	orders.POST("/order/new", orderHandler.CreateOrder, rateLimitMiddleware.Limit("create_order"))
	orders.GET("/order/:id", orderHandler.GetOrder)
	orders.GET("/orders/me", orderHandler.ListMyOrders)

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/orders", orderHandler.ListAllOrders)
	admin.PUT("/order/:id", orderHandler.UpdateOrderStatus)
	admin.DELETE("/order/:id", orderHandler.DeleteOrder)
	admin.DELETE("/orders/delete-bulk", orderHandler.DeleteOrdersBulk)
}
