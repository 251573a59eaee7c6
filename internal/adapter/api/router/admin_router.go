package router

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/adapter/api/handler"
	"petpal/internal/adapter/api/middleware"
)

// SetupAdminRouter wires the back-office endpoints that don't belong to a
// single storefront domain: user management and sales reporting.
func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()
	salesHandler := handler.GetSalesHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", userHandler.ListUsers)
	admin.GET("/user/:id", userHandler.GetUser)
	admin.PUT("/user/:id", userHandler.UpdateRoleStatus)
	admin.DELETE("/user/:id", userHandler.DeleteUser)

	admin.GET("/sales/monthly", salesHandler.MonthlySales)
	admin.GET("/sales/range", salesHandler.SalesByDateRange)
}
