package middleware

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/domain/entity"
	"petpal/internal/usecase"
	"petpal/pkg/response"
)

type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// AdminOnly gates a route group to admin accounts. Must run after
// Authenticate, which puts the loaded account in the context.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, _ := c.Get("user").(*entity.User)
		if err := usecase.RequireRole(user, entity.RoleAdmin); err != nil {
			return response.Error(c, err)
		}
		return next(c)
	}
}
