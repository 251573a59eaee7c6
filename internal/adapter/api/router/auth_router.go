package router

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/adapter/api/handler"
	"petpal/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, _ *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public: callers present the Firebase ID token in the body, not a
	// Bearer header, because the local account may not exist yet.
	e.POST("/v1/auth/create-or-update-user", authHandler.SyncUser)
}
