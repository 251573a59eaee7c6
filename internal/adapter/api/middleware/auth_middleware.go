package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"petpal/internal/infrastructure/firebase"
	"petpal/internal/usecase"
	"petpal/pkg/errors"
	"petpal/pkg/response"
)

type AuthMiddleware struct {
	authClient  *firebase.FirebaseAuthClient
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authClient *firebase.FirebaseAuthClient, authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authClient:  authClient,
		authUseCase: authUseCase,
	}
}

// Authenticate verifies the Bearer token and loads the matching local
// account. Downstream handlers read "uid" (local account ID) and "user"
// (the full account) from the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
		}

		uid, _, _, err := m.authClient.VerifyToken(c.Request().Context(), parts[1])
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		user, err := m.authUseCase.GetByFirebaseUID(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("uid", user.ID)
		c.Set("user", user)

		return next(c)
	}
}
