package handler

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/usecase"
	"petpal/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type syncUserRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// SyncUser exchanges a Firebase ID token for the local account, creating
// one on first login.
func (h *AuthHandler) SyncUser(c echo.Context) error {
	var req syncUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, created, err := h.authUseCase.SyncUser(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Created(c, user)
	}
	return response.Success(c, user)
}
