package handler

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/usecase"
	"petpal/pkg/response"
)

type SalesHandler struct {
	salesUseCase *usecase.SalesUseCase
}

func NewSalesHandler(salesUseCase *usecase.SalesUseCase) *SalesHandler {
	return &SalesHandler{
		salesUseCase: salesUseCase,
	}
}

func (h *SalesHandler) MonthlySales(c echo.Context) error {
	points, err := h.salesUseCase.MonthlySales(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, points)
}

func (h *SalesHandler) SalesByDateRange(c echo.Context) error {
	points, err := h.salesUseCase.SalesByDateRange(
		c.Request().Context(),
		c.QueryParam("startDate"),
		c.QueryParam("endDate"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, points)
}
