package handler

import (
	"github.com/labstack/echo/v4"

	"petpal/internal/domain/entity"
	"petpal/internal/usecase"
	"petpal/pkg/errors"
	"petpal/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ProductID string  `json:"product" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
}

type shippingInfoRequest struct {
	RecipientName string `json:"recipientName" validate:"required"`
	PhoneNumber   string `json:"phoneNo" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Country       string `json:"country" validate:"required"`
}

type paymentInfoRequest struct {
	Method    string `json:"method" validate:"required"`
	CardLast4 string `json:"cardLast4"`
}

type createOrderRequest struct {
	OrderItems    []orderItemRequest  `json:"orderItems" validate:"required,min=1,dive"`
	ShippingInfo  shippingInfoRequest `json:"shippingInfo" validate:"required"`
	PaymentInfo   paymentInfoRequest  `json:"paymentInfo" validate:"required"`
	ItemsPrice    float64             `json:"itemsPrice" validate:"gte=0"`
	TaxPrice      float64             `json:"taxPrice" validate:"gte=0"`
	ShippingPrice float64             `json:"shippingPrice" validate:"gte=0"`
	TotalPrice    float64             `json:"totalPrice" validate:"gte=0"`
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	items := make([]usecase.OrderItemInput, len(req.OrderItems))
	for i, item := range req.OrderItems {
		items[i] = usecase.OrderItemInput{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), uid, usecase.CreateOrderInput{
		Items: items,
		ShippingInfo: entity.ShippingInfo{
			RecipientName: req.ShippingInfo.RecipientName,
			PhoneNumber:   req.ShippingInfo.PhoneNumber,
			Address:       req.ShippingInfo.Address,
			City:          req.ShippingInfo.City,
			Country:       req.ShippingInfo.Country,
		},
		PaymentInfo: entity.PaymentInfo{
			Method:    req.PaymentInfo.Method,
			CardLast4: req.PaymentInfo.CardLast4,
		},
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	user, ok := c.Get("user").(*entity.User)
	if !ok {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	order, err := h.orderUseCase.GetOrder(c.Request().Context(), c.Param("id"), user.ID, user.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	orders, totalAmount, err := h.orderUseCase.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"orders":      orders,
		"totalAmount": totalAmount,
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, message, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": message,
		"order":   order,
	})
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUseCase.DeleteOrder(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Order deleted successfully"})
}

func (h *OrderHandler) DeleteOrdersBulk(c echo.Context) error {
	var req bulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	deleted, err := h.orderUseCase.DeleteOrdersBulk(c.Request().Context(), req.IDs)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message":      "Orders deleted successfully",
		"deletedCount": deleted,
	})
}
