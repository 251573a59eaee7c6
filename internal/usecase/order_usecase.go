package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"petpal/internal/domain/entity"
	"petpal/internal/domain/repository"
	"petpal/internal/domain/service"
	"petpal/pkg/errors"
	"petpal/pkg/logger"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	payment     service.PaymentService
	mailer      Mailer
	frontendURL string
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	payment service.PaymentService,
	mailer Mailer,
	frontendURL string,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		payment:     payment,
		mailer:      mailer,
		frontendURL: frontendURL,
	}
}

type OrderItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Image     string
	Quantity  int
}

type CreateOrderInput struct {
	Items         []OrderItemInput
	ShippingInfo  entity.ShippingInfo
	PaymentInfo   entity.PaymentInfo
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// priceTolerance absorbs float rounding from the client's checkout math.
// Half a centavo either way is rounding; more is a broken total.
var priceTolerance = decimal.NewFromFloat(0.005)

// CreateOrder validates pricing, settles the (simulated) payment, persists
// the order with frozen line-item snapshots, decrements stock per item
// best-effort, and fires a confirmation email that never fails the order.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	itemsSum := decimal.Zero
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, errors.BadRequest("Item quantity must be at least 1", nil)
		}
		if item.Price < 0 {
			return nil, errors.BadRequest("Item price cannot be negative", nil)
		}

		itemsSum = itemsSum.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		})
	}

	if err := verifyPricing(itemsSum, input); err != nil {
		return nil, err
	}

	paymentInfo, err := uc.payment.Process(ctx, input.PaymentInfo, input.TotalPrice)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		UserID:        userID,
		OrderItems:    items,
		ShippingInfo:  input.ShippingInfo,
		PaymentInfo:   paymentInfo,
		ItemsPrice:    input.ItemsPrice,
		TaxPrice:      input.TaxPrice,
		ShippingPrice: input.ShippingPrice,
		TotalPrice:    input.TotalPrice,
		OrderStatus:   entity.OrderProcessing,
		PaidAt:        now,
		CreatedAt:     now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	// Best-effort stock decrement per line item. A missing product is
	// skipped, not fatal; the order snapshot is already the source of
	// truth for what was sold.
	for _, item := range order.OrderItems {
		if err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			logger.Warn("Stock decrement skipped for product %s on order %s: %v", item.ProductID, order.ID, err)
		}
	}

	uc.sendOrderMail(ctx, order, confirmationMail)

	return order, nil
}

func verifyPricing(itemsSum decimal.Decimal, input CreateOrderInput) error {
	if input.ItemsPrice < 0 || input.TaxPrice < 0 || input.ShippingPrice < 0 || input.TotalPrice < 0 {
		return errors.BadRequest("Prices cannot be negative", nil)
	}

	itemsPrice := decimal.NewFromFloat(input.ItemsPrice)
	if itemsSum.Sub(itemsPrice).Abs().GreaterThan(priceTolerance) {
		return errors.BadRequest("itemsPrice does not match the sum of line items", nil)
	}

	expectedTotal := itemsPrice.
		Add(decimal.NewFromFloat(input.TaxPrice)).
		Add(decimal.NewFromFloat(input.ShippingPrice))
	if expectedTotal.Sub(decimal.NewFromFloat(input.TotalPrice)).Abs().GreaterThan(priceTolerance) {
		return errors.BadRequest("totalPrice does not equal itemsPrice + taxPrice + shippingPrice", nil)
	}

	return nil
}

// UpdateStatus moves an order through the status state machine and sends
// the matching notification. Once Delivered, every further request is a
// conflict and performs no side effects. A failed notification never
// undoes the status write; it is surfaced through the returned message.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, newStatusRaw string) (*entity.Order, string, error) {
	newStatus, ok := entity.ParseOrderStatus(newStatusRaw)
	if !ok {
		return nil, "", errors.BadRequest(fmt.Sprintf("Invalid order status %q", newStatusRaw), nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", err
	}

	if order.OrderStatus.Terminal() {
		return nil, "", errors.Conflict("This order has already been delivered", nil)
	}
	if !order.OrderStatus.CanTransitionTo(newStatus) {
		return nil, "", errors.Conflict(
			fmt.Sprintf("Cannot move order from %s to %s", order.OrderStatus, newStatus), nil)
	}

	order.OrderStatus = newStatus
	if newStatus == entity.OrderDelivered {
		now := time.Now()
		order.DeliveredAt = &now
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, "", err
	}

	variant := statusMail
	if newStatus == entity.OrderDelivered {
		variant = deliveredMail
	}

	message := fmt.Sprintf("Status updated to %s", newStatus)
	if sent := uc.sendOrderMail(ctx, order, variant); sent {
		message += " and notification email sent"
	} else {
		message += " but notification email could not be sent"
	}

	return order, message, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, orderID, requesterID string, requesterRole entity.Role) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != requesterID && requesterRole != entity.RoleAdmin {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*entity.Order{}
	}
	return orders, nil
}

// ListAllOrders returns every order plus the summed revenue for the admin
// dashboard header.
func (uc *OrderUseCase) ListAllOrders(ctx context.Context) ([]*entity.Order, float64, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	totalAmount := 0.0
	for _, order := range orders {
		totalAmount += order.TotalPrice
	}

	if orders == nil {
		orders = []*entity.Order{}
	}
	return orders, totalAmount, nil
}

func (uc *OrderUseCase) DeleteOrder(ctx context.Context, orderID string) error {
	if _, err := uc.orderRepo.GetByID(ctx, orderID); err != nil {
		return err
	}
	return uc.orderRepo.Delete(ctx, orderID)
}

// DeleteOrdersBulk removes the listed orders. Deleting does not restore
// stock; the decrement at creation time stands.
func (uc *OrderUseCase) DeleteOrdersBulk(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, errors.BadRequest("Please provide an array of order IDs", nil)
	}

	deleted, err := uc.orderRepo.DeleteBulk(ctx, ids)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, errors.New("NOT_FOUND", "No orders found with the provided IDs", http.StatusNotFound, nil)
	}

	return deleted, nil
}

type mailVariant int

const (
	confirmationMail mailVariant = iota
	statusMail
	deliveredMail
)

// sendOrderMail is the single best-effort notification attempt per
// transition. Failures are logged, never propagated; the order write is
// the authoritative outcome.
func (uc *OrderUseCase) sendOrderMail(ctx context.Context, order *entity.Order, variant mailVariant) bool {
	user, err := uc.userRepo.GetByID(ctx, order.UserID)
	if err != nil {
		logger.Error("Cannot resolve recipient for order %s: %v", order.ID, err)
		return false
	}

	var subject, text, html string
	switch variant {
	case confirmationMail:
		subject, text, html, err = renderConfirmationMail(order, user.Name)
	case deliveredMail:
		subject, text, html, err = renderDeliveredMail(order, user.Name, uc.frontendURL)
	default:
		subject, text, html, err = renderStatusMail(order, user.Name)
	}
	if err != nil {
		logger.Error("Failed to render mail for order %s: %v", order.ID, err)
		return false
	}

	deliveryID, err := uc.mailer.Send(ctx, user.Email, subject, text, html)
	if err != nil {
		logger.Error("Email sending failed for order %s, but the write succeeded: %v", order.ID, err)
		return false
	}

	logger.Info("Order %s notification dispatched: deliveryId=%s", order.ID, deliveryID)
	return true
}
