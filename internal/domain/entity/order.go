package entity

import (
	"time"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderProcessing, OrderShipped, OrderDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the status state machine permits moving
// from the current status to next. Status only moves forward: Processing
// may go to Shipped or straight to Delivered, Shipped may go to Delivered,
// and Delivered is terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderProcessing:
		return next == OrderShipped || next == OrderDelivered
	case OrderShipped:
		return next == OrderDelivered
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered
}

// OrderItem freezes the product's name, price and image at purchase time.
// Later product edits must never retroactively change historical orders.
type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Image     string  `json:"image" firestore:"image"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

type ShippingInfo struct {
	RecipientName string `json:"recipient_name" firestore:"recipientName"`
	PhoneNumber   string `json:"phone_number" firestore:"phoneNumber"`
	Address       string `json:"address" firestore:"address"`
	City          string `json:"city" firestore:"city"`
	Country       string `json:"country" firestore:"country"`
}

type PaymentInfo struct {
	ID        string `json:"id" firestore:"id"`
	Status    string `json:"status" firestore:"status"`
	Method    string `json:"method" firestore:"method"`
	CardLast4 string `json:"card_last4,omitempty" firestore:"cardLast4,omitempty"`
}

type Order struct {
	ID     string `json:"id" firestore:"id"`
	UserID string `json:"user_id" firestore:"userId"`

	OrderItems   []OrderItem  `json:"order_items" firestore:"orderItems"`
	ShippingInfo ShippingInfo `json:"shipping_info" firestore:"shippingInfo"`
	PaymentInfo  PaymentInfo  `json:"payment_info" firestore:"paymentInfo"`

	ItemsPrice    float64 `json:"items_price" firestore:"itemsPrice"`
	TaxPrice      float64 `json:"tax_price" firestore:"taxPrice"`
	ShippingPrice float64 `json:"shipping_price" firestore:"shippingPrice"`
	TotalPrice    float64 `json:"total_price" firestore:"totalPrice"`

	OrderStatus OrderStatus `json:"order_status" firestore:"orderStatus"`

	PaidAt      time.Time  `json:"paid_at" firestore:"paidAt"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
}
