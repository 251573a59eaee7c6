package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"processing to shipped", OrderProcessing, OrderShipped, true},
		{"processing to delivered", OrderProcessing, OrderDelivered, true},
		{"shipped to delivered", OrderShipped, OrderDelivered, true},
		{"shipped back to processing", OrderShipped, OrderProcessing, false},
		{"delivered to shipped", OrderDelivered, OrderShipped, false},
		{"delivered to delivered", OrderDelivered, OrderDelivered, false},
		{"processing to processing", OrderProcessing, OrderProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, OrderProcessing.Terminal())
	assert.False(t, OrderShipped.Terminal())
	assert.True(t, OrderDelivered.Terminal())
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("Shipped")
	assert.True(t, ok)
	assert.Equal(t, OrderShipped, status)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok, "status values are case sensitive")

	_, ok = ParseOrderStatus("Cancelled")
	assert.False(t, ok)
}
