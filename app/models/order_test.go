package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItemLineTotal(t *testing.T) {
	item := &OrderItem{
		UnitPrice: decimal.RequireFromString("19.99"),
		Quantity:  3,
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("59.97")))
}

func TestValidStatusTransition(t *testing.T) {
	assert.True(t, ValidStatusTransition(OrderStatusPending, OrderStatusPaid))
	assert.True(t, ValidStatusTransition(OrderStatusPending, OrderStatusCancelled))
	assert.True(t, ValidStatusTransition(OrderStatusPaid, OrderStatusShipped))
	assert.True(t, ValidStatusTransition(OrderStatusPaid, OrderStatusCancelled))
	assert.True(t, ValidStatusTransition(OrderStatusShipped, OrderStatusDelivered))

	assert.False(t, ValidStatusTransition(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, ValidStatusTransition(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, ValidStatusTransition(OrderStatusCancelled, OrderStatusPaid))
	assert.False(t, ValidStatusTransition(OrderStatusShipped, OrderStatusCancelled))
}

func TestCartSubtotal(t *testing.T) {
	cart := &Cart{UserID: 1}
	cart.Upsert(CartItem{ProductID: 1, Name: "Protein Powder", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 2})
	cart.Upsert(CartItem{ProductID: 2, Name: "Shaker", UnitPrice: decimal.RequireFromString("9.50"), Quantity: 1})

	assert.True(t, cart.Subtotal().Equal(decimal.RequireFromString("69.48")))

	// Same product merges into one line.
	cart.Upsert(CartItem{ProductID: 1, UnitPrice: decimal.RequireFromString("29.99"), Quantity: 1})
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart.Remove(2)
	assert.Len(t, cart.Items, 1)
	assert.False(t, cart.IsEmpty())

	cart.Remove(1)
	assert.True(t, cart.IsEmpty())
}
