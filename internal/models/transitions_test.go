package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusNew, OrderStatusPackaging))
	assert.True(t, CanTransition(OrderStatusPackaging, OrderStatusPacked))
	assert.True(t, CanTransition(OrderStatusPacked, OrderStatusShipped))
	assert.True(t, CanTransition(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, CanTransition(OrderStatusDelivered, OrderStatusReturned))
	assert.True(t, CanTransition(OrderStatusDelivered, OrderStatusExchange))

	assert.False(t, CanTransition(OrderStatusNew, OrderStatusShipped))
	assert.False(t, CanTransition(OrderStatusDelivered, OrderStatusNew))
	assert.False(t, CanTransition(OrderStatusReturned, OrderStatusExchange))
}

func TestCanTransitionSameStatus(t *testing.T) {
	for _, s := range AllOrderStatuses {
		assert.True(t, CanTransition(s, s))
	}
}

func TestTerminalStatusesHaveNoNext(t *testing.T) {
	assert.Empty(t, NextStatuses(OrderStatusReturned))
	assert.Empty(t, NextStatuses(OrderStatusExchange))
	assert.Equal(t, []OrderStatus{OrderStatusReturned, OrderStatusExchange}, NextStatuses(OrderStatusDelivered))
}
