package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition_ForwardPath(t *testing.T) {
	steps := []struct {
		from OrderStatus
		to   OrderStatus
		role Role
	}{
		{StatusPending, StatusAccepted, RoleRestaurant},
		{StatusAccepted, StatusPreparing, RoleRestaurant},
		{StatusPreparing, StatusReadyForPickup, RoleRestaurant},
		{StatusReadyForPickup, StatusPickedUp, RoleDelivery},
		{StatusPickedUp, StatusArriving, RoleDelivery},
		{StatusArriving, StatusDelivered, RoleDelivery},
	}

	for _, step := range steps {
		assert.True(t, CanTransition(step.from, step.to, step.role),
			"%s -> %s by %s should be legal", step.from, step.to, step.role)
	}
}

func TestCanTransition_NoSkippingOrRewinding(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusPreparing, RoleRestaurant))
	assert.False(t, CanTransition(StatusPending, StatusDelivered, RoleAdmin))
	assert.False(t, CanTransition(StatusAccepted, StatusPending, RoleRestaurant))
	assert.False(t, CanTransition(StatusDelivered, StatusArriving, RoleDelivery))

	// Repeating a completed step is not a legal move either.
	assert.False(t, CanTransition(StatusAccepted, StatusAccepted, RoleRestaurant))
}

func TestCanTransition_RoleOwnership(t *testing.T) {
	// The rider's steps are not available to the restaurant and vice versa.
	assert.False(t, CanTransition(StatusReadyForPickup, StatusPickedUp, RoleRestaurant))
	assert.False(t, CanTransition(StatusPending, StatusAccepted, RoleDelivery))
	assert.False(t, CanTransition(StatusPending, StatusAccepted, RoleCustomer))
}

func TestCanTransition_Cancellation(t *testing.T) {
	nonTerminal := []OrderStatus{
		StatusPending, StatusAccepted, StatusPreparing,
		StatusReadyForPickup, StatusPickedUp, StatusArriving,
	}

	for _, from := range nonTerminal {
		assert.True(t, CanTransition(from, StatusCancelled, RoleCustomer), "customer cancel from %s", from)
		assert.True(t, CanTransition(from, StatusCancelled, RoleRestaurant), "restaurant cancel from %s", from)
		assert.True(t, CanTransition(from, StatusCancelled, RoleAdmin), "admin cancel from %s", from)
		assert.False(t, CanTransition(from, StatusCancelled, RoleDelivery), "rider cancel from %s", from)
	}

	// Terminal statuses admit nothing, cancellation included.
	assert.False(t, CanTransition(StatusDelivered, StatusCancelled, RoleAdmin))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled, RoleAdmin))
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusArriving.IsTerminal())
}

func TestNextStatuses(t *testing.T) {
	next := NextStatuses(StatusPending, RoleRestaurant)
	assert.ElementsMatch(t, []OrderStatus{StatusAccepted, StatusCancelled}, next)

	next = NextStatuses(StatusReadyForPickup, RoleDelivery)
	assert.ElementsMatch(t, []OrderStatus{StatusPickedUp}, next)

	assert.Empty(t, NextStatuses(StatusDelivered, RoleAdmin))
}
