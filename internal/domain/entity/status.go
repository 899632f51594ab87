// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the fulfillment state of an order.
type OrderStatus string

const (
	// StatusPending is the initial status, set when the order is placed.
	StatusPending OrderStatus = "PENDING"
	// StatusAccepted means the restaurant has confirmed the order.
	StatusAccepted OrderStatus = "ACCEPTED"
	// StatusPreparing means the kitchen is working on the order.
	StatusPreparing OrderStatus = "PREPARING"
	// StatusReadyForPickup means the order is waiting for a rider.
	StatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	// StatusPickedUp means a rider has claimed and collected the order.
	StatusPickedUp OrderStatus = "PICKED_UP"
	// StatusArriving means the rider is near the delivery location.
	StatusArriving OrderStatus = "ARRIVING"
	// StatusDelivered is terminal: the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
	// StatusCancelled is terminal and reachable from any non-terminal status.
	StatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReadyForPickup,
		StatusPickedUp, StatusArriving, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions may leave this status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Transition describes one legal status change and the role allowed to
// perform it.
type Transition struct {
	From OrderStatus
	To   OrderStatus
	Role Role
}

// transitions is the authoritative lifecycle definition. Status only ever
// moves forward along this list, or to CANCELLED from a non-terminal status.
var transitions = []Transition{
	{From: StatusPending, To: StatusAccepted, Role: RoleRestaurant},
	{From: StatusAccepted, To: StatusPreparing, Role: RoleRestaurant},
	{From: StatusPreparing, To: StatusReadyForPickup, Role: RoleRestaurant},
	{From: StatusReadyForPickup, To: StatusPickedUp, Role: RoleDelivery},
	{From: StatusPickedUp, To: StatusArriving, Role: RoleDelivery},
	{From: StatusArriving, To: StatusDelivered, Role: RoleDelivery},
}

// cancellers are the roles allowed to cancel a non-terminal order.
var cancellers = Roles{RoleCustomer, RoleRestaurant, RoleAdmin}

type transitionKey struct {
	from OrderStatus
	to   OrderStatus
	role Role
}

var transitionSet = func() map[transitionKey]struct{} {
	set := make(map[transitionKey]struct{}, len(transitions))
	for _, t := range transitions {
		set[transitionKey{from: t.From, to: t.To, role: t.Role}] = struct{}{}
	}

	return set
}()

// CanTransition reports whether the given role may move an order from one
// status to another. The caller always names the target status explicitly;
// nothing is inferred.
func CanTransition(from, to OrderStatus, role Role) bool {
	if to == StatusCancelled {
		return !from.IsTerminal() && cancellers.Contains(role)
	}

	_, ok := transitionSet[transitionKey{from: from, to: to, role: role}]

	return ok
}

// NextStatuses returns the statuses reachable from the given status by the
// given role. Used by views to render only the controls a role may invoke.
func NextStatuses(from OrderStatus, role Role) []OrderStatus {
	var next []OrderStatus
	for _, t := range transitions {
		if t.From == from && t.Role == role {
			next = append(next, t.To)
		}
	}
	if !from.IsTerminal() && cancellers.Contains(role) {
		next = append(next, StatusCancelled)
	}

	return next
}

// AllTransitions returns the full lifecycle table, cancellation excluded.
func AllTransitions() []Transition {
	return transitions
}
