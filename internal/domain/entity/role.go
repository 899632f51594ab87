// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
// It is assigned once at first login and determines which order fields a
// client may mutate and which orders it may observe.
type Role string

const (
	// RoleCustomer indicates a customer placing orders.
	RoleCustomer Role = "customer"
	// RoleRestaurant indicates a restaurant operator fulfilling orders.
	RoleRestaurant Role = "restaurant"
	// RoleDelivery indicates a delivery rider.
	RoleDelivery Role = "delivery"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleDelivery, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
