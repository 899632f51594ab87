// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the account record behind a phone identity. The role is
// assigned at first login and not normally changed afterwards.
type UserProfile struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Phone        string     // Verified phone number, the login identifier.
	Name         string     // Display name.
	Email        string     // Optional contact email.
	Role         Role       // Determines permissions and watch scope.
	RestaurantID *uuid.UUID // Set only for restaurant operators.
	Locations    []Location // Saved delivery locations.
	FCMToken     string     // Device token for status-change pushes, if registered.
	CreatedAt    time.Time  // Timestamp of first login.
	UpdatedAt    time.Time  // Timestamp of the last profile change.
}

// LocationByID returns the saved location with the given identifier, or nil.
func (u *UserProfile) LocationByID(id uuid.UUID) *Location {
	for i := range u.Locations {
		if u.Locations[i].ID == id {
			return &u.Locations[i]
		}
	}

	return nil
}
