// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a catalog entry into a fixed set of menu sections.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryMain      Category = "main"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
	CategorySnack     Category = "snack"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage, CategorySnack:
		return true
	default:
		return false
	}
}

// MenuItem is a catalog entry published by a restaurant. Once published only
// Price and Available change; everything else is immutable until the item is
// removed outright.
type MenuItem struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the item.
	RestaurantID uuid.UUID // The restaurant that owns this catalog entry.
	Name         string    // Display name.
	Description  string    // Short menu description.
	Price        float64   // Non-negative unit price.
	Category     Category  // One of the fixed menu sections.
	ImageURL     string    // Reference to the item image.
	Vegetarian   bool      // Vegetarian flag.
	Available    bool      // Whether the item can currently be ordered.
	Calories     *int      // Optional calorie count.
	CreatedAt    time.Time // Timestamp of when this item was published.
	UpdatedAt    time.Time // Timestamp of the last price/availability change.
}
