package repository

import (
	"context"

	"quickbite/internal/domain/entity"
	"quickbite/internal/errors"

	"github.com/google/uuid"
)

// ErrMenuItemNotFound is returned when a catalog entry does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuItemUpdate carries the only fields mutable after publication.
type MenuItemUpdate struct {
	Price     *float64
	Available *bool
}

// CatalogRepository is the gateway to the menu-item collection. This is the
// only collection where hard deletes are allowed.
type CatalogRepository interface {
	// CreateMenuItem publishes a new catalog entry.
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// FindMenuItemByID returns a single catalog entry.
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindMenuItemsByIDs returns the entries for the given identifiers. A
	// missing identifier yields ErrMenuItemNotFound.
	FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// ListMenuItems returns a restaurant's catalog, optionally narrowed to
	// one category.
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID, category *entity.Category) ([]*entity.MenuItem, error)

	// UpdateMenuItem applies a price/availability change.
	UpdateMenuItem(ctx context.Context, id uuid.UUID, update MenuItemUpdate) (*entity.MenuItem, error)

	// DeleteMenuItem removes a catalog entry outright.
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
}
