package usecase

import (
	"context"

	"quickbite/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMenuItemInput represents the input for publishing a catalog entry.
type CreateMenuItemInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" validate:"gte=0"`
	Category    entity.Category `json:"category" validate:"required"`
	ImageURL    string          `json:"image_url"`
	Vegetarian  bool            `json:"vegetarian"`
	Available   bool            `json:"available"`
	Calories    *int            `json:"calories,omitempty"`
}

// UpdateMenuItemInput carries the only fields mutable after publication.
type UpdateMenuItemInput struct {
	Price     *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Available *bool    `json:"available,omitempty"`
}

// CatalogUsecase defines menu management. Writes are restricted to the
// operator of the owning restaurant; reads are open to any authenticated
// caller.
type CatalogUsecase interface {
	// CreateMenuItem publishes a catalog entry for the actor's restaurant.
	CreateMenuItem(ctx context.Context, actor Actor, input *CreateMenuItemInput) (*entity.MenuItem, error)

	// ListMenu returns a restaurant's catalog, optionally narrowed to one
	// category.
	ListMenu(ctx context.Context, restaurantID uuid.UUID, category *entity.Category) ([]*entity.MenuItem, error)

	// UpdateMenuItem applies a price/availability change to an entry owned
	// by the actor's restaurant.
	UpdateMenuItem(ctx context.Context, actor Actor, itemID uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error)

	// DeleteMenuItem removes an entry owned by the actor's restaurant.
	DeleteMenuItem(ctx context.Context, actor Actor, itemID uuid.UUID) error
}
