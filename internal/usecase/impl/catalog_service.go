package impl

import (
	"context"
	"log/slog"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	"quickbite/internal/errors"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreateMenuItem publishes a catalog entry for the actor's restaurant.
func (s *catalogService) CreateMenuItem(ctx context.Context, actor usecase.Actor, input *usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	if actor.Role != entity.RoleRestaurant || actor.RestaurantID == nil {
		return nil, domainerrors.ErrForbidden
	}
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	item := &entity.MenuItem{
		RestaurantID: *actor.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		Vegetarian:   input.Vegetarian,
		Available:    input.Available,
		Calories:     input.Calories,
	}
	if err := s.catalogRepo.CreateMenuItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "create menu item")
	}

	s.logger.Info("Published menu item",
		slog.String("item_id", item.ID.String()),
		slog.String("restaurant_id", item.RestaurantID.String()),
	)

	return item, nil
}

// ListMenu returns a restaurant's catalog.
func (s *catalogService) ListMenu(ctx context.Context, restaurantID uuid.UUID, category *entity.Category) ([]*entity.MenuItem, error) {
	if category != nil && !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	items, err := s.catalogRepo.ListMenuItems(ctx, restaurantID, category)
	if err != nil {
		return nil, errors.Wrap(err, "list menu items")
	}

	return items, nil
}

// UpdateMenuItem applies a price/availability change.
func (s *catalogService) UpdateMenuItem(ctx context.Context, actor usecase.Actor, itemID uuid.UUID, input *usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	if err := s.authorizeItemWrite(ctx, actor, itemID); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.UpdateMenuItem(ctx, itemID, repository.MenuItemUpdate{
		Price:     input.Price,
		Available: input.Available,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "update menu item")
	}

	return item, nil
}

// DeleteMenuItem removes a catalog entry outright.
func (s *catalogService) DeleteMenuItem(ctx context.Context, actor usecase.Actor, itemID uuid.UUID) error {
	if err := s.authorizeItemWrite(ctx, actor, itemID); err != nil {
		return err
	}

	if err := s.catalogRepo.DeleteMenuItem(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "delete menu item")
	}

	return nil
}

// authorizeItemWrite verifies the actor operates the restaurant owning the
// item. Admins may also write, for moderation.
func (s *catalogService) authorizeItemWrite(ctx context.Context, actor usecase.Actor, itemID uuid.UUID) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	if actor.Role != entity.RoleRestaurant || actor.RestaurantID == nil {
		return domainerrors.ErrForbidden
	}

	item, err := s.catalogRepo.FindMenuItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return domainerrors.ErrMenuItemNotFound
		}

		return errors.Wrap(err, "find menu item")
	}
	if item.RestaurantID != *actor.RestaurantID {
		return domainerrors.ErrForbidden
	}

	return nil
}
