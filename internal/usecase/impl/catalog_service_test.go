package impl

import (
	"context"
	"testing"

	"quickbite/internal/domain/entity"
	domainerrors "quickbite/internal/domain/errors"
	"quickbite/internal/domain/repository"
	mockRepo "quickbite/internal/mocks/repository"
	"quickbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	svc := NewCatalogService(catalogRepo, newDiscardLogger())

	return catalogServiceFixtures{
		service:     svc,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_CreateMenuItem_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	itemID := uuid.New()

	fx.catalogRepo.EXPECT().
		CreateMenuItem(ctx, mock.AnythingOfType("*entity.MenuItem")).
		Run(func(_ context.Context, item *entity.MenuItem) {
			item.ID = itemID
		}).
		Return(nil)

	item, err := fx.service.CreateMenuItem(ctx, restaurantActor(uuid.New(), restaurantID), &usecase.CreateMenuItemInput{
		Name:      "Burger",
		Price:     120,
		Category:  entity.CategoryMain,
		Available: true,
	})
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ID)
	assert.Equal(t, restaurantID, item.RestaurantID)
	assert.Equal(t, entity.CategoryMain, item.Category)
}

func TestCatalogService_CreateMenuItem_NotRestaurant(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.CreateMenuItem(ctx, customerActor(uuid.New()), &usecase.CreateMenuItemInput{
		Name:     "Burger",
		Price:    120,
		Category: entity.CategoryMain,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_CreateMenuItem_UnknownCategory(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.CreateMenuItem(ctx, restaurantActor(uuid.New(), uuid.New()), &usecase.CreateMenuItemInput{
		Name:     "Burger",
		Price:    120,
		Category: entity.Category("midnight"),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCatalogService_ListMenu_CategoryFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	category := entity.CategoryBeverage
	items := []*entity.MenuItem{
		{ID: uuid.New(), RestaurantID: restaurantID, Name: "Cola", Category: category},
	}

	fx.catalogRepo.EXPECT().ListMenuItems(ctx, restaurantID, &category).Return(items, nil)

	got, err := fx.service.ListMenu(ctx, restaurantID, &category)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_UpdateMenuItem_OwnerSuccess(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	itemID := uuid.New()
	newPrice := 135.0
	item := &entity.MenuItem{ID: itemID, RestaurantID: restaurantID, Name: "Burger", Price: 120}
	updated := &entity.MenuItem{ID: itemID, RestaurantID: restaurantID, Name: "Burger", Price: newPrice}

	fx.catalogRepo.EXPECT().FindMenuItemByID(ctx, itemID).Return(item, nil)
	fx.catalogRepo.EXPECT().
		UpdateMenuItem(ctx, itemID, repository.MenuItemUpdate{Price: &newPrice}).
		Return(updated, nil)

	got, err := fx.service.UpdateMenuItem(ctx, restaurantActor(uuid.New(), restaurantID), itemID, &usecase.UpdateMenuItemInput{Price: &newPrice})
	require.NoError(t, err)
	assert.InDelta(t, newPrice, got.Price, 0.001)
}

func TestCatalogService_UpdateMenuItem_OtherRestaurantForbidden(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()
	item := &entity.MenuItem{ID: itemID, RestaurantID: uuid.New()}
	available := false

	fx.catalogRepo.EXPECT().FindMenuItemByID(ctx, itemID).Return(item, nil)

	_, err := fx.service.UpdateMenuItem(ctx, restaurantActor(uuid.New(), uuid.New()), itemID, &usecase.UpdateMenuItemInput{Available: &available})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCatalogService_UpdateMenuItem_AdminBypassesOwnership(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()
	available := false
	updated := &entity.MenuItem{ID: itemID, RestaurantID: uuid.New(), Available: available}

	fx.catalogRepo.EXPECT().
		UpdateMenuItem(ctx, itemID, repository.MenuItemUpdate{Available: &available}).
		Return(updated, nil)

	got, err := fx.service.UpdateMenuItem(ctx, adminActor(), itemID, &usecase.UpdateMenuItemInput{Available: &available})
	require.NoError(t, err)
	assert.False(t, got.Available)
}

func TestCatalogService_DeleteMenuItem_OwnerSuccess(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	itemID := uuid.New()
	item := &entity.MenuItem{ID: itemID, RestaurantID: restaurantID}

	fx.catalogRepo.EXPECT().FindMenuItemByID(ctx, itemID).Return(item, nil)
	fx.catalogRepo.EXPECT().DeleteMenuItem(ctx, itemID).Return(nil)

	err := fx.service.DeleteMenuItem(ctx, restaurantActor(uuid.New(), restaurantID), itemID)
	require.NoError(t, err)
}

func TestCatalogService_DeleteMenuItem_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindMenuItemByID(ctx, itemID).
		Return(nil, repository.ErrMenuItemNotFound)

	err := fx.service.DeleteMenuItem(ctx, restaurantActor(uuid.New(), uuid.New()), itemID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMenuItemNotFound))
}
