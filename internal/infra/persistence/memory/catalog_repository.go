package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

type catalogRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entity.MenuItem
}

// NewCatalogRepository creates an empty in-memory catalog store.
func NewCatalogRepository() repository.CatalogRepository {
	return &catalogRepository{
		items: make(map[uuid.UUID]*entity.MenuItem),
	}
}

func (r *catalogRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt

	r.items[item.ID] = copyMenuItem(item)

	return nil
}

func (r *catalogRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}

	return copyMenuItem(item), nil
}

func (r *catalogRepository) FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		item, ok := r.items[id]
		if !ok {
			return nil, repository.ErrMenuItemNotFound
		}
		out = append(out, copyMenuItem(item))
	}

	return out, nil
}

func (r *catalogRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID, category *entity.Category) ([]*entity.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.MenuItem, 0)
	for _, item := range r.items {
		if item.RestaurantID != restaurantID {
			continue
		}
		if category != nil && item.Category != *category {
			continue
		}
		out = append(out, copyMenuItem(item))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *catalogRepository) UpdateMenuItem(ctx context.Context, id uuid.UUID, update repository.MenuItemUpdate) (*entity.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, repository.ErrMenuItemNotFound
	}

	if update.Price != nil {
		item.Price = *update.Price
	}
	if update.Available != nil {
		item.Available = *update.Available
	}
	item.UpdatedAt = time.Now().UTC()

	return copyMenuItem(item), nil
}

func (r *catalogRepository) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return repository.ErrMenuItemNotFound
	}
	delete(r.items, id)

	return nil
}

func copyMenuItem(item *entity.MenuItem) *entity.MenuItem {
	out := *item
	if item.Calories != nil {
		calories := *item.Calories
		out.Calories = &calories
	}

	return &out
}
