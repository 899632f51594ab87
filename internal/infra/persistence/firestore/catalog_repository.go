package firestore

import (
	"context"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type catalogRepository struct {
	client *firestore.Client
}

// NewCatalogRepository creates the Firestore-backed menu-item gateway.
func NewCatalogRepository(client *firestore.Client) repository.CatalogRepository {
	return &catalogRepository{client: client}
}

func (r *catalogRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(menuItemsCollection)
}

func (r *catalogRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt

	_, err := r.collection().Doc(item.ID.String()).Create(ctx, toMenuItemDoc(item))
	if err != nil {
		return mapStoreError(err, repository.ErrMenuItemNotFound)
	}

	return nil
}

func (r *catalogRepository) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	snap, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, repository.ErrMenuItemNotFound)
	}

	return decodeMenuItem(snap)
}

func (r *catalogRepository) FindMenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	items := make([]*entity.MenuItem, 0, len(ids))
	for _, id := range ids {
		item, err := r.FindMenuItemByID(ctx, id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *catalogRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID, category *entity.Category) ([]*entity.MenuItem, error) {
	query := r.collection().Where("restaurant_id", "==", restaurantID.String())
	if category != nil {
		query = query.Where("category", "==", category.String())
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	items := make([]*entity.MenuItem, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, repository.ErrMenuItemNotFound)
		}

		item, err := decodeMenuItem(snap)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *catalogRepository) UpdateMenuItem(ctx context.Context, id uuid.UUID, update repository.MenuItemUpdate) (*entity.MenuItem, error) {
	updates := []firestore.Update{{Path: "updated_at", Value: time.Now().UTC()}}
	if update.Price != nil {
		updates = append(updates, firestore.Update{Path: "price", Value: *update.Price})
	}
	if update.Available != nil {
		updates = append(updates, firestore.Update{Path: "available", Value: *update.Available})
	}

	_, err := r.collection().Doc(id.String()).Update(ctx, updates)
	if err != nil {
		return nil, mapStoreError(err, repository.ErrMenuItemNotFound)
	}

	return r.FindMenuItemByID(ctx, id)
}

func (r *catalogRepository) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	// Missing documents delete as a no-op, so existence is checked first.
	if _, err := r.FindMenuItemByID(ctx, id); err != nil {
		return err
	}

	_, err := r.collection().Doc(id.String()).Delete(ctx)
	if err != nil {
		return mapStoreError(err, repository.ErrMenuItemNotFound)
	}

	return nil
}

func decodeMenuItem(snap *firestore.DocumentSnapshot) (*entity.MenuItem, error) {
	var doc menuItemDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return doc.toEntity(snap.Ref.ID)
}
