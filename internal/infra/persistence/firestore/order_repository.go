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

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates the Firestore-backed order store gateway.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(ordersCollection)
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	// The gateway, not the caller, assigns identity and creation time.
	order.ID = uuid.New()
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt

	_, err := r.collection().Doc(order.ID.String()).Create(ctx, toOrderDoc(order))
	if err != nil {
		return mapStoreError(err, repository.ErrOrderNotFound)
	}

	return nil
}

func (r *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	snap, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, repository.ErrOrderNotFound)
	}

	return decodeOrder(snap)
}

func (r *orderRepository) FindOrderByPickupCode(ctx context.Context, code string) (*entity.Order, error) {
	iter := r.collection().Where("pickup_code", "==", code).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, mapStoreError(err, repository.ErrOrderNotFound)
	}

	return decodeOrder(snap)
}

func (r *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	iter := r.filteredQuery(filter).Documents(ctx)
	defer iter.Stop()

	orders := make([]*entity.Order, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, repository.ErrOrderNotFound)
		}

		order, err := decodeOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) (*entity.Order, error) {
	ref := r.collection().Doc(id.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapStoreError(err, repository.ErrOrderNotFound)
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		// Conditional write: nothing changes unless the precondition holds.
		if doc.Status != from.String() {
			return repository.ErrStatusConflict
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: to.String()},
			{Path: "updated_at", Value: time.Now().UTC()},
		})
	})
	if err != nil {
		return nil, err
	}

	return r.FindOrderByID(ctx, id)
}

func (r *orderRepository) ClaimOrder(ctx context.Context, id, riderID uuid.UUID) (*entity.Order, error) {
	ref := r.collection().Doc(id.String())

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapStoreError(err, repository.ErrOrderNotFound)
		}

		var doc orderDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		// Both conditions are checked inside the transaction so exactly one
		// claimant can ever pass.
		if doc.RiderID != "" || doc.Status != entity.StatusReadyForPickup.String() {
			return repository.ErrAlreadyClaimed
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "rider_id", Value: riderID.String()},
			{Path: "status", Value: entity.StatusPickedUp.String()},
			{Path: "updated_at", Value: time.Now().UTC()},
		})
	})
	if err != nil {
		return nil, err
	}

	return r.FindOrderByID(ctx, id)
}

func (r *orderRepository) WatchOrders(ctx context.Context, filter repository.OrderFilter) (repository.OrderWatch, error) {
	return newOrderWatch(r.filteredQuery(filter)), nil
}

func (r *orderRepository) filteredQuery(filter repository.OrderFilter) firestore.Query {
	query := r.collection().Query
	if filter.CustomerID != nil {
		query = query.Where("customer_id", "==", filter.CustomerID.String())
	}
	if filter.RestaurantID != nil {
		query = query.Where("restaurant_id", "==", filter.RestaurantID.String())
	}
	if filter.RiderID != nil {
		query = query.Where("rider_id", "==", filter.RiderID.String())
	}
	if filter.Status != nil {
		query = query.Where("status", "==", filter.Status.String())
	}
	query = query.OrderBy("created_at", firestore.Desc)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	return query
}

func decodeOrder(snap *firestore.DocumentSnapshot) (*entity.Order, error) {
	var doc orderDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return doc.toEntity(snap.Ref.ID)
}
