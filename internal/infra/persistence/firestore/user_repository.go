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

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates the Firestore-backed user-profile gateway.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

func (r *userRepository) CreateUser(ctx context.Context, user *entity.UserProfile) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	_, err := r.collection().Doc(user.ID.String()).Create(ctx, toUserDoc(user))
	if err != nil {
		return mapStoreError(err, repository.ErrUserNotFound)
	}

	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	snap, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, repository.ErrUserNotFound)
	}

	return decodeUser(snap)
}

func (r *userRepository) FindUserByPhone(ctx context.Context, phone string) (*entity.UserProfile, error) {
	iter := r.collection().Where("phone", "==", phone).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, mapStoreError(err, repository.ErrUserNotFound)
	}

	return decodeUser(snap)
}

func (r *userRepository) SaveLocation(ctx context.Context, userID uuid.UUID, location entity.Location) error {
	return r.mutateLocations(ctx, userID, func(locations []locationDoc) ([]locationDoc, error) {
		doc := toLocationDoc(location)
		for i := range locations {
			if locations[i].ID == doc.ID {
				locations[i] = doc

				return locations, nil
			}
		}

		return append(locations, doc), nil
	})
}

func (r *userRepository) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	return r.mutateLocations(ctx, userID, func(locations []locationDoc) ([]locationDoc, error) {
		for i := range locations {
			if locations[i].ID == locationID.String() {
				return append(locations[:i], locations[i+1:]...), nil
			}
		}

		return nil, repository.ErrLocationNotFound
	})
}

// mutateLocations rewrites the embedded locations array inside a
// transaction, so concurrent edits to different locations never lose writes.
func (r *userRepository) mutateLocations(ctx context.Context, userID uuid.UUID, mutate func([]locationDoc) ([]locationDoc, error)) error {
	ref := r.collection().Doc(userID.String())

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapStoreError(err, repository.ErrUserNotFound)
		}

		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}

		locations, err := mutate(doc.Locations)
		if err != nil {
			return err
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "locations", Value: locations},
			{Path: "updated_at", Value: time.Now().UTC()},
		})
	})
}

func (r *userRepository) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := r.collection().Doc(userID.String()).Update(ctx, []firestore.Update{
		{Path: "fcm_token", Value: token},
		{Path: "updated_at", Value: time.Now().UTC()},
	})
	if err != nil {
		return mapStoreError(err, repository.ErrUserNotFound)
	}

	return nil
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return doc.toEntity(snap.Ref.ID)
}
