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

type challengeRepository struct {
	client *firestore.Client
}

// NewChallengeRepository creates the Firestore-backed SMS challenge gateway.
func NewChallengeRepository(client *firestore.Client) repository.ChallengeRepository {
	return &challengeRepository{client: client}
}

func (r *challengeRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(challengesCollection)
}

func (r *challengeRepository) CreateChallenge(ctx context.Context, challenge *entity.PhoneChallenge) error {
	challenge.ID = uuid.New()
	challenge.CreatedAt = time.Now().UTC()

	_, err := r.collection().Doc(challenge.ID.String()).Create(ctx, toChallengeDoc(challenge))
	if err != nil {
		return mapStoreError(err, repository.ErrChallengeNotFound)
	}

	return nil
}

func (r *challengeRepository) FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.PhoneChallenge, error) {
	snap, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, repository.ErrChallengeNotFound)
	}

	var doc challengeDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}

	return doc.toEntity(snap.Ref.ID)
}

func (r *challengeRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	ref := r.collection().Doc(id.String())

	attempts := 0
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return mapStoreError(err, repository.ErrChallengeNotFound)
		}

		var doc challengeDoc
		if err := snap.DataTo(&doc); err != nil {
			return err
		}
		attempts = doc.Attempts + 1

		return tx.Update(ref, []firestore.Update{
			{Path: "attempts", Value: attempts},
		})
	})
	if err != nil {
		return 0, err
	}

	return attempts, nil
}

func (r *challengeRepository) DeleteChallenge(ctx context.Context, id uuid.UUID) error {
	_, err := r.collection().Doc(id.String()).Delete(ctx)
	if err != nil {
		return mapStoreError(err, repository.ErrChallengeNotFound)
	}

	return nil
}

func (r *challengeRepository) CountRecentByPhone(ctx context.Context, phone string, since time.Time) (int, error) {
	iter := r.collection().
		Where("phone", "==", phone).
		Where("created_at", ">=", since).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, mapStoreError(err, repository.ErrChallengeNotFound)
		}
		count++
	}

	return count, nil
}
