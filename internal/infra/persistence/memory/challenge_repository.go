package memory

import (
	"context"
	"sync"
	"time"

	"quickbite/internal/domain/entity"
	"quickbite/internal/domain/repository"

	"github.com/google/uuid"
)

type challengeRepository struct {
	mu         sync.Mutex
	challenges map[uuid.UUID]*entity.PhoneChallenge
}

// NewChallengeRepository creates an empty in-memory challenge store.
func NewChallengeRepository() repository.ChallengeRepository {
	return &challengeRepository{
		challenges: make(map[uuid.UUID]*entity.PhoneChallenge),
	}
}

func (r *challengeRepository) CreateChallenge(ctx context.Context, challenge *entity.PhoneChallenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if challenge.ID == uuid.Nil {
		challenge.ID = uuid.New()
	}
	challenge.CreatedAt = time.Now().UTC()

	stored := *challenge
	r.challenges[challenge.ID] = &stored

	return nil
}

func (r *challengeRepository) FindChallengeByID(ctx context.Context, id uuid.UUID) (*entity.PhoneChallenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.challenges[id]
	if !ok {
		return nil, repository.ErrChallengeNotFound
	}

	out := *challenge

	return &out, nil
}

func (r *challengeRepository) IncrementAttempts(ctx context.Context, id uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.challenges[id]
	if !ok {
		return 0, repository.ErrChallengeNotFound
	}

	challenge.Attempts++

	return challenge.Attempts, nil
}

func (r *challengeRepository) DeleteChallenge(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.challenges, id)

	return nil
}

func (r *challengeRepository) CountRecentByPhone(ctx context.Context, phone string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, challenge := range r.challenges {
		if challenge.Phone == phone && challenge.CreatedAt.After(since) {
			count++
		}
	}

	return count, nil
}
